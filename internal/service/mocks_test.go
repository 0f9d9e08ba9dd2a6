package service

import (
	"context"
	"slices"
	"strings"
	"time"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// Mock implementations

type mockTx struct {
	calls int
	err   error
}

func (m *mockTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

type mockScheduleRepo struct {
	schedules map[uint]*model.GameSchedule
	games     *mockGameRepo
	nextID    uint
	createErr error
}

func newMockScheduleRepo(games *mockGameRepo) *mockScheduleRepo {
	return &mockScheduleRepo{schedules: make(map[uint]*model.GameSchedule), games: games}
}

func (m *mockScheduleRepo) Create(ctx context.Context, s *model.GameSchedule) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	s.ID = m.nextID
	for i := range s.Games {
		s.Games[i].ScheduleID = s.ID
	}
	m.schedules[s.ID] = s
	return m.games.save(s.Games)
}

func (m *mockScheduleRepo) GetByID(ctx context.Context, id uint) (*model.GameSchedule, error) {
	s, ok := m.schedules[id]
	if !ok {
		return nil, nil
	}
	out := *s
	out.Games = m.games.bySchedule(id)
	return &out, nil
}

func (m *mockScheduleRepo) List(ctx context.Context) ([]model.GameSchedule, error) {
	var out []model.GameSchedule
	for id := uint(1); id <= m.nextID; id++ {
		if s, _ := m.GetByID(ctx, id); s != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *mockScheduleRepo) AddGames(ctx context.Context, games []model.Game) error {
	return m.games.save(games)
}

func (m *mockScheduleRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.schedules[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.schedules, id)
	for _, g := range m.games.bySchedule(id) {
		delete(m.games.games, g.ID)
	}
	return nil
}

type mockGameRepo struct {
	games  map[uint]*model.Game
	nextID uint
	getErr error
}

func newMockGameRepo() *mockGameRepo {
	return &mockGameRepo{games: make(map[uint]*model.Game)}
}

func (m *mockGameRepo) save(games []model.Game) error {
	for i := range games {
		m.nextID++
		games[i].ID = m.nextID
		g := games[i]
		m.games[g.ID] = &g
	}
	return nil
}

func (m *mockGameRepo) bySchedule(scheduleID uint) []model.Game {
	out := []model.Game{}
	for id := uint(1); id <= m.nextID; id++ {
		if g, ok := m.games[id]; ok && g.ScheduleID == scheduleID {
			out = append(out, *g)
		}
	}
	return out
}

func (m *mockGameRepo) GetByID(ctx context.Context, id uint) (*model.Game, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	g, ok := m.games[id]
	if !ok {
		return nil, nil
	}
	out := *g
	return &out, nil
}

func (m *mockGameRepo) List(ctx context.Context) ([]model.Game, error) {
	var out []model.Game
	for id := uint(1); id <= m.nextID; id++ {
		if g, ok := m.games[id]; ok {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m *mockGameRepo) Update(ctx context.Context, g *model.Game) error {
	stored := *g
	m.games[g.ID] = &stored
	return nil
}

func (m *mockGameRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.games[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.games, id)
	return nil
}

type mockCrewRepo struct {
	crews     map[uint]*model.CrewSchedule
	members   *mockMemberRepo
	nextID    uint
	nextSlot  uint
	createErr error
}

func newMockCrewRepo(members *mockMemberRepo) *mockCrewRepo {
	return &mockCrewRepo{crews: make(map[uint]*model.CrewSchedule), members: members}
}

func (m *mockCrewRepo) Create(ctx context.Context, cs *model.CrewSchedule) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	cs.ID = m.nextID
	for i := range cs.CrewAssignments {
		cs.CrewAssignments[i].CrewScheduleID = cs.ID
	}
	stored := *cs
	stored.CrewAssignments = nil
	m.crews[cs.ID] = &stored
	return m.AddAssignments(ctx, cs.CrewAssignments)
}

func (m *mockCrewRepo) GetByID(ctx context.Context, id uint) (*model.CrewSchedule, error) {
	cs, ok := m.crews[id]
	if !ok {
		return nil, nil
	}
	out := *cs
	out.CrewAssignments = slices.Clone(cs.CrewAssignments)
	for i, a := range out.CrewAssignments {
		if a.MemberID != nil {
			out.CrewAssignments[i].Member = m.members.members[*a.MemberID]
		}
	}
	return &out, nil
}

func (m *mockCrewRepo) ListByGame(ctx context.Context, gameID uint) ([]model.CrewSchedule, error) {
	var out []model.CrewSchedule
	for id := uint(1); id <= m.nextID; id++ {
		if cs, ok := m.crews[id]; ok && cs.GameID == gameID {
			loaded, _ := m.GetByID(ctx, id)
			out = append(out, *loaded)
		}
	}
	return out, nil
}

func (m *mockCrewRepo) AddAssignments(ctx context.Context, assignments []model.CrewAssignment) error {
	for i := range assignments {
		m.nextSlot++
		assignments[i].ID = m.nextSlot
		cs := m.crews[assignments[i].CrewScheduleID]
		cs.CrewAssignments = append(cs.CrewAssignments, assignments[i])
	}
	return nil
}

func (m *mockCrewRepo) AssignedMemberIDs(ctx context.Context, gameID uint) ([]uint, error) {
	var ids []uint
	crews, _ := m.ListByGame(ctx, gameID)
	for _, cs := range crews {
		for _, a := range cs.CrewAssignments {
			if a.MemberID != nil && !slices.Contains(ids, *a.MemberID) {
				ids = append(ids, *a.MemberID)
			}
		}
	}
	return ids, nil
}

func (m *mockCrewRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.crews[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.crews, id)
	return nil
}

type mockMemberRepo struct {
	members   map[uint]*model.Member
	nextID    uint
	createErr error
}

func newMockMemberRepo() *mockMemberRepo {
	return &mockMemberRepo{members: make(map[uint]*model.Member)}
}

func (m *mockMemberRepo) add(mem model.Member) *model.Member {
	m.nextID++
	mem.ID = m.nextID
	m.members[mem.ID] = &mem
	return &mem
}

func (m *mockMemberRepo) Create(ctx context.Context, mem *model.Member) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	mem.ID = m.nextID
	m.members[mem.ID] = mem
	return nil
}

func (m *mockMemberRepo) GetByID(ctx context.Context, id uint) (*model.Member, error) {
	return m.members[id], nil
}

func (m *mockMemberRepo) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	for _, mem := range m.members {
		if mem.Email == email {
			return mem, nil
		}
	}
	return nil, nil
}

func (m *mockMemberRepo) List(ctx context.Context) ([]model.Member, error) {
	var out []model.Member
	for id := uint(1); id <= m.nextID; id++ {
		if mem, ok := m.members[id]; ok {
			out = append(out, *mem)
		}
	}
	return out, nil
}

func (m *mockMemberRepo) Update(ctx context.Context, mem *model.Member) error {
	m.members[mem.ID] = mem
	return nil
}

func (m *mockMemberRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := m.members[id]; !ok {
		return database.ErrNotFound
	}
	delete(m.members, id)
	return nil
}

func (m *mockMemberRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.members)), nil
}

func (m *mockMemberRepo) ExistingEmails(ctx context.Context, emails []string) ([]string, error) {
	var out []string
	for _, mem := range m.members {
		if slices.Contains(emails, strings.ToLower(mem.Email)) {
			out = append(out, mem.Email)
		}
	}
	slices.Sort(out)
	return out, nil
}

type mockAvailabilityRepo struct {
	entries []model.Availability
}

func (m *mockAvailabilityRepo) Create(ctx context.Context, a *model.Availability) error {
	a.ID = uint(len(m.entries) + 1)
	m.entries = append(m.entries, *a)
	return nil
}

func (m *mockAvailabilityRepo) Exists(ctx context.Context, memberID, gameID uint) (bool, error) {
	return slices.ContainsFunc(m.entries, func(a model.Availability) bool {
		return a.MemberID == memberID && a.GameID == gameID
	}), nil
}

func (m *mockAvailabilityRepo) ListByGame(ctx context.Context, gameID uint) ([]model.Availability, error) {
	var out []model.Availability
	for _, a := range m.entries {
		if a.GameID == gameID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *mockAvailabilityRepo) UnavailableMemberIDs(ctx context.Context, gameID uint) ([]uint, error) {
	var out []uint
	for _, a := range m.entries {
		if a.GameID == gameID && !a.Available {
			out = append(out, a.MemberID)
		}
	}
	return out, nil
}

type mockTemplateRepo struct {
	templates map[uint]*model.Template
	nextID    uint
	deleted   []uint
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{templates: make(map[uint]*model.Template)}
}

func (m *mockTemplateRepo) Create(ctx context.Context, t *model.Template) error {
	m.nextID++
	t.ID = m.nextID
	m.templates[t.ID] = t
	return nil
}

func (m *mockTemplateRepo) GetByID(ctx context.Context, id uint) (*model.Template, error) {
	return m.templates[id], nil
}

func (m *mockTemplateRepo) List(ctx context.Context) ([]model.Template, error) {
	var out []model.Template
	for id := uint(1); id <= m.nextID; id++ {
		if t, ok := m.templates[id]; ok {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (m *mockTemplateRepo) Exists(ctx context.Context, id uint) (bool, error) {
	_, ok := m.templates[id]
	return ok, nil
}

func (m *mockTemplateRepo) Delete(ctx context.Context, id uint) error {
	m.deleted = append(m.deleted, id)
	delete(m.templates, id)
	return nil
}

type mockInvitationRepo struct {
	saved  []model.Invitation
	cutoff time.Time
}

func (m *mockInvitationRepo) CreateBatch(ctx context.Context, invitations []model.Invitation) error {
	for i := range invitations {
		invitations[i].ID = uint(len(m.saved) + 1)
		m.saved = append(m.saved, invitations[i])
	}
	return nil
}

func (m *mockInvitationRepo) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	m.cutoff = cutoff
	kept := m.saved[:0]
	var removed int64
	for _, inv := range m.saved {
		if inv.CreatedAt.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, inv)
	}
	m.saved = kept
	return removed, nil
}

type recordingPublisher struct {
	events []*Event
}

func (p *recordingPublisher) Publish(event *Event) {
	p.events = append(p.events, event)
}

func (p *recordingPublisher) types() []EventType {
	out := make([]EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
