package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// DefaultPassword is the plaintext password of every fixture member
const DefaultPassword = "testpass123"

// Factory creates test entities in the database
type Factory struct {
	db *database.DB
}

// New creates a new fixture factory
func New(db *database.DB) *Factory {
	return &Factory{db: db}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 6)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func (f *Factory) create(t *testing.T, what string, v any) {
	t.Helper()
	if err := f.db.Conn(context.Background()).Create(v).Error; err != nil {
		t.Fatalf("fixtures: failed to create %s: %v", what, err)
	}
}

// ============================================================================
// Member Fixtures
// ============================================================================

// MemberOpts customizes member creation
type MemberOpts struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      model.Role
	Positions []string
}

// CreateMember creates a member with optional customizations
func (f *Factory) CreateMember(t *testing.T, opts ...func(*MemberOpts)) *model.Member {
	t.Helper()

	id := randomID()
	o := &MemberOpts{
		FirstName: "Crew",
		LastName:  "Member " + id,
		Email:     fmt.Sprintf("crew_%s@test.local", id),
		Password:  DefaultPassword,
		Role:      model.RoleMember,
		Positions: []string{model.PositionCamera},
	}
	for _, fn := range opts {
		fn(o)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(o.Password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("fixtures: failed to hash password: %v", err)
	}

	m := &model.Member{
		FirstName:          o.FirstName,
		LastName:           o.LastName,
		Email:              o.Email,
		PhoneNumber:        "817-555-0100",
		Role:               o.Role,
		QualifiedPositions: o.Positions,
		PasswordHash:       string(hash),
	}
	f.create(t, "member", m)
	return m
}

// CreateAdmin creates an admin member
func (f *Factory) CreateAdmin(t *testing.T) *model.Member {
	return f.CreateMember(t, func(o *MemberOpts) {
		o.Role = model.RoleAdmin
	})
}

// WithPositions sets the member's qualified positions
func WithPositions(positions ...string) func(*MemberOpts) {
	return func(o *MemberOpts) { o.Positions = positions }
}

// WithEmail sets the member's email
func WithEmail(email string) func(*MemberOpts) {
	return func(o *MemberOpts) { o.Email = email }
}

// ============================================================================
// Schedule and Game Fixtures
// ============================================================================

// CreateSchedule creates an empty schedule
func (f *Factory) CreateSchedule(t *testing.T) *model.GameSchedule {
	t.Helper()

	s := &model.GameSchedule{
		Name:      "Schedule " + randomID(),
		Sport:     "Baseball",
		Season:    "2024-2025",
		StartDate: "2024-09-01",
		EndDate:   "2025-05-31",
	}
	f.create(t, "schedule", s)
	return s
}

// CreateGame creates a game on the given schedule
func (f *Factory) CreateGame(t *testing.T, schedule *model.GameSchedule, opts ...func(*model.Game)) *model.Game {
	t.Helper()

	g := &model.Game{
		ScheduleID: schedule.ID,
		GameDate:   "2024-10-10",
		GameStart:  "18:00",
		Venue:      "Amon G. Carter",
		Opponent:   "Opponent " + randomID(),
	}
	for _, fn := range opts {
		fn(g)
	}
	f.create(t, "game", g)
	return g
}

// ============================================================================
// Crew Fixtures
// ============================================================================

// CreateCrewSchedule creates a crew schedule on a game with one assignment
// per member, each in the member's first qualified position.
func (f *Factory) CreateCrewSchedule(t *testing.T, game *model.Game, members ...*model.Member) *model.CrewSchedule {
	t.Helper()

	cs := &model.CrewSchedule{GameID: game.ID}
	for _, m := range members {
		position := model.PositionUtility
		if len(m.QualifiedPositions) > 0 {
			position = m.QualifiedPositions[0]
		}
		cs.CrewAssignments = append(cs.CrewAssignments, model.CrewAssignment{
			MemberID:       &m.ID,
			Position:       position,
			ReportTime:     "12:00",
			ReportLocation: "CONTROL ROOM",
		})
	}
	f.create(t, "crew schedule", cs)
	return cs
}

// CreateTemplate creates a template with the given positions
func (f *Factory) CreateTemplate(t *testing.T, positions ...string) *model.Template {
	t.Helper()

	tpl := &model.Template{Name: "Template " + randomID()}
	for _, p := range positions {
		tpl.Positions = append(tpl.Positions, model.TemplatePosition{
			Position:       p,
			ReportTime:     "10:00",
			ReportLocation: "FIELD",
		})
	}
	f.create(t, "template", tpl)
	return tpl
}

// SetAvailability records a member's answer for a game
func (f *Factory) SetAvailability(t *testing.T, member *model.Member, game *model.Game, available bool) *model.Availability {
	t.Helper()

	a := &model.Availability{MemberID: member.ID, GameID: game.ID, Available: available}
	f.create(t, "availability", a)
	return a
}
