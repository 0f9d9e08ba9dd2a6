package service

import (
	"context"
	"errors"
	"slices"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// CrewScheduleRepository defines the interface for crew schedule storage
type CrewScheduleRepository interface {
	Create(ctx context.Context, cs *model.CrewSchedule) error
	GetByID(ctx context.Context, id uint) (*model.CrewSchedule, error)
	ListByGame(ctx context.Context, gameID uint) ([]model.CrewSchedule, error)
	AddAssignments(ctx context.Context, assignments []model.CrewAssignment) error
	AssignedMemberIDs(ctx context.Context, gameID uint) ([]uint, error)
	Delete(ctx context.Context, id uint) error
}

// CrewMemberDirectory lists members for crew building
type CrewMemberDirectory interface {
	MemberLookup
	List(ctx context.Context) ([]model.Member, error)
}

// UnavailabilityLookup reports who declined a game
type UnavailabilityLookup interface {
	UnavailableMemberIDs(ctx context.Context, gameID uint) ([]uint, error)
}

// TemplateLookup loads templates to stamp onto games
type TemplateLookup interface {
	GetByID(ctx context.Context, id uint) (*model.Template, error)
}

// CrewScheduleService builds and reads game crews
type CrewScheduleService struct {
	tx           Transactor
	crews        CrewScheduleRepository
	games        GameLookup
	members      CrewMemberDirectory
	availability UnavailabilityLookup
	templates    TemplateLookup
	events       EventPublisher
}

// CrewScheduleServiceConfig holds dependencies for the crew schedule service
type CrewScheduleServiceConfig struct {
	Tx           Transactor
	Crews        CrewScheduleRepository
	Games        GameLookup
	Members      CrewMemberDirectory
	Availability UnavailabilityLookup
	Templates    TemplateLookup
	Events       EventPublisher // optional
}

// NewCrewScheduleService creates a new crew schedule service
func NewCrewScheduleService(cfg CrewScheduleServiceConfig) *CrewScheduleService {
	return &CrewScheduleService{
		tx:           cfg.Tx,
		crews:        cfg.Crews,
		games:        cfg.Games,
		members:      cfg.Members,
		availability: cfg.Availability,
		templates:    cfg.Templates,
		events:       publisherOrNoop(cfg.Events),
	}
}

// CreateCrewSchedule attaches a crew schedule to an existing game and saves
// it with its assignments.
func (s *CrewScheduleService) CreateCrewSchedule(ctx context.Context, gameID uint, cs *model.CrewSchedule) (*model.CrewSchedule, error) {
	var saved *model.CrewSchedule
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		saved, err = s.createCrewSchedule(ctx, gameID, cs)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publishCrew(EventCrewScheduleCreated, saved, saved.CrewAssignments)
	return saved, nil
}

func (s *CrewScheduleService) createCrewSchedule(ctx context.Context, gameID uint, cs *model.CrewSchedule) (*model.CrewSchedule, error) {
	game, err := s.requireGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if err := s.requireMembers(ctx, cs.CrewAssignments); err != nil {
		return nil, err
	}

	cs.ID = 0
	cs.GameID = game.ID
	cs.Game = nil
	for i := range cs.CrewAssignments {
		resetAssignment(&cs.CrewAssignments[i])
	}
	if err := s.crews.Create(ctx, cs); err != nil {
		return nil, err
	}

	saved, err := s.crews.GetByID(ctx, cs.ID)
	if err != nil {
		return nil, err
	}
	saved.Game = game
	return saved, nil
}

// AddCrewAssignments appends assignments to an existing crew schedule
func (s *CrewScheduleService) AddCrewAssignments(ctx context.Context, crewScheduleID uint, assignments []model.CrewAssignment) (*model.CrewSchedule, error) {
	var cs *model.CrewSchedule
	var existing int
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		cs, err = s.crews.GetByID(ctx, crewScheduleID)
		if err != nil {
			return err
		}
		if cs == nil {
			return notFound(ErrCrewScheduleNotFound, crewScheduleID)
		}
		if err := s.requireMembers(ctx, assignments); err != nil {
			return err
		}

		existing = len(cs.CrewAssignments)
		for _, a := range assignments {
			resetAssignment(&a)
			cs.AddCrewAssignment(a)
		}
		if err := s.crews.AddAssignments(ctx, cs.CrewAssignments[existing:]); err != nil {
			return err
		}

		cs, err = s.crews.GetByID(ctx, crewScheduleID)
		if err != nil {
			return err
		}
		cs.Game, err = s.games.GetByID(ctx, cs.GameID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if existing <= len(cs.CrewAssignments) {
		s.publishCrew(EventCrewScheduleUpdated, cs, cs.CrewAssignments[existing:])
	}
	return cs, nil
}

// ListCrewSchedules returns the crew schedules of a game
func (s *CrewScheduleService) ListCrewSchedules(ctx context.Context, gameID uint) ([]model.CrewSchedule, error) {
	var out []model.CrewSchedule
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		game, err := s.requireGame(ctx, gameID)
		if err != nil {
			return err
		}
		out, err = s.crews.ListByGame(ctx, gameID)
		for i := range out {
			out[i].Game = game
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.CrewSchedule{}
	}
	return out, nil
}

// GetCrewList flattens every assignment on a game into one crew list
func (s *CrewScheduleService) GetCrewList(ctx context.Context, gameID uint) (*model.CrewList, error) {
	var list *model.CrewList
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		game, err := s.requireGame(ctx, gameID)
		if err != nil {
			return err
		}
		crews, err := s.crews.ListByGame(ctx, gameID)
		if err != nil {
			return err
		}

		list = &model.CrewList{
			GameID:        game.ID,
			GameDate:      game.GameDate,
			GameStart:     game.GameStart,
			Venue:         game.Venue,
			Opponent:      game.Opponent,
			CrewedMembers: []model.CrewedMember{},
		}
		for _, cs := range crews {
			for _, a := range cs.CrewAssignments {
				row := model.CrewedMember{
					CrewedUserID:   a.ID,
					UserID:         a.MemberID,
					Position:       a.Position,
					ReportTime:     a.ReportTime,
					ReportLocation: a.ReportLocation,
				}
				if a.Member != nil {
					row.FullName = a.Member.FullName()
				}
				list.CrewedMembers = append(list.CrewedMembers, row)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DeleteCrewSchedule removes a crew schedule and its assignments
func (s *CrewScheduleService) DeleteCrewSchedule(ctx context.Context, id uint) error {
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.crews.Delete(ctx, id)
	})
	if errors.Is(err, database.ErrNotFound) {
		return notFound(ErrCrewScheduleNotFound, id)
	}
	return err
}

// AvailableCrew returns members qualified for position who are neither
// already on the game's crew nor marked unavailable for it.
func (s *CrewScheduleService) AvailableCrew(ctx context.Context, gameID uint, position string) ([]model.Member, error) {
	if !model.IsPosition(position) {
		return nil, ErrUnknownPosition
	}

	out := []model.Member{}
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		if _, err := s.requireGame(ctx, gameID); err != nil {
			return err
		}
		assigned, err := s.crews.AssignedMemberIDs(ctx, gameID)
		if err != nil {
			return err
		}
		unavailable, err := s.availability.UnavailableMemberIDs(ctx, gameID)
		if err != nil {
			return err
		}
		members, err := s.members.List(ctx)
		if err != nil {
			return err
		}

		for _, m := range members {
			if !m.IsQualified(position) || slices.Contains(assigned, m.ID) || slices.Contains(unavailable, m.ID) {
				continue
			}
			out = append(out, m)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ApplyTemplate creates a crew schedule for the game with one open slot per
// template position
func (s *CrewScheduleService) ApplyTemplate(ctx context.Context, templateID, gameID uint) (*model.CrewSchedule, error) {
	var cs *model.CrewSchedule
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		tpl, err := s.templates.GetByID(ctx, templateID)
		if err != nil {
			return err
		}
		if tpl == nil {
			return notFound(ErrTemplateNotFound, templateID)
		}
		cs, err = s.createCrewSchedule(ctx, gameID, &model.CrewSchedule{CrewAssignments: tpl.Assignments()})
		return err
	})
	if err != nil {
		return nil, err
	}
	s.publishCrew(EventCrewScheduleCreated, cs, nil)
	return cs, nil
}

func (s *CrewScheduleService) requireGame(ctx context.Context, gameID uint) (*model.Game, error) {
	game, err := s.games.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, notFound(ErrGameNotFound, gameID)
	}
	return game, nil
}

func (s *CrewScheduleService) requireMembers(ctx context.Context, assignments []model.CrewAssignment) error {
	checked := make(map[uint]bool)
	for _, a := range assignments {
		if a.MemberID == nil || checked[*a.MemberID] {
			continue
		}
		m, err := s.members.GetByID(ctx, *a.MemberID)
		if err != nil {
			return err
		}
		if m == nil {
			return notFound(ErrMemberNotFound, *a.MemberID)
		}
		checked[*a.MemberID] = true
	}
	return nil
}

func resetAssignment(a *model.CrewAssignment) {
	a.ID = 0
	a.CrewScheduleID = 0
	a.Member = nil
}

// publishCrew announces a crew change to everyone and tells each newly
// assigned member about their slot
func (s *CrewScheduleService) publishCrew(typ EventType, cs *model.CrewSchedule, added []model.CrewAssignment) {
	s.events.Publish(&Event{
		Type: typ,
		Data: CrewScheduleEvent{GameID: cs.GameID, CrewScheduleID: cs.ID},
	})
	for _, a := range added {
		if a.MemberID == nil {
			continue
		}
		s.events.Publish(&Event{
			Type:     EventCrewAssigned,
			MemberID: *a.MemberID,
			Data: CrewAssignedEvent{
				GameID:         cs.GameID,
				CrewScheduleID: cs.ID,
				Position:       a.Position,
				ReportTime:     a.ReportTime,
				ReportLocation: a.ReportLocation,
			},
		})
	}
}
