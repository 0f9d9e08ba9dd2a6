package service

import (
	"context"
	"errors"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// ScheduleRepository defines the interface for game schedule storage
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *model.GameSchedule) error
	GetByID(ctx context.Context, id uint) (*model.GameSchedule, error)
	List(ctx context.Context) ([]model.GameSchedule, error)
	AddGames(ctx context.Context, games []model.Game) error
	Delete(ctx context.Context, id uint) error
}

// GameRepository defines the interface for game storage
type GameRepository interface {
	GameLookup
	List(ctx context.Context) ([]model.Game, error)
	Update(ctx context.Context, game *model.Game) error
	Delete(ctx context.Context, id uint) error
}

// GameScheduleService handles schedules and the games in them
type GameScheduleService struct {
	tx        Transactor
	schedules ScheduleRepository
	games     GameRepository
	events    EventPublisher
}

// NewGameScheduleService creates a new game schedule service
func NewGameScheduleService(tx Transactor, schedules ScheduleRepository, games GameRepository) *GameScheduleService {
	return &GameScheduleService{
		tx:        tx,
		schedules: schedules,
		games:     games,
		events:    noopPublisher{},
	}
}

// WithEvents publishes schedule changes to p
func (s *GameScheduleService) WithEvents(p EventPublisher) *GameScheduleService {
	s.events = publisherOrNoop(p)
	return s
}

// CreateSchedule persists a new schedule along with any games posted with it.
// Client supplied ids are ignored.
func (s *GameScheduleService) CreateSchedule(ctx context.Context, schedule *model.GameSchedule) (*model.GameSchedule, error) {
	schedule.ID = 0
	for i := range schedule.Games {
		schedule.Games[i].ID = 0
		schedule.Games[i].ScheduleID = 0
	}

	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.schedules.Create(ctx, schedule)
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// AddGamesToSchedule appends games to an existing schedule and returns the
// schedule with its full game list. There is no duplicate or conflict check.
func (s *GameScheduleService) AddGamesToSchedule(ctx context.Context, scheduleID uint, games []model.Game) (*model.GameSchedule, error) {
	var schedule *model.GameSchedule
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		schedule, err = s.schedules.GetByID(ctx, scheduleID)
		if err != nil {
			return err
		}
		if schedule == nil {
			return notFound(ErrScheduleNotFound, scheduleID)
		}

		existing := len(schedule.Games)
		for _, g := range games {
			g.ID = 0
			schedule.AddGame(g)
		}
		return s.schedules.AddGames(ctx, schedule.Games[existing:])
	})
	if err != nil {
		return nil, err
	}
	s.events.Publish(&Event{
		Type: EventGamesAdded,
		Data: GamesAddedEvent{ScheduleID: schedule.ID, Count: len(games)},
	})
	return schedule, nil
}

// GetAllGames returns every game across all schedules
func (s *GameScheduleService) GetAllGames(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		games, err = s.games.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if games == nil {
		games = []model.Game{}
	}
	return games, nil
}

// ListSchedules returns every schedule with its games
func (s *GameScheduleService) ListSchedules(ctx context.Context) ([]model.GameSchedule, error) {
	var schedules []model.GameSchedule
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		schedules, err = s.schedules.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if schedules == nil {
		schedules = []model.GameSchedule{}
	}
	return schedules, nil
}

// GetSchedule returns one schedule with its games
func (s *GameScheduleService) GetSchedule(ctx context.Context, id uint) (*model.GameSchedule, error) {
	var schedule *model.GameSchedule
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		schedule, err = s.schedules.GetByID(ctx, id)
		if err == nil && schedule == nil {
			err = notFound(ErrScheduleNotFound, id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// DeleteSchedule removes a schedule and every game, crew schedule and
// availability beneath it
func (s *GameScheduleService) DeleteSchedule(ctx context.Context, id uint) error {
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.schedules.Delete(ctx, id)
	})
	if errors.Is(err, database.ErrNotFound) {
		return notFound(ErrScheduleNotFound, id)
	}
	return err
}

// GetGame returns one game
func (s *GameScheduleService) GetGame(ctx context.Context, id uint) (*model.Game, error) {
	var game *model.Game
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		game, err = s.games.GetByID(ctx, id)
		if err == nil && game == nil {
			err = notFound(ErrGameNotFound, id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return game, nil
}

// UpdateGame applies a partial update to a game
func (s *GameScheduleService) UpdateGame(ctx context.Context, id uint, req *model.UpdateGameRequest) (*model.Game, error) {
	var game *model.Game
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		game, err = s.games.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if game == nil {
			return notFound(ErrGameNotFound, id)
		}
		req.Apply(game)
		return s.games.Update(ctx, game)
	})
	if err != nil {
		return nil, err
	}
	s.events.Publish(&Event{Type: EventGameUpdated, Data: game})
	return game, nil
}

// DeleteGame removes a game with its crew schedules and availability
func (s *GameScheduleService) DeleteGame(ctx context.Context, id uint) error {
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.games.Delete(ctx, id)
	})
	if errors.Is(err, database.ErrNotFound) {
		return notFound(ErrGameNotFound, id)
	}
	return err
}
