package service

import (
	"context"
	"errors"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// AvailabilityRepository defines the interface for availability storage
type AvailabilityRepository interface {
	UnavailabilityLookup
	Create(ctx context.Context, a *model.Availability) error
	Exists(ctx context.Context, memberID, gameID uint) (bool, error)
	ListByGame(ctx context.Context, gameID uint) ([]model.Availability, error)
}

// AvailabilityService records whether members can work games
type AvailabilityService struct {
	tx      Transactor
	repo    AvailabilityRepository
	members MemberLookup
	games   GameLookup
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(tx Transactor, repo AvailabilityRepository, members MemberLookup, games GameLookup) *AvailabilityService {
	return &AvailabilityService{tx: tx, repo: repo, members: members, games: games}
}

// SubmitAvailability stores a member's answer for a game. Each member may
// answer once per game.
func (s *AvailabilityService) SubmitAvailability(ctx context.Context, a *model.Availability) (*model.Availability, error) {
	a.ID = 0
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		m, err := s.members.GetByID(ctx, a.MemberID)
		if err != nil {
			return err
		}
		if m == nil {
			return notFound(ErrMemberNotFound, a.MemberID)
		}
		g, err := s.games.GetByID(ctx, a.GameID)
		if err != nil {
			return err
		}
		if g == nil {
			return notFound(ErrGameNotFound, a.GameID)
		}

		exists, err := s.repo.Exists(ctx, a.MemberID, a.GameID)
		if err != nil {
			return err
		}
		if exists {
			return ErrAvailabilityExists
		}
		return s.repo.Create(ctx, a)
	})
	if errors.Is(err, database.ErrDuplicate) {
		return nil, ErrAvailabilityExists
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListForGame returns every submission for a game
func (s *AvailabilityService) ListForGame(ctx context.Context, gameID uint) ([]model.Availability, error) {
	var out []model.Availability
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		g, err := s.games.GetByID(ctx, gameID)
		if err != nil {
			return err
		}
		if g == nil {
			return notFound(ErrGameNotFound, gameID)
		}
		out, err = s.repo.ListByGame(ctx, gameID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Availability{}
	}
	return out, nil
}
