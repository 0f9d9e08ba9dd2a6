package service

import (
	"context"
	"errors"
	"testing"

	"github.com/frogcrew/api/internal/model"
)

func newTestAvailabilityService(t *testing.T) (*AvailabilityService, *mockMemberRepo, model.Game) {
	t.Helper()
	members := newMockMemberRepo()
	games := newMockGameRepo()
	list := []model.Game{{ScheduleID: 1, Opponent: "Baylor"}}
	if err := games.save(list); err != nil {
		t.Fatalf("save game: %v", err)
	}
	return NewAvailabilityService(&mockTx{}, &mockAvailabilityRepo{}, members, games), members, list[0]
}

func TestSubmitAvailability_OncePerGame(t *testing.T) {
	svc, members, game := newTestAvailabilityService(t)
	ctx := context.Background()
	m := members.add(model.Member{FirstName: "Dwayne"})

	got, err := svc.SubmitAvailability(ctx, &model.Availability{MemberID: m.ID, GameID: game.ID, Available: true})
	if err != nil {
		t.Fatalf("SubmitAvailability() error = %v", err)
	}
	if got.ID == 0 {
		t.Error("expected stored id")
	}

	_, err = svc.SubmitAvailability(ctx, &model.Availability{MemberID: m.ID, GameID: game.ID, Available: false})
	if !errors.Is(err, ErrAvailabilityExists) {
		t.Errorf("expected ErrAvailabilityExists, got %v", err)
	}

	list, _ := svc.ListForGame(ctx, game.ID)
	if len(list) != 1 || !list[0].Available {
		t.Errorf("expected the first answer to stand, got %+v", list)
	}
}

func TestSubmitAvailability_UnknownReferences(t *testing.T) {
	svc, members, game := newTestAvailabilityService(t)
	ctx := context.Background()
	m := members.add(model.Member{})

	if _, err := svc.SubmitAvailability(ctx, &model.Availability{MemberID: 40, GameID: game.ID}); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
	if _, err := svc.SubmitAvailability(ctx, &model.Availability{MemberID: m.ID, GameID: 40}); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}

func TestListForGame_MissingGame(t *testing.T) {
	svc, _, _ := newTestAvailabilityService(t)

	if _, err := svc.ListForGame(context.Background(), 12); !errors.Is(err, ErrGameNotFound) {
		t.Errorf("expected ErrGameNotFound, got %v", err)
	}
}
