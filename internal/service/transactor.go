package service

import (
	"context"

	"github.com/frogcrew/api/internal/model"
)

// Transactor runs fn in a single database transaction. Repositories called
// with the context handed to fn take part in that transaction.
type Transactor interface {
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// GameLookup is the read access to games shared by several services
type GameLookup interface {
	GetByID(ctx context.Context, id uint) (*model.Game, error)
}

// MemberLookup is the read access to members shared by several services
type MemberLookup interface {
	GetByID(ctx context.Context, id uint) (*model.Member, error)
}
