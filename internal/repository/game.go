package repository

import (
	"context"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// GameRepository handles game data access
type GameRepository struct {
	db *database.DB
}

// NewGameRepository creates a new game repository
func NewGameRepository(db *database.DB) *GameRepository {
	return &GameRepository{db: db}
}

// GetByID retrieves a game. Returns nil, nil if not found.
func (r *GameRepository) GetByID(ctx context.Context, id uint) (*model.Game, error) {
	var game model.Game
	found, err := first(r.db.Conn(ctx), &game, id)
	if err != nil || !found {
		return nil, database.Translate(err)
	}
	return &game, nil
}

// List returns every game across all schedules
func (r *GameRepository) List(ctx context.Context) ([]model.Game, error) {
	var games []model.Game
	err := orderedGames(r.db.Conn(ctx)).Find(&games).Error
	return games, database.Translate(err)
}

// Update saves all fields of an existing game
func (r *GameRepository) Update(ctx context.Context, game *model.Game) error {
	return database.Translate(r.db.Conn(ctx).Omit("CrewSchedules").Save(game).Error)
}

// Delete removes a game with its crew schedules and availability. Returns
// database.ErrNotFound if no game matched.
func (r *GameRepository) Delete(ctx context.Context, id uint) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		tx := r.db.Conn(ctx)

		var count int64
		if err := tx.Model(&model.Game{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return database.Translate(err)
		}
		if count == 0 {
			return database.ErrNotFound
		}
		return database.Translate(deleteGames(tx, []uint{id}))
	})
}
