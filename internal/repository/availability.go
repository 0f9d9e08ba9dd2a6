package repository

import (
	"context"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// AvailabilityRepository handles member availability data access
type AvailabilityRepository struct {
	db *database.DB
}

// NewAvailabilityRepository creates a new availability repository
func NewAvailabilityRepository(db *database.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

// Create stores a submission. Returns database.ErrDuplicate when the member
// already answered for the game.
func (r *AvailabilityRepository) Create(ctx context.Context, a *model.Availability) error {
	return database.Translate(r.db.Conn(ctx).Omit("Member", "Game").Create(a).Error)
}

// Exists reports whether the member already submitted for the game
func (r *AvailabilityRepository) Exists(ctx context.Context, memberID, gameID uint) (bool, error) {
	var count int64
	err := r.db.Conn(ctx).Model(&model.Availability{}).
		Where("member_id = ? AND game_id = ?", memberID, gameID).
		Count(&count).Error
	return count > 0, database.Translate(err)
}

// ListByGame returns every submission for a game
func (r *AvailabilityRepository) ListByGame(ctx context.Context, gameID uint) ([]model.Availability, error) {
	var out []model.Availability
	err := r.db.Conn(ctx).Where("game_id = ?", gameID).Order("id").Find(&out).Error
	return out, database.Translate(err)
}

// UnavailableMemberIDs returns members who said they cannot work the game
func (r *AvailabilityRepository) UnavailableMemberIDs(ctx context.Context, gameID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Conn(ctx).Model(&model.Availability{}).
		Where("game_id = ? AND available = ?", gameID, false).
		Pluck("member_id", &ids).Error
	return ids, database.Translate(err)
}
