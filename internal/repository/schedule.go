package repository

import (
	"context"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// ScheduleRepository handles game schedule data access
type ScheduleRepository struct {
	db *database.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *database.DB) *ScheduleRepository {
	return &ScheduleRepository{db: db}
}

// Create inserts a schedule together with any games it carries
func (r *ScheduleRepository) Create(ctx context.Context, schedule *model.GameSchedule) error {
	return database.Translate(r.db.Conn(ctx).Create(schedule).Error)
}

// GetByID retrieves a schedule and its games. Returns nil, nil if not found.
func (r *ScheduleRepository) GetByID(ctx context.Context, id uint) (*model.GameSchedule, error) {
	var schedule model.GameSchedule
	found, err := first(r.db.Conn(ctx).Preload("Games", orderedGames), &schedule, id)
	if err != nil || !found {
		return nil, database.Translate(err)
	}
	return &schedule, nil
}

// List returns every schedule with its games
func (r *ScheduleRepository) List(ctx context.Context) ([]model.GameSchedule, error) {
	var schedules []model.GameSchedule
	err := r.db.Conn(ctx).Preload("Games", orderedGames).Order("id").Find(&schedules).Error
	return schedules, database.Translate(err)
}

// AddGames inserts games that already reference their schedule
func (r *ScheduleRepository) AddGames(ctx context.Context, games []model.Game) error {
	if len(games) == 0 {
		return nil
	}
	return database.Translate(r.db.Conn(ctx).Create(&games).Error)
}

// Delete removes a schedule and everything beneath it. Returns
// database.ErrNotFound if no schedule matched.
func (r *ScheduleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		tx := r.db.Conn(ctx)

		var gameIDs []uint
		if err := tx.Model(&model.Game{}).Where("schedule_id = ?", id).Pluck("id", &gameIDs).Error; err != nil {
			return database.Translate(err)
		}
		if err := deleteGames(tx, gameIDs); err != nil {
			return database.Translate(err)
		}

		res := tx.Delete(&model.GameSchedule{}, id)
		if res.Error != nil {
			return database.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	})
}
