package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// CrewScheduleRepository handles crew schedule and assignment data access
type CrewScheduleRepository struct {
	db *database.DB
}

// NewCrewScheduleRepository creates a new crew schedule repository
func NewCrewScheduleRepository(db *database.DB) *CrewScheduleRepository {
	return &CrewScheduleRepository{db: db}
}

func preloadAssignments(tx *gorm.DB) *gorm.DB {
	return tx.Preload("CrewAssignments", func(db *gorm.DB) *gorm.DB {
		return db.Order("id")
	}).Preload("CrewAssignments.Member")
}

// Create inserts a crew schedule and its assignments. Member records referenced
// by assignments are never written through this path.
func (r *CrewScheduleRepository) Create(ctx context.Context, cs *model.CrewSchedule) error {
	return database.Translate(r.db.Conn(ctx).Omit("CrewAssignments.Member").Create(cs).Error)
}

// GetByID retrieves a crew schedule with its assignments. Returns nil, nil if not found.
func (r *CrewScheduleRepository) GetByID(ctx context.Context, id uint) (*model.CrewSchedule, error) {
	var cs model.CrewSchedule
	found, err := first(preloadAssignments(r.db.Conn(ctx)), &cs, id)
	if err != nil || !found {
		return nil, database.Translate(err)
	}
	return &cs, nil
}

// ListByGame returns the crew schedules of a game in creation order
func (r *CrewScheduleRepository) ListByGame(ctx context.Context, gameID uint) ([]model.CrewSchedule, error) {
	var out []model.CrewSchedule
	err := preloadAssignments(r.db.Conn(ctx)).Where("game_id = ?", gameID).Order("id").Find(&out).Error
	return out, database.Translate(err)
}

// AddAssignments inserts assignments that already reference their crew schedule
func (r *CrewScheduleRepository) AddAssignments(ctx context.Context, assignments []model.CrewAssignment) error {
	if len(assignments) == 0 {
		return nil
	}
	return database.Translate(r.db.Conn(ctx).Omit("Member").Create(&assignments).Error)
}

// AssignedMemberIDs returns the members holding any position on the game
func (r *CrewScheduleRepository) AssignedMemberIDs(ctx context.Context, gameID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Conn(ctx).
		Model(&model.CrewAssignment{}).
		Joins("JOIN crew_schedules ON crew_schedules.id = crew_assignments.crew_schedule_id").
		Where("crew_schedules.game_id = ? AND crew_assignments.member_id IS NOT NULL", gameID).
		Distinct().
		Pluck("crew_assignments.member_id", &ids).Error
	return ids, database.Translate(err)
}

// Delete removes a crew schedule and its assignments. Returns
// database.ErrNotFound if no crew schedule matched.
func (r *CrewScheduleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		tx := r.db.Conn(ctx)

		var count int64
		if err := tx.Model(&model.CrewSchedule{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return database.Translate(err)
		}
		if count == 0 {
			return database.ErrNotFound
		}
		return database.Translate(deleteCrewSchedules(tx, []uint{id}))
	})
}
