package repository

import (
	"context"
	"time"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// InvitationRepository handles invitation data access
type InvitationRepository struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation repository
func NewInvitationRepository(db *database.DB) *InvitationRepository {
	return &InvitationRepository{db: db}
}

// CreateBatch stores several invitations in one statement
func (r *InvitationRepository) CreateBatch(ctx context.Context, invitations []model.Invitation) error {
	if len(invitations) == 0 {
		return nil
	}
	return database.Translate(r.db.Conn(ctx).Create(&invitations).Error)
}

// ListByEmail returns invitations sent to an address, newest first
func (r *InvitationRepository) ListByEmail(ctx context.Context, email string) ([]model.Invitation, error) {
	var out []model.Invitation
	err := r.db.Conn(ctx).Where("email = ?", email).Order("created_at DESC, id DESC").Find(&out).Error
	return out, database.Translate(err)
}

// DeleteCreatedBefore removes invitations issued before cutoff and reports
// how many were removed
func (r *InvitationRepository) DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.Conn(ctx).Where("created_at < ?", cutoff).Delete(&model.Invitation{})
	return res.RowsAffected, database.Translate(res.Error)
}
