package repository

import (
	"context"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// MemberRepository handles crew member data access
type MemberRepository struct {
	db *database.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *database.DB) *MemberRepository {
	return &MemberRepository{db: db}
}

// Create inserts a member. Returns database.ErrDuplicate if the email is taken.
func (r *MemberRepository) Create(ctx context.Context, m *model.Member) error {
	return database.Translate(r.db.Conn(ctx).Create(m).Error)
}

// GetByID retrieves a member. Returns nil, nil if not found.
func (r *MemberRepository) GetByID(ctx context.Context, id uint) (*model.Member, error) {
	var m model.Member
	found, err := first(r.db.Conn(ctx), &m, id)
	if err != nil || !found {
		return nil, database.Translate(err)
	}
	return &m, nil
}

// GetByEmail retrieves a member by login email. Returns nil, nil if not found.
func (r *MemberRepository) GetByEmail(ctx context.Context, email string) (*model.Member, error) {
	var m model.Member
	found, err := first(r.db.Conn(ctx), &m, "email = ?", email)
	if err != nil || !found {
		return nil, database.Translate(err)
	}
	return &m, nil
}

// List returns all members ordered by last then first name
func (r *MemberRepository) List(ctx context.Context) ([]model.Member, error) {
	var out []model.Member
	err := r.db.Conn(ctx).Order("last_name, first_name, id").Find(&out).Error
	return out, database.Translate(err)
}

// Update saves all fields of an existing member
func (r *MemberRepository) Update(ctx context.Context, m *model.Member) error {
	return database.Translate(r.db.Conn(ctx).Save(m).Error)
}

// Count returns the number of stored members
func (r *MemberRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.Conn(ctx).Model(&model.Member{}).Count(&n).Error
	return n, database.Translate(err)
}

// ExistingEmails returns the subset of emails that belong to members
func (r *MemberRepository) ExistingEmails(ctx context.Context, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, nil
	}
	var out []string
	err := r.db.Conn(ctx).Model(&model.Member{}).Where("email IN ?", emails).Order("email").Pluck("email", &out).Error
	return out, database.Translate(err)
}

// Delete removes a member along with their crew assignments and availability.
// Returns database.ErrNotFound if no member matched.
func (r *MemberRepository) Delete(ctx context.Context, id uint) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		tx := r.db.Conn(ctx)
		if err := tx.Where("member_id = ?", id).Delete(&model.CrewAssignment{}).Error; err != nil {
			return database.Translate(err)
		}
		if err := tx.Where("member_id = ?", id).Delete(&model.Availability{}).Error; err != nil {
			return database.Translate(err)
		}
		res := tx.Delete(&model.Member{}, id)
		if res.Error != nil {
			return database.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	})
}
