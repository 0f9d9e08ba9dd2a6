package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// TemplateRepository handles crew template data access
type TemplateRepository struct {
	db *database.DB
}

// NewTemplateRepository creates a new template repository
func NewTemplateRepository(db *database.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func orderedPositions(tx *gorm.DB) *gorm.DB {
	return tx.Order("id")
}

// Create inserts a template and its positions
func (r *TemplateRepository) Create(ctx context.Context, t *model.Template) error {
	return database.Translate(r.db.Conn(ctx).Create(t).Error)
}

// GetByID retrieves a template with its positions. Returns nil, nil if not found.
func (r *TemplateRepository) GetByID(ctx context.Context, id uint) (*model.Template, error) {
	var t model.Template
	found, err := first(r.db.Conn(ctx).Preload("Positions", orderedPositions), &t, id)
	if err != nil || !found {
		return nil, database.Translate(err)
	}
	return &t, nil
}

// List returns every template
func (r *TemplateRepository) List(ctx context.Context) ([]model.Template, error) {
	var out []model.Template
	err := r.db.Conn(ctx).Preload("Positions", orderedPositions).Order("id").Find(&out).Error
	return out, database.Translate(err)
}

// Exists reports whether a template with id is stored
func (r *TemplateRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.Conn(ctx).Model(&model.Template{}).Where("id = ?", id).Count(&count).Error
	return count > 0, database.Translate(err)
}

// Delete removes a template and its positions
func (r *TemplateRepository) Delete(ctx context.Context, id uint) error {
	return r.db.Transaction(ctx, func(ctx context.Context) error {
		tx := r.db.Conn(ctx)
		if err := tx.Where("template_id = ?", id).Delete(&model.TemplatePosition{}).Error; err != nil {
			return database.Translate(err)
		}
		res := tx.Delete(&model.Template{}, id)
		if res.Error != nil {
			return database.Translate(res.Error)
		}
		if res.RowsAffected == 0 {
			return database.ErrNotFound
		}
		return nil
	})
}
