package service

import (
	"context"

	"github.com/frogcrew/api/internal/model"
)

// TemplateRepository defines the interface for template storage
type TemplateRepository interface {
	TemplateLookup
	Create(ctx context.Context, t *model.Template) error
	List(ctx context.Context) ([]model.Template, error)
	Exists(ctx context.Context, id uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}

// TemplateService manages reusable crew templates
type TemplateService struct {
	tx   Transactor
	repo TemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(tx Transactor, repo TemplateRepository) *TemplateService {
	return &TemplateService{tx: tx, repo: repo}
}

// CreateTemplate stores a template and its positions
func (s *TemplateService) CreateTemplate(ctx context.Context, t *model.Template) (*model.Template, error) {
	t.ID = 0
	for i := range t.Positions {
		t.Positions[i].ID = 0
		t.Positions[i].TemplateID = 0
	}
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.repo.Create(ctx, t)
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// GetTemplate returns one template
func (s *TemplateService) GetTemplate(ctx context.Context, id uint) (*model.Template, error) {
	var t *model.Template
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		t, err = s.repo.GetByID(ctx, id)
		if err == nil && t == nil {
			err = notFound(ErrTemplateNotFound, id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// ListTemplates returns every template
func (s *TemplateService) ListTemplates(ctx context.Context) ([]model.Template, error) {
	var out []model.Template
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Template{}
	}
	return out, nil
}

// Exists reports whether a template is stored
func (s *TemplateService) Exists(ctx context.Context, id uint) (bool, error) {
	return s.repo.Exists(ctx, id)
}

// DeleteTemplate checks that the template exists, then removes it
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uint) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return notFound(ErrTemplateNotFound, id)
		}
		return s.repo.Delete(ctx, id)
	})
}
