package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

// DefaultBcryptCost is used when the service is built without an explicit cost
const DefaultBcryptCost = 12

// MemberRepository defines the interface for member storage
type MemberRepository interface {
	CrewMemberDirectory
	Create(ctx context.Context, m *model.Member) error
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
	Update(ctx context.Context, m *model.Member) error
	Delete(ctx context.Context, id uint) error
	Count(ctx context.Context) (int64, error)
	ExistingEmails(ctx context.Context, emails []string) ([]string, error)
}

// MemberService manages crew member accounts
type MemberService struct {
	tx         Transactor
	repo       MemberRepository
	bcryptCost int
}

// NewMemberService creates a new member service. A zero cost selects DefaultBcryptCost.
func NewMemberService(tx Transactor, repo MemberRepository, bcryptCost int) *MemberService {
	if bcryptCost == 0 {
		bcryptCost = DefaultBcryptCost
	}
	return &MemberService{tx: tx, repo: repo, bcryptCost: bcryptCost}
}

// CreateMember adds a member with a hashed password
func (s *MemberService) CreateMember(ctx context.Context, req *model.CreateMemberRequest) (*model.Member, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, err
	}

	m := &model.Member{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              req.Email,
		PhoneNumber:        req.PhoneNumber,
		Role:               req.Role,
		QualifiedPositions: req.QualifiedPositions,
		PasswordHash:       string(hash),
	}
	if m.QualifiedPositions == nil {
		m.QualifiedPositions = []string{}
	}

	err = s.tx.Transaction(ctx, func(ctx context.Context) error {
		existing, err := s.repo.GetByEmail(ctx, m.Email)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrEmailAlreadyExists
		}
		return s.repo.Create(ctx, m)
	})
	if errors.Is(err, database.ErrDuplicate) {
		return nil, ErrEmailAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListMembers returns every member
func (s *MemberService) ListMembers(ctx context.Context) ([]model.Member, error) {
	var out []model.Member
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Member{}
	}
	return out, nil
}

// GetMember returns one member
func (s *MemberService) GetMember(ctx context.Context, id uint) (*model.Member, error) {
	var m *model.Member
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.repo.GetByID(ctx, id)
		if err == nil && m == nil {
			err = notFound(ErrMemberNotFound, id)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// UpdateMember applies a partial update. Email and password are not editable here.
func (s *MemberService) UpdateMember(ctx context.Context, id uint, req *model.UpdateMemberRequest) (*model.Member, error) {
	var m *model.Member
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		m, err = s.repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if m == nil {
			return notFound(ErrMemberNotFound, id)
		}
		req.Apply(m)
		return s.repo.Update(ctx, m)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// DeleteMember removes a member and their assignments and availability
func (s *MemberService) DeleteMember(ctx context.Context, id uint) error {
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if errors.Is(err, database.ErrNotFound) {
		return notFound(ErrMemberNotFound, id)
	}
	return err
}
