package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/frogcrew/api/internal/model"
)

// InvitationRepository defines the interface for invitation storage
type InvitationRepository interface {
	CreateBatch(ctx context.Context, invitations []model.Invitation) error
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// RegisteredEmails finds which addresses already belong to members
type RegisteredEmails interface {
	ExistingEmails(ctx context.Context, emails []string) ([]string, error)
}

// InvitationService issues sign-up invitations to prospective crew
type InvitationService struct {
	tx       Transactor
	repo     InvitationRepository
	members  RegisteredEmails
	newToken func() string
	now      func() time.Time
}

// NewInvitationService creates a new invitation service
func NewInvitationService(tx Transactor, repo InvitationRepository, members RegisteredEmails) *InvitationService {
	return &InvitationService{
		tx:      tx,
		repo:    repo,
		members: members,
		newToken: func() string {
			return strings.ReplaceAll(uuid.NewString(), "-", "")
		},
		now: time.Now,
	}
}

// SendInvitations stores one invitation per address. If any address already
// belongs to a member nothing is stored and ErrEmailAlreadyExists is returned
// naming the offending addresses.
func (s *InvitationService) SendInvitations(ctx context.Context, emails []string) ([]model.Invitation, error) {
	var invitations []model.Invitation
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		taken, err := s.members.ExistingEmails(ctx, emails)
		if err != nil {
			return err
		}
		if len(taken) > 0 {
			return fmt.Errorf("%w: %s", ErrEmailAlreadyExists, strings.Join(taken, ", "))
		}

		invitations = make([]model.Invitation, 0, len(emails))
		for _, e := range emails {
			invitations = append(invitations, model.Invitation{Email: e, Token: s.newToken()})
		}
		return s.repo.CreateBatch(ctx, invitations)
	})
	if err != nil {
		return nil, err
	}
	return invitations, nil
}

// PurgeExpired deletes invitations older than ttl and returns the number removed
func (s *InvitationService) PurgeExpired(ctx context.Context, ttl time.Duration) (int64, error) {
	var removed int64
	err := s.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		removed, err = s.repo.DeleteCreatedBefore(ctx, s.now().Add(-ttl))
		return err
	})
	return removed, err
}
