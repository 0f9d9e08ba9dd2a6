package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/frogcrew/api/internal/model"
)

func TestSendInvitations_StoresOnePerEmail(t *testing.T) {
	repo := &mockInvitationRepo{}
	svc := NewInvitationService(&mockTx{}, repo, newMockMemberRepo())

	got, err := svc.SendInvitations(context.Background(), []string{"a@tcu.edu", "b@tcu.edu"})
	if err != nil {
		t.Fatalf("SendInvitations() error = %v", err)
	}
	if len(got) != 2 || len(repo.saved) != 2 {
		t.Fatalf("expected 2 invitations, got %d returned, %d saved", len(got), len(repo.saved))
	}
	if got[0].Token == "" || got[0].Token == got[1].Token {
		t.Errorf("expected distinct tokens, got %q and %q", got[0].Token, got[1].Token)
	}
	if strings.Contains(got[0].Token, "-") {
		t.Errorf("token should be dashless, got %q", got[0].Token)
	}
}

func TestSendInvitations_RegisteredEmailRejectsBatch(t *testing.T) {
	repo := &mockInvitationRepo{}
	members := newMockMemberRepo()
	members.add(model.Member{Email: "kd@gmail.com"})
	svc := NewInvitationService(&mockTx{}, repo, members)

	_, err := svc.SendInvitations(context.Background(), []string{"new@tcu.edu", "kd@gmail.com"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
	if !strings.Contains(err.Error(), "kd@gmail.com") {
		t.Errorf("error should name the taken address, got %q", err.Error())
	}
	if len(repo.saved) != 0 {
		t.Errorf("no invitation should be stored, got %d", len(repo.saved))
	}
}

func TestPurgeExpired_RemovesOnlyOldInvitations(t *testing.T) {
	now := time.Date(2024, 10, 10, 12, 0, 0, 0, time.UTC)
	repo := &mockInvitationRepo{saved: []model.Invitation{
		{ID: 1, Email: "old@tcu.edu", CreatedAt: now.Add(-8 * 24 * time.Hour)},
		{ID: 2, Email: "new@tcu.edu", CreatedAt: now.Add(-time.Hour)},
	}}
	tx := &mockTx{}
	svc := NewInvitationService(tx, repo, newMockMemberRepo())
	svc.now = func() time.Time { return now }

	removed, err := svc.PurgeExpired(context.Background(), 7*24*time.Hour)
	if err != nil {
		t.Fatalf("PurgeExpired() error = %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}
	if len(repo.saved) != 1 || repo.saved[0].Email != "new@tcu.edu" {
		t.Errorf("unexpected remaining invitations: %+v", repo.saved)
	}
	if !repo.cutoff.Equal(now.Add(-7 * 24 * time.Hour)) {
		t.Errorf("unexpected cutoff %v", repo.cutoff)
	}
	if tx.calls != 1 {
		t.Errorf("expected one transaction, got %d", tx.calls)
	}
}
