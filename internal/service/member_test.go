package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
)

func newTestMemberService() (*MemberService, *mockMemberRepo) {
	repo := newMockMemberRepo()
	return NewMemberService(&mockTx{}, repo, bcrypt.MinCost), repo
}

func TestCreateMember_HashesPassword(t *testing.T) {
	svc, _ := newTestMemberService()

	m, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{
		FirstName: "Kevin",
		LastName:  "Hart",
		Email:     "kh@gmail.com",
		Password:  "password",
		Role:      model.RoleMember,
	})
	if err != nil {
		t.Fatalf("CreateMember() error = %v", err)
	}
	if m.PasswordHash == "password" {
		t.Error("password should not be stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte("password")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if m.QualifiedPositions == nil {
		t.Error("positions should default to an empty list")
	}
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	svc, repo := newTestMemberService()
	repo.add(model.Member{Email: "kh@gmail.com"})

	_, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{Email: "kh@gmail.com", Password: "password"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestCreateMember_UniqueViolationMapsToDuplicate(t *testing.T) {
	svc, repo := newTestMemberService()
	repo.createErr = database.ErrDuplicate

	_, err := svc.CreateMember(context.Background(), &model.CreateMemberRequest{Email: "race@gmail.com", Password: "password"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Errorf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUpdateMember(t *testing.T) {
	svc, repo := newTestMemberService()
	m := repo.add(model.Member{FirstName: "Kevin", Role: model.RoleMember})
	role := model.RoleAdmin

	got, err := svc.UpdateMember(context.Background(), m.ID, &model.UpdateMemberRequest{Role: &role})
	if err != nil {
		t.Fatalf("UpdateMember() error = %v", err)
	}
	if !got.IsAdmin() || got.FirstName != "Kevin" {
		t.Errorf("unexpected member %+v", got)
	}

	if _, err := svc.UpdateMember(context.Background(), 99, &model.UpdateMemberRequest{}); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestDeleteMember_NotFound(t *testing.T) {
	svc, _ := newTestMemberService()

	if err := svc.DeleteMember(context.Background(), 5); !errors.Is(err, ErrMemberNotFound) {
		t.Errorf("expected ErrMemberNotFound, got %v", err)
	}
}

func TestGetMember(t *testing.T) {
	svc, repo := newTestMemberService()
	m := repo.add(model.Member{Email: "dj@gmail.com"})

	got, err := svc.GetMember(context.Background(), m.ID)
	if err != nil || got.Email != "dj@gmail.com" {
		t.Errorf("GetMember() = %+v, %v", got, err)
	}
}
