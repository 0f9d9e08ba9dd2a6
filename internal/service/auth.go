package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/pkg/jwt"
)

// CredentialStore finds members by login email
type CredentialStore interface {
	GetByEmail(ctx context.Context, email string) (*model.Member, error)
}

// AuthService handles login and token validation
type AuthService struct {
	members CredentialStore
	tokens  *jwt.Service
}

// NewAuthService creates a new auth service
func NewAuthService(members CredentialStore, tokens *jwt.Service) *AuthService {
	return &AuthService{members: members, tokens: tokens}
}

// Login checks the member's password and issues an access token
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.LoginResponse, error) {
	m, err := s.members.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(m.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Sign(jwt.Claims{
		MemberID: m.ID,
		Email:    m.Email,
		Role:     string(m.Role),
	})
	if err != nil {
		return nil, err
	}
	return &model.LoginResponse{Token: token, ExpiresAt: expiresAt, Member: m}, nil
}

// ValidateAccessToken returns the claims of a valid token
func (s *AuthService) ValidateAccessToken(_ context.Context, token string) (*jwt.Claims, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) || errors.Is(err, jwt.ErrInvalidToken) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
		}
		return nil, err
	}
	return claims, nil
}
