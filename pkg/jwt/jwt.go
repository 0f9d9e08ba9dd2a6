package jwt

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidKey   = errors.New("invalid key")
)

// Roles carried in the role claim
const (
	RoleAdmin  = "ADMIN"
	RoleMember = "MEMBER"
)

// Claims are the registered claims plus the crew member identity
type Claims struct {
	gojwt.RegisteredClaims

	MemberID uint   `json:"member_id"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role,omitempty"`
}

// IsAdmin returns true if the claims indicate admin role
func (c *Claims) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Service signs and validates HS256 tokens
type Service struct {
	secret     []byte
	issuer     string
	expiration time.Duration
	now        func() time.Time
}

// Config holds JWT service configuration
type Config struct {
	Secret         string
	Issuer         string
	ExpirationMins int
}

// NewService creates a token service from a shared secret
func NewService(cfg Config) (*Service, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("%w: secret is empty", ErrInvalidKey)
	}
	exp := time.Duration(cfg.ExpirationMins) * time.Minute
	if exp <= 0 {
		exp = time.Hour
	}
	return &Service{
		secret:     []byte(cfg.Secret),
		issuer:     cfg.Issuer,
		expiration: exp,
		now:        time.Now,
	}, nil
}

// Sign fills issuer, subject and timing claims and returns the signed token
// with its expiry.
func (s *Service) Sign(claims Claims) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.expiration)

	claims.Issuer = s.issuer
	if claims.Subject == "" && claims.MemberID != 0 {
		claims.Subject = strconv.FormatUint(uint64(claims.MemberID), 10)
	}
	claims.IssuedAt = gojwt.NewNumericDate(now)
	claims.NotBefore = gojwt.NewNumericDate(now)
	claims.ExpiresAt = gojwt.NewNumericDate(expiresAt)

	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate parses a token, checking signature, algorithm, issuer and expiry
func (s *Service) Validate(tokenString string) (*Claims, error) {
	opts := []gojwt.ParserOption{
		gojwt.WithValidMethods([]string{gojwt.SigningMethodHS256.Alg()}),
		gojwt.WithTimeFunc(s.now),
		gojwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, gojwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	_, err := gojwt.ParseWithClaims(tokenString, claims, func(*gojwt.Token) (any, error) {
		return s.secret, nil
	}, opts...)
	switch {
	case err == nil:
		return claims, nil
	case errors.Is(err, gojwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
}

// GetExpiration returns the configured token lifetime
func (s *Service) GetExpiration() time.Duration {
	return s.expiration
}

// NewTestService creates a service with a fixed clock, for tests
func NewTestService(secret, issuer string, expiration time.Duration, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{
		secret:     []byte(secret),
		issuer:     issuer,
		expiration: expiration,
		now:        now,
	}
}
