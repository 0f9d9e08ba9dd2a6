package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/pkg/jwt"
)

// mockAuthService implements AuthService for testing
type mockAuthService struct {
	claims *jwt.Claims
	err    error
	token  string
}

func (m *mockAuthService) ValidateAccessToken(_ context.Context, token string) (*jwt.Claims, error) {
	m.token = token
	if m.err != nil {
		return nil, m.err
	}
	return m.claims, nil
}

func newAuthRouter(svc AuthService, handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	chain := append([]gin.HandlerFunc{Auth(svc)}, handlers...)
	chain = append(chain, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"memberId": GetMemberID(c.Request.Context())})
	})
	r.GET("/protected", chain...)
	return r
}

func serve(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func problem(t *testing.T, rr *httptest.ResponseRecorder) model.ProblemDetails {
	t.Helper()
	var pd model.ProblemDetails
	if err := json.NewDecoder(rr.Body).Decode(&pd); err != nil {
		t.Fatalf("decode problem: %v", err)
	}
	return pd
}

// ============================================================================
// Auth Tests
// ============================================================================

func TestAuth_RejectsBadHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		detail string
	}{
		{"missing header", "", "missing authorization header"},
		{"no bearer prefix", "token123", "invalid authorization header format"},
		{"only bearer", "Bearer", "invalid authorization header format"},
		{"empty token", "Bearer ", "invalid authorization header format"},
		{"basic scheme", "Basic dXNlcjpwYXNz", "invalid authorization header format"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := serve(newAuthRouter(&mockAuthService{}), tt.header)

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
			if pd := problem(t, rr); pd.Detail != tt.detail {
				t.Errorf("detail = %q, want %q", pd.Detail, tt.detail)
			}
		})
	}
}

func TestAuth_ValidToken_SetsClaims(t *testing.T) {
	t.Parallel()

	svc := &mockAuthService{claims: &jwt.Claims{MemberID: 7, Role: jwt.RoleMember}}
	rr := serve(newAuthRouter(svc), "bearer abc.def.ghi")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if svc.token != "abc.def.ghi" {
		t.Errorf("token passed to service = %q", svc.token)
	}
	if rr.Body.String() != `{"memberId":7}` {
		t.Errorf("unexpected body %s", rr.Body.String())
	}
}

func TestAuth_ServiceErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		detail string
	}{
		{"expired", jwt.ErrTokenExpired, "token expired"},
		{"invalid", jwt.ErrInvalidToken, "invalid token"},
		{"other", errors.New("boom"), "invalid token"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rr := serve(newAuthRouter(&mockAuthService{err: tt.err}), "Bearer x")

			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d", rr.Code)
			}
			if pd := problem(t, rr); pd.Detail != tt.detail {
				t.Errorf("detail = %q, want %q", pd.Detail, tt.detail)
			}
		})
	}
}

// ============================================================================
// AdminOnly Tests
// ============================================================================

func TestAdminOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		role   string
		status int
	}{
		{"admin passes", jwt.RoleAdmin, http.StatusOK},
		{"member forbidden", jwt.RoleMember, http.StatusForbidden},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := &mockAuthService{claims: &jwt.Claims{MemberID: 1, Role: tt.role}}
			rr := serve(newAuthRouter(svc, AdminOnly()), "Bearer x")

			if rr.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, rr.Code)
			}
		})
	}
}

func TestAdminOnly_WithoutAuth_Unauthorized(t *testing.T) {
	t.Parallel()

	r := gin.New()
	r.GET("/protected", AdminOnly(), func(c *gin.Context) { c.Status(http.StatusOK) })

	if rr := serve(r, ""); rr.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rr.Code)
	}
}

func TestGetClaims_Missing_ReturnsNil(t *testing.T) {
	t.Parallel()

	if GetClaims(context.Background()) != nil {
		t.Error("expected nil claims")
	}
	if GetMemberID(context.Background()) != 0 {
		t.Error("expected zero member id")
	}
}
