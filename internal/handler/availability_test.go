package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/testing/fixtures"
	"github.com/frogcrew/api/internal/testing/helpers"
)

// ============================================================================
// Availability
// ============================================================================

func TestSubmitAvailability_Own(t *testing.T) {
	s := newTestServer(t)
	m := s.factory.CreateMember(t)
	game := s.factory.CreateGame(t, s.factory.CreateSchedule(t))

	resp := helpers.NewRequest(t, http.MethodPost, "/api/availability").
		WithToken(s.tokenFor(t, m)).
		WithBody(map[string]any{"userId": m.ID, "gameId": game.ID, "available": false, "comment": "exam week"}).
		Do(s.router)

	helpers.AssertStatus(t, resp, http.StatusOK)

	resp = helpers.NewRequest(t, http.MethodGet, fmt.Sprintf("/api/availability/%d", game.ID)).
		WithToken(s.tokenFor(t, m)).
		Do(s.router)
	helpers.AssertStatus(t, resp, http.StatusOK)

	var got []model.Availability
	helpers.DecodeResponse(t, resp, &got)
	require.Len(t, got, 1)
	assert.False(t, got[0].Available)
	assert.Equal(t, "exam week", got[0].Comment)
}

func TestSubmitAvailability_Twice_Conflict(t *testing.T) {
	s := newTestServer(t)
	m := s.factory.CreateMember(t)
	game := s.factory.CreateGame(t, s.factory.CreateSchedule(t))
	s.factory.SetAvailability(t, m, game, true)

	resp := helpers.NewRequest(t, http.MethodPost, "/api/availability").
		WithToken(s.tokenFor(t, m)).
		WithBody(map[string]any{"userId": m.ID, "gameId": game.ID, "available": false}).
		Do(s.router)

	helpers.AssertProblemDetails(t, resp, http.StatusConflict, model.ErrCodeConflict)
}

func TestSubmitAvailability_ForSomeoneElse_Forbidden(t *testing.T) {
	s := newTestServer(t)
	m := s.factory.CreateMember(t)
	other := s.factory.CreateMember(t)
	game := s.factory.CreateGame(t, s.factory.CreateSchedule(t))

	resp := helpers.NewRequest(t, http.MethodPost, "/api/availability").
		WithToken(s.tokenFor(t, m)).
		WithBody(map[string]any{"userId": other.ID, "gameId": game.ID, "available": true}).
		Do(s.router)

	helpers.AssertProblemDetails(t, resp, http.StatusForbidden, model.ErrCodeForbidden)
}

func TestSubmitAvailability_GameNotFound(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)
	m := s.factory.CreateMember(t)

	resp := helpers.NewRequest(t, http.MethodPost, "/api/availability").
		WithToken(s.tokenFor(t, admin)).
		WithBody(map[string]any{"userId": m.ID, "gameId": 555, "available": true}).
		Do(s.router)

	helpers.AssertProblemDetails(t, resp, http.StatusNotFound, model.ErrCodeNotFound)
}

// ============================================================================
// Invitations
// ============================================================================

func TestInvite_Success(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)

	resp := helpers.NewRequest(t, http.MethodPost, "/api/invite").
		WithToken(s.tokenFor(t, admin)).
		WithBody(model.InviteRequest{Emails: []string{"a@test.edu", "B@test.edu"}}).
		Do(s.router)

	helpers.AssertStatus(t, resp, http.StatusOK)

	var got []model.Invitation
	helpers.DecodeResponse(t, resp, &got)
	require.Len(t, got, 2)
	assert.Equal(t, "b@test.edu", got[1].Email)
	assert.NotEqual(t, got[0].Token, got[1].Token)
}

func TestInvite_RegisteredEmail_Conflict(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)
	s.factory.CreateMember(t, fixtures.WithEmail("taken@test.edu"))

	resp := helpers.NewRequest(t, http.MethodPost, "/api/invite").
		WithToken(s.tokenFor(t, admin)).
		WithBody(model.InviteRequest{Emails: []string{"new@test.edu", "taken@test.edu"}}).
		Do(s.router)

	pd := helpers.AssertProblemDetails(t, resp, http.StatusConflict, model.ErrCodeConflict)
	assert.Contains(t, pd.Detail, "taken@test.edu")
	assert.Zero(t, helpers.CountRows(t, s.db, &model.Invitation{}))
}

func TestInvite_EmptyList(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)

	resp := helpers.NewRequest(t, http.MethodPost, "/api/invite").
		WithToken(s.tokenFor(t, admin)).
		WithBody(model.InviteRequest{Emails: []string{}}).
		Do(s.router)

	helpers.AssertValidationError(t, resp, "emails")
}
