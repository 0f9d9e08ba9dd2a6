package handler

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/internal/testing/fixtures"
	"github.com/frogcrew/api/internal/testing/helpers"
)

func newMemberBody() map[string]any {
	return map[string]any{
		"firstName":          "Kevin",
		"lastName":           "Doan",
		"email":              "kevin@test.edu",
		"phoneNumber":        "817-555-0101",
		"password":           "password123",
		"role":               "MEMBER",
		"qualifiedPositions": []string{"DIRECTOR", "PRODUCER"},
	}
}

func TestCreateMember_Success(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)

	resp := helpers.NewRequest(t, http.MethodPost, "/api/crewMember").
		WithToken(s.tokenFor(t, admin)).
		WithBody(newMemberBody()).
		Do(s.router)

	helpers.AssertStatus(t, resp, http.StatusOK)
	assert.NotContains(t, resp.Body.String(), "password")

	var got model.Member
	helpers.DecodeResponse(t, resp, &got)
	assert.Equal(t, "kevin@test.edu", got.Email)
	assert.Equal(t, []string{model.PositionDirector, model.PositionProducer}, got.QualifiedPositions)
}

func TestCreateMember_DuplicateEmail(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)
	s.factory.CreateMember(t, fixtures.WithEmail("kevin@test.edu"))

	resp := helpers.NewRequest(t, http.MethodPost, "/api/crewMember").
		WithToken(s.tokenFor(t, admin)).
		WithBody(newMemberBody()).
		Do(s.router)

	helpers.AssertProblemDetails(t, resp, http.StatusConflict, model.ErrCodeConflict)
}

func TestCreateMember_ValidationErrors(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)

	body := newMemberBody()
	body["phoneNumber"] = "8175550101"

	resp := helpers.NewRequest(t, http.MethodPost, "/api/crewMember").
		WithToken(s.tokenFor(t, admin)).
		WithBody(body).
		Do(s.router)

	helpers.AssertValidationError(t, resp, "phoneNumber")
}

func TestCreateMember_UnknownFieldRejected(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)

	body := newMemberBody()
	body["isAdmin"] = true

	resp := helpers.NewRequest(t, http.MethodPost, "/api/crewMember").
		WithToken(s.tokenFor(t, admin)).
		WithBody(body).
		Do(s.router)

	helpers.AssertProblemDetails(t, resp, http.StatusBadRequest, model.ErrCodeInvalidInput)
}

func TestUpdateMember_ChangesOnlyGivenFields(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)
	m := s.factory.CreateMember(t)

	resp := helpers.NewRequest(t, http.MethodPut, fmt.Sprintf("/api/crewMember/%d", m.ID)).
		WithToken(s.tokenFor(t, admin)).
		WithBody(map[string]any{"phoneNumber": "682-555-0199"}).
		Do(s.router)

	helpers.AssertStatus(t, resp, http.StatusOK)
	var got model.Member
	helpers.DecodeResponse(t, resp, &got)
	assert.Equal(t, "682-555-0199", got.PhoneNumber)
	assert.Equal(t, m.FirstName, got.FirstName)
}

func TestDeleteMember_NotFound(t *testing.T) {
	s := newTestServer(t)
	admin := s.factory.CreateAdmin(t)

	resp := helpers.NewRequest(t, http.MethodDelete, "/api/crewMember/999").
		WithToken(s.tokenFor(t, admin)).
		Do(s.router)

	helpers.AssertProblemDetails(t, resp, http.StatusNotFound, model.ErrCodeNotFound)
}

func TestListMembers_AnyMember(t *testing.T) {
	s := newTestServer(t)
	m := s.factory.CreateMember(t)
	s.factory.CreateAdmin(t)

	resp := helpers.NewRequest(t, http.MethodGet, "/api/crewMember").
		WithToken(s.tokenFor(t, m)).
		Do(s.router)

	helpers.AssertStatus(t, resp, http.StatusOK)
	var got []model.Member
	helpers.DecodeResponse(t, resp, &got)
	assert.Len(t, got, 2)
}
