// Package helpers provides test utility functions for the FrogCrew API.
//
// # JWT Helpers
//
//	tokens := helpers.NewTestJWTService(t)
//	token := helpers.TokenFor(t, tokens, admin)
//	stale := helpers.ExpiredTokenFor(t, member)
//
// # Request Helpers
//
//	rr := helpers.NewRequest(t, http.MethodPost, "/api/gameSchedule").
//	    WithBody(schedule).
//	    WithToken(token).
//	    Do(router)
//
// # Assertion Helpers
//
//	helpers.AssertProblemDetails(t, rr, http.StatusNotFound, model.ErrCodeNotFound)
//	helpers.AssertValidationError(t, rr, "games[0].gameDate")
//	helpers.AssertRecordNotExists(t, db, &model.Template{}, id)
package helpers
