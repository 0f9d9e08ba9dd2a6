package model

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorCode is the numeric code carried in every problem body. The
// thousands digit groups codes by kind.
type ErrorCode int

const (
	// 1xxx: authentication
	ErrCodeUnauthorized ErrorCode = 1001
	ErrCodeTokenInvalid ErrorCode = 1003
	ErrCodeLoginFailed  ErrorCode = 1004

	// 2xxx: authorization
	ErrCodeForbidden ErrorCode = 2001
	ErrCodeNotAdmin  ErrorCode = 2002

	// 3xxx: resources
	ErrCodeNotFound      ErrorCode = 3001
	ErrCodeAlreadyExists ErrorCode = 3002
	ErrCodeConflict      ErrorCode = 3003

	// 4xxx: input
	ErrCodeValidation   ErrorCode = 4001
	ErrCodeInvalidInput ErrorCode = 4002
	ErrCodeRateLimited  ErrorCode = 4029

	// 5xxx: server
	ErrCodeInternal ErrorCode = 5001
	ErrCodeDatabase ErrorCode = 5002
)

const problemTypeBase = "https://frogcrew.app/problems/"

// ProblemDetails is an RFC 9457 problem body, extended with Code and the
// per-field Errors of a failed validation.
type ProblemDetails struct {
	Type     string       `json:"type"`
	Title    string       `json:"title"`
	Status   int          `json:"status"`
	Detail   string       `json:"detail,omitempty"`
	Instance string       `json:"instance,omitempty"`
	Errors   []FieldError `json:"errors,omitempty"`
	Code     ErrorCode    `json:"code,omitempty"`
}

// FieldError names one invalid field by its JSON path, e.g. "games[1].gameDate".
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (p *ProblemDetails) Error() string {
	return fmt.Sprintf("[%d] %s: %s", p.Status, p.Title, p.Detail)
}

// WriteJSON writes p as application/problem+json with p.Status.
func (p *ProblemDetails) WriteJSON(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

// problem fills Type and Title from the status and slug.
func problem(status int, slug string, code ErrorCode, detail string) *ProblemDetails {
	return &ProblemDetails{
		Type:   problemTypeBase + slug,
		Title:  http.StatusText(status),
		Status: status,
		Detail: detail,
		Code:   code,
	}
}

func NewUnauthorizedError(detail string) *ProblemDetails {
	return problem(http.StatusUnauthorized, "unauthorized", ErrCodeUnauthorized, detail)
}

func NewLoginFailedError() *ProblemDetails {
	return problem(http.StatusUnauthorized, "login-failed", ErrCodeLoginFailed, "Invalid email or password")
}

func NewForbiddenError(detail string) *ProblemDetails {
	return problem(http.StatusForbidden, "forbidden", ErrCodeForbidden, detail)
}

// NewNotAdminError is returned when a member account calls an admin route.
func NewNotAdminError() *ProblemDetails {
	return problem(http.StatusForbidden, "forbidden", ErrCodeNotAdmin, "This action requires an admin account")
}

// NewNotFoundError reports a missing resource by name, e.g. "game with id 4".
func NewNotFoundError(resource string) *ProblemDetails {
	return problem(http.StatusNotFound, "not-found", ErrCodeNotFound, resource+" not found")
}

func NewConflictError(detail string) *ProblemDetails {
	return problem(http.StatusConflict, "conflict", ErrCodeConflict, detail)
}

func NewBadRequestError(detail string) *ProblemDetails {
	return problem(http.StatusBadRequest, "bad-request", ErrCodeInvalidInput, detail)
}

// NewValidationError reports field-level failures as a 400, which the crew
// frontend reads as invalid arguments. Detail summarizes the first failure.
func NewValidationError(fields []FieldError) *ProblemDetails {
	detail := "One or more fields failed validation"
	switch n := len(fields); {
	case n == 1:
		detail = fields[0].Field + ": " + fields[0].Message
	case n > 1:
		detail = fmt.Sprintf("%s: %s (and %d more errors)", fields[0].Field, fields[0].Message, n-1)
	}
	pd := problem(http.StatusBadRequest, "validation", ErrCodeValidation, detail)
	pd.Title = "Validation Error"
	pd.Errors = fields
	return pd
}

func NewRateLimitError(retryAfter int) *ProblemDetails {
	return problem(http.StatusTooManyRequests, "rate-limited", ErrCodeRateLimited,
		fmt.Sprintf("Rate limit exceeded. Retry after %d seconds", retryAfter))
}

// NewInternalError hides the cause behind a generic detail unless one is given.
func NewInternalError(detail string) *ProblemDetails {
	if detail == "" {
		detail = "An unexpected error occurred"
	}
	return problem(http.StatusInternalServerError, "internal", ErrCodeInternal, detail)
}
