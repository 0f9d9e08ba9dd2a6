package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frogcrew/api/internal/database"
	"github.com/frogcrew/api/internal/model"
	"github.com/frogcrew/api/pkg/jwt"
)

// TestJWTSecret signs every token produced by NewTestJWTService
const TestJWTSecret = "frogcrew-test-secret"

// TestJWTIssuer is the issuer claim of test tokens
const TestJWTIssuer = "frogcrew-test"

// ============================================================================
// JWT Helpers
// ============================================================================

// NewTestJWTService creates a JWT service with a fixed test secret
func NewTestJWTService(t *testing.T) *jwt.Service {
	t.Helper()
	return jwt.NewTestService(TestJWTSecret, TestJWTIssuer, 15*time.Minute, nil)
}

// TokenFor signs a valid token for the member
func TokenFor(t *testing.T, tokens *jwt.Service, m *model.Member) string {
	t.Helper()
	token, _, err := tokens.Sign(jwt.Claims{MemberID: m.ID, Email: m.Email, Role: string(m.Role)})
	require.NoError(t, err, "helpers: failed to sign token")
	return token
}

// ExpiredTokenFor signs a token for the member that expired an hour ago
func ExpiredTokenFor(t *testing.T, m *model.Member) string {
	t.Helper()
	past := func() time.Time { return time.Now().Add(-2 * time.Hour) }
	tokens := jwt.NewTestService(TestJWTSecret, TestJWTIssuer, time.Hour, past)
	token, _, err := tokens.Sign(jwt.Claims{MemberID: m.ID, Email: m.Email, Role: string(m.Role)})
	require.NoError(t, err, "helpers: failed to sign token")
	return token
}

// ============================================================================
// HTTP Request Helpers
// ============================================================================

// RequestBuilder helps construct HTTP requests for testing
type RequestBuilder struct {
	t       *testing.T
	method  string
	path    string
	body    any
	raw     []byte
	headers map[string]string
}

// NewRequest creates a new request builder
func NewRequest(t *testing.T, method, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body (will be JSON encoded)
func (rb *RequestBuilder) WithBody(body any) *RequestBuilder {
	rb.body = body
	return rb
}

// WithRawBody sets the request body verbatim
func (rb *RequestBuilder) WithRawBody(body string) *RequestBuilder {
	rb.raw = []byte(body)
	return rb
}

// WithHeader adds a header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// WithToken adds a bearer token
func (rb *RequestBuilder) WithToken(token string) *RequestBuilder {
	return rb.WithHeader("Authorization", "Bearer "+token)
}

// Build creates the HTTP request
func (rb *RequestBuilder) Build() *http.Request {
	rb.t.Helper()

	var bodyReader io.Reader
	switch {
	case rb.raw != nil:
		bodyReader = bytes.NewReader(rb.raw)
	case rb.body != nil:
		bodyBytes, err := json.Marshal(rb.body)
		require.NoError(rb.t, err, "helpers: failed to marshal body")
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(rb.method, rb.path, bodyReader)
	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}
	return req
}

// Do builds the request and serves it through h
func (rb *RequestBuilder) Do(h http.Handler) *httptest.ResponseRecorder {
	rb.t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, rb.Build())
	return rr
}

// ============================================================================
// Response Assertion Helpers
// ============================================================================

// AssertStatus checks the status code and prints the body on mismatch
func AssertStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equalf(t, expected, resp.Code, "unexpected status. Body: %s", resp.Body.String())
}

// AssertProblemDetails validates an RFC 9457 Problem Details error response
// and returns it for further checks
func AssertProblemDetails(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int, expectedCode model.ErrorCode) model.ProblemDetails {
	t.Helper()

	AssertStatus(t, resp, expectedStatus)

	var problem model.ProblemDetails
	bodyBytes := resp.Body.Bytes()
	require.NoErrorf(t, json.Unmarshal(bodyBytes, &problem), "failed to decode problem details. Body: %s", bodyBytes)

	assert.Equal(t, "application/problem+json", resp.Header().Get("Content-Type"))
	assert.Equal(t, expectedStatus, problem.Status, "problem.status")
	if expectedCode != 0 {
		assert.Equal(t, expectedCode, problem.Code, "problem.code")
	}
	return problem
}

// AssertValidationError checks for a 400 validation error on a specific field
func AssertValidationError(t *testing.T, resp *httptest.ResponseRecorder, field string) {
	t.Helper()

	problem := AssertProblemDetails(t, resp, http.StatusBadRequest, model.ErrCodeValidation)
	fields := make([]string, 0, len(problem.Errors))
	for _, fe := range problem.Errors {
		fields = append(fields, fe.Field)
	}
	assert.Containsf(t, fields, field, "errors: %+v", problem.Errors)
}

// DecodeResponse decodes the response body into the given value
func DecodeResponse(t *testing.T, resp *httptest.ResponseRecorder, v any) {
	t.Helper()

	bodyBytes := resp.Body.Bytes()
	require.NoErrorf(t, json.Unmarshal(bodyBytes, v), "failed to decode response. Body: %s", bodyBytes)
}

// ============================================================================
// Database Assertion Helpers
// ============================================================================

// CountRows counts rows of the model's table matching the optional condition
func CountRows(t *testing.T, db *database.DB, value any, conds ...any) int64 {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	q := db.Conn(ctx).Model(value)
	if len(conds) > 0 {
		q = q.Where(conds[0], conds[1:]...)
	}
	var n int64
	require.NoError(t, q.Count(&n).Error, "helpers: count failed")
	return n
}

// AssertRecordExists checks that a row with the id exists
func AssertRecordExists(t *testing.T, db *database.DB, value any, id uint) {
	t.Helper()
	assert.EqualValuesf(t, 1, CountRows(t, db, value, "id = ?", id), "%T %d should exist", value, id)
}

// AssertRecordNotExists checks that no row with the id exists
func AssertRecordNotExists(t *testing.T, db *database.DB, value any, id uint) {
	t.Helper()
	assert.Zerof(t, CountRows(t, db, value, "id = ?", id), "%T %d should be gone", value, id)
}

// ============================================================================
// Utility Helpers
// ============================================================================

// BoolPtr returns a pointer to the bool, for partial update bodies
func BoolPtr(b bool) *bool {
	return &b
}
