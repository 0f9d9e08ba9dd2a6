package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/frogcrew/api/internal/model"
)

// maxBodyBytes caps request bodies
const maxBodyBytes = 1 << 20

var errEmptyBody = errors.New("request body is empty")

// MessageResponse is the body of a successful delete
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}

// WriteMessage writes a 200 response carrying a short message
func WriteMessage(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResponse{Message: msg})
}

// WriteError writes an error response using RFC 9457 Problem Details
func WriteError(c *gin.Context, err *model.ProblemDetails) {
	if err.Instance == "" {
		err.Instance = c.Request.URL.Path
	}
	err.WriteJSON(c.Writer)
	c.Abort()
}

// readBody reads the request body up to maxBodyBytes
func readBody(c *gin.Context) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
}

// readRequiredBody is readBody for endpoints that need a payload
func readRequiredBody(c *gin.Context) ([]byte, error) {
	body, err := readBody(c)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, errEmptyBody
	}
	return body, nil
}

// DecodeJSON decodes a JSON request body into v, rejecting unknown fields.
// Used for request DTOs.
func DecodeJSON(c *gin.Context, v any) error {
	body, err := readRequiredBody(c)
	if err != nil {
		return err
	}
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

// DecodeEntity decodes an entity body. Unknown fields are ignored because
// clients post back entities they previously read, server fields included.
func DecodeEntity(c *gin.Context, v any) error {
	body, err := readRequiredBody(c)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// normalizer is implemented by request types that sanitize their own fields
type normalizer interface {
	Normalize()
}

// bind decodes, normalizes and validates a body. It writes the error
// response itself and reports whether the handler should continue.
func bind(c *gin.Context, v any, strict bool) bool {
	decode := DecodeEntity
	if strict {
		decode = DecodeJSON
	}
	if err := decode(c, v); err != nil {
		WriteError(c, bodyError(err))
		return false
	}
	if n, ok := v.(normalizer); ok {
		n.Normalize()
	}
	if errs := model.Validate(v); len(errs) > 0 {
		WriteError(c, model.NewValidationError(errs))
		return false
	}
	return true
}

func bodyError(err error) *model.ProblemDetails {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return model.NewBadRequestError("request body too large")
	}
	if errors.Is(err, errEmptyBody) {
		return model.NewBadRequestError(errEmptyBody.Error())
	}
	return model.NewBadRequestError("invalid request body: " + err.Error())
}

// pathID parses a numeric path parameter. On failure it writes a 400 and
// returns false.
func pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		WriteError(c, model.NewBadRequestError("invalid "+name+": "+strconv.Quote(raw)))
		return 0, false
	}
	return uint(id), true
}
