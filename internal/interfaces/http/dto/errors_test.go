package dto

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code     string
		expected int
	}{
		{ErrCodeInvalidRequest, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeInsufficientStock, http.StatusConflict},
		{ErrCodeInternal, http.StatusInternalServerError},
		{ErrCodeTokenExpired, http.StatusUnauthorized},
		{ErrCodeTokenInvalid, http.StatusUnauthorized},
		{ErrCodeTokenRevoked, http.StatusUnauthorized},
		{ErrCodeRateLimited, http.StatusTooManyRequests},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetHTTPStatus(tt.code))
		})
	}

	t.Run("unknown codes map to 500", func(t *testing.T) {
		assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("SOMETHING_ELSE"))
	})
}

func TestErrorResponseShape(t *testing.T) {
	t.Run("error response omits empty fields", func(t *testing.T) {
		resp := NewErrorResponse(ErrCodeNotFound, "Resource not found")

		raw, err := json.Marshal(resp)
		require.NoError(t, err)

		assert.JSONEq(t, `{
			"success": false,
			"error": {"code": "NOT_FOUND", "message": "Resource not found"}
		}`, string(raw))
	})

	t.Run("request id is carried when present", func(t *testing.T) {
		resp := NewErrorResponseWithRequestID(ErrCodeInternal, "boom", "req-123")

		raw, err := json.Marshal(resp)
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &decoded))
		errInfo := decoded["error"].(map[string]interface{})
		assert.Equal(t, "req-123", errInfo["request_id"])
	})

	t.Run("validation response lists failed fields", func(t *testing.T) {
		resp := NewValidationErrorResponse("Request validation failed", "req-123", []ValidationDetail{
			{Field: "email", Message: "must be a valid email address"},
		})

		assert.Equal(t, ErrCodeInvalidRequest, resp.Error.Code)
		assert.Equal(t, "must be a valid email address", resp.Error.Details["email"])
	})
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 41, 1, 20)

	require.NotNil(t, resp.Meta)
	assert.Equal(t, int64(41), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
