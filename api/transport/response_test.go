package transport

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSuccess_JSONShape(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(NewSuccess(map[string]string{"id": "abc"}))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, true, decoded["success"])
	assert.Equal(t, map[string]interface{}{"id": "abc"}, decoded["data"])
	assert.NotContains(t, decoded, "error")
}

func TestNewSuccess_EmptyListIsKept(t *testing.T) {
	t.Parallel()

	body, err := json.Marshal(NewSuccess([]string{}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
}

func TestNewError_JSONShape(t *testing.T) {
	t.Parallel()

	envelope := NewError(http.StatusNotFound, "TODO_NOT_FOUND", "TODO with id 'x' not found", nil)
	body, err := json.Marshal(envelope)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"success": false,
		"error": {
			"code": "TODO_NOT_FOUND",
			"message": "TODO with id 'x' not found",
			"statusCode": 404
		}
	}`, string(body))
}

func TestNewError_WithDetails(t *testing.T) {
	t.Parallel()

	envelope := NewError(http.StatusBadRequest, "VALIDATION_ERROR", "Validation failed", []string{
		"title must be at most 200 characters",
	})
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded struct {
		Success bool `json:"success"`
		Error   struct {
			Details []string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.False(t, decoded.Success)
	assert.Equal(t, []string{"title must be at most 200 characters"}, decoded.Error.Details)
}

func TestEnvelope_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, `{"success":true,"data":1}`, NewSuccess(1).String())
}
