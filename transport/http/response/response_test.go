package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"resort/shared/failure"
	"resort/transport/http/response"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithJSON(rec, http.StatusCreated, map[string]string{"booking_code": "SC-20260301-AB12"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, map[string]any{"booking_code": "SC-20260301-AB12"}, decode(t, rec)["data"])
}

func TestWithError(t *testing.T) {
	t.Run("validation carries fields", func(t *testing.T) {
		rec := httptest.NewRecorder()
		response.WithError(rec, failure.Validation("check_out", "check_out must be after check_in"))

		body := decode(t, rec)
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, "check_out must be after check_in", body["error"])
		assert.Equal(t, map[string]any{"check_out": "check_out must be after check_in"}, body["fields"])
	})

	t.Run("internal errors are masked", func(t *testing.T) {
		rec := httptest.NewRecorder()
		response.WithError(rec, errors.New("pq: connection refused"))

		body := decode(t, rec)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "internal server error", body["error"])
		assert.NotContains(t, body, "fields")
	})
}

func TestWithBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	response.WithBytes(rec, http.StatusOK, "application/pdf", []byte("%PDF-1.3"))

	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF-1.3", rec.Body.String())
}
