package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"resort/shared/failure"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request from error",
			err:     failure.BadRequest(errors.New("bad body")),
			code:    http.StatusBadRequest,
			message: "bad body",
		},
		{
			name:    "bad request from string",
			err:     failure.BadRequestFromString("bad date"),
			code:    http.StatusBadRequest,
			message: "bad date",
		},
		{
			name:    "validation",
			err:     failure.Validation("check_out", "check_out must be after check_in"),
			code:    http.StatusUnprocessableEntity,
			message: "check_out must be after check_in",
		},
		{
			name:    "unauthorized",
			err:     failure.Unauthorized("missing token"),
			code:    http.StatusUnauthorized,
			message: "missing token",
		},
		{
			name:    "internal",
			err:     failure.InternalError(errors.New("boom")),
			code:    http.StatusInternalServerError,
			message: "boom",
		},
		{
			name:    "not found",
			err:     failure.NotFound("booking not found"),
			code:    http.StatusNotFound,
			message: "booking not found",
		},
		{
			name:    "conflict",
			err:     failure.Conflict("booking is cancelled"),
			code:    http.StatusConflict,
			message: "booking is cancelled",
		},
		{
			name:    "forbidden",
			err:     failure.Forbidden("verification failed"),
			code:    http.StatusForbidden,
			message: "verification failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, failure.GetCode(tt.err))
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestNilErrorsStayNil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("failed to confirm booking: %w", failure.NotFound("booking not found"))

	assert.Equal(t, http.StatusNotFound, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("plain")))
	assert.Equal(t, http.StatusForbidden, failure.GetCode(failure.ForbiddenError))
}

func TestGetFields(t *testing.T) {
	err := failure.ValidationFields("guest_name is required", map[string]string{
		"guest_name":     "guest_name is required",
		"guest_whatsapp": "guest_whatsapp is required",
	})

	fields := failure.GetFields(fmt.Errorf("wrapped: %w", err))
	assert.Len(t, fields, 2)
	assert.Equal(t, "guest_whatsapp is required", fields["guest_whatsapp"])

	assert.Nil(t, failure.GetFields(errors.New("plain")))
	assert.Equal(t, map[string]string{"package_id": "required"}, failure.GetFields(failure.Validation("package_id", "required")))
}
