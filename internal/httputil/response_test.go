package httputil

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/campus/internal/errors"
)

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/test", nil)
	return c, w
}

func TestHandleErrorGin(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedBody string
	}{
		{
			name:         "not found with message",
			err:          apperrors.WithMessage(apperrors.ErrNotFound, "event not found"),
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":"event not found"}`,
		},
		{
			name:         "bare conflict",
			err:          apperrors.ErrConflict,
			expectedCode: http.StatusConflict,
			expectedBody: `{"error":"conflict"}`,
		},
		{
			name:         "validation",
			err:          apperrors.WithMessage(apperrors.ErrInvalidInput, "title and start_date required"),
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":"title and start_date required"}`,
		},
		{
			name:         "unauthorized",
			err:          apperrors.WithMessage(apperrors.ErrUnauthorized, "invalid credentials"),
			expectedCode: http.StatusUnauthorized,
			expectedBody: `{"error":"invalid credentials"}`,
		},
		{
			name:         "forbidden",
			err:          apperrors.ErrForbidden,
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":"forbidden"}`,
		},
		{
			name:         "rate limited",
			err:          apperrors.ErrRateLimited,
			expectedCode: http.StatusTooManyRequests,
			expectedBody: `{"error":"rate limit exceeded"}`,
		},
		{
			name:         "internal error hides details",
			err:          apperrors.Wrap(errors.New("connection refused"), "failed to list events"),
			expectedCode: http.StatusInternalServerError,
			expectedBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, w := newTestContext()

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	c, w := newTestContext()

	HandleErrorGin(c, nil, nil)

	assert.Empty(t, w.Body.String())
}

func TestOK(t *testing.T) {
	c, w := newTestContext()

	OK(c, http.StatusCreated, gin.H{"id": "abc", "ok": false})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"ok":true,"id":"abc"}`, w.Body.String())
}

func TestHandleValidationErrorGin(t *testing.T) {
	c, w := newTestContext()

	HandleValidationErrorGin(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "name required"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"name required"}`, w.Body.String())
}

func TestHandleBadRequestGin(t *testing.T) {
	c, w := newTestContext()

	HandleBadRequestGin(c, errors.New("unexpected EOF"), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"invalid request body"}`, w.Body.String())
}

func TestParseUUIDParam(t *testing.T) {
	c, _ := newTestContext()
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	_, err := ParseUUIDParam(c, "id")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

	c.Params = gin.Params{{Key: "id", Value: "0190a7e2-6f5d-7c3a-9b1e-2d4f6a8c0e12"}}
	id, err := ParseUUIDParam(c, "id")
	require.NoError(t, err)
	assert.Equal(t, "0190a7e2-6f5d-7c3a-9b1e-2d4f6a8c0e12", id.String())
}
