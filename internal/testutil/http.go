package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/campus/internal/auth/domain"
)

// JSONRequest builds a request with body encoded as JSON. A nil body sends no payload.
func JSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// As attaches a bearer token for p to req. A nil p leaves the request anonymous.
func As(t *testing.T, req *http.Request, p *authDomain.Principal) *http.Request {
	t.Helper()

	if p != nil {
		req.Header.Set("Authorization", BearerHeader(t, NewTokenCodec(t), p))
	}
	return req
}

// Serve runs req through router and returns the recorded response.
func Serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// DecodeBody decodes a JSON object response.
func DecodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	return body
}

// ErrorMessage returns the "error" field of a JSON error response.
func ErrorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	msg, _ := DecodeBody(t, w)["error"].(string)
	return msg
}
