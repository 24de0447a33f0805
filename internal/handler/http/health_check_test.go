package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHealthCheck(t *testing.T) {
	s := newStubs()
	s.appInfo.version = "0.3.51"
	router := newTestRouter(t, s, nil)

	rec := do(t, router, http.MethodGet, "/health_check", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"version":"0.3.51"}}`, rec.Body.String())
}

func TestGetServerVersion(t *testing.T) {
	s := newStubs()
	s.appInfo.version = "v2.0.0-beta+build.42"
	router := newTestRouter(t, s, nil)

	rec := do(t, router, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "v2.0.0-beta+build.42", rec.Body.String())
}
