package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eaugeas/linkedbst/config"
	"github.com/eaugeas/linkedbst/logs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewRouter(t *testing.T) {
	logger := logs.NewLogrus(logs.LogrusLoggerProperties{Level: logrus.DebugLevel, Output: io.Discard})
	cfg := &Config{Server: config.ServerConfig{
		BodyLimit: 64,
		Cors: config.CorsConfig{
			Enabled:        true,
			AllowedOrigins: []string{"http://localhost.example"},
		},
	}}

	router := newRouter(cfg, logger)

	for _, path := range []string{"/add", "/remove", "/find", "/successor", "/predecessor", "/range"} {
		assert.True(t, router.Handles(path, http.MethodPost), path)
	}
	for _, path := range []string{"/inorder", "/preorder", "/postorder", "/levelorder", "/height", "/stats"} {
		assert.True(t, router.Handles(path, http.MethodGet), path)
	}

	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(`{"items":["`+strings.Repeat("a", 64)+`"]}`))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	req = httptest.NewRequest(http.MethodGet, "/stats", nil)
	req.Header.Set("Origin", "http://localhost.example")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "http://localhost.example", recorder.Header().Get("Access-Control-Allow-Origin"))
}
