package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glotta/langdetect"
	"github.com/glotta/langdetect/profile"
)

func newTestServer(t *testing.T, cfg *Config) *Server {
	t.Helper()

	factory := langdetect.NewFactory(nil)

	en := profile.NewNamed("en")
	for _, g := range []string{"a", "a", "a", "b", "b", "c", "c", "d", "e"} {
		en.Add(g)
	}
	require.NoError(t, factory.AddProfile(en, 0, 2))

	fr := profile.NewNamed("fr")
	for _, g := range []string{"a", "b", "b", "c", "c", "c", "d", "d", "d"} {
		fr.Add(g)
	}
	require.NoError(t, factory.AddProfile(fr, 1, 2))

	if cfg == nil {
		seed := uint64(42)
		cfg = &Config{
			RateLimitRPS:    100,
			RateLimitBurst:  100,
			DetectorSeed:    &seed,
			ShutdownTimeout: time.Second,
		}
	}

	logger := zerolog.Nop()

	return New(factory, cfg, &logger)
}

func postDetect(s *Server, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/detect", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleDetect(rec, req)

	return rec
}

func TestHandleDetect(t *testing.T) {
	s := newTestServer(t, nil)

	rec := postDetect(s, `{"text":"a"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp detectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "en", resp.Language)
	assert.NotEmpty(t, resp.RequestID)
	require.NotEmpty(t, resp.Probabilities)
	assert.Equal(t, "en", resp.Probabilities[0].Lang)
}

func TestHandleDetectMethodNotAllowed(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/detect", nil)
	rec := httptest.NewRecorder()
	s.handleDetect(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleDetectBadJSON(t *testing.T) {
	s := newTestServer(t, nil)

	rec := postDetect(s, `{"text":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDetectNoFeatures(t *testing.T) {
	s := newTestServer(t, nil)

	rec := postDetect(s, `{"text":"123 !?"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.NotEmpty(t, resp.RequestID)
}

func TestHandleDetectRateLimited(t *testing.T) {
	s := newTestServer(t, &Config{
		RateLimitRPS:    0,
		RateLimitBurst:  0,
		ShutdownTimeout: time.Second,
	})

	rec := postDetect(s, `{"text":"a"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
