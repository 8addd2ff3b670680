// Package server exposes language detection over HTTP: POST /detect for
// inference, plus the usual health and metrics endpoints.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/net/netutil"
	"golang.org/x/time/rate"

	"github.com/glotta/langdetect"
)

const readHeaderTimeout = 10 * time.Second

// maxBodyBytes bounds request bodies well above the detector's own text cap.
const maxBodyBytes = 1 << 20

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	RequestID     string                `json:"request_id"`
	Language      string                `json:"language"`
	Probabilities []langdetect.Language `json:"probabilities"`
}

type errorResponse struct {
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

// Server serves detection requests against a loaded factory.
type Server struct {
	factory *langdetect.Factory
	cfg     *Config
	logger  *zerolog.Logger
	limiter *rate.Limiter
}

func New(factory *langdetect.Factory, cfg *Config, logger *zerolog.Logger) *Server {
	return &Server{
		factory: factory,
		cfg:     cfg,
		logger:  logger,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst),
	}
}

// Start serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, "OK")
	})

	mux.HandleFunc("/readyz", func(w http.ResponseWriter, _ *http.Request) {
		if len(s.factory.Languages()) < 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = fmt.Fprint(w, "profiles not loaded")

			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprint(w, "OK")
	})

	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/detect", s.handleDetect)

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.cfg.Port, err)
	}

	ln = netutil.LimitListener(ln, s.cfg.MaxConns)

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error().Err(err).Msg("Server shutdown error")
		}
	}()

	if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}

	return nil
}

func (s *Server) handleDetect(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()

	if r.Method != http.MethodPost {
		s.writeError(w, http.StatusMethodNotAllowed, reqID, "POST required")

		return
	}

	if !s.limiter.Allow() {
		detectFailures.WithLabelValues("rate_limited").Inc()
		s.writeError(w, http.StatusTooManyRequests, reqID, "rate limit exceeded")

		return
	}

	var req detectRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		detectFailures.WithLabelValues("bad_request").Inc()
		s.writeError(w, http.StatusBadRequest, reqID, "invalid JSON body")

		return
	}

	start := time.Now()

	cfg := langdetect.DetectorConfig{
		Alpha:         s.cfg.Alpha,
		MaxTextLength: s.cfg.MaxTextLength,
		Seed:          s.cfg.DetectorSeed,
	}

	probs, err := s.factory.Probabilities(req.Text, cfg)

	detectDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, langdetect.ErrNoFeatures) {
			detectFailures.WithLabelValues("no_features").Inc()
			s.writeError(w, http.StatusUnprocessableEntity, reqID, "no recognizable features in text")

			return
		}

		detectFailures.WithLabelValues("internal").Inc()
		s.logger.Error().Err(err).Str("request_id", reqID).Msg("Detection failed")
		s.writeError(w, http.StatusInternalServerError, reqID, "detection failed")

		return
	}

	lang := langdetect.UnknownLanguage
	if len(probs) > 0 {
		lang = probs[0].Lang
	}

	detectionsTotal.WithLabelValues(lang).Inc()

	s.logger.Debug().
		Str("request_id", reqID).
		Str("language", lang).
		Int("text_len", len(req.Text)).
		Dur("took", time.Since(start)).
		Msg("Detection served")

	s.writeJSON(w, http.StatusOK, detectResponse{
		RequestID:     reqID,
		Language:      lang,
		Probabilities: probs,
	})
}

func (s *Server) writeError(w http.ResponseWriter, status int, reqID, msg string) {
	s.writeJSON(w, status, errorResponse{RequestID: reqID, Error: msg})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error().Err(err).Msg("Encoding response")
	}
}
