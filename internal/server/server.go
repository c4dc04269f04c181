// Package server exposes the chat HTTP API. One endpoint does the work:
// POST /api/chat validates the inbound conversation, hands it to the
// registered delegation step, and maps the outcome onto the closed
// success-or-error response envelope.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/HKYM39/my-recipe-agents-chat/internal/agent"
	"github.com/HKYM39/my-recipe-agents-chat/internal/chat"
	errx "github.com/HKYM39/my-recipe-agents-chat/internal/core/error"
	logx "github.com/HKYM39/my-recipe-agents-chat/pkg/logger"
)

const (
	// MaxRequestBodySize caps the request body at 1MB.
	MaxRequestBodySize = 1 << 20

	readHeaderTimeout = 5 * time.Second
)

// Config holds the HTTP server settings, sourced from the environment.
type Config struct {
	Addr string `envconfig:"SERVER_ADDR" default:":8080"`
}

// Server is the chat API gateway.
type Server struct {
	registry *agent.Registry
	http     *http.Server
}

// New builds the gateway around a step registry.
func New(cfg Config, registry *agent.Registry) *Server {
	s := &Server{registry: registry}

	r := mux.NewRouter()
	r.Use(requestLogging, recovery)
	r.HandleFunc("/api/chat", s.handleChat).Methods(http.MethodPost)
	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	s.http = &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// ListenAndServe runs the server until Shutdown or a listener error.
func (s *Server) ListenAndServe() error {
	logx.Info().Str("addr", s.http.Addr).Msg("chat server listening")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.http.Handler
}

func (s *Server) handleChat(w http.ResponseWriter, req *http.Request) {
	var body chat.ChatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, MaxRequestBodySize))
	if err := dec.Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}

	if issues := validateRequest(&body); len(issues) > 0 {
		appErr := errx.Validation(issues)
		writeError(w, appErr.Status, appErr.Message)
		return
	}

	step, ok := s.registry.Resolve(agent.StepID)
	if !ok {
		logx.Error().Str("step", agent.StepID).Msg("delegation step is not registered")
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("workflow step %q is not registered", agent.StepID))
		return
	}

	// The request's own run id, used when the step does not supply one.
	runID := uuid.NewString()

	res := step.Execute(req.Context(), body.Messages)
	if res.Status != agent.StatusSuccess {
		logx.Error().Err(res.Err).Str("status", string(res.Status)).Msg("delegation step failed")
		writeError(w, http.StatusInternalServerError,
			fmt.Sprintf("chat execution finished with status %q", res.Status))
		return
	}

	if res.RunID != "" {
		runID = res.RunID
	}
	msg := res.Message
	writeJSON(w, http.StatusOK, chat.ChatResponse{
		Message: &msg,
		Usage:   res.Usage,
		RunID:   runID,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, chat.ChatResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logx.Error().Err(err).Msg("failed to write response")
	}
}
