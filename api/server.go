// Package api is the HTTP front of the cafe assistant.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/namaste-bites-agent/agent/contract"
	observex "github.com/tanpawarit/namaste-bites-agent/pkg/observe"
)

const (
	welcomeMessage = "Welcome to the Indian Cafe AI Agent API"
	defaultUserID  = "default_user"

	maxBodyBytes = 1 << 20
)

// Server routes HTTP requests to the assistant. A nil assistant means the
// model could not be initialised and every chat gets the offline apology.
type Server struct {
	assistant      contractx.Assistant
	metrics        *observex.Metrics
	metricsHandler http.Handler
}

type Option func(*Server)

func WithMetrics(m *observex.Metrics) Option {
	return func(s *Server) {
		s.metrics = m
	}
}

// WithMetricsHandler exposes h on GET /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metricsHandler = h
	}
}

func New(assistant contractx.Assistant, opts ...Option) *Server {
	s := &Server{assistant: assistant}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("POST /chat", s.handleChat)
	if s.metricsHandler != nil {
		mux.Handle("GET /metrics", s.metricsHandler)
	}
	return allowAllOrigins(observex.Middleware(s.metrics)(mux))
}

type rootResponse struct {
	Message string `json:"message"`
}

type chatRequest struct {
	Message *string `json:"message"`
	UserID  *string `json:"user_id"`
}

type chatResponse struct {
	Response string `json:"response"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{Message: welcomeMessage})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	req, err := decodeChatRequest(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		log.Debug().Err(err).Msg("chat request rejected")
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Detail: err.Error()})
		return
	}

	userID := defaultUserID
	if req.UserID != nil {
		userID = *req.UserID
	}

	ctx := r.Context()
	if s.assistant == nil {
		s.metrics.RecordChat(ctx, observex.OutcomeOffline)
		log.Warn().Str("user_id", userID).Msg("chat served offline, model unavailable")
		writeJSON(w, http.StatusOK, chatResponse{Response: apologyFor(contractx.ErrModelUnavailable)})
		return
	}

	start := time.Now()
	reply, err := s.assistant.Reply(ctx, *req.Message)
	if err != nil {
		s.metrics.RecordChat(ctx, observex.OutcomeError)
		log.Error().Err(err).Str("user_id", userID).Dur("duration", time.Since(start)).Msg("agent invocation failed")
		writeJSON(w, http.StatusOK, chatResponse{Response: apologyFor(err)})
		return
	}

	s.metrics.RecordChat(ctx, observex.OutcomeOK)
	log.Info().Str("user_id", userID).Dur("duration", time.Since(start)).Msg("chat answered")
	writeJSON(w, http.StatusOK, chatResponse{Response: reply})
}

var (
	errBodyNotJSON    = errors.New("request body must be a JSON object")
	errMessageMissing = errors.New("field required: message")
)

func decodeChatRequest(body io.Reader) (chatRequest, error) {
	var req chatRequest
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return chatRequest{}, errors.New("field " + typeErr.Field + " must be a string")
		}
		return chatRequest{}, errBodyNotJSON
	}
	if req.Message == nil {
		return chatRequest{}, errMessageMissing
	}
	return req, nil
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Warn().Err(err).Msg("write response")
	}
}
