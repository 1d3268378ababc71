package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"tinyDB/internal/sql"
	"tinyDB/internal/sqlerr"
)

// MaxStatementBytes bounds the size of a POSTed statement.
const MaxStatementBytes = 1 << 20

const shutdownTimeout = 5 * time.Second

// Handler answers statement requests. Every request is parsed on its own;
// handlers share nothing but the logger.
type Handler struct {
	logger *slog.Logger
}

func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{logger: logger}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := ulid.Make().String()
	w.Header().Set("X-Request-Id", requestID)
	h.logger.Debug("received request", "request_id", requestID, "method", r.Method, "path", r.URL.Path)

	status := h.serve(w, r)

	h.logger.Debug("finished request",
		"request_id", requestID,
		"status", status,
		"elapsed_us", time.Since(start).Microseconds(),
	)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request) int {
	if r.URL.Path != "/" {
		w.WriteHeader(http.StatusNotFound)
		return http.StatusNotFound
	}

	switch r.Method {
	case http.MethodPost:
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxStatementBytes))
		if err != nil {
			h.logger.Warn("reading request body", "err", err)
			w.WriteHeader(http.StatusBadRequest)
			return http.StatusBadRequest
		}
		if !utf8.Valid(body) {
			return h.writeError(w, sqlerr.Syntax("Statement text is not valid UTF-8."))
		}
		return h.execute(w, string(body))

	case http.MethodGet:
		if r.URL.RawQuery == "" {
			w.WriteHeader(http.StatusBadRequest)
			return http.StatusBadRequest
		}
		values, err := url.ParseQuery(r.URL.RawQuery)
		if err != nil || !values.Has("query") {
			w.WriteHeader(http.StatusBadRequest)
			return http.StatusBadRequest
		}
		return h.execute(w, values.Get("query"))

	default:
		w.Header().Set("Allow", "GET, POST")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return http.StatusMethodNotAllowed
	}
}

func (h *Handler) execute(w http.ResponseWriter, query string) int {
	stmt, err := sql.Parse(query)
	if err != nil {
		e, ok := sqlerr.As(err)
		if !ok {
			h.logger.Error("unexpected parse failure", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			return http.StatusInternalServerError
		}
		return h.writeError(w, e)
	}
	return h.writeJSON(w, http.StatusOK, stmt)
}

func (h *Handler) writeError(w http.ResponseWriter, e sqlerr.Error) int {
	return h.writeJSON(w, http.StatusBadRequest, e)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) int {
	body, err := json.Marshal(v)
	if err != nil {
		h.logger.Error("encoding response", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return http.StatusInternalServerError
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		h.logger.Warn("writing response", "err", err)
	}
	return status
}

// Server listens for statement requests until its context is cancelled.
type Server struct {
	logger *slog.Logger
	http   *http.Server
}

func New(addr string, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		http: &http.Server{
			Addr:              addr,
			Handler:           NewHandler(logger),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves on the configured address. When ctx is done it stops accepting
// connections and waits for in-flight requests to finish.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.http.Addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.http.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run with a caller-provided listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.logger.Info("listening", "addr", ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.http.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
