// Package chi implements the HTTP transport over the go-chi router.
package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/strdex/internal/domain"
	"github.com/kailas-cloud/strdex/internal/domain/query/filter"
	healthuc "github.com/kailas-cloud/strdex/internal/usecase/health"
	searchuc "github.com/kailas-cloud/strdex/internal/usecase/search"
	stringsuc "github.com/kailas-cloud/strdex/internal/usecase/strings"
)

// ErrorCode classifies error responses for clients.
type ErrorCode string

// Error response codes.
const (
	CodeBadRequest       ErrorCode = "bad_request"
	CodeValidationFailed ErrorCode = "validation_failed"
	CodeNotFound         ErrorCode = "string_not_found"
	CodeAlreadyExists    ErrorCode = "string_already_exists"
	CodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the string-analysis API over HTTP.
type Server struct {
	strings       *stringsuc.Service
	search        *searchuc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	strings *stringsuc.Service,
	search *searchuc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		strings: strings,
		search:  search,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
		sentinelHandler(domain.ErrInvalidValue, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrUnknownPredicate, http.StatusInternalServerError, CodeInternalError),
	}
	return s
}

// Routes mounts all API routes on r.
func (s *Server) Routes(r chi.Router) {
	r.Post("/strings", s.CreateString)
	r.Get("/strings", s.ListStrings)
	r.Get("/strings/filter-by-natural-language", s.FilterByNaturalLanguage)
	r.Get("/strings/{value}", s.GetString)
	r.Delete("/strings/{value}", s.DeleteString)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// CreateString handles POST /strings.
func (s *Server) CreateString(w http.ResponseWriter, r *http.Request) {
	var req CreateStringRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if req.Value == nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, `Field "value" is required and must be a string`)
		return
	}

	rec, err := s.strings.Create(r.Context(), *req.Value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/strings/"+url.PathEscape(rec.Value()))
	writeJSON(w, http.StatusCreated, recordToResponse(&rec))
}

// ListStrings handles GET /strings with optional structured filters.
func (s *Server) ListStrings(w http.ResponseWriter, r *http.Request) {
	set, err := filterFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, err.Error())
		return
	}

	recs, err := s.strings.Filter(r.Context(), set)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, StringListResponse{
		Data:           recordsToResponses(recs),
		Count:          len(recs),
		FiltersApplied: set.Fields(),
	})
}

// FilterByNaturalLanguage handles GET /strings/filter-by-natural-language.
func (s *Server) FilterByNaturalLanguage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, `Query parameter "query" is required`)
		return
	}

	recs, set, err := s.search.Search(r.Context(), query)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NaturalLanguageResponse{
		Data:  recordsToResponses(recs),
		Count: len(recs),
		InterpretedQuery: InterpretedQuery{
			Original:      query,
			ParsedFilters: set.Fields(),
		},
	})
}

// GetString handles GET /strings/{value}.
func (s *Server) GetString(w http.ResponseWriter, r *http.Request) {
	value, err := url.PathUnescape(chi.URLParam(r, "value"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid path value: "+err.Error())
		return
	}

	rec, err := s.strings.Get(r.Context(), value)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, recordToResponse(&rec))
}

// DeleteString handles DELETE /strings/{value}.
func (s *Server) DeleteString(w http.ResponseWriter, r *http.Request) {
	value, err := url.PathUnescape(chi.URLParam(r, "value"))
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid path value: "+err.Error())
		return
	}

	if err := s.strings.Delete(r.Context(), value); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// filterFromQuery builds a predicate set from structured query parameters.
func filterFromQuery(q url.Values) (filter.Set, error) {
	set := filter.NewSet()

	if v := q.Get("is_palindrome"); v != "" {
		flag, err := strconv.ParseBool(v)
		if err != nil {
			return filter.Set{}, errors.New(`parameter "is_palindrome" must be a boolean`)
		}
		set = set.With(filter.IsPalindrome(flag))
	}
	if v := q.Get("min_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter.Set{}, errors.New(`parameter "min_length" must be an integer`)
		}
		set = set.With(filter.MinLength(n))
	}
	if v := q.Get("max_length"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter.Set{}, errors.New(`parameter "max_length" must be an integer`)
		}
		set = set.With(filter.MaxLength(n))
	}
	if v := q.Get("word_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return filter.Set{}, errors.New(`parameter "word_count" must be an integer`)
		}
		set = set.With(filter.WordCount(n))
	}
	if v := q.Get("contains_character"); v != "" {
		rs := []rune(v)
		if len(rs) != 1 {
			return filter.Set{}, errors.New(`parameter "contains_character" must be a single character`)
		}
		set = set.With(filter.ContainsCharacter(rs[0]))
	}

	return set, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidValue,
		domain.ErrUnknownPredicate,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
