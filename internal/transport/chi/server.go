package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/medanswer/internal/domain"
	domanswer "github.com/kailas-cloud/medanswer/internal/domain/answer"
	gen "github.com/kailas-cloud/medanswer/internal/transport/generated"
	answeruc "github.com/kailas-cloud/medanswer/internal/usecase/answer"
	healthuc "github.com/kailas-cloud/medanswer/internal/usecase/health"
)

// maxBodyBytes caps POST /answer request bodies.
const maxBodyBytes = 64 << 10

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server implements generated.ServerInterface for the oapi-codegen chi router.
type Server struct {
	gen.Unimplemented
	answers       *answeruc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	errorHandlers []errorHandler
}

var _ gen.ServerInterface = (*Server)(nil)

// NewServer creates an HTTP API server.
func NewServer(answers *answeruc.Service, health *healthuc.Service, logger *zap.Logger) *Server {
	s := &Server{
		answers: answers,
		health:  health,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrEmptyQuery, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest),
	}
	return s
}

// GetAnswer handles GET /answer?q=.
func (s *Server) GetAnswer(w http.ResponseWriter, r *http.Request, params gen.GetAnswerParams) {
	s.answer(w, r, params.Q)
}

// PostAnswer handles POST /answer.
func (s *Server) PostAnswer(w http.ResponseWriter, r *http.Request) {
	var req gen.PostAnswerJSONRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.answer(w, r, req.Query)
}

func (s *Server) answer(w http.ResponseWriter, r *http.Request, query string) {
	if strings.TrimSpace(query) == "" {
		s.handleDomainError(w, domain.ErrEmptyQuery)
		return
	}
	writeJSON(w, http.StatusOK, answerToGen(s.answers.Answer(r.Context(), query)))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]gen.HealthResponseChecks, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = gen.HealthResponseChecks(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, gen.HealthResponse{
		Status: gen.HealthResponseStatus(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// ParamErrorHandler renders parameter binding failures from the generated router.
func ParamErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	var required *gen.RequiredParamError
	if errors.As(err, &required) {
		writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest,
			"query parameter "+required.ParamName+" is required")
		return
	}
	writeError(w, http.StatusBadRequest, gen.ErrorResponseCodeBadRequest, "invalid request")
}

func answerToGen(a domanswer.Answer) gen.AnswerResponse {
	path := a.Path()
	if path == nil {
		path = []string{}
	}
	return gen.AnswerResponse{
		Query:    a.Query(),
		Response: a.Response(),
		Path:     path,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code gen.ErrorResponseCode, message string) {
	writeJSON(w, status, gen.ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrEmptyQuery,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code gen.ErrorResponseCode) errorHandler {
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
	writeError(w, http.StatusInternalServerError, gen.ErrorResponseCodeInternalError, "internal error")
}
