package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rpgo/fire-planner/internal/calculation"
	"github.com/rpgo/fire-planner/internal/config"
	"github.com/rpgo/fire-planner/internal/domain"
	"github.com/rpgo/fire-planner/internal/metrics"
	"github.com/valyala/fasthttp"
)

const (
	pathPlan    = "/api/v1/plan"
	pathCompare = "/api/v1/compare"
	pathHealth  = "/healthz"
	pathMetrics = "/metrics"
)

// Error codes returned in ErrorResponse.Code.
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidAssumptions = "INVALID_ASSUMPTIONS"
	CodePlanUnreachable    = "PLAN_UNREACHABLE"
	CodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	CodeNotFound           = "NOT_FOUND"
	CodeInternal           = "INTERNAL"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// Logger is the subset of *zap.SugaredLogger used by the server.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Server exposes the plan engine over HTTP.
type Server struct {
	engine  *calculation.PlanEngine
	parser  *config.InputParser
	metrics *metrics.Metrics
	logger  Logger
	cfg     config.ServerConfig
	srv     *fasthttp.Server
}

// New creates a server. The engine is shared by all requests.
func New(engine *calculation.PlanEngine, m *metrics.Metrics, logger Logger, cfg config.ServerConfig) *Server {
	s := &Server{
		engine:  engine,
		parser:  config.NewInputParser(),
		metrics: m,
		logger:  logger,
		cfg:     cfg,
	}
	s.srv = &fasthttp.Server{
		Handler:            s.Handler(),
		Name:               "fireplan",
		ReadTimeout:        cfg.ReadTimeout,
		WriteTimeout:       cfg.WriteTimeout,
		MaxRequestBodySize: cfg.MaxBodyBytes,
	}
	return s
}

// ListenAndServe serves on the configured address until Shutdown is called.
func (s *Server) ListenAndServe() error {
	s.logger.Infof("fireplan API listening on %s", s.cfg.Addr)
	return s.srv.ListenAndServe(s.cfg.Addr)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.ShutdownWithContext(ctx)
}

// Handler returns the routed, instrumented request handler.
func (s *Server) Handler() fasthttp.RequestHandler {
	metricsHandler := s.metrics.Handler()
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		path := string(ctx.Path())

		switch path {
		case pathPlan:
			s.onlyPost(ctx, s.handlePlan)
		case pathCompare:
			s.onlyPost(ctx, s.handleCompare)
		case pathHealth:
			writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		case pathMetrics:
			metricsHandler(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, CodeNotFound, fmt.Sprintf("no route for %s", path), nil)
			path = "other"
		}

		code := ctx.Response.StatusCode()
		elapsed := time.Since(start)
		s.metrics.ObserveRequest(path, code, elapsed)
		s.logger.Infof("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), code, elapsed)
	}
}

func (s *Server) onlyPost(ctx *fasthttp.RequestCtx, next fasthttp.RequestHandler) {
	if !ctx.IsPost() {
		ctx.Response.Header.Set("Allow", fasthttp.MethodPost)
		writeError(ctx, fasthttp.StatusMethodNotAllowed, CodeMethodNotAllowed, "Method not allowed", nil)
		return
	}
	if len(ctx.PostBody()) > s.cfg.MaxBodyBytes {
		writeError(ctx, fasthttp.StatusRequestEntityTooLarge, CodeInvalidRequest, "Request body too large", nil)
		return
	}
	next(ctx)
}

// requestContext bounds engine work by the write timeout.
func (s *Server) requestContext() (context.Context, context.CancelFunc) {
	if s.cfg.WriteTimeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), s.cfg.WriteTimeout)
}

func (s *Server) handlePlan(ctx *fasthttp.RequestCtx) {
	var pa domain.PlanAssumptions
	if err := json.Unmarshal(ctx.PostBody(), &pa); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, CodeInvalidRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	name := string(ctx.QueryArgs().Peek("name"))
	if name == "" {
		name = "Base Plan"
	}

	reqCtx, cancel := s.requestContext()
	defer cancel()
	result, err := s.engine.RunPlan(reqCtx, name, pa)
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}
	s.metrics.ObservePlan(result)
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) handleCompare(ctx *fasthttp.RequestCtx) {
	cfg, err := s.parser.Parse(ctx.PostBody())
	if err != nil {
		if errors.Is(err, domain.ErrInvalidAssumptions) {
			s.metrics.ObserveFailure("invalid_assumptions")
			writeError(ctx, fasthttp.StatusBadRequest, CodeInvalidAssumptions, err.Error(), nil)
			return
		}
		writeError(ctx, fasthttp.StatusBadRequest, CodeInvalidRequest, "Invalid request body: "+err.Error(), nil)
		return
	}

	reqCtx, cancel := s.requestContext()
	defer cancel()
	comparison, err := s.engine.RunScenarios(reqCtx, cfg)
	if err != nil {
		s.writeEngineError(ctx, err)
		return
	}
	for i := range comparison.Plans {
		s.metrics.ObservePlan(&comparison.Plans[i])
	}
	writeJSON(ctx, fasthttp.StatusOK, comparison)
}

func (s *Server) writeEngineError(ctx *fasthttp.RequestCtx, err error) {
	var unreachable *domain.PlanUnreachableError
	switch {
	case errors.Is(err, domain.ErrInvalidAssumptions):
		s.metrics.ObserveFailure("invalid_assumptions")
		writeError(ctx, fasthttp.StatusBadRequest, CodeInvalidAssumptions, err.Error(), nil)
	case errors.As(err, &unreachable):
		s.metrics.ObserveFailure("plan_unreachable")
		writeError(ctx, fasthttp.StatusUnprocessableEntity, CodePlanUnreachable, err.Error(), unreachable)
	default:
		s.metrics.ObserveFailure("error")
		s.logger.Errorf("plan evaluation failed: %v", err)
		writeError(ctx, fasthttp.StatusInternalServerError, CodeInternal, err.Error(), nil)
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		ctx.Error(fmt.Sprintf("failed to encode response: %v", err), fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, code, message string, details any) {
	writeJSON(ctx, status, ErrorResponse{
		Status:  status,
		Code:    code,
		Message: message,
		Details: details,
	})
}
