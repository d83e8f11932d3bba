// Package server exposes the case evaluation pipeline over HTTP. It is a
// thin shell: parse the body, run the engine, encode the result.
package server

import (
	"errors"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/calculation"
	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/config"
	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/domain"
	"github.com/myanez987/Forensic-Econ-Loss-Calc/internal/output"
)

// Server handles case evaluation requests.
type Server struct {
	engine *calculation.CalculationEngine
	parser *config.InputParser
	logger *zap.Logger
}

// New creates a server around a calculation engine.
func New(engine *calculation.CalculationEngine, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		engine: engine,
		parser: config.NewInputParser(),
		logger: logger,
	}
}

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

type caseResponse struct {
	Summary output.Summary     `json:"summary"`
	Result  *domain.CaseResult `json:"result"`
}

// Handler returns the request handler for the evaluation API.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/healthz":
			ctx.SetContentType("text/plain; charset=utf-8")
			ctx.SetBodyString("ok")
		case "/api/v1/cases":
			if !ctx.IsPost() {
				writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
				return
			}
			s.handleCase(ctx)
		default:
			writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

// ListenAndServe starts serving on the given address and blocks.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("evaluation service starting",
		zap.String("op", "server.ListenAndServe"),
		zap.String("address", addr),
	)
	return fasthttp.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleCase(ctx *fasthttp.RequestCtx) {
	var cfg domain.CaseConfig
	if err := json.Unmarshal(ctx.PostBody(), &cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	s.parser.ApplyDefaults(&cfg)
	if err := s.parser.ValidateCase(&cfg); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, err.Error())
		return
	}

	result, err := s.engine.RunCase(&cfg)
	if err != nil {
		status := statusForError(err)
		s.logger.Warn("case run failed",
			zap.String("op", "server.handleCase"),
			zap.String("case_id", cfg.CaseID),
			zap.Error(err),
		)
		writeError(ctx, status, err.Error())
		return
	}

	body, err := json.Marshal(caseResponse{
		Summary: output.BuildSummary(result),
		Result:  result,
	})
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "encode response: "+err.Error())
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetBody(body)
}

func statusForError(err error) int {
	var invalidConfig *domain.InvalidConfigError
	var invalidAge *domain.InvalidAgeError
	var lookup *domain.TableLookupError
	switch {
	case errors.As(err, &invalidConfig), errors.As(err, &invalidAge):
		return fasthttp.StatusBadRequest
	case errors.As(err, &lookup):
		return fasthttp.StatusUnprocessableEntity
	default:
		return fasthttp.StatusInternalServerError
	}
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(errorResponse{Status: status, Message: message})
	ctx.SetBody(body)
}
