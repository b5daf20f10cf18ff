package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpgo/rothtrad/internal/calculation"
	"github.com/rpgo/rothtrad/internal/domain"
	"github.com/rpgo/rothtrad/internal/output"
	dec "github.com/rpgo/rothtrad/pkg/decimal"
)

// health responds with a simple JSON status indicating the server is alive.
// GET /api/health
func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	stats := s.engine.CacheStats()
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"cache":     stats,
	})
}

type bracketsResponse struct {
	Year          int                 `json:"year"`
	InflationRate decimal.Decimal     `json:"inflation_rate"`
	Brackets      []domain.TaxBracket `json:"brackets"`
}

// brackets returns the configured table inflated to the requested year.
// GET /api/brackets?inflation=2.5&year=10
func (s *Server) brackets(w http.ResponseWriter, r *http.Request) {
	qp := &queryParser{q: r.URL.Query()}
	inflation := s.defaults.Contribution.InflationRate
	year := 0
	qp.setDec(qInflation, &inflation)
	qp.setInt(qYear, &year)
	if err := qp.err(); err != nil {
		s.writeFailure(w, r, err)
		return
	}
	if year < 0 {
		s.writeFailure(w, r, &calculation.ValidationError{Problems: []calculation.FieldError{{Field: qYear, Reason: "must not be negative"}}})
		return
	}
	table, err := calculation.NewBracketTable(s.defaults.Contribution.TaxBrackets)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bracketsResponse{
		Year:          year,
		InflationRate: inflation,
		Brackets:      table.Inflated(dec.FromPercent(inflation), year).Records(),
	})
}

type accumulationResponse struct {
	Schedule *domain.AccumulationSchedule    `json:"schedule"`
	Summary  domain.FinalContributionSummary `json:"summary"`
	Display  []domain.AccumulationDisplayRow `json:"display"`
}

// GET /api/accumulation
func (s *Server) accumulation(w http.ResponseWriter, r *http.Request) {
	p, err := accumulationParams(r.URL.Query(), s.defaults.Contribution)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	acc, err := s.engine.Accumulate(r.Context(), p)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, accumulationResponse{Schedule: acc, Summary: acc.Summary(), Display: acc.Display()})
}

type distributionResponse struct {
	Schedule *domain.DistributionSchedule    `json:"schedule"`
	Summary  domain.FinalDistributionSummary `json:"summary"`
}

// GET /api/distribution
func (s *Server) distribution(w http.ResponseWriter, r *http.Request) {
	p, err := distributionParams(r.URL.Query(), s.defaults)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	dist, err := s.engine.Distribute(r.Context(), p)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, distributionResponse{Schedule: dist, Summary: dist.Summary()})
}

var contentTypes = map[string]string{
	"json": "application/json; charset=utf-8",
	"html": "text/html; charset=utf-8",
	"csv":  "text/csv; charset=utf-8",
	"txt":  "text/plain; charset=utf-8",
}

// projection renders both phases through any registered formatter (json by default).
// GET /api/projection?format=html
func (s *Server) projection(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get(qFormat)
	if format == "" {
		format = "json"
	}
	f := output.GetFormatterByName(format)
	if f == nil {
		writeError(w, http.StatusBadRequest, "unsupported format: "+format)
		return
	}
	p, err := distributionParams(r.URL.Query(), s.defaults)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	proj, err := s.engine.Project(r.Context(), p)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	proj.Assumptions = output.GenerateAssumptions(proj)
	data, err := f.Format(proj)
	if err != nil {
		s.writeFailure(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[output.ExtensionFor(f)])
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// writeFailure maps engine errors onto HTTP responses.
func (s *Server) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var verr *calculation.ValidationError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":  verr.Error(),
			"fields": verr.Problems,
		})
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, http.StatusServiceUnavailable, "request cancelled")
	default:
		s.logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// writeJSON marshals v as JSON and writes it to the response with the given
// HTTP status code. If marshaling fails, it falls back to a plain-text 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(data)
}

// writeError sends a JSON-formatted error response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
