// Package api - HTTP handlers for the calculator
// Handlers decode, delegate to the engine, and encode.
// They contain NO calculation logic.
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"roas-calculator/core/engine"
	"roas-calculator/core/output"
	"roas-calculator/internal/errors"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// statusClientClosedRequest is reported when the caller cancels mid-request
const statusClientClosedRequest = 499

// handleMetrics handles POST /metrics
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID := generateRequestID()

	var req MetricsRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, requestID, err)
		return
	}

	engineReq, err := req.toEngine()
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}

	report, err := s.engine.Evaluate(r.Context(), engineReq)
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}

	s.writeJSON(w, &MetricsResponse{
		RequestID:  requestID,
		Timestamp:  time.Now().UTC(),
		Report:     report,
		Display:    s.display(report),
		DurationMs: time.Since(start).Milliseconds(),
	}, http.StatusOK)
}

// handleComparison handles POST /comparison
func (s *Server) handleComparison(w http.ResponseWriter, r *http.Request) {
	requestID := generateRequestID()

	var req ComparisonRequest
	if err := decode(w, r, &req); err != nil {
		s.writeError(w, requestID, err)
		return
	}

	margin, err := resolveMargin(req.GrossMarginPercent, req.GrossMargin)
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}

	rows, err := s.engine.Compare(r.Context(), req.ROAS, margin)
	if err != nil {
		s.writeError(w, requestID, err)
		return
	}

	s.writeJSON(w, &ComparisonResponse{
		RequestID:   requestID,
		Timestamp:   time.Now().UTC(),
		Currency:    s.engine.Currency(),
		Comparison:  rows,
		Assumptions: []string{engine.ComparisonAssumption},
	}, http.StatusOK)
}

// handleTiers handles GET /tiers
func (s *Server) handleTiers(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, &TiersResponse{
		RequestID: generateRequestID(),
		Currency:  s.engine.Currency(),
		Tiers:     s.engine.Catalog().Tiers(),
	}, http.StatusOK)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]interface{}{
		"status":  "healthy",
		"version": s.version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}, http.StatusOK)
}

// handleVersion handles GET /version
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{
		"version":     s.version,
		"engine":      "roas-calculator",
		"api_version": "v1",
	}, http.StatusOK)
}

func (s *Server) display(report *engine.Report) DisplayMetrics {
	money := func(v float64) string {
		return output.Money(v, report.Currency, s.language)
	}
	m := report.Metrics
	return DisplayMetrics{
		Revenue:       money(m.Revenue),
		GrossProfit:   money(m.GrossProfit),
		Fee:           money(report.Input.Fee),
		NetAfterFee:   money(m.NetAfterFee),
		BreakevenROAS: output.Multiple(m.BreakevenROAS),
		ROIPercent:    output.Percent(m.ROIPercent),
	}
}

func decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.Parsing("invalid JSON body", err)
	}
	return nil
}

// writeJSON encodes data before writing the status, so an encoding failure
// becomes a 500 error body instead of a 200 with no content
func (s *Server) writeJSON(w http.ResponseWriter, data interface{}, status int) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		s.writeError(w, requestIDOf(data), errors.Internal("failed to encode response", err))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		s.logger.Debug("failed to write response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, requestID string, err error) {
	status := statusFor(err)
	switch {
	case status >= http.StatusInternalServerError:
		s.logger.Error("request failed", zap.String("request_id", requestID), zap.Error(err))
	case status == statusClientClosedRequest:
		s.logger.Debug("request canceled", zap.String("request_id", requestID), zap.Error(err))
	}

	message := err.Error()
	if e, ok := errors.As(err); ok {
		message = e.Message
	}

	body, encErr := json.Marshal(&ErrorResponse{
		RequestID: requestID,
		Error: ErrorDetail{
			Code:    string(errors.TypeOf(err)),
			Message: message,
		},
	})
	if encErr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(body, '\n'))
}

func statusFor(err error) int {
	switch errors.TypeOf(err) {
	case errors.TypeInput, errors.TypeParsing, errors.TypeNotSupported:
		return http.StatusBadRequest
	case errors.TypeNotFound:
		return http.StatusNotFound
	case errors.TypeCanceled:
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// requestIDOf recovers the request ID from a response body, if it has one
func requestIDOf(data interface{}) string {
	switch v := data.(type) {
	case *MetricsResponse:
		return v.RequestID
	case *ComparisonResponse:
		return v.RequestID
	case *TiersResponse:
		return v.RequestID
	}
	return generateRequestID()
}

func generateRequestID() string {
	return "calc-" + uuid.NewString()
}
