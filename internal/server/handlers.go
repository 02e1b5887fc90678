package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"fjacquet/extrato-classifier/internal/classifyerror"
	"fjacquet/extrato-classifier/internal/logging"
	"fjacquet/extrato-classifier/internal/models"
)

// Status codes carried in error bodies.
const (
	StatusInvalidArgument  = "INVALID_ARGUMENT"
	StatusNotFound         = "NOT_FOUND"
	StatusMethodNotAllowed = "METHOD_NOT_ALLOWED"
	StatusTooLarge         = "RESOURCE_EXHAUSTED"
	StatusInternal         = "INTERNAL"
)

// ErrorBody is the error payload of every endpoint.
type ErrorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// ErrorResponse wraps ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// CallableRequest is the envelope accepted by /process_transaction.
type CallableRequest struct {
	Data *models.ClassificationInput `json:"data"`
}

// CallableResponse is the envelope returned by /process_transaction.
type CallableResponse struct {
	Result models.ClassificationResult `json:"result"`
}

// CategoriesResponse lists every category the classifier can return.
type CategoriesResponse struct {
	Categories []string `json:"categories"`
	Fallback   string   `json:"fallback"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status string `json:"status"`
}

// HandleProcessTransaction classifies the description wrapped in a callable
// envelope.
func (s *Server) HandleProcessTransaction(w http.ResponseWriter, r *http.Request) {
	var req CallableRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	var input models.ClassificationInput
	if req.Data != nil {
		input = *req.Data
	}

	result, ok := s.classify(w, r, input)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, CallableResponse{Result: result})
}

// HandleClassify classifies a plain {"raw_description": ...} body.
func (s *Server) HandleClassify(w http.ResponseWriter, r *http.Request) {
	var input models.ClassificationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		s.writeDecodeError(w, err)
		return
	}

	result, ok := s.classify(w, r, input)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// HandleCategories lists the categories in matching order.
func (s *Server) HandleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CategoriesResponse{
		Categories: s.classifier.Categories(),
		Fallback:   models.CategoryOthers,
	})
}

// HandleHealth reports liveness.
func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}

// HandleNotFound answers unknown routes.
func (s *Server) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, StatusNotFound, "route not found")
}

// HandleMethodNotAllowed answers known routes called with the wrong method.
func (s *Server) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, StatusMethodNotAllowed, "method not allowed")
}

// classify runs the classifier and writes the error response on failure.
func (s *Server) classify(w http.ResponseWriter, r *http.Request, input models.ClassificationInput) (models.ClassificationResult, bool) {
	result, err := s.classifier.Classify(r.Context(), input)
	if err == nil {
		return result, true
	}

	if classifyerror.IsInvalidArgument(err) {
		s.logger.Debug("Rejected classification request",
			logging.Field{Key: logging.FieldError, Value: err.Error()})
		writeError(w, http.StatusBadRequest, StatusInvalidArgument, classifyerror.Message(err))
		return models.ClassificationResult{}, false
	}

	s.logger.WithError(err).Error("Classification failed")
	writeError(w, http.StatusInternalServerError, StatusInternal, "internal error")
	return models.ClassificationResult{}, false
}

func (s *Server) writeDecodeError(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, StatusTooLarge, "request body too large")
		return
	}
	s.logger.Debug("Malformed request body",
		logging.Field{Key: logging.FieldError, Value: err.Error()})
	writeError(w, http.StatusBadRequest, StatusInvalidArgument, classifyerror.MissingDescriptionMessage)
}

func writeError(w http.ResponseWriter, code int, status, message string) {
	writeJSON(w, code, ErrorResponse{Error: ErrorBody{Status: status, Message: message}})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
