package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// errorResponse is the JSON envelope for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Encoding failures are
// silently dropped — headers are already on the wire at that point.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes the standard error envelope.
func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{Error: errorDetail{Code: code, Message: message}})
}

// notFound writes a 404 for a missing resource. The caller supplies the
// human-readable message because the handler is the layer that knows what
// was being looked up.
func notFound(w http.ResponseWriter, message string) {
	writeError(w, http.StatusNotFound, "not_found", message)
}

// validationFailed writes a 422 carrying the human-readable part of a
// wrapped domain.ErrValidation error.
func validationFailed(w http.ResponseWriter, err error) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err))
}

// badRequest writes a 422 for input rejected before reaching the service
// layer (e.g. missing or malformed body).
func badRequest(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// internalError writes an opaque 500. The cause is logged by the request
// middleware, never exposed to the client.
func internalError(w http.ResponseWriter, code string) {
	writeError(w, http.StatusInternalServerError, code, "internal error")
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g.
// "service.OnboardingService.Complete: validation error: start date must
// not be after end date" becomes "start date must not be after end date".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}
