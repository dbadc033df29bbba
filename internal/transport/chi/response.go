package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/mflix-lab/mflixd/internal/domain"
)

// Error codes returned in the error envelope.
const (
	codeValidationError = "VALIDATION_ERROR"
	codeInvalidID       = "INVALID_ID"
	codeNotFound        = "NOT_FOUND"
	codeBadRequest      = "BAD_REQUEST"
	codeInternalError   = "INTERNAL_ERROR"
)

// successResponse is the envelope for every 2xx reply.
type successResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	Timestamp string `json:"timestamp"`
}

// errorBody carries the machine-readable error code and message.
type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// errorResponse is the envelope for every non-2xx reply.
type errorResponse struct {
	Success   bool      `json:"success"`
	Error     errorBody `json:"error"`
	Timestamp string    `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, successResponse{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: timestamp(),
	})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Success:   false,
		Error:     errorBody{Code: code, Message: message},
		Timestamp: timestamp(),
	})
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error) bool

// validationHandler surfaces the client-safe message carried by
// ValidationError.
func validationHandler(w http.ResponseWriter, err error) bool {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return false
	}
	writeError(w, http.StatusBadRequest, codeValidationError, ve.Message)
	return true
}

// sentinelHandler returns an errorHandler that matches a single sentinel
// error. The sentinel's own message is safe to return to the client.
func sentinelHandler(sentinel error, status int, code string) errorHandler {
	return func(w http.ResponseWriter, err error) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, sentinel.Error())
		return true
	}
}
