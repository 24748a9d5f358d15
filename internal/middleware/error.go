package middleware

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// Stable machine-readable error kinds carried in every error body.
const (
	CodeInvalidArgument = "invalid_argument"
	CodeNotFound        = "not_found"
	CodeUnauthorized    = "unauthorized"
	CodeForbidden       = "forbidden"
	CodeRateLimited     = "rate_limited"
	CodeInternal        = "internal"
)

// ErrorResponse is the body of every error reply
type ErrorResponse struct {
	Error   string            `json:"error"`
	Code    string            `json:"code"`
	Details []ValidationError `json:"details,omitempty"`
}

// ErrorCode returns the error kind for an HTTP status.
func ErrorCode(statusCode int) string {
	switch {
	case statusCode == http.StatusBadRequest:
		return CodeInvalidArgument
	case statusCode == http.StatusNotFound:
		return CodeNotFound
	case statusCode == http.StatusUnauthorized:
		return CodeUnauthorized
	case statusCode == http.StatusForbidden:
		return CodeForbidden
	case statusCode == http.StatusTooManyRequests:
		return CodeRateLimited
	case statusCode >= 400 && statusCode < 500:
		return CodeInvalidArgument
	default:
		return CodeInternal
	}
}

// RespondWithError sends a structured error response
func RespondWithError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, ErrorResponse{
		Error: message,
		Code:  ErrorCode(statusCode),
	})
}

// RespondWithValidationErrors sends a 400 listing the offending fields
func RespondWithValidationErrors(w http.ResponseWriter, message string, errors []ValidationError) {
	RespondWithJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   message,
		Code:    CodeInvalidArgument,
		Details: errors,
	})
}

// ErrorHandlingMiddleware catches panics and converts them to 500 errors
func ErrorHandlingMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					if err == http.ErrAbortHandler {
						panic(err)
					}

					logger.Error("Panic recovered",
						zap.Any("error", err),
						zap.String("path", r.URL.Path),
						zap.String("method", r.Method),
					)

					RespondWithError(w, http.StatusInternalServerError, "internal server error")
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

// RespondWithJSON sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}
