package api

import (
	"encoding/json"
	"net/http"

	"github.com/trimly-app/survey-api/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeFailure emits the failure envelope. The underlying error string is
// exposed in the "error" field, matching what the dashboard expects.
func writeFailure(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]any{"success": false, "message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	writeJSON(w, status, body)
}

// statusFor maps typed service errors onto HTTP status codes; anything
// untyped is a storage or internal failure.
func statusFor(err error) int {
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid:
			return http.StatusBadRequest
		case services.ErrorUnauthorized:
			return http.StatusUnauthorized
		case services.ErrorNotFound:
			return http.StatusNotFound
		case services.ErrorConflict:
			return http.StatusConflict
		}
	}
	return http.StatusInternalServerError
}
