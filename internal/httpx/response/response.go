package response

import (
	"encoding/json"
	"net/http"
)

// ErrorBody is the structured error payload every failure returns:
// a machine-readable code plus a human-readable detail. No stack traces
// or internal paths are exposed.
type ErrorBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

// Error sends an error response with a machine-readable code
func Error(w http.ResponseWriter, status int, code, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorBody{Error: code, Detail: detail})
}

// JSON sends a JSON response
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// OK sends a 200 OK response with JSON body
func OK(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, data)
}

// BadRequest sends a 400 Bad Request error
func BadRequest(w http.ResponseWriter, code, detail string) {
	Error(w, http.StatusBadRequest, code, detail)
}

// Unauthorized sends a 401 Unauthorized error
func Unauthorized(w http.ResponseWriter, detail string) {
	Error(w, http.StatusUnauthorized, "unauthorized", detail)
}

// NotFound sends a 404 Not Found error
func NotFound(w http.ResponseWriter, code, detail string) {
	Error(w, http.StatusNotFound, code, detail)
}

// InternalError sends a 500 Internal Server Error
func InternalError(w http.ResponseWriter, code, detail string) {
	Error(w, http.StatusInternalServerError, code, detail)
}
