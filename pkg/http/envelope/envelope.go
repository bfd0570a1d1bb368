// Package envelope writes the fixed JSON envelopes the trivia API
// responds with: a success payload, or one of four failure shapes keyed
// by status code.
package envelope

import (
	"encoding/json"
	"net/http"
)

// messages pins the exact message string for each supported failure
// status. Clients match on these.
var messages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Not Found",
	http.StatusUnprocessableEntity: "Unprocessable Entity",
	http.StatusInternalServerError: "Internal Server Error",
}

// JSON writes a 200 success payload.
func JSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
	}
}

// Fail writes one of the four fixed failure envelopes. Statuses outside
// the table collapse to 500 so internals never leak past the boundary.
func Fail(w http.ResponseWriter, status int) {
	message, ok := messages[status]
	if !ok {
		status = http.StatusInternalServerError
		message = messages[http.StatusInternalServerError]
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   status,
		"message": message,
	})
}
