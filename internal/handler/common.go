package handler

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	UsageCount *int64      `json:"usageCount,omitempty"`
}

// respondWithError sends an error envelope with a message
func respondWithError(w http.ResponseWriter, code int, message, detail string) {
	respondWithJSON(w, code, Response{Message: message, Error: detail})
}

// respondWithData sends a success envelope
func respondWithData(w http.ResponseWriter, code int, message string, data interface{}) {
	respondWithJSON(w, code, Response{Success: true, Message: message, Data: data})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}
