package http

import (
	"encoding/json"
	"log"
	"net/http"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

type AcceptedResponse struct {
	Status string `json:"status"`
	Delay  string `json:"delay"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

func respondErrorDetails(w http.ResponseWriter, status int, code, message string, err error) {
	respondJSON(w, status, ErrorResponse{
		Error:   message,
		Code:    code,
		Details: err.Error(),
	})
}

// decodeBody reads a JSON body into v and answers 400 when it cannot
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondErrorDetails(w, http.StatusBadRequest, "invalid_request", "invalid JSON body", err)
		return false
	}
	return true
}
