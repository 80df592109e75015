package handler

import (
	"fmt"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"
)

// Every endpoint wraps its payload in a success envelope; collection
// endpoints add a count. Kept identical to the original API so existing
// clients keep working.

// dataResponse wraps a single object.
type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

// listResponse wraps a collection with its length.
type listResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
	Count   int  `json:"count"`
}

// errorResponse carries a single error message.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// validationResponse carries every violated rule.
type validationResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// WriteJSON writes a JSON response with the given status code and data.
// Sets Content-Type to application/json before writing the status code.
func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data) // Write error intentionally ignored in response helper
}

// WriteError writes the single-message error envelope.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, errorResponse{Success: false, Error: message})
}

// WriteValidationErrors writes the 400 envelope listing every violated rule.
func WriteValidationErrors(w http.ResponseWriter, messages []string) {
	WriteJSON(w, http.StatusBadRequest, validationResponse{Success: false, Errors: messages})
}

// ParseJSON decodes the request body as JSON into v. It validates that the
// Content-Type header is application/json and rejects unknown fields and
// malformed bodies.
func ParseJSON(r *http.Request, v any) error {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("Request body must be valid JSON with Content-Type: application/json")
	}

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("Request body must be valid JSON with Content-Type: application/json")
	}

	return nil
}
