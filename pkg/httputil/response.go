package httputil

import (
	"encoding/json"
	"log"
	"net/http"
)

// GlobalField is the pseudo field name used for errors that are not tied
// to a specific input field.
const GlobalField = "global"

// Envelope is the uniform response shape every endpoint returns.
// Success responses carry Data; failure responses carry Errors keyed by
// field name, with GlobalField for non-field errors.
type Envelope struct {
	Success bool                `json:"success"`
	Data    interface{}         `json:"data,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

// RespondJSON writes a JSON response with the given status code and payload.
func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
		// Can't write header again here, just log the error
	}
}

// RespondSuccess writes a success envelope around data.
func RespondSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	RespondJSON(w, statusCode, Envelope{Success: true, Data: data})
}

// RespondFieldErrors writes a failure envelope with field-keyed messages.
func RespondFieldErrors(w http.ResponseWriter, statusCode int, errs map[string][]string) {
	RespondJSON(w, statusCode, Envelope{Success: false, Errors: errs})
}

// RespondError writes a failure envelope with a single global message.
func RespondError(w http.ResponseWriter, statusCode int, message string) {
	RespondFieldErrors(w, statusCode, map[string][]string{GlobalField: {message}})
}
