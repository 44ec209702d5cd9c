// Package respond writes the uniform {success, message} JSON envelopes used
// by every Brainbin endpoint.
package respond

import (
	"encoding/json"
	"net/http"

	"github.com/brainbin-app/brainbin-api/internal/payload"
)

// JSON writes an arbitrary payload with the given status code.
func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// Success writes a {success:true, message} envelope with status 200.
func Success(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, payload.Response{Success: true, Message: message})
}

// Failure writes a {success:false, message} envelope with the given status.
func Failure(w http.ResponseWriter, status int, message string) {
	JSON(w, status, payload.Response{Success: false, Message: message})
}
