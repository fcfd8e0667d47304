package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError responds with the same {"error": "..."} body the REST
// handlers use, so clients see one error shape.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
