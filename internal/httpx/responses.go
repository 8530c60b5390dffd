package httpx

import (
	"encoding/json"
	"net/http"
)

// JSONError writes the shared error envelope. Middleware-level failures have
// no field details, so only code and message are taken here; handler-level
// responses live in internal/http.
func JSONError(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"error":   map[string]string{"code": code, "message": message},
	})
}
