package snowbase

import (
	"encoding/json"
	"net/http"
)

// The proxy envelope is a fixed wire contract:
// {"status":"successful", ...payload} on success and
// {"status":"unsuccessful","reason":...} on failure. The upstream
// dracory/api envelope cannot produce these shapes, so the proxy
// routes encode directly; the profile routes still use the upstream
// helpers.

// writeSuccessful writes a success envelope merged with the
// operation-specific payload fields.
func writeSuccessful(w http.ResponseWriter, payload map[string]any) {
	body := make(map[string]any, len(payload)+1)
	body["status"] = StatusSuccessful
	for k, v := range payload {
		body[k] = v
	}
	writeJSON(w, body)
}

// writeUnsuccessful writes a failure envelope with a human-readable reason.
func writeUnsuccessful(w http.ResponseWriter, reason string) {
	writeJSON(w, map[string]any{
		"status": StatusUnsuccessful,
		"reason": reason,
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
