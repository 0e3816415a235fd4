package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

var startedAt = time.Now()

// Health: liveness для балансировщика.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"uptime": time.Since(startedAt).Round(time.Second).String(),
	})
}
