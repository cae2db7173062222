package httpx

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const cacheHeader = "X-Cache"

type successEnvelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Cached    bool   `json:"cached"`
	Endpoint  string `json:"endpoint"`
	Timestamp string `json:"timestamp"`
}

type errorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Path    string `json:"path,omitempty"`
}

func writeSuccess(w http.ResponseWriter, endpoint string, data any, cached bool) {
	status := "MISS"
	if cached {
		status = "HIT"
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(cacheHeader, status)
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(successEnvelope{
		Success:   true,
		Data:      data,
		Cached:    cached,
		Endpoint:  endpoint,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func writeError(w http.ResponseWriter, status int, message, path string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{
		Success: false,
		Error:   message,
		Path:    path,
	})
}
