package handler

import (
	"encoding/json"
	"net/http"

	"github.com/redis/go-redis/v9"

	"breachdetector/internal/models"
	"breachdetector/internal/server"
	"breachdetector/internal/service"
)

type Handler struct {
	Mux     *http.ServeMux
	Service *service.Service
	Config  server.Config
	rdb     *redis.Client
}

func NewHandler(services *service.Service, config server.Config, rdb *redis.Client) *Handler {
	return &Handler{
		Mux:     http.NewServeMux(),
		Service: services,
		Config:  config,
		rdb:     rdb,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	h.Mux.HandleFunc("/api/scan", h.withCORS(h.runScan))
	h.Mux.HandleFunc("/api/risk", h.withCORS(h.getRisk))
	h.Mux.HandleFunc("/api/alerts", h.withCORS(h.getAlerts))
	h.Mux.HandleFunc("/api/status", h.withCORS(h.getStatus))
	h.Mux.HandleFunc("/api/", h.withCORS(h.root))
	return h.Mux
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		models.ErrLog.Printf("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
