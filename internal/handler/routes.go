package handler

import (
	"net/http"
	"strconv"

	"breachdetector/internal/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Breach Risk Detector API",
		"version": "1.0.0",
		"status":  "running",
	})
}

// runScan triggers a full pipeline run. A pipeline failure surfaces as
// a generic error; partial results are never returned.
func (h *Handler) runScan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "use POST")
		return
	}
	if !h.allowScan(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "scan rate limit exceeded")
		return
	}

	report, err := h.Service.RunScan(r.Context())
	if err != nil {
		models.ErrLog.Printf("scan failed: %v", err)
		writeError(w, http.StatusInternalServerError, "scan failed")
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) getRisk(w http.ResponseWriter, r *http.Request) {
	summary, err := h.Service.LatestRisk(r.Context())
	if err != nil {
		models.ErrLog.Printf("read latest risk: %v", err)
		writeError(w, http.StatusInternalServerError, "could not read risk score")
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// getAlerts returns every persisted alert, or only the newest N when a
// positive ?limit= is given.
func (h *Handler) getAlerts(w http.ResponseWriter, r *http.Request) {
	var (
		all     []models.Alert
		summary models.AlertSummary
		err     error
	)
	if limit, convErr := strconv.Atoi(r.URL.Query().Get("limit")); convErr == nil && limit > 0 {
		all, summary, err = h.Service.RecentAlerts(limit)
	} else {
		all, summary, err = h.Service.AllAlerts()
	}
	if err != nil {
		models.ErrLog.Printf("read alerts: %v", err)
		writeError(w, http.StatusInternalServerError, "could not read alerts")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		TotalAlerts int                 `json:"total_alerts"`
		Summary     models.AlertSummary `json:"summary"`
		Alerts      []models.Alert      `json:"alerts"`
	}{
		TotalAlerts: len(all),
		Summary:     summary,
		Alerts:      all,
	})
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.Service.Status()
	if err != nil {
		models.ErrLog.Printf("read status: %v", err)
		writeError(w, http.StatusInternalServerError, "could not read status")
		return
	}
	writeJSON(w, http.StatusOK, status)
}
