package alerts

import (
	"fmt"
	"time"

	"breachdetector/internal/models"
)

// AlertStore is the slice of persistence the manager needs: append-only
// writes plus the current count for id continuation.
type AlertStore interface {
	SaveAlert(alert models.Alert) error
	CountAlerts() (int, error)
}

// Manager turns issues into persisted alerts. Its only state is the id
// sequence, seeded from the store's current count so ids keep ascending
// across restarts.
type Manager struct {
	store    AlertStore
	notifier *Notifier
	console  *ConsoleWriter
	nextID   int
}

func NewManager(store AlertStore, notifier *Notifier) *Manager {
	nextID := 1
	if count, err := store.CountAlerts(); err == nil {
		nextID = count + 1
	} else {
		models.ErrLog.Printf("alert count unavailable, id sequence restarts at 1: %v", err)
	}
	return &Manager{
		store:    store,
		notifier: notifier,
		console:  NewConsoleWriter(),
		nextID:   nextID,
	}
}

// CreateAlert builds the alert for one issue and advances the sequence.
func (m *Manager) CreateAlert(issue models.Issue) models.Alert {
	severity := issue.Severity
	if severity == "" {
		severity = models.SeverityInfo
	}
	alert := models.Alert{
		ID:          m.nextID,
		Timestamp:   time.Now(),
		Severity:    severity,
		Type:        issue.Type,
		Description: issue.Description,
		Details:     issue,
	}
	m.nextID++
	return alert
}

// ProcessIssues creates and persists one alert per issue, in input
// order. Critical alerts additionally trigger a (simulated) notification.
// A persistence failure aborts the run.
func (m *Manager) ProcessIssues(issues []models.Issue) ([]models.Alert, error) {
	alerts := make([]models.Alert, 0, len(issues))

	for _, issue := range issues {
		alert := m.CreateAlert(issue)
		if err := m.store.SaveAlert(alert); err != nil {
			return nil, fmt.Errorf("save alert %d: %w", alert.ID, err)
		}
		m.console.PrintAlert(alert)
		m.notifier.Notify(alert)
		alerts = append(alerts, alert)
	}

	return alerts, nil
}

// Summary tallies the given alerts by severity. It works over whatever
// list is passed, not necessarily everything persisted.
func Summary(alerts []models.Alert) models.AlertSummary {
	summary := models.AlertSummary{Total: len(alerts)}
	for _, a := range alerts {
		switch a.Severity {
		case models.SeverityCritical:
			summary.Critical++
		case models.SeverityWarning:
			summary.Warning++
		case models.SeverityInfo:
			summary.Info++
		}
	}
	return summary
}
