package storage

import (
	"database/sql"
	"encoding/json"

	"breachdetector/internal/models"
)

type AlertIR interface {
	SaveAlert(alert models.Alert) error
	GetAllAlerts() ([]models.Alert, error)
	GetRecentAlerts(limit int) ([]models.Alert, error)
	CountAlerts() (int, error)
}

type AlertStorage struct {
	db *sql.DB
}

func NewAlertStorage(db *sql.DB) *AlertStorage {
	return &AlertStorage{db: db}
}

// SaveAlert appends one alert. Alerts are never updated or deleted.
func (a *AlertStorage) SaveAlert(alert models.Alert) error {
	details, err := json.Marshal(alert.Details)
	if err != nil {
		return err
	}
	_, err = a.db.Exec(
		`INSERT INTO alerts(id, created_at, severity, type, description, details)
			VALUES ($1, $2, $3, $4, $5, $6)`,
		alert.ID,
		alert.Timestamp,
		string(alert.Severity),
		string(alert.Type),
		alert.Description,
		string(details),
	)
	return err
}

func (a *AlertStorage) GetAllAlerts() ([]models.Alert, error) {
	rows, err := a.db.Query(
		`SELECT id, created_at, severity, type, description, details
			FROM alerts
			ORDER BY id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAlertRows(rows)
}

// GetRecentAlerts returns the newest alerts, oldest of them first.
func (a *AlertStorage) GetRecentAlerts(limit int) ([]models.Alert, error) {
	rows, err := a.db.Query(
		`SELECT id, created_at, severity, type, description, details
			FROM (SELECT * FROM alerts ORDER BY id DESC LIMIT $1)
			ORDER BY id ASC`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAlertRows(rows)
}

func (a *AlertStorage) CountAlerts() (int, error) {
	var count int
	err := a.db.QueryRow(`SELECT COUNT(*) FROM alerts`).Scan(&count)
	return count, err
}

func scanAlertRows(rows *sql.Rows) ([]models.Alert, error) {
	alerts := make([]models.Alert, 0)
	for rows.Next() {
		var (
			alert       models.Alert
			description sql.NullString
			details     string
		)
		if err := rows.Scan(
			&alert.ID,
			&alert.Timestamp,
			&alert.Severity,
			&alert.Type,
			&description,
			&details,
		); err != nil {
			return nil, err
		}
		alert.Description = description.String
		if err := json.Unmarshal([]byte(details), &alert.Details); err != nil {
			return nil, err
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return alerts, nil
}
