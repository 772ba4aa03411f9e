package storage

import (
	"database/sql"
	"encoding/json"

	"breachdetector/internal/models"
)

type ScanIR interface {
	SaveScan(report models.ScanReport) error
	GetLatestScan() (models.ScanReport, error)
}

type ScanStorage struct {
	db *sql.DB
}

func NewScanStorage(db *sql.DB) *ScanStorage {
	return &ScanStorage{db: db}
}

func (s *ScanStorage) SaveScan(report models.ScanReport) error {
	doc, err := json.Marshal(report)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(
		`INSERT INTO scans(scan_id, created_at, risk_score, risk_level, total_issues, report)
			VALUES ($1, $2, $3, $4, $5, $6)`,
		report.ScanID,
		report.Timestamp,
		report.RiskScore,
		string(report.RiskLevel),
		report.TotalIssues,
		string(doc),
	)
	return err
}

// GetLatestScan returns the most recent scan report. sql.ErrNoRows means
// no scan has run yet, which callers treat as a normal condition.
func (s *ScanStorage) GetLatestScan() (models.ScanReport, error) {
	var doc string
	err := s.db.QueryRow(
		`SELECT report FROM scans ORDER BY created_at DESC LIMIT 1`,
	).Scan(&doc)
	if err != nil {
		return models.ScanReport{}, err
	}

	var report models.ScanReport
	if err := json.Unmarshal([]byte(doc), &report); err != nil {
		return models.ScanReport{}, err
	}
	return report, nil
}
