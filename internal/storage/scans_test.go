package storage

import (
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"breachdetector/internal/models"
)

func TestSaveScan(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	st := NewScanStorage(db)
	report := models.ScanReport{
		ScanID:        "0c3e9d3a-6a0f-4f5a-9f9d-2f4f9f4b7c11",
		ScanCompleted: true,
		RiskScore:     185,
		RiskLevel:     models.RiskCritical,
		TotalIssues:   7,
		Timestamp:     time.Date(2024, 1, 15, 3, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO scans(scan_id, created_at, risk_score, risk_level, total_issues, report)
			VALUES ($1, $2, $3, $4, $5, $6)`)).
		WithArgs(report.ScanID, report.Timestamp, 185, "CRITICAL", 7, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, st.SaveScan(report))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestScan(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	st := NewScanStorage(db)
	doc := `{"scan_id":"abc","scan_completed":true,"risk_score":100,"risk_level":"CRITICAL","total_issues":3}`

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT report FROM scans ORDER BY created_at DESC LIMIT 1`)).
		WillReturnRows(sqlmock.NewRows([]string{"report"}).AddRow(doc))

	report, err := st.GetLatestScan()
	require.NoError(t, err)
	require.Equal(t, "abc", report.ScanID)
	require.Equal(t, 100, report.RiskScore)
	require.Equal(t, models.RiskCritical, report.RiskLevel)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetLatestScan_NoScansYet(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	st := NewScanStorage(db)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT report FROM scans ORDER BY created_at DESC LIMIT 1`)).
		WillReturnError(sql.ErrNoRows)

	_, err = st.GetLatestScan()
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
