package alerts

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"breachdetector/internal/models"
)

type fakeAlertStore struct {
	saved    []models.Alert
	existing int
	countErr error
	saveErr  error
	failAtID int
}

func (f *fakeAlertStore) SaveAlert(alert models.Alert) error {
	if f.saveErr != nil && alert.ID == f.failAtID {
		return f.saveErr
	}
	f.saved = append(f.saved, alert)
	return nil
}

func (f *fakeAlertStore) CountAlerts() (int, error) {
	return f.existing, f.countErr
}

func testNotifier() *Notifier {
	return NewNotifier("alerts@test.local", "localhost")
}

func TestProcessIssues_SequentialIDs(t *testing.T) {
	store := &fakeAlertStore{}
	m := NewManager(store, testNotifier())

	issues := []models.Issue{
		{Type: models.IssueBruteForceDetected, Severity: models.SeverityCritical, Description: "first"},
		{Type: models.IssueSuspiciousAccessTime, Severity: models.SeverityWarning, Description: "second"},
		{Type: models.IssuePublicEndpoint, Severity: models.SeverityInfo, Description: "third"},
	}

	alerts, err := m.ProcessIssues(issues)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	for i, alert := range alerts {
		require.Equal(t, i+1, alert.ID)
		require.Equal(t, issues[i].Description, alert.Description)
		require.Equal(t, issues[i], alert.Details)
		require.False(t, alert.Timestamp.IsZero())
	}
	require.Len(t, store.saved, 3)
}

func TestManager_IDContinuesFromStoreCount(t *testing.T) {
	store := &fakeAlertStore{existing: 5}
	m := NewManager(store, testNotifier())

	alerts, err := m.ProcessIssues([]models.Issue{
		{Type: models.IssuePublicEndpoint},
		{Type: models.IssuePublicEndpoint},
	})
	require.NoError(t, err)
	require.Equal(t, 6, alerts[0].ID)
	require.Equal(t, 7, alerts[1].ID)
}

func TestManager_CountErrorRestartsSequence(t *testing.T) {
	store := &fakeAlertStore{countErr: errors.New("table missing")}
	m := NewManager(store, testNotifier())

	alert := m.CreateAlert(models.Issue{Type: models.IssuePublicEndpoint})
	require.Equal(t, 1, alert.ID)
}

func TestCreateAlert_DefaultsToInfoSeverity(t *testing.T) {
	m := NewManager(&fakeAlertStore{}, testNotifier())

	alert := m.CreateAlert(models.Issue{Type: models.IssuePublicEndpoint})
	require.Equal(t, models.SeverityInfo, alert.Severity)
}

func TestProcessIssues_SaveErrorAborts(t *testing.T) {
	store := &fakeAlertStore{saveErr: errors.New("disk full"), failAtID: 2}
	m := NewManager(store, testNotifier())

	alerts, err := m.ProcessIssues([]models.Issue{
		{Type: models.IssuePublicEndpoint},
		{Type: models.IssuePublicEndpoint},
	})
	require.Error(t, err)
	require.Nil(t, alerts)
	require.Len(t, store.saved, 1)
}

func TestSummary(t *testing.T) {
	alerts := []models.Alert{
		{Severity: models.SeverityCritical},
		{Severity: models.SeverityCritical},
		{Severity: models.SeverityWarning},
		{Severity: models.SeverityInfo},
	}

	summary := Summary(alerts)
	require.Equal(t, models.AlertSummary{Critical: 2, Warning: 1, Info: 1, Total: 4}, summary)
}

func TestSummary_Empty(t *testing.T) {
	require.Equal(t, models.AlertSummary{}, Summary(nil))
}
