package detector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"breachdetector/internal/models"
)

func defaultAuthDetector() *AuthDetector {
	return NewAuthDetector(3, []int{0, 1, 2, 3, 4, 5})
}

func failedLogin(user, ip string) models.AuthLogRecord {
	return models.AuthLogRecord{User: user, Action: models.ActionLoginFailed, IP: ip, Timestamp: "2024-01-15T10:00:00Z"}
}

func successLogin(user, ip, ts string) models.AuthLogRecord {
	return models.AuthLogRecord{User: user, Action: models.ActionLoginSuccess, IP: ip, Timestamp: ts}
}

func TestDetectBruteForce_AtThresholdIsQuiet(t *testing.T) {
	d := defaultAuthDetector()
	logs := []models.AuthLogRecord{
		failedLogin("eve", "10.0.0.1"),
		failedLogin("eve", "10.0.0.1"),
		failedLogin("eve", "10.0.0.1"),
	}

	require.Empty(t, d.DetectBruteForce(logs))
}

func TestDetectBruteForce_OverThreshold(t *testing.T) {
	d := defaultAuthDetector()
	logs := []models.AuthLogRecord{
		failedLogin("eve", "10.0.0.1"),
		failedLogin("eve", "10.0.0.2"),
		failedLogin("eve", "10.0.0.1"),
		failedLogin("eve", "10.0.0.1"),
	}

	issues := d.DetectBruteForce(logs)
	require.Len(t, issues, 1)
	require.Equal(t, models.IssueBruteForceDetected, issues[0].Type)
	require.Equal(t, models.SeverityCritical, issues[0].Severity)
	require.Equal(t, "eve", issues[0].User)
	require.Equal(t, 4, issues[0].FailedAttempts)
	require.ElementsMatch(t, []string{"10.0.0.1", "10.0.0.2"}, issues[0].IPs)
}

func TestDetectBruteForce_IgnoresSuccesses(t *testing.T) {
	d := defaultAuthDetector()
	logs := []models.AuthLogRecord{
		successLogin("eve", "10.0.0.1", "2024-01-15T10:00:00Z"),
		successLogin("eve", "10.0.0.1", "2024-01-15T11:00:00Z"),
		successLogin("eve", "10.0.0.1", "2024-01-15T12:00:00Z"),
		successLogin("eve", "10.0.0.1", "2024-01-15T13:00:00Z"),
	}

	require.Empty(t, d.DetectBruteForce(logs))
}

func TestDetectSuspiciousAccessTime(t *testing.T) {
	d := defaultAuthDetector()
	logs := []models.AuthLogRecord{
		successLogin("eve", "10.0.0.2", "2024-01-15T02:30:00Z"),
		successLogin("alice", "192.168.1.10", "2024-01-15T14:05:00Z"),
	}

	issues := d.DetectSuspiciousAccessTime(logs)
	require.Len(t, issues, 1)
	require.Equal(t, models.IssueSuspiciousAccessTime, issues[0].Type)
	require.Equal(t, models.SeverityWarning, issues[0].Severity)
	require.Equal(t, "eve", issues[0].User)
	require.NotNil(t, issues[0].Hour)
	require.Equal(t, 2, *issues[0].Hour)
	require.Equal(t, "10.0.0.2", issues[0].IP)
}

func TestDetectSuspiciousAccessTime_AcceptsOffsetlessTimestamps(t *testing.T) {
	d := defaultAuthDetector()
	logs := []models.AuthLogRecord{
		successLogin("eve", "10.0.0.2", "2024-01-15T03:15:00"),
	}

	issues := d.DetectSuspiciousAccessTime(logs)
	require.Len(t, issues, 1)
	require.Equal(t, 3, *issues[0].Hour)
}

func TestDetectSuspiciousAccessTime_SkipsMalformedTimestamps(t *testing.T) {
	d := defaultAuthDetector()
	logs := []models.AuthLogRecord{
		successLogin("eve", "10.0.0.2", "not-a-timestamp"),
		successLogin("eve", "10.0.0.2", ""),
	}

	require.Empty(t, d.DetectSuspiciousAccessTime(logs))
}

func TestDetectMultipleIPAccess(t *testing.T) {
	d := defaultAuthDetector()

	oneIP := []models.AuthLogRecord{
		successLogin("alice", "192.168.1.10", "2024-01-15T09:00:00Z"),
		successLogin("alice", "192.168.1.10", "2024-01-15T10:00:00Z"),
	}
	require.Empty(t, d.DetectMultipleIPAccess(oneIP))

	twoIPs := append(oneIP, successLogin("alice", "192.168.1.22", "2024-01-15T11:00:00Z"))
	issues := d.DetectMultipleIPAccess(twoIPs)
	require.Len(t, issues, 1)
	require.Equal(t, models.IssueMultipleIPAccess, issues[0].Type)
	require.Equal(t, models.SeverityWarning, issues[0].Severity)
	require.Equal(t, 2, issues[0].IPCount)
	require.ElementsMatch(t, []string{"192.168.1.10", "192.168.1.22"}, issues[0].IPs)
}

func TestDetectMultipleIPAccess_FailedLoginsDoNotCount(t *testing.T) {
	d := defaultAuthDetector()
	logs := []models.AuthLogRecord{
		successLogin("eve", "10.0.0.2", "2024-01-15T12:00:00Z"),
		failedLogin("eve", "10.0.0.1"),
	}

	require.Empty(t, d.DetectMultipleIPAccess(logs))
}

func TestAuthAnalyze_OrderAndName(t *testing.T) {
	d := defaultAuthDetector()
	logs := []models.AuthLogRecord{
		failedLogin("eve", "10.0.0.1"),
		failedLogin("eve", "10.0.0.1"),
		failedLogin("eve", "10.0.0.1"),
		failedLogin("eve", "10.0.0.1"),
		successLogin("bob", "172.16.0.1", "2024-01-15T01:00:00Z"),
		successLogin("bob", "172.16.0.2", "2024-01-15T09:00:00Z"),
	}

	result := d.Analyze(logs)
	require.Equal(t, "authentication", result.Detector)
	require.Equal(t, 3, result.TotalIssues)
	require.Len(t, result.Issues, 3)
	require.Equal(t, models.IssueBruteForceDetected, result.Issues[0].Type)
	require.Equal(t, models.IssueSuspiciousAccessTime, result.Issues[1].Type)
	require.Equal(t, models.IssueMultipleIPAccess, result.Issues[2].Type)
}

func TestAuthAnalyze_EmptyInput(t *testing.T) {
	result := defaultAuthDetector().Analyze(nil)
	require.Equal(t, "authentication", result.Detector)
	require.Zero(t, result.TotalIssues)
	require.NotNil(t, result.Issues)
	require.Empty(t, result.Issues)
}
