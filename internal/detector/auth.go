package detector

import (
	"fmt"
	"time"

	"breachdetector/internal/models"
)

// AuthDetector flags suspicious authentication patterns: brute force
// attempts, logins at unusual hours and one user appearing from several
// IPs. It holds only configuration, never state between runs.
type AuthDetector struct {
	MaxFailedLogins int
	SuspiciousHours map[int]bool
}

func NewAuthDetector(maxFailedLogins int, suspiciousHours []int) *AuthDetector {
	hours := make(map[int]bool, len(suspiciousHours))
	for _, h := range suspiciousHours {
		hours[h] = true
	}
	return &AuthDetector{
		MaxFailedLogins: maxFailedLogins,
		SuspiciousHours: hours,
	}
}

// DetectBruteForce emits one CRITICAL issue per user whose failed login
// count is strictly greater than MaxFailedLogins. Users are reported in
// the order they first appear in the log.
func (d *AuthDetector) DetectBruteForce(authLogs []models.AuthLogRecord) []models.Issue {
	issues := []models.Issue{}

	failedByUser := map[string][]models.AuthLogRecord{}
	var userOrder []string

	for _, l := range authLogs {
		if l.Action != models.ActionLoginFailed {
			continue
		}
		if _, seen := failedByUser[l.User]; !seen {
			userOrder = append(userOrder, l.User)
		}
		failedByUser[l.User] = append(failedByUser[l.User], l)
	}

	for _, user := range userOrder {
		attempts := failedByUser[user]
		if len(attempts) <= d.MaxFailedLogins {
			continue
		}
		issues = append(issues, models.Issue{
			Type:           models.IssueBruteForceDetected,
			Severity:       models.SeverityCritical,
			User:           user,
			FailedAttempts: len(attempts),
			IPs:            distinctIPs(attempts),
			Description:    fmt.Sprintf("User '%s' had %d failed login attempts", user, len(attempts)),
		})
	}

	return issues
}

// DetectSuspiciousAccessTime emits a WARNING issue for every successful
// login whose hour of day falls in the suspicious set. Records with a
// timestamp that does not parse are skipped, matching the fail-open
// policy for malformed input.
func (d *AuthDetector) DetectSuspiciousAccessTime(authLogs []models.AuthLogRecord) []models.Issue {
	issues := []models.Issue{}

	for _, l := range authLogs {
		if l.Action != models.ActionLoginSuccess {
			continue
		}
		ts, err := parseTimestamp(l.Timestamp)
		if err != nil {
			continue
		}
		hour := ts.Hour()
		if !d.SuspiciousHours[hour] {
			continue
		}
		h := hour
		issues = append(issues, models.Issue{
			Type:        models.IssueSuspiciousAccessTime,
			Severity:    models.SeverityWarning,
			User:        l.User,
			Timestamp:   l.Timestamp,
			Hour:        &h,
			IP:          l.IP,
			Description: fmt.Sprintf("User '%s' logged in at suspicious hour %d:00", l.User, hour),
		})
	}

	return issues
}

// DetectMultipleIPAccess emits a WARNING issue per user who logged in
// successfully from more than one distinct IP.
func (d *AuthDetector) DetectMultipleIPAccess(authLogs []models.AuthLogRecord) []models.Issue {
	issues := []models.Issue{}

	ipsByUser := map[string][]string{}
	seenIP := map[string]map[string]bool{}
	var userOrder []string

	for _, l := range authLogs {
		if l.Action != models.ActionLoginSuccess {
			continue
		}
		if seenIP[l.User] == nil {
			seenIP[l.User] = map[string]bool{}
			userOrder = append(userOrder, l.User)
		}
		if !seenIP[l.User][l.IP] {
			seenIP[l.User][l.IP] = true
			ipsByUser[l.User] = append(ipsByUser[l.User], l.IP)
		}
	}

	for _, user := range userOrder {
		ips := ipsByUser[user]
		if len(ips) <= 1 {
			continue
		}
		issues = append(issues, models.Issue{
			Type:        models.IssueMultipleIPAccess,
			Severity:    models.SeverityWarning,
			User:        user,
			IPCount:     len(ips),
			IPs:         ips,
			Description: fmt.Sprintf("User '%s' logged in from %d different IPs", user, len(ips)),
		})
	}

	return issues
}

// Analyze runs every authentication rule and concatenates the results:
// brute force first, then suspicious hours, then multiple IPs.
func (d *AuthDetector) Analyze(authLogs []models.AuthLogRecord) models.DetectionResult {
	bruteForce := d.DetectBruteForce(authLogs)
	suspiciousTime := d.DetectSuspiciousAccessTime(authLogs)
	multipleIP := d.DetectMultipleIPAccess(authLogs)

	issues := make([]models.Issue, 0, len(bruteForce)+len(suspiciousTime)+len(multipleIP))
	issues = append(issues, bruteForce...)
	issues = append(issues, suspiciousTime...)
	issues = append(issues, multipleIP...)

	models.InfoLog.Printf("authentication analysis: brute force=%d suspicious time=%d multiple IP=%d",
		len(bruteForce), len(suspiciousTime), len(multipleIP))

	return models.DetectionResult{
		Detector:    "authentication",
		TotalIssues: len(issues),
		Issues:      issues,
	}
}

// parseTimestamp parses an ISO-8601 timestamp, with or without an offset.
// A trailing "Z" is read as UTC.
func parseTimestamp(s string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

func distinctIPs(logs []models.AuthLogRecord) []string {
	seen := map[string]bool{}
	var ips []string
	for _, l := range logs {
		if !seen[l.IP] {
			seen[l.IP] = true
			ips = append(ips, l.IP)
		}
	}
	return ips
}
