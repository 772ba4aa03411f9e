package detector

import (
	"fmt"
	"strings"

	"breachdetector/internal/models"
)

// MisconfigDetector flags common security misconfigurations: default
// usernames in use and publicly reachable endpoints worth reviewing.
type MisconfigDetector struct {
	WeakUsernames []string
}

func NewMisconfigDetector() *MisconfigDetector {
	return &MisconfigDetector{
		WeakUsernames: []string{"admin", "root", "administrator", "test", "guest"},
	}
}

// DetectDefaultCredentials emits at most one WARNING issue per distinct
// weak username seen in the auth log, however many entries use it. The
// casing of the first occurrence is the one reported.
func (d *MisconfigDetector) DetectDefaultCredentials(authLogs []models.AuthLogRecord) []models.Issue {
	issues := []models.Issue{}
	detected := map[string]bool{}

	for _, l := range authLogs {
		user := strings.ToLower(l.User)
		if !d.isWeakUsername(user) || detected[user] {
			continue
		}
		detected[user] = true
		issues = append(issues, models.Issue{
			Type:        models.IssueDefaultCredentials,
			Severity:    models.SeverityWarning,
			User:        l.User,
			Description: fmt.Sprintf("Default/common username '%s' is in use", l.User),
		})
	}

	return issues
}

// DetectPublicEndpoints emits an INFO issue for every publicly
// accessible endpoint whose risk level is above LOW.
func (d *MisconfigDetector) DetectPublicEndpoints(scans []models.EndpointScanResult) []models.Issue {
	issues := []models.Issue{}

	for _, scan := range scans {
		if !scan.PublicAccess || scan.RiskLevel == models.RiskLow {
			continue
		}
		issues = append(issues, models.Issue{
			Type:        models.IssuePublicEndpoint,
			Severity:    models.SeverityInfo,
			Endpoint:    scan.Endpoint,
			RiskLevel:   scan.RiskLevel,
			Description: fmt.Sprintf("Endpoint '%s' is publicly accessible", scan.Endpoint),
		})
	}

	return issues
}

// Analyze runs both misconfiguration rules: default credentials first,
// then public endpoints.
func (d *MisconfigDetector) Analyze(authLogs []models.AuthLogRecord, scans []models.EndpointScanResult) models.DetectionResult {
	defaultCreds := d.DetectDefaultCredentials(authLogs)
	publicEndpoints := d.DetectPublicEndpoints(scans)

	issues := make([]models.Issue, 0, len(defaultCreds)+len(publicEndpoints))
	issues = append(issues, defaultCreds...)
	issues = append(issues, publicEndpoints...)

	models.InfoLog.Printf("misconfiguration analysis: default credentials=%d public endpoints=%d",
		len(defaultCreds), len(publicEndpoints))

	return models.DetectionResult{
		Detector:    "misconfiguration",
		TotalIssues: len(issues),
		Issues:      issues,
	}
}

func (d *MisconfigDetector) isWeakUsername(user string) bool {
	for _, weak := range d.WeakUsernames {
		if user == weak {
			return true
		}
	}
	return false
}
