package detector

import (
	"fmt"
	"strings"

	"breachdetector/internal/models"
)

// APIDetector flags unauthenticated access to protected endpoints and
// endpoints whose authentication requirement is not enforced.
type APIDetector struct {
	ProtectedEndpoints []string
}

func NewAPIDetector() *APIDetector {
	return &APIDetector{
		ProtectedEndpoints: []string{
			"/api/admin",
			"/api/database",
			"/api/users",
			"/api/data",
		},
	}
}

// DetectMissingAuth emits a CRITICAL issue for every access to a
// protected endpoint without an auth token. Protection is a substring
// match, so "/api/dataexport" counts as protected too.
func (d *APIDetector) DetectMissingAuth(apiLogs []models.APILogRecord) []models.Issue {
	issues := []models.Issue{}

	for _, l := range apiLogs {
		if !d.isProtected(l.Endpoint) || l.AuthToken != "" {
			continue
		}
		issues = append(issues, models.Issue{
			Type:        models.IssueMissingAuthentication,
			Severity:    models.SeverityCritical,
			Endpoint:    l.Endpoint,
			IP:          l.IP,
			Timestamp:   l.Timestamp,
			Description: fmt.Sprintf("Protected endpoint '%s' accessed without authentication", l.Endpoint),
		})
	}

	return issues
}

// DetectExposedEndpoints emits an issue for every scan result where
// authentication is required but not enforced. Admin and database
// endpoints are CRITICAL, the rest WARNING.
func (d *APIDetector) DetectExposedEndpoints(scans []models.EndpointScanResult) []models.Issue {
	issues := []models.Issue{}

	for _, scan := range scans {
		if !scan.RequiresAuth || scan.AuthEnforced {
			continue
		}
		severity := models.SeverityWarning
		if strings.Contains(scan.Endpoint, "admin") || strings.Contains(scan.Endpoint, "database") {
			severity = models.SeverityCritical
		}
		public := scan.PublicAccess
		issues = append(issues, models.Issue{
			Type:         models.IssueExposedEndpoint,
			Severity:     severity,
			Endpoint:     scan.Endpoint,
			PublicAccess: &public,
			Description:  fmt.Sprintf("Sensitive endpoint '%s' is publicly accessible", scan.Endpoint),
		})
	}

	return issues
}

// Analyze runs both API rules: missing auth first, then exposed
// endpoints.
func (d *APIDetector) Analyze(apiLogs []models.APILogRecord, scans []models.EndpointScanResult) models.DetectionResult {
	missingAuth := d.DetectMissingAuth(apiLogs)
	exposed := d.DetectExposedEndpoints(scans)

	issues := make([]models.Issue, 0, len(missingAuth)+len(exposed))
	issues = append(issues, missingAuth...)
	issues = append(issues, exposed...)

	models.InfoLog.Printf("API security analysis: missing auth=%d exposed endpoints=%d",
		len(missingAuth), len(exposed))

	return models.DetectionResult{
		Detector:    "api_security",
		TotalIssues: len(issues),
		Issues:      issues,
	}
}

func (d *APIDetector) isProtected(endpoint string) bool {
	for _, p := range d.ProtectedEndpoints {
		if strings.Contains(endpoint, p) {
			return true
		}
	}
	return false
}
