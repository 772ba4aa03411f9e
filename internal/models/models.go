package models

import "time"

// Severity is carried by both issues and alerts.
type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// RiskLevel classifies an aggregate score or a scanned endpoint.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
	RiskUnknown  RiskLevel = "UNKNOWN"
)

// Auth log actions.
const (
	ActionLoginSuccess = "login_success"
	ActionLoginFailed  = "login_failed"
)

// AuthLogRecord is a single authentication event from the log source.
type AuthLogRecord struct {
	User      string `json:"user"`
	Action    string `json:"action"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// APILogRecord is a single API access event from the log source.
type APILogRecord struct {
	Endpoint  string `json:"endpoint"`
	AuthToken string `json:"auth_token,omitempty"`
	IP        string `json:"ip"`
	Timestamp string `json:"timestamp"`
}

// EndpointScanResult describes the exposure of one scanned endpoint.
type EndpointScanResult struct {
	Endpoint     string    `json:"endpoint"`
	RequiresAuth bool      `json:"requires_auth"`
	AuthEnforced bool      `json:"auth_enforced"`
	PublicAccess bool      `json:"public_access"`
	RiskLevel    RiskLevel `json:"risk_level"`
}

// Alert wraps a detected issue with identity and creation time.
// Alerts are append-only once persisted.
type Alert struct {
	ID          int       `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Severity    Severity  `json:"severity"`
	Type        IssueType `json:"type"`
	Description string    `json:"description"`
	Details     Issue     `json:"details"`
}

// AlertSummary tallies alerts by severity.
type AlertSummary struct {
	Critical int `json:"CRITICAL"`
	Warning  int `json:"WARNING"`
	Info     int `json:"INFO"`
	Total    int `json:"total"`
}

// RiskBreakdown is the per-issue-type contribution to the score.
type RiskBreakdown struct {
	Count        int `json:"count"`
	Weight       int `json:"weight"`
	Contribution int `json:"contribution"`
}

// RiskScore is the aggregate result of scoring one issue list.
// It is recomputed fresh on every scan, never merged with prior scans.
type RiskScore struct {
	Score       int                         `json:"score"`
	RiskLevel   RiskLevel                   `json:"risk_level"`
	Breakdown   map[IssueType]RiskBreakdown `json:"breakdown"`
	TotalIssues int                         `json:"total_issues"`
	IssueCounts map[IssueType]int           `json:"issue_counts"`
}

// RiskSummary is the condensed view of the latest scan served by the
// risk endpoint. Message is set when no scan has run yet.
type RiskSummary struct {
	RiskScore   int        `json:"risk_score"`
	RiskLevel   RiskLevel  `json:"risk_level"`
	TotalIssues int        `json:"total_issues,omitempty"`
	LastScan    *time.Time `json:"last_scan,omitempty"`
	Message     string     `json:"message,omitempty"`
}

// SystemStatus is the health view served by the status endpoint.
type SystemStatus struct {
	System     string     `json:"system"`
	LastScan   *time.Time `json:"last_scan"`
	Detectors  []string   `json:"detectors"`
	Collectors []string   `json:"collectors"`
}

// ScanReport is the assembled result of one full pipeline run.
type ScanReport struct {
	ScanID           string                      `json:"scan_id"`
	ScanCompleted    bool                        `json:"scan_completed"`
	RiskScore        int                         `json:"risk_score"`
	RiskLevel        RiskLevel                   `json:"risk_level"`
	TotalIssues      int                         `json:"total_issues"`
	IssuesByDetector map[string]int              `json:"issues_by_detector"`
	AllIssues        []Issue                     `json:"all_issues"`
	AlertSummary     AlertSummary                `json:"alert_summary"`
	Recommendations  []string                    `json:"recommendations"`
	RiskBreakdown    map[IssueType]RiskBreakdown `json:"risk_breakdown"`
	Timestamp        time.Time                   `json:"timestamp"`
}
