package models

// IssueType identifies which detection rule produced an issue.
type IssueType string

const (
	IssueMissingAuthentication IssueType = "missing_authentication"
	IssueExposedEndpoint       IssueType = "exposed_endpoint"
	IssueBruteForceDetected    IssueType = "brute_force_detected"
	IssueSuspiciousAccessTime  IssueType = "suspicious_access_time"
	IssueMultipleIPAccess      IssueType = "multiple_ip_access"
	IssueDefaultCredentials    IssueType = "default_credentials"
	IssuePublicEndpoint        IssueType = "public_endpoint"
)

// Issue is a single rule-detected security finding. Detectors create
// issues, the scorer and alert manager consume them; nothing mutates an
// issue after creation. Type-specific fields stay empty for other types.
type Issue struct {
	Type        IssueType `json:"type"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`

	User           string    `json:"user,omitempty"`
	Endpoint       string    `json:"endpoint,omitempty"`
	IP             string    `json:"ip,omitempty"`
	IPs            []string  `json:"ips,omitempty"`
	IPCount        int       `json:"ip_count,omitempty"`
	FailedAttempts int       `json:"failed_attempts,omitempty"`
	Hour           *int      `json:"hour,omitempty"`
	Timestamp      string    `json:"timestamp,omitempty"`
	RiskLevel      RiskLevel `json:"risk_level,omitempty"`
	PublicAccess   *bool     `json:"public_access,omitempty"`
}

// DetectionResult is what each detector's Analyze returns.
type DetectionResult struct {
	Detector    string  `json:"detector"`
	TotalIssues int     `json:"total_issues"`
	Issues      []Issue `json:"issues"`
}
