package risk

import "breachdetector/internal/models"

// Recommendations maps the issue types present in a score result to
// fixed remediation advice. It is a lookup table, nothing is generated.
func (s *Scorer) Recommendations(score models.RiskScore) []string {
	var recommendations []string

	if _, ok := score.IssueCounts[models.IssueBruteForceDetected]; ok {
		recommendations = append(recommendations,
			"Implement account lockout after failed login attempts",
			"Enable multi-factor authentication (MFA)")
	}

	_, exposed := score.IssueCounts[models.IssueExposedEndpoint]
	_, missing := score.IssueCounts[models.IssueMissingAuthentication]
	if exposed || missing {
		recommendations = append(recommendations,
			"Add authentication to all sensitive API endpoints",
			"Implement API key validation")
	}

	if _, ok := score.IssueCounts[models.IssueSuspiciousAccessTime]; ok {
		recommendations = append(recommendations,
			"Set up alerts for off-hours access",
			"Review access logs regularly")
	}

	if _, ok := score.IssueCounts[models.IssueDefaultCredentials]; ok {
		recommendations = append(recommendations,
			"Change all default usernames and passwords",
			"Enforce strong password policies")
	}

	if _, ok := score.IssueCounts[models.IssueMultipleIPAccess]; ok {
		recommendations = append(recommendations,
			"Implement IP whitelisting for admin accounts",
			"Monitor for unusual login patterns")
	}

	if len(recommendations) == 0 {
		recommendations = append(recommendations,
			"No critical issues detected - maintain current security posture")
	}

	return recommendations
}
