package risk

import "breachdetector/internal/models"

// Score thresholds, checked highest first.
const (
	thresholdCritical = 90
	thresholdHigh     = 60
	thresholdMedium   = 30
)

// defaultWeight applies to issue types without an explicit weight, so a
// future detector rule still contributes to the score.
const defaultWeight = 5

// Scorer turns a flat issue list into an aggregate risk score. It is
// stateless: every call starts from zero.
type Scorer struct{}

func NewScorer() *Scorer { return &Scorer{} }

// CalculateScore tallies issues by type, weighs each type and sums the
// contributions. The risk level is a pure function of the total.
func (s *Scorer) CalculateScore(issues []models.Issue) models.RiskScore {
	counts := map[models.IssueType]int{}
	var typeOrder []models.IssueType
	for _, issue := range issues {
		if _, seen := counts[issue.Type]; !seen {
			typeOrder = append(typeOrder, issue.Type)
		}
		counts[issue.Type]++
	}

	score := 0
	breakdown := map[models.IssueType]models.RiskBreakdown{}
	for _, issueType := range typeOrder {
		count := counts[issueType]
		weight := Weight(issueType)
		contribution := weight * count
		score += contribution
		breakdown[issueType] = models.RiskBreakdown{
			Count:        count,
			Weight:       weight,
			Contribution: contribution,
		}
	}

	level := LevelFor(score)
	models.InfoLog.Printf("risk score: total=%d level=%s", score, level)

	return models.RiskScore{
		Score:       score,
		RiskLevel:   level,
		Breakdown:   breakdown,
		TotalIssues: len(issues),
		IssueCounts: counts,
	}
}

// Weight returns how many points one issue of the given type adds.
func Weight(issueType models.IssueType) int {
	switch issueType {
	case models.IssueExposedEndpoint:
		return 40
	case models.IssueMissingAuthentication:
		return 35
	case models.IssueSuspiciousAccessTime:
		return 30
	case models.IssueDefaultCredentials:
		return 25
	case models.IssueBruteForceDetected:
		return 20
	case models.IssueMultipleIPAccess:
		return 15
	case models.IssuePublicEndpoint:
		return 10
	default:
		return defaultWeight
	}
}

// LevelFor maps a score onto the four risk levels.
func LevelFor(score int) models.RiskLevel {
	switch {
	case score >= thresholdCritical:
		return models.RiskCritical
	case score >= thresholdHigh:
		return models.RiskHigh
	case score >= thresholdMedium:
		return models.RiskMedium
	default:
		return models.RiskLow
	}
}
