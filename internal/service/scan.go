package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid"

	"breachdetector/internal/alerts"
	"breachdetector/internal/collector"
	"breachdetector/internal/detector"
	"breachdetector/internal/models"
	"breachdetector/internal/risk"
	"breachdetector/internal/server"
	"breachdetector/internal/storage"
)

// ScanService runs the detection pipeline end to end and serves the
// read paths over its results. One scan is fully synchronous: collect,
// detect, score, alert, persist.
type ScanService struct {
	logs      *collector.LogCollector
	endpoints *collector.EndpointScanner
	auth      *detector.AuthDetector
	api       *detector.APIDetector
	misconfig *detector.MisconfigDetector
	scorer    *risk.Scorer
	notifier  *alerts.Notifier
	store     *storage.Storage
	cache     *storage.RiskCache
}

func NewScanService(store *storage.Storage, cache *storage.RiskCache, config server.Config) *ScanService {
	return &ScanService{
		logs:      collector.NewLogCollector(config.Logs.AuthPath, config.Logs.APIPath),
		endpoints: collector.NewEndpointScanner(),
		auth:      detector.NewAuthDetector(config.Detection.MaxFailedLogins, config.Detection.SuspiciousHours),
		api:       detector.NewAPIDetector(),
		misconfig: detector.NewMisconfigDetector(),
		scorer:    risk.NewScorer(),
		notifier:  alerts.NewNotifier(config.SMTP.From, config.SMTP.Host),
		store:     store,
		cache:     cache,
	}
}

// RunScan executes one full scan and returns the assembled report.
// The concatenation order of issues (auth, api, misconfig) fixes the
// alert id assignment.
func (s *ScanService) RunScan(ctx context.Context) (models.ScanReport, error) {
	models.InfoLog.Println("starting security scan")

	authLogs := s.logs.CollectAuthLogs()
	apiLogs := s.logs.CollectAPILogs()
	endpointScans := s.endpoints.ScanEndpoints()

	authResult := s.auth.Analyze(authLogs)
	apiResult := s.api.Analyze(apiLogs, endpointScans)
	misconfigResult := s.misconfig.Analyze(authLogs, endpointScans)

	allIssues := make([]models.Issue, 0,
		len(authResult.Issues)+len(apiResult.Issues)+len(misconfigResult.Issues))
	allIssues = append(allIssues, authResult.Issues...)
	allIssues = append(allIssues, apiResult.Issues...)
	allIssues = append(allIssues, misconfigResult.Issues...)

	riskScore := s.scorer.CalculateScore(allIssues)
	recommendations := s.scorer.Recommendations(riskScore)

	manager := alerts.NewManager(s.store, s.notifier)
	createdAlerts, err := manager.ProcessIssues(allIssues)
	if err != nil {
		return models.ScanReport{}, fmt.Errorf("process issues: %w", err)
	}

	scanID, err := uuid.NewV4()
	if err != nil {
		return models.ScanReport{}, fmt.Errorf("scan id: %w", err)
	}

	report := models.ScanReport{
		ScanID:        scanID.String(),
		ScanCompleted: true,
		RiskScore:     riskScore.Score,
		RiskLevel:     riskScore.RiskLevel,
		TotalIssues:   len(allIssues),
		IssuesByDetector: map[string]int{
			authResult.Detector:      authResult.TotalIssues,
			apiResult.Detector:       apiResult.TotalIssues,
			misconfigResult.Detector: misconfigResult.TotalIssues,
		},
		AllIssues:       allIssues,
		AlertSummary:    alerts.Summary(createdAlerts),
		Recommendations: recommendations,
		RiskBreakdown:   riskScore.Breakdown,
		Timestamp:       time.Now(),
	}

	if err := s.store.SaveScan(report); err != nil {
		return models.ScanReport{}, fmt.Errorf("save scan: %w", err)
	}
	s.cache.SetLatest(ctx, summaryFromReport(report))

	models.InfoLog.Printf("scan completed: level=%s issues=%d", report.RiskLevel, report.TotalIssues)
	return report, nil
}

// LatestRisk serves the condensed latest-scan view, preferring the
// redis cache over the scans table. No prior scan is not an error.
func (s *ScanService) LatestRisk(ctx context.Context) (models.RiskSummary, error) {
	if summary, ok := s.cache.GetLatest(ctx); ok {
		return summary, nil
	}

	report, err := s.store.GetLatestScan()
	if errors.Is(err, sql.ErrNoRows) {
		return models.RiskSummary{
			RiskLevel: models.RiskUnknown,
			Message:   "No scans performed yet. Run /api/scan first.",
		}, nil
	}
	if err != nil {
		return models.RiskSummary{}, err
	}

	summary := summaryFromReport(report)
	s.cache.SetLatest(ctx, summary)
	return summary, nil
}

func (s *ScanService) AllAlerts() ([]models.Alert, models.AlertSummary, error) {
	all, err := s.store.GetAllAlerts()
	if err != nil {
		return nil, models.AlertSummary{}, err
	}
	return all, alerts.Summary(all), nil
}

// RecentAlerts returns the newest alerts with a summary over just that
// window.
func (s *ScanService) RecentAlerts(limit int) ([]models.Alert, models.AlertSummary, error) {
	recent, err := s.store.GetRecentAlerts(limit)
	if err != nil {
		return nil, models.AlertSummary{}, err
	}
	return recent, alerts.Summary(recent), nil
}

func (s *ScanService) Status() (models.SystemStatus, error) {
	status := models.SystemStatus{
		System:     "operational",
		Detectors:  []string{"auth", "api", "misconfig"},
		Collectors: []string{"logs", "api_scanner"},
	}

	report, err := s.store.GetLatestScan()
	if errors.Is(err, sql.ErrNoRows) {
		return status, nil
	}
	if err != nil {
		return models.SystemStatus{}, err
	}

	ts := report.Timestamp
	status.LastScan = &ts
	return status, nil
}

func summaryFromReport(report models.ScanReport) models.RiskSummary {
	ts := report.Timestamp
	return models.RiskSummary{
		RiskScore:   report.RiskScore,
		RiskLevel:   report.RiskLevel,
		TotalIssues: report.TotalIssues,
		LastScan:    &ts,
	}
}
