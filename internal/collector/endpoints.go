package collector

import (
	"strings"

	"breachdetector/internal/models"
)

// EndpointScanner simulates probing API endpoints for exposure. No real
// network scanning happens: each endpoint is classified by a fixed rule
// keyed on its name, which is enough to drive the detection pipeline.
type EndpointScanner struct {
	Endpoints []string
}

func NewEndpointScanner() *EndpointScanner {
	return &EndpointScanner{
		Endpoints: []string{
			"/api/users",
			"/api/admin/settings",
			"/api/database/dump",
			"/api/health",
			"/api/data/export",
		},
	}
}

// ScanEndpoints classifies every configured endpoint.
func (s *EndpointScanner) ScanEndpoints() []models.EndpointScanResult {
	results := make([]models.EndpointScanResult, 0, len(s.Endpoints))
	for _, endpoint := range s.Endpoints {
		results = append(results, classifyEndpoint(endpoint))
	}
	models.InfoLog.Printf("scanned %d API endpoints", len(results))
	return results
}

// classifyEndpoint applies the simulation rule: admin/database/dump
// endpoints are exposed despite requiring auth, health endpoints are
// intentionally public, everything else is properly protected.
func classifyEndpoint(endpoint string) models.EndpointScanResult {
	switch {
	case strings.Contains(endpoint, "admin") ||
		strings.Contains(endpoint, "database") ||
		strings.Contains(endpoint, "dump"):
		return models.EndpointScanResult{
			Endpoint:     endpoint,
			RequiresAuth: true,
			AuthEnforced: false,
			PublicAccess: true,
			RiskLevel:    models.RiskHigh,
		}
	case strings.Contains(endpoint, "health"):
		return models.EndpointScanResult{
			Endpoint:     endpoint,
			RequiresAuth: false,
			AuthEnforced: false,
			PublicAccess: true,
			RiskLevel:    models.RiskLow,
		}
	default:
		return models.EndpointScanResult{
			Endpoint:     endpoint,
			RequiresAuth: true,
			AuthEnforced: true,
			PublicAccess: false,
			RiskLevel:    models.RiskLow,
		}
	}
}

// ExposedEndpoints filters scan results to endpoints that should be
// protected but are not.
func ExposedEndpoints(results []models.EndpointScanResult) []models.EndpointScanResult {
	var exposed []models.EndpointScanResult
	for _, r := range results {
		if r.RequiresAuth && !r.AuthEnforced {
			exposed = append(exposed, r)
		}
	}
	return exposed
}
