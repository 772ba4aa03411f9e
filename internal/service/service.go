package service

import (
	"context"

	"breachdetector/internal/models"
	"breachdetector/internal/server"
	"breachdetector/internal/storage"
)

type ScannerIR interface {
	RunScan(ctx context.Context) (models.ScanReport, error)
	LatestRisk(ctx context.Context) (models.RiskSummary, error)
	AllAlerts() ([]models.Alert, models.AlertSummary, error)
	RecentAlerts(limit int) ([]models.Alert, models.AlertSummary, error)
	Status() (models.SystemStatus, error)
}

type Service struct {
	ScannerIR
}

func NewService(store *storage.Storage, cache *storage.RiskCache, config server.Config) *Service {
	return &Service{
		ScannerIR: NewScanService(store, cache, config),
	}
}
