package storage

import "database/sql"

type Storage struct {
	AlertIR
	ScanIR
}

func NewStorage(db *sql.DB) *Storage {
	return &Storage{
		AlertIR: NewAlertStorage(db),
		ScanIR:  NewScanStorage(db),
	}
}
