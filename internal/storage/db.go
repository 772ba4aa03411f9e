package storage

import (
	"database/sql"
	"log"

	"breachdetector/internal/models"
	"breachdetector/internal/server"
)

const schema = `
CREATE TABLE IF NOT EXISTS alerts (
	id          INTEGER PRIMARY KEY,
	created_at  TIMESTAMP NOT NULL,
	severity    TEXT NOT NULL,
	type        TEXT NOT NULL,
	description TEXT,
	details     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS scans (
	scan_id      TEXT PRIMARY KEY,
	created_at   TIMESTAMP NOT NULL,
	risk_score   INTEGER NOT NULL,
	risk_level   TEXT NOT NULL,
	total_issues INTEGER NOT NULL,
	report       TEXT NOT NULL
);
`

// InitDB opens the database and creates the schema if it is not there
// yet. Re-running against an existing database is a no-op.
func InitDB(config server.Config) *sql.DB {
	db, err := sql.Open(config.DB.Driver, config.DB.Dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if _, err := db.Exec(schema); err != nil {
		log.Fatalf("create schema: %v", err)
	}
	models.InfoLog.Println("database ready")
	return db
}
