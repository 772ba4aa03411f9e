package collector

import (
	"encoding/json"
	"os"

	"breachdetector/internal/models"
)

// LogCollector reads authentication and API access logs from JSON files.
// In a real deployment this would be fed by actual log shippers; here the
// files are pre-generated sample data.
type LogCollector struct {
	AuthLogsPath string
	APILogsPath  string
}

func NewLogCollector(authPath, apiPath string) *LogCollector {
	return &LogCollector{
		AuthLogsPath: authPath,
		APILogsPath:  apiPath,
	}
}

// CollectAuthLogs reads the authentication log file. A missing or
// malformed file is not an error: the scan proceeds with an empty set.
func (c *LogCollector) CollectAuthLogs() []models.AuthLogRecord {
	var logs []models.AuthLogRecord
	if !readJSONFile(c.AuthLogsPath, &logs) {
		return []models.AuthLogRecord{}
	}
	models.InfoLog.Printf("collected %d authentication logs", len(logs))
	return logs
}

// CollectAPILogs reads the API access log file, with the same fail-open
// behavior as CollectAuthLogs.
func (c *LogCollector) CollectAPILogs() []models.APILogRecord {
	var logs []models.APILogRecord
	if !readJSONFile(c.APILogsPath, &logs) {
		return []models.APILogRecord{}
	}
	models.InfoLog.Printf("collected %d API logs", len(logs))
	return logs
}

// FailedLogins filters auth logs down to failed login attempts.
func FailedLogins(logs []models.AuthLogRecord) []models.AuthLogRecord {
	var failed []models.AuthLogRecord
	for _, l := range logs {
		if l.Action == models.ActionLoginFailed {
			failed = append(failed, l)
		}
	}
	return failed
}

// SuccessfulLogins filters auth logs down to successful logins.
func SuccessfulLogins(logs []models.AuthLogRecord) []models.AuthLogRecord {
	var success []models.AuthLogRecord
	for _, l := range logs {
		if l.Action == models.ActionLoginSuccess {
			success = append(success, l)
		}
	}
	return success
}

func readJSONFile(path string, out interface{}) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		models.ErrLog.Printf("log source %s unreadable: %v", path, err)
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		models.ErrLog.Printf("log source %s is not valid JSON: %v", path, err)
		return false
	}
	return true
}
