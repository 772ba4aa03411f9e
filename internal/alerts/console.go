package alerts

import (
	"github.com/fatih/color"

	"breachdetector/internal/models"
)

// ConsoleWriter prints alerts with severity-colored headers, for the
// operator watching a scan run.
type ConsoleWriter struct {
	critical *color.Color
	warning  *color.Color
	info     *color.Color
}

func NewConsoleWriter() *ConsoleWriter {
	return &ConsoleWriter{
		critical: color.New(color.FgRed, color.Bold),
		warning:  color.New(color.FgYellow),
		info:     color.New(color.FgCyan),
	}
}

func (w *ConsoleWriter) PrintAlert(alert models.Alert) {
	c := w.info
	switch alert.Severity {
	case models.SeverityCritical:
		c = w.critical
	case models.SeverityWarning:
		c = w.warning
	}
	_, _ = c.Printf("ALERT [%s] #%d\n", alert.Severity, alert.ID)
	_, _ = c.Printf("   Time: %s\n", alert.Timestamp.Format("2006-01-02 15:04:05"))
	_, _ = c.Printf("   %s\n", alert.Description)
}
