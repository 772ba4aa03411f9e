package alerts

import "breachdetector/internal/models"

// Notifier simulates email delivery for critical alerts. No mail is
// sent; the configured sender only shapes the log line.
type Notifier struct {
	From string
	Host string
}

func NewNotifier(from, host string) *Notifier {
	return &Notifier{From: from, Host: host}
}

// Notify logs a simulated notification for CRITICAL alerts and is a
// no-op for every other severity.
func (n *Notifier) Notify(alert models.Alert) {
	if alert.Severity != models.SeverityCritical {
		return
	}
	models.InfoLog.Printf("[SIMULATED] email notification from %s for critical alert: %s",
		n.From, alert.Description)
}
