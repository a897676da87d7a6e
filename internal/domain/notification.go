package domain

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarn    Severity = "warn"
)

// Notification is a transient message; at most one is visible at a time and
// the latest one replaces any prior.
type Notification struct {
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
