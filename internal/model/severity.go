package model

import "strings"

// Severity is the v2 integer severity encoding. Lower is more severe.
type Severity int

const (
	SeverityHigh   Severity = 0
	SeverityMedium Severity = 1
	SeverityLow    Severity = 2
)

func (s Severity) String() string {
	switch s {
	case SeverityHigh:
		return "high"
	case SeverityMedium:
		return "medium"
	case SeverityLow:
		return "low"
	default:
		return "unknown"
	}
}

// ParseSeverity matches a v1 severity string case-insensitively against
// exactly high/medium/low. Anything else reports ok=false — unrecognized
// severities are dropped, not errors.
func ParseSeverity(s string) (Severity, bool) {
	switch strings.ToLower(s) {
	case "high":
		return SeverityHigh, true
	case "medium":
		return SeverityMedium, true
	case "low":
		return SeverityLow, true
	default:
		return 0, false
	}
}
