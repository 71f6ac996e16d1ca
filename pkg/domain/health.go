package domain

import (
	"strings"
	"time"
)

// Severity bounds for health records. 1 is low, 5 is critical.
const (
	MinSeverity = 1
	MaxSeverity = 5
)

// HealthRecord describes one medical issue and whether it is still active.
type HealthRecord struct {
	Description   string    `json:"description"`
	DateReported  time.Time `json:"date_reported"`
	Severity      int       `json:"severity"`
	TreatmentPlan string    `json:"treatment_plan,omitempty"`
	Active        bool      `json:"active"`
}

// NewHealthRecord validates its input and returns an active record dated to
// the calendar day of reported.
func NewHealthRecord(description string, reported time.Time, severity int, treatment string) (HealthRecord, error) {
	rec := HealthRecord{
		Description:   description,
		DateReported:  truncateDay(reported),
		Severity:      severity,
		TreatmentPlan: treatment,
		Active:        true,
	}
	if err := rec.Validate(); err != nil {
		return HealthRecord{}, err
	}
	return rec, nil
}

// Validate checks the severity range and that the description is not blank.
func (r HealthRecord) Validate() error {
	if r.Severity < MinSeverity || r.Severity > MaxSeverity {
		return invalid(EntityHealthRecord, "severity", "must be between %d and %d, got %d", MinSeverity, MaxSeverity, r.Severity)
	}
	if strings.TrimSpace(r.Description) == "" {
		return invalid(EntityHealthRecord, "description", "cannot be empty")
	}
	return nil
}

func truncateDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
