package core

import (
	"encoding/json"
	"io"
	"time"

	"zoocore/pkg/domain"
)

// AuditStatus reports whether an audited operation succeeded.
type AuditStatus string

// Audit statuses.
const (
	AuditStatusSuccess AuditStatus = "success"
	AuditStatusError   AuditStatus = "error"
)

// AuditEntry describes a single mutating zoo operation.
type AuditEntry struct {
	Operation string            `json:"operation"`
	Status    AuditStatus       `json:"status"`
	Entity    domain.EntityType `json:"entity"`
	EntityID  string            `json:"entity_id,omitempty"`
	Subject   string            `json:"subject,omitempty"`
	Error     string            `json:"error,omitempty"`
	At        time.Time         `json:"at"`
}

// AuditLog retains entries in memory in the order they were recorded.
type AuditLog struct {
	entries []AuditEntry
}

// NewAuditLog returns an empty log.
func NewAuditLog() *AuditLog {
	return &AuditLog{}
}

// Record implements AuditRecorder.
func (l *AuditLog) Record(entry AuditEntry) {
	l.entries = append(l.entries, entry)
}

// Entries returns a copy of the recorded entries.
func (l *AuditLog) Entries() []AuditEntry {
	out := make([]AuditEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Failures returns the entries whose operation failed.
func (l *AuditLog) Failures() []AuditEntry {
	var out []AuditEntry
	for _, e := range l.entries {
		if e.Status == AuditStatusError {
			out = append(out, e)
		}
	}
	return out
}

// WriteJSONLines encodes each entry as one JSON document per line.
func (l *AuditLog) WriteJSONLines(w io.Writer) error {
	enc := json.NewEncoder(w)
	for _, e := range l.entries {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}
