package core

import (
	"time"

	"zoocore/pkg/domain"
)

// Clock supplies the current time to the zoo.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

// Logger is the structured logging surface used by the zoo. Arguments after
// msg are alternating key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// MetricsRecorder observes operation outcomes.
type MetricsRecorder interface {
	Observe(operation string, success bool, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) Observe(string, bool, time.Duration) {}

// AuditRecorder receives one entry per mutating zoo operation.
type AuditRecorder interface {
	Record(entry AuditEntry)
}

type noopAudit struct{}

func (noopAudit) Record(AuditEntry) {}

// Option configures a Zoo.
type Option func(*options)

type options struct {
	clock   Clock
	logger  Logger
	audit   AuditRecorder
	metrics MetricsRecorder
	rules   []domain.Rule
}

func defaultOptions() options {
	return options{
		clock:   ClockFunc(func() time.Time { return time.Now().UTC() }),
		logger:  noopLogger{},
		audit:   noopAudit{},
		metrics: noopMetrics{},
	}
}

// WithClock overrides the clock used for audit timestamps and reports.
func WithClock(clock Clock) Option {
	return func(o *options) {
		if clock != nil {
			o.clock = clock
		}
	}
}

// WithLogger installs a structured logger.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithAuditRecorder installs an audit sink.
func WithAuditRecorder(audit AuditRecorder) Option {
	return func(o *options) {
		if audit != nil {
			o.audit = audit
		}
	}
}

// WithMetricsRecorder installs a metrics sink.
func WithMetricsRecorder(metrics MetricsRecorder) Option {
	return func(o *options) {
		if metrics != nil {
			o.metrics = metrics
		}
	}
}

// WithRules adds zoo-level admission rules evaluated on every assignment in
// addition to the enclosure's own policy.
func WithRules(rules ...domain.Rule) Option {
	return func(o *options) {
		for _, r := range rules {
			if r != nil {
				o.rules = append(o.rules, r)
			}
		}
	}
}
