// Package audit provides the audit-event sinks and the asynchronous
// dispatcher that fans roster mutations out to them.
package audit

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/slalom/capabilities-system/internal/core/domain"
)

// LoggerSink writes audit events as structured log lines.
type LoggerSink struct {
	log zerolog.Logger
}

func NewLoggerSink(log zerolog.Logger) *LoggerSink {
	return &LoggerSink{log: log}
}

func (s *LoggerSink) Record(ctx context.Context, event domain.AuditEvent) error {
	s.log.Info().
		Str("actor", event.Actor).
		Str("action", string(event.Action)).
		Str("consultant", event.Consultant).
		Str("capability", event.Capability).
		Time("timestamp", event.Timestamp).
		Msg("audit")
	return nil
}
