package ports

import (
	"context"

	"github.com/slalom/capabilities-system/internal/core/domain"
)

// AuditSink receives roster mutation events. Sinks are best-effort:
// callers log failures but never propagate them to the client.
type AuditSink interface {
	Record(ctx context.Context, event domain.AuditEvent) error
}
