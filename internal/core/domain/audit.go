package domain

import "time"

// AuditAction identifies the roster mutation an audit event describes.
type AuditAction string

const (
	AuditRegister   AuditAction = "register"
	AuditUnregister AuditAction = "unregister"
)

// AuditEvent records a single roster mutation for the audit trail.
type AuditEvent struct {
	Actor      string
	Action     AuditAction
	Consultant string
	Capability string
	Timestamp  time.Time
}
