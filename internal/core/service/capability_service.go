package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/slalom/capabilities-system/internal/core/domain"
	"github.com/slalom/capabilities-system/internal/core/ports"
)

// CapabilityService owns the in-memory capability catalog. The catalog is
// fixed at construction; only rosters mutate. A single RWMutex serializes
// every check-then-act mutation so two concurrent registrations for the
// same (capability, email) pair cannot both pass the duplicate check.
type CapabilityService struct {
	mu      sync.RWMutex
	catalog map[string]*domain.Capability
	audit   ports.AuditSink
	logger  zerolog.Logger
}

func NewCapabilityService(catalog map[string]*domain.Capability, audit ports.AuditSink, logger zerolog.Logger) *CapabilityService {
	owned := make(map[string]*domain.Capability, len(catalog))
	for name, capability := range catalog {
		c := capability.Clone()
		c.Name = name
		owned[name] = c
	}
	return &CapabilityService{catalog: owned, audit: audit, logger: logger}
}

// List returns a snapshot of the catalog. Rosters are copied so callers
// never observe a partially applied mutation.
func (s *CapabilityService) List(ctx context.Context) map[string]*domain.Capability {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make(map[string]*domain.Capability, len(s.catalog))
	for name, capability := range s.catalog {
		snapshot[name] = capability.Clone()
	}
	return snapshot
}

func (s *CapabilityService) Register(ctx context.Context, capabilityName, email string, actor *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.catalog[capabilityName]
	if !ok {
		return domain.ErrCapabilityNotFound
	}
	if !actor.CanManage(c.PracticeArea) {
		return domain.ErrForbidden
	}
	if c.HasConsultant(email) {
		return domain.ErrAlreadyRegistered
	}

	c.Consultants = append(c.Consultants, email)

	s.emitAudit(ctx, actor.Username, domain.AuditRegister, email, capabilityName)
	return nil
}

func (s *CapabilityService) Unregister(ctx context.Context, capabilityName, email string, actor *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.catalog[capabilityName]
	if !ok {
		return domain.ErrCapabilityNotFound
	}
	if !actor.CanManage(c.PracticeArea) {
		return domain.ErrForbidden
	}
	idx := slices.Index(c.Consultants, email)
	if idx < 0 {
		return domain.ErrNotRegistered
	}

	c.Consultants = slices.Delete(c.Consultants, idx, idx+1)

	s.emitAudit(ctx, actor.Username, domain.AuditUnregister, email, capabilityName)
	return nil
}

// RequestRegistration only checks the capability exists. The approval
// workflow behind it was never built, so no pending request is recorded.
func (s *CapabilityService) RequestRegistration(ctx context.Context, capabilityName, email string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.catalog[capabilityName]; !ok {
		return domain.ErrCapabilityNotFound
	}
	return nil
}

// emitAudit records a roster mutation. Best-effort: a failing sink is
// logged and never affects the primary operation.
func (s *CapabilityService) emitAudit(ctx context.Context, actor string, action domain.AuditAction, email, capabilityName string) {
	event := domain.AuditEvent{
		Actor:      actor,
		Action:     action,
		Consultant: email,
		Capability: capabilityName,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.audit.Record(ctx, event); err != nil {
		s.logger.Warn().Err(err).
			Str("actor", actor).
			Str("capability", capabilityName).
			Msg("audit record failed")
	}
}
