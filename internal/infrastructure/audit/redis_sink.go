package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/slalom/capabilities-system/internal/core/domain"
)

const (
	auditStream    = "audit:capabilities"
	streamMaxLen   = 10000
	recordTimeout  = 2 * time.Second
	connectTimeout = 5 * time.Second
)

// Config captures the settings for establishing a Redis connection.
type Config struct {
	Addr string
	DB   int
}

// Connect initialises a Redis client and validates connectivity with a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: cfg.Addr,
		DB:   cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// StreamSink appends audit events to a capped Redis stream. Writes carry
// a short timeout so a slow Redis never stalls the dispatcher workers.
type StreamSink struct {
	client *redis.Client
}

func NewStreamSink(client *redis.Client) *StreamSink {
	return &StreamSink{client: client}
}

func (s *StreamSink) Record(ctx context.Context, event domain.AuditEvent) error {
	writeCtx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	err := s.client.XAdd(writeCtx, &redis.XAddArgs{
		Stream: auditStream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"actor":      event.Actor,
			"action":     string(event.Action),
			"consultant": event.Consultant,
			"capability": event.Capability,
			"timestamp":  event.Timestamp.Format(time.RFC3339Nano),
		},
	}).Err()
	if err != nil {
		return fmt.Errorf("audit stream append: %w", err)
	}
	return nil
}
