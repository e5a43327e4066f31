// Package application wires the domain rules to storage and notification
// infrastructure.
package application

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/skilltrail/skilltrail/internal/domain"
	"github.com/skilltrail/skilltrail/internal/domain/events"
)

// Notifier delivers events to external webhook endpoints.
type Notifier interface {
	Notify(ctx context.Context, event *events.BaseEvent)
}

// ActivityService records activity events to the append-only log and fans
// them out to subscribers and webhooks.
type ActivityService struct {
	store     domain.EventStore
	publisher events.Publisher
	notifier  Notifier // optional
}

func NewActivityService(store domain.EventStore, publisher events.Publisher, notifier Notifier) *ActivityService {
	return &ActivityService{store: store, publisher: publisher, notifier: notifier}
}

// Log appends an event, publishes it in-process, and notifies webhooks.
func (s *ActivityService) Log(eventType, aggregateID string, metadata map[string]interface{}) error {
	event := &events.BaseEvent{
		Type:        eventType,
		AggregateID: aggregateID,
		Timestamp:   time.Now(),
		Actor:       currentActor(),
		Metadata:    metadata,
	}

	if err := s.store.Append(event); err != nil {
		return fmt.Errorf("record event: %w", err)
	}

	if s.publisher != nil {
		_ = s.publisher.Publish(event)
	}
	if s.notifier != nil {
		s.notifier.Notify(context.Background(), event)
	}
	return nil
}

// Events returns the full activity log in append order.
func (s *ActivityService) Events() ([]events.BaseEvent, error) {
	return s.store.ReadAll()
}

// Verify checks the integrity of the activity log hash chain.
func (s *ActivityService) Verify() error {
	return s.store.VerifyChain()
}

func currentActor() string {
	if actor := os.Getenv("SKILLTRAIL_ACTOR"); actor != "" {
		return actor
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "learner"
}
