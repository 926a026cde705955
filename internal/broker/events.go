package broker

import (
	"context"
	"fmt"
	"time"

	"shopify-mirror/internal/models"

	"github.com/google/uuid"
)

// EventPublisher handles publishing mirror events
type EventPublisher struct {
	producer *Producer
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(producer *Producer) *EventPublisher {
	return &EventPublisher{producer: producer}
}

// PublishEntitySynced publishes an EntitySynced event after a poll run.
func (ep *EventPublisher) PublishEntitySynced(ctx context.Context, entity string, fetched, inserted, rejected int) error {
	event := &models.EntitySyncedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeEntitySynced,
			Timestamp: time.Now(),
		},
		Entity:   entity,
		Fetched:  fetched,
		Inserted: inserted,
		Rejected: rejected,
	}
	key := fmt.Sprintf("sync-%s", entity)
	return ep.producer.PublishEvent(ctx, key, event)
}

// PublishEntityIngested publishes an EntityIngested event after a webhook
// delivery is stored.
func (ep *EventPublisher) PublishEntityIngested(ctx context.Context, entity string, recordKey int64) error {
	event := &models.EntityIngestedEvent{
		BaseEvent: models.BaseEvent{
			EventID:   uuid.New().String(),
			EventType: models.EventTypeEntityIngested,
			Timestamp: time.Now(),
		},
		Entity: entity,
		Key:    recordKey,
	}
	key := fmt.Sprintf("%s-%d", entity, recordKey)
	return ep.producer.PublishEvent(ctx, key, event)
}
