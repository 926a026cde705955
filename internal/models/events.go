package models

import "time"

// Event types published to the mirror event stream. Downstream analytics
// consumers use these to pick up changes incrementally instead of diffing
// collections.
const (
	EventTypeEntitySynced   = "EntitySynced"
	EventTypeEntityIngested = "EntityIngested"
)

// BaseEvent contains common fields for every published event.
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// EntitySyncedEvent announces that a poll-triggered sync finished for one
// entity type, with the batch split it observed.
type EntitySyncedEvent struct {
	BaseEvent
	Entity   string `json:"entity"`
	Fetched  int    `json:"fetched"`
	Inserted int    `json:"inserted"`
	Rejected int    `json:"rejected"`
}

// EntityIngestedEvent announces that one webhook-delivered record was stored.
type EntityIngestedEvent struct {
	BaseEvent
	Entity string `json:"entity"`
	Key    int64  `json:"key"`
}
