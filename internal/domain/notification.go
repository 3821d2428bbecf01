package domain

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventCollectionSigned    EventType = "collection.signed"
	EventCollectionCollected EventType = "collection.collected"
	EventCollectionCancelled EventType = "collection.cancelled"
)

type CollectionEvent struct {
	Type         EventType        `json:"type"`
	CollectionID uuid.UUID        `json:"collectionId"`
	WasteID      uuid.UUID        `json:"wasteId"`
	CollectorID  uuid.UUID        `json:"collectorId"`
	OwnerID      uuid.UUID        `json:"ownerId"`
	Status       CollectionStatus `json:"status"`
	OccurredAt   time.Time        `json:"occurredAt"`
}

func EventFor(s CollectionStatus) EventType {
	switch s {
	case CollectionCollected:
		return EventCollectionCollected
	case CollectionCancelled:
		return EventCollectionCancelled
	}
	return EventCollectionSigned
}
