package domain

import (
	"time"

	"github.com/google/uuid"
)

type CollectionStatus string

const (
	CollectionSigned    CollectionStatus = "SIGNED"
	CollectionCollected CollectionStatus = "COLLECTED"
	CollectionCancelled CollectionStatus = "CANCELLED"
)

func (s CollectionStatus) Valid() bool {
	switch s {
	case CollectionSigned, CollectionCollected, CollectionCancelled:
		return true
	}
	return false
}

// CanTransitionTo allows only SIGNED -> COLLECTED and SIGNED -> CANCELLED.
func (s CollectionStatus) CanTransitionTo(next CollectionStatus) bool {
	return s == CollectionSigned && (next == CollectionCollected || next == CollectionCancelled)
}

// WasteStatus is the waste status that mirrors a finished collection.
func (s CollectionStatus) WasteStatus() WasteStatus {
	switch s {
	case CollectionCollected:
		return WasteCollected
	case CollectionCancelled:
		return WasteCancelled
	}
	return WasteSigned
}

type Collection struct {
	ID          uuid.UUID        `json:"id"`
	CollectorID uuid.UUID        `json:"collectorId"`
	WasteID     uuid.UUID        `json:"wasteId"`
	Status      CollectionStatus `json:"status"`
	SignedAt    time.Time        `json:"signedAt"`
	CollectedAt *time.Time       `json:"collectedAt,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	Waste *Waste `json:"waste,omitempty"`
}

func NewCollection(collectorID, wasteID uuid.UUID, now time.Time) *Collection {
	return &Collection{
		ID:          uuid.New(),
		CollectorID: collectorID,
		WasteID:     wasteID,
		Status:      CollectionSigned,
		SignedAt:    now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// WithStatus returns a copy moved to s; COLLECTED stamps CollectedAt.
func (c Collection) WithStatus(s CollectionStatus, at time.Time) Collection {
	c.Status = s
	c.UpdatedAt = at
	if s == CollectionCollected {
		t := at
		c.CollectedAt = &t
	}
	return c
}

type CollectionFilter struct {
	Status CollectionStatus
	Page   int
	Limit  int
}

func (f CollectionFilter) Offset() int {
	return Offset(f.Page, f.Limit)
}
