package domain

import (
	"time"

	"github.com/google/uuid"
)

type WasteStatus string

const (
	WasteAvailable WasteStatus = "AVAILABLE"
	WasteSigned    WasteStatus = "SIGNED"
	WasteCollected WasteStatus = "COLLECTED"
	WasteCancelled WasteStatus = "CANCELLED"
)

func (s WasteStatus) Valid() bool {
	switch s {
	case WasteAvailable, WasteSigned, WasteCollected, WasteCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the state machine allows s -> next:
// AVAILABLE -> SIGNED -> COLLECTED, and AVAILABLE|SIGNED -> CANCELLED.
func (s WasteStatus) CanTransitionTo(next WasteStatus) bool {
	switch s {
	case WasteAvailable:
		return next == WasteSigned || next == WasteCancelled
	case WasteSigned:
		return next == WasteCollected || next == WasteCancelled
	}
	return false
}

type WasteType string

const (
	WasteElectronics   WasteType = "ELECTRONICS"
	WasteOrganic       WasteType = "ORGANIC"
	WastePlastic       WasteType = "PLASTIC"
	WastePaper         WasteType = "PAPER"
	WasteGlass         WasteType = "GLASS"
	WasteMetal         WasteType = "METAL"
	WasteWood          WasteType = "WOOD"
	WasteTextile       WasteType = "TEXTILE"
	WasteMiscellaneous WasteType = "MISCELLANEOUS"
)

func (t WasteType) Valid() bool {
	switch t {
	case WasteElectronics, WasteOrganic, WastePlastic, WastePaper, WasteGlass,
		WasteMetal, WasteWood, WasteTextile, WasteMiscellaneous:
		return true
	}
	return false
}

type Unit string

const (
	UnitKG     Unit = "KG"
	UnitLiters Unit = "LITERS"
	UnitUnits  Unit = "UNITS"
)

type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionUsed    Condition = "USED"
	ConditionDamaged Condition = "DAMAGED"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionNew, ConditionUsed, ConditionDamaged:
		return true
	}
	return false
}

type Waste struct {
	ID                    uuid.UUID   `json:"id"`
	OwnerID               uuid.UUID   `json:"userId"`
	WasteType             WasteType   `json:"wasteType"`
	Weight                float64     `json:"weight"`
	Quantity              float64     `json:"quantity"`
	Unit                  Unit        `json:"unit"`
	Condition             Condition   `json:"condition"`
	HasPackaging          bool        `json:"hasPackaging"`
	DiscardDate           time.Time   `json:"discardDate"`
	AdditionalDescription *string     `json:"additionalDescription,omitempty"`
	Images                []string    `json:"images"`
	Status                WasteStatus `json:"status"`
	AddressID             uuid.UUID   `json:"addressId"`
	CreatedAt             time.Time   `json:"createdAt"`
	UpdatedAt             time.Time   `json:"updatedAt"`
}

// NewWaste builds an AVAILABLE posting with a fresh id and timestamps set to now.
func NewWaste(ownerID uuid.UUID, req CreateWasteRequest, now time.Time) *Waste {
	images := req.Images
	if images == nil {
		images = []string{}
	}
	return &Waste{
		ID:                    uuid.New(),
		OwnerID:               ownerID,
		WasteType:             req.WasteType,
		Weight:                req.Weight,
		Quantity:              req.Quantity,
		Unit:                  req.Unit,
		Condition:             req.Condition,
		HasPackaging:          req.HasPackaging,
		DiscardDate:           req.DiscardDate.UTC(),
		AdditionalDescription: req.AdditionalDescription,
		Images:                images,
		Status:                WasteAvailable,
		AddressID:             req.AddressID,
		CreatedAt:             now,
		UpdatedAt:             now,
	}
}

// WithStatus returns a copy of w moved to status s.
func (w Waste) WithStatus(s WasteStatus, at time.Time) Waste {
	w.Status = s
	w.UpdatedAt = at
	return w
}

// Apply returns a copy of w with the non-nil fields of req written over it.
func (w Waste) Apply(req UpdateWasteRequest, at time.Time) Waste {
	if req.WasteType != nil {
		w.WasteType = *req.WasteType
	}
	if req.Weight != nil {
		w.Weight = *req.Weight
	}
	if req.Quantity != nil {
		w.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		w.Unit = *req.Unit
	}
	if req.Condition != nil {
		w.Condition = *req.Condition
	}
	if req.HasPackaging != nil {
		w.HasPackaging = *req.HasPackaging
	}
	if req.DiscardDate != nil {
		w.DiscardDate = req.DiscardDate.UTC()
	}
	if req.AdditionalDescription != nil {
		d := *req.AdditionalDescription
		w.AdditionalDescription = &d
	}
	if req.Images != nil {
		w.Images = append([]string{}, req.Images...)
	}
	if req.AddressID != nil {
		w.AddressID = *req.AddressID
	}
	w.UpdatedAt = at
	return w
}

// WasteWithLocation is a posting joined with the coordinates and locality of
// its pickup address.
type WasteWithLocation struct {
	Waste
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	City      string `json:"city"`
	State     string `json:"state"`
}

type NearbyWaste struct {
	WasteWithLocation
	DistanceKM float64 `json:"distanceKm"`
}

// WasteFilter narrows availability queries. Zero values mean "no filter".
type WasteFilter struct {
	WasteType     WasteType
	Condition     Condition
	Location      string
	ExcludeUserID uuid.UUID
}

func (f WasteFilter) Match(w WasteWithLocation) bool {
	if w.Status != WasteAvailable {
		return false
	}
	if f.WasteType != "" && w.WasteType != f.WasteType {
		return false
	}
	if f.Condition != "" && w.Condition != f.Condition {
		return false
	}
	if f.ExcludeUserID != uuid.Nil && w.OwnerID == f.ExcludeUserID {
		return false
	}
	return true
}
