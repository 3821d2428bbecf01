package domain

import (
	"time"

	"github.com/google/uuid"
)

type SignCollectionRequest struct {
	WasteID string `json:"wasteId" validate:"required,uuid"`
}

type UpdateCollectionStatusRequest struct {
	Status CollectionStatus `json:"status" validate:"required,oneof=COLLECTED CANCELLED"`
}

type CreateWasteRequest struct {
	WasteType             WasteType `json:"wasteType" validate:"required,oneof=ELECTRONICS ORGANIC PLASTIC PAPER GLASS METAL WOOD TEXTILE MISCELLANEOUS"`
	Weight                float64   `json:"weight" validate:"gt=0"`
	Quantity              float64   `json:"quantity" validate:"gt=0"`
	Unit                  Unit      `json:"unit" validate:"required,oneof=KG LITERS UNITS"`
	Condition             Condition `json:"condition" validate:"required,oneof=NEW USED DAMAGED"`
	HasPackaging          bool      `json:"hasPackaging"`
	DiscardDate           time.Time `json:"discardDate" validate:"required"`
	AdditionalDescription *string   `json:"additionalDescription" validate:"omitempty,max=1000"`
	Images                []string  `json:"images" validate:"omitempty,max=10,dive,required"`
	AddressID             uuid.UUID `json:"addressId" validate:"required"`
}

type CreateAddressRequest struct {
	Street       string `json:"street" validate:"required,max=200"`
	Number       string `json:"number" validate:"required,max=20"`
	Complement   string `json:"complement" validate:"max=200"`
	Neighborhood string `json:"neighborhood" validate:"required,max=100"`
	City         string `json:"city" validate:"required,max=100"`
	State        string `json:"state" validate:"required,max=50"`
	ZipCode      string `json:"zipCode" validate:"required,max=20"`
	Country      string `json:"country" validate:"omitempty,max=50"`
	Latitude     string `json:"latitude" validate:"required,coord_lat"`
	Longitude    string `json:"longitude" validate:"required,coord_lng"`
}

// ProximityQuery is the input of the radius search. Coordinates arrive as
// decimal-degree strings straight from the query string.
type ProximityQuery struct {
	Latitude      string
	Longitude     string
	RadiusKM      float64
	WasteType     WasteType
	Condition     Condition
	ExcludeUserID uuid.UUID
	Page          int
	Limit         int
}

type AvailableQuery struct {
	Filter WasteFilter
	Page   int
	Limit  int
}

// UpdateWasteRequest carries a partial edit of a posting. Nil fields keep
// their current value.
type UpdateWasteRequest struct {
	WasteType             *WasteType `json:"wasteType" validate:"omitempty,oneof=ELECTRONICS ORGANIC PLASTIC PAPER GLASS METAL WOOD TEXTILE MISCELLANEOUS"`
	Weight                *float64   `json:"weight" validate:"omitempty,gt=0"`
	Quantity              *float64   `json:"quantity" validate:"omitempty,gt=0"`
	Unit                  *Unit      `json:"unit" validate:"omitempty,oneof=KG LITERS UNITS"`
	Condition             *Condition `json:"condition" validate:"omitempty,oneof=NEW USED DAMAGED"`
	HasPackaging          *bool      `json:"hasPackaging"`
	DiscardDate           *time.Time `json:"discardDate"`
	AdditionalDescription *string    `json:"additionalDescription" validate:"omitempty,max=1000"`
	Images                []string   `json:"images" validate:"omitempty,max=10,dive,required"`
	AddressID             *uuid.UUID `json:"addressId"`
}

// Empty reports whether the request changes nothing.
func (r UpdateWasteRequest) Empty() bool {
	return r.WasteType == nil && r.Weight == nil && r.Quantity == nil &&
		r.Unit == nil && r.Condition == nil && r.HasPackaging == nil &&
		r.DiscardDate == nil && r.AdditionalDescription == nil &&
		r.Images == nil && r.AddressID == nil
}

type UpdateAddressRequest struct {
	Street       *string `json:"street" validate:"omitempty,max=200"`
	Number       *string `json:"number" validate:"omitempty,max=20"`
	Complement   *string `json:"complement" validate:"omitempty,max=200"`
	Neighborhood *string `json:"neighborhood" validate:"omitempty,max=100"`
	City         *string `json:"city" validate:"omitempty,max=100"`
	State        *string `json:"state" validate:"omitempty,max=50"`
	ZipCode      *string `json:"zipCode" validate:"omitempty,max=20"`
	Country      *string `json:"country" validate:"omitempty,max=50"`
	Latitude     *string `json:"latitude" validate:"omitempty,coord_lat"`
	Longitude    *string `json:"longitude" validate:"omitempty,coord_lng"`
}
