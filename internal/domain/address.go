package domain

import (
	"time"

	"github.com/google/uuid"
)

type Address struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"userId"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Complement   string    `json:"complement,omitempty"`
	Neighborhood string    `json:"neighborhood"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	ZipCode      string    `json:"zipCode"`
	Country      string    `json:"country"`
	Latitude     string    `json:"latitude"`
	Longitude    string    `json:"longitude"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func NewAddress(userID uuid.UUID, req CreateAddressRequest, now time.Time) *Address {
	country := req.Country
	if country == "" {
		country = "BR"
	}
	return &Address{
		ID:           uuid.New(),
		UserID:       userID,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Country:      country,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Apply returns a copy of a with the non-nil fields of req written over it.
func (a Address) Apply(req UpdateAddressRequest, at time.Time) Address {
	set := func(dst, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&a.Street, req.Street)
	set(&a.Number, req.Number)
	set(&a.Complement, req.Complement)
	set(&a.Neighborhood, req.Neighborhood)
	set(&a.City, req.City)
	set(&a.State, req.State)
	set(&a.ZipCode, req.ZipCode)
	set(&a.Country, req.Country)
	set(&a.Latitude, req.Latitude)
	set(&a.Longitude, req.Longitude)
	a.UpdatedAt = at
	return a
}
