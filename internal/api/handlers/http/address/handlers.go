package address

import (
	"context"
	"log/slog"
	"net/http"

	"wasteCollect/internal/domain"
	"wasteCollect/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Addresses interface {
	Create(ctx context.Context, userID uuid.UUID, req domain.CreateAddressRequest) (*domain.Address, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Address, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*domain.Address, error)
	Update(ctx context.Context, userID, id uuid.UUID, req domain.UpdateAddressRequest) (*domain.Address, error)
}

type Handler struct {
	logger    *slog.Logger
	addresses Addresses
}

func NewHandler(logger *slog.Logger, addresses Addresses) *Handler {
	return &Handler{
		logger:    logger,
		addresses: addresses,
	}
}

// Create handles POST /addresses.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	req, err := middleware.DecodeJSON[domain.CreateAddressRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	addr, err := h.addresses.Create(r.Context(), userID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("address created", slog.String("address_id", addr.ID.String()))
	h.success(w, r, http.StatusCreated, msgCreated, addr)
}

// Get handles GET /addresses/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, invalidID(err))
		return
	}

	addr, err := h.addresses.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, msgFound, addr)
}

// ListMine handles GET /addresses/my.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	addrs, err := h.addresses.ListMine(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, msgListed, addrs)
}

// Update handles PATCH /addresses/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, invalidID(err))
		return
	}

	req, err := middleware.DecodeJSON[domain.UpdateAddressRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	addr, err := h.addresses.Update(r.Context(), userID, id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("address updated", slog.String("address_id", addr.ID.String()))
	h.success(w, r, http.StatusOK, msgUpdated, addr)
}
