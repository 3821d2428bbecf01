package waste

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"wasteCollect/internal/domain"
	"wasteCollect/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type Wastes interface {
	Create(ctx context.Context, ownerID uuid.UUID, req domain.CreateWasteRequest) (*domain.Waste, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Waste, error)
	ListMine(ctx context.Context, ownerID uuid.UUID, page, limit int) (domain.Page[*domain.Waste], error)
	ListAvailable(ctx context.Context, q domain.AvailableQuery) (domain.Page[domain.WasteWithLocation], error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req domain.UpdateWasteRequest) (*domain.Waste, error)
	Cancel(ctx context.Context, ownerID, id uuid.UUID) (*domain.Waste, error)
}

type NearbyFinder interface {
	FindAvailable(ctx context.Context, q domain.ProximityQuery) (domain.Page[domain.NearbyWaste], error)
}

type Handler struct {
	logger *slog.Logger
	wastes Wastes
	nearby NearbyFinder
}

func NewHandler(logger *slog.Logger, wastes Wastes, nearby NearbyFinder) *Handler {
	return &Handler{
		logger: logger,
		wastes: wastes,
		nearby: nearby,
	}
}

// Create handles POST /wastes.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}

	req, err := middleware.DecodeJSON[domain.CreateWasteRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	waste, err := h.wastes.Create(r.Context(), ownerID, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("waste created", slog.String("waste_id", waste.ID.String()))
	h.success(w, r, http.StatusCreated, msgCreated, waste)
}

// Get handles GET /wastes/{id}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, invalidID(err))
		return
	}

	waste, err := h.wastes.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, msgFound, waste)
}

// Update handles PATCH /wastes/{id}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, invalidID(err))
		return
	}

	req, err := middleware.DecodeJSON[domain.UpdateWasteRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	waste, err := h.wastes.Update(r.Context(), ownerID, id, req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("waste updated", slog.String("waste_id", waste.ID.String()))
	h.success(w, r, http.StatusOK, msgUpdated, waste)
}

// Cancel handles DELETE /wastes/{id}. The posting is withdrawn, not erased.
func (h *Handler) Cancel(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, invalidID(err))
		return
	}

	waste, err := h.wastes.Cancel(r.Context(), ownerID, id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("waste cancelled", slog.String("waste_id", waste.ID.String()))
	h.success(w, r, http.StatusOK, msgCancelled, waste)
}

// ListMine handles GET /wastes/my?page&limit.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := h.userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	res, err := h.wastes.ListMine(r.Context(), ownerID, parseInt(q.Get("page"), 1), parseInt(q.Get("limit"), 0))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, msgListedMine, res)
}

// ListAvailable handles GET /wastes/available?wasteType&condition&location&page&limit.
// The caller's own postings are left out.
func (h *Handler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	res, err := h.wastes.ListAvailable(r.Context(), domain.AvailableQuery{
		Filter: domain.WasteFilter{
			WasteType:     domain.WasteType(q.Get("wasteType")),
			Condition:     domain.Condition(q.Get("condition")),
			Location:      q.Get("location"),
			ExcludeUserID: userID,
		},
		Page:  parseInt(q.Get("page"), 1),
		Limit: parseInt(q.Get("limit"), 0),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, msgListedAvailable, res)
}

// Nearby handles GET /wastes/nearby?latitude&longitude&radiusKm&wasteType&condition&page&limit.
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()

	var radius float64
	if raw := q.Get("radiusKm"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			h.handleError(w, r, invalidRadius(err))
			return
		}
		radius = v
	}

	res, err := h.nearby.FindAvailable(r.Context(), domain.ProximityQuery{
		Latitude:      q.Get("latitude"),
		Longitude:     q.Get("longitude"),
		RadiusKM:      radius,
		WasteType:     domain.WasteType(q.Get("wasteType")),
		Condition:     domain.Condition(q.Get("condition")),
		ExcludeUserID: userID,
		Page:          parseInt(q.Get("page"), 1),
		Limit:         parseInt(q.Get("limit"), 0),
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Debug("nearby search", slog.Int64("total", res.TotalItems))
	h.success(w, r, http.StatusOK, msgListedNearby, res)
}
