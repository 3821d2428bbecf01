package collection

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
type Workflow interface {
	Sign(ctx context.Context, wasteID, collectorID uuid.UUID) (*domain.Collection, error)
	UpdateStatus(ctx context.Context, collectionID, actorID uuid.UUID, next domain.CollectionStatus) (*domain.Collection, error)
}

type Lister interface {
	ListForCollector(ctx context.Context, collectorID uuid.UUID, status domain.CollectionStatus, page, limit int) (domain.Page[*domain.Collection], error)
}

type Handler struct {
	logger   *slog.Logger
	workflow Workflow
	lister   Lister
}

func NewHandler(logger *slog.Logger, workflow Workflow, lister Lister) *Handler {
	return &Handler{
		logger:   logger,
		workflow: workflow,
		lister:   lister,
	}
}

// Sign handles POST /collections.
func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	collectorID, ok := h.userID(w, r)
	if !ok {
		return
	}

	req, err := middleware.DecodeJSON[domain.SignCollectionRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	wasteID, err := uuid.Parse(req.WasteID)
	if err != nil {
		h.handleError(w, r, invalidID(err))
		return
	}

	c, err := h.workflow.Sign(r.Context(), wasteID, collectorID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("collection signed",
		slog.String("collection_id", c.ID.String()),
		slog.String("waste_id", wasteID.String()))
	h.success(w, r, http.StatusCreated, msgSigned, c)
}

// ListMine handles GET /collections/my?status&page&limit.
func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	collectorID, ok := h.userID(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	status := domain.CollectionStatus(q.Get("status"))
	page := parseInt(q.Get("page"), 1)
	limit := parseInt(q.Get("limit"), 0)

	res, err := h.lister.ListForCollector(r.Context(), collectorID, status, page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.success(w, r, http.StatusOK, msgListed, res)
}

// UpdateStatus handles PATCH /collections/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	actorID, ok := h.userID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		h.handleError(w, r, invalidID(err))
		return
	}

	req, err := middleware.DecodeJSON[domain.UpdateCollectionStatusRequest](w, r)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	c, err := h.workflow.UpdateStatus(r.Context(), id, actorID, req.Status)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.log(r).Info("collection status updated",
		slog.String("collection_id", c.ID.String()),
		slog.String("status", string(c.Status)))
	h.success(w, r, http.StatusOK, msgStatusUpdated, c)
}
