package waste_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteCollect/internal/api/handlers/http/waste"
	mock_waste "wasteCollect/internal/api/handlers/http/waste/mocks"
	"wasteCollect/internal/domain"
	"wasteCollect/internal/middleware"
	"wasteCollect/pkg/e"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func addChiURLParam(r *http.Request, key, val string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, val)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func asUser(r *http.Request, id uuid.UUID) *http.Request {
	return r.WithContext(middleware.WithUserID(r.Context(), id))
}

type envelope[T any] struct {
	Success bool   `json:"success"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func decodeJSON[T any](t *testing.T, rr *httptest.ResponseRecorder) envelope[T] {
	t.Helper()
	var out envelope[T]
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("invalid json response: %v, body=%s", err, rr.Body.String())
	}
	return out
}

type fixture struct {
	wastes *mock_waste.MockWastes
	nearby *mock_waste.MockNearbyFinder
	h      *waste.Handler
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		wastes: mock_waste.NewMockWastes(ctrl),
		nearby: mock_waste.NewMockNearbyFinder(ctrl),
	}
	f.h = waste.NewHandler(newTestLogger(), f.wastes, f.nearby)
	return f
}

func TestCreate_Created(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	ownerID, addressID := uuid.New(), uuid.New()
	body := `{
		"wasteType":"PLASTIC","weight":2.5,"quantity":3,"unit":"KG","condition":"USED",
		"hasPackaging":true,"discardDate":"2026-05-01T10:00:00Z","images":["a.jpg"],
		"addressId":"` + addressID.String() + `"}`

	f.wastes.EXPECT().
		Create(gomock.Any(), ownerID, gomock.Any()).
		DoAndReturn(func(_ context.Context, owner uuid.UUID, req domain.CreateWasteRequest) (*domain.Waste, error) {
			assert.Equal(t, domain.WastePlastic, req.WasteType)
			assert.Equal(t, addressID, req.AddressID)
			assert.True(t, req.DiscardDate.Equal(time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)))
			return domain.NewWaste(owner, req, time.Now()), nil
		}).
		Times(1)

	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/wastes", bytes.NewBufferString(body)), ownerID)
	rr := httptest.NewRecorder()

	f.h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	got := decodeJSON[domain.Waste](t, rr)
	assert.Equal(t, "Resíduo criado com sucesso", got.Message)
	assert.Equal(t, domain.WasteAvailable, got.Data.Status)
	assert.Equal(t, ownerID, got.Data.OwnerID)
}

func TestCreate_Invalid_400(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	body := `{"wasteType":"GOLD","weight":0,"quantity":1,"unit":"KG","condition":"NEW","discardDate":"2026-05-01T10:00:00Z","addressId":"` + uuid.NewString() + `"}`
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/v1/wastes", bytes.NewBufferString(body)), uuid.New())
	rr := httptest.NewRecorder()

	f.h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	got := decodeJSON[any](t, rr)
	assert.Equal(t, "003", got.Code)
	assert.Contains(t, got.Message, "WasteType")
	assert.Contains(t, got.Message, "Weight")
}

func TestGet(t *testing.T) {
	t.Parallel()

	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.wastes.EXPECT().Get(gomock.Any(), id).Return(&domain.Waste{ID: id, Status: domain.WasteSigned}, nil).Times(1)

		rr := httptest.NewRecorder()
		f.h.Get(rr, addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String()))

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, id, decodeJSON[domain.Waste](t, rr).Data.ID)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)
		f.wastes.EXPECT().Get(gomock.Any(), id).Return(nil, e.NotFound("Resíduo não encontrado")).Times(1)

		rr := httptest.NewRecorder()
		f.h.Get(rr, addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", id.String()))

		require.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Resíduo não encontrado", decodeJSON[any](t, rr).Message)
	})

	t.Run("bad id", func(t *testing.T) {
		t.Parallel()
		f := newFixture(t)

		rr := httptest.NewRecorder()
		f.h.Get(rr, addChiURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "42"))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListMine(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	ownerID := uuid.New()
	f.wastes.EXPECT().
		ListMine(gomock.Any(), ownerID, 3, 20).
		Return(domain.NewPage([]*domain.Waste{{ID: uuid.New()}}, 3, 20, 41), nil).
		Times(1)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/wastes/my?page=3&limit=20", nil), ownerID)
	rr := httptest.NewRecorder()

	f.h.ListMine(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeJSON[domain.Page[domain.Waste]](t, rr)
	assert.Equal(t, 3, got.Data.TotalPages)
	assert.Len(t, got.Data.Items, 1)
}

func TestListAvailable_BuildsFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	userID := uuid.New()
	want := domain.AvailableQuery{
		Filter: domain.WasteFilter{
			WasteType:     domain.WasteGlass,
			Condition:     domain.ConditionNew,
			Location:      "campinas",
			ExcludeUserID: userID,
		},
		Page:  1,
		Limit: 0,
	}
	f.wastes.EXPECT().
		ListAvailable(gomock.Any(), want).
		Return(domain.NewPage[domain.WasteWithLocation](nil, 1, 10, 0), nil).
		Times(1)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/wastes/available?wasteType=GLASS&condition=NEW&location=campinas", nil), userID)
	rr := httptest.NewRecorder()

	f.h.ListAvailable(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "Resíduos disponíveis encontrados com sucesso", decodeJSON[any](t, rr).Message)
}

func TestNearby_BuildsQuery(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	userID := uuid.New()
	want := domain.ProximityQuery{
		Latitude:      "-23.5505",
		Longitude:     "-46.6333",
		RadiusKM:      5,
		WasteType:     domain.WasteMetal,
		ExcludeUserID: userID,
		Page:          2,
		Limit:         5,
	}
	item := domain.NearbyWaste{
		WasteWithLocation: domain.WasteWithLocation{Waste: domain.Waste{ID: uuid.New()}, Latitude: "-23.5614", Longitude: "-46.6559"},
		DistanceKM:        2.6,
	}
	f.nearby.EXPECT().
		FindAvailable(gomock.Any(), want).
		Return(domain.NewPage([]domain.NearbyWaste{item}, 2, 5, 6), nil).
		Times(1)

	url := "/api/v1/wastes/nearby?latitude=-23.5505&longitude=-46.6333&radiusKm=5&wasteType=METAL&page=2&limit=5"
	req := asUser(httptest.NewRequest(http.MethodGet, url, nil), userID)
	rr := httptest.NewRecorder()

	f.h.Nearby(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decodeJSON[domain.Page[domain.NearbyWaste]](t, rr)
	require.Len(t, got.Data.Items, 1)
	assert.InDelta(t, 2.6, got.Data.Items[0].DistanceKM, 1e-9)
	assert.Equal(t, int64(6), got.Data.TotalItems)
}

func TestNearby_BadRadius_400(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/wastes/nearby?latitude=1&longitude=1&radiusKm=far", nil), uuid.New())
	rr := httptest.NewRecorder()

	f.h.Nearby(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "radiusKm must be a positive number", decodeJSON[any](t, rr).Message)
}

func TestNearby_InvalidCoordinates_400(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.nearby.EXPECT().
		FindAvailable(gomock.Any(), gomock.Any()).
		Return(domain.Page[domain.NearbyWaste]{}, e.Validation("Invalid latitude: must be between -90 and 90", e.ErrInvalidCoordinates)).
		Times(1)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/wastes/nearby?latitude=91&longitude=0", nil), uuid.New())
	rr := httptest.NewRecorder()

	f.h.Nearby(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Invalid latitude: must be between -90 and 90", decodeJSON[any](t, rr).Message)
}

func TestNearby_ServiceFailure_Masked(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	f.nearby.EXPECT().
		FindAvailable(gomock.Any(), gomock.Any()).
		Return(domain.Page[domain.NearbyWaste]{}, errors.New("redis: connection refused")).
		Times(1)

	req := asUser(httptest.NewRequest(http.MethodGet, "/api/v1/wastes/nearby?latitude=0&longitude=0", nil), uuid.New())
	rr := httptest.NewRecorder()

	f.h.Nearby(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	got := decodeJSON[any](t, rr)
	assert.Equal(t, "999", got.Code)
	assert.Equal(t, e.InternalMessage, got.Message)
}

func TestListMine_NoUser_401(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	rr := httptest.NewRecorder()
	f.h.ListMine(rr, httptest.NewRequest(http.MethodGet, "/api/v1/wastes/my", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestUpdate_OK(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	ownerID, id := uuid.New(), uuid.New()
	f.wastes.EXPECT().
		Update(gomock.Any(), ownerID, id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, req domain.UpdateWasteRequest) (*domain.Waste, error) {
			require.NotNil(t, req.Weight)
			assert.Equal(t, 7.0, *req.Weight)
			assert.Nil(t, req.Quantity)
			return &domain.Waste{ID: id, OwnerID: ownerID, Weight: *req.Weight, Status: domain.WasteAvailable}, nil
		}).
		Times(1)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/wastes/"+id.String(), bytes.NewBufferString(`{"weight":7}`))
	req = asUser(addChiURLParam(req, "id", id.String()), ownerID)
	rr := httptest.NewRecorder()

	f.h.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decodeJSON[domain.Waste](t, rr)
	assert.Equal(t, "Resíduo atualizado com sucesso", got.Message)
	assert.Equal(t, 7.0, got.Data.Weight)
}

func TestUpdate_Rejected(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
		code   string
	}{
		{"bad id", "nope", `{"weight":1}`, nil, http.StatusBadRequest, "003"},
		{"unknown field", uuid.NewString(), `{"owner":"me"}`, nil, http.StatusBadRequest, "003"},
		{"not the owner", uuid.NewString(), `{"weight":1}`, e.BusinessRule("Você não pode alterar um resíduo de outro usuário"), http.StatusUnprocessableEntity, "006"},
		{"signed meanwhile", uuid.NewString(), `{"weight":1}`, e.Conflict("Este resíduo não está mais disponível para coleta", nil), http.StatusConflict, "005"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			if tt.err != nil {
				f.wastes.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err).Times(1)
			}

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/wastes/"+tt.id, bytes.NewBufferString(tt.body))
			req = asUser(addChiURLParam(req, "id", tt.id), uuid.New())
			rr := httptest.NewRecorder()

			f.h.Update(rr, req)

			require.Equal(t, tt.status, rr.Code, rr.Body.String())
			got := decodeJSON[any](t, rr)
			assert.False(t, got.Success)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestCancel_OK(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	ownerID, id := uuid.New(), uuid.New()
	f.wastes.EXPECT().
		Cancel(gomock.Any(), ownerID, id).
		Return(&domain.Waste{ID: id, OwnerID: ownerID, Status: domain.WasteCancelled}, nil).
		Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/wastes/"+id.String(), nil)
	req = asUser(addChiURLParam(req, "id", id.String()), ownerID)
	rr := httptest.NewRecorder()

	f.h.Cancel(rr, req)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	got := decodeJSON[domain.Waste](t, rr)
	assert.Equal(t, "Resíduo excluído com sucesso", got.Message)
	assert.Equal(t, domain.WasteCancelled, got.Data.Status)
}

func TestCancel_NotFound_404(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	id := uuid.New()
	f.wastes.EXPECT().Cancel(gomock.Any(), gomock.Any(), id).Return(nil, e.NotFound("Resíduo não encontrado")).Times(1)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/wastes/"+id.String(), nil)
	req = asUser(addChiURLParam(req, "id", id.String()), uuid.New())
	rr := httptest.NewRecorder()

	f.h.Cancel(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "004", decodeJSON[any](t, rr).Code)
}
