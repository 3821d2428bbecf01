package service_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteCollect/internal/domain"
	"wasteCollect/internal/service"
	mock_service "wasteCollect/internal/service/mocks"
	"wasteCollect/pkg/e"
)

func createWasteRequest(addressID uuid.UUID) domain.CreateWasteRequest {
	return domain.CreateWasteRequest{
		WasteType:   domain.WasteElectronics,
		Weight:      4,
		Quantity:    1,
		Unit:        domain.UnitUnits,
		Condition:   domain.ConditionDamaged,
		DiscardDate: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		AddressID:   addressID,
	}
}

func TestWasteService_Create_OK(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	wastes := mock_service.NewMockWasteStore(ctrl)
	addresses := mock_service.NewMockAddressStore(ctrl)
	cache := mock_service.NewMockAvailableCache(ctrl)
	svc := service.NewWasteService(wastes, addresses, cache, discardLogger(), defaultLimits)

	owner := uuid.New()
	addr := &domain.Address{ID: uuid.New(), UserID: owner}

	addresses.EXPECT().FindByID(gomock.Any(), addr.ID).Return(addr, nil).Times(1)
	wastes.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

	got, err := svc.Create(context.Background(), owner, createWasteRequest(addr.ID))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, owner, got.OwnerID)
	assert.Equal(t, domain.WasteAvailable, got.Status)
	assert.Equal(t, addr.ID, got.AddressID)
	assert.NotNil(t, got.Images)
}

func TestWasteService_Create_Invalid(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	svc := service.NewWasteService(mock_service.NewMockWasteStore(ctrl), mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

	req := createWasteRequest(uuid.New())
	req.Weight = 0
	req.WasteType = "RUBBLE"

	_, err := svc.Create(context.Background(), uuid.New(), req)
	be := requireCode(t, err, e.CodeValidation)
	assert.Contains(t, be.Message, service.MsgInvalidWaste)
	assert.Contains(t, be.Message, "Weight")
}

func TestWasteService_Create_AddressChecks(t *testing.T) {
	t.Parallel()

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		addresses := mock_service.NewMockAddressStore(ctrl)
		svc := service.NewWasteService(mock_service.NewMockWasteStore(ctrl), addresses, nil, discardLogger(), defaultLimits)

		id := uuid.New()
		addresses.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound("address")).Times(1)

		_, err := svc.Create(context.Background(), uuid.New(), createWasteRequest(id))
		be := requireCode(t, err, e.CodeNotFound)
		assert.Equal(t, service.MsgAddressNotFound, be.Message)
	})

	t.Run("foreign", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		addresses := mock_service.NewMockAddressStore(ctrl)
		svc := service.NewWasteService(mock_service.NewMockWasteStore(ctrl), addresses, nil, discardLogger(), defaultLimits)

		addr := &domain.Address{ID: uuid.New(), UserID: uuid.New()}
		addresses.EXPECT().FindByID(gomock.Any(), addr.ID).Return(addr, nil).Times(1)

		_, err := svc.Create(context.Background(), uuid.New(), createWasteRequest(addr.ID))
		be := requireCode(t, err, e.CodeBusinessRule)
		assert.Equal(t, service.MsgAddressNotOwned, be.Message)
	})
}

func TestWasteService_Get(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	wastes := mock_service.NewMockWasteStore(ctrl)
	svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

	w := wasteFixture(uuid.New(), domain.WasteAvailable)
	missing := uuid.New()
	wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1)
	wastes.EXPECT().FindByID(gomock.Any(), missing).Return(nil, notFound("waste")).Times(1)

	got, err := svc.Get(context.Background(), w.ID)
	require.NoError(t, err)
	assert.Equal(t, w.ID, got.ID)

	_, err = svc.Get(context.Background(), missing)
	requireCode(t, err, e.CodeNotFound)
}

func TestWasteService_ListMine(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	wastes := mock_service.NewMockWasteStore(ctrl)
	svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

	owner := uuid.New()
	items := []*domain.Waste{wasteFixture(owner, domain.WasteAvailable)}
	wastes.EXPECT().FindByOwner(gomock.Any(), owner, 1, 5).Return(items, int64(11), nil).Times(1)

	page, err := svc.ListMine(context.Background(), owner, 0, 5)
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 3, page.TotalPages)
}

func TestWasteService_ListAvailable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	wastes := mock_service.NewMockWasteStore(ctrl)
	svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

	filter := domain.WasteFilter{Location: "paulo", Condition: domain.ConditionUsed}
	items := []domain.WasteWithLocation{
		located(wasteFixture(uuid.New(), domain.WasteAvailable), spLat, spLng),
		located(wasteFixture(uuid.New(), domain.WasteAvailable), spLat, spLng),
		located(wasteFixture(uuid.New(), domain.WasteAvailable), spLat, spLng),
	}
	wastes.EXPECT().FindAvailablePage(gomock.Any(), filter, 2, 2).Return(items[2:], int64(3), nil).Times(1)

	page, err := svc.ListAvailable(context.Background(), domain.AvailableQuery{Filter: filter, Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, items[2].ID, page.Items[0].ID)
	assert.EqualValues(t, 3, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)

	_, err = svc.ListAvailable(context.Background(), domain.AvailableQuery{Filter: domain.WasteFilter{WasteType: "RUBBLE"}})
	requireCode(t, err, e.CodeValidation)
}

func TestWasteService_ListAvailable_HugePage(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	wastes := mock_service.NewMockWasteStore(ctrl)
	svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

	wastes.EXPECT().
		FindAvailablePage(gomock.Any(), domain.WasteFilter{}, gomock.Any(), 100).
		DoAndReturn(func(_ context.Context, _ domain.WasteFilter, page, limit int) ([]domain.WasteWithLocation, int64, error) {
			assert.GreaterOrEqual(t, domain.Offset(page, limit), 0)
			assert.LessOrEqual(t, page-1, math.MaxInt/limit)
			return nil, 4, nil
		}).
		Times(1)

	page, err := svc.ListAvailable(context.Background(), domain.AvailableQuery{Page: math.MaxInt, Limit: 1000})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.EqualValues(t, 4, page.TotalItems)
}

func TestWasteService_Update(t *testing.T) {
	t.Parallel()

	weight := 9.5
	desc := "caixa lacrada"

	t.Run("owner edits available waste", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		cache := mock_service.NewMockAvailableCache(ctrl)
		svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), cache, discardLogger(), defaultLimits)

		owner := uuid.New()
		w := wasteFixture(owner, domain.WasteAvailable)
		wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1)
		wastes.EXPECT().
			Update(gomock.Any(), gomock.Any(), domain.WasteAvailable).
			DoAndReturn(func(_ context.Context, next *domain.Waste, _ domain.WasteStatus) (*domain.Waste, error) {
				return next, nil
			}).
			Times(1)
		cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1)

		got, err := svc.Update(context.Background(), owner, w.ID, domain.UpdateWasteRequest{Weight: &weight, AdditionalDescription: &desc})
		require.NoError(t, err)
		assert.Equal(t, 9.5, got.Weight)
		assert.Equal(t, w.Quantity, got.Quantity)
		require.NotNil(t, got.AdditionalDescription)
		assert.Equal(t, desc, *got.AdditionalDescription)
		assert.Equal(t, domain.WasteAvailable, got.Status)
	})

	t.Run("another user", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

		w := wasteFixture(uuid.New(), domain.WasteAvailable)
		wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1)

		_, err := svc.Update(context.Background(), uuid.New(), w.ID, domain.UpdateWasteRequest{Weight: &weight})
		be := requireCode(t, err, e.CodeBusinessRule)
		assert.Equal(t, service.MsgNotYourWaste, be.Message)
	})

	t.Run("already signed", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

		owner := uuid.New()
		w := wasteFixture(owner, domain.WasteSigned)
		wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1)

		_, err := svc.Update(context.Background(), owner, w.ID, domain.UpdateWasteRequest{Weight: &weight})
		be := requireCode(t, err, e.CodeBusinessRule)
		assert.Equal(t, service.MsgWasteNotEditable, be.Message)
	})

	t.Run("signed between read and write", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

		owner := uuid.New()
		w := wasteFixture(owner, domain.WasteAvailable)
		wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1)
		wastes.EXPECT().Update(gomock.Any(), gomock.Any(), domain.WasteAvailable).Return(nil, e.Wrap("memory.Waste.Update", e.ErrConflict)).Times(1)

		_, err := svc.Update(context.Background(), owner, w.ID, domain.UpdateWasteRequest{Weight: &weight})
		requireCode(t, err, e.CodeConflict)
	})

	t.Run("foreign address", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		addresses := mock_service.NewMockAddressStore(ctrl)
		svc := service.NewWasteService(wastes, addresses, nil, discardLogger(), defaultLimits)

		owner := uuid.New()
		w := wasteFixture(owner, domain.WasteAvailable)
		addr := &domain.Address{ID: uuid.New(), UserID: uuid.New()}
		wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1)
		addresses.EXPECT().FindByID(gomock.Any(), addr.ID).Return(addr, nil).Times(1)

		_, err := svc.Update(context.Background(), owner, w.ID, domain.UpdateWasteRequest{AddressID: &addr.ID})
		be := requireCode(t, err, e.CodeBusinessRule)
		assert.Equal(t, service.MsgAddressNotOwned, be.Message)
	})

	t.Run("empty or invalid body", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		svc := service.NewWasteService(mock_service.NewMockWasteStore(ctrl), mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

		_, err := svc.Update(context.Background(), uuid.New(), uuid.New(), domain.UpdateWasteRequest{})
		be := requireCode(t, err, e.CodeValidation)
		assert.Equal(t, service.MsgNothingToUpdate, be.Message)

		zero := 0.0
		_, err = svc.Update(context.Background(), uuid.New(), uuid.New(), domain.UpdateWasteRequest{Weight: &zero})
		be = requireCode(t, err, e.CodeValidation)
		assert.Contains(t, be.Message, "Weight")
	})
}

func TestWasteService_Cancel(t *testing.T) {
	t.Parallel()

	t.Run("owner cancels", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		cache := mock_service.NewMockAvailableCache(ctrl)
		svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), cache, discardLogger(), defaultLimits)

		owner := uuid.New()
		w := wasteFixture(owner, domain.WasteAvailable)
		cancelled := w.WithStatus(domain.WasteCancelled, fixedTime())
		gomock.InOrder(
			wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1),
			wastes.EXPECT().UpdateStatus(gomock.Any(), w.ID, domain.WasteCancelled, domain.WasteAvailable).Return(&cancelled, nil).Times(1),
			cache.EXPECT().Invalidate(gomock.Any()).Return(nil).Times(1),
		)

		got, err := svc.Cancel(context.Background(), owner, w.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.WasteCancelled, got.Status)
	})

	t.Run("missing", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

		id := uuid.New()
		wastes.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound("waste")).Times(1)

		_, err := svc.Cancel(context.Background(), uuid.New(), id)
		be := requireCode(t, err, e.CodeNotFound)
		assert.Equal(t, service.MsgWasteNotFound, be.Message)
	})

	t.Run("another user", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

		w := wasteFixture(uuid.New(), domain.WasteAvailable)
		wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1)

		_, err := svc.Cancel(context.Background(), uuid.New(), w.ID)
		be := requireCode(t, err, e.CodeBusinessRule)
		assert.Equal(t, service.MsgNotYourWaste, be.Message)
	})

	t.Run("signed meanwhile", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		wastes := mock_service.NewMockWasteStore(ctrl)
		svc := service.NewWasteService(wastes, mock_service.NewMockAddressStore(ctrl), nil, discardLogger(), defaultLimits)

		owner := uuid.New()
		w := wasteFixture(owner, domain.WasteAvailable)
		wastes.EXPECT().FindByID(gomock.Any(), w.ID).Return(w, nil).Times(1)
		wastes.EXPECT().
			UpdateStatus(gomock.Any(), w.ID, domain.WasteCancelled, domain.WasteAvailable).
			Return(nil, e.Wrap("postgres.Waste.UpdateStatus", e.ErrConflict)).
			Times(1)

		_, err := svc.Cancel(context.Background(), owner, w.ID)
		be := requireCode(t, err, e.CodeConflict)
		assert.Equal(t, service.MsgWasteUnavailable, be.Message)
	})
}
