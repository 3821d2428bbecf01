package service_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wasteCollect/internal/domain"
	"wasteCollect/pkg/e"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func fixedTime() time.Time {
	return time.Date(2025, 12, 23, 12, 0, 0, 0, time.UTC)
}

func wasteFixture(owner uuid.UUID, status domain.WasteStatus) *domain.Waste {
	return &domain.Waste{
		ID:          uuid.New(),
		OwnerID:     owner,
		WasteType:   domain.WastePlastic,
		Weight:      2.5,
		Quantity:    3,
		Unit:        domain.UnitKG,
		Condition:   domain.ConditionUsed,
		DiscardDate: fixedTime(),
		Images:      []string{},
		Status:      status,
		AddressID:   uuid.New(),
		CreatedAt:   fixedTime(),
		UpdatedAt:   fixedTime(),
	}
}

func located(w *domain.Waste, lat, lng string) domain.WasteWithLocation {
	return domain.WasteWithLocation{Waste: *w, Latitude: lat, Longitude: lng, City: "São Paulo", State: "SP"}
}

func requireCode(t *testing.T, err error, code e.Code) *e.Error {
	t.Helper()
	var be *e.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, code, be.Code)
	return be
}
