package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hydromon/internal/domain"
	"hydromon/internal/mocks"
	"hydromon/internal/service"
)

func TestStationResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves known codes with one lookup", func(t *testing.T) {
		stations := mocks.NewMockStationRepository(t)
		stations.EXPECT().
			FindByCodes(mock.Anything, []string{"A", "B"}).
			Return([]domain.StationRef{{Code: "A", ID: 1}, {Code: "B", ID: 2}}, nil).
			Once()

		r := service.NewStationResolver(stations, domain.VariantWaterLevel)
		ids, err := r.Resolve(ctx, []string{"A", "B"}, nil)

		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"A": 1, "B": 2}, ids)
	})

	t.Run("creates missing codes with variant kind", func(t *testing.T) {
		stations := mocks.NewMockStationRepository(t)
		stations.EXPECT().
			FindByCodes(mock.Anything, []string{"Z", "A", "M"}).
			Return([]domain.StationRef{{Code: "A", ID: 1}}, nil)

		var created []string
		stations.EXPECT().
			Create(mock.Anything, "M", "Mill creek", domain.StationKindRainfall).
			Run(func(_ context.Context, code, _ string, _ domain.StationKind) { created = append(created, code) }).
			Return(20, nil).
			Once()
		stations.EXPECT().
			Create(mock.Anything, "Z", "Z", domain.StationKindRainfall).
			Run(func(_ context.Context, code, _ string, _ domain.StationKind) { created = append(created, code) }).
			Return(21, nil).
			Once()

		r := service.NewStationResolver(stations, domain.VariantRainfall)
		ids, err := r.Resolve(ctx, []string{"Z", "A", "M"}, map[string]string{"M": "Mill creek", "Z": ""})

		require.NoError(t, err)
		assert.Equal(t, map[string]int64{"A": 1, "M": 20, "Z": 21}, ids)
		assert.Equal(t, []string{"M", "Z"}, created)
	})

	t.Run("no codes means no lookup", func(t *testing.T) {
		stations := mocks.NewMockStationRepository(t)

		r := service.NewStationResolver(stations, domain.VariantFlow)
		ids, err := r.Resolve(ctx, nil, nil)

		require.NoError(t, err)
		assert.Empty(t, ids)
	})

	t.Run("create failure is returned", func(t *testing.T) {
		stations := mocks.NewMockStationRepository(t)
		stations.EXPECT().FindByCodes(mock.Anything, mock.Anything).Return(nil, nil)
		stations.EXPECT().
			Create(mock.Anything, "X", "X", domain.StationKindFlow).
			Return(0, errors.New("deadlock detected"))

		r := service.NewStationResolver(stations, domain.VariantFlow)
		_, err := r.Resolve(ctx, []string{"X"}, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "create station X")
	})
}
