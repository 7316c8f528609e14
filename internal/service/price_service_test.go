package service

import (
	"context"
	"testing"

	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/aumai/kisanmitra/internal/repository"
	"github.com/aumai/kisanmitra/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPriceService(t *testing.T) PriceService {
	t.Helper()
	db := testutil.NewTestDB(t)
	return NewPriceService(repository.NewSQLitePriceRepo(db))
}

func TestPriceService_Add_AssignsID(t *testing.T) {
	svc := newPriceService(t)
	ctx := context.Background()

	obs := &domain.PriceObservation{
		Commodity:  "wheat",
		Market:     "Khanna",
		State:      "Punjab",
		MinPrice:   2100,
		MaxPrice:   2400,
		ModalPrice: 2250,
		Date:       "2026-02-21",
	}
	require.NoError(t, svc.Add(ctx, obs))
	assert.NotEmpty(t, obs.ID)

	got, err := svc.Query(ctx, "wheat", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, obs.ID, got[0].ID)
}

func TestPriceService_Add_KeepsCallerID(t *testing.T) {
	svc := newPriceService(t)
	ctx := context.Background()

	obs := testutil.NewObservation("rice")
	want := obs.ID
	require.NoError(t, svc.Add(ctx, obs))
	assert.Equal(t, want, obs.ID)
}

func TestPriceService_Add_RejectsInvalid(t *testing.T) {
	svc := newPriceService(t)
	ctx := context.Background()

	obs := testutil.NewObservation("rice", testutil.WithPrices(-100, 2000, 1800))
	err := svc.Add(ctx, obs)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestPriceService_Trend(t *testing.T) {
	svc := newPriceService(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, testutil.NewObservation("cotton",
		testutil.WithMarket("Akola", "Maharashtra"), testutil.WithDate("2026-02-22"))))
	require.NoError(t, svc.Add(ctx, testutil.NewObservation("cotton",
		testutil.WithMarket("Akola", "Maharashtra"), testutil.WithDate("2026-02-20"))))

	got, err := svc.Trend(ctx, "cotton", "Akola")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-02-20", got[0].Date)
}

func TestSeedSample_LoadsAllRecords(t *testing.T) {
	svc := newPriceService(t)
	ctx := context.Background()

	require.NoError(t, SeedSample(ctx, svc, "2026-02-26"))

	all, err := svc.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(SampleObservations("2026-02-26")))

	rice, err := svc.Query(ctx, "rice", "")
	require.NoError(t, err)
	assert.Len(t, rice, 3)
	for _, obs := range rice {
		assert.NotEmpty(t, obs.ID)
		assert.Equal(t, "2026-02-26", obs.Date)
	}
}
