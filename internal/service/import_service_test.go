package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/aumai/kisanmitra/internal/repository"
	"github.com/aumai/kisanmitra/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeImportFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestImportService_ImportPrices(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(db))
	prices := NewPriceService(repository.NewSQLitePriceRepo(db))
	ctx := context.Background()

	path := writeImportFile(t, `[
		{"commodity": "wheat", "market": "Khanna", "state": "Punjab", "min_price": 2100, "max_price": 2400, "modal_price": 2250, "date": "2026-02-21"},
		{"commodity": "rice", "market": "Patna", "state": "Bihar", "min_price": 1700, "max_price": 2050, "modal_price": 1900, "date": "2026-02-21"}
	]`)

	result, err := svc.ImportPrices(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)

	got, err := prices.Query(ctx, "wheat", "Punjab")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.NotEmpty(t, got[0].ID)
	assert.Equal(t, 2250.0, got[0].ModalPrice)
}

func TestImportService_ImportPrices_RollsBackOnInvalidRecord(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(db))
	prices := NewPriceService(repository.NewSQLitePriceRepo(db))
	ctx := context.Background()

	// Second record has a negative price; nothing may be stored.
	path := writeImportFile(t, `[
		{"commodity": "wheat", "market": "Khanna", "state": "Punjab", "min_price": 2100, "max_price": 2400, "modal_price": 2250, "date": "2026-02-21"},
		{"commodity": "rice", "market": "Patna", "state": "Bihar", "min_price": -5, "max_price": 2050, "modal_price": 1900, "date": "2026-02-21"}
	]`)

	_, err := svc.ImportPrices(ctx, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidValue)
	assert.Contains(t, err.Error(), "record 1")

	all, err := prices.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestImportService_ImportPrices_BadFile(t *testing.T) {
	db := testutil.NewTestDB(t)
	svc := NewImportService(testutil.NewTestUoW(db))
	ctx := context.Background()

	_, err := svc.ImportPrices(ctx, filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = svc.ImportPrices(ctx, writeImportFile(t, "not json"))
	assert.Error(t, err)

	_, err = svc.ImportPrices(ctx, writeImportFile(t, "[]"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no records")
}
