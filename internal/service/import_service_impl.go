package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aumai/kisanmitra/internal/db"
	"github.com/aumai/kisanmitra/internal/domain"
	"github.com/aumai/kisanmitra/internal/repository"
	"github.com/google/uuid"
)

// importRecord is the JSON shape of one observation in an import file.
type importRecord struct {
	Commodity  string  `json:"commodity"`
	Market     string  `json:"market"`
	State      string  `json:"state"`
	MinPrice   float64 `json:"min_price"`
	MaxPrice   float64 `json:"max_price"`
	ModalPrice float64 `json:"modal_price"`
	Date       string  `json:"date"`
}

type importService struct {
	uow db.UnitOfWork
}

func NewImportService(uow db.UnitOfWork) ImportService {
	return &importService{uow: uow}
}

func (s *importService) ImportPrices(ctx context.Context, filePath string) (*ImportResult, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("reading import file: %w", err)
	}

	var records []importRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("import file contains no records")
	}

	// Persist all observations atomically.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPrices := repository.NewSQLitePriceRepo(tx)
		for i, rec := range records {
			obs := &domain.PriceObservation{
				ID:         uuid.New().String(),
				Commodity:  rec.Commodity,
				Market:     rec.Market,
				State:      rec.State,
				MinPrice:   rec.MinPrice,
				MaxPrice:   rec.MaxPrice,
				ModalPrice: rec.ModalPrice,
				Date:       rec.Date,
			}
			if err := obs.Validate(); err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			if err := txPrices.Add(ctx, obs); err != nil {
				return fmt.Errorf("storing record %d: %w", i, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ImportResult{Count: len(records)}, nil
}
