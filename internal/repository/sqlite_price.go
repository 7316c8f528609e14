package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aumai/kisanmitra/internal/db"
	"github.com/aumai/kisanmitra/internal/domain"
)

// priceColumns is the canonical SELECT column list for price_observations.
const priceColumns = `id, commodity, market, state, min_price, max_price, modal_price, date`

// SQLitePriceRepo implements PriceRepo using a SQLite database.
//
// Date columns hold zero-padded YYYY-MM-DD strings, so SQLite's text
// ordering is chronological ordering. The AUTOINCREMENT seq column breaks
// ties between records sharing a date by insertion order.
type SQLitePriceRepo struct {
	db db.DBTX
}

// NewSQLitePriceRepo creates a new SQLitePriceRepo. Pass a transaction's
// DBTX to scope the repository to that transaction.
func NewSQLitePriceRepo(db db.DBTX) *SQLitePriceRepo {
	return &SQLitePriceRepo{db: db}
}

func (r *SQLitePriceRepo) Add(ctx context.Context, obs *domain.PriceObservation) error {
	query := `INSERT INTO price_observations (id, commodity, market, state, min_price, max_price, modal_price, date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		obs.ID,
		obs.Commodity,
		obs.Market,
		obs.State,
		obs.MinPrice,
		obs.MaxPrice,
		obs.ModalPrice,
		obs.Date,
	)
	if err != nil {
		return fmt.Errorf("inserting price observation: %w", err)
	}
	return nil
}

func (r *SQLitePriceRepo) Query(ctx context.Context, commodity, state string) ([]*domain.PriceObservation, error) {
	var rows *sql.Rows
	var err error
	if state == "" {
		query := `SELECT ` + priceColumns + ` FROM price_observations
			WHERE lower(commodity) = lower(?)
			ORDER BY date DESC, seq ASC`
		rows, err = r.db.QueryContext(ctx, query, commodity)
	} else {
		query := `SELECT ` + priceColumns + ` FROM price_observations
			WHERE lower(commodity) = lower(?) AND lower(state) = lower(?)
			ORDER BY date DESC, seq ASC`
		rows, err = r.db.QueryContext(ctx, query, commodity, state)
	}
	if err != nil {
		return nil, fmt.Errorf("querying prices: %w", err)
	}
	defer rows.Close()
	return r.scanObservations(rows)
}

func (r *SQLitePriceRepo) Trend(ctx context.Context, commodity, market string) ([]*domain.PriceObservation, error) {
	query := `SELECT ` + priceColumns + ` FROM price_observations
		WHERE lower(commodity) = lower(?) AND lower(market) = lower(?)
		ORDER BY date ASC, seq ASC`
	rows, err := r.db.QueryContext(ctx, query, commodity, market)
	if err != nil {
		return nil, fmt.Errorf("querying price trend: %w", err)
	}
	defer rows.Close()
	return r.scanObservations(rows)
}

func (r *SQLitePriceRepo) All(ctx context.Context) ([]*domain.PriceObservation, error) {
	query := `SELECT ` + priceColumns + ` FROM price_observations ORDER BY seq ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing price observations: %w", err)
	}
	defer rows.Close()
	return r.scanObservations(rows)
}

// scanObservations scans price observations from *sql.Rows.
func (r *SQLitePriceRepo) scanObservations(rows *sql.Rows) ([]*domain.PriceObservation, error) {
	observations := []*domain.PriceObservation{}
	for rows.Next() {
		var obs domain.PriceObservation
		err := rows.Scan(
			&obs.ID, &obs.Commodity, &obs.Market, &obs.State,
			&obs.MinPrice, &obs.MaxPrice, &obs.ModalPrice, &obs.Date,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning price observation: %w", err)
		}
		observations = append(observations, &obs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price observations: %w", err)
	}
	return observations, nil
}
