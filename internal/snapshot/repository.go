package snapshot

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wonny/euroquote/internal/contracts"
)

const schema = `
CREATE TABLE IF NOT EXISTS quote_snapshots (
	id              UUID PRIMARY KEY,
	isin            TEXT NOT NULL,
	market          TEXT NOT NULL,
	kind            TEXT NOT NULL,
	instrument_name TEXT,
	price           DOUBLE PRECISION,
	week_low        DOUBLE PRECISION,
	week_high       DOUBLE PRECISION,
	fetched_at      TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quote_snapshots_lookup
	ON quote_snapshots (isin, market, kind, fetched_at DESC);
`

// Repository implements Store on PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

var _ Store = (*Repository)(nil)

// NewRepository creates a new snapshot repository
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Migrate creates the snapshot table when missing
func (r *Repository) Migrate(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to migrate quote_snapshots: %w", err)
	}
	return nil
}

// Save inserts a snapshot
func (r *Repository) Save(ctx context.Context, s Snapshot) error {
	query := `
		INSERT INTO quote_snapshots (id, isin, market, kind, instrument_name, price, week_low, week_high, fetched_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var (
		name             *string
		price, low, high *float64
	)
	switch s.Kind {
	case KindDetailed:
		if s.Detailed == nil {
			return fmt.Errorf("detailed snapshot %s has no quote", s.ID)
		}
		name, price = &s.Detailed.InstrumentName, &s.Detailed.InstrumentPrice
	case KindFull:
		if s.Full == nil {
			return fmt.Errorf("full snapshot %s has no quote", s.ID)
		}
		low, high = &s.Full.WeekLow, &s.Full.WeekHigh
	default:
		return fmt.Errorf("unknown snapshot kind %q", s.Kind)
	}

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.Ref.ISIN, s.Ref.Market, string(s.Kind), name, price, low, high, s.FetchedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", s.Ref, err)
	}
	return nil
}

// Latest returns the most recent snapshot of the given kind
func (r *Repository) Latest(ctx context.Context, ref contracts.InstrumentRef, kind Kind) (Snapshot, error) {
	query := `
		SELECT id, instrument_name, price, week_low, week_high, fetched_at
		FROM quote_snapshots
		WHERE isin = $1 AND market = $2 AND kind = $3
		ORDER BY fetched_at DESC
		LIMIT 1
	`

	s := Snapshot{Ref: ref, Kind: kind}
	var (
		name             *string
		price, low, high *float64
	)

	err := r.pool.QueryRow(ctx, query, ref.ISIN, ref.Market, string(kind)).Scan(
		&s.ID, &name, &price, &low, &high, &s.FetchedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Snapshot{}, ErrNotFound
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load snapshot %s: %w", ref, err)
	}

	switch kind {
	case KindDetailed:
		if name == nil || price == nil {
			return Snapshot{}, fmt.Errorf("snapshot %s is missing detailed columns", s.ID)
		}
		s.Detailed = &contracts.DetailedQuote{InstrumentName: *name, InstrumentPrice: *price}
	case KindFull:
		if low == nil || high == nil {
			return Snapshot{}, fmt.Errorf("snapshot %s is missing range columns", s.ID)
		}
		s.Full = &contracts.FullDetailedQuote{WeekLow: *low, WeekHigh: *high}
	}

	return s, nil
}
