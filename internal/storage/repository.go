package storage

import (
	"context"
	"database/sql"
	"fmt"
)

// LikesRepository defines the contract for the like ledger.
//
// The ledger maps each ticker symbol to the set of anonymized visitor
// identifiers that liked it. The repository exclusively owns mutation of
// that set; callers only read counts or request an append. All symbols
// are expected to be uppercased by the caller.
type LikesRepository interface {
	// EnsureStock lazily creates the stock record on first reference.
	EnsureStock(ctx context.Context, symbol string) error

	// RecordLike adds visitor to the symbol's liker set if absent and
	// returns the post-operation like count. Idempotent: repeating the
	// same (symbol, visitor) pair never grows the count further. An
	// empty visitor identifier is never recorded.
	RecordLike(ctx context.Context, symbol string, visitor string) (int, error)

	// LikeCount returns the current like count, zero when the symbol
	// has no record.
	LikeCount(ctx context.Context, symbol string) (int, error)
}

type likesRepository struct {
	db *sql.DB
}

func NewLikesRepository(db *sql.DB) LikesRepository {
	return &likesRepository{db: db}
}

// EnsureStock upserts the stock row. ON CONFLICT DO NOTHING keeps the
// operation race-free across concurrent requests for the same symbol.
func (r *likesRepository) EnsureStock(ctx context.Context, symbol string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO stocks (symbol)
		VALUES ($1)
		ON CONFLICT (symbol) DO NOTHING
	`, symbol)
	if err != nil {
		return fmt.Errorf("ensure stock %s: %w", symbol, err)
	}
	return nil
}

// RecordLike performs the set-membership add at the storage layer: the
// (symbol, visitor) primary key makes the insert atomic per entry, so
// concurrent likes from different visitors never lose updates and
// concurrent likes from the same visitor converge to a single row.
func (r *likesRepository) RecordLike(ctx context.Context, symbol string, visitor string) (int, error) {
	if visitor != "" {
		if err := r.EnsureStock(ctx, symbol); err != nil {
			return 0, err
		}
		_, err := r.db.ExecContext(ctx, `
			INSERT INTO stock_likes (symbol, visitor)
			VALUES ($1, $2)
			ON CONFLICT (symbol, visitor) DO NOTHING
		`, symbol, visitor)
		if err != nil {
			return 0, fmt.Errorf("record like for %s: %w", symbol, err)
		}
	}
	return r.LikeCount(ctx, symbol)
}

func (r *likesRepository) LikeCount(ctx context.Context, symbol string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM stock_likes WHERE symbol = $1`, symbol,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count likes for %s: %w", symbol, err)
	}
	return count, nil
}
