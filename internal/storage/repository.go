package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/guttosm/loanquote/internal/domain/models"
	pq "github.com/lib/pq"
)

// QuotesRepository defines contract for DB operations on recorded quotes.
type QuotesRepository interface {
	InsertQuote(ctx context.Context, q models.Quote) error
	InsertQuotesBatch(ctx context.Context, quotes []models.Quote) error
	ListRecent(ctx context.Context, limit int) ([]models.Quote, error)
	HasImport(ctx context.Context, filename string) (bool, error)
	UpsertImportLog(ctx context.Context, filename string, rowCount int) error
	DeleteQuotesBySource(ctx context.Context, source string) error
	// WithinTx runs fn against a repository bound to one transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(repo QuotesRepository) error) error
}

// execer is the subset of *sql.DB and *sql.Tx the repository needs.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type quotesRepository struct {
	db *sql.DB
	tx *sql.Tx // set on repositories handed out by WithinTx
}

func NewQuotesRepository(db *sql.DB) QuotesRepository {
	return &quotesRepository{db: db}
}

func (r *quotesRepository) conn() execer {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// WithinTx begins a transaction, or joins the current one when r is
// already transactional.
func (r *quotesRepository) WithinTx(ctx context.Context, fn func(repo QuotesRepository) error) error {
	if r.tx != nil {
		return fn(r)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&quotesRepository{db: r.db, tx: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

const insertQuoteSQL = `INSERT INTO loan_quotes (id, product, principal, annual_rate_percent, term_months, monthly_payment, total_interest, total_payment, source, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// InsertQuote records a single quote.
func (r *quotesRepository) InsertQuote(ctx context.Context, q models.Quote) error {
	_, err := r.conn().ExecContext(ctx, insertQuoteSQL,
		q.ID,
		q.Product,
		q.Principal,
		q.AnnualRatePercent,
		q.TermMonths,
		q.MonthlyPayment,
		q.TotalInterest,
		q.TotalPayment,
		sourceOrDefault(q.Source),
		q.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

// InsertQuotesBatch copies many quotes into loan_quotes in a single
// transaction, or inside the current one when r came from WithinTx.
func (r *quotesRepository) InsertQuotesBatch(ctx context.Context, quotes []models.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	if r.tx != nil {
		return copyQuotes(ctx, r.tx, quotes)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := copyQuotes(ctx, tx, quotes); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// copyQuotes streams quotes through COPY on tx. The caller owns the
// transaction and rolls it back on error.
func copyQuotes(ctx context.Context, tx *sql.Tx, quotes []models.Quote) error {
	// Small optimization for bulk load
	if _, err := tx.ExecContext(ctx, `SET LOCAL synchronous_commit = OFF`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"loan_quotes",
		"id",
		"product",
		"principal",
		"annual_rate_percent",
		"term_months",
		"monthly_payment",
		"total_interest",
		"total_payment",
		"source",
		"created_at",
	))
	if err != nil {
		return err
	}

	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx,
			q.ID.String(),
			q.Product,
			q.Principal,
			q.AnnualRatePercent,
			q.TermMonths,
			q.MonthlyPayment,
			q.TotalInterest,
			q.TotalPayment,
			sourceOrDefault(q.Source),
			q.CreatedAt,
		); err != nil {
			_ = stmt.Close()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return err
	}
	return stmt.Close()
}

// ListRecent returns the most recently recorded quotes, newest first.
func (r *quotesRepository) ListRecent(ctx context.Context, limit int) ([]models.Quote, error) {
	rows, err := r.conn().QueryContext(ctx, `
		SELECT id, product, principal, annual_rate_percent, term_months,
		       monthly_payment, total_interest, total_payment, source, created_at
		FROM loan_quotes
		ORDER BY created_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent quotes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make([]models.Quote, 0, limit)
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(
			&q.ID,
			&q.Product,
			&q.Principal,
			&q.AnnualRatePercent,
			&q.TermMonths,
			&q.MonthlyPayment,
			&q.TotalInterest,
			&q.TotalPayment,
			&q.Source,
			&q.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quote: %w", err)
		}
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate quotes: %w", err)
	}
	return out, nil
}

// HasImport checks whether a batch file was already imported.
func (r *quotesRepository) HasImport(ctx context.Context, filename string) (bool, error) {
	var exists bool
	err := r.conn().QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM quote_import_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertImportLog records (or refreshes) the import entry of a batch file.
func (r *quotesRepository) UpsertImportLog(ctx context.Context, filename string, rowCount int) error {
	_, err := r.conn().ExecContext(ctx, `
		INSERT INTO quote_import_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`, filename, rowCount)
	return err
}

// DeleteQuotesBySource removes every quote recorded from source.
func (r *quotesRepository) DeleteQuotesBySource(ctx context.Context, source string) error {
	_, err := r.conn().ExecContext(ctx, `DELETE FROM loan_quotes WHERE source = $1`, source)
	return err
}

func sourceOrDefault(s string) string {
	if s == "" {
		return models.SourceAPI
	}
	return s
}
