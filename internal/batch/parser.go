package batch

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/loanquote/internal/amortization"
	"github.com/guttosm/loanquote/internal/domain/models"
	"github.com/guttosm/loanquote/internal/money"
	"github.com/guttosm/loanquote/internal/storage"
)

// expectedHeaders enforces strict column ordering for batch quote files.
// If the header doesn't match EXACTLY (order + count), the file fails.
var expectedHeaders = []string{
	"product",
	"principal",
	"annual_rate_percent",
	"term_months",
}

// parseAndPersistFile opens, validates, quotes, and persists one file in batches.
// Every quote is tagged with source so a forced re-import can replace it.
//
// It fails on:
//   - header not matching expected order/length
//   - any row that does not parse or validate
//   - unrecoverable I/O or storage errors
//
// Parameters:
//   - ctx:    context for cancellation/timeouts.
//   - path:   file path.
//   - source: value stored in loan_quotes.source (the file's base name).
//   - repo:   repository for DB insertion.
//   - batch:  batch size for inserts (e.g., 5000).
//   - now:    creation timestamp for the file's quotes.
func parseAndPersistFile(ctx context.Context, path, source string, repo storage.QuotesRepository, batch int, now time.Time) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // checked explicitly for better messages

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header); err != nil {
		return 0, err
	}

	buf := make([]models.Quote, 0, batch)
	lineNumber := 1 // header already read

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertQuotesBatch(ctx, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if isBlank(rec) {
			continue
		}
		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		q, err := recordToQuote(rec, now)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		q.Source = source

		buf = append(buf, q)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}

	return total, nil
}

func checkHeader(header []string) error {
	if len(header) != len(expectedHeaders) {
		return fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if h != expectedHeaders[i] {
			return fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}
	return nil
}

func isBlank(rec []string) bool {
	for _, s := range rec {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// recordToQuote converts a single record (already validated length==4) into
// a computed quote.
//
// Columns:
//
//	0 product              → product code; empty selects the default product
//	1 principal            → required, comma or dot decimal
//	2 annual_rate_percent  → empty selects the product's rate
//	3 term_months          → required integer
func recordToQuote(rec []string, now time.Time) (models.Quote, error) {
	product, ok := models.LookupProduct(rec[0])
	if !ok {
		return models.Quote{}, fmt.Errorf("unknown product %q", strings.TrimSpace(rec[0]))
	}

	s := strings.TrimSpace(rec[1])
	if s == "" {
		return models.Quote{}, errors.New("principal is required")
	}
	principal, err := money.ParseAmount(s)
	if err != nil {
		return models.Quote{}, fmt.Errorf("invalid principal: %w", err)
	}

	rate := product.AnnualRatePercent
	if s := strings.TrimSpace(rec[2]); s != "" {
		rate, err = money.ParseAmount(s)
		if err != nil {
			return models.Quote{}, fmt.Errorf("invalid annual_rate_percent: %w", err)
		}
	}

	s = strings.TrimSpace(rec[3])
	if s == "" {
		return models.Quote{}, errors.New("term_months is required")
	}
	term, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return models.Quote{}, fmt.Errorf("invalid term_months: %w", err)
	}

	if err := amortization.Validate(principal, rate, int32(term)); err != nil {
		return models.Quote{}, err
	}

	return models.NewQuote(product.Code, principal, rate, int32(term), now), nil
}
