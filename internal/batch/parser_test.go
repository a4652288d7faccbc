package batch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/loanquote/internal/amortization"
	"github.com/guttosm/loanquote/internal/domain/models"
	"github.com/guttosm/loanquote/internal/storage"
)

const validHeader = "product;principal;annual_rate_percent;term_months\n"

// fakeRepo records batches; safe for concurrent files.
type fakeRepo struct {
	mu        sync.Mutex
	batches   [][]models.Quote
	imported  map[string]int
	deleted   []string
	insertErr error
	hasErr    error
	upsertErr error
}

func (f *fakeRepo) InsertQuote(context.Context, models.Quote) error { return nil }
func (f *fakeRepo) InsertQuotesBatch(_ context.Context, quotes []models.Quote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, append([]models.Quote(nil), quotes...))
	return f.insertErr
}
func (f *fakeRepo) ListRecent(context.Context, int) ([]models.Quote, error) { return nil, nil }
func (f *fakeRepo) HasImport(_ context.Context, name string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hasErr != nil {
		return false, f.hasErr
	}
	_, ok := f.imported[name]
	return ok, nil
}
func (f *fakeRepo) UpsertImportLog(_ context.Context, name string, rows int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.imported == nil {
		f.imported = map[string]int{}
	}
	f.imported[name] = rows
	return nil
}
func (f *fakeRepo) DeleteQuotesBySource(_ context.Context, source string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, source)
	f.dropSource(source)
	return nil
}

// WithinTx stages writes in a child repo and applies them only when fn
// succeeds.
func (f *fakeRepo) WithinTx(_ context.Context, fn func(storage.QuotesRepository) error) error {
	tx := &fakeRepo{insertErr: f.insertErr, hasErr: f.hasErr, upsertErr: f.upsertErr}
	if err := fn(tx); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, source := range tx.deleted {
		f.dropSource(source)
	}
	f.deleted = append(f.deleted, tx.deleted...)
	f.batches = append(f.batches, tx.batches...)
	if f.imported == nil {
		f.imported = map[string]int{}
	}
	for name, rows := range tx.imported {
		f.imported[name] = rows
	}
	return nil
}

// dropSource removes stored quotes of source; f.mu must be held.
func (f *fakeRepo) dropSource(source string) {
	var kept [][]models.Quote
	for _, b := range f.batches {
		var rest []models.Quote
		for _, q := range b {
			if q.Source != source {
				rest = append(rest, q)
			}
		}
		if len(rest) > 0 {
			kept = append(kept, rest)
		}
	}
	f.batches = kept
}

func (f *fakeRepo) rows() []models.Quote {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Quote
	for _, b := range f.batches {
		out = append(out, b...)
	}
	return out
}

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return p
}

func TestParseAndPersistFile_TableDriven(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name        string
		content     string
		wantErr     string
		wantBatches int
		wantRows    int
	}{
		{name: "ok single row", content: validHeader + "personal;10000;5,9;36\n", wantBatches: 1, wantRows: 1},
		{name: "dot decimals", content: validHeader + "auto;20000.50;4.5;60\n", wantBatches: 1, wantRows: 1},
		{name: "empty rate uses product", content: validHeader + "mortgage;250000;;360\n", wantBatches: 1, wantRows: 1},
		{name: "blank lines skipped", content: validHeader + "personal;1000;5;12\n;;;\n", wantBatches: 1, wantRows: 1},
		{name: "batches of two", content: validHeader + strings.Repeat("student;5000;5,9;24\n", 5), wantBatches: 3, wantRows: 5},
		{name: "bom header", content: "\ufeff" + validHeader + "personal;1000;5;12\n", wantBatches: 1, wantRows: 1},
		{name: "header only", content: validHeader, wantBatches: 0, wantRows: 0},
		{name: "bad header order", content: "principal;product;annual_rate_percent;term_months\n", wantErr: "invalid header at col 1"},
		{name: "bad header length", content: "product;principal\n", wantErr: "invalid header length"},
		{name: "bad col count", content: validHeader + "personal;10000\n", wantErr: "invalid column count on line 2"},
		{name: "unknown product", content: validHeader + "yacht;10000;5;12\n", wantErr: "unknown product"},
		{name: "invalid principal", content: validHeader + "personal;abc;5;12\n", wantErr: "invalid principal"},
		{name: "ambiguous principal", content: validHeader + "personal;1,000;5;12\n", wantErr: "ambiguous amount"},
		{name: "grouped principal", content: validHeader + "personal;1,500.50;5;12\n", wantBatches: 1, wantRows: 1},
		{name: "missing principal", content: validHeader + "personal;;5;12\n", wantErr: "principal is required"},
		{name: "invalid rate", content: validHeader + "personal;1000;x;12\n", wantErr: "invalid annual_rate_percent"},
		{name: "missing term", content: validHeader + "personal;1000;5;\n", wantErr: "term_months is required"},
		{name: "fractional term", content: validHeader + "personal;1000;5;12,5\n", wantErr: "invalid term_months"},
		{name: "term out of range", content: validHeader + "personal;1000;5;601\n", wantErr: "term_months"},
		{name: "negative principal", content: validHeader + "personal;-1000;5;12\n", wantErr: "principal"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempFile(t, dir, "file.csv", tc.content)
			repo := &fakeRepo{}
			n, err := parseAndPersistFile(context.Background(), path, "file.csv", repo, 2, now)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantRows, n)
			assert.Len(t, repo.batches, tc.wantBatches)
			for _, q := range repo.rows() {
				assert.Equal(t, "file.csv", q.Source)
				assert.Equal(t, now, q.CreatedAt)
				assert.False(t, q.Result().IsZero())
			}
		})
	}
}

func TestRecordToQuote_Values(t *testing.T) {
	now := time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

	q, err := recordToQuote([]string{"Mortgage", "1.250.000,00", "", "360"}, now)
	require.NoError(t, err)
	assert.Equal(t, "mortgage", q.Product)
	assert.Equal(t, 1250000.0, q.Principal)
	assert.Equal(t, 3.5, q.AnnualRatePercent)
	assert.Equal(t, int32(360), q.TermMonths)
	assert.Equal(t, amortization.Compute(1250000, 3.5, 360), q.Result())

	q, err = recordToQuote([]string{"", "10000", "5", "36"}, now)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultProduct, q.Product)

	_, err = recordToQuote([]string{"personal", "10000", "-1", "36"}, now)
	assert.ErrorIs(t, err, amortization.ErrInvalidRate)
}

func TestParseAndPersistFile_InsertError(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "x.csv", validHeader+"personal;10000;5;36\n")

	repo := &fakeRepo{insertErr: errors.New("copy failed")}
	_, err := parseAndPersistFile(context.Background(), path, "x.csv", repo, 10, time.Now())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "final flush")
}

func TestParseAndPersistFile_MissingFile(t *testing.T) {
	_, err := parseAndPersistFile(context.Background(), filepath.Join(t.TempDir(), "nope.csv"), "nope.csv", &fakeRepo{}, 10, time.Now())
	assert.Error(t, err)
}

func TestParseAndPersistFile_ContextCanceled(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "big.csv", validHeader+strings.Repeat("personal;10000;5,9;36\n", 1000))

	repo := &fakeRepo{}
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // immediately canceled
	if _, err := parseAndPersistFile(ctx, path, "big.csv", repo, 100, time.Now()); err == nil {
		t.Fatalf("expected context canceled error")
	}
}

