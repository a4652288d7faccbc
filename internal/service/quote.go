package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/loanquote/internal/amortization"
	"github.com/guttosm/loanquote/internal/cache"
	"github.com/guttosm/loanquote/internal/calendar"
	"github.com/guttosm/loanquote/internal/domain/models"
	"github.com/guttosm/loanquote/internal/logger"
	"github.com/guttosm/loanquote/internal/storage"
)

var (
	ErrUnknownProduct     = errors.New("unknown loan product")
	ErrHistoryUnavailable = errors.New("quote history is not configured")
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 100
)

// QuoteInput carries the borrower's choices. Nil fields fall back to the
// product defaults: principal 10000, term 36 months and the product's rate.
type QuoteInput struct {
	Product           string
	Principal         *float64
	AnnualRatePercent *float64
	TermMonths        *int32
}

// QuoteService defines the quoting use cases exposed over HTTP and the CLI.
type QuoteService interface {
	Quote(ctx context.Context, in QuoteInput) (*models.Quote, error)
	Record(ctx context.Context, in QuoteInput) (*models.Quote, error)
	Schedule(ctx context.Context, in QuoteInput, start time.Time) (*models.Quote, amortization.Schedule, error)
	CompareTerms(ctx context.Context, in QuoteInput) ([]models.Quote, error)
	Products() []models.Product
	Recent(ctx context.Context, limit int) ([]models.Quote, error)
}

// Options wires the optional collaborators of the quote service.
//
// Fields:
//   - Repo: quote history; nil disables Record persistence and Recent.
//   - Cache: result cache; nil disables caching.
//   - CacheTTL: expiry for cached entries.
//   - Calendar: business-day calendar for schedule due dates.
type Options struct {
	Repo     storage.QuotesRepository
	Cache    cache.Cache
	CacheTTL time.Duration
	Calendar *calendar.Calendar
}

type quoteService struct {
	repo     storage.QuotesRepository
	cache    cache.Cache
	cacheTTL time.Duration
	cal      *calendar.Calendar
	now      func() time.Time
}

func NewQuoteService(opts Options) QuoteService {
	return &quoteService{
		repo:     opts.Repo,
		cache:    opts.Cache,
		cacheTTL: opts.CacheTTL,
		cal:      opts.Calendar,
		now:      time.Now,
	}
}

type resolvedInput struct {
	product   models.Product
	principal float64
	rate      float64
	term      int32
}

// resolve applies product defaults and validates the result.
func resolve(in QuoteInput) (resolvedInput, error) {
	product, ok := models.LookupProduct(in.Product)
	if !ok {
		return resolvedInput{}, fmt.Errorf("%w: %q", ErrUnknownProduct, in.Product)
	}

	r := resolvedInput{
		product:   product,
		principal: models.DefaultPrincipal,
		rate:      product.AnnualRatePercent,
		term:      models.DefaultTermMonths,
	}
	if in.Principal != nil {
		r.principal = *in.Principal
	}
	if in.AnnualRatePercent != nil {
		r.rate = *in.AnnualRatePercent
	}
	if in.TermMonths != nil {
		r.term = *in.TermMonths
	}

	if err := amortization.Validate(r.principal, r.rate, r.term); err != nil {
		return resolvedInput{}, err
	}
	return r, nil
}

// Quote computes a quote without recording it. Results are served from the
// cache when an identical quote was computed recently.
func (s *quoteService) Quote(ctx context.Context, in QuoteInput) (*models.Quote, error) {
	r, err := resolve(in)
	if err != nil {
		return nil, err
	}
	res := s.compute(ctx, r.principal, r.rate, r.term)
	q := models.QuoteFromResult(r.product.Code, r.principal, r.rate, r.term, res, s.now())
	return &q, nil
}

// Record computes a quote and stores it in the history. A storage failure
// is logged and does not fail the quote.
func (s *quoteService) Record(ctx context.Context, in QuoteInput) (*models.Quote, error) {
	q, err := s.Quote(ctx, in)
	if err != nil {
		return nil, err
	}
	q.Source = models.SourceAPI

	if s.repo != nil {
		if err := s.repo.InsertQuote(ctx, *q); err != nil {
			logger.L().Warn().Err(err).Str("quote_id", q.ID.String()).Msg("failed to record quote")
		}
	}
	return q, nil
}

// Schedule returns the quote together with its month-by-month breakdown.
// Installments fall due monthly after start, on business days.
func (s *quoteService) Schedule(ctx context.Context, in QuoteInput, start time.Time) (*models.Quote, amortization.Schedule, error) {
	r, err := resolve(in)
	if err != nil {
		return nil, amortization.Schedule{}, err
	}
	if start.IsZero() {
		start = s.now()
	}
	sched := amortization.BuildSchedule(r.principal, r.rate, r.term, calendar.TruncateToDate(start), s.cal)
	q := models.QuoteFromResult(r.product.Code, r.principal, r.rate, r.term, sched.Result, s.now())
	return &q, sched, nil
}

type termResult struct {
	Term   int32               `json:"term"`
	Result amortization.Result `json:"result"`
}

// CompareTerms quotes the same principal and rate over every standard term.
// The input term, if any, is ignored.
func (s *quoteService) CompareTerms(ctx context.Context, in QuoteInput) ([]models.Quote, error) {
	in.TermMonths = nil
	r, err := resolve(in)
	if err != nil {
		return nil, err
	}

	key := cache.CompareKey(r.principal, r.rate)
	var table []termResult
	if raw, ok := s.cacheGet(ctx, key); ok {
		if err := json.Unmarshal([]byte(raw), &table); err != nil || len(table) != len(models.StandardTerms) {
			table = nil
		}
	}
	if table == nil {
		table = make([]termResult, 0, len(models.StandardTerms))
		for _, term := range models.StandardTerms {
			table = append(table, termResult{Term: term, Result: amortization.Compute(r.principal, r.rate, term)})
		}
		if raw, err := json.Marshal(table); err == nil {
			s.cacheSet(ctx, key, string(raw))
		}
	}

	now := s.now()
	out := make([]models.Quote, 0, len(table))
	for _, row := range table {
		out = append(out, models.QuoteFromResult(r.product.Code, r.principal, r.rate, row.Term, row.Result, now))
	}
	return out, nil
}

func (s *quoteService) Products() []models.Product {
	return models.Products()
}

// Recent lists recorded quotes, newest first. limit is clamped to
// [1, MaxRecentLimit]; zero selects DefaultRecentLimit.
func (s *quoteService) Recent(ctx context.Context, limit int) ([]models.Quote, error) {
	if s.repo == nil {
		return nil, ErrHistoryUnavailable
	}
	switch {
	case limit == 0:
		limit = DefaultRecentLimit
	case limit < 1:
		limit = 1
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}

// compute is Compute behind the cache.
func (s *quoteService) compute(ctx context.Context, principal, rate float64, term int32) amortization.Result {
	key := cache.QuoteKey(principal, rate, term)
	if raw, ok := s.cacheGet(ctx, key); ok {
		var res amortization.Result
		if err := json.Unmarshal([]byte(raw), &res); err == nil {
			return res
		}
	}

	res := amortization.Compute(principal, rate, term)
	if raw, err := json.Marshal(res); err == nil {
		s.cacheSet(ctx, key, string(raw))
	}
	return res
}

func (s *quoteService) cacheGet(ctx context.Context, key string) (string, bool) {
	if s.cache == nil {
		return "", false
	}
	return s.cache.Get(ctx, key)
}

func (s *quoteService) cacheSet(ctx context.Context, key, value string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		logger.L().Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
