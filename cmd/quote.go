package main

import (
	"context"
	"encoding/json"
	"flag"
	"io"
	"time"

	"github.com/guttosm/loanquote/internal/amortization"
	"github.com/guttosm/loanquote/internal/calendar"
	"github.com/guttosm/loanquote/internal/domain/dto"
	"github.com/guttosm/loanquote/internal/money"
	"github.com/guttosm/loanquote/internal/service"
)

// quoteOptions carries the flags of --mode quote.
type quoteOptions struct {
	input    service.QuoteInput
	schedule bool
	start    time.Time
	locale   string
}

// quoteInputFromFlags keeps only the flags the user actually set, so unset
// ones fall back to the product defaults.
func quoteInputFromFlags(fs *flag.FlagSet, product string, principal, rate float64, term int) service.QuoteInput {
	in := service.QuoteInput{Product: product}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "principal":
			in.Principal = &principal
		case "rate":
			in.AnnualRatePercent = &rate
		case "term":
			t := int32(term)
			in.TermMonths = &t
		}
	})
	return in
}

// runQuote prints a quote (and optionally its schedule) as indented JSON.
// It touches neither the database nor the cache.
func runQuote(ctx context.Context, w io.Writer, opts quoteOptions) error {
	svc := service.NewQuoteService(service.Options{Calendar: calendar.Default()})
	f := money.NewFormatter(money.ParseTag(opts.locale))

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if !opts.schedule {
		q, err := svc.Quote(ctx, opts.input)
		if err != nil {
			return err
		}
		return enc.Encode(dto.QuoteResponse{Quote: *q, Display: displayFor(f, q.Principal, q.Result())})
	}

	q, sched, err := svc.Schedule(ctx, opts.input, opts.start)
	if err != nil {
		return err
	}
	installments := sched.Installments
	if installments == nil {
		installments = []amortization.Installment{}
	}
	return enc.Encode(dto.ScheduleResponse{
		Quote:        dto.QuoteResponse{Quote: *q, Display: displayFor(f, q.Principal, q.Result())},
		Installments: installments,
	})
}

func displayFor(f *money.Formatter, principal float64, res amortization.Result) dto.Display {
	return dto.Display{
		Locale:         f.Locale(),
		Principal:      f.Format(principal),
		MonthlyPayment: f.Format(res.MonthlyPayment),
		TotalInterest:  f.Format(res.TotalInterest),
		TotalPayment:   f.Format(res.TotalPayment),
	}
}
