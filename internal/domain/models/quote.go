package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/loanquote/internal/amortization"
)

// Quote sources recorded alongside persisted quotes.
const (
	SourceAPI = "api"
)

// Quote is a loan quote: the inputs chosen by the borrower and the values
// derived from them. A Quote is rebuilt from scratch whenever an input
// changes; the derived fields are never edited independently.
//
// Fields:
//   - ID: identifier assigned when the quote is recorded.
//   - Product: loan product code (e.g., "personal").
//   - Principal: amount borrowed.
//   - AnnualRatePercent: nominal annual rate in percent (5.9 means 5.9%).
//   - TermMonths: number of monthly payments.
//   - MonthlyPayment, TotalInterest, TotalPayment: derived by the calculator.
//   - Source: where the quote came from ("api" or a batch file name).
//   - CreatedAt: when the quote was built.
//
// swagger:model Quote
type Quote struct {
	ID                uuid.UUID `json:"id"`
	Product           string    `json:"product" example:"personal"`
	Principal         float64   `json:"principal" example:"10000"`
	AnnualRatePercent float64   `json:"annual_rate_percent" example:"5.9"`
	TermMonths        int32     `json:"term_months" example:"36"`
	MonthlyPayment    float64   `json:"monthly_payment" example:"303.77"`
	TotalInterest     float64   `json:"total_interest" example:"935.59"`
	TotalPayment      float64   `json:"total_payment" example:"10935.59"`
	Source            string    `json:"source,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewQuote computes a quote for the given inputs.
func NewQuote(product string, principal, annualRatePercent float64, termMonths int32, now time.Time) Quote {
	res := amortization.Compute(principal, annualRatePercent, termMonths)
	return QuoteFromResult(product, principal, annualRatePercent, termMonths, res, now)
}

// QuoteFromResult assembles a quote from an already computed result.
func QuoteFromResult(product string, principal, annualRatePercent float64, termMonths int32, res amortization.Result, now time.Time) Quote {
	return Quote{
		ID:                uuid.New(),
		Product:           product,
		Principal:         principal,
		AnnualRatePercent: annualRatePercent,
		TermMonths:        termMonths,
		MonthlyPayment:    res.MonthlyPayment,
		TotalInterest:     res.TotalInterest,
		TotalPayment:      res.TotalPayment,
		CreatedAt:         now.UTC(),
	}
}

// Result returns the derived part of the quote.
func (q Quote) Result() amortization.Result {
	return amortization.Result{
		MonthlyPayment: q.MonthlyPayment,
		TotalInterest:  q.TotalInterest,
		TotalPayment:   q.TotalPayment,
	}
}
