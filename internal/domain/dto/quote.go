package dto

import (
	"time"

	"github.com/guttosm/loanquote/internal/amortization"
	"github.com/guttosm/loanquote/internal/domain/models"
)

// QuoteRequest is the JSON body accepted by POST /api/v1/quotes.
// Omitted fields fall back to the product defaults; an explicit zero is
// validated like any other value.
type QuoteRequest struct {
	Product           string   `json:"product" example:"personal"`
	Principal         *float64 `json:"principal,omitempty" example:"10000"`
	AnnualRatePercent *float64 `json:"annual_rate_percent,omitempty" example:"5.9"`
	TermMonths        *int32   `json:"term_months,omitempty" example:"36"`
}

// Display carries locale-formatted copies of the monetary values.
type Display struct {
	Locale         string `json:"locale" example:"en-US"`
	Principal      string `json:"principal" example:"$10,000.00"`
	MonthlyPayment string `json:"monthly_payment" example:"$303.77"`
	TotalInterest  string `json:"total_interest" example:"$935.59"`
	TotalPayment   string `json:"total_payment" example:"$10,935.59"`
}

// QuoteResponse is returned by the quote endpoints.
type QuoteResponse struct {
	models.Quote
	Display Display `json:"display"`
}

// ScheduleResponse is returned by GET /api/v1/schedule.
type ScheduleResponse struct {
	Quote        QuoteResponse              `json:"quote"`
	Installments []amortization.Installment `json:"installments"`
}

// CompareRow is one term option in a comparison table.
type CompareRow struct {
	TermMonths     int32   `json:"term_months" example:"36"`
	MonthlyPayment float64 `json:"monthly_payment" example:"303.77"`
	TotalInterest  float64 `json:"total_interest" example:"935.59"`
	TotalPayment   float64 `json:"total_payment" example:"10935.59"`
	Display        Display `json:"display"`
}

// CompareResponse is returned by GET /api/v1/compare.
type CompareResponse struct {
	Product           string       `json:"product" example:"personal"`
	Principal         float64      `json:"principal" example:"10000"`
	AnnualRatePercent float64      `json:"annual_rate_percent" example:"5.9"`
	Terms             []CompareRow `json:"terms"`
}

// ProductsResponse is returned by GET /api/v1/products.
type ProductsResponse struct {
	Products          []models.Product `json:"products"`
	StandardTerms     []int32          `json:"standard_terms"`
	DefaultProduct    string           `json:"default_product" example:"personal"`
	DefaultPrincipal  float64          `json:"default_principal" example:"10000"`
	DefaultTermMonths int32            `json:"default_term_months" example:"36"`
}

// RecentQuotesResponse is returned by GET /api/v1/quotes/recent.
type RecentQuotesResponse struct {
	Quotes      []models.Quote `json:"quotes"`
	Count       int            `json:"count"`
	GeneratedAt time.Time      `json:"generated_at"`
}
