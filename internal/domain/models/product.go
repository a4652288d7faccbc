package models

import "strings"

// Product is a loan product offered by the calculator with its advertised
// annual rate and a repayment tip shown next to it.
type Product struct {
	Code              string  `json:"code" example:"personal"`
	Name              string  `json:"name" example:"Personal Loan"`
	AnnualRatePercent float64 `json:"annual_rate_percent" example:"5.9"`
	Advice            Advice  `json:"advice"`
}

// Advice is a short repayment tip for a product.
type Advice struct {
	Title       string `json:"title" example:"Personal Loan Management"`
	Description string `json:"description" example:"Pay more than the minimum each month to reduce the total interest paid."`
}

const (
	DefaultProduct    = "personal"
	DefaultPrincipal  = 10000.0
	DefaultTermMonths = int32(36)
)

// StandardTerms are the loan terms offered for selection, in months.
var StandardTerms = []int32{12, 24, 36, 48, 60, 120, 180, 240, 360}

var (
	overpaymentAdvice = Advice{
		Title:       "Personal Loan Management",
		Description: "Pay more than the minimum each month to reduce the total interest paid over the life of the loan.",
	}
	autoAdvice = Advice{
		Title:       "Auto Loan Tips",
		Description: "Set aside funds for maintenance to prevent future financial strain and extend the life of the vehicle.",
	}
	mortgageAdvice = Advice{
		Title:       "Mortgage Management",
		Description: "Consider bi-weekly payments instead of monthly ones to shorten the term and save on interest.",
	}
)

var products = []Product{
	{Code: "personal", Name: "Personal Loan", AnnualRatePercent: 5.9, Advice: overpaymentAdvice},
	{Code: "auto", Name: "Auto Loan", AnnualRatePercent: 4.5, Advice: autoAdvice},
	{Code: "mortgage", Name: "Mortgage", AnnualRatePercent: 3.5, Advice: mortgageAdvice},
	{Code: "business", Name: "Business Loan", AnnualRatePercent: 5.9, Advice: overpaymentAdvice},
	{Code: "student", Name: "Student Loan", AnnualRatePercent: 5.9, Advice: overpaymentAdvice},
}

// Products returns the product catalog in display order.
func Products() []Product {
	out := make([]Product, len(products))
	copy(out, products)
	return out
}

// LookupProduct finds a product by code (case-insensitive). An empty code
// resolves to DefaultProduct.
func LookupProduct(code string) (Product, bool) {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		code = DefaultProduct
	}
	for _, p := range products {
		if p.Code == code {
			return p, true
		}
	}
	return Product{}, false
}
