// Package amortization implements fixed-rate loan amortization: the monthly
// annuity payment for a principal, a nominal annual rate and a term, and the
// month-by-month schedule that pays the loan down to zero.
package amortization

import "math"

// Result holds the derived values of a fixed-rate loan.
//
// Fields:
//   - MonthlyPayment: fixed installment paid every month.
//   - TotalInterest: TotalPayment minus the principal.
//   - TotalPayment: MonthlyPayment times the number of months.
type Result struct {
	MonthlyPayment float64 `json:"monthly_payment"`
	TotalInterest  float64 `json:"total_interest"`
	TotalPayment   float64 `json:"total_payment"`
}

// IsZero reports whether r is the zero result returned for degenerate input.
func (r Result) IsZero() bool {
	return r == Result{}
}

// MonthlyRate converts a nominal annual percentage (5.9 means 5.9%) into the
// decimal rate applied each month.
func MonthlyRate(annualRatePercent float64) float64 {
	return annualRatePercent / 100 / 12
}

// Compute returns the monthly payment, total interest and total payment of a
// fixed-rate loan using the annuity formula
//
//	M = P * i(1+i)^n / ((1+i)^n - 1)
//
// with i the monthly rate and n the number of monthly payments.
//
// Compute never fails. A zero monthly rate pays the principal back in equal
// parts. Input that leads to a non-finite result (a zero term, NaN values,
// overflow) yields the zero Result instead of NaN or Inf. Range checks are
// the caller's job, see Validate.
func Compute(principal, annualRatePercent float64, termMonths int32) Result {
	n := float64(termMonths)
	i := MonthlyRate(annualRatePercent)

	var monthly float64
	growth := math.Pow(1+i, n)
	if i == 0 || growth == 1 {
		// the annuity formula is 0/0 here
		monthly = principal / n
	} else {
		monthly = principal * (i * growth) / (growth - 1)
	}

	total := monthly * n
	interest := total - principal
	if !finite(monthly) || !finite(total) || !finite(interest) {
		return Result{}
	}

	return Result{
		MonthlyPayment: monthly,
		TotalInterest:  interest,
		TotalPayment:   total,
	}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
