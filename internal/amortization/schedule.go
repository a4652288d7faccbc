package amortization

import (
	"math"
	"time"

	"github.com/guttosm/loanquote/internal/calendar"
)

// Installment is one row of an amortization schedule.
type Installment struct {
	Number    int       `json:"number"`
	DueDate   time.Time `json:"due_date"`
	Payment   float64   `json:"payment"`
	Interest  float64   `json:"interest"`
	Principal float64   `json:"principal"`
	Balance   float64   `json:"balance"`
}

// Schedule is the month-by-month breakdown of a loan together with its totals.
type Schedule struct {
	Result
	Installments []Installment `json:"installments"`
}

// BuildSchedule splits every payment of the loan into interest and principal.
//
// Behavior:
//   - Installment k is due k months after start, rolled forward to the next
//     business day when cal is non-nil.
//   - Interest for a month is the opening balance times the monthly rate.
//   - The last installment pays off whatever balance float rounding left, so
//     the closing balance is exactly zero.
//   - Input for which Compute returns the zero Result yields no installments.
func BuildSchedule(principal, annualRatePercent float64, termMonths int32, start time.Time, cal *calendar.Calendar) Schedule {
	res := Compute(principal, annualRatePercent, termMonths)
	if res.IsZero() || termMonths < 1 {
		return Schedule{}
	}

	i := MonthlyRate(annualRatePercent)
	out := Schedule{
		Result:       res,
		Installments: make([]Installment, 0, termMonths),
	}

	balance := principal
	for k := 1; k <= int(termMonths); k++ {
		interest := balance * i
		payment := res.MonthlyPayment
		principalPart := payment - interest
		if k == int(termMonths) {
			principalPart = balance
			payment = principalPart + interest
		}
		balance -= principalPart
		if math.Abs(balance) < 1e-9 {
			balance = 0
		}

		due := calendar.AddMonths(start, k)
		if cal != nil {
			due = cal.NextBusinessDay(due)
		}

		out.Installments = append(out.Installments, Installment{
			Number:    k,
			DueDate:   due,
			Payment:   payment,
			Interest:  interest,
			Principal: principalPart,
			Balance:   balance,
		})
	}

	return out
}

// TotalScheduled sums the payments of every installment.
func (s Schedule) TotalScheduled() float64 {
	var sum float64
	for _, in := range s.Installments {
		sum += in.Payment
	}
	return sum
}
