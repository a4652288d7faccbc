package amortization

import (
	"errors"
	"fmt"
	"math"
)

const (
	MaxPrincipal         = 1_000_000_000.0
	MaxAnnualRatePercent = 1000.0
	MinTermMonths        = 1
	MaxTermMonths        = 600 // 50 years
)

var (
	ErrInvalidPrincipal = errors.New("invalid principal")
	ErrInvalidRate      = errors.New("invalid annual rate")
	ErrInvalidTerm      = errors.New("invalid term")
)

// ValidationError describes which input was rejected and why.
// It unwraps to one of the ErrInvalid* sentinels.
type ValidationError struct {
	Field  string
	Reason string
	err    error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.err }

func invalid(field string, sentinel error, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...), err: sentinel}
}

// Validate applies the boundary checks that Compute deliberately skips.
// HTTP, CLI and batch entry points call it before quoting.
func Validate(principal, annualRatePercent float64, termMonths int32) error {
	switch {
	case math.IsNaN(principal) || math.IsInf(principal, 0):
		return invalid("principal", ErrInvalidPrincipal, "must be a finite number")
	case principal <= 0:
		return invalid("principal", ErrInvalidPrincipal, "must be greater than zero")
	case principal > MaxPrincipal:
		return invalid("principal", ErrInvalidPrincipal, "must not exceed %.2f", MaxPrincipal)
	}

	switch {
	case math.IsNaN(annualRatePercent) || math.IsInf(annualRatePercent, 0):
		return invalid("annual_rate_percent", ErrInvalidRate, "must be a finite number")
	case annualRatePercent < 0:
		return invalid("annual_rate_percent", ErrInvalidRate, "must not be negative")
	case annualRatePercent > MaxAnnualRatePercent:
		return invalid("annual_rate_percent", ErrInvalidRate, "must not exceed %.2f", MaxAnnualRatePercent)
	}

	if termMonths < MinTermMonths || termMonths > MaxTermMonths {
		return invalid("term_months", ErrInvalidTerm, "must be between %d and %d", MinTermMonths, MaxTermMonths)
	}

	return nil
}
