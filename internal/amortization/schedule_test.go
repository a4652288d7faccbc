package amortization

import (
	"math"
	"testing"
	"time"

	"github.com/guttosm/loanquote/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSchedule_PaysDownToZero(t *testing.T) {
	start := time.Date(2025, 9, 15, 0, 0, 0, 0, time.UTC)
	s := BuildSchedule(10000, 5.9, 36, start, nil)

	require.Len(t, s.Installments, 36)
	assert.Equal(t, Compute(10000, 5.9, 36), s.Result)

	last := s.Installments[35]
	assert.Equal(t, 0.0, last.Balance)
	assert.InDelta(t, s.TotalPayment, s.TotalScheduled(), 1e-6*36)

	var principalPaid, interestPaid float64
	prevBalance := 10000.0
	for k, in := range s.Installments {
		assert.Equal(t, k+1, in.Number)
		assert.InDelta(t, in.Payment, in.Interest+in.Principal, 1e-9)
		assert.Less(t, in.Balance, prevBalance)
		prevBalance = in.Balance
		principalPaid += in.Principal
		interestPaid += in.Interest
	}
	assert.InDelta(t, 10000, principalPaid, 1e-6)
	assert.InDelta(t, s.TotalInterest, interestPaid, 1e-6)
}

func TestBuildSchedule_FirstInstallment(t *testing.T) {
	s := BuildSchedule(1000, 12, 1, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), nil)
	require.Len(t, s.Installments, 1)
	in := s.Installments[0]
	assert.InDelta(t, 10, in.Interest, 1e-9)
	assert.InDelta(t, 1000, in.Principal, 1e-9)
	assert.InDelta(t, 1010, in.Payment, 1e-9)
	assert.Equal(t, time.Date(2025, 2, 10, 0, 0, 0, 0, time.UTC), in.DueDate)
}

func TestBuildSchedule_ZeroInterest(t *testing.T) {
	s := BuildSchedule(1200, 0, 12, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), nil)
	require.Len(t, s.Installments, 12)
	for _, in := range s.Installments {
		assert.Equal(t, 0.0, in.Interest)
		assert.Equal(t, 100.0, in.Payment)
	}
	assert.Equal(t, 0.0, s.Installments[11].Balance)
}

func TestBuildSchedule_DueDatesRollToBusinessDays(t *testing.T) {
	// Nov 25 2025 + 1 month = Thu Dec 25 (holiday) → Fri Dec 26.
	// + 2 months = Sun Jan 25 2026 → Mon Jan 26.
	start := time.Date(2025, 11, 25, 0, 0, 0, 0, time.UTC)
	s := BuildSchedule(5000, 4.5, 3, start, calendar.Default())
	require.Len(t, s.Installments, 3)
	assert.Equal(t, time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC), s.Installments[0].DueDate)
	assert.Equal(t, time.Date(2026, 1, 26, 0, 0, 0, 0, time.UTC), s.Installments[1].DueDate)
	assert.Equal(t, time.Date(2026, 2, 25, 0, 0, 0, 0, time.UTC), s.Installments[2].DueDate)
}

func TestBuildSchedule_DegenerateIsEmpty(t *testing.T) {
	for _, tc := range []struct {
		p, r float64
		n    int32
	}{
		{5000, 5, 0},
		{math.NaN(), 5, 12},
		{5000, 5, -6},
	} {
		s := BuildSchedule(tc.p, tc.r, tc.n, time.Now(), nil)
		assert.Empty(t, s.Installments)
		assert.True(t, s.Result.IsZero())
	}
}
