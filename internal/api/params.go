package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loanquote/internal/money"
	"github.com/guttosm/loanquote/internal/service"
)

// parseQuoteQuery reads product, principal, rate and (when withTerm is set)
// term from the query string. Absent parameters stay nil so the service can
// apply product defaults; malformed ones are rejected.
func parseQuoteQuery(c *gin.Context, withTerm bool) (service.QuoteInput, error) {
	in := service.QuoteInput{Product: strings.TrimSpace(c.Query("product"))}

	if s := strings.TrimSpace(c.Query("principal")); s != "" {
		v, err := money.ParseAmount(s)
		if err != nil {
			return in, fmt.Errorf("principal: %w", err)
		}
		in.Principal = &v
	}
	if s := strings.TrimSpace(c.Query("rate")); s != "" {
		v, err := money.ParseAmount(s)
		if err != nil {
			return in, fmt.Errorf("rate: %w", err)
		}
		in.AnnualRatePercent = &v
	}
	if withTerm {
		if s := strings.TrimSpace(c.Query("term")); s != "" {
			v, err := strconv.ParseInt(s, 10, 32)
			if err != nil {
				return in, fmt.Errorf("term: %w", err)
			}
			term := int32(v)
			in.TermMonths = &term
		}
	}
	return in, nil
}
