package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/loanquote/internal/amortization"
	"github.com/guttosm/loanquote/internal/domain/dto"
	"github.com/guttosm/loanquote/internal/domain/models"
	"github.com/guttosm/loanquote/internal/middleware"
	"github.com/guttosm/loanquote/internal/money"
	"github.com/guttosm/loanquote/internal/service"
	"golang.org/x/text/language"
)

// Handler provides HTTP handlers for the quoting endpoints.
//
// Responsibilities:
//   - Parse and validate query parameters and request bodies
//   - Delegate to the quote service
//   - Attach locale-formatted display strings to monetary values
//   - Map service errors onto HTTP status codes
type Handler struct {
	svc    service.QuoteService
	locale language.Tag
}

// NewHandler constructs a Handler. defaultLocale is used when the request
// carries neither a lang parameter nor a usable Accept-Language header.
func NewHandler(svc service.QuoteService, defaultLocale string) *Handler {
	return &Handler{svc: svc, locale: money.ParseTag(defaultLocale)}
}

// GetQuote godoc
// @Summary      Quote a loan
// @Description  Computes the fixed monthly payment, total interest and total payment. Missing parameters fall back to the product defaults.
// @Tags         quotes
// @Produce      json
// @Param        product    query     string  false  "Loan product"                  example(personal)
// @Param        principal  query     number  false  "Amount borrowed"               example(10000)
// @Param        rate       query     number  false  "Annual interest rate percent"  example(5.9)
// @Param        term       query     int     false  "Term in months"                example(36)
// @Param        lang       query     string  false  "Display locale"                example(en-US)
// @Success      200        {object}  dto.QuoteResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/v1/quote [get]
func (h *Handler) GetQuote(c *gin.Context) {
	in, err := parseQuoteQuery(c, true)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	q, err := h.svc.Quote(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.quoteResponse(c, *q))
}

// CreateQuote godoc
// @Summary      Quote and record a loan
// @Description  Same as GET /api/v1/quote but the quote is stored in the history.
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        request  body      dto.QuoteRequest  true  "Quote request"
// @Param        lang     query     string            false "Display locale"  example(es)
// @Success      201      {object}  dto.QuoteResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/quotes [post]
func (h *Handler) CreateQuote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	in := service.QuoteInput{
		Product:           req.Product,
		Principal:         req.Principal,
		AnnualRatePercent: req.AnnualRatePercent,
		TermMonths:        req.TermMonths,
	}

	q, err := h.svc.Record(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, h.quoteResponse(c, *q))
}

// RecentQuotes godoc
// @Summary      List recorded quotes
// @Description  Returns the most recently recorded quotes, newest first.
// @Tags         quotes
// @Produce      json
// @Param        limit  query     int  false  "Maximum number of quotes (1-100)"  example(20)
// @Success      200    {object}  dto.RecentQuotesResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      503    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /api/v1/quotes/recent [get]
func (h *Handler) RecentQuotes(c *gin.Context) {
	limit := 0
	if s := strings.TrimSpace(c.Query("limit")); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > service.MaxRecentLimit {
			middleware.AbortWithError(c, http.StatusBadRequest, "limit must be an integer between 1 and 100", err)
			return
		}
		limit = n
	}

	quotes, err := h.svc.Recent(c.Request.Context(), limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	if quotes == nil {
		quotes = []models.Quote{}
	}
	c.JSON(http.StatusOK, dto.RecentQuotesResponse{
		Quotes:      quotes,
		Count:       len(quotes),
		GeneratedAt: time.Now().UTC(),
	})
}

// GetSchedule godoc
// @Summary      Amortization schedule
// @Description  Returns the quote together with its month-by-month breakdown. Due dates roll forward to the next business day.
// @Tags         quotes
// @Produce      json
// @Param        product     query     string  false  "Loan product"                  example(auto)
// @Param        principal   query     number  false  "Amount borrowed"               example(20000)
// @Param        rate        query     number  false  "Annual interest rate percent"  example(4.5)
// @Param        term        query     int     false  "Term in months"                example(60)
// @Param        start_date  query     string  false  "Loan start date (YYYY-MM-DD)"  example(2025-11-25)
// @Param        lang        query     string  false  "Display locale"                example(en-US)
// @Success      200         {object}  dto.ScheduleResponse
// @Failure      400         {object}  dto.ErrorResponse
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /api/v1/schedule [get]
func (h *Handler) GetSchedule(c *gin.Context) {
	in, err := parseQuoteQuery(c, true)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	var start time.Time
	if s := strings.TrimSpace(c.Query("start_date")); s != "" {
		start, err = time.Parse("2006-01-02", s)
		if err != nil {
			middleware.AbortWithError(c, http.StatusBadRequest, "invalid start_date format, expected YYYY-MM-DD", err)
			return
		}
	}

	q, sched, err := h.svc.Schedule(c.Request.Context(), in, start)
	if err != nil {
		h.fail(c, err)
		return
	}
	installments := sched.Installments
	if installments == nil {
		installments = []amortization.Installment{}
	}
	c.JSON(http.StatusOK, dto.ScheduleResponse{
		Quote:        h.quoteResponse(c, *q),
		Installments: installments,
	})
}

// CompareTerms godoc
// @Summary      Compare standard terms
// @Description  Quotes the same principal and rate over every standard term (12 to 360 months).
// @Tags         quotes
// @Produce      json
// @Param        product    query     string  false  "Loan product"                  example(mortgage)
// @Param        principal  query     number  false  "Amount borrowed"               example(250000)
// @Param        rate       query     number  false  "Annual interest rate percent"  example(3.5)
// @Param        lang       query     string  false  "Display locale"                example(es)
// @Success      200        {object}  dto.CompareResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      500        {object}  dto.ErrorResponse
// @Router       /api/v1/compare [get]
func (h *Handler) CompareTerms(c *gin.Context) {
	in, err := parseQuoteQuery(c, false)
	if err != nil {
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	quotes, err := h.svc.CompareTerms(c.Request.Context(), in)
	if err != nil {
		h.fail(c, err)
		return
	}

	f := h.formatter(c)
	resp := dto.CompareResponse{Terms: make([]dto.CompareRow, 0, len(quotes))}
	for i, q := range quotes {
		if i == 0 {
			resp.Product = q.Product
			resp.Principal = q.Principal
			resp.AnnualRatePercent = q.AnnualRatePercent
		}
		resp.Terms = append(resp.Terms, dto.CompareRow{
			TermMonths:     q.TermMonths,
			MonthlyPayment: q.MonthlyPayment,
			TotalInterest:  q.TotalInterest,
			TotalPayment:   q.TotalPayment,
			Display:        display(f, q),
		})
	}
	c.JSON(http.StatusOK, resp)
}

// ListProducts godoc
// @Summary      Loan products
// @Description  Lists the loan products with their default rates, the standard terms and the calculator defaults.
// @Tags         products
// @Produce      json
// @Success      200  {object}  dto.ProductsResponse
// @Router       /api/v1/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ProductsResponse{
		Products:          h.svc.Products(),
		StandardTerms:     models.StandardTerms,
		DefaultProduct:    models.DefaultProduct,
		DefaultPrincipal:  models.DefaultPrincipal,
		DefaultTermMonths: models.DefaultTermMonths,
	})
}

// fail maps service errors onto status codes.
func (h *Handler) fail(c *gin.Context, err error) {
	var vErr *amortization.ValidationError
	switch {
	case errors.As(err, &vErr), errors.Is(err, service.ErrUnknownProduct):
		middleware.AbortWithError(c, http.StatusBadRequest, "invalid quote request", err)
	case errors.Is(err, service.ErrHistoryUnavailable):
		middleware.AbortWithError(c, http.StatusServiceUnavailable, "quote history unavailable", err)
	default:
		middleware.AbortWithError(c, http.StatusInternalServerError, "failed to process quote", err)
	}
}

// formatter resolves the display locale: lang parameter first, then
// Accept-Language, then the configured default.
func (h *Handler) formatter(c *gin.Context) *money.Formatter {
	tag := h.locale
	if lang := c.Query("lang"); lang != "" {
		tag = money.ResolveTag(lang, h.locale)
	} else if al := c.GetHeader("Accept-Language"); al != "" {
		tag = money.MatchAcceptLanguage(al, h.locale)
	}
	return money.NewFormatter(tag)
}

func (h *Handler) quoteResponse(c *gin.Context, q models.Quote) dto.QuoteResponse {
	return dto.QuoteResponse{Quote: q, Display: display(h.formatter(c), q)}
}

func display(f *money.Formatter, q models.Quote) dto.Display {
	return dto.Display{
		Locale:         f.Locale(),
		Principal:      f.Format(q.Principal),
		MonthlyPayment: f.Format(q.MonthlyPayment),
		TotalInterest:  f.Format(q.TotalInterest),
		TotalPayment:   f.Format(q.TotalPayment),
	}
}
