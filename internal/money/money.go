// Package money renders amounts for display. It is a presentation helper:
// calculations always work on raw float64 values.
package money

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Supported lists the locales quotes can be displayed in, preferred first.
var Supported = []language.Tag{
	language.AmericanEnglish,
	language.Spanish,
}

var matcher = language.NewMatcher(Supported)

// ResolveTag maps a raw locale string (e.g. "es-MX", "en") onto a supported
// tag. Empty or unparsable input resolves to fallback.
func ResolveTag(raw string, fallback language.Tag) language.Tag {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return fallback
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}

// MatchAcceptLanguage picks the best supported tag for an HTTP
// Accept-Language header, or fallback when nothing matches.
func MatchAcceptLanguage(header string, fallback language.Tag) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == language.No {
		return fallback
	}
	return Supported[idx]
}

// ParseTag parses a configured locale, defaulting to American English.
func ParseTag(raw string) language.Tag {
	return ResolveTag(raw, language.AmericanEnglish)
}

// Formatter formats USD amounts for one locale.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter returns a formatter for tag.
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Locale returns the BCP 47 tag the formatter renders for.
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// Format renders amount as dollars with two decimals and locale grouping,
// e.g. "$10,935.59" for en-US and "$10.935,59" for es.
func (f *Formatter) Format(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		amount = 0
	}
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return sign + "$" + f.printer.Sprintf("%.2f", amount)
}

// Format is a shorthand for NewFormatter(tag).Format(amount).
func Format(tag language.Tag, amount float64) string {
	return NewFormatter(tag).Format(amount)
}
