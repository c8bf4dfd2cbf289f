// Package format holds the pure display formatters shared by every
// generated document. All helpers degrade gracefully: bad input yields
// partial or empty output, never an error, so a single malformed field
// cannot abort document generation.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// CurrencyMarker prefixes every monetary value in the document set.
const CurrencyMarker = "Rs"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// Date renders an ISO 8601 date or timestamp as a human-readable date.
// Empty input yields an empty string; unparseable input is returned
// as-is rather than dropped, so the document still shows something.
func Date(iso string) string {
	if iso == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("January 2, 2006")
		}
	}
	return iso
}

// Currency renders an amount with thousands separators and the shared
// currency marker, e.g. 1234567 -> "Rs 1,234,567". Fractional amounts
// keep two decimals; negative amounts keep their sign.
func Currency(amount float64) string {
	neg := ""
	if amount < 0 {
		neg = "-"
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	grouped := groupThousands(strconv.FormatInt(cents/100, 10))
	if frac := cents % 100; frac != 0 {
		return fmt.Sprintf("%s %s%s.%02d", CurrencyMarker, neg, grouped, frac)
	}
	return fmt.Sprintf("%s %s%s", CurrencyMarker, neg, grouped)
}

// Time converts a 24-hour "HH:MM" string to 12-hour form with an AM/PM
// suffix: "13:05" -> "1:05 PM", "0:30" -> "12:30 AM". Empty input
// yields empty output and malformed input degrades to "".
func Time(hhmm string) string {
	if hhmm == "" {
		return ""
	}
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return ""
	}
	hour, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || hour < 0 {
		return ""
	}
	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	hour12 := hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	return fmt.Sprintf("%d:%s %s", hour12, parts[1], suffix)
}

// SpaceCamelCase converts a compact identifier to spaced words by
// inserting a space before each capital letter: "spareTyre" ->
// "spare Tyre".
func SpaceCamelCase(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
