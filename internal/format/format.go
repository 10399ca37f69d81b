package format

import (
	"fmt"
	"strings"
	"time"
)

// Currency formats amount in minor units for the currencies offerings are priced in.
// Whole amounts drop the fractional part.
// Example: Currency(120000, "INR") => "₹1,200"
func Currency(minor int64, currency string) string {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	neg := minor < 0
	if neg {
		minor = -minor
	}
	var out string
	switch currency {
	case "INR":
		out = "₹" + withFraction(minor, indianSep)
	case "USD":
		out = "$" + withFraction(minor, thousandSep)
	case "JPY":
		out = "¥" + thousandSep(minor)
	default:
		out = currency + " " + withFraction(minor, thousandSep)
	}
	if neg {
		return "-" + out
	}
	return out
}

func withFraction(minor int64, sep func(int64) string) string {
	major, cents := minor/100, minor%100
	if cents == 0 {
		return sep(major)
	}
	return fmt.Sprintf("%s.%02d", sep(major), cents)
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// indianSep groups the last three digits, then pairs: 12,34,567.
func indianSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var b strings.Builder
	for i, c := range head {
		if i != 0 && (len(head)-i)%2 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String() + "," + tail
}

// Year returns the calendar year used in the footer copyright line.
func Year(t time.Time) int {
	if t.IsZero() {
		t = time.Now()
	}
	return t.Year()
}
