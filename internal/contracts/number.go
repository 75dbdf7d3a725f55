package contracts

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParseLocaleNumber converts Euronext-formatted text such as "1,234.56" to a float64.
// Commas are thousands separators and are dropped. The result is NOT validated:
// text that is not a number yields NaN and overflow yields ±Inf, so callers
// must go through the quote constructors to reject it.
func ParseLocaleNumber(text string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(text, ",", ""))
	if s == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v // ±Inf on overflow, 0 on underflow
		}
		return math.NaN()
	}
	return v
}

// isFinite reports whether v is neither NaN nor ±Inf
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
