package contracts

import (
	"fmt"
	"strings"
)

// InstrumentRef identifies one instrument on one Euronext venue
// ⭐ SSOT: ISIN + 시장코드 조합은 여기서만 만든다
type InstrumentRef struct {
	ISIN   string `json:"isin" yaml:"isin"`
	Market string `json:"market" yaml:"market"`
}

// Key returns the "{isin}-{market}" path segment used by Euronext
func (r InstrumentRef) Key() string {
	return fmt.Sprintf("%s-%s", r.ISIN, r.Market)
}

func (r InstrumentRef) String() string {
	return r.Key()
}

// DetailedQuote is the live snapshot of an instrument.
// Build it with NewDetailedQuote; the zero value is not a valid quote.
type DetailedQuote struct {
	InstrumentName  string  `json:"instrument_name"`
	InstrumentPrice float64 `json:"instrument_price"`
}

// FullDetailedQuote holds the 52-week trading range.
// WeekLow <= WeekHigh is expected from correct upstream data but not enforced.
type FullDetailedQuote struct {
	WeekLow  float64 `json:"week_low"`
	WeekHigh float64 `json:"week_high"`
}

// NewDetailedQuote validates the located fragments and builds a DetailedQuote
// ⭐ SSOT: 가격 유효성 검사는 생성자에서만
func NewDetailedQuote(name, rawPrice string) (DetailedQuote, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return DetailedQuote{}, &EmptyFieldError{Field: "instrument_name"}
	}

	price, err := parseField("instrument_price", rawPrice)
	if err != nil {
		return DetailedQuote{}, err
	}

	return DetailedQuote{
		InstrumentName:  name,
		InstrumentPrice: price,
	}, nil
}

// NewFullDetailedQuote validates both range bounds independently
func NewFullDetailedQuote(rawLow, rawHigh string) (FullDetailedQuote, error) {
	low, err := parseField("week_low", rawLow)
	if err != nil {
		return FullDetailedQuote{}, err
	}

	high, err := parseField("week_high", rawHigh)
	if err != nil {
		return FullDetailedQuote{}, err
	}

	return FullDetailedQuote{WeekLow: low, WeekHigh: high}, nil
}

func parseField(field, raw string) (float64, error) {
	v := ParseLocaleNumber(raw)
	if !isFinite(v) {
		return 0, &InvalidNumberError{Field: field, Raw: raw}
	}
	return v, nil
}
