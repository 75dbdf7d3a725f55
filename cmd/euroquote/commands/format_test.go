package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/euroquote/internal/contracts"
)

func TestPrintDetailedQuote(t *testing.T) {
	var buf bytes.Buffer
	ref := contracts.InstrumentRef{ISIN: "NL0012969182", Market: "XAMS"}

	PrintDetailedQuote(&buf, ref, contracts.DetailedQuote{InstrumentName: "ADYEN", InstrumentPrice: 1234.5})

	out := buf.String()
	assert.Contains(t, out, "NL0012969182-XAMS")
	assert.Contains(t, out, "ADYEN")
	assert.Contains(t, out, "1234.5")
}

func TestPrintFullDetailedQuote(t *testing.T) {
	var buf bytes.Buffer
	ref := contracts.InstrumentRef{ISIN: "NL0012969182", Market: "XAMS"}

	PrintFullDetailedQuote(&buf, ref, contracts.FullDetailedQuote{WeekLow: 980, WeekHigh: 1650.25})

	out := buf.String()
	assert.Contains(t, out, "980")
	assert.Contains(t, out, "1650.25")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintJSON(&buf, contracts.DetailedQuote{InstrumentName: "ADYEN", InstrumentPrice: 1234.5}))

	var got contracts.DetailedQuote
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "ADYEN", got.InstrumentName)
}

func TestInstrumentArgs(t *testing.T) {
	ref, err := instrumentArgs([]string{" NL0012969182 ", "XAMS"})
	require.NoError(t, err)
	assert.Equal(t, "NL0012969182", ref.ISIN)

	_, err = instrumentArgs([]string{"", "XAMS"})
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "1234.5", formatNumber(1234.5))
	assert.Equal(t, "980", formatNumber(980))
}
