package euronext

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/euroquote/internal/contracts"
)

// fakeNode and fakeDocument build synthetic trees without any markup
type fakeNode struct {
	text  string
	inner string
}

func (n fakeNode) Text() string      { return n.text }
func (n fakeNode) InnerHTML() string { return n.inner }

type fakeDocument struct {
	ids  map[string]Node
	tags map[string][]Node
}

func (d fakeDocument) ByID(id string) (Node, bool) {
	n, ok := d.ids[id]
	return n, ok
}

func (d fakeDocument) ByTag(tag string) []Node {
	return d.tags[tag]
}

func cells(texts ...string) fakeDocument {
	nodes := make([]Node, 0, len(texts))
	for _, t := range texts {
		nodes = append(nodes, fakeNode{text: t, inner: t})
	}
	return fakeDocument{tags: map[string][]Node{"td": nodes}}
}

func TestLocateInstrumentName(t *testing.T) {
	doc := fakeDocument{ids: map[string]Node{
		"header-instrument-name": fakeNode{text: "\n  ADYEN \t"},
	}}

	name, err := LocateInstrumentName(doc)
	require.NoError(t, err)
	assert.Equal(t, "ADYEN", name)
}

func TestLocateInstrumentName_Missing(t *testing.T) {
	_, err := LocateInstrumentName(fakeDocument{})

	var selErr *contracts.SelectorNotFoundError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "#header-instrument-name", selErr.Selector)
	assert.True(t, errors.Is(err, contracts.ErrQuoteNotFound))
}

func TestLocateInstrumentPrice_ReturnsInnerHTML(t *testing.T) {
	doc := fakeDocument{ids: map[string]Node{
		"header-instrument-price": fakeNode{text: "1,234.5", inner: " 1,234.5 "},
	}}

	price, err := LocateInstrumentPrice(doc)
	require.NoError(t, err)
	assert.Equal(t, " 1,234.5 ", price)
}

func TestLocateInstrumentPrice_Missing(t *testing.T) {
	_, err := LocateInstrumentPrice(fakeDocument{})

	var selErr *contracts.SelectorNotFoundError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, "#header-instrument-price", selErr.Selector)
}

func TestLocateWeekRange(t *testing.T) {
	tests := []struct {
		name     string
		doc      fakeDocument
		wantLow  string
		wantHigh string
	}{
		{
			name:     "range after marker",
			doc:      cells("Open", "1,200.00", "52 Week", "1,500.00  2,300.00"),
			wantLow:  "1,500.00",
			wantHigh: "2,300.00",
		},
		{
			name:     "marker with surrounding whitespace",
			doc:      cells("\n 52 Week \n", "\n  10.5\n\t 12 \n"),
			wantLow:  "10.5",
			wantHigh: "12",
		},
		{
			name:     "first marker wins",
			doc:      cells("52 Week", "1 2", "52 Week", "3 4"),
			wantLow:  "1",
			wantHigh: "2",
		},
		{
			name:     "extra tokens ignored",
			doc:      cells("52 Week", "5 6 (EUR)"),
			wantLow:  "5",
			wantHigh: "6",
		},
		{
			name:     "single token leaves high empty",
			doc:      cells("52 Week", "5"),
			wantLow:  "5",
			wantHigh: "",
		},
		{
			name:     "empty range cell",
			doc:      cells("52 Week", "   "),
			wantLow:  "",
			wantHigh: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high, err := LocateWeekRange(tt.doc)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLow, low)
			assert.Equal(t, tt.wantHigh, high)
		})
	}
}

func TestLocateWeekRange_MarkerNotFound(t *testing.T) {
	tests := []struct {
		name string
		doc  fakeDocument
	}{
		{"no cells", fakeDocument{}},
		{"no marker", cells("Open", "1", "High", "2")},
		{"marker must match exactly", cells("52 Weeks", "1 2", "52 week", "3 4")},
		{"marker is last cell", cells("Open", "1", "52 Week")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			low, high, err := LocateWeekRange(tt.doc)

			var markerErr *contracts.MarkerNotFoundError
			require.True(t, errors.As(err, &markerErr))
			assert.Equal(t, "52 Week", markerErr.Marker)
			assert.Empty(t, low)
			assert.Empty(t, high)
		})
	}
}
