package euronext

import (
	"strings"

	"github.com/wonny/euroquote/internal/contracts"
)

// Element ids and labels observed on the Euronext pages.
const (
	instrumentNameID  = "header-instrument-name"
	instrumentPriceID = "header-instrument-price"
	weekRangeMarker   = "52 Week"
)

// Positions of the bounds inside the whitespace-split range cell.
// The cell renders as "<low> <high>", e.g. "1,500.00  2,300.00".
// If Euronext changes that rendering, only these two values move.
const (
	weekLowToken  = 0
	weekHighToken = 1
)

// LocateInstrumentName returns the trimmed text of the instrument name header
func LocateInstrumentName(doc Document) (string, error) {
	node, ok := doc.ByID(instrumentNameID)
	if !ok {
		return "", &contracts.SelectorNotFoundError{Selector: "#" + instrumentNameID}
	}
	return strings.TrimSpace(node.Text()), nil
}

// LocateInstrumentPrice returns the raw inner markup of the price header, unparsed
func LocateInstrumentPrice(doc Document) (string, error) {
	node, ok := doc.ByID(instrumentPriceID)
	if !ok {
		return "", &contracts.SelectorNotFoundError{Selector: "#" + instrumentPriceID}
	}
	return node.InnerHTML(), nil
}

// LocateWeekRange finds the first cell labelled "52 Week" and splits the cell after it.
// A missing position comes back as "" and is rejected when the quote is built.
func LocateWeekRange(doc Document) (low, high string, err error) {
	cells := doc.ByTag("td")

	for i, cell := range cells {
		if strings.TrimSpace(cell.Text()) != weekRangeMarker {
			continue
		}
		if i+1 >= len(cells) {
			break
		}

		tokens := strings.Fields(cells[i+1].Text())
		return tokenAt(tokens, weekLowToken), tokenAt(tokens, weekHighToken), nil
	}

	return "", "", &contracts.MarkerNotFoundError{Marker: weekRangeMarker}
}

func tokenAt(tokens []string, i int) string {
	if i < len(tokens) {
		return tokens[i]
	}
	return ""
}
