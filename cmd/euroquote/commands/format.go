package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/wonny/euroquote/internal/contracts"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// 모든 커맨드가 동일한 출력 포맷을 사용하도록 통일
// ═══════════════════════════════════════════════════════════

const keyWidth = 10

// PrintHeader prints a titled block header
func PrintHeader(w io.Writer, title string) {
	PrintDoubleSeparator(w)
	fmt.Fprintf(w, "  %s\n", title)
	PrintSeparator(w)
}

// PrintSeparator prints a visual separator
func PrintSeparator(w io.Writer) {
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────")
}

// PrintDoubleSeparator prints a double-line separator
func PrintDoubleSeparator(w io.Writer) {
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════")
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, message string) {
	fmt.Fprintf(w, "✅ %s\n", message)
}

// PrintError prints an error message
func PrintError(w io.Writer, message string) {
	fmt.Fprintf(w, "❌ %s\n", message)
}

// PrintInfo prints an info message
func PrintInfo(w io.Writer, message string) {
	fmt.Fprintf(w, "ℹ️  %s\n", message)
}

// PrintKeyValue prints key-value pairs
func PrintKeyValue(w io.Writer, key string, value string) {
	fmt.Fprintf(w, "   %-*s : %s\n", keyWidth, key, value)
}

// PrintList prints a bulleted list
func PrintList(w io.Writer, items []string) {
	for _, item := range items {
		fmt.Fprintf(w, "   • %s\n", item)
	}
}

// PrintJSON prints v as indented JSON
func PrintJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// PrintDetailedQuote renders a live quote block
func PrintDetailedQuote(w io.Writer, ref contracts.InstrumentRef, q contracts.DetailedQuote) {
	PrintHeader(w, "Detailed Quote")
	PrintKeyValue(w, "Instrument", ref.String())
	PrintKeyValue(w, "Name", q.InstrumentName)
	PrintKeyValue(w, "Price", formatNumber(q.InstrumentPrice))
	PrintSeparator(w)
}

// PrintFullDetailedQuote renders a 52-week range block
func PrintFullDetailedQuote(w io.Writer, ref contracts.InstrumentRef, q contracts.FullDetailedQuote) {
	PrintHeader(w, "Full Detailed Quote")
	PrintKeyValue(w, "Instrument", ref.String())
	PrintKeyValue(w, "52W Low", formatNumber(q.WeekLow))
	PrintKeyValue(w, "52W High", formatNumber(q.WeekHigh))
	PrintSeparator(w)
}

// formatNumber prints the shortest representation that round-trips
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
