package euronext

import (
	"context"
	"fmt"

	"github.com/wonny/euroquote/internal/contracts"
)

// Quoter is the quote surface consumed by the API and the watcher
type Quoter interface {
	GetDetailedQuote(ctx context.Context, isin, market string) (contracts.DetailedQuote, error)
	GetFullDetailedQuote(ctx context.Context, isin, market string) (contracts.FullDetailedQuote, error)
}

var _ Quoter = (*Client)(nil)

// GetDetailedQuote fetches the live quote page and extracts name and price
func (c *Client) GetDetailedQuote(ctx context.Context, isin, market string) (contracts.DetailedQuote, error) {
	ref := contracts.InstrumentRef{ISIN: isin, Market: market}

	html, err := c.fetchLiveHTML(ctx, ref)
	if err != nil {
		return contracts.DetailedQuote{}, err
	}

	quote, err := ExtractDetailedQuote(html)
	if err != nil {
		return contracts.DetailedQuote{}, fmt.Errorf("detailed quote %s: %w", ref, err)
	}
	return quote, nil
}

// GetFullDetailedQuote fetches the full quote page and extracts the 52-week range
func (c *Client) GetFullDetailedQuote(ctx context.Context, isin, market string) (contracts.FullDetailedQuote, error) {
	ref := contracts.InstrumentRef{ISIN: isin, Market: market}

	html, err := c.fetchFullHTML(ctx, ref)
	if err != nil {
		return contracts.FullDetailedQuote{}, err
	}

	quote, err := ExtractFullDetailedQuote(html)
	if err != nil {
		return contracts.FullDetailedQuote{}, fmt.Errorf("full quote %s: %w", ref, err)
	}
	return quote, nil
}

// ExtractDetailedQuote parses a live quote page
func ExtractDetailedQuote(html string) (contracts.DetailedQuote, error) {
	doc, err := ParseDocument(html)
	if err != nil {
		return contracts.DetailedQuote{}, err
	}

	name, err := LocateInstrumentName(doc)
	if err != nil {
		return contracts.DetailedQuote{}, err
	}

	price, err := LocateInstrumentPrice(doc)
	if err != nil {
		return contracts.DetailedQuote{}, err
	}

	return contracts.NewDetailedQuote(name, price)
}

// ExtractFullDetailedQuote parses a full quote page
func ExtractFullDetailedQuote(html string) (contracts.FullDetailedQuote, error) {
	doc, err := ParseDocument(html)
	if err != nil {
		return contracts.FullDetailedQuote{}, err
	}

	low, high, err := LocateWeekRange(doc)
	if err != nil {
		return contracts.FullDetailedQuote{}, err
	}

	return contracts.NewFullDetailedQuote(low, high)
}
