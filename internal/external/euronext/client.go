package euronext

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/wonny/euroquote/internal/contracts"
	"github.com/wonny/euroquote/pkg/config"
	"github.com/wonny/euroquote/pkg/httputil"
	"github.com/wonny/euroquote/pkg/logger"
)

// liveQuoteForm must be posted with the live quote request, otherwise Euronext answers with an empty body
var liveQuoteForm = url.Values{"theme_name": {"euronext_live"}}

// Client fetches and parses Euronext quote pages.
// It holds no mutable state and is safe for concurrent use.
// ⭐ SSOT: Euronext 페이지 호출은 이 클라이언트에서만
type Client struct {
	httpClient   *httputil.Client
	logger       *logger.Logger
	liveQuoteURL string
	fullQuoteURL string
}

// NewClient creates a new Euronext client
func NewClient(httpClient *httputil.Client, cfg config.EuronextConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient:   httpClient,
		logger:       log,
		liveQuoteURL: strings.TrimRight(cfg.LiveQuoteURL, "/"),
		fullQuoteURL: strings.TrimRight(cfg.FullQuoteURL, "/"),
	}
}

// liveQuoteEndpoint returns {live}/{isin}-{market}
func (c *Client) liveQuoteEndpoint(ref contracts.InstrumentRef) string {
	return fmt.Sprintf("%s/%s", c.liveQuoteURL, url.PathEscape(ref.Key()))
}

// fullQuoteEndpoint returns {full}/{isin}-{market}/full
func (c *Client) fullQuoteEndpoint(ref contracts.InstrumentRef) string {
	return fmt.Sprintf("%s/%s/full", c.fullQuoteURL, url.PathEscape(ref.Key()))
}

// fetchLiveHTML posts the live quote form and returns the page, whatever its status
func (c *Client) fetchLiveHTML(ctx context.Context, ref contracts.InstrumentRef) (string, error) {
	endpoint := c.liveQuoteEndpoint(ref)

	resp, err := c.httpClient.PostForm(ctx, endpoint, liveQuoteForm)
	if err != nil {
		return "", &contracts.TransportError{Op: http.MethodPost, URL: endpoint, Err: err}
	}

	return c.readPage(resp, http.MethodPost, endpoint)
}

// fetchFullHTML gets the intraday detail page, whatever its status
func (c *Client) fetchFullHTML(ctx context.Context, ref contracts.InstrumentRef) (string, error) {
	endpoint := c.fullQuoteEndpoint(ref)

	resp, err := c.httpClient.Get(ctx, endpoint)
	if err != nil {
		return "", &contracts.TransportError{Op: http.MethodGet, URL: endpoint, Err: err}
	}

	return c.readPage(resp, http.MethodGet, endpoint)
}

func (c *Client) readPage(resp *http.Response, method, endpoint string) (string, error) {
	if !httputil.IsSuccess(resp.StatusCode) {
		// the body is still parsed; a missing element surfaces as a lookup error
		c.logger.WithFields(map[string]interface{}{
			"url":         endpoint,
			"status_code": resp.StatusCode,
		}).Warn("Euronext returned non-2xx status")
	}

	body, err := httputil.ReadBody(resp)
	if err != nil {
		return "", &contracts.TransportError{Op: method, URL: endpoint, Err: err}
	}
	return body, nil
}
