package commands

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstream serves a minimal live and full page and counts requests
func upstream(t *testing.T, hits *int32) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Write([]byte(`<h1 id="header-instrument-name">ADYEN</h1>
<span id="header-instrument-price">1,234.5</span>
<table><tr><td>52 Week</td><td>980 1,650.25</td></tr></table>`))
	}))
	t.Cleanup(server.Close)

	t.Setenv("ENV", "development")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_FILE", "")
	t.Setenv("EURONEXT_TIMEOUT", "5s")
	t.Setenv("EURONEXT_LIVE_QUOTE_URL", server.URL+"/live")
	t.Setenv("EURONEXT_FULL_QUOTE_URL", server.URL+"/full")
	return server
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	return cmd, &out
}

func setQuoteFlags(t *testing.T, save, asJSON bool) {
	t.Helper()
	prevSave, prevJSON := quoteSave, quoteJSON
	quoteSave, quoteJSON = save, asJSON
	t.Cleanup(func() { quoteSave, quoteJSON = prevSave, prevJSON })
}

func TestRunQuote_SaveWithoutDatabaseSkipsFetch(t *testing.T) {
	var hits int32
	upstream(t, &hits)
	setQuoteFlags(t, true, false)

	for name, run := range map[string]func(*cobra.Command, []string) error{
		"quote":      runQuote,
		"full-quote": runFullQuote,
	} {
		t.Run(name, func(t *testing.T) {
			cmd, _ := testCommand()

			err := run(cmd, []string{"NL0012969182", "XAMS"})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "DATABASE_URL")
		})
	}

	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestRunQuote_PrintsJSON(t *testing.T) {
	var hits int32
	upstream(t, &hits)
	setQuoteFlags(t, false, true)

	cmd, out := testCommand()
	require.NoError(t, runQuote(cmd, []string{"NL0012969182", "XAMS"}))

	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
	assert.Contains(t, out.String(), `"instrument_price": 1234.5`)
}

func TestRunFullQuote_PrintsRange(t *testing.T) {
	var hits int32
	upstream(t, &hits)
	setQuoteFlags(t, false, false)

	cmd, out := testCommand()
	require.NoError(t, runFullQuote(cmd, []string{"NL0012969182", "XAMS"}))

	assert.Contains(t, out.String(), "1650.25")
}
