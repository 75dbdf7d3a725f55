package euronext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDocument_ByID(t *testing.T) {
	doc, err := ParseDocument(`<div><h1 id="header-instrument-name"> <strong>ADYEN</strong> </h1>` +
		`<span id="header-instrument-price">1,234.5</span></div>`)
	require.NoError(t, err)

	name, ok := doc.ByID("header-instrument-name")
	require.True(t, ok)
	assert.Equal(t, " ADYEN ", name.Text())
	assert.Equal(t, " <strong>ADYEN</strong> ", name.InnerHTML())

	price, ok := doc.ByID("header-instrument-price")
	require.True(t, ok)
	assert.Equal(t, "1,234.5", price.InnerHTML())

	_, ok = doc.ByID("missing")
	assert.False(t, ok)
}

func TestParseDocument_ByTagKeepsDocumentOrder(t *testing.T) {
	doc, err := ParseDocument(`
<table>
  <tr><td>a</td><td>b</td></tr>
</table>
<table>
  <tr><td>c</td></tr>
</table>`)
	require.NoError(t, err)

	nodes := doc.ByTag("td")
	require.Len(t, nodes, 3)
	assert.Equal(t, "a", nodes[0].Text())
	assert.Equal(t, "b", nodes[1].Text())
	assert.Equal(t, "c", nodes[2].Text())

	assert.Empty(t, doc.ByTag("th"))
}

func TestParseDocument_Empty(t *testing.T) {
	doc, err := ParseDocument("")
	require.NoError(t, err)

	_, ok := doc.ByID("header-instrument-name")
	assert.False(t, ok)
	assert.Empty(t, doc.ByTag("td"))
}
