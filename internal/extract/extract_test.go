package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPage = `
<!DOCTYPE html>
<html>
<head><title>Busca</title></head>
<body>
	<div id="app">placeholder markup the extractor must ignore</div>
	<script id="__NEXT_DATA__" type="application/json">
	{
		"props": {
			"pageProps": {
				"ads": [
					{
						"listId": 111,
						"subject": "Gato angorá filhote",
						"price": "R$ 150",
						"url": "https://www.olx.com.br/d/anuncio/111",
						"location": "Piracicaba/SP",
						"properties": [
							{"name": "donate", "label": "Doação", "value": "Não"}
						],
						"unknownField": {"nested": true}
					},
					{
						"listId": 222,
						"subject": "Gato persa",
						"url": "https://www.olx.com.br/d/anuncio/222",
						"location": "Campinas/SP",
						"advertisingId": "adn-1"
					}
				]
			},
			"anotherUnknown": [1, 2, 3]
		}
	}
	</script>
</body>
</html>
`

func TestListings(t *testing.T) {
	ads, err := Listings(strings.NewReader(testPage))
	require.NoError(t, err)
	require.Len(t, ads, 2)

	// Document order is preserved
	assert.Equal(t, int64(111), ads[0].ListID)
	assert.Equal(t, "Gato angorá filhote", ads[0].Subject)
	assert.Equal(t, "R$ 150", ads[0].Price)
	assert.Equal(t, "Piracicaba/SP", ads[0].Location)
	require.Len(t, ads[0].Properties, 1)
	assert.Equal(t, "donate", ads[0].Properties[0].Name)

	// Missing price stays absent; sponsored identifier survives decoding
	assert.Equal(t, "", ads[1].Price)
	assert.Equal(t, "adn-1", ads[1].AdvertisingID)
}

func TestListingsMissingBlock(t *testing.T) {
	_, err := Listings(strings.NewReader("<html><body><p>no data here</p></body></html>"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "structured-data block not found")
}

func TestListingsEmptyBlock(t *testing.T) {
	page := `<html><body><script id="__NEXT_DATA__" type="application/json">  </script></body></html>`
	_, err := Listings(strings.NewReader(page))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "empty")
}

func TestListingsMalformedJSON(t *testing.T) {
	page := `<html><body><script id="__NEXT_DATA__" type="application/json">{"props": {</script></body></html>`
	_, err := Listings(strings.NewReader(page))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode")
}

func TestListingsNoAds(t *testing.T) {
	page := `<html><body><script id="__NEXT_DATA__" type="application/json">{"props":{"pageProps":{"ads":[]}}}</script></body></html>`
	ads, err := Listings(strings.NewReader(page))
	require.NoError(t, err)
	assert.Empty(t, ads)
}
