// Package extract locates and decodes the structured-data block the
// search page embeds, avoiding fragile markup scraping.
package extract

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"gmonteiro/olxwatcher/internal/listing"
	"gmonteiro/olxwatcher/pkg/errors"
)

// dataScriptSelector identifies the single script element carrying the
// page's serialized dataset
const dataScriptSelector = "script#__NEXT_DATA__"

// pageData mirrors the subset of the embedded JSON document we read.
// Unknown fields are ignored by construction.
type pageData struct {
	Props struct {
		PageProps struct {
			Ads []listing.Listing `json:"ads"`
		} `json:"pageProps"`
	} `json:"props"`
}

// Listings parses the page markup and returns the listing candidates from
// its embedded structured-data block, in document order.
func Listings(body io.Reader) ([]listing.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, errors.NewExtraction("extract", "failed to parse HTML document", err)
	}

	script := doc.Find(dataScriptSelector)
	if script.Length() == 0 {
		return nil, errors.NewExtraction("extract", "structured-data block not found", nil)
	}

	payload := strings.TrimSpace(script.First().Text())
	if payload == "" {
		return nil, errors.NewExtraction("extract", "structured-data block is empty", nil)
	}

	var data pageData
	if err := json.Unmarshal([]byte(payload), &data); err != nil {
		return nil, errors.NewExtraction("extract", "failed to decode structured-data block", err)
	}

	return data.Props.PageProps.Ads, nil
}
