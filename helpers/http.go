package helpers

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"

	"gmonteiro/olxwatcher/pkg/errors"
)

// HTTP client with an explicit timeout; the source site applies none of its own
var client = &http.Client{
	Timeout: 20 * time.Second,
}

// SetTimeout overrides the default request timeout
func SetTimeout(d time.Duration) {
	client.Timeout = d
}

// FetchPage sends an HTTP GET with a browser-identifying User-Agent,
// converts the response body to UTF-8 (if needed), and returns it as an
// io.Reader. The site rejects default client signatures, so the header
// is mandatory.
func FetchPage(ctx context.Context, url, userAgent string) (io.Reader, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.NewNetwork("fetch", "failed to create request", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "pt-BR,pt;q=0.9,en-US;q=0.8,en;q=0.7")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.NewNetwork("fetch", "failed to fetch URL", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewHTTPStatus("fetch", resp.StatusCode)
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetwork("fetch", "failed to read response body", err)
	}

	// Determine the encoding from Content-Type header and body content
	encoding, name, _ := charset.DetermineEncoding(bodyBytes, resp.Header.Get("Content-Type"))
	if name == "utf-8" || name == "UTF-8" {
		return bytes.NewReader(bodyBytes), nil
	}

	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(bodyBytes))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return nil, errors.NewNetwork("fetch", "failed to read converted UTF-8 body", err)
	}

	return &buf, nil
}
