package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gmonteiro/olxwatcher/config"
	"gmonteiro/olxwatcher/services/monitor"
	"gmonteiro/olxwatcher/services/notifier"
	"gmonteiro/olxwatcher/services/seenstore"
)

// searchPage is a minimal search-results page in the source site's shape:
// three candidates — one missing its url, one priced above the ceiling,
// one in-scope at R$ 1.500.
const searchPage = `
<!DOCTYPE html>
<html>
<head><title>Busca - gatos</title></head>
<body>
	<div id="listing-main">decorative markup</div>
	<script id="__NEXT_DATA__" type="application/json">
	{
		"props": {
			"pageProps": {
				"ads": [
					{
						"listId": 1001,
						"subject": "Gato angorá sem link",
						"price": "R$ 900",
						"url": "",
						"location": "Piracicaba/SP"
					},
					{
						"listId": 1002,
						"subject": "Gato angorá caríssimo",
						"price": "R$ 4.000",
						"url": "https://www.olx.com.br/d/anuncio/1002",
						"location": "Piracicaba/SP"
					},
					{
						"listId": 1003,
						"subject": "Gato angorá filhote",
						"price": "R$ 1.500",
						"url": "https://www.olx.com.br/d/anuncio/1003",
						"location": "Piracicaba/SP"
					}
				]
			}
		}
	}
	</script>
</body>
</html>
`

func TestEndToEndCycle(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(searchPage))
	}))
	defer source.Close()

	var deliveries []string
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var msg struct {
			Content string `json:"content"`
		}
		require.NoError(t, json.Unmarshal(body, &msg))
		deliveries = append(deliveries, msg.Content)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer webhook.Close()

	cacheFile := filepath.Join(t.TempDir(), "sent_ads.json")
	cfg := config.Config{
		SearchURL:    source.URL,
		UserAgent:    "Mozilla/5.0 test",
		PriceCeiling: 3000,
		RegionCode:   "SP",
		WebhookURL:   webhook.URL,
		SeenBackend:  config.SeenBackendFile,
		CacheFile:    cacheFile,
	}
	require.NoError(t, cfg.Validate())

	store := seenstore.NewFileStore(cfg.CacheFile)
	m := monitor.NewMonitor(cfg, store, notifier.NewDiscordNotifier(cfg.WebhookURL), nil)

	// First run: exactly one notification, cache grows by one identifier
	count, err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, deliveries, 1)
	assert.Contains(t, deliveries[0], "Gato angorá filhote")
	assert.Contains(t, deliveries[0], "R$ 1500.00")

	data, err := os.ReadFile(cacheFile)
	require.NoError(t, err)
	assert.JSONEq(t, "[1003]", string(data))

	// Second run against the unchanged page: zero new notifications
	count, err = m.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Len(t, deliveries, 1)
}

func TestEndToEndAbortLeavesCacheUntouched(t *testing.T) {
	source := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>page without the data block</body></html>")
	}))
	defer source.Close()

	cacheFile := filepath.Join(t.TempDir(), "sent_ads.json")
	cfg := config.Config{
		SearchURL:    source.URL,
		UserAgent:    "Mozilla/5.0 test",
		PriceCeiling: 3000,
		RegionCode:   "SP",
		WebhookURL:   "https://discord.invalid/webhook",
		SeenBackend:  config.SeenBackendFile,
		CacheFile:    cacheFile,
	}

	store := seenstore.NewFileStore(cfg.CacheFile)
	m := monitor.NewMonitor(cfg, store, notifier.NewDiscordNotifier(cfg.WebhookURL), nil)

	_, err := m.Run(context.Background())
	require.Error(t, err)

	// The load happened but save never did
	_, statErr := os.Stat(cacheFile)
	assert.True(t, os.IsNotExist(statErr))
}
