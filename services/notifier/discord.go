package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gmonteiro/olxwatcher/internal/listing"
	"gmonteiro/olxwatcher/pkg/errors"
)

// discordMessage is the webhook payload shape
type discordMessage struct {
	Content string `json:"content"`
}

// DiscordNotifier implements Notifier using a Discord webhook
type DiscordNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewDiscordNotifier creates a new Discord webhook notifier
func NewDiscordNotifier(webhookURL string) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Notify posts one message for the listing. Success is any 2xx response.
func (d *DiscordNotifier) Notify(ctx context.Context, l *listing.Listing, price float64, donation bool) error {
	msg := discordMessage{Content: formatMessage(l, price, donation)}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.NewDelivery("notify", "failed to serialize message", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.webhookURL, bytes.NewReader(body))
	if err != nil {
		return errors.NewDelivery("notify", "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return errors.NewDelivery("notify", "failed to call webhook", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.NewDelivery("notify", fmt.Sprintf("webhook returned status %d", resp.StatusCode), nil)
	}
	return nil
}

// formatMessage builds the human-readable alert text
func formatMessage(l *listing.Listing, price float64, donation bool) string {
	priceLine := fmt.Sprintf("💰 R$ %.2f", price)
	if donation {
		priceLine = "🎁 DOAÇÃO"
	}
	return fmt.Sprintf("**%s**\n%s\n📍 %s\n🔗 %s", l.Subject, priceLine, l.Location, l.URL)
}
