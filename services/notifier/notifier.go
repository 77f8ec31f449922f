package notifier

import (
	"context"

	"gmonteiro/olxwatcher/internal/listing"
)

// Notifier represents a service for delivering one alert per qualifying
// listing
type Notifier interface {
	// Notify formats and delivers a single alert. price is the resolved
	// display amount; it is ignored when donation is true.
	Notify(ctx context.Context, l *listing.Listing, price float64, donation bool) error
}
