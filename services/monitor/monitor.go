package monitor

import (
	"context"
	"encoding/json"

	"gmonteiro/olxwatcher/config"
	"gmonteiro/olxwatcher/helpers"
	"gmonteiro/olxwatcher/internal/extract"
	"gmonteiro/olxwatcher/internal/listing"
	"gmonteiro/olxwatcher/logger"
	"gmonteiro/olxwatcher/services/notifier"
	"gmonteiro/olxwatcher/services/publisher"
	"gmonteiro/olxwatcher/services/seenstore"
)

// Monitor runs one check cycle: fetch, extract, filter, notify, persist
type Monitor struct {
	cfg      config.Config
	store    seenstore.SeenStore
	notifier notifier.Notifier
	mirror   publisher.Publisher
	log      *logger.Logger
}

// NewMonitor creates a monitor. mirror may be nil when no stream fan-out
// is configured.
func NewMonitor(cfg config.Config, store seenstore.SeenStore, n notifier.Notifier, mirror publisher.Publisher) *Monitor {
	return &Monitor{
		cfg:      cfg,
		store:    store,
		notifier: n,
		mirror:   mirror,
		log:      logger.ForMonitor(),
	}
}

// Run executes a single pass and returns the count of newly-notified
// listings. An error return means the fetch/extract phase aborted; the
// seen store is left untouched in that case.
func (m *Monitor) Run(ctx context.Context) (int, error) {
	seen, err := m.store.Load(ctx)
	if err != nil {
		// Load degrades to an empty set inside the stores; an error here
		// still must not abort the run.
		m.log.Warn().Err(err).Msg("Seen store load failed, proceeding with empty set")
		seen = seenstore.SeenSet{}
	}
	m.log.Debug().Int("seen_count", len(seen)).Msg("Loaded seen set")

	body, err := helpers.FetchPage(ctx, m.cfg.SearchURL, m.cfg.UserAgent)
	if err != nil {
		return 0, err
	}

	candidates, err := extract.Listings(body)
	if err != nil {
		return 0, err
	}
	m.log.Debug().Int("candidates", len(candidates)).Msg("Extracted listing candidates")

	newCount := 0
	for i := range candidates {
		l := &candidates[i]
		if !listing.Validate(l, m.cfg.RegionCode) {
			continue
		}

		donation := listing.IsDonation(l)
		price := listing.ParsePrice(l.Price)

		if seen.Contains(l.ListID) {
			continue
		}
		if !donation && price > m.cfg.PriceCeiling {
			continue
		}

		if err := m.notifier.Notify(ctx, l, price, donation); err != nil {
			// A dropped notification is acceptable loss; the listing is
			// still marked seen so it is not re-sent forever on a flaky
			// webhook.
			m.log.Error().Err(err).Int64("list_id", l.ListID).Msg("Notification delivery failed")
		} else {
			m.log.Info().Int64("list_id", l.ListID).Str("subject", l.Subject).Msg("Notified new listing")
		}

		m.publishMirror(l)

		seen.Add(l.ListID)
		newCount++
	}

	if err := m.store.Save(ctx, seen); err != nil {
		m.log.Error().Err(err).Msg("Failed to persist seen set, next run may re-notify")
	}

	return newCount, nil
}

// publishMirror fans the listing out to the optional stream; failures are
// logged and never affect the pipeline
func (m *Monitor) publishMirror(l *listing.Listing) {
	if m.mirror == nil {
		return
	}

	data, err := json.Marshal(l)
	if err != nil {
		m.log.Error().Err(err).Int64("list_id", l.ListID).Msg("Failed to serialize listing for mirror stream")
		return
	}
	if err := m.mirror.Publish(data); err != nil {
		m.log.Error().Err(err).Int64("list_id", l.ListID).Msg("Failed to publish listing to mirror stream")
	}
}
