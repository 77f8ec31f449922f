package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gmonteiro/olxwatcher/config"
	"gmonteiro/olxwatcher/helpers"
	"gmonteiro/olxwatcher/logger"
	"gmonteiro/olxwatcher/services/monitor"
	"gmonteiro/olxwatcher/services/notifier"
	"gmonteiro/olxwatcher/services/publisher"
	"gmonteiro/olxwatcher/services/seenstore"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Load environment variables
	godotenv.Load()

	// Initialize logger first
	logger.Init()
	log := logger.Default

	// Load and validate configuration
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("Invalid configuration")
		return 1
	}

	helpers.SetTimeout(cfg.HTTPTimeout)

	log.Info().
		Str("environment", cfg.Environment).
		Str("search_url", cfg.SearchURL).
		Float64("price_ceiling", cfg.PriceCeiling).
		Str("region_code", cfg.RegionCode).
		Msg("Starting check cycle")

	// Set up context cancelled on shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize services
	store := newSeenStore(&cfg)
	discord := notifier.NewDiscordNotifier(cfg.WebhookURL)

	var mirror publisher.Publisher
	if cfg.RedisAddr != "" {
		redisMirror := publisher.NewRedisPublisher(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream, cfg.RedisStreamMaxLength)
		defer redisMirror.Close()
		mirror = redisMirror
		log.Info().Str("addr", cfg.RedisAddr).Str("stream", cfg.RedisStream).Msg("Mirroring listings to Redis stream")
	}

	// Run exactly one cycle
	m := monitor.NewMonitor(cfg, store, discord, mirror)
	newCount, err := m.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Check cycle aborted")
		return 1
	}

	if mirror != nil {
		if err := mirror.TrimStream(); err != nil {
			log.Warn().Err(err).Msg("Failed to trim mirror stream")
		}
	}

	log.Info().Int("new_listings", newCount).Msg("Check cycle completed")
	return 0
}

// newSeenStore picks the seen-store backend from configuration
func newSeenStore(cfg *config.Config) seenstore.SeenStore {
	if cfg.SeenBackend == config.SeenBackendMemcache {
		return seenstore.NewMemcacheStore(cfg.MemcacheAddr)
	}
	return seenstore.NewFileStore(cfg.CacheFile)
}
