package seenstore

import (
	"context"
	"encoding/json"

	"github.com/bradfitz/gomemcache/memcache"

	"gmonteiro/olxwatcher/logger"
	"gmonteiro/olxwatcher/pkg/errors"
)

// seenKey is the memcache key holding the serialized identifier set
const seenKey = "olxwatcher:seen"

// MemcacheStore implements SeenStore on memcache, for deployments where
// runs are scheduled across hosts and a shared cache already exists.
// Items are stored without expiration; the set is small and overwritten
// every run.
type MemcacheStore struct {
	client *memcache.Client
	log    *logger.Logger
}

// NewMemcacheStore creates a memcache-backed seen store
func NewMemcacheStore(serverAddr string) *MemcacheStore {
	return &MemcacheStore{
		client: memcache.New(serverAddr),
		log:    logger.ForStore(),
	}
}

// Load reads the persisted identifier set. A cache miss or malformed
// value yields an empty set with a warning.
func (m *MemcacheStore) Load(_ context.Context) (SeenSet, error) {
	item, err := m.client.Get(seenKey)
	if err != nil {
		if err != memcache.ErrCacheMiss {
			m.log.Warn().Err(err).Msg("Failed to read seen set from memcache, starting with empty set")
		}
		return SeenSet{}, nil
	}

	var set SeenSet
	if err := json.Unmarshal(item.Value, &set); err != nil {
		m.log.Warn().Err(err).Msg("Malformed seen set in memcache, starting with empty set")
		return SeenSet{}, nil
	}
	return set, nil
}

// Save overwrites the persisted set
func (m *MemcacheStore) Save(_ context.Context, set SeenSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return errors.NewCache("save", "failed to serialize seen set", err)
	}

	if err := m.client.Set(&memcache.Item{Key: seenKey, Value: data}); err != nil {
		return errors.NewCache("save", "failed to store seen set in memcache", err)
	}
	return nil
}
