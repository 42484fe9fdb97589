// Package cache stores prediction responses keyed by the request that
// produced them.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/ppiankov/cardiorisk/internal/model"
)

// KeyPrefix namespaces every key this package writes.
const KeyPrefix = "cardiorisk:v1:"

// Cache defines the interface for caching
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// CacheKey derives a key from the service payload. Two patients with the
// same indicators, region and language share an entry.
func CacheKey(req model.PredictRequest) string {
	data, err := json.Marshal(req)
	if err != nil {
		data = []byte(err.Error())
	}
	hash := sha256.Sum256(data)
	return KeyPrefix + hex.EncodeToString(hash[:])
}
