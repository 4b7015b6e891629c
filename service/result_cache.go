package service

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"

	"investment-engine/repository"
)

// cacheKey derives a stable cache key from the calculator name and the
// marshalled request parameters. Returns "" when the params cannot be
// marshalled, which disables caching for that call.
func cacheKey(calculator string, params any) string {
	raw, err := json.Marshal(params)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s:%016x", calculator, xxhash.Sum64(raw))
}

// cachedResult looks a previously computed result up. A nil cache or a
// decode failure is treated as a miss.
func cachedResult[T any](cache repository.CacheRepository, key string) (T, bool) {
	var out T
	if cache == nil || key == "" {
		return out, false
	}

	raw, ok := cache.Get(key)
	if !ok {
		return out, false
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return out, false
	}
	return out, true
}

// storeResult caches a computed result. Failures are logged, never fatal.
func storeResult(cache repository.CacheRepository, key string, result any) {
	if cache == nil || key == "" {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := cache.Set(key, string(raw)); err != nil {
		slog.Warn("failed to cache calculation result", "key", key, "error", err)
	}
}
