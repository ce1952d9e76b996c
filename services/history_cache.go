package services

import (
	"context"
	"encoding/json"
	"time"

	"lifeos/config"
)

// Read-through cache for the history aggregates. Everything here is a
// no-op when redis is not configured. Session writes invalidate the
// keys a write can affect; a short TTL bounds staleness for entries
// that survive (e.g. the day rolling over).

const (
	SummaryCacheKey = "history:summary"

	todayCacheKeyPrefix = "history:today:"
	historyCacheTTL     = time.Minute
)

var ctx = context.Background()

// TodayCacheKey keys the daily aggregate by local calendar day.
func TodayCacheKey(day time.Time) string {
	return todayCacheKeyPrefix + day.Format("2006-01-02")
}

// HistoryCacheGet loads a cached aggregate into dest, reporting whether
// the cache held it.
func HistoryCacheGet(key string, dest any) bool {
	if config.RedisClient == nil {
		return false
	}
	data, err := config.RedisClient.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		config.Logger.Warnw("dropping undecodable cache entry", "key", key, "error", err)
		config.RedisClient.Del(ctx, key)
		return false
	}
	return true
}

// HistoryCacheSet stores an aggregate. Cache failures are logged and
// ignored; the database remains the source of truth.
func HistoryCacheSet(key string, value any) {
	if config.RedisClient == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := config.RedisClient.Set(ctx, key, data, historyCacheTTL).Err(); err != nil {
		config.Logger.Warnw("failed to cache aggregate", "key", key, "error", err)
	}
}

// InvalidateHistoryCache drops the aggregates a session write can
// change: today's bucket and the monthly summary.
func InvalidateHistoryCache() {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Del(ctx, TodayCacheKey(time.Now()), SummaryCacheKey).Err(); err != nil {
		config.Logger.Warnw("failed to invalidate history cache", "error", err)
	}
}
