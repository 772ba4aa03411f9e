package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"breachdetector/internal/models"
	"breachdetector/internal/server"
)

const riskCacheKey = "breachdetector:risk:latest"

// InitRedis connects to redis for the risk cache and the scan rate
// limiter. Redis is optional: with no address configured, or an
// unreachable server, the caller gets nil and every consumer degrades to
// direct database reads.
func InitRedis(config server.Config) *redis.Client {
	if config.Redis.Addr == "" {
		models.InfoLog.Println("redis not configured, risk cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         config.Redis.Addr,
		Password:     config.Redis.Password,
		DB:           config.Redis.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		models.ErrLog.Printf("redis unreachable, risk cache disabled: %v", err)
		return nil
	}

	models.InfoLog.Println("redis connected")
	return rdb
}

// RiskCache keeps the latest risk summary in redis so the risk endpoint
// does not have to touch the scans table on every read.
type RiskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRiskCache(rdb *redis.Client) *RiskCache {
	return &RiskCache{rdb: rdb, ttl: 5 * time.Minute}
}

func (c *RiskCache) SetLatest(ctx context.Context, summary models.RiskSummary) {
	if c == nil || c.rdb == nil {
		return
	}
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, riskCacheKey, payload, c.ttl).Err(); err != nil {
		models.ErrLog.Printf("risk cache write failed: %v", err)
	}
}

// GetLatest returns the cached summary, or false on miss or any cache
// error. Callers fall back to the database.
func (c *RiskCache) GetLatest(ctx context.Context) (models.RiskSummary, bool) {
	if c == nil || c.rdb == nil {
		return models.RiskSummary{}, false
	}
	payload, err := c.rdb.Get(ctx, riskCacheKey).Bytes()
	if err != nil {
		return models.RiskSummary{}, false
	}
	var summary models.RiskSummary
	if err := json.Unmarshal(payload, &summary); err != nil {
		return models.RiskSummary{}, false
	}
	return summary, true
}
