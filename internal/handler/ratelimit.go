package handler

import (
	"context"
	_ "embed"
	"time"

	"github.com/redis/go-redis/v9"

	"breachdetector/internal/models"
)

//go:embed ratelim.lua
var luaScript string

var script = redis.NewScript(luaScript)

type Rule struct {
	Key    string
	Limit  int
	Window time.Duration
}

// allowScan applies a per-IP and a global ceiling to scan triggers.
// Without redis there is no limiting.
func (h *Handler) allowScan(ip string) bool {
	if h.rdb == nil {
		return true
	}
	ok, err := h.CheckAtomic(h.rdb, []Rule{
		{Key: "ratelimit:scan:" + ip, Limit: 5, Window: time.Minute},
		{Key: "ratelimit:scan:global", Limit: 30, Window: time.Minute},
	})
	if err != nil {
		models.ErrLog.Printf("rate limit check failed, allowing request: %v", err)
		return true
	}
	return ok
}

func (h *Handler) CheckAtomic(rdb *redis.Client, rules []Rule) (bool, error) {
	ctx := context.Background()

	keys := make([]string, 0, len(rules))
	args := make([]interface{}, 0, len(rules)*2)

	for _, r := range rules {
		keys = append(keys, r.Key)
		args = append(args, r.Limit, int(r.Window.Seconds()))
	}

	res, err := script.Run(ctx, rdb, keys, args...).Int()
	if err != nil {
		return false, err
	}

	return res == 1, nil
}
