package config

// Redis backs the submission throttle (optional), the HTTP rate limiter and
// the response cache.  When the server cannot be reached at startup the
// constructor returns nil and callers fall back to in-memory behaviour or
// disable the feature.

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a client from the environment:
//   REDIS_URL                 – redis:// or rediss:// URL, takes precedence
//   REDIS_HOST / REDIS_PORT   – host and port (default localhost:6379)
//   REDIS_PASSWORD, REDIS_DB  – credentials and database number
//   REDIS_TLS                 – enable TLS when true
//   REDIS_ENABLED             – set to false to skip Redis entirely
// The returned client is nil when disabled or unreachable.
func NewRedisClient() *redis.Client {
	if !envBool("REDIS_ENABLED", true) {
		return nil
	}
	var opts *redis.Options
	if u := envStr("REDIS_URL", ""); u != "" {
		parsed, err := redis.ParseURL(u)
		if err != nil {
			return nil
		}
		opts = parsed
	} else {
		opts = &redis.Options{
			Addr:     envStr("REDIS_HOST", "localhost") + ":" + envStr("REDIS_PORT", "6379"),
			Password: envStr("REDIS_PASSWORD", ""),
			DB:       envInt("REDIS_DB", 0),
		}
		if envBool("REDIS_TLS", false) {
			opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		}
	}
	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil
	}
	return client
}
