package database

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/prepstack/examprep/config"
)

// NewRedisClient connects the scratch store's backing redis. The connection
// is not pinged here; the store degrades gracefully if redis is unreachable.
func NewRedisClient(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	log.Info().Str("addr", cfg.Redis.Addr).Msg("Redis client configured")
	return client
}
