package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/takmir/internal/geo"
)

var Rdb *redis.Client

func InitRedis(redisAddress string, redisUsername string, redisPassword string) *redis.Client {
	Rdb = redis.NewClient(&redis.Options{
		Addr:     redisAddress,
		Username: redisUsername,
		Password: redisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := Rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", redisAddress).Msg("Redis not reachable, position cache will miss")
	}
	return Rdb
}

const positionPrefix = "takmir:position:"

// PositionCache stores resolved positions in redis under a short TTL.
type PositionCache struct {
	client *redis.Client
}

func NewPositionCache(client *redis.Client) *PositionCache {
	return &PositionCache{client: client}
}

func positionKey(key string) string {
	return positionPrefix + key
}

func (c *PositionCache) GetPosition(ctx context.Context, key string) (geo.Point, bool, error) {
	raw, err := c.client.Get(ctx, positionKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return geo.Point{}, false, nil
	}
	if err != nil {
		return geo.Point{}, false, fmt.Errorf("read cached position: %w", err)
	}
	var p geo.Point
	if err := json.Unmarshal(raw, &p); err != nil {
		return geo.Point{}, false, fmt.Errorf("decode cached position: %w", err)
	}
	return p, true, nil
}

func (c *PositionCache) SetPosition(ctx context.Context, key string, p geo.Point, ttl time.Duration) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode position: %w", err)
	}
	if err := c.client.Set(ctx, positionKey(key), raw, ttl).Err(); err != nil {
		return fmt.Errorf("cache position: %w", err)
	}
	return nil
}
