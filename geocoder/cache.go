package geocoder

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/semka95/devcamper/domain"
)

const cachePrefix = "devcamper:geocode:"

// RedisConfig stores geocode cache configuration
type RedisConfig struct {
	Addr            string `yaml:"addr"`
	Password        string `yaml:"password"`
	DB              int    `yaml:"db"`
	GeocodeTTLHours int    `yaml:"geocode_ttl_hours"`
}

// TTL returns how long geocoded addresses are kept
func (cfg RedisConfig) TTL() time.Duration {
	if cfg.GeocodeTTLHours <= 0 {
		return 30 * 24 * time.Hour
	}
	return time.Duration(cfg.GeocodeTTLHours) * time.Hour
}

// NewRedisClient creates redis client from config
func NewRedisClient(cfg RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// Store is the part of redis client the cache relies on
type Store interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Cached decorates a geocoder with a redis cache. Cache failures are logged
// and the request falls through to the wrapped geocoder.
type Cached struct {
	next   domain.Geocoder
	store  Store
	ttl    time.Duration
	logger *zap.Logger
}

// NewCached wraps next with cache kept in store
func NewCached(next domain.Geocoder, store Store, ttl time.Duration, logger *zap.Logger) *Cached {
	return &Cached{
		next:   next,
		store:  store,
		ttl:    ttl,
		logger: logger,
	}
}

// Geocode returns cached location or resolves and caches it
func (c *Cached) Geocode(ctx context.Context, address string) (*domain.Location, error) {
	key := cacheKey(address)

	data, err := c.store.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		loc := new(domain.Location)
		if err = json.Unmarshal(data, loc); err == nil && len(loc.Coordinates) == 2 {
			return loc, nil
		}
		c.logger.Warn("broken geocode cache entry", zap.String("key", key), zap.Error(err))
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn("geocode cache get failed", zap.Error(err))
	}

	loc, err := c.next.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(loc)
	if err != nil {
		c.logger.Warn("can't encode location for cache", zap.Error(err))
		return loc, nil
	}
	if err = c.store.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn("geocode cache set failed", zap.Error(err))
	}

	return loc, nil
}

func cacheKey(address string) string {
	normalized := strings.ToLower(strings.Join(strings.Fields(address), " "))
	sum := sha256.Sum256([]byte(normalized))
	return cachePrefix + hex.EncodeToString(sum[:])
}
