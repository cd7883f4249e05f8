package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"fleet-eta-service/internal/domain"
)

const redisKeyPrefix = "geocode:"

// Redis-backed cache mapping location text to coordinates.
// Values are stored as "lat,lng" strings under geocode:<location> keys
// with a fixed TTL, so stale entries age out without a sweeper.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

// Fetch cached coordinates for the given location texts.
func (s *RedisGeocodeCache) GetMany(ctx context.Context, texts []string) (map[string]domain.GeoPoint, error) {
	if s.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(texts))
	keys := make([]string, 0, len(texts))
	for _, t := range texts {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}

		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		uniq = append(uniq, t)
		keys = append(keys, redisKeyPrefix+t)
	}

	if len(uniq) == 0 {
		return map[string]domain.GeoPoint{}, nil
	}

	vals, err := s.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: redis mget: %w", err)
	}

	out := make(map[string]domain.GeoPoint, len(uniq))
	for i, v := range vals {
		raw, ok := v.(string)
		if !ok {
			continue
		}

		p, err := parsePoint(raw)
		if err != nil {
			return nil, fmt.Errorf("get geocode cache: value for %q: %w", uniq[i], err)
		}
		out[uniq[i]] = p
	}

	return out, nil
}

// Store location -> coordinate mappings in the cache.
func (s *RedisGeocodeCache) PutMany(ctx context.Context, points map[string]domain.GeoPoint) error {
	if s.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(points) == 0 {
		return nil
	}

	pipe := s.Client.Pipeline()
	for loc, p := range points {
		if strings.TrimSpace(loc) == "" {
			return errors.New("insert geocode cache: empty location key")
		}

		val := fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
		pipe.Set(ctx, redisKeyPrefix+loc, val, s.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: redis pipeline: %w", err)
	}

	return nil
}

func parsePoint(raw string) (domain.GeoPoint, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 2 {
		return domain.GeoPoint{}, fmt.Errorf("malformed point %q", raw)
	}

	lat, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return domain.GeoPoint{}, fmt.Errorf("malformed point %q", raw)
	}

	return domain.GeoPoint{Lat: lat, Lng: lng}, nil
}
