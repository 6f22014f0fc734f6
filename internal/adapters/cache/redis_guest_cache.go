package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"shuttle-logistics-service/internal/domain"
	"shuttle-logistics-service/internal/ports"
)

const guestDetailKeyPrefix = "guest_detail:"

// Redis-backed read-through cache in front of a GuestDetailReader.
//
// Driver-sheet generation re-reads the same guest details for every sheet of
// a day; this keeps those lookups off the primary store. Ids missing from the
// inner reader are not cached, so a guest added later shows up on the next
// read.
type RedisGuestDetails struct {
	Client *redis.Client
	Inner  ports.GuestDetailReader
	TTL    time.Duration
}

func NewRedisGuestDetails(client *redis.Client, inner ports.GuestDetailReader, ttl time.Duration) *RedisGuestDetails {
	return &RedisGuestDetails{Client: client, Inner: inner, TTL: ttl}
}

func (c *RedisGuestDetails) GetGuestsByIDs(ctx context.Context, ids []string) ([]domain.GuestDetail, error) {
	if c.Client == nil || c.Inner == nil {
		return nil, errors.New("guest detail cache: client and inner reader must be set")
	}

	if len(ids) == 0 {
		return []domain.GuestDetail{}, nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, guestDetailKeyPrefix+id)
	}

	cached, err := c.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("guest detail cache: mget: %w", err)
	}

	found := make(map[string]domain.GuestDetail, len(ids))
	misses := make([]string, 0, len(ids))
	for i, raw := range cached {
		id := ids[i]
		s, ok := raw.(string)
		if !ok {
			misses = append(misses, id)
			continue
		}

		var detail domain.GuestDetail
		if err := json.Unmarshal([]byte(s), &detail); err != nil {
			// Treat a corrupt entry as a miss; the write below replaces it.
			misses = append(misses, id)
			continue
		}
		found[id] = detail
	}

	if len(misses) > 0 {
		fresh, err := c.Inner.GetGuestsByIDs(ctx, misses)
		if err != nil {
			return nil, fmt.Errorf("guest detail cache: fill from inner reader: %w", err)
		}

		pipe := c.Client.Pipeline()
		for _, detail := range fresh {
			found[detail.GuestID] = detail

			encoded, err := json.Marshal(detail)
			if err != nil {
				return nil, fmt.Errorf("guest detail cache: marshal guest %q: %w", detail.GuestID, err)
			}
			pipe.Set(ctx, guestDetailKeyPrefix+detail.GuestID, encoded, c.TTL)
		}
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("guest detail cache: store fresh entries: %w", err)
		}
	}

	// Preserve request order; unknown ids stay absent.
	out := make([]domain.GuestDetail, 0, len(found))
	seen := make(map[string]struct{}, len(found))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if detail, ok := found[id]; ok {
			out = append(out, detail)
		}
	}

	return out, nil
}
