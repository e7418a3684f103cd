package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Dafi-web/events-sub000/domain"
)

// recordViewScript sets the marker only if absent and bumps the counter in
// the same script, so the pair is applied atomically by redis.
var recordViewScript = goredis.NewScript(`
if redis.call("SET", KEYS[1], "1", "NX", "PX", ARGV[1]) then
  return {1, redis.call("INCR", KEYS[2])}
end
local total = redis.call("GET", KEYS[2])
if not total then
  return {0, 0}
end
return {0, tonumber(total)}
`)

// ViewRepository keeps view markers and counters in redis. Marker expiry is
// delegated to redis key TTLs.
type ViewRepository struct {
	client goredis.UniversalClient
	prefix string
}

func NewViewRepository(client goredis.UniversalClient, prefix string) *ViewRepository {
	return &ViewRepository{client: client, prefix: prefix}
}

func (r *ViewRepository) RecordView(ctx context.Context, marker domain.ViewMarker) (*domain.ViewResult, error) {
	ttl := marker.ExpiresAt.Sub(marker.SeenAt)
	if ttl < time.Millisecond {
		ttl = time.Millisecond
	}

	keys := []string{r.markerKey(marker.Content, marker.SessionHash), r.counterKey(marker.Content)}
	res, err := recordViewScript.Run(ctx, r.client, keys, ttl.Milliseconds()).Int64Slice()
	if err != nil {
		return nil, fmt.Errorf("running record view script: %w", err)
	}
	if len(res) != 2 {
		return nil, fmt.Errorf("unexpected record view script result: %v", res)
	}

	return &domain.ViewResult{
		Counted:    res[0] == 1,
		TotalViews: res[1],
	}, nil
}

func (r *ViewRepository) GetViewCount(ctx context.Context, ref domain.ContentRef) (int64, error) {
	views, err := r.client.Get(ctx, r.counterKey(ref)).Int64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, nil
		}
		return 0, err
	}
	return views, nil
}

// PurgeExpiredMarkers is a no-op: redis evicts expired markers itself.
func (r *ViewRepository) PurgeExpiredMarkers(context.Context, time.Time) (int64, error) {
	return 0, nil
}

// Keys of one content item share a hash tag so the script touches a single
// cluster slot.
func (r *ViewRepository) markerKey(ref domain.ContentRef, sessionHash string) string {
	return fmt.Sprintf("%s:view:{%s:%s}:marker:%s", r.prefix, ref.Type, ref.ID, sessionHash)
}

func (r *ViewRepository) counterKey(ref domain.ContentRef) string {
	return fmt.Sprintf("%s:view:{%s:%s}:count", r.prefix, ref.Type, ref.ID)
}
