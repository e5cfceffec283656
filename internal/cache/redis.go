package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sj-cantos/launchpad-jia/pkg/model"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

// OrgCache is a read-through cache for organization+plan lookups. Plans
// change rarely, so a short TTL is enough; the quota gate never trusts
// the cached allowance, it re-reads inside its transaction.
type OrgCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewOrgCache(rdb *redis.Client, ttl time.Duration) *OrgCache {
	return &OrgCache{rdb: rdb, ttl: ttl}
}

func orgKey(orgID uuid.UUID) string {
	return "org:" + orgID.String()
}

// Get returns the cached organization, or false on a miss. Cache errors
// are treated as misses.
func (c *OrgCache) Get(ctx context.Context, orgID uuid.UUID) (*model.Organization, bool) {
	raw, err := c.rdb.Get(ctx, orgKey(orgID)).Bytes()
	if err != nil {
		return nil, false
	}
	var org model.Organization
	if err := json.Unmarshal(raw, &org); err != nil {
		return nil, false
	}
	return &org, true
}

func (c *OrgCache) Set(ctx context.Context, org *model.Organization) {
	raw, err := json.Marshal(org)
	if err != nil {
		return
	}
	_ = c.rdb.Set(ctx, orgKey(org.OrgID), raw, c.ttl).Err()
}
