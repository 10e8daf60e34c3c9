package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/coocood/freecache"

	"github.com/Godmook/GPU-Controller/pkg/kubeclient"
	climodels "github.com/Godmook/GPU-Controller/pkg/kubeclient/models"
	"github.com/Godmook/GPU-Controller/pkg/log"
)

const cohortCacheSize = 128 * 1024 // 128KiB

// cohortCache memoizes cohort quota lookups across queues and cycles;
// entries expire on the TTL so quota edits show up within one interval.
type cohortCache struct {
	client       kubeclient.Client
	expireSecond int
	cache        *freecache.Cache
}

func newCohortCache(client kubeclient.Client, ttl time.Duration) *cohortCache {
	return &cohortCache{
		client:       client,
		expireSecond: int(ttl.Seconds()),
		cache:        freecache.NewCache(cohortCacheSize),
	}
}

// Get returns the cohort, or nil when it does not exist.
func (c *cohortCache) Get(ctx context.Context, name string) (*climodels.Cohort, error) {
	key := []byte(name)
	cached, err := c.cache.Get(key)
	if err == nil {
		res := &climodels.Cohort{}
		unmarshalErr := json.Unmarshal(cached, res)
		if unmarshalErr == nil {
			return res, nil
		}
		log.CtxErrorw(ctx, "failed to unmarshal cached cohort", "cohort", name, "err", unmarshalErr)
	}
	if !errors.Is(err, freecache.ErrNotFound) {
		log.CtxErrorw(ctx, "failed to get cohort from cache", "cohort", name, "err", err)
	}

	resp, err := c.client.GetCohort(ctx, &climodels.GetCohortRequest{Name: name})
	if err != nil {
		if errors.Is(err, kubeclient.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	toCache, marshalErr := json.Marshal(&resp.Cohort)
	if marshalErr != nil {
		log.CtxErrorw(ctx, "failed to marshal cohort", "cohort", name, "err", marshalErr)
	} else if cacheErr := c.cache.Set(key, toCache, c.expireSecond); cacheErr != nil {
		log.CtxErrorw(ctx, "failed to set cohort cache", "cohort", name, "err", cacheErr)
	}
	return &resp.Cohort, nil
}
