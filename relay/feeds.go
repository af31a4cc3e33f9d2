package relay

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/youtube"
	"github.com/go-co-op/gocron"
	"github.com/sourcegraph/conc/pool"
)

const refreshWorkers = 3

type feed struct {
	resp    *youtube.SearchResponse
	fetched time.Time
}

// FeedCache keeps channel feeds in memory for ttl, so repeated clients do
// not spend YouTube quota on the same channel.
type FeedCache struct {
	lookup ChannelLookup
	ttl    time.Duration
	now    func() time.Time

	mu    sync.Mutex
	feeds map[string]feed
}

// NewFeedCache wraps lookup. A non-positive ttl passes every call through.
func NewFeedCache(lookup ChannelLookup, ttl time.Duration) *FeedCache {
	return &FeedCache{
		lookup: lookup,
		ttl:    ttl,
		now:    time.Now,
		feeds:  make(map[string]feed),
	}
}

// Configured forwards to the wrapped lookup.
func (c *FeedCache) Configured() bool {
	if cfg, ok := c.lookup.(configurable); ok {
		return cfg.Configured()
	}
	return c.lookup != nil
}

func (c *FeedCache) ChannelVideos(ctx context.Context, name string) (*youtube.SearchResponse, error) {
	if c.ttl <= 0 {
		return c.lookup.ChannelVideos(ctx, name)
	}

	k := strings.ToLower(strings.TrimSpace(name))

	c.mu.Lock()
	cached, ok := c.feeds[k]
	c.mu.Unlock()
	if ok && c.now().Sub(cached.fetched) < c.ttl {
		return cached.resp, nil
	}

	return c.fetch(ctx, k, name)
}

func (c *FeedCache) fetch(ctx context.Context, k, name string) (*youtube.SearchResponse, error) {
	resp, err := c.lookup.ChannelVideos(ctx, name)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.feeds[k] = feed{resp: resp, fetched: c.now()}
	c.mu.Unlock()
	return resp, nil
}

// Refresh fetches names regardless of freshness and returns how many succeeded.
// Failures keep the previous feed.
func (c *FeedCache) Refresh(ctx context.Context, names []string) int {
	var ok atomic.Int32

	p := pool.New().WithMaxGoroutines(refreshWorkers)
	for _, name := range names {
		p.Go(func() {
			k := strings.ToLower(strings.TrimSpace(name))
			if _, err := c.fetch(ctx, k, name); err != nil {
				log.Warnf("relay: refresh %q: %v", name, err)
				return
			}
			ok.Add(1)
		})
	}
	p.Wait()

	return int(ok.Load())
}

// Warm refreshes names right away and then on every tick until stop is called.
func Warm(ctx context.Context, cache *FeedCache, names []string, every time.Duration) (stop func(), err error) {
	s := gocron.NewScheduler(time.UTC)
	_, err = s.Every(every).SingletonMode().Do(func() {
		n := cache.Refresh(ctx, names)
		log.Debugf("relay: warmed %d of %d channels", n, len(names))
	})
	if err != nil {
		return nil, err
	}

	s.StartAsync()
	return s.Stop, nil
}
