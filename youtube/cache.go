package youtube

import (
	"strings"
	"sync"
	"time"

	"github.com/cinerow/cinerow/filesystem"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

type channelData struct {
	IDs map[string]string `json:"ids"`
}

// ChannelCache remembers which channel id a display name resolved to.
// Resolution costs a search call against the quota, so hits are kept for weeks.
type ChannelCache struct {
	// mu covers the read, copy and write of Set. Channels resolve in parallel.
	mu       sync.Mutex
	internal *gache.Cache[*channelData]
}

// NewChannelCache persists resolved ids in the file at path.
func NewChannelCache(path string) *ChannelCache {
	return &ChannelCache{
		internal: gache.New[*channelData](&gache.Options{
			Path:       path,
			Lifetime:   time.Hour * 24 * 30,
			FileSystem: &filesystem.GacheFs{},
		}),
	}
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Get returns the cached id of name.
func (c *ChannelCache) Get(name string) mo.Option[string] {
	if c == nil {
		return mo.None[string]()
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[string]()
	}

	if id, ok := data.IDs[normalizeName(name)]; ok {
		return mo.Some(id)
	}
	return mo.None[string]()
}

// Set stores the id of name.
func (c *ChannelCache) Set(name, id string) error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil {
		return err
	}

	ids := make(map[string]string)
	if !expired && data != nil {
		ids = lo.Assign(data.IDs)
	}
	ids[normalizeName(name)] = id
	return c.internal.Set(&channelData{IDs: ids})
}
