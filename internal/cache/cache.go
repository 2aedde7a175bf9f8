// Package cache 缓存渲染结果。结果按版本号（宿主的游戏时间）失效，
// 长时间未访问的条目由 go-cache 定期清理。
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type entry struct {
	version float64
	result  string
}

type Cache struct {
	store *gocache.Cache
}

// New ttl 为条目过期时间，cleanupInterval 为清理间隔，均为 0 时条目不过期
func New(ttl, cleanupInterval time.Duration) *Cache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Cache{store: gocache.New(ttl, cleanupInterval)}
}

// GetOrCompute 版本号与缓存一致时返回缓存结果，否则重新计算并保存。NaN 版本号永远不命中
func (c *Cache) GetOrCompute(key string, version float64, compute func() string) string {
	if v, ok := c.store.Get(key); ok {
		if e := v.(entry); e.version == version {
			return e.result
		}
	}

	result := compute()
	c.store.Set(key, entry{version: version, result: result}, gocache.DefaultExpiration)
	return result
}

func (c *Cache) Delete(key string) {
	c.store.Delete(key)
}

func (c *Cache) Len() int {
	return c.store.ItemCount()
}
