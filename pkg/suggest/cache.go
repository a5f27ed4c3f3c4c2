package suggest

import (
	"sync/atomic"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// HotCache remembers recent suggestion lists per word so an editor asking for
// the same misspelling twice skips candidate search. The least recently used
// entry is evicted once maxWords is reached. Safe for concurrent use.
type HotCache struct {
	words    *lru.Cache[string, []string]
	maxWords int
	hits     atomic.Int64
	misses   atomic.Int64
}

// NewHotCache creates a cache holding up to maxWords entries. maxWords <= 0
// disables caching.
func NewHotCache(maxWords int) *HotCache {
	hc := &HotCache{}
	if maxWords <= 0 {
		return hc
	}
	words, err := lru.NewWithEvict(maxWords, func(key string, _ []string) {
		log.Debugf("Evicted word '%s' from hot cache", key)
	})
	if err != nil {
		log.Warnf("Suggestion cache disabled: %v", err)
		return hc
	}
	hc.words, hc.maxWords = words, maxWords
	return hc
}

// Get returns the cached suggestions for key.
func (hc *HotCache) Get(key string) ([]string, bool) {
	if hc.words == nil {
		hc.misses.Add(1)
		return nil, false
	}
	words, ok := hc.words.Get(key)
	if !ok {
		hc.misses.Add(1)
		return nil, false
	}
	hc.hits.Add(1)
	return words, true
}

// Put stores suggestions for key, evicting the least recently used entry when full.
func (hc *HotCache) Put(key string, words []string) {
	if hc.words == nil {
		return
	}
	hc.words.Add(key, words)
}

// Stats returns the cache size and hit counters.
func (hc *HotCache) Stats() map[string]int {
	size := 0
	if hc.words != nil {
		size = hc.words.Len()
	}
	return map[string]int{
		"hotCacheWords":  size,
		"maxHotWords":    hc.maxWords,
		"hotCacheHits":   int(hc.hits.Load()),
		"hotCacheMisses": int(hc.misses.Load()),
	}
}
