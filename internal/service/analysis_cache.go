package service

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/UtsavYadav1/WellSure/internal/domain"
)

// AnalysisCache memoizes analysis results by exact raw input. Analysis is
// deterministic, so entries never go stale and need no TTL.
type AnalysisCache struct {
	entries *lru.Cache[string, domain.AnalysisResult]

	stats   CacheStats
	statsMu sync.RWMutex
}

// CacheStats represents cache performance statistics
type CacheStats struct {
	Hits      int64     `json:"hits"`
	Misses    int64     `json:"misses"`
	Size      int       `json:"size"`
	Capacity  int       `json:"capacity"`
	LastReset time.Time `json:"last_reset"`
}

// NewAnalysisCache creates a cache holding at most size results.
func NewAnalysisCache(size int) (*AnalysisCache, error) {
	entries, err := lru.New[string, domain.AnalysisResult](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create analysis cache: %w", err)
	}
	return &AnalysisCache{
		entries: entries,
		stats: CacheStats{
			Capacity:  size,
			LastReset: time.Now(),
		},
	}, nil
}

// Get returns a copy of the cached result.
func (c *AnalysisCache) Get(symptoms string) (domain.AnalysisResult, bool) {
	result, ok := c.entries.Get(symptoms)

	c.statsMu.Lock()
	if ok {
		c.stats.Hits++
	} else {
		c.stats.Misses++
	}
	c.statsMu.Unlock()

	if !ok {
		return domain.AnalysisResult{}, false
	}
	return result.Clone(), true
}

// Add stores a copy of result.
func (c *AnalysisCache) Add(symptoms string, result domain.AnalysisResult) {
	c.entries.Add(symptoms, result.Clone())
}

// Purge drops every entry and resets the counters.
func (c *AnalysisCache) Purge() {
	c.entries.Purge()

	c.statsMu.Lock()
	c.stats.Hits = 0
	c.stats.Misses = 0
	c.stats.LastReset = time.Now()
	c.statsMu.Unlock()
}

// Stats returns cache performance statistics
func (c *AnalysisCache) Stats() CacheStats {
	c.statsMu.RLock()
	stats := c.stats
	c.statsMu.RUnlock()

	stats.Size = c.entries.Len()
	return stats
}
