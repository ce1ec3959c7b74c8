// Package modelcache caches Huffman models by symbol distribution.
//
// Inputs with the same frequency table share a tree and code table,
// so a batch of similar files only builds each model once.
package modelcache

import (
	"cmp"
	"fmt"
	"sync/atomic"

	"github.com/abhinav/huffpack/internal/huffman"
	"github.com/cespare/xxhash/v2"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is a fixed-size LRU cache of models keyed by frequency table.
// It is safe for concurrent use.
type Cache[S cmp.Ordered] struct {
	models *lru.Cache[uint64, *huffman.Model[S]]

	hits, misses atomic.Int64
}

// New builds a cache that holds up to size models.
// size must be positive.
func New[S cmp.Ordered](size int) (*Cache[S], error) {
	models, err := lru.New[uint64, *huffman.Model[S]](size)
	if err != nil {
		return nil, fmt.Errorf("create model cache: %w", err)
	}
	return &Cache[S]{models: models}, nil
}

// Get returns the model for the given frequency table,
// building and caching it if necessary.
// hit reports whether the model came from the cache.
//
// Errors from building the model (see huffman.NewModel)
// are returned as-is and nothing is cached.
func (c *Cache[S]) Get(freqs huffman.FrequencyTable[S]) (m *huffman.Model[S], hit bool, err error) {
	key := Key(freqs)

	// Different tables may hash to the same key.
	// Only a model built from an identical table is a hit.
	if m, ok := c.models.Get(key); ok && m.Matches(freqs) {
		c.hits.Add(1)
		return m, true, nil
	}

	c.misses.Add(1)
	m, err = huffman.NewModel(freqs)
	if err != nil {
		return nil, false, err
	}
	c.models.Add(key, m)
	return m, false, nil
}

// Len reports the number of models in the cache.
func (c *Cache[S]) Len() int { return c.models.Len() }

// Hits reports the number of calls to Get served from the cache.
func (c *Cache[S]) Hits() int64 { return c.hits.Load() }

// Misses reports the number of calls to Get that had to build a model.
func (c *Cache[S]) Misses() int64 { return c.misses.Load() }

// Key hashes a frequency table.
// Tables with the same symbols and counts always have the same key.
func Key[S cmp.Ordered](freqs huffman.FrequencyTable[S]) uint64 {
	d := xxhash.New()
	for _, s := range freqs.Symbols() {
		fmt.Fprintf(d, "%#v=%d\n", s, freqs[s])
	}
	return d.Sum64()
}
