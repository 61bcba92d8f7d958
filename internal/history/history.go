// Package history remembers recently searched tickers for input suggestions.
package history

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultSize is used when a non-positive size is configured
const DefaultSize = 20

// Recent is a bounded set of tickers ordered by last use
type Recent struct {
	cache *lru.Cache[string, struct{}]
}

// NewRecent creates a history holding at most size tickers
func NewRecent(size int) *Recent {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, struct{}](size)
	if err != nil {
		// only returned for non-positive sizes, excluded above
		panic(err)
	}
	return &Recent{cache: c}
}

// Add records a ticker as the most recently used
func (r *Recent) Add(ticker string) {
	if ticker == "" {
		return
	}
	r.cache.Add(ticker, struct{}{})
}

// List returns tickers from most to least recently used
func (r *Recent) List() []string {
	keys := r.cache.Keys()
	slices.Reverse(keys)
	return keys
}

// Len returns how many tickers are remembered
func (r *Recent) Len() int {
	return r.cache.Len()
}
