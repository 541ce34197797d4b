// Package ids assigns entity identifiers in the p<N>/c<N>/u<N>/o<N> scheme.
package ids

import (
	"fmt"
	"sync"
	"time"
)

const (
	PrefixProduct = "p"
	PrefixCourse  = "c"
	PrefixUser    = "u"
	PrefixOrder   = "o"
)

// Generator keeps a monotonic counter per known prefix. Counters are
// process-local: they reset on restart, so collisions across sessions are
// possible when the storage already holds higher-numbered entries.
type Generator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewGenerator() *Generator {
	return &Generator{
		counters: map[string]int{
			PrefixProduct: 126,
			PrefixCourse:  205,
			PrefixUser:    1,
			PrefixOrder:   1001,
		},
	}
}

// Next returns the next identifier for the prefix. Unrecognized prefixes fall
// back to a timestamp-based identifier.
func (g *Generator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.counters[prefix]
	if !ok {
		return fmt.Sprintf("%s%d", prefix, time.Now().UnixMilli())
	}
	g.counters[prefix] = n + 1
	return fmt.Sprintf("%s%d", prefix, n)
}
