// Package pmstore wires the trie writer/reader and the Bloom filter
// companion together into a single build/open/find surface, the way
// spec.md describes the two sharing a dataset without itself naming an
// integration point for them. It owns the ambient logging and config
// concerns the core pathmap and bloom packages deliberately stay free of.
package pmstore

import "github.com/charmbracelet/pathmap/bloom"

// Config controls a Build call. The zero value is usable: N is inferred
// from the key set and BloomWorkers defaults to GOMAXPROCS.
type Config struct {
	// Bloom configures the companion filter. Bloom.N is overridden with the
	// key count when left at zero.
	Bloom bloom.Config `json:"bloom" jsonschema:"description=Bloom filter sizing parameters"`
	// BloomWorkers caps concurrency for bloom.BuildConcurrent. Zero means
	// runtime.GOMAXPROCS(0).
	BloomWorkers int `json:"bloom_workers,omitempty" jsonschema:"description=Worker count for concurrent bloom filter construction (0 = GOMAXPROCS)"`
	// SkipBloom builds only the trie file, omitting the Bloom companion.
	SkipBloom bool `json:"skip_bloom,omitempty" jsonschema:"description=Skip building the bloom filter companion"`
}

// DefaultConfig returns a Config with bloom.Config defaults appropriate
// for n expected keys.
func DefaultConfig(n int) Config {
	return Config{Bloom: bloom.Config{N: n}}
}
