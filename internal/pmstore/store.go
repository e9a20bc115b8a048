package pmstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/pathmap"
	"github.com/charmbracelet/pathmap/bloom"
)

// BuildResult is the output of Build: the serialized trie file, plus the
// Bloom filter companion built over the same key set (nil if cfg.SkipBloom
// was set).
type BuildResult struct {
	TrieFile []byte
	Filter   *bloom.Filter
	Stats    pathmap.Stats
}

// Build constructs a PathMap trie file and its Bloom filter companion from
// pairs in one call. It does not write anything to disk; that remains the
// caller's concern, per spec.md's "file I/O wrappers" non-goal.
func Build(ctx context.Context, pairs map[string]pathmap.Payload, cfg Config, logger *slog.Logger) (*BuildResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	w := pathmap.NewWriter()
	if err := w.BulkInsert(pairs); err != nil {
		return nil, fmt.Errorf("pmstore: build trie: %w", err)
	}
	trieFile, err := w.Stringify()
	if err != nil {
		return nil, fmt.Errorf("pmstore: stringify trie: %w", err)
	}
	stats := w.Stats()
	logger.Debug("pathmap trie built", "lines", stats.Lines, "bytes", stats.Bytes, "keys", len(pairs))

	result := &BuildResult{TrieFile: trieFile, Stats: stats}
	if cfg.SkipBloom {
		return result, nil
	}

	bloomCfg := cfg.Bloom
	if bloomCfg.N == 0 {
		bloomCfg.N = len(pairs)
	}
	keys := make([]string, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	filter, err := bloom.BuildConcurrent(ctx, bloomCfg, keys, cfg.BloomWorkers)
	if err != nil {
		return nil, fmt.Errorf("pmstore: build bloom filter: %w", err)
	}
	logger.Debug("bloom filter built", "m", filter.M(), "k", filter.K(), "keys", len(keys))

	result.Filter = filter
	return result, nil
}

// Store wraps a Reader and an optional Bloom filter companion, using the
// filter (when present) to short-circuit an absence check before it ever
// touches the trie file.
type Store struct {
	reader *pathmap.Reader
	filter *bloom.Filter
	log    *slog.Logger
}

// Open constructs a Store over an already-serialized trie file and an
// optional Bloom filter built over the same key set. filter may be nil, in
// which case Find always consults the trie.
func Open(trieFile []byte, filter *bloom.Filter, logger *slog.Logger) (*Store, error) {
	r, err := pathmap.NewReader(trieFile)
	if err != nil {
		return nil, fmt.Errorf("pmstore: open trie file: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{reader: r, filter: filter, log: logger}, nil
}

// Find looks up path, consulting the Bloom filter companion first when one
// is present: a negative Has result is authoritative (no false negatives),
// so Find returns absent without decoding any trie lines.
func (s *Store) Find(path string) (pathmap.Payload, bool, error) {
	if s.filter != nil && !s.filter.Has(path) {
		s.log.Debug("bloom filter short-circuited lookup", "path", path)
		return nil, false, nil
	}
	return s.reader.Find(path)
}
