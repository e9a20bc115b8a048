package bloom

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BuildConcurrent builds a Filter over keys by sharding them across workers
// goroutines (defaulting to runtime.GOMAXPROCS(0) when workers <= 0), each
// populating a private Filter of identical shape (same m, k, s, so their
// bit layouts line up), then OR-merging the private bit arrays into one
// result on the calling goroutine.
//
// This is purely a construction-time convenience for large key sets: the
// core Filter type is never shared between goroutines mid-build, so it
// stays the single-threaded, cooperative type the spec describes. Add and
// Has on the returned Filter are no different from one built with New plus
// sequential Add calls.
func BuildConcurrent(ctx context.Context, config Config, keys []string, workers int) (*Filter, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(keys) {
		workers = len(keys)
	}
	if workers <= 1 {
		f, err := New(config)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			f.Add(k)
		}
		return f, nil
	}

	shards := make([]*Filter, workers)
	g, _ := errgroup.WithContext(ctx)

	shardSize := (len(keys) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		start := w * shardSize
		if start >= len(keys) {
			continue
		}
		end := start + shardSize
		if end > len(keys) {
			end = len(keys)
		}

		g.Go(func() error {
			f, err := New(config)
			if err != nil {
				return err
			}
			for _, k := range keys[start:end] {
				f.Add(k)
			}
			shards[w] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged, err := New(config)
	if err != nil {
		return nil, err
	}
	for _, shard := range shards {
		if shard == nil {
			continue
		}
		for i, b := range shard.bits {
			merged.bits[i] |= b
		}
	}
	return merged, nil
}
