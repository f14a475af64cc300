// Package parallel provides the row-block execution driver used by
// computation kernels.
package parallel

import (
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled      bool // Whether parallel execution is enabled.
	NumWorkers   int  // Number of worker goroutines to use.
	MinBlockRows int  // Minimum rows per block to avoid goroutine overhead.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinBlockRows: 256,
	}
}

// blocks splits [0, rows) into block boundaries of at most blockRows each.
func blocks(rows, blockRows int) [][2]int {
	if blockRows <= 0 {
		blockRows = rows
	}
	var out [][2]int
	for begin := 0; begin < rows; begin += blockRows {
		out = append(out, [2]int{begin, min(begin+blockRows, rows)})
	}
	return out
}

// workers returns the goroutine budget for cfg, falling back to the CPU
// count when unset.
func workers(cfg Config) int {
	if cfg.NumWorkers > 0 {
		return cfg.NumWorkers
	}
	return runtime.NumCPU()
}

// ForBlocks runs fn over row blocks [begin, end), in parallel when the
// configuration allows and the row count justifies it. At most
// cfg.NumWorkers blocks run at once. Blocks are disjoint, so fn may write
// to its rows without synchronization.
func ForBlocks(rows, blockRows int, cfg Config, fn func(begin, end int)) {
	if rows <= 0 {
		return
	}
	if !cfg.Enabled || rows <= cfg.MinBlockRows {
		fn(0, rows)
		return
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers(cfg))
	for _, b := range blocks(rows, blockRows) {
		wg.Add(1)
		sem <- struct{}{}
		go func(begin, end int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(begin, end)
		}(b[0], b[1])
	}
	wg.Wait()
}

// ForBlocksErr is ForBlocks for bodies that can fail. The first error wins;
// remaining blocks still run to completion.
func ForBlocksErr(rows, blockRows int, cfg Config, fn func(begin, end int) error) error {
	if rows <= 0 {
		return nil
	}
	if !cfg.Enabled || rows <= cfg.MinBlockRows {
		return fn(0, rows)
	}

	var g errgroup.Group
	g.SetLimit(workers(cfg))
	for _, b := range blocks(rows, blockRows) {
		begin, end := b[0], b[1]
		g.Go(func() error {
			return fn(begin, end)
		})
	}
	return g.Wait()
}
