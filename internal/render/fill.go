package render

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"valnoise/internal/core"
)

// Fill evaluates fn for every cell of r, one row per task, with at most
// GOMAXPROCS rows in flight. fn is called concurrently and must only read
// shared state; noise tables satisfy that.
func Fill(r *core.Raster, fn func(x, y int) float64) {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for y := 0; y < r.H; y++ {
		row := r.Row(y)
		g.Go(func() error {
			for x := range row {
				row[x] = fn(x, y)
			}
			return nil
		})
	}
	_ = g.Wait()
}
