package resample

import "sync"

// bandsPerWorker keeps workers busy when rows differ in cost.
const bandsPerWorker = 4

// forEachRow calls fn(y) for every y in [0, rows). With more than one
// worker the rows are cut into contiguous bands and run concurrently, at
// most workers at a time. fn must only write the output row it is given.
func forEachRow(rows, workers int, fn func(y int)) {
	if workers <= 1 || rows < 2 {
		for y := 0; y < rows; y++ {
			fn(y)
		}
		return
	}

	band := (rows + workers*bandsPerWorker - 1) / (workers * bandsPerWorker)
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for start := 0; start < rows; start += band {
		end := min(start+band, rows)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			for y := lo; y < hi; y++ {
				fn(y)
			}
		}(start, end)
	}
	wg.Wait()
}
