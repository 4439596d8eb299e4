// Copyright 2024 Dorival Pedroso & Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package engine

import (
	"context"
	"runtime"
	"sync"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/vorothree/cell"
	"github.com/cpmech/vorothree/verr"
)

// Calculate builds the cell of every live generator and stores them in
// o.Cells. Work is spread over a fixed-size pool of workers (workers<=0
// picks runtime.GOMAXPROCS(0)); each worker is handed a contiguous slice
// of the generator list and processes it sequentially, so there is
// never more than one goroutine touching the shared spatial index's
// ShellEnumerator for a given seed at a time and no cross-worker
// communication is required beyond writing into disjoint slice slots.
//
// ctx is polled between seeds, not between clip steps within a single
// seed's cell: an in-flight cell always finishes. If ctx is cancelled,
// Calculate returns a CancelledError and o.Cells is left unset (partial
// results from an aborted parallel run are discarded, per §5 and §7).
//
// With o.Verbose set, Calculate reports progress the way the teacher's
// FEM solver logs its iterations: a start line via io.Pf, a red line via
// io.Pfred on abort, a green completion line via io.Pfgreen otherwise.
func (o *Tessellation) Calculate(ctx context.Context, workers int) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	ids := o.GeneratorIDs()
	n := len(ids)
	if o.Verbose {
		io.Pf("vorothree: calculate: %d generators, %d workers requested\n", n, workers)
	}
	if n == 0 {
		o.Cells = map[int64]*cell.Cell{}
		return nil
	}
	if workers > n {
		workers = n
	}

	results := make([]*cell.Cell, n)
	errs := make([]error, n)

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				select {
				case <-ctx.Done():
					errs[i] = &verr.CancelledError{}
					return
				default:
				}
				id := ids[i]
				p := o.generators[id]
				c, err := BuildCell(id, p, o.Box, o.Walls, o.idx)
				if err != nil {
					errs[i] = wrapBuildErr(id, err)
					return
				}
				results[i] = c
			}
		}(lo, hi)
	}
	wg.Wait()

	for _, e := range errs {
		if e != nil {
			if o.Verbose {
				io.Pfred("vorothree: calculate: aborted: %v\n", e)
			}
			return e
		}
	}

	cells := make(map[int64]*cell.Cell, n)
	for i, id := range ids {
		cells[id] = results[i]
	}
	o.Cells = cells
	if o.Verbose {
		io.Pfgreen("vorothree: calculate: done, %d cells built\n", len(cells))
	}
	return nil
}

func wrapBuildErr(id int64, err error) error {
	if de, ok := err.(*cell.DefectError); ok {
		return &verr.GeometryDefectError{SeedID: id, Reason: de.Reason}
	}
	return err
}
