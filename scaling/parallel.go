// SPDX-License-Identifier: MIT

// Package scaling: bounded parallel fill of one refinement level.
// Within a level every new position depends only on completed coarser
// levels, so positions may be computed in any order or concurrently; the
// level barrier itself stays sequential in the evaluators.

package scaling

import "golang.org/x/sync/errgroup"

// minParallelSlots is the level size below which goroutine fan-out costs
// more than it saves; smaller levels are always filled sequentially.
const minParallelSlots = 64

// fillSlots computes fill(s) for every slot in slots, fanning out over at
// most workers goroutines. Each slot is visited exactly once; fill must
// write only its own slot and read only completed levels, which the
// evaluators guarantee by construction.
//
// Complexity: O(len(slots)) calls to fill; goroutine overhead only when
// workers > 1 and the level is large enough to amortize it.
func fillSlots(workers int, slots []int, fill func(slot int)) error {
	// Sequential fast path: single worker or a level too small to split.
	if workers <= 1 || len(slots) < minParallelSlots {
		for _, s := range slots {
			fill(s)
		}

		return nil
	}

	// Contiguous chunks keep each goroutine on a cache-friendly slot range.
	g := new(errgroup.Group)
	g.SetLimit(workers)
	chunk := (len(slots) + workers - 1) / workers
	for start := 0; start < len(slots); start += chunk {
		part := slots[start:min(start+chunk, len(slots))]
		g.Go(func() error {
			for _, s := range part {
				fill(s)
			}

			return nil
		})
	}

	return g.Wait()
}
