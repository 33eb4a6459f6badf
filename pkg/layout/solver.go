package layout

import (
	"math"
	"strconv"

	"github.com/go-lucid/lucid/pkg/box"
	"github.com/go-lucid/lucid/pkg/errors"
	"github.com/go-lucid/lucid/pkg/geometry"
)

// Epsilon is the convergence threshold of the solver. Residual space below
// it is considered distributed.
const Epsilon = 0.001

// Solve distributes the difference between the available extent and the
// boxes' summed preferred extents along one axis, mutating each box's
// current size in place. Callers must reset current sizes to preferred
// before calling.
//
// The loop is fair-share with caps: each pass splits the remaining space
// equally among the still-eligible boxes, clamps every proposal at the
// box's limit, deducts only what was actually applied and drops boxes that
// hit their limit. A growing box without a maximum stays eligible
// indefinitely; a shrinking box without a minimum floors at zero.
//
// The returned count is the number of passes, for diagnostics. A non-nil
// error is an *errors.InvariantError: a size the loop produced escaped its
// declared limit, which is a logic defect the caller must treat as fatal.
// Boxes the loop never resized are not checked.
func Solve(boxes []*box.Box, available float64, axis geometry.Axis) (int, error) {
	totalPreferred := 0.0
	for _, b := range boxes {
		totalPreferred += b.Preferred().Along(axis)
	}
	diff := available - totalPreferred
	grow := diff > 0

	before := make([]float64, len(boxes))
	for i, b := range boxes {
		before[i] = b.Current().Along(axis)
	}

	eligible := make([]*box.Box, 0, len(boxes))
	for _, b := range boxes {
		h := b.Behavior(axis)
		if (grow && h.CanGrow()) || (!grow && h.CanShrink()) {
			eligible = append(eligible, b)
		}
	}

	remaining := math.Abs(diff)
	direction := 1.0
	if !grow {
		direction = -1
	}

	iterations := 0
	for remaining > Epsilon && len(eligible) > 0 {
		iterations++
		share := remaining / float64(len(eligible))
		next := eligible[:0]
		for _, b := range eligible {
			cur := b.Current().Along(axis)
			proposed := cur + direction*share
			atLimit := false
			if grow {
				if ceiling, ok := b.GrowCeiling(axis); ok && proposed >= ceiling {
					proposed = ceiling
					atLimit = true
				}
			} else {
				if floor := b.ShrinkFloor(axis); proposed <= floor {
					proposed = floor
					atLimit = true
				}
			}
			remaining -= math.Abs(proposed - cur)
			b.SetCurrentAlong(axis, proposed)
			if !atLimit {
				next = append(next, b)
			}
		}
		eligible = next
	}

	// Verify only the sizes the loop produced. A box the loop never
	// touched keeps whatever the caller handed in, and a preferred size
	// outside its own limits is the caller's business, not a solver
	// defect.
	for i, b := range boxes {
		cur := b.Current().Along(axis)
		if cur == before[i] {
			continue
		}
		h := b.Behavior(axis)
		if h.CanGrow() {
			if ceiling, ok := b.GrowCeiling(axis); ok && cur > ceiling+Epsilon {
				return iterations, &errors.InvariantError{
					Op:    "layout.Solve",
					Box:   strconv.Itoa(i),
					Axis:  axis.String(),
					Value: cur,
					Limit: ceiling,
					Grow:  true,
				}
			}
		}
		if h.CanShrink() {
			if floor := b.ShrinkFloor(axis); cur < floor-Epsilon {
				return iterations, &errors.InvariantError{
					Op:    "layout.Solve",
					Box:   strconv.Itoa(i),
					Axis:  axis.String(),
					Value: cur,
					Limit: floor,
					Grow:  false,
				}
			}
		}
	}
	return iterations, nil
}
