package layout

import (
	"fmt"
	"math"

	"github.com/go-lucid/lucid/pkg/box"
	"github.com/go-lucid/lucid/pkg/geometry"
	"github.com/go-lucid/lucid/pkg/platform"
)

// Alignment places children along an axis.
type Alignment int

const (
	// AlignCenter packs children in the middle, spaced by the stack's
	// distribution.
	AlignCenter Alignment = iota
	// AlignStart packs children at the axis origin with no gaps.
	AlignStart
	// AlignEnd packs children at the far edge with no gaps.
	AlignEnd
)

// String returns a human-readable representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Alignment(%d)", int(a))
	}
}

// Distribution spreads leftover main-axis space under centered alignment.
type Distribution int

const (
	// SpaceAround puts equal gaps around every child, edges included.
	SpaceAround Distribution = iota
	// SpaceBetween puts equal gaps between children only.
	SpaceBetween
)

// String returns a human-readable representation of the distribution.
func (d Distribution) String() string {
	switch d {
	case SpaceAround:
		return "space-around"
	case SpaceBetween:
		return "space-between"
	default:
		return fmt.Sprintf("Distribution(%d)", int(d))
	}
}

// Stack arranges children along one axis: sizes are solved on the main
// axis, placed per the main alignment, then adjusted and placed on the
// cross axis.
type Stack struct {
	Base
	direction      geometry.Axis
	mainAlignment  Alignment
	crossAlignment Alignment
	distribution   Distribution
}

// NewStack creates a stack along the given axis with centered alignment on
// both axes and space-around distribution. The preferred size matters only
// for a root stack; a nested stack has it overwritten by its parent.
func NewStack(direction geometry.Axis, preferred geometry.Size) *Stack {
	s := &Stack{
		direction: direction,
	}
	s.Init(s, preferred)
	return s
}

// Direction returns the main axis.
func (s *Stack) Direction() geometry.Axis { return s.direction }

// SetDirection changes the main axis.
func (s *Stack) SetDirection(a geometry.Axis) {
	s.direction = a
	s.RequestRealign()
}

// MainAlignment returns the alignment along the main axis.
func (s *Stack) MainAlignment() Alignment { return s.mainAlignment }

// SetMainAlignment changes the alignment along the main axis.
func (s *Stack) SetMainAlignment(a Alignment) {
	s.mainAlignment = a
	s.RequestRealign()
}

// CrossAlignment returns the alignment along the cross axis.
func (s *Stack) CrossAlignment() Alignment { return s.crossAlignment }

// SetCrossAlignment changes the alignment along the cross axis.
func (s *Stack) SetCrossAlignment(a Alignment) {
	s.crossAlignment = a
	s.RequestRealign()
}

// Distribution returns the main-axis distribution strategy.
func (s *Stack) Distribution() Distribution { return s.distribution }

// SetDistribution changes the main-axis distribution strategy.
func (s *Stack) SetDistribution(d Distribution) {
	s.distribution = d
	s.RequestRealign()
}

// Update sizes nested stacks before the regular frame traversal. A nested
// stack's preferred main extent is the smallest fit of its children: their
// sum when it runs along the same axis, otherwise their maximum. Its main
// minimum is pinned to that fit and its cross preferred tracks this stack's
// cross extent.
func (s *Stack) Update(frame *platform.Frame) error {
	main := s.direction
	cross := main.Cross()
	for _, c := range s.visibleChildren() {
		nested, ok := c.(*Stack)
		if !ok {
			continue
		}
		fit := 0.0
		if nested.direction == main {
			for _, gc := range nested.visibleChildren() {
				fit += gc.Box().Preferred().Along(main)
			}
		} else {
			for _, gc := range nested.visibleChildren() {
				fit = math.Max(fit, gc.Box().Preferred().Along(main))
			}
		}
		nb := nested.Box()
		nb.SetPreferredAlong(main, fit)
		nb.SetMinimum(main, box.LimitOf(fit))
		nb.SetPreferredAlong(cross, s.Box().Current().Along(cross))
	}
	return s.Base.Update(frame)
}

// PerformRealign recomputes child geometry from the stack's current size:
// solve main-axis sizes, place on the main axis, adjust cross-axis sizes,
// place on the cross axis, then invalidate resized content.
func (s *Stack) PerformRealign() error {
	main := s.direction
	cross := main.Cross()
	children := s.visibleChildren()

	for _, c := range children {
		c.Box().SetCurrent(c.Box().Preferred())
	}

	boxes := make([]*box.Box, len(children))
	for i, c := range children {
		boxes[i] = c.Box()
	}
	iterations, err := Solve(boxes, s.Box().Current().Along(main), main)
	s.Iterations = iterations
	if err != nil {
		return err
	}

	s.placeMain(children, main)
	available := s.Box().Current().Along(cross)
	for _, c := range children {
		b := c.Box()
		adjustCross(b, cross, available)
		switch s.crossAlignment {
		case AlignStart:
			b.SetPositionAlong(cross, 0)
		case AlignEnd:
			b.SetPositionAlong(cross, available-b.Current().Along(cross))
		case AlignCenter:
			b.SetPositionAlong(cross, (available-b.Current().Along(cross))/2)
		}
		if !b.IsFixed() {
			c.InvalidateSurface()
		}
	}
	return nil
}

// placeMain assigns main-axis positions per the stack's alignment.
func (s *Stack) placeMain(children []Node, main geometry.Axis) {
	available := s.Box().Current().Along(main)

	switch s.mainAlignment {
	case AlignStart:
		cursor := 0.0
		for _, c := range children {
			c.Box().SetPositionAlong(main, cursor)
			cursor += c.Box().Current().Along(main)
		}

	case AlignEnd:
		cursor := 0.0
		for i := len(children) - 1; i >= 0; i-- {
			b := children[i].Box()
			cursor += b.Current().Along(main)
			b.SetPositionAlong(main, available-cursor)
		}

	case AlignCenter:
		total := 0.0
		for _, c := range children {
			total += c.Box().Current().Along(main)
		}
		remaining := available - total

		gaps := len(children) + 1
		if s.distribution == SpaceBetween {
			gaps = len(children) - 1
		}
		gap := 0.0
		if gaps > 0 && remaining > 0 {
			gap = remaining / float64(gaps)
		}

		cursor := 0.0
		if s.distribution == SpaceAround {
			cursor = gap
		}
		for _, c := range children {
			c.Box().SetPositionAlong(main, cursor)
			cursor += c.Box().Current().Along(main) + gap
		}
	}
}

// adjustCross resizes one box on the cross axis per its size behavior.
// Growing boxes take the available extent, clamped at their maximum;
// shrinking boxes clamp down to their minimum only when the available
// extent is smaller than their current size.
func adjustCross(b *box.Box, cross geometry.Axis, available float64) {
	grow := func() {
		if ceiling, ok := b.GrowCeiling(cross); ok {
			b.SetCurrentAlong(cross, math.Min(ceiling, available))
		} else {
			b.SetCurrentAlong(cross, available)
		}
	}
	shrink := func() {
		if available < b.Current().Along(cross) {
			b.SetCurrentAlong(cross, math.Max(b.ShrinkFloor(cross), available))
		}
	}
	switch b.Behavior(cross) {
	case box.Grow:
		grow()
	case box.Shrink:
		shrink()
	case box.Flex:
		if available < b.Current().Along(cross) {
			shrink()
		} else {
			grow()
		}
	}
}
