package window

import (
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/ewmh"
	"github.com/compiz-go/compizcore/xinerama"
)

// MinEmptyArea is the floor updateStruts leaves between two opposing
// struts (spec §4.5.3, invariant I4): "no single window's struts may
// claim the entire output, leaving at least MinEmptyArea pixels free
// between opposing edges".
const MinEmptyArea = 76

// Workarea is one output's strut-reduced usable rectangle (spec §4.5.3,
// property P3: "workarea never grows by adding a window, only shrinks").
type Workarea struct {
	X, Y          int
	Width, Height int
}

// updateStruts implements spec §4.5.3: prefer _NET_WM_STRUT_PARTIAL over
// the older _NET_WM_STRUT when both are present (STRUT_PARTIAL carries the
// start/end spans that let a strut apply to only part of an edge), cap
// each of the four reservations so opposing edges always leave
// MinEmptyArea free, and record the result on the window for the
// RecomputeWorkareas pass to fold across every window on the screen.
func (w *Window) updateStruts(c *core.Core, outputW, outputH int) {
	var left, right, top, bottom uint32

	if partial, err := ewmh.WmStrutPartialGet(c, w.ID); err == nil {
		left, right, top, bottom = partial.Left, partial.Right, partial.Top, partial.Bottom
	} else if full, err := ewmh.WmStrutGet(c, w.ID); err == nil {
		left, right, top, bottom = full.Left, full.Right, full.Top, full.Bottom
	} else {
		w.Struts = [4]StrutRect{}
		return
	}

	if int(left)+int(right) > outputW-MinEmptyArea {
		excess := int(left) + int(right) - (outputW - MinEmptyArea)
		left, right = shrinkPair(left, right, uint32(excess))
	}
	if int(top)+int(bottom) > outputH-MinEmptyArea {
		excess := int(top) + int(bottom) - (outputH - MinEmptyArea)
		top, bottom = shrinkPair(top, bottom, uint32(excess))
	}

	w.Struts = [4]StrutRect{
		{X: 0, Y: 0, Width: int(left), Height: outputH},
		{X: outputW - int(right), Y: 0, Width: int(right), Height: outputH},
		{X: 0, Y: 0, Width: outputW, Height: int(top)},
		{X: 0, Y: outputH - int(bottom), Width: outputW, Height: int(bottom)},
	}
}

// shrinkPair reduces a and b proportionally by excess, keeping their
// ratio, so clamping never favors one edge over the other.
func shrinkPair(a, b, excess uint32) (uint32, uint32) {
	total := a + b
	if total == 0 {
		return a, b
	}
	aCut := excess * a / total
	bCut := excess - aCut
	if aCut > a {
		aCut = a
	}
	if bCut > b {
		bCut = b
	}
	return a - aCut, b - bCut
}

// RecomputeWorkareas folds every window's struts (clipped to the output(s)
// they intersect) into one Workarea per Xinerama head, the aggregation
// step spec §4.5.3 runs "on map/unmap/strut-change/output-reconfigure".
func RecomputeWorkareas(heads xinerama.Heads, windows []*Window) []Workarea {
	areas := make([]Workarea, len(heads))
	for i, head := range heads {
		areas[i] = Workarea{X: int(head.X), Y: int(head.Y), Width: int(head.Width), Height: int(head.Height)}
	}

	for _, w := range windows {
		if w.Destroyed || !w.Mapped {
			continue
		}
		for i, head := range heads {
			a := &areas[i]
			hx0, hy0 := int(head.X), int(head.Y)
			hx1, hy1 := hx0+int(head.Width), hy0+int(head.Height)

			left, right, top, bottom := w.Struts[0], w.Struts[1], w.Struts[2], w.Struts[3]
			if left.Width > 0 && rangesOverlap(hx0, hx1, left.X, left.Width) {
				clip := clampStrutToOutput(left.Width, hx0)
				if clip > a.X-hx0 {
					a.Width -= clip - (a.X - hx0)
					a.X = hx0 + clip
				}
			}
			if right.Width > 0 {
				clip := clampStrutToOutput(right.Width, hx1-right.X)
				edge := hx1 - clip
				if edge < a.X+a.Width {
					a.Width = edge - a.X
				}
			}
			if top.Height > 0 {
				clip := clampStrutToOutput(top.Height, hy0)
				if clip > a.Y-hy0 {
					a.Height -= clip - (a.Y - hy0)
					a.Y = hy0 + clip
				}
			}
			if bottom.Height > 0 {
				clip := clampStrutToOutput(bottom.Height, hy1-bottom.Y)
				edge := hy1 - clip
				if edge < a.Y+a.Height {
					a.Height = edge - a.Y
				}
			}
		}
	}
	return areas
}

func rangesOverlap(aStart, aEnd, bStart, bLen int) bool {
	bEnd := bStart + bLen
	return aStart < bEnd && bStart < aEnd
}

func clampStrutToOutput(strutExtent, availableToOutput int) int {
	if strutExtent > availableToOutput {
		return availableToOutput
	}
	return strutExtent
}
