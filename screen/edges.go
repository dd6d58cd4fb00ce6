package screen

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
)

// Edge names one of the 8 screen-edge/corner sub-windows the SUPPLEMENTED
// FEATURES section calls out: a small InputOnly window at each screen edge
// and corner, used by edge-triggered plugins (hot corners, edge flip) to
// get a passive EnterNotify without instrumenting every client window.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
	EdgeTopLeft
	EdgeTopRight
	EdgeBottomLeft
	EdgeBottomRight
	numEdges
)

const edgeThickness = 1

// EdgeWindows holds the 8 per-screen edge windows, created alongside the
// screen and destroyed with it.
type EdgeWindows struct {
	win [numEdges]xproto.Window
}

// Window returns the X id backing one edge, 0 if not yet created.
func (e *EdgeWindows) Window(edge Edge) xproto.Window { return e.win[edge] }

// createEdges creates all 8 edge windows sized against the root geometry.
// The edges keep this geometry; nothing in this module resizes them when
// the outputs change.
func createEdges(c *core.Core, root xproto.Window, w, h uint16) (EdgeWindows, error) {
	var edges EdgeWindows
	rects := edgeRects(w, h)
	for i := Edge(0); i < numEdges; i++ {
		r := rects[i]
		id, err := xproto.NewWindowId(c.Conn)
		if err != nil {
			return edges, core.Xerr(err, "createEdges", "NewWindowId failed")
		}
		err = xproto.CreateWindowChecked(c.Conn, 0, id, root,
			r.x, r.y, r.w, r.h, 0, xproto.WindowClassInputOnly, 0,
			xproto.CwEventMask,
			[]uint32{uint32(xproto.EventMaskEnterWindow | xproto.EventMaskLeaveWindow)}).Check()
		if err != nil {
			return edges, core.Xerr(err, "createEdges", "CreateWindow for edge %d failed", i)
		}
		edges.win[i] = id
	}
	return edges, nil
}

type edgeRect struct {
	x, y int16
	w, h uint16
}

// edgeRects lays out thin strips along each border and small squares at the
// corners, clipped to the screen dimensions.
func edgeRects(w, h uint16) [numEdges]edgeRect {
	var r [numEdges]edgeRect
	r[EdgeLeft] = edgeRect{0, int16(edgeThickness), edgeThickness, h - 2*edgeThickness}
	r[EdgeRight] = edgeRect{int16(w) - edgeThickness, int16(edgeThickness), edgeThickness, h - 2*edgeThickness}
	r[EdgeTop] = edgeRect{int16(edgeThickness), 0, w - 2*edgeThickness, edgeThickness}
	r[EdgeBottom] = edgeRect{int16(edgeThickness), int16(h) - edgeThickness, w - 2*edgeThickness, edgeThickness}
	r[EdgeTopLeft] = edgeRect{0, 0, edgeThickness, edgeThickness}
	r[EdgeTopRight] = edgeRect{int16(w) - edgeThickness, 0, edgeThickness, edgeThickness}
	r[EdgeBottomLeft] = edgeRect{0, int16(h) - edgeThickness, edgeThickness, edgeThickness}
	r[EdgeBottomRight] = edgeRect{int16(w) - edgeThickness, int16(h) - edgeThickness, edgeThickness, edgeThickness}
	return r
}

func destroyEdges(c *core.Core, edges EdgeWindows) {
	for _, id := range edges.win {
		if id != 0 {
			xproto.DestroyWindow(c.Conn, id)
		}
	}
}
