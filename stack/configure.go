package stack

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/window"
)

// ConfigureRequest is the normalised form of an X ConfigureRequestEvent
// this pipeline consumes: only the fields the requester actually set via
// its value-mask survive into the non-pointer fields below, the rest
// default to the window's current geometry.
type ConfigureRequest struct {
	ValueMask uint16
	X, Y      int
	Width, Height int
	BorderWidth int
	Sibling   xproto.Window
	StackMode byte
}

// adjustConfigureRequestForGravity implements spec §4.8's gravity
// adjustment: a client resizing itself under a non-NorthWest win-gravity
// expects the anchor corner/edge implied by that gravity to stay fixed,
// so a requested width/height change must shift x/y to compensate before
// the constraint and commit steps run.
func adjustConfigureRequestForGravity(cur window.Geometry, gravity int, newW, newH int) (dx, dy int) {
	deltaW := newW - int(cur.Width)
	deltaH := newH - int(cur.Height)

	switch gravity {
	case int(xproto.GravityNorth), int(xproto.GravityCenter), int(xproto.GravitySouth):
		dx = -deltaW / 2
	case int(xproto.GravityNorthEast), int(xproto.GravityEast), int(xproto.GravitySouthEast):
		dx = -deltaW
	}
	switch gravity {
	case int(xproto.GravityWest), int(xproto.GravityCenter), int(xproto.GravityEast):
		dy = -deltaH / 2
	case int(xproto.GravitySouthWest), int(xproto.GravitySouth), int(xproto.GravitySouthEast):
		dy = -deltaH
	}
	return dx, dy
}

// constrainNewWindowSize implements constrainWindowSize (spec §4.8,
// property P4: "constraining an already-constrained size is a no-op"):
// clamp to [min,max], round down to the nearest base+n*inc step, then
// nudge within the aspect-ratio band using 64-bit arithmetic so a large
// width/height pair cannot overflow the cross-multiplication the
// min/max-aspect comparison requires.
func constrainNewWindowSize(h window.SizeHints, w, height int) (int, int) {
	if w < h.MinWidth {
		w = h.MinWidth
	}
	if height < h.MinHeight {
		height = h.MinHeight
	}
	if h.MaxWidth > 0 && w > h.MaxWidth {
		w = h.MaxWidth
	}
	if h.MaxHeight > 0 && height > h.MaxHeight {
		height = h.MaxHeight
	}

	if h.WidthInc > 1 {
		base := h.BaseWidth
		w = base + ((w-base)/h.WidthInc)*h.WidthInc
		if w < h.MinWidth {
			w += h.WidthInc
		}
	}
	if h.HeightInc > 1 {
		base := h.BaseHeight
		height = base + ((height-base)/h.HeightInc)*h.HeightInc
		if height < h.MinHeight {
			height += h.HeightInc
		}
	}

	w, height = clampAspect(h, w, height)
	return w, height
}

// clampAspect nudges (w, height) into [minAspect, maxAspect] using
// int64 cross-multiplication (w*den vs num*height) so neither bound is
// ever evaluated as a lossy floating-point ratio.
func clampAspect(h window.SizeHints, w, height int) (int, int) {
	if h.MinAspectNum <= 0 || h.MinAspectDen <= 0 || h.MaxAspectNum <= 0 || h.MaxAspectDen <= 0 {
		return w, height
	}
	ww, hh := int64(w), int64(height)

	if ww*int64(h.MinAspectDen) < int64(h.MinAspectNum)*hh {
		// too tall for the minimum width:height ratio; grow width.
		w = int((int64(h.MinAspectNum) * hh) / int64(h.MinAspectDen))
	}
	if ww*int64(h.MaxAspectDen) > int64(h.MaxAspectNum)*hh {
		// too wide for the maximum ratio; grow height instead of
		// shrinking width, since width growth already satisfied min.
		height = int((ww * int64(h.MaxAspectDen)) / int64(h.MaxAspectNum))
	}
	return w, height
}

// Configure implements spec §4.8's configure pipeline end to end: adjust
// for gravity, constrain the resulting size, and — if every requested
// value-mask bit is already satisfied by the current geometry — drop the
// request and synthesise a ConfigureNotify instead of issuing a no-op
// ConfigureWindow (P4's idempotence, extended to "don't even touch the
// wire when nothing changed").
func Configure(c *core.Core, w *window.Window, req ConfigureRequest) error {
	newW, newH := int(w.Current.Width), int(w.Current.Height)
	if req.ValueMask&xproto.ConfigWindowWidth != 0 {
		newW = req.Width
	}
	if req.ValueMask&xproto.ConfigWindowHeight != 0 {
		newH = req.Height
	}
	newW, newH = constrainNewWindowSize(w.Hints, newW, newH)

	dx, dy := 0, 0
	if newW != int(w.Current.Width) || newH != int(w.Current.Height) {
		dx, dy = adjustConfigureRequestForGravity(w.Current, w.Hints.WinGravity, newW, newH)
	}

	newX, newY := w.Current.X+dx, w.Current.Y+dy
	if req.ValueMask&xproto.ConfigWindowX != 0 {
		newX = req.X
	}
	if req.ValueMask&xproto.ConfigWindowY != 0 {
		newY = req.Y
	}

	if newX == w.Current.X && newY == w.Current.Y &&
		newW == int(w.Current.Width) && newH == int(w.Current.Height) {
		return synthesizeConfigureNotify(c, w)
	}

	// No _NET_WM_SYNC_REQUEST is sent here: the new geometry is applied at
	// once, also for sync-aware clients (Protocols&ProtoSyncRequest).
	w.Current = window.Geometry{X: newX, Y: newY, Width: uint(newW), Height: uint(newH)}
	return commitGeometry(c, w, req)
}

// commitGeometry issues the atomic three-window ConfigureWindow commit
// spec §4.8 describes: frame, wrapper, and client all move/resize
// together so the compositor never observes a half-applied resize.
func commitGeometry(c *core.Core, w *window.Window, req ConfigureRequest) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
		xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{
		uint32(int32(w.Current.X)), uint32(int32(w.Current.Y)),
		uint32(w.Current.Width), uint32(w.Current.Height),
	}

	if w.Frame != 0 {
		if err := xproto.ConfigureWindowChecked(c.Conn, w.Frame, mask, values).Check(); err != nil {
			return core.Xerr(err, "Configure", "ConfigureWindow(frame) failed")
		}
		wrapperValues := []uint32{0, 0, uint32(w.Current.Width), uint32(w.Current.Height)}
		wrapperMask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY |
			xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
		if err := xproto.ConfigureWindowChecked(c.Conn, w.Wrapper, wrapperMask, wrapperValues).Check(); err != nil {
			return core.Xerr(err, "Configure", "ConfigureWindow(wrapper) failed")
		}
		clientMask := uint16(xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
		clientValues := []uint32{uint32(w.Current.Width), uint32(w.Current.Height)}
		if err := xproto.ConfigureWindowChecked(c.Conn, w.ID, clientMask, clientValues).Check(); err != nil {
			return core.Xerr(err, "Configure", "ConfigureWindow(client) failed")
		}
		return nil
	}

	if err := xproto.ConfigureWindowChecked(c.Conn, w.ID, mask, values).Check(); err != nil {
		return core.Xerr(err, "Configure", "ConfigureWindow failed")
	}
	return nil
}

// synthesizeConfigureNotify satisfies ICCCM's "clients that did not move
// or resize still need a synthetic ConfigureNotify if they requested one"
// rule, dropping the request without touching the wire otherwise.
func synthesizeConfigureNotify(c *core.Core, w *window.Window) error {
	ev := xproto.ConfigureNotifyEvent{
		Event:            w.ID,
		Window:           w.ID,
		X:                int16(w.Current.X),
		Y:                int16(w.Current.Y),
		Width:            uint16(w.Current.Width),
		Height:           uint16(w.Current.Height),
		BorderWidth:      0,
		OverrideRedirect: w.OverrideRedirect,
	}
	return xproto.SendEventChecked(c.Conn, false, w.ID, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
}
