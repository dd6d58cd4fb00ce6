package window

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
)

// framePadding is the border each side of the frame would extend past the
// client's current geometry. It is 0 and nothing reads it: reparent sizes
// the frame to the client's geometry exactly.
const framePadding = 0

// reparent implements spec §4.5.4's reparenting step: create a frame and
// an inner wrapper window at the client's depth/visual/colormap, reparent
// the client into the wrapper, insert the frame just below the client in
// the server's stacking order, grab AnyButton/AnyModifier on the frame so
// clicks anywhere on it can be intercepted, and add the client to the
// server's save-set so an unexpected compiz-core exit leaves it reparented
// back to root rather than orphaned under a dead frame.
func (w *Window) reparent(c *core.Core, root xproto.Window) error {
	setup := xproto.Setup(c.Conn)
	var screenInfo *xproto.ScreenInfo
	for i := range setup.Roots {
		if setup.Roots[i].Root == root {
			screenInfo = &setup.Roots[i]
			break
		}
	}
	if screenInfo == nil {
		return core.Uerr("reparent", "root window %x not found in connection setup", root)
	}

	frame, err := xproto.NewWindowId(c.Conn)
	if err != nil {
		return core.Xerr(err, "reparent", "NewWindowId (frame) failed")
	}
	wrapper, err := xproto.NewWindowId(c.Conn)
	if err != nil {
		return core.Xerr(err, "reparent", "NewWindowId (wrapper) failed")
	}

	fx, fy := int16(w.Current.X), int16(w.Current.Y)
	fw, fh := uint16(w.Current.Width), uint16(w.Current.Height)

	err = xproto.CreateWindowChecked(c.Conn, screenInfo.RootDepth, frame, root,
		fx, fy, fw, fh, 0, xproto.WindowClassInputOutput, screenInfo.RootVisual,
		xproto.CwEventMask,
		[]uint32{uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)}).Check()
	if err != nil {
		return core.Xerr(err, "reparent", "CreateWindow(frame) failed")
	}

	err = xproto.CreateWindowChecked(c.Conn, w.Depth, wrapper, frame,
		0, 0, fw, fh, 0, xproto.WindowClassInputOutput, w.Visual,
		xproto.CwEventMask, []uint32{uint32(xproto.EventMaskSubstructureRedirect)}).Check()
	if err != nil {
		xproto.DestroyWindow(c.Conn, frame)
		return core.Xerr(err, "reparent", "CreateWindow(wrapper) failed")
	}

	if err := xproto.ConfigureWindowChecked(c.Conn, frame,
		xproto.ConfigWindowSibling|xproto.ConfigWindowStackMode,
		[]uint32{uint32(w.ID), uint32(xproto.StackModeBelow)}).Check(); err != nil {
		c.Log.Warn().Err(err).Uint32("frame", uint32(frame)).Msg("stacking frame below client failed")
	}

	if err := xproto.ChangeSaveSetChecked(c.Conn, xproto.SetModeInsert, w.ID).Check(); err != nil {
		xproto.DestroyWindow(c.Conn, wrapper)
		xproto.DestroyWindow(c.Conn, frame)
		return core.Xerr(err, "reparent", "ChangeSaveSet(insert) failed")
	}

	if err := xproto.ReparentWindowChecked(c.Conn, w.ID, wrapper, 0, 0).Check(); err != nil {
		xproto.DestroyWindow(c.Conn, wrapper)
		xproto.DestroyWindow(c.Conn, frame)
		return core.Xerr(err, "reparent", "ReparentWindow failed")
	}

	err = xproto.GrabButtonChecked(c.Conn, false, frame,
		uint16(xproto.EventMaskButtonPress), xproto.GrabModeSync, xproto.GrabModeAsync,
		0, 0, 0 /* AnyButton */, 0x8000 /* AnyModifier */).Check()
	if err != nil {
		c.Log.Warn().Err(err).Uint32("frame", uint32(frame)).Msg("AnyButton grab on frame failed")
	}

	w.Frame, w.Wrapper = frame, wrapper
	return nil
}

// unreparent implements the teardown half of spec §4.5.4: remove the
// client from the save-set, reparent it to root at its current position,
// and destroy the frame/wrapper pair. The client is not restacked to the
// frame's former stacking position. Called from destroy/
// withdraw handling, never from hide/show (which only map/unmap the
// frame).
func (w *Window) unreparent(c *core.Core, root xproto.Window) {
	if w.Frame == 0 {
		return
	}
	xproto.ChangeSaveSetChecked(c.Conn, xproto.SetModeDelete, w.ID).Check()
	xproto.ReparentWindowChecked(c.Conn, w.ID, root, int16(w.Current.X), int16(w.Current.Y)).Check()
	xproto.DestroyWindow(c.Conn, w.Wrapper)
	xproto.DestroyWindow(c.Conn, w.Frame)
	w.Frame, w.Wrapper = 0, 0
}

// mapFrame/unmapFrame back ChangeState's hide()/show(): once reparented,
// mapping state is driven through the frame so the compositor sees one
// coherent top-level window instead of toggling the client directly.
func mapFrame(c *core.Core, w *Window) error {
	target := w.Frame
	if target == 0 {
		target = w.ID
	}
	return xproto.MapWindowChecked(c.Conn, target).Check()
}

func unmapFrame(c *core.Core, w *Window) error {
	target := w.Frame
	if target == 0 {
		target = w.ID
	}
	return xproto.UnmapWindowChecked(c.Conn, target).Check()
}
