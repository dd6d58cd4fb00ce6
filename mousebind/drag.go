package mousebind

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
)

// DragBeginFun runs once at the start of a drag; it returns whether to
// proceed and which cursor to grab with (e.g. a resize-corner cursor).
type DragBeginFun func(c *core.Core, rootX, rootY, eventX, eventY int) (bool, xproto.Cursor)

// DragFun runs on every subsequent pointer motion/release during a drag.
type DragFun func(c *core.Core, rootX, rootY, eventX, eventY int)

// Drag tracks one interactive drag (move, resize, or a plugin-driven
// operation) for a screen: the window being acted on, and the begin/step/end
// callbacks currently installed. Only one drag can be active at a time per
// screen, mirroring the teacher's package-level MouseDrag state on XUtil.
type Drag struct {
	active bool
	win    xproto.Window
	step   DragFun
	end    DragFun
}

// Begin starts a drag on win if none is active: it runs begin, and if that
// approves, grabs the pointer confined to the root window and installs
// step/end for subsequent events.
func (d *Drag) Begin(c *core.Core, root, win xproto.Window, ev xproto.ButtonPressEvent, begin DragBeginFun, step, end DragFun) error {
	if d.active {
		return nil
	}

	proceed, cursor := begin(c, int(ev.RootX), int(ev.RootY), int(ev.EventX), int(ev.EventY))
	if !proceed {
		return nil
	}

	ok, err := GrabPointer(c, win, root, cursor)
	if err != nil {
		return err
	}
	if !ok {
		return core.Uerr("Drag.Begin", "could not establish a pointer grab on %x", win)
	}

	d.active = true
	d.win = win
	d.step = step
	d.end = end
	return nil
}

// Step runs the registered step callback on a MotionNotify/ButtonPress
// event while a drag is active.
func (d *Drag) Step(c *core.Core, rootX, rootY, eventX, eventY int) {
	if !d.active || d.step == nil {
		d.Cancel(c)
		return
	}
	d.step(c, rootX, rootY, eventX, eventY)
}

// End runs the registered end callback, then releases the pointer grab.
func (d *Drag) End(c *core.Core, rootX, rootY, eventX, eventY int) {
	if d.active && d.end != nil {
		d.end(c, rootX, rootY, eventX, eventY)
	}
	d.Cancel(c)
}

// Cancel releases the pointer grab without running end.
func (d *Drag) Cancel(c *core.Core) {
	if d.active {
		UngrabPointer(c)
	}
	d.active = false
	d.step = nil
	d.end = nil
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.active }

// Window returns the window the active drag targets.
func (d *Drag) Window() xproto.Window { return d.win }
