package keybind

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
)

// GrabberFun is one phase of a keyboard-driven operation (e.g. an alt-tab
// switcher): begin returns false to cancel before grabbing, step runs on
// every subsequent KeyPress while the grab holds, end runs on the
// terminating KeyRelease.
type GrabberFun func(c *core.Core)

// Grabber holds the active keyboard-grab state for one screen. Only one
// keyboard-driven operation can be in progress at a time, matching the
// teacher's single package-level grabber state in grab.go.
type Grabber struct {
	active bool
	step   GrabberFun
	end    GrabberFun
}

// Begin runs begin and, if it returns true, starts a keyboard grab on win;
// step then runs on every further KeyPress and end on the releasing
// KeyRelease.
func (g *Grabber) Begin(c *core.Core, win xproto.Window, begin func(c *core.Core) bool, step, end GrabberFun) error {
	if g.active {
		return nil
	}
	if !begin(c) {
		return nil
	}

	status, err := xproto.GrabKeyboard(c.Conn, true, win, xproto.TimeCurrentTime,
		xproto.GrabModeAsync, xproto.GrabModeAsync).Reply()
	if err != nil {
		return core.Xerr(err, "Grabber.Begin", "GrabKeyboard failed")
	}
	if status.Status != xproto.GrabStatusSuccess {
		return core.Uerr("Grabber.Begin", "GrabKeyboard did not succeed, status=%d", status.Status)
	}

	g.active = true
	g.step = step
	g.end = end
	return nil
}

// Step runs the registered step callback, or ungrabs if no grab is active
// (defensive: a stray event after End should not panic).
func (g *Grabber) Step(c *core.Core) {
	if !g.active || g.step == nil {
		g.Cancel(c)
		return
	}
	g.step(c)
}

// End runs the registered end callback and releases the grab.
func (g *Grabber) End(c *core.Core) {
	if g.active && g.end != nil {
		g.end(c)
	}
	g.Cancel(c)
}

// Cancel releases the keyboard grab without running end, used to recover
// from an inconsistent state.
func (g *Grabber) Cancel(c *core.Core) {
	if g.active {
		xproto.UngrabKeyboardChecked(c.Conn, xproto.TimeCurrentTime).Check()
	}
	g.active = false
	g.step = nil
	g.end = nil
}

// Active reports whether a keyboard-driven operation is in progress.
func (g *Grabber) Active() bool { return g.active }
