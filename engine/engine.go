/*
Package engine implements spec §4.6's X event dispatcher: it owns the
per-screen map of managed windows and wires xevent.Dispatcher's callbacks
to the window/stack/focus packages' domain operations (MapRequest →
window.Adopt/Manage, ConfigureRequest → stack.Configure/Restack,
PropertyNotify → window.Refresh, ClientMessage → changeState/activate/
close/ping, AlarmNotify → window.AlarmFired).

No teacher analogue: xgbutil ships the event-dispatch substrate (package
xevent) but no window-manager domain logic to hang off it. Engine is the
glue SPEC_FULL.md's component table (C6) calls for, consuming every other
domain package without any of them importing back.
*/
package engine

import (
	"sync"
	"time"

	"github.com/BurntSushi/xgb"
	xsync "github.com/BurntSushi/xgb/sync"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/display"
	"github.com/compiz-go/compizcore/ewmh"
	"github.com/compiz-go/compizcore/focus"
	"github.com/compiz-go/compizcore/screen"
	"github.com/compiz-go/compizcore/stack"
	"github.com/compiz-go/compizcore/window"
	"github.com/compiz-go/compizcore/xevent"
)

// Engine tracks every managed/override-redirect window across every
// screen of one Display and binds the event dispatcher to the domain
// packages that mutate them.
type Engine struct {
	Display *display.Display

	mu             sync.RWMutex
	byID           map[xproto.Window]*window.Window
	byAlarmCounter map[xsync.Counter]xproto.Window
}

// New constructs an Engine for d. Wire must be called once to connect its
// handlers to a dispatcher before the main loop starts draining events.
func New(d *display.Display) *Engine {
	return &Engine{
		Display:        d,
		byID:           make(map[xproto.Window]*window.Window),
		byAlarmCounter: make(map[xsync.Counter]xproto.Window),
	}
}

// screenFor finds the Screen owning root, nil if none (e.g. a stale event
// for a screen that already detached).
func (e *Engine) screenFor(root xproto.Window) *screen.Screen {
	for _, scr := range e.Display.Screens {
		if scr.Root == root {
			return scr
		}
	}
	return nil
}

func (e *Engine) get(id xproto.Window) (*window.Window, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	w, ok := e.byID[id]
	return w, ok
}

func (e *Engine) snapshot() map[xproto.Window]*window.Window {
	e.mu.RLock()
	defer e.mu.RUnlock()
	out := make(map[xproto.Window]*window.Window, len(e.byID))
	for k, v := range e.byID {
		out[k] = v
	}
	return out
}

func (e *Engine) put(w *window.Window) {
	e.mu.Lock()
	e.byID[w.ID] = w
	if w.Protocols&window.ProtoSyncRequest != 0 && w.SyncCounter != 0 {
		e.byAlarmCounter[w.SyncCounter] = w.ID
	}
	e.mu.Unlock()
}

func (e *Engine) drop(id xproto.Window) {
	e.mu.Lock()
	if w, ok := e.byID[id]; ok {
		delete(e.byAlarmCounter, w.SyncCounter)
	}
	delete(e.byID, id)
	e.mu.Unlock()
}

// Wire connects every handler this package implements to disp (spec
// §4.6: "a single function table dispatches on event type"). Call this
// once per Engine, before the main loop starts.
func (e *Engine) Wire(disp *xevent.Dispatcher) {
	disp.Connect("MapRequest", 0, e.handleMapRequest)
	disp.Connect("UnmapNotify", 0, e.handleUnmapNotify)
	disp.Connect("DestroyNotify", 0, e.handleDestroyNotify)
	disp.Connect("ConfigureRequest", 0, e.handleConfigureRequest)
	disp.Connect("PropertyNotify", 0, e.handlePropertyNotify)
	disp.Connect("ClientMessage", 0, e.handleClientMessage)
	disp.Connect("AlarmNotify", 0, e.handleAlarmNotify)
	e.Display.PingHook = e.pingSweep
}

// pingSweep implements spec §5's ping watchdog: every pingDelay, check
// whether each of this screen's normal, viewable, non-transient windows
// answered its previous ping, then send the next one.
func (e *Engine) pingSweep(c *core.Core, scr *screen.Screen, delay time.Duration) {
	for _, w := range e.snapshot() {
		if !scr.StackContains(w.ID) {
			continue
		}
		if w.WType != window.TypeNormal || !w.Mapped || w.TransientFor != 0 {
			continue
		}
		w.SweepPing()
		w.SendPing(c)
	}
}

func (e *Engine) handleMapRequest(c *core.Core, win xproto.Window, ev xgb.Event) {
	req, ok := ev.(xproto.MapRequestEvent)
	if !ok {
		return
	}
	if _, already := e.get(req.Window); already {
		if err := xproto.MapWindowChecked(c.Conn, req.Window).Check(); err != nil {
			c.Log.Warn().Err(err).Msg("MapWindow failed")
		}
		return
	}
	scr := e.screenFor(req.Parent)
	if scr == nil {
		return
	}

	w, err := window.Adopt(c, req.Window)
	if err != nil {
		c.Log.Warn().Err(err).Uint32("window", uint32(req.Window)).Msg("adopting mapped window failed")
		return
	}
	if err := window.Manage(c, scr, w, 0); err != nil {
		c.Log.Warn().Err(err).Uint32("window", uint32(req.Window)).Msg("managing mapped window failed")
		return
	}
	e.put(w)

	if err := xproto.MapWindowChecked(c.Conn, w.ID).Check(); err != nil {
		c.Log.Warn().Err(err).Msg("MapWindow failed")
		return
	}
	w.Mapped = true
	scr.RecordActive(w.ID)

	t := focus.GetUsageTimestamp(c, w)
	if focus.IsWindowFocusAllowed(c, w, t) {
		if err := focus.MoveInputFocusTo(c, e.Display, e.snapshot(), w, t); err != nil {
			c.Log.Warn().Err(err).Msg("moveInputFocusTo on map failed")
		}
	}
}

func (e *Engine) handleUnmapNotify(c *core.Core, win xproto.Window, ev xgb.Event) {
	evt, ok := ev.(xproto.UnmapNotifyEvent)
	if !ok {
		return
	}
	w, ok := e.get(evt.Window)
	if !ok {
		return
	}
	if w.PendingUnmaps > 0 {
		// Self-triggered unmap from hide()/reparent, not a client withdrawal.
		w.PendingUnmaps--
		return
	}
	e.withdraw(c, w)
}

func (e *Engine) handleDestroyNotify(c *core.Core, win xproto.Window, ev xgb.Event) {
	evt, ok := ev.(xproto.DestroyNotifyEvent)
	if !ok {
		return
	}
	if w, ok := e.get(evt.Window); ok {
		e.withdraw(c, w)
	}
}

func (e *Engine) withdraw(c *core.Core, w *window.Window) {
	if scr := e.screenForWindow(w.ID); scr != nil {
		window.Withdraw(c, scr, w)
	}
	e.drop(w.ID)
}

func (e *Engine) handleConfigureRequest(c *core.Core, win xproto.Window, ev xgb.Event) {
	evt, ok := ev.(xproto.ConfigureRequestEvent)
	if !ok {
		return
	}
	w, ok := e.get(evt.Window)
	if !ok {
		// Unmanaged/override-redirect window: honour the request verbatim.
		mask := uint16(evt.ValueMask)
		values := configureValues(evt)
		if err := xproto.ConfigureWindowChecked(c.Conn, evt.Window, mask, values).Check(); err != nil {
			c.Log.Warn().Err(err).Msg("ConfigureWindow on unmanaged window failed")
		}
		return
	}

	req := stack.ConfigureRequest{
		ValueMask:   uint16(evt.ValueMask),
		X:           int(evt.X),
		Y:           int(evt.Y),
		Width:       int(evt.Width),
		Height:      int(evt.Height),
		BorderWidth: int(evt.BorderWidth),
		Sibling:     evt.Sibling,
		StackMode:   evt.StackMode,
	}
	if w.SyncWait {
		// A resize is already in flight; stash the new target geometry and
		// let AlarmFired/WatchdogExpired apply it once the pending one
		// resolves (spec §4.6: "if syncWait, stash into syncGeometry only").
		w.SyncGeom = window.Geometry{X: req.X, Y: req.Y, Width: uint(req.Width), Height: uint(req.Height)}
		return
	}
	if err := stack.Configure(c, w, req); err != nil {
		c.Log.Warn().Err(err).Msg("Configure failed")
	}

	if req.ValueMask&xproto.ConfigWindowSibling != 0 || req.ValueMask&xproto.ConfigWindowStackMode != 0 {
		scr := e.screenForWindow(w.ID)
		if scr != nil {
			if err := stack.Restack(c, scr, e.snapshot(), w, req.Sibling); err != nil {
				c.Log.Warn().Err(err).Msg("restack from ConfigureRequest failed")
			}
		}
	}
}

func configureValues(evt xproto.ConfigureRequestEvent) []uint32 {
	var vals []uint32
	if evt.ValueMask&xproto.ConfigWindowX != 0 {
		vals = append(vals, uint32(int32(evt.X)))
	}
	if evt.ValueMask&xproto.ConfigWindowY != 0 {
		vals = append(vals, uint32(int32(evt.Y)))
	}
	if evt.ValueMask&xproto.ConfigWindowWidth != 0 {
		vals = append(vals, uint32(evt.Width))
	}
	if evt.ValueMask&xproto.ConfigWindowHeight != 0 {
		vals = append(vals, uint32(evt.Height))
	}
	if evt.ValueMask&xproto.ConfigWindowBorderWidth != 0 {
		vals = append(vals, uint32(evt.BorderWidth))
	}
	if evt.ValueMask&xproto.ConfigWindowSibling != 0 {
		vals = append(vals, uint32(evt.Sibling))
	}
	if evt.ValueMask&xproto.ConfigWindowStackMode != 0 {
		vals = append(vals, uint32(evt.StackMode))
	}
	return vals
}

// screenForWindow finds the screen that owns a managed window, by its
// presence in that screen's stacking list.
func (e *Engine) screenForWindow(id xproto.Window) *screen.Screen {
	for _, scr := range e.Display.Screens {
		if scr.StackContains(id) {
			return scr
		}
	}
	return nil
}

func (e *Engine) handlePropertyNotify(c *core.Core, win xproto.Window, ev xgb.Event) {
	evt, ok := ev.(xproto.PropertyNotifyEvent)
	if !ok {
		return
	}
	w, ok := e.get(evt.Window)
	if !ok {
		return
	}
	name, err := c.AtomName(evt.Atom)
	if err != nil {
		return
	}
	if name == "_NET_WM_STRUT" || name == "_NET_WM_STRUT_PARTIAL" {
		scr := e.screenForWindow(w.ID)
		if scr == nil || len(scr.Outputs) == 0 {
			return
		}
		head := scr.Outputs[scr.CurrentOutput]
		w.UpdateStruts(c, int(head.Width), int(head.Height))
		return
	}
	if err := w.Refresh(c, name); err != nil {
		c.Log.Warn().Err(err).Str("property", name).Msg("refreshing window property failed")
	}
}

func (e *Engine) handleClientMessage(c *core.Core, win xproto.Window, ev xgb.Event) {
	evt, ok := ev.(xproto.ClientMessageEvent)
	if !ok {
		return
	}
	msgType, err := c.AtomName(evt.Type)
	if err != nil {
		return
	}
	w, haveWin := e.get(evt.Window)

	switch msgType {
	case "_NET_WM_STATE":
		if !haveWin {
			return
		}
		data := evt.Data.Data32
		action, a1, a2 := data[0], xproto.Atom(data[1]), xproto.Atom(data[2])
		e.applyNetWmState(c, w, action, a1, a2)

	case "_NET_ACTIVE_WINDOW":
		if !haveWin {
			return
		}
		data := evt.Data.Data32
		t := xproto.Timestamp(data[1])
		source := data[0]
		if source == 2 || focus.IsWindowFocusAllowed(c, w, t) {
			if err := focus.Activate(c, e.Display, e.snapshot(), w, t); err != nil {
				c.Log.Warn().Err(err).Msg("activate via _NET_ACTIVE_WINDOW failed")
			}
		}

	case "_NET_CLOSE_WINDOW":
		if !haveWin {
			return
		}
		if w.Protocols&window.ProtoDeleteWindow != 0 {
			a, _ := c.Atom("WM_DELETE_WINDOW", false)
			if err := ewmh.ClientEvent(c, w.ID, "WM_PROTOCOLS", uint32(a), uint32(evt.Data.Data32[0])); err != nil {
				c.Log.Warn().Err(err).Msg("sending WM_DELETE_WINDOW failed")
			}
		} else if err := xproto.KillClientChecked(c.Conn, uint32(w.ID)).Check(); err != nil {
			c.Log.Warn().Err(err).Msg("KillClient failed")
		}

	case "WM_PROTOCOLS":
		protoAtom := xproto.Atom(evt.Data.Data32[0])
		name, err := c.AtomName(protoAtom)
		if err != nil {
			return
		}
		if name == "_NET_WM_PING" {
			// The client echoes this back to the root window with its own
			// id in data32[2], not to itself, so haveWin is typically false
			// here.
			target := evt.Window
			if !haveWin {
				target = xproto.Window(evt.Data.Data32[2])
			}
			if tw, ok := e.get(target); ok {
				tw.RecordPong()
			}
		}

	case "_NET_CURRENT_DESKTOP":
		if err := ewmh.CurrentDesktopSet(c, evt.Data.Data32[0]); err != nil {
			c.Log.Warn().Err(err).Msg("setting _NET_CURRENT_DESKTOP failed")
		}

	case "_NET_WM_DESKTOP":
		if haveWin {
			w.Desktop = int32(evt.Data.Data32[0])
		}

	case "_NET_REQUEST_FRAME_EXTENTS":
		if haveWin {
			extents := ewmh.FrameExtents{
				Left:   uint32(w.OutputExtents.Left),
				Right:  uint32(w.OutputExtents.Right),
				Top:    uint32(w.OutputExtents.Top),
				Bottom: uint32(w.OutputExtents.Bottom),
			}
			if err := ewmh.FrameExtentsSet(c, w.ID, extents); err != nil {
				c.Log.Warn().Err(err).Msg("setting _NET_FRAME_EXTENTS failed")
			}
		}
	}
}

// applyNetWmState implements the _NET_WM_STATE ClientMessage handling
// spec §4.6 describes: interpret action ∈ {add=1, remove=0, toggle=2}
// against the two proposed atoms, run the result through
// window.ConstrainWindowState, and commit via changeState.
func (e *Engine) applyNetWmState(c *core.Core, w *window.Window, action uint32, a1, a2 xproto.Atom) {
	bit := func(a xproto.Atom) window.State {
		name, err := c.AtomName(a)
		if err != nil {
			return 0
		}
		switch name {
		case "_NET_WM_STATE_STICKY":
			return window.StateSticky
		case "_NET_WM_STATE_MAXIMIZED_HORZ":
			return window.StateMaximizedHorz
		case "_NET_WM_STATE_MAXIMIZED_VERT":
			return window.StateMaximizedVert
		case "_NET_WM_STATE_SHADED":
			return window.StateShaded
		case "_NET_WM_STATE_HIDDEN":
			return window.StateHidden
		case "_NET_WM_STATE_FULLSCREEN":
			return window.StateFullscreen
		case "_NET_WM_STATE_ABOVE":
			return window.StateAbove
		case "_NET_WM_STATE_BELOW":
			return window.StateBelow
		case "_NET_WM_STATE_MODAL":
			return window.StateModal
		case "_NET_WM_STATE_DEMANDS_ATTENTION":
			return window.StateDemandsAttention
		case "_NET_WM_STATE_SKIP_PAGER":
			return window.StateSkipPager
		case "_NET_WM_STATE_SKIP_TASKBAR":
			return window.StateSkipTaskbar
		}
		return 0
	}

	mask := bit(a1) | bit(a2)
	if mask == 0 {
		return
	}

	next := w.WState
	switch action {
	case 0: // _NET_WM_STATE_REMOVE
		next &^= mask
	case 1: // _NET_WM_STATE_ADD
		next |= mask
	case 2: // _NET_WM_STATE_TOGGLE
		next ^= mask
	default:
		return
	}

	next = window.ConstrainWindowState(next)
	if err := w.ChangeState(c, next); err != nil {
		c.Log.Warn().Err(err).Msg("changeState from _NET_WM_STATE failed")
	}
}

func (e *Engine) handleAlarmNotify(c *core.Core, win xproto.Window, ev xgb.Event) {
	evt, ok := ev.(xsync.AlarmNotifyEvent)
	if !ok {
		return
	}
	e.mu.RLock()
	id, tracked := e.byAlarmCounter[evt.Counter]
	e.mu.RUnlock()
	if !tracked {
		return
	}
	w, ok := e.get(id)
	if !ok {
		return
	}
	value := int64(evt.CounterValue.Hi)<<32 | int64(evt.CounterValue.Lo)
	w.AlarmFired(value)
}
