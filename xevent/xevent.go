/*
Package xevent implements the event-dispatch substrate (spec §4.6, C6): a
registry of callbacks keyed by event type name and, optionally, by target
window, plus a Dispatch function that type-switches a raw xgb.Event and
runs every matching callback — global handlers first, then window-scoped
ones.

Grounded in the teacher's keybind/mousebind packages: a mutex-guarded
registry of (key, callbacks) is the same Connect/Run shape those packages
use for key and button grabs, generalized here from a (window, keycode) key
to a (event type, window) key. The teacher's own xevent package (the
pre-2013 evtypes.go/types.go ClientMessageData-from-scratch encoders) is
superseded: modern BurntSushi/xgb already generates typed event structs
with a Bytes() encoder per event, so there is nothing left to hand-roll.
*/
package xevent

import (
	"sync"

	"github.com/BurntSushi/xgb"
	xsync "github.com/BurntSushi/xgb/sync"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
)

// Callback handles one dispatched event. win is 0 for callbacks connected
// globally (not tied to a specific window).
type Callback func(c *core.Core, win xproto.Window, ev xgb.Event)

type key struct {
	evType string
	win    xproto.Window
}

// Dispatcher is the event-callback registry. main creates one, which the
// Loop holds.
type Dispatcher struct {
	mu    sync.RWMutex
	hooks map[key][]Callback
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{hooks: make(map[key][]Callback)}
}

// Connect registers cb for events of the named type (e.g. "ConfigureRequest",
// "PropertyNotify") on win. win == 0 registers a global callback that runs
// for every event of that type regardless of target window.
func (d *Dispatcher) Connect(evType string, win xproto.Window, cb Callback) {
	d.mu.Lock()
	defer d.mu.Unlock()
	k := key{evType, win}
	d.hooks[k] = append(d.hooks[k], cb)
}

// Detach drops every callback registered against win, used when a window is
// unmanaged (spec §4.5's destroy/unmap lifecycle, invariant I7).
func (d *Dispatcher) Detach(win xproto.Window) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for k := range d.hooks {
		if k.win == win {
			delete(d.hooks, k)
		}
	}
}

// Dispatch type-switches ev, resolves its type name and target window, and
// runs global callbacks followed by window-scoped callbacks.
func (d *Dispatcher) Dispatch(c *core.Core, ev xgb.Event) {
	evType, win := classify(ev)
	if evType == "" {
		return
	}

	d.mu.RLock()
	global := append([]Callback(nil), d.hooks[key{evType, 0}]...)
	var scoped []Callback
	if win != 0 {
		scoped = append([]Callback(nil), d.hooks[key{evType, win}]...)
	}
	d.mu.RUnlock()

	for _, cb := range global {
		cb(c, win, ev)
	}
	for _, cb := range scoped {
		cb(c, win, ev)
	}
}

// classify extracts a stable type name and the most relevant target window
// from a subset of xproto events: the ones compiz-core's window engine,
// stacking engine and focus policy dispatch on.
func classify(ev xgb.Event) (string, xproto.Window) {
	switch e := ev.(type) {
	case xproto.MapRequestEvent:
		return "MapRequest", e.Window
	case xproto.MapNotifyEvent:
		return "MapNotify", e.Window
	case xproto.UnmapNotifyEvent:
		return "UnmapNotify", e.Window
	case xproto.DestroyNotifyEvent:
		return "DestroyNotify", e.Window
	case xproto.ConfigureRequestEvent:
		return "ConfigureRequest", e.Window
	case xproto.ConfigureNotifyEvent:
		return "ConfigureNotify", e.Window
	case xproto.CirculateRequestEvent:
		return "CirculateRequest", e.Window
	case xproto.CirculateNotifyEvent:
		return "CirculateNotify", e.Window
	case xproto.PropertyNotifyEvent:
		return "PropertyNotify", e.Window
	case xproto.ClientMessageEvent:
		return "ClientMessage", e.Window
	case xproto.CreateNotifyEvent:
		return "CreateNotify", e.Window
	case xproto.ReparentNotifyEvent:
		return "ReparentNotify", e.Window
	case xproto.GravityNotifyEvent:
		return "GravityNotify", e.Window
	case xproto.FocusInEvent:
		return "FocusIn", e.Event
	case xproto.FocusOutEvent:
		return "FocusOut", e.Event
	case xproto.EnterNotifyEvent:
		return "EnterNotify", e.Event
	case xproto.KeyPressEvent:
		return "KeyPress", e.Event
	case xproto.ButtonPressEvent:
		return "ButtonPress", e.Event
	case xproto.MappingNotifyEvent:
		return "MappingNotify", 0
	case xproto.SelectionClearEvent:
		return "SelectionClear", e.Owner
	case xproto.SelectionRequestEvent:
		return "SelectionRequest", e.Owner
	case xsync.AlarmNotifyEvent:
		return "AlarmNotify", 0
	default:
		return "", 0
	}
}

// ReplayPointer is a thin alias for AllowEvents with ReplayPointer mode,
// used by passive button grabs (screen edges, move/resize initiation) to
// hand the event back to the client after inspecting it.
func ReplayPointer(c *core.Core, time xproto.Timestamp) error {
	return xproto.AllowEventsChecked(c.Conn, xproto.AllowReplayPointer, time).Check()
}
