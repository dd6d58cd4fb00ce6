/*
Package mousebind implements human-readable mouse button binding: parsing
strings like "Mod1-Button1" into (modifiers, button), passive button grabs,
a callback registry, and whole-pointer grabs for interactive move/resize
(spec §4.8's stacking/geometry operations are driven from here).

Consolidated from the teacher's mousebind.go/callback.go onto core.Core and
the modern BurntSushi/xgb/xproto API.
*/
package mousebind

import (
	"strconv"
	"strings"
	"sync"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/keybind"
)

var buttonMasks = [5]uint16{
	xproto.ButtonMask1, xproto.ButtonMask2, xproto.ButtonMask3,
	xproto.ButtonMask4, xproto.ButtonMask5,
}

const pointerMasks = xproto.EventMaskPointerMotion |
	xproto.EventMaskButtonRelease | xproto.EventMaskButtonPress

// ParseString parses "[Mod[-Mod[...]]-]Button", e.g. "Mod4-Button1".
func ParseString(str string) (uint16, byte) {
	var mods uint16
	var button byte

	for _, part := range strings.Split(str, "-") {
		lower := strings.ToLower(part)
		matched := false
		for i, name := range keybind.NiceModifiers {
			if name == lower {
				mods |= keybind.Modifiers[i]
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if strings.HasPrefix(lower, "button") {
			if n, err := strconv.ParseUint(lower[len("button"):], 10, 8); err == nil {
				button = byte(n)
			}
			continue
		}
		if n, err := strconv.ParseUint(part, 10, 8); err == nil && button == 0 {
			button = byte(n)
		}
	}

	return mods, button
}

// Grab issues a passive button grab on win for every IgnoreMods variant of
// mods. propagate=true uses GrabModeSync, requiring the caller to later
// call xevent.ReplayPointer or events lock up.
func Grab(c *core.Core, win xproto.Window, mods uint16, button byte, propagate bool) error {
	sync := byte(xproto.GrabModeAsync)
	if propagate {
		sync = xproto.GrabModeSync
	}

	for _, extra := range keybind.IgnoreMods {
		err := xproto.GrabButtonChecked(c.Conn, true, win, pointerMasks, sync,
			xproto.GrabModeAsync, 0, 0, button, mods|extra).Check()
		if err != nil {
			return core.Xerr(err, "mousebind.Grab", "could not grab button=%d mods=%d on %x", button, mods, win)
		}
	}
	return nil
}

// Ungrab releases a Grab-bed button.
func Ungrab(c *core.Core, win xproto.Window, mods uint16, button byte) error {
	for _, extra := range keybind.IgnoreMods {
		if err := xproto.UngrabButtonChecked(c.Conn, button, win, mods|extra).Check(); err != nil {
			return err
		}
	}
	return nil
}

// GrabPointer grabs the entire pointer, reporting Button*/Motion events to
// win and confining the pointer to confine (0 for no confinement) until
// UngrabPointer.
func GrabPointer(c *core.Core, win, confine xproto.Window, cursor xproto.Cursor) (bool, error) {
	reply, err := xproto.GrabPointer(c.Conn, false, win, pointerMasks,
		xproto.GrabModeAsync, xproto.GrabModeAsync, confine, cursor, xproto.TimeCurrentTime).Reply()
	if err != nil {
		return false, core.Xerr(err, "GrabPointer", "error grabbing pointer on window %x", win)
	}
	return reply.Status == xproto.GrabStatusSuccess, nil
}

// UngrabPointer releases a whole-pointer grab.
func UngrabPointer(c *core.Core) error {
	return xproto.UngrabPointerChecked(c.Conn, xproto.TimeCurrentTime).Check()
}

func deduceButton(state uint16, detail byte) (uint16, byte) {
	mods := state
	for _, m := range keybind.IgnoreMods {
		mods &^= m
	}
	if detail >= 1 && detail <= 5 {
		mods &^= buttonMasks[detail-1]
	}
	return mods, detail
}

type regKey struct {
	win     xproto.Window
	mods    uint16
	button  byte
	isPress bool
}

// Callback runs on a matched button event.
type Callback func(c *core.Core, ev xproto.ButtonPressEvent)

// Registry is the mutex-guarded callback table, mirroring keybind.Registry.
type Registry struct {
	mu    sync.RWMutex
	hooks map[regKey][]Callback
}

func NewRegistry() *Registry {
	return &Registry{hooks: make(map[regKey][]Callback)}
}

// Connect binds buttonStr's press event on win to cb.
func (r *Registry) Connect(c *core.Core, win xproto.Window, buttonStr string, propagate, grab bool, cb Callback) error {
	mods, button := ParseString(buttonStr)

	r.mu.Lock()
	key := regKey{win, mods, button, true}
	first := len(r.hooks[key]) == 0
	r.hooks[key] = append(r.hooks[key], cb)
	r.mu.Unlock()

	if grab && first {
		if err := Grab(c, win, mods, button, propagate); err != nil {
			return err
		}
	}
	return nil
}

// Detach removes every callback bound to win and ungrabs its buttons.
func (r *Registry) Detach(c *core.Core, win xproto.Window) {
	r.mu.Lock()
	var toUngrab []regKey
	for k := range r.hooks {
		if k.win == win {
			toUngrab = append(toUngrab, k)
			delete(r.hooks, k)
		}
	}
	r.mu.Unlock()
	for _, k := range toUngrab {
		Ungrab(c, win, k.mods, k.button)
	}
}

// Run dispatches a ButtonPressEvent to every matching callback.
func (r *Registry) Run(c *core.Core, ev xproto.ButtonPressEvent) {
	mods, button := deduceButton(ev.State, ev.Detail)
	key := regKey{ev.Event, mods, button, true}

	r.mu.RLock()
	cbs := append([]Callback(nil), r.hooks[key]...)
	r.mu.RUnlock()

	for _, cb := range cbs {
		cb(c, ev)
	}
}
