/*
Package keybind implements human-readable key binding: parsing strings like
"Mod4-Tab" into (modifiers, keycode), grabbing/ungrabbing them on the root
window, and a callback registry plugins use to hook global shortcuts (spec
§4.4.1's virtual-mod→real-mask table and passive key grabs).

Consolidated from the teacher's keybind.go/callback.go/xutil.go/encoding.go
onto core.Core and the modern BurntSushi/xgb/xproto API; keysymdef.go (the
generated X11 keysym name table) is kept verbatim since it's pure data, not
logic tied to any binding library version.
*/
package keybind

import (
	"fmt"
	"strings"
	"sync"
	"unicode"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
)

// Modifiers maps a modifier-field bit index to its xproto mask, in the
// fixed order X defines: Shift, Lock, Control, Mod1..Mod5.
var Modifiers = [8]uint16{
	xproto.ModMaskShift, xproto.ModMaskLock, xproto.ModMaskControl,
	xproto.ModMask1, xproto.ModMask2, xproto.ModMask3, xproto.ModMask4, xproto.ModMask5,
}

// NiceModifiers names each Modifiers entry for parsing/printing key strings.
var NiceModifiers = [8]string{
	"shift", "lock", "control", "mod1", "mod2", "mod3", "mod4", "mod5",
}

// IgnoreMods are modifier combinations OR-ed into every grab so a binding
// still fires with Caps Lock or Num Lock toggled on. Mod2 is the common Num
// Lock mapping; a full implementation would derive this from the modifier
// mapping (XKB), but compiz-core's predecessor made the same simplifying
// assumption.
var IgnoreMods = []uint16{0, xproto.ModMaskLock, xproto.ModMask2, xproto.ModMaskLock | xproto.ModMask2}

// KeysymToStr reverse-looks-up a keysym's canonical name.
func KeysymToStr(ks xproto.Keysym) string {
	return strKeysyms[ks]
}

// KeysymGet returns the keysym bound to keycode at the given column.
func KeysymGet(c *core.Core, keycode xproto.Keycode, col int) xproto.Keysym {
	return c.Keysym(keycode, col)
}

// keycodeFor reverse-maps a keysym name to the first keycode that produces
// it in any of columns 0-3, scanning keycodes 8-255.
func keycodeFor(c *core.Core, name string) (xproto.Keycode, bool) {
	ks, ok := Keysyms[name]
	if !ok {
		return 0, false
	}
	for kc := xproto.Keycode(8); kc < 256; kc++ {
		for col := 0; col < 4; col++ {
			if c.Keysym(kc, col) == ks {
				return kc, true
			}
		}
	}
	return 0, false
}

// ParseString parses a key string such as "Mod4-Shift-Tab" into a modifier
// mask and keycode.
func ParseString(c *core.Core, keyStr string) (uint16, xproto.Keycode, error) {
	parts := strings.Split(keyStr, "-")
	if len(parts) == 0 {
		return 0, 0, fmt.Errorf("keybind: empty key string")
	}

	var mods uint16
	for _, p := range parts[:len(parts)-1] {
		lower := strings.ToLower(p)
		found := false
		for i, name := range NiceModifiers {
			if name == lower {
				mods |= Modifiers[i]
				found = true
				break
			}
		}
		if !found {
			return 0, 0, fmt.Errorf("keybind: unknown modifier %q in %q", p, keyStr)
		}
	}

	name := parts[len(parts)-1]
	kc, ok := keycodeFor(c, name)
	if !ok {
		return 0, 0, fmt.Errorf("keybind: unknown key %q in %q", name, keyStr)
	}
	return mods, kc, nil
}

// ModifierString renders a modifier mask back into "shift-mod4" form.
func ModifierString(mods uint16) string {
	var parts []string
	for i, m := range Modifiers {
		if mods&m != 0 {
			parts = append(parts, NiceModifiers[i])
		}
	}
	return strings.Join(parts, "-")
}

// deduce strips ignored modifiers out of an event's reported state, so a
// grab registered without Lock/NumLock still matches.
func deduce(state uint16) uint16 {
	mods := state
	for _, m := range IgnoreMods {
		mods &^= m
	}
	return mods
}

type regKey struct {
	win      xproto.Window
	mods     uint16
	keycode  xproto.Keycode
	isPress  bool
}

// Callback runs on a matched key event.
type Callback func(c *core.Core, ev xproto.KeyPressEvent)

// Registry is the mutex-guarded (window, mods, keycode) → callbacks table,
// the same shape as the teacher's Keybinds map on XUtil.
type Registry struct {
	mu    sync.RWMutex
	hooks map[regKey][]Callback
}

func NewRegistry() *Registry {
	return &Registry{hooks: make(map[regKey][]Callback)}
}

// Grab issues a passive key grab on win for (mods, keycode), once per entry
// in IgnoreMods so the binding still fires regardless of lock state.
func Grab(c *core.Core, win xproto.Window, mods uint16, keycode xproto.Keycode) error {
	for _, extra := range IgnoreMods {
		err := xproto.GrabKeyChecked(c.Conn, true, win, mods|extra, keycode,
			xproto.GrabModeAsync, xproto.GrabModeAsync).Check()
		if err != nil {
			return core.Xerr(err, "Grab", "could not grab key mods=%d code=%d on %x", mods, keycode, win)
		}
	}
	return nil
}

// Ungrab releases a previously Grab-bed key.
func Ungrab(c *core.Core, win xproto.Window, mods uint16, keycode xproto.Keycode) error {
	for _, extra := range IgnoreMods {
		if err := xproto.UngrabKeyChecked(c.Conn, keycode, win, mods|extra).Check(); err != nil {
			return err
		}
	}
	return nil
}

// Connect binds keyStr on win to cb, grabbing the key if this is the first
// callback registered for that (window, mods, keycode).
func (r *Registry) Connect(c *core.Core, win xproto.Window, keyStr string, cb Callback) error {
	mods, kc, err := ParseString(c, keyStr)
	if err != nil {
		return err
	}

	r.mu.Lock()
	key := regKey{win, mods, kc, true}
	firstForKey := len(r.hooks[key]) == 0
	r.hooks[key] = append(r.hooks[key], cb)
	r.mu.Unlock()

	if firstForKey {
		if err := Grab(c, win, mods, kc); err != nil {
			return err
		}
	}
	return nil
}

// Detach removes every callback bound to win and ungrabs each of its keys.
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
		Ungrab(c, win, k.mods, k.keycode)
	}
}

// Run dispatches a KeyPressEvent to every callback registered for its
// (window, deduced-modifiers, keycode).
func (r *Registry) Run(c *core.Core, ev xproto.KeyPressEvent) {
	key := regKey{ev.Event, deduce(ev.State), ev.Detail, true}
	r.mu.RLock()
	cbs := append([]Callback(nil), r.hooks[key]...)
	r.mu.RUnlock()

	for _, cb := range cbs {
		cb(c, ev)
	}
}

// LookupString renders the keysym a (mods, keycode) pair would produce as
// the X keyboard-encoding rules describe (ignoring Num Lock), useful for
// displaying bindings in logs/UI.
func LookupString(c *core.Core, mods uint16, keycode xproto.Keycode) string {
	k1 := KeysymToStr(KeysymGet(c, keycode, 0))
	k2 := KeysymToStr(KeysymGet(c, keycode, 1))
	if k2 == "" {
		if len(k1) == 1 && unicode.IsLetter(rune(k1[0])) {
			k2 = strings.ToUpper(k1)
			k1 = strings.ToLower(k1)
		} else {
			k2 = k1
		}
	}

	shift := mods&xproto.ModMaskShift != 0
	lock := mods&xproto.ModMaskLock != 0
	switch {
	case !shift && !lock:
		return k1
	case shift && !lock:
		return k2
	case !shift && lock:
		if len(k1) == 1 && unicode.IsLower(rune(k1[0])) {
			return k2
		}
		return k1
	default: // shift && lock
		if len(k2) == 1 && unicode.IsLower(rune(k2[0])) {
			return strings.ToUpper(k2)
		}
		return k2
	}
}
