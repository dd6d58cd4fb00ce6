package core

import (
	"sync"

	"github.com/BurntSushi/xgb/xproto"
)

// Keymap caches the keyboard and modifier mappings, refreshed on
// MappingNotify (spec §4.4.1's virtual-mod→real-mask table depends on the
// current modifier mapping).
type Keymap struct {
	mu         sync.RWMutex
	keyboard   *xproto.GetKeyboardMappingReply
	modifier   *xproto.GetModifierMappingReply
	minKeycode xproto.Keycode
	maxKeycode xproto.Keycode
}

// Refresh re-fetches both mappings from the server. Call on startup and
// whenever a MappingNotify event arrives.
func (c *Core) Refresh() error {
	setup := xproto.Setup(c.Conn)
	min, max := setup.MinKeycode, setup.MaxKeycode

	kbReply, err := xproto.GetKeyboardMapping(c.Conn, min, byte(max-min+1)).Reply()
	if err != nil {
		return Xerr(err, "Keymap.Refresh", "GetKeyboardMapping failed")
	}
	modReply, err := xproto.GetModifierMapping(c.Conn).Reply()
	if err != nil {
		return Xerr(err, "Keymap.Refresh", "GetModifierMapping failed")
	}

	c.keymap.mu.Lock()
	c.keymap.keyboard = kbReply
	c.keymap.modifier = modReply
	c.keymap.minKeycode = min
	c.keymap.maxKeycode = max
	c.keymap.mu.Unlock()
	return nil
}

// Keysym returns the keysym for keycode at the given column (0 = unshifted,
// 1 = shifted, ...), or 0 if out of range or not yet loaded.
func (c *Core) Keysym(keycode xproto.Keycode, col int) xproto.Keysym {
	c.keymap.mu.RLock()
	defer c.keymap.mu.RUnlock()

	kb := c.keymap.keyboard
	if kb == nil || keycode < c.keymap.minKeycode || keycode > c.keymap.maxKeycode {
		return 0
	}
	per := int(kb.KeysymsPerKeycode)
	idx := (int(keycode)-int(c.keymap.minKeycode))*per + col
	if col < 0 || col >= per || idx < 0 || idx >= len(kb.Keysyms) {
		return 0
	}
	return kb.Keysyms[idx]
}

// ModifierMapping returns the cached modifier mapping, loading it first if
// needed.
func (c *Core) ModifierMapping() (*xproto.GetModifierMappingReply, error) {
	c.keymap.mu.RLock()
	m := c.keymap.modifier
	c.keymap.mu.RUnlock()
	if m != nil {
		return m, nil
	}
	if err := c.Refresh(); err != nil {
		return nil, err
	}
	c.keymap.mu.RLock()
	defer c.keymap.mu.RUnlock()
	return c.keymap.modifier, nil
}
