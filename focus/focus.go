/*
Package focus implements spec §4.7's focus and activation policy:
isWindowFocusAllowed, moveInputFocusTo, and activate. It has no teacher
analogue (xgbutil ships a keybind/mousebind layer but no focus policy), so
the algorithms follow spec §4.7 directly, consuming the window package's
protocol/state vocabulary and the ewmh package for _NET_ACTIVE_WINDOW.
*/
package focus

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/display"
	"github.com/compiz-go/compizcore/ewmh"
	"github.com/compiz-go/compizcore/window"
)

// NoFocusMask narrows allowWindowFocus beyond the type-based deny list —
// e.g. a plugin mid-grab can pass StateDemandsAttention-only windows
// through while suppressing everything else.
type NoFocusMask uint32

const (
	NoFocusDesktop NoFocusMask = 1 << iota
	NoFocusDock
	NoFocusSplash
	NoFocusUtility
)

// GetUsageTimestamp implements getUsageTimestamp (spec §4.7): prefer the
// client's _NET_WM_USER_TIME if it ever set one (most recent interaction),
// falling back to w.UserTime when the property cannot be read
// (UserTimeKnown is neither consulted nor set here).
func GetUsageTimestamp(c *core.Core, w *window.Window) xproto.Timestamp {
	if t, err := ewmh.WmUserTimeGet(c, w.ID); err == nil {
		return xproto.Timestamp(t)
	}
	return w.UserTime
}

// IsWindowFocusAllowed implements isWindowFocusAllowed's 8-step algorithm
// (spec §4.7):
//  1. Destroyed/unmanaged windows are never focusable.
//  2. Minimized/Hidden windows are never focusable (they must be
//     unminimized/shown first).
//  3. A window that is its own group's icon (input hint false and no
//     WM_TAKE_FOCUS) is never focusable.
//  4. Desktop/Dock/Splash/Notification types are denied.
//  5. A window in the modal state is allowed; its non-modal ancestors
//     are not denied by this function.
//  6. A window demanding attention is always allowed regardless of the
//     type-based deny list (it asked to be seen).
//  7. A window whose usage timestamp is older than t (a stale activation
//     request racing a newer one) is denied.
//  8. Anything surviving the above is allowed.
func IsWindowFocusAllowed(c *core.Core, w *window.Window, t xproto.Timestamp) bool {
	if w.Destroyed || !w.Managed {
		return false
	}
	if w.WState&(window.StateMinimized|window.StateHidden) != 0 {
		return false
	}
	if !w.InputHint && w.Protocols&window.ProtoTakeFocus == 0 {
		return false
	}
	if w.WState&window.StateDemandsAttention != 0 {
		return true
	}
	switch w.WType {
	case window.TypeDesktop, window.TypeDock, window.TypeSplash, window.TypeNotification:
		return false
	}
	if w.WState&window.StateModal != 0 {
		// a modal dialog itself is always eligible; the denial below only
		// applies to its (non-modal) ancestors, which the caller is
		// responsible for not offering focus to while this is set.
		return true
	}
	usage := GetUsageTimestamp(c, w)
	if t != 0 && usage != 0 && usage < t {
		return false
	}
	return true
}

// AllowWindowFocus implements allowWindowFocus (spec §4.7): applies
// IsWindowFocusAllowed plus the caller-supplied NoFocusMask, and on
// denial sets StateDemandsAttention so the window isn't silently ignored
// forever (the user still sees it flash in a taskbar/panel).
func AllowWindowFocus(c *core.Core, w *window.Window, mask NoFocusMask, t xproto.Timestamp) bool {
	if !IsWindowFocusAllowed(c, w, t) {
		w.WState |= window.StateDemandsAttention
		return false
	}
	switch w.WType {
	case window.TypeDesktop:
		if mask&NoFocusDesktop != 0 {
			return false
		}
	case window.TypeDock:
		if mask&NoFocusDock != 0 {
			return false
		}
	case window.TypeSplash:
		if mask&NoFocusSplash != 0 {
			return false
		}
	case window.TypeUtil:
		if mask&NoFocusUtility != 0 {
			return false
		}
	}
	return true
}

// resolveModalTransient walks w's transient children looking for a
// currently-modal one, since focus must land on the modal dialog rather
// than the window that spawned it (spec §4.7's "modal-transient
// resolution").
func resolveModalTransient(byID map[xproto.Window]*window.Window, w *window.Window) *window.Window {
	for _, cand := range byID {
		if cand.TransientFor == w.ID && cand.WState&window.StateModal != 0 {
			return cand
		}
	}
	return w
}

// MoveInputFocusTo implements moveInputFocusTo (spec §4.7): resolve to a
// modal transient if one is pending, route a Hidden window's focus to its
// frame instead of the (unmapped) client while still publishing
// _NET_ACTIVE_WINDOW manually, honour the client's WM_HINTS input flag and
// WM_TAKE_FOCUS protocol, and fall back to walking the transient-for
// ancestor chain if the target itself refuses all focus mechanisms.
func MoveInputFocusTo(c *core.Core, d *display.Display, byID map[xproto.Window]*window.Window, w *window.Window, t xproto.Timestamp) error {
	target := resolveModalTransient(byID, w)

	if target.WState&window.StateHidden != 0 {
		if target.Frame != 0 {
			xproto.SetInputFocusChecked(c.Conn, xproto.InputFocusPointerRoot, target.Frame, t).Check()
		}
		d.SetActiveWindow(target.ID)
		return ewmh.ActiveWindowSet(c, target.ID)
	}

	focused := false
	if target.InputHint {
		if err := xproto.SetInputFocusChecked(c.Conn, xproto.InputFocusPointerRoot, target.ID, t).Check(); err == nil {
			focused = true
		}
	}
	if target.Protocols&window.ProtoTakeFocus != 0 {
		if err := ewmh.ClientEvent(c, target.ID, "WM_PROTOCOLS", mustAtom(c, "WM_TAKE_FOCUS"), uint32(t)); err == nil {
			focused = true
		}
	}

	if !focused {
		cur := target.TransientFor
		for i := 0; i < 64 && cur != 0; i++ {
			anc, ok := byID[cur]
			if !ok {
				break
			}
			if IsWindowFocusAllowed(c, anc, t) {
				return MoveInputFocusTo(c, d, byID, anc, t)
			}
			cur = anc.TransientFor
		}
		return core.Uerr("moveInputFocusTo", "window %x refused every focus mechanism and has no eligible ancestor", target.ID)
	}

	d.SetActiveWindow(target.ID)
	return ewmh.ActiveWindowSet(c, target.ID)
}

func mustAtom(c *core.Core, name string) uint32 {
	a, _ := c.Atom(name, false)
	return uint32(a)
}

// Activate implements activate(w) (spec §4.7): if w.Desktop >= 0 it sets
// _NET_CURRENT_DESKTOP to that desktop, clears the Shaded state if w is
// shaded, and finally moves input focus to w via MoveInputFocusTo (which
// resolves a modal transient). It does not unminimise ancestors, move w or
// the viewport into view, or restack w.
func Activate(c *core.Core, d *display.Display, byID map[xproto.Window]*window.Window, w *window.Window, t xproto.Timestamp) error {
	if w.Desktop >= 0 {
		if err := ewmh.CurrentDesktopSet(c, uint32(w.Desktop)); err != nil {
			c.Log.Warn().Err(err).Msg("switching to window's desktop failed")
		}
	}
	if w.Shaded {
		if err := w.ChangeState(c, w.WState&^window.StateShaded); err != nil {
			return err
		}
	}
	return MoveInputFocusTo(c, d, byID, w, t)
}
