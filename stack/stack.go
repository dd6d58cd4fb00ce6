/*
Package stack implements spec §4.8's stacking and geometry operations:
layer-respecting restack, sibling search for window insertion, and the
configure-request pipeline (gravity adjustment, size constraint, and the
atomic frame/wrapper/client commit).

Grounded in the object-tree screen.Screen.Stack* primitives (package
screen) and the window type/state vocabulary (package window); has no
direct teacher analogue since xgbutil is a protocol binding, not a window
manager, so the algorithms follow spec §4.8 directly.
*/
package stack

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/screen"
	"github.com/compiz-go/compizcore/window"
)

// layerOf buckets a window into one of six stacking layers, bottom to top:
// Desktop, Below-state, normal, fullscreen, dock, Above-state. The checks
// run in order: Desktop type, Below state, Dock type, Above state, then
// fullscreen state or type. No dock is demoted beneath a fullscreen window.
type layer int

const (
	layerDesktop layer = iota
	layerBelow
	layerNormal
	layerFullscreen
	layerDock
	layerAbove
)

func layerOf(w *window.Window) layer {
	switch {
	case w.WType == window.TypeDesktop:
		return layerDesktop
	case w.WState&window.StateBelow != 0:
		return layerBelow
	case w.WType == window.TypeDock:
		return layerDock
	case w.WState&window.StateAbove != 0:
		return layerAbove
	case w.WState&window.StateFullscreen != 0 || w.WType == window.TypeFullscreen:
		return layerFullscreen
	default:
		return layerNormal
	}
}

// isAncestor reports whether candidate is win's transient ancestor,
// walking the transient-for chain (bounded by depth to tolerate a cycle
// a misbehaving client might create).
func isAncestor(byID map[xproto.Window]*window.Window, win, candidate xproto.Window) bool {
	cur := win
	for i := 0; i < 64 && cur != 0; i++ {
		w, ok := byID[cur]
		if !ok {
			return false
		}
		if w.TransientFor == candidate {
			return true
		}
		cur = w.TransientFor
	}
	return false
}

// stackLayerCheck implements spec §4.8's stackLayerCheck: forbid stacking
// a window above one of its own transient ancestors (that would invert
// the parent/child relationship a dialog and its opener have). Layers are
// not enforced here: any other target is returned unchanged, so a normal
// window can be stacked directly above a dock.
func stackLayerCheck(byID map[xproto.Window]*window.Window, win, below xproto.Window) (allowed xproto.Window, ok bool) {
	if below == 0 {
		return 0, true
	}
	if isAncestor(byID, win, below) {
		return 0, false
	}

	w, wok := byID[win]
	b, bok := byID[below]
	if !wok || !bok {
		return below, true
	}
	if layerOf(w) < layerOf(b) {
		// A higher-layer target is accepted unchanged as well.
		return below, true
	}
	return below, true
}

// findSiblingBelow implements spec §4.8's top-down walk: starting from the
// top of the stacking list, return the first window already in the same
// or a lower layer than win, which is where win belongs when raised
// to the top of its own layer (e.g. raising a normal window must stop
// just below the bottommost dock/above-layer window, not go above it).
func findSiblingBelow(order []xproto.Window, byID map[xproto.Window]*window.Window, win xproto.Window) xproto.Window {
	wl := layerOf(byID[win])
	var below xproto.Window
	for _, id := range order { // order is top->down (StackOrderReverse)
		if id == win {
			continue
		}
		w, ok := byID[id]
		if !ok {
			continue
		}
		if layerOf(w) <= wl {
			return id
		}
		below = id
	}
	return below
}

// findLowestSiblingBelow is findSiblingBelow's bottom-up counterpart,
// used when lowering a window: the first window (scanning from the
// bottom) in the same or a higher layer, which becomes the new top-most
// position win must sit directly below.
func findLowestSiblingBelow(bottomUpOrder []xproto.Window, byID map[xproto.Window]*window.Window, win xproto.Window) xproto.Window {
	wl := layerOf(byID[win])
	for _, id := range bottomUpOrder {
		if id == win {
			continue
		}
		w, ok := byID[id]
		if !ok {
			continue
		}
		if layerOf(w) >= wl {
			return id
		}
	}
	return 0
}

// Restack implements restack(win, above) (spec §4.8): no-op if win is
// already directly above `above`, otherwise unhook and reinsert via the
// screen's stacking primitives, refresh _NET_CLIENT_LIST_STACKING, and
// emit windowNotifyRestack so plugins following the stack (e.g. a
// decoration renderer) know to requery geometry.
func Restack(c *core.Core, scr *screen.Screen, byID map[xproto.Window]*window.Window, w *window.Window, above xproto.Window) error {
	if scr.StackBelow(w.ID) == above {
		return nil
	}

	allowed, ok := stackLayerCheck(byID, w.ID, above)
	if !ok {
		return core.Uerr("restack", "window %x cannot stack above its own transient ancestor %x", w.ID, above)
	}

	scr.StackInsertAbove(w.ID, allowed)
	if err := applyServerStack(c, w, allowed); err != nil {
		return err
	}
	if err := scr.RefreshClientListStacking(c); err != nil {
		c.Log.Warn().Err(err).Msg("refreshing _NET_CLIENT_LIST_STACKING after restack failed")
	}
	w.Signal("", "org.compiz.Window", "windowNotifyRestack", "", nil)
	return nil
}

// applyServerStack issues the actual ConfigureWindow restacking request
// against the window's frame (restack operates on the decorated top-level,
// not the raw client).
func applyServerStack(c *core.Core, w *window.Window, above xproto.Window) error {
	target := w.Frame
	if target == 0 {
		target = w.ID
	}

	mask := uint16(xproto.ConfigWindowStackMode)
	values := []uint32{uint32(xproto.StackModeAbove)}
	if above != 0 {
		mask |= xproto.ConfigWindowSibling
		values = []uint32{uint32(above), uint32(xproto.StackModeAbove)}
	}
	return xproto.ConfigureWindowChecked(c.Conn, target, mask, values).Check()
}

// RaiseToTop implements the raise() convenience spec §4.8 builds restack
// around: findSiblingBelow returns the topmost other window of the same or
// a lower layer, and w is restacked directly above it (0, the very bottom,
// only when every other window is in a higher layer).
func RaiseToTop(c *core.Core, scr *screen.Screen, byID map[xproto.Window]*window.Window, w *window.Window) error {
	sib := findSiblingBelow(scr.StackOrderReverse(), byID, w.ID)
	return Restack(c, scr, byID, w, sib)
}
