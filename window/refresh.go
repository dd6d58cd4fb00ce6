package window

import (
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/ewmh"
	"github.com/compiz-go/compizcore/icccm"
	"github.com/compiz-go/compizcore/motif"
	"github.com/compiz-go/compizcore/xprop"
)

// Refresh implements spec §4.6's PropertyNotify handling: "re-derive
// affected fields (type / state / struts / icon / user-time / allowed-
// actions / transient / mwm-hints / class / normal-hints / startup-id)".
// atomName is the interned property name the PropertyNotify event named;
// unrecognized names are a no-op, since most client property churn (icon
// pixmaps, startup-id bookkeeping delegated to plugins) doesn't need a
// core-level response.
func (w *Window) Refresh(c *core.Core, atomName string) error {
	switch atomName {
	case "WM_NORMAL_HINTS":
		hints, err := icccm.WmNormalHintsGet(c, w.ID)
		if err != nil {
			return err
		}
		w.Hints = normaliseSizeHints(hints)
		w.WActions = deriveActions(w)
	case "WM_TRANSIENT_FOR":
		tf, err := icccm.WmTransientForGet(c, w.ID)
		if err != nil {
			return err
		}
		w.TransientFor = tf
		w.WType = deriveType(w, nil)
		w.WActions = deriveActions(w)
	case "WM_PROTOCOLS":
		protos, err := icccm.WmProtocolsGet(c, w.ID)
		if err != nil {
			return err
		}
		w.Protocols = protocolsFromAtomNames(protos)
	case "WM_HINTS":
		hints, err := icccm.WmHintsGet(c, w.ID)
		if err != nil {
			return err
		}
		if hints.Flags&icccm.HintInput != 0 {
			w.InputHint = hints.Input != 0
		}
	case "_MOTIF_WM_HINTS":
		mh, err := motif.WmHintsGet(c, w.ID)
		if err != nil {
			return err
		}
		if mh.Flags&motif.HintFunctions != 0 {
			w.MwmFunc = mh.Function
		}
		if mh.Flags&motif.HintDecorations != 0 {
			w.MwmDecor = mh.Decoration
		}
		w.WActions = deriveActions(w)
	case "WM_CLIENT_LEADER":
		leader, err := xprop.PropValWindow(xprop.GetProperty(c, w.ID, "WM_CLIENT_LEADER"))
		if err != nil {
			return err
		}
		w.ClientLeader = leader
	case "_NET_WM_WINDOW_TYPE":
		typeAtoms, err := ewmh.WmWindowTypeGet(c, w.ID)
		if err != nil {
			return err
		}
		w.WType = deriveType(w, typeAtoms)
		w.WActions = deriveActions(w)
	case "_NET_WM_DESKTOP":
		desk, err := ewmh.WmDesktopGet(c, w.ID)
		if err != nil {
			return err
		}
		w.Desktop = int32(desk)
	case "_NET_WM_STRUT", "_NET_WM_STRUT_PARTIAL":
		// left to the caller: struts need the owning screen's output
		// bounds, which this window-scoped method doesn't have. The event
		// dispatcher calls (*Window).UpdateStruts directly for these.
	}
	return nil
}

// UpdateStruts re-derives the window's strut reservation against outputW
// x outputH (exported wrapper around updateStruts for the event
// dispatcher's PropertyNotify handling of _NET_WM_STRUT[_PARTIAL]).
func (w *Window) UpdateStruts(c *core.Core, outputW, outputH int) {
	w.updateStruts(c, outputW, outputH)
}
