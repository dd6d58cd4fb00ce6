package window

import "github.com/compiz-go/compizcore/motif"

// typeAtomOrder lists the EWMH window-type atoms in invariant I3's
// precedence order: the first one present in a window's
// _NET_WM_WINDOW_TYPE list wins. A window with no recognised hint, or no
// hint at all, falls back to TypeNormal (override-redirect clients instead
// fall back to TypeUnknown, spec §4.5 step 4).
var typeAtomOrder = []struct {
	atom string
	typ  Type
}{
	{"_NET_WM_WINDOW_TYPE_DESKTOP", TypeDesktop},
	{"_NET_WM_WINDOW_TYPE_DOCK", TypeDock},
	{"_NET_WM_WINDOW_TYPE_TOOLBAR", TypeToolbar},
	{"_NET_WM_WINDOW_TYPE_MENU", TypeMenu},
	{"_NET_WM_WINDOW_TYPE_UTILITY", TypeUtil},
	{"_NET_WM_WINDOW_TYPE_SPLASH", TypeSplash},
	{"_NET_WM_WINDOW_TYPE_DIALOG", TypeDialog},
	{"_NET_WM_WINDOW_TYPE_NORMAL", TypeNormal},
	{"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU", TypeDropdown},
	{"_NET_WM_WINDOW_TYPE_POPUP_MENU", TypePopup},
	{"_NET_WM_WINDOW_TYPE_TOOLTIP", TypeTooltip},
	{"_NET_WM_WINDOW_TYPE_NOTIFICATION", TypeNotification},
	{"_NET_WM_WINDOW_TYPE_COMBO", TypeCombo},
	{"_NET_WM_WINDOW_TYPE_DND", TypeDnd},
}

// deriveType implements spec §4.5 step 4 / invariant I3: the window's type
// is the highest-precedence _NET_WM_WINDOW_TYPE atom present, a transient
// dialog (WM_TRANSIENT_FOR set, no type hint) derived as TypeDialog, a
// modal transient promoted to TypeModalDialog, a fullscreen-state window
// promoted to TypeFullscreen regardless of its base type, and anything
// else unrecognised (including override-redirect with no hint) as
// TypeUnknown.
func deriveType(w *Window, hints []string) Type {
	t := TypeUnknown
	found := false
	for _, candidate := range typeAtomOrder {
		for _, h := range hints {
			if h == candidate.atom {
				t = candidate.typ
				found = true
				break
			}
		}
		if found {
			break
		}
	}

	if !found {
		switch {
		case w.TransientFor != 0:
			t = TypeDialog
		case !w.OverrideRedirect:
			t = TypeNormal
		default:
			t = TypeUnknown
		}
	}

	if w.WState&StateModal != 0 && (t == TypeDialog || w.TransientFor != 0) {
		t = TypeModalDialog
	}
	if w.WState&StateFullscreen != 0 {
		t = TypeFullscreen
	}
	return t
}

// baseActionsByType is the type-specific starting action set spec §4.5.1
// derives actions from, before the shade/above/below/fixed-size/MWM
// narrowing passes run.
var baseActionsByType = map[Type]Action{
	TypeNormal: ActionMove | ActionResize | ActionMinimize |
		ActionMaximizeHorz | ActionMaximizeVert | ActionFullscreen |
		ActionClose | ActionChangeDesktop,
	TypeDialog: ActionMove | ActionResize | ActionClose,
	TypeModalDialog: ActionMove | ActionClose,
	TypeUtil:   ActionMove | ActionResize | ActionClose,
	TypeToolbar: ActionMove | ActionClose,
	TypeMenu:   ActionMove | ActionClose,
	TypeSplash: 0,
	TypeDesktop: ActionStick,
	TypeDock:   0,
	TypeFullscreen: ActionMove | ActionClose | ActionFullscreen,
}

// deriveActions implements spec §4.5.1: start from the type-specific base
// set, add Shade when the client declared input-extent top margin, always
// add Above/Below, strip resize/maximize/fullscreen from fixed-size
// windows (min == max hints), then narrow by the client's MWM function
// mask when it isn't MwmFuncAll.
func deriveActions(w *Window) Action {
	actions, ok := baseActionsByType[w.WType]
	if !ok {
		actions = ActionMove | ActionClose
	}

	if w.InputExtents.Top > 0 {
		actions |= ActionShade
	}
	actions |= ActionAbove | ActionBelow

	fixedSize := w.Hints.MinWidth == w.Hints.MaxWidth && w.Hints.MinHeight == w.Hints.MaxHeight &&
		w.Hints.MinWidth > 0
	if fixedSize {
		actions &^= ActionResize | ActionMaximizeHorz | ActionMaximizeVert | ActionFullscreen
	}

	if w.MwmFunc != motif.FunctionAll {
		if w.MwmFunc&motif.FunctionResize == 0 {
			actions &^= ActionResize
		}
		if w.MwmFunc&motif.FunctionMove == 0 {
			actions &^= ActionMove
		}
		if w.MwmFunc&motif.FunctionMinimize == 0 {
			actions &^= ActionMinimize
		}
		if w.MwmFunc&motif.FunctionMaximize == 0 {
			actions &^= ActionMaximizeHorz | ActionMaximizeVert
		}
		if w.MwmFunc&motif.FunctionClose == 0 {
			actions &^= ActionClose
		}
	}

	return actions
}

// GetAllowedActions narrows actions by a plugin-supplied (set, clear)
// pair, the hook spec §4.5.1 names for plugins that want to add or
// forbid specific actions beyond the core derivation (e.g. a "move"
// plugin disabling ActionMove while a grab is active).
func GetAllowedActions(actions Action, set, clear Action) Action {
	return (actions | set) &^ clear
}
