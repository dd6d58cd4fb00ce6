package window

import (
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/ewmh"
)

// stateAtomNames reverses stateFromAtomNames: it renders a State bitmask
// back into the _NET_WM_STATE atom-name list changeState persists.
func stateAtomNames(s State) []string {
	var names []string
	add := func(bit State, name string) {
		if s&bit != 0 {
			names = append(names, name)
		}
	}
	add(StateSticky, "_NET_WM_STATE_STICKY")
	add(StateMaximizedHorz, "_NET_WM_STATE_MAXIMIZED_HORZ")
	add(StateMaximizedVert, "_NET_WM_STATE_MAXIMIZED_VERT")
	add(StateShaded, "_NET_WM_STATE_SHADED")
	add(StateHidden, "_NET_WM_STATE_HIDDEN")
	add(StateFullscreen, "_NET_WM_STATE_FULLSCREEN")
	add(StateAbove, "_NET_WM_STATE_ABOVE")
	add(StateBelow, "_NET_WM_STATE_BELOW")
	add(StateModal, "_NET_WM_STATE_MODAL")
	add(StateDemandsAttention, "_NET_WM_STATE_DEMANDS_ATTENTION")
	add(StateSkipPager, "_NET_WM_STATE_SKIP_PAGER")
	add(StateSkipTaskbar, "_NET_WM_STATE_SKIP_TASKBAR")
	return names
}

// ChangeState implements changeState (spec §4.5.2, invariant I2: "state
// transitions recompute type, actions, and the persisted _NET_WM_STATE
// atomically"). It recomputes type/actions from the new state, persists
// _NET_WM_STATE, fires the hide/show side effects Hidden/Shaded/Minimized
// transitions require, and emits stateChangeNotify with the prior state so
// listeners can diff what changed.
func (w *Window) ChangeState(c *core.Core, newState State) error {
	old := w.WState
	if old == newState {
		return nil
	}

	w.WState = newState
	w.WType = deriveType(w, nil)
	w.WActions = deriveActions(w)

	if err := ewmh.WmStateSet(c, w.ID, stateAtomNames(newState)); err != nil {
		return err
	}

	wasHidden := old&(StateHidden|StateMinimized) != 0
	nowHidden := newState&(StateHidden|StateMinimized) != 0
	if !wasHidden && nowHidden {
		w.hide(c)
	} else if wasHidden && !nowHidden {
		w.show(c)
	}

	if old&StateShaded == 0 && newState&StateShaded != 0 {
		w.Shaded = true
	} else if old&StateShaded != 0 && newState&StateShaded == 0 {
		w.Shaded = false
	}

	w.Signal("", "org.compiz.Window", "stateChangeNotify", "i", []interface{}{int32(old)})
	return nil
}

// Minimize implements minimize() (spec §4.5.2): sets StateMinimized,
// unmaps the frame, and cascades to every window transient-for this one so
// a dialog's children vanish with it.
func (w *Window) Minimize(c *core.Core, siblings []*Window) error {
	if w.WState&StateMinimized != 0 {
		return nil
	}
	w.Minimized = true
	if err := w.ChangeState(c, w.WState|StateMinimized); err != nil {
		return err
	}
	for _, sib := range siblings {
		if sib.TransientFor == w.ID {
			sib.Minimize(c, siblings)
		}
	}
	return nil
}

// Unminimize implements the inverse of minimize(), clearing StateMinimized
// on this window and every transient cascaded down with it.
func (w *Window) Unminimize(c *core.Core, siblings []*Window) error {
	if w.WState&StateMinimized == 0 {
		return nil
	}
	w.Minimized = false
	if err := w.ChangeState(c, w.WState&^StateMinimized); err != nil {
		return err
	}
	for _, sib := range siblings {
		if sib.TransientFor == w.ID && sib.Minimized {
			sib.Unminimize(c, siblings)
		}
	}
	return nil
}

// maxMask is the pair of _NET_WM_STATE bits maximize() toggles together.
const maxMask = StateMaximizedHorz | StateMaximizedVert

// Maximize implements maximize(newMax) (spec §4.5.2, property P1): clamps
// newMax by this window's allowed actions (a window missing
// ActionMaximizeHorz/Vert cannot gain the corresponding bit), replaces the
// two maximize bits in one changeState call, and re-applies geometry via
// the caller-supplied apply callback (constrainWindowSize runs there, not
// here, since maximize geometry depends on the current output's work
// area).
func (w *Window) Maximize(c *core.Core, newMax State, apply func(*Window) error) error {
	clamped := newMax & maxMask
	if clamped&StateMaximizedHorz != 0 && w.WActions&ActionMaximizeHorz == 0 {
		clamped &^= StateMaximizedHorz
	}
	if clamped&StateMaximizedVert != 0 && w.WActions&ActionMaximizeVert == 0 {
		clamped &^= StateMaximizedVert
	}

	if err := w.ChangeState(c, (w.WState&^maxMask)|clamped); err != nil {
		return err
	}
	if apply != nil {
		return apply(w)
	}
	return nil
}

// hide implements hide() (spec §4.5.2): unmaps the frame (leaving the
// client mapped per ICCCM's synthetic-unmap convention) and defers the
// unmap-notify compiz-core will receive back to itself via
// PendingUnmaps, so the event dispatcher does not mistake a
// self-triggered unmap for the client withdrawing.
func (w *Window) hide(c *core.Core) {
	if !w.Mapped {
		return
	}
	w.PendingUnmaps++
	_ = unmapFrame(c, w)
	w.Mapped = false
}

// show implements show() (spec §4.5.2), the inverse of hide: Minimized
// windows additionally clear StateShaded, since compiz-core folds
// minimize-while-shaded into a single restore step rather than stacking
// two independent unmap reasons.
func (w *Window) show(c *core.Core) {
	if w.Mapped {
		return
	}
	_ = mapFrame(c, w)
	w.Mapped = true
	if w.WState&StateMinimized != 0 && w.Shaded {
		w.Shaded = false
	}
}

// ConstrainWindowState implements constrainWindowState (spec §4.5.2): a
// window cannot be both Shaded and Fullscreen, and Hidden implies not
// Minimized (Hidden is the stronger, manager-driven withdrawal; Minimized
// is the user-driven one) — called before ChangeState commits a
// caller-requested state to keep the bitmask internally consistent.
func ConstrainWindowState(s State) State {
	if s&StateFullscreen != 0 {
		s &^= StateShaded
	}
	if s&StateHidden != 0 {
		s &^= StateMinimized
	}
	return s
}
