package window

import (
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/screen"
)

// Manage runs the remainder of addWindow (spec §4.5) once Adopt has
// populated the window's identity, geometry, and derived state: reparent
// into a frame/wrapper pair, initialise the sync-request counter if the
// client declared one, push onto the screen's stacking list directly above
// `above` (0 means top), and synthesise a deferred map if the client was
// already viewable at adoption time (it was mapped before compiz-core took
// the manager selection, so no MapRequest will ever arrive for it).
func Manage(c *core.Core, scr *screen.Screen, w *Window, above xproto.Window) error {
	if err := w.reparent(c, scr.Root); err != nil {
		return err
	}
	w.initSyncCounter(c)

	if above == 0 {
		scr.StackPush(w.ID)
	} else {
		scr.StackInsertAbove(w.ID, above)
	}
	if err := scr.RefreshClientListStacking(c); err != nil {
		c.Log.Warn().Err(err).Msg("refreshing _NET_CLIENT_LIST_STACKING failed")
	}

	w.Managed = true
	if w.Mapped {
		// Deferred map: the client was already viewable when compiz-core
		// acquired the manager selection, so reparenting's implicit unmap/
		// remap cycle is the only MapNotify this window will ever get.
		// show() is a no-op while Mapped is set, so clear it first.
		w.Mapped = false
		w.show(c)
	}
	return nil
}

// Withdraw implements the unmanage half of spec §4.5: unreparent, drop
// from the screen's stacking list, and mark Destroyed so callers holding
// a *Window after this point know not to touch X state again.
func Withdraw(c *core.Core, scr *screen.Screen, w *Window) {
	scr.StackRemove(w.ID)
	w.unreparent(c, scr.Root)
	w.Destroyed = true
	if err := scr.RefreshClientListStacking(c); err != nil {
		c.Log.Warn().Err(err).Msg("refreshing _NET_CLIENT_LIST_STACKING after withdraw failed")
	}
}
