package screen

import (
	"fmt"

	"github.com/BurntSushi/xgb/composite"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/ewmh"
	"github.com/compiz-go/compizcore/xinerama"
	"github.com/compiz-go/compizcore/xwindow"
)

// rootEventMask is selected on the root window at addScreen step 6: "root-
// window event mask (substructure-redirect+notify, key/button/focus/
// exposure)" (spec §4.4).
const rootEventMask = uint32(xproto.EventMaskSubstructureRedirect) |
	uint32(xproto.EventMaskSubstructureNotify) |
	uint32(xproto.EventMaskKeyPress) | uint32(xproto.EventMaskKeyRelease) |
	uint32(xproto.EventMaskButtonPress) | uint32(xproto.EventMaskButtonRelease) |
	uint32(xproto.EventMaskFocusChange) |
	uint32(xproto.EventMaskExposure) |
	uint32(xproto.EventMaskPropertyChange)

// Add runs addScreen (spec §4.4) for X screen number n of c's display,
// acquiring the WM_Sn and _NET_WM_CM_Sn selections, broadcasting the
// manager message, redirecting subwindows for compositing, and selecting
// the root event mask.
func Add(c *core.Core, n int, replaceWM bool) (*Screen, error) {
	setup := xproto.Setup(c.Conn)
	if n < 0 || n >= len(setup.Roots) {
		return nil, core.Uerr("addScreen", "screen %d out of range (%d roots)", n, len(setup.Roots))
	}
	root := setup.Roots[n].Root

	s := newScreen(n, root)

	wmSn, err := c.Atom(fmt.Sprintf("WM_S%d", n), false)
	if err != nil {
		return nil, err
	}
	cmSn, err := c.Atom(fmt.Sprintf("_NET_WM_CM_S%d", n), false)
	if err != nil {
		return nil, err
	}
	s.wmSnAtom, s.cmSnAtom = wmSn, cmSn

	// Step 1+2: dummy owner window and a server timestamp from its own
	// PropertyNotify.
	owner, err := createOwnerWindow(c, root)
	if err != nil {
		return nil, err
	}
	if err := ewmh.WmNameSet(c, owner, fmt.Sprintf("compiz-core screen %d", n)); err != nil {
		return nil, err
	}
	ts, err := awaitTimestamp(c, owner)
	if err != nil {
		xproto.DestroyWindow(c.Conn, owner)
		return nil, err
	}

	// Step 3: acquire both selections, handling a prior owner per replaceWM.
	if err := acquireSelection(c, wmSn, owner, ts, replaceWM); err != nil {
		xproto.DestroyWindow(c.Conn, owner)
		return nil, core.XerrSeverity(err, core.SeverityFatalDisplay, "addScreen",
			"failed acquiring WM_S%d", n)
	}
	if err := acquireSelection(c, cmSn, owner, ts, replaceWM); err != nil {
		releaseSelection(c, wmSn)
		xproto.DestroyWindow(c.Conn, owner)
		return nil, core.XerrSeverity(err, core.SeverityFatalDisplay, "addScreen",
			"failed acquiring _NET_WM_CM_S%d", n)
	}
	s.wmSnOwner, s.cmSnOwner = owner, owner

	// Step 4: broadcast the manager client-message to the root.
	if err := ewmh.ClientEvent(c, root, "MANAGER", ts, wmSn, owner, uint32(0), uint32(0)); err != nil {
		s.undoSelections(c)
		return nil, core.XerrSeverity(err, core.SeverityFatalDisplay, "addScreen",
			"manager broadcast for WM_S%d failed", n)
	}
	if err := ewmh.ClientEvent(c, root, "MANAGER", ts, cmSn, owner, uint32(0), uint32(0)); err != nil {
		s.undoSelections(c)
		return nil, core.XerrSeverity(err, core.SeverityFatalDisplay, "addScreen",
			"manager broadcast for _NET_WM_CM_S%d failed", n)
	}

	// Step 5: redirect subwindows for compositing.
	if err := composite.RedirectSubwindowsChecked(c.Conn, root, composite.RedirectManual).Check(); err != nil {
		s.undoSelections(c)
		return nil, core.XerrSeverity(err, core.SeverityFatalDisplay, "addScreen",
			"RedirectSubwindows(manual) failed on screen %d", n)
	}

	// Step 6: select the root event mask.
	if err := xwindow.Listen(c, root, rootEventMask); err != nil {
		composite.UnredirectSubwindows(c.Conn, root, composite.RedirectManual)
		s.undoSelections(c)
		return nil, core.XerrSeverity(err, core.SeverityFatalDisplay, "addScreen",
			"another window manager already owns screen %d's substructure-redirect", n)
	}

	// Step 7: the above all succeeded, but check for any protocol error
	// that slipped in asynchronously before committing (undo-on-error:
	// "treat redirection as acquired only on full success").
	if c.CheckForError() {
		composite.UnredirectSubwindows(c.Conn, root, composite.RedirectManual)
		s.undoSelections(c)
		return nil, core.UerrSeverity(core.SeverityFatalDisplay, "addScreen",
			"protocol error during screen %d acquisition, undoing", n)
	}

	setupRootAttrs, _ := xproto.GetGeometry(c.Conn, xproto.Drawable(root)).Reply()
	var w, h uint16 = 1280, 1024
	if setupRootAttrs != nil {
		w, h = setupRootAttrs.Width, setupRootAttrs.Height
	}

	heads, err := xinerama.Query(c)
	if err != nil {
		c.Log.Info().Int("screen", n).Msg("Xinerama unavailable, using root geometry as the sole output")
		heads = xinerama.Heads{{X: 0, Y: 0, Width: uint32(w), Height: uint32(h)}}
	}
	s.Outputs = heads

	edges, err := createEdges(c, root, w, h)
	if err != nil {
		c.Log.Warn().Err(err).Int("screen", n).Msg("screen-edge windows unavailable")
	}
	s.Edges = edges

	return s, nil
}

// createOwnerWindow creates the small unmapped window used as the WM_Sn/
// _NET_WM_CM_Sn selection owner (addScreen step 1).
func createOwnerWindow(c *core.Core, root xproto.Window) (xproto.Window, error) {
	win, err := xproto.NewWindowId(c.Conn)
	if err != nil {
		return 0, core.Xerr(err, "createOwnerWindow", "NewWindowId failed")
	}
	err = xproto.CreateWindowChecked(c.Conn, 0, win, root, -1, -1, 1, 1, 0,
		xproto.WindowClassInputOnly, 0,
		xproto.CwEventMask, []uint32{uint32(xproto.EventMaskPropertyChange)}).Check()
	if err != nil {
		return 0, core.Xerr(err, "createOwnerWindow", "CreateWindow failed")
	}
	return win, nil
}

// awaitTimestamp forces then waits for a PropertyNotify on win to obtain a
// current server timestamp (addScreen step 2), the same "round-trip a dummy
// property change" trick ICCCM manager-selection acquisition requires.
func awaitTimestamp(c *core.Core, win xproto.Window) (xproto.Timestamp, error) {
	marker, err := c.Atom("_COMPIZ_TIMESTAMP_MARKER", false)
	if err != nil {
		return 0, err
	}
	err = xproto.ChangePropertyChecked(c.Conn, xproto.PropModeReplace, win,
		marker, xproto.AtomInteger, 32, 1, []byte{0, 0, 0, 0}).Check()
	if err != nil {
		return 0, core.Xerr(err, "awaitTimestamp", "triggering ChangeProperty failed")
	}

	for {
		ev, xerr := c.Conn.WaitForEvent()
		if xerr != nil {
			return 0, core.Xerr(xerr, "awaitTimestamp", "WaitForEvent failed")
		}
		if pn, ok := ev.(xproto.PropertyNotifyEvent); ok && pn.Window == win {
			return pn.Time, nil
		}
	}
}

// acquireSelection implements addScreen step 3 for one selection atom:
// take ownership at ts, verify it stuck, and if a prior owner exists either
// wait for it to relinquish (replaceWM) or fail.
func acquireSelection(c *core.Core, selection xproto.Atom, owner xproto.Window, ts xproto.Timestamp, replaceWM bool) error {
	prior, err := xproto.GetSelectionOwner(c.Conn, selection).Reply()
	if err != nil {
		return core.Xerr(err, "acquireSelection", "GetSelectionOwner failed")
	}
	if prior.Owner != 0 {
		if !replaceWM {
			return core.Uerr("acquireSelection",
				"selection already owned by %x and --replace was not requested", prior.Owner)
		}
		if err := xwindow.Listen(c, prior.Owner, uint32(xproto.EventMaskStructureNotify)); err != nil {
			return core.Xerr(err, "acquireSelection", "selecting StructureNotify on prior owner failed")
		}
	}

	if err := xproto.SetSelectionOwnerChecked(c.Conn, owner, selection, ts).Check(); err != nil {
		return core.Xerr(err, "acquireSelection", "SetSelectionOwner failed")
	}

	confirm, err := xproto.GetSelectionOwner(c.Conn, selection).Reply()
	if err != nil {
		return core.Xerr(err, "acquireSelection", "GetSelectionOwner confirmation failed")
	}
	if confirm.Owner != owner {
		return core.Uerr("acquireSelection", "lost the race acquiring the selection")
	}
	if prior.Owner != 0 {
		return waitForOwnerDestroy(c, prior.Owner)
	}
	return nil
}

// waitForOwnerDestroy blocks for the prior owner's DestroyNotify (addScreen
// step 3's replaceWM branch); acquireSelection has already selected
// StructureNotify on it.
func waitForOwnerDestroy(c *core.Core, owner xproto.Window) error {
	for {
		ev, xerr := c.Conn.WaitForEvent()
		if xerr != nil {
			return core.Xerr(xerr, "waitForOwnerDestroy", "WaitForEvent failed")
		}
		if dn, ok := ev.(xproto.DestroyNotifyEvent); ok && dn.Window == owner {
			return nil
		}
	}
}

// releaseSelection clears ownership of one selection atom, used when a
// later acquisition step in the sequence fails and an earlier one must be
// undone (step 7).
func releaseSelection(c *core.Core, selection xproto.Atom) {
	xproto.SetSelectionOwnerChecked(c.Conn, 0, selection, xproto.TimeCurrentTime).Check()
}

// undoSelections releases both selections this screen may have acquired,
// the "undo selection ownership and fail" branch of addScreen step 7.
func (s *Screen) undoSelections(c *core.Core) {
	releaseSelection(c, s.wmSnAtom)
	releaseSelection(c, s.cmSnAtom)
	if s.wmSnOwner != 0 {
		xproto.DestroyWindow(c.Conn, s.wmSnOwner)
	}
}

// Release tears down everything Add acquired: selections, owner window,
// redirection, and edge windows.
func (s *Screen) Release(c *core.Core) {
	composite.UnredirectSubwindows(c.Conn, s.Root, composite.RedirectManual)
	s.undoSelections(c)
	destroyEdges(c, s.Edges)
}
