/*
Package xwindow implements the raw window primitives compiz-core itself
needs as the window manager: selecting event masks (Listen), walking
QueryTree (ParentWindow), and reading unadorned geometry (RawGeometry).

Adapted from the teacher's xwindow.go, which targeted X *clients* trying to
fool whatever window manager is running (GetGeometry/MoveResize/adjustSize,
dealing with foreign reparenting). compiz-core IS the window manager, so
those client-side workarounds are dropped; what's kept is the primitive
layer the window/stack/screen packages build on.
*/
package xwindow

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/xrect"
)

// Listen selects the given event masks on win, ORing them together. Without
// a Listen call, the requested events never arrive — used by the screen
// bootstrap (C4) to select SubstructureRedirect|SubstructureNotify on the
// root, and by the window engine (C5) to select PropertyChange on managed
// clients.
func Listen(c *core.Core, win xproto.Window, evMasks ...uint32) error {
	var mask uint32
	for _, m := range evMasks {
		mask |= m
	}
	return xproto.ChangeWindowAttributesChecked(c.Conn, win,
		xproto.CwEventMask, []uint32{mask}).Check()
}

// ParentWindow queries QueryTree and returns win's parent.
func ParentWindow(c *core.Core, win xproto.Window) (xproto.Window, error) {
	tree, err := xproto.QueryTree(c.Conn, win).Reply()
	if err != nil {
		return 0, core.Xerr(err, "ParentWindow", "error retrieving parent window for %x", win)
	}
	return tree.Parent, nil
}

// RawGeometry queries win's geometry directly, with no decoration or
// reparenting adjustment — the input constrainWindowState/restack work
// from (spec §4.5.2, §4.8).
func RawGeometry(c *core.Core, win xproto.Window) (xrect.Rect, error) {
	geom, err := xproto.GetGeometry(c.Conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return nil, core.Xerr(err, "RawGeometry", "error retrieving geometry for %x", win)
	}
	return xrect.Make(geom.X, geom.Y, geom.Width, geom.Height), nil
}
