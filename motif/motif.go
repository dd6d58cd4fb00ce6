/*
Package motif decodes _MOTIF_WM_HINTS, used by clients (notably Chrome) to
request "no window decorations" without a full EWMH/ICCCM round trip. Feeds
the window engine's decoration-hint derivation (spec §4.5.1's action/type
derivation considers this alongside _NET_WM_WINDOW_TYPE).

Adapted from the teacher's motif.go onto core.Core/xproto.Window.
*/
package motif

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/xprop"
)

const (
	HintFunctions = 1 << iota
	HintDecorations
	HintInputMode
	HintStatus
)

const (
	FunctionAll = 1 << iota
	FunctionResize
	FunctionMove
	FunctionMinimize
	FunctionMaximize
	FunctionClose
	FunctionNone = 0
)

const (
	DecorationAll = 1 << iota
	DecorationBorder
	DecorationResizeH
	DecorationTitle
	DecorationMenu
	DecorationMinimize
	DecorationMaximize
	DecorationNone = 0
)

const (
	InputPrimaryApplicationModal = 1 << iota
	InputSystemModal
	InputFullApplicationModal
	InputModeless = 0
)

const StatusTearoffWindow = 1

// Hints organizes _MOTIF_WM_HINTS.
type Hints struct {
	Flags                               uint32
	Function, Decoration, Input, Status uint32
}

func WmHintsGet(c *core.Core, win xproto.Window) (mh Hints, err error) {
	const want = 5
	hints, err := xprop.PropValNums(xprop.GetProperty(c, win, "_MOTIF_WM_HINTS"))
	if err != nil {
		return Hints{}, err
	}
	if len(hints) != want {
		return Hints{}, core.Uerr("motif.WmHintsGet",
			"_MOTIF_WM_HINTS has %d fields, expected %d", len(hints), want)
	}

	mh.Flags = uint32(hints[0])
	mh.Function = uint32(hints[1])
	mh.Decoration = uint32(hints[2])
	mh.Input = uint32(hints[3])
	mh.Status = uint32(hints[4])
	return mh, nil
}

func WmHintsSet(c *core.Core, win xproto.Window, mh Hints) error {
	raw := []uint32{mh.Flags, mh.Function, mh.Decoration, mh.Input, mh.Status}
	return xprop.ChangeProp32(c, win, "_MOTIF_WM_HINTS", "_MOTIF_WM_HINTS", raw...)
}
