/*
Package icccm implements the subset of the ICCCM[1] client-property
protocol compiz-core's window state engine depends on: WM_NAME, WM_HINTS,
WM_NORMAL_HINTS, WM_CLASS, WM_TRANSIENT_FOR, WM_PROTOCOLS,
WM_COLORMAP_WINDOWS, WM_CLIENT_MACHINE, WM_STATE and WM_ICON_SIZE.

Adapted from the teacher's icccm.go: xgbutil.XUtil becomes core.Core and
xgb.Id becomes xproto.Window, following the modern BurntSushi/xgb API the
rest of this tree uses.

[1] - http://tronche.com/gui/x/icccm/
*/
package icccm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/xprop"
)

const (
	HintInput = 1 << iota
	HintState
	HintIconPixmap
	HintIconWindow
	HintIconPosition
	HintIconMask
	HintWindowGroup
	HintMessage
	HintUrgency
)

const (
	SizeHintUSPosition = 1 << iota
	SizeHintUSSize
	SizeHintPPosition
	SizeHintPSize
	SizeHintPMinSize
	SizeHintPMaxSize
	SizeHintPResizeInc
	SizeHintPAspect
	SizeHintPBaseSize
	SizeHintPWinGravity
)

// State values for WmState.State, matching the window-state engine's
// withdrawn/normal/iconic vocabulary (spec §3's Window.state).
const (
	StateWithdrawn = iota
	StateNormal
	StateZoomed
	StateIconic
	StateInactive
)

func WmNameGet(c *core.Core, win xproto.Window) (string, error) {
	return xprop.PropValStr(xprop.GetProperty(c, win, "WM_NAME"))
}

func WmNameSet(c *core.Core, win xproto.Window, name string) error {
	return xprop.ChangeProp(c, win, 8, "WM_NAME", "STRING", []byte(name))
}

func WmIconNameGet(c *core.Core, win xproto.Window) (string, error) {
	return xprop.PropValStr(xprop.GetProperty(c, win, "WM_ICON_NAME"))
}

func WmIconNameSet(c *core.Core, win xproto.Window, name string) error {
	return xprop.ChangeProp(c, win, 8, "WM_ICON_NAME", "STRING", []byte(name))
}

// NormalHints mirrors WM_NORMAL_HINTS, the size-constraint source for
// constrainWindowSize (spec §4.5.4, property P4).
type NormalHints struct {
	Flags                                          int
	X, Y, Width, Height, MinWidth, MinHeight        int
	MaxWidth, MaxHeight                             int
	WidthInc, HeightInc                             int
	MinAspectNum, MinAspectDen, MaxAspectNum        int
	MaxAspectDen                                    int
	BaseWidth, BaseHeight, WinGravity               int
}

func WmNormalHintsGet(c *core.Core, win xproto.Window) (nh NormalHints, err error) {
	const want = 18
	hints, err := xprop.PropValNums(xprop.GetProperty(c, win, "WM_NORMAL_HINTS"))
	if err != nil {
		return NormalHints{}, err
	}
	if len(hints) != want {
		return NormalHints{}, core.Uerr("WmNormalHintsGet",
			"WM_NORMAL_HINTS has %d fields, expected %d", len(hints), want)
	}

	nh.Flags = int(hints[0])
	nh.X = int(int32(hints[1]))
	nh.Y = int(int32(hints[2]))
	nh.Width = int(hints[3])
	nh.Height = int(hints[4])
	nh.MinWidth = int(hints[5])
	nh.MinHeight = int(hints[6])
	nh.MaxWidth = int(hints[7])
	nh.MaxHeight = int(hints[8])
	nh.WidthInc = int(hints[9])
	nh.HeightInc = int(hints[10])
	nh.MinAspectNum = int(hints[11])
	nh.MinAspectDen = int(hints[12])
	nh.MaxAspectNum = int(hints[13])
	nh.MaxAspectDen = int(hints[14])
	nh.BaseWidth = int(hints[15])
	nh.BaseHeight = int(hints[16])
	nh.WinGravity = int(hints[17])

	if nh.WinGravity <= 0 {
		nh.WinGravity = int(xproto.GravityNorthWest)
	}
	return nh, nil
}

func WmNormalHintsSet(c *core.Core, win xproto.Window, nh NormalHints) error {
	raw := []uint32{
		uint32(nh.Flags),
		uint32(nh.X), uint32(nh.Y), uint32(nh.Width), uint32(nh.Height),
		uint32(nh.MinWidth), uint32(nh.MinHeight),
		uint32(nh.MaxWidth), uint32(nh.MaxHeight),
		uint32(nh.WidthInc), uint32(nh.HeightInc),
		uint32(nh.MinAspectNum), uint32(nh.MinAspectDen),
		uint32(nh.MaxAspectNum), uint32(nh.MaxAspectDen),
		uint32(nh.BaseWidth), uint32(nh.BaseHeight),
		uint32(nh.WinGravity),
	}
	return xprop.ChangeProp32(c, win, "WM_NORMAL_HINTS", "WM_SIZE_HINTS", raw...)
}

// Hints mirrors WM_HINTS.
type Hints struct {
	Flags                                  int
	Input, InitialState, IconX, IconY      int
	WindowGroup                            int
	IconPixmap, IconWindow, IconMask       xproto.Window
}

func WmHintsGet(c *core.Core, win xproto.Window) (hints Hints, err error) {
	const want = 9
	raw, err := xprop.PropValNums(xprop.GetProperty(c, win, "WM_HINTS"))
	if err != nil {
		return Hints{}, err
	}
	if len(raw) != want {
		return Hints{}, core.Uerr("WmHintsGet", "WM_HINTS has %d fields, expected %d", len(raw), want)
	}

	hints.Flags = int(raw[0])
	hints.Input = int(raw[1])
	hints.InitialState = int(raw[2])
	hints.IconPixmap = xproto.Window(raw[3])
	hints.IconWindow = xproto.Window(raw[4])
	hints.IconX = int(int32(raw[5]))
	hints.IconY = int(int32(raw[6]))
	hints.IconMask = xproto.Window(raw[7])
	hints.WindowGroup = int(raw[8])
	return hints, nil
}

func WmHintsSet(c *core.Core, win xproto.Window, hints Hints) error {
	raw := []uint32{
		uint32(hints.Flags), uint32(hints.Input), uint32(hints.InitialState),
		uint32(hints.IconPixmap), uint32(hints.IconWindow),
		uint32(hints.IconX), uint32(hints.IconY),
		uint32(hints.IconMask),
		uint32(hints.WindowGroup),
	}
	return xprop.ChangeProp32(c, win, "WM_HINTS", "WM_HINTS", raw...)
}

// WmClass holds WM_CLASS's instance/class pair, consumed by type derivation
// (spec §4.5.1, invariant I3).
type WmClass struct {
	Instance, Class string
}

func WmClassGet(c *core.Core, win xproto.Window) (WmClass, error) {
	raw, err := xprop.PropValStrs(xprop.GetProperty(c, win, "WM_CLASS"))
	if err != nil {
		return WmClass{}, err
	}
	if len(raw) != 2 {
		return WmClass{}, core.Uerr("WmClassGet", "WM_CLASS has %d strings, expected 2 (%v)", len(raw), raw)
	}
	return WmClass{Instance: raw[0], Class: raw[1]}, nil
}

func WmClassSet(c *core.Core, win xproto.Window, class WmClass) error {
	raw := make([]byte, len(class.Instance)+len(class.Class)+2)
	copy(raw, class.Instance)
	copy(raw[len(class.Instance)+1:], class.Class)
	return xprop.ChangeProp(c, win, 8, "WM_CLASS", "STRING", raw)
}

func WmTransientForGet(c *core.Core, win xproto.Window) (xproto.Window, error) {
	return xprop.PropValWindow(xprop.GetProperty(c, win, "WM_TRANSIENT_FOR"))
}

func WmTransientForSet(c *core.Core, win, transient xproto.Window) error {
	return xprop.ChangeProp32(c, win, "WM_TRANSIENT_FOR", "WINDOW", uint32(transient))
}

func WmProtocolsGet(c *core.Core, win xproto.Window) ([]string, error) {
	raw, err := xprop.GetProperty(c, win, "WM_PROTOCOLS")
	return xprop.PropValAtoms(c, raw, err)
}

func WmProtocolsSet(c *core.Core, win xproto.Window, atomNames []string) error {
	atoms := make([]uint32, len(atomNames))
	for i, name := range atomNames {
		a, err := c.Atom(name, false)
		if err != nil {
			return err
		}
		atoms[i] = uint32(a)
	}
	return xprop.ChangeProp32(c, win, "WM_PROTOCOLS", "ATOM", atoms...)
}

func WmColormapWindowsGet(c *core.Core, win xproto.Window) ([]xproto.Window, error) {
	return xprop.PropValWindows(xprop.GetProperty(c, win, "WM_COLORMAP_WINDOWS"))
}

func WmColormapWindowsSet(c *core.Core, win xproto.Window, windows []xproto.Window) error {
	return xprop.ChangeProp32(c, win, "WM_COLORMAP_WINDOWS", "WINDOW", xprop.IdTo32(windows)...)
}

func WmClientMachineGet(c *core.Core, win xproto.Window) (string, error) {
	return xprop.PropValStr(xprop.GetProperty(c, win, "WM_CLIENT_MACHINE"))
}

func WmClientMachineSet(c *core.Core, win xproto.Window, client string) error {
	return xprop.ChangeProp(c, win, 8, "WM_CLIENT_MACHINE", "STRING", []byte(client))
}

// WmState mirrors WM_STATE: the state enum plus an icon window, the ICCCM
// counterpart to the _NET_WM_STATE atoms the window engine layers on top.
type WmState struct {
	State int
	Icon  xproto.Window
}

func WmStateGet(c *core.Core, win xproto.Window) (WmState, error) {
	raw, err := xprop.PropValNums(xprop.GetProperty(c, win, "WM_STATE"))
	if err != nil {
		return WmState{}, err
	}
	if len(raw) != 2 {
		return WmState{}, core.Uerr("WmStateGet", "WM_STATE has %d ints, expected 2 (%v)", len(raw), raw)
	}
	return WmState{State: int(raw[0]), Icon: xproto.Window(raw[1])}, nil
}

func WmStateSet(c *core.Core, win xproto.Window, state WmState) error {
	raw := []uint32{uint32(state.State), uint32(state.Icon)}
	return xprop.ChangeProp32(c, win, "WM_STATE", "WM_STATE", raw...)
}

// IconSize mirrors WM_ICON_SIZE.
type IconSize struct {
	MinWidth, MinHeight, MaxWidth, MaxHeight, WidthInc, HeightInc int
}

func WmIconSizeGet(c *core.Core, win xproto.Window) (IconSize, error) {
	raw, err := xprop.PropValNums(xprop.GetProperty(c, win, "WM_ICON_SIZE"))
	if err != nil {
		return IconSize{}, err
	}
	if len(raw) != 6 {
		return IconSize{}, core.Uerr("WmIconSizeGet", "WM_ICON_SIZE has %d ints, expected 6 (%v)", len(raw), raw)
	}
	return IconSize{
		MinWidth: int(raw[0]), MinHeight: int(raw[1]),
		MaxWidth: int(raw[2]), MaxHeight: int(raw[3]),
		WidthInc: int(raw[4]), HeightInc: int(raw[5]),
	}, nil
}

func WmIconSizeSet(c *core.Core, win xproto.Window, dim IconSize) error {
	raw := []uint32{
		uint32(dim.MinWidth), uint32(dim.MinHeight),
		uint32(dim.MaxWidth), uint32(dim.MaxHeight),
		uint32(dim.WidthInc), uint32(dim.HeightInc),
	}
	return xprop.ChangeProp32(c, win, "WM_ICON_SIZE", "WM_ICON_SIZE", raw...)
}
