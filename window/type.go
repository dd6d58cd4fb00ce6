/*
Package window implements spec §3's Window and the window state engine
(C5, §4.5): creation/adoption, type and action derivation, state
transitions (changeState/constrainWindowState), minimize/maximize/hide/show,
struts and work-area computation, reparenting, and the sync-request resize
protocol.

Grounded in the teacher's icccm.go/motif.go property decoding (this package
is their consumer) and xwindow.go's raw primitives (Listen, RawGeometry);
the state machine itself has no teacher analogue (xgbutil is a protocol
binding, not a window manager) and follows spec §4.5 directly, in the same
declarative-table style compiz's C implementation used before the Go
rewrite (§9's re-architecture notes).
*/
package window

import "github.com/compiz-go/compizcore/object"

// windowType is the object.Type shared by every Window instance.
var windowType = object.NewType("window")

func init() {
	windowType.AddInterface(&object.Interface{
		Name:    "org.compiz.Window",
		Version: 1,
		Properties: []object.PropertyDesc{
			{Name: "minimized", Type: object.PropBool, Default: false},
			{Name: "shaded", Type: object.PropBool, Default: false},
			{Name: "hidden", Type: object.PropBool, Default: false},
			{Name: "fullscreen", Type: object.PropBool, Default: false},
			{Name: "desktop", Type: object.PropInt, Default: int32(0)},
		},
		Signals: []object.SignalDesc{
			{Name: "stateChangeNotify", Signature: "i"},
			{Name: "restack", Signature: ""},
			{Name: "windowNotifyRestack", Signature: ""},
		},
	})
}

// Type is the EWMH window type, ordered per invariant I3's precedence
// (Desktop ≺ Dock ≺ ... ≺ Unknown); numerically lower sorts lower in the
// stacking classes of §4.8.
type Type int

const (
	TypeDesktop Type = iota
	TypeDock
	TypeToolbar
	TypeMenu
	TypeUtil
	TypeSplash
	TypeDialog
	TypeNormal
	TypeDropdown
	TypePopup
	TypeTooltip
	TypeNotification
	TypeCombo
	TypeDnd
	TypeModalDialog
	TypeFullscreen
	TypeUnknown
)

// State is a bitmask mirroring spec §3's Window.state field.
type State uint32

const (
	StateSticky State = 1 << iota
	StateMaximizedHorz
	StateMaximizedVert
	StateShaded
	StateHidden
	StateFullscreen
	StateAbove
	StateBelow
	StateModal
	StateDemandsAttention
	StateSkipPager
	StateSkipTaskbar
	StateMinimized
)

// Action is a bitmask mirroring spec §3's Window.actions field.
type Action uint32

const (
	ActionMove Action = 1 << iota
	ActionResize
	ActionStick
	ActionMinimize
	ActionMaximizeHorz
	ActionMaximizeVert
	ActionFullscreen
	ActionClose
	ActionShade
	ActionChangeDesktop
	ActionAbove
	ActionBelow
)

// Protocol is a bitmask of the ICCCM/EWMH client protocols a window
// declared support for via WM_PROTOCOLS.
type Protocol uint32

const (
	ProtoDeleteWindow Protocol = 1 << iota
	ProtoTakeFocus
	ProtoPing
	ProtoSyncRequest
)

// MwmFuncAll mirrors motif.FunctionAll for the
// "if MwmFuncAll is clear, mask each action by its MWM-function bit" rule
// (spec §4.5.1).
const MwmFuncAll = 1
