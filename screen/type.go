/*
Package screen implements spec §3's Screen and the addScreen half of the
C4 bootstrap sequence (§4.4): acquiring the WM_Sn/_NET_WM_CM_Sn selections,
redirecting subwindows for compositing, and holding the per-screen state
the window/stack/focus packages mutate (stacking list, viewport, Xinerama
outputs, screen-edge windows, passive-grab refcounts, active-window
history).

Grounded in the teacher's xinerama.go for output queries and keybind's
mutex-guarded-registry shape for the passive-grab refcount tables.
*/
package screen

import "github.com/compiz-go/compizcore/object"

// screenType is the single object.Type shared by every Screen instance,
// declaring the reflection surface spec §4.2 requires (C2): a handful of
// properties mirroring §3's Screen fields, plus the declared
// restack/outputsChanged signals (no package in this module emits them on
// a screen).
var screenType = object.NewType("screen")

func init() {
	screenType.AddInterface(&object.Interface{
		Name:    "org.compiz.Screen",
		Version: 1,
		Properties: []object.PropertyDesc{
			{Name: "hsize", Type: object.PropInt, Default: int32(1), HasMin: true, Min: 1},
			{Name: "vsize", Type: object.PropInt, Default: int32(1), HasMin: true, Min: 1},
			{Name: "currentDesktop", Type: object.PropInt, Default: int32(0), HasMin: true, Min: 0},
			{Name: "showingDesktop", Type: object.PropBool, Default: false},
		},
		Signals: []object.SignalDesc{
			{Name: "restack", Signature: ""},
			{Name: "outputsChanged", Signature: ""},
			{Name: "workareaChanged", Signature: "iiii"},
		},
	})
}
