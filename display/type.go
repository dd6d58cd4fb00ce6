package display

import "github.com/compiz-go/compizcore/object"

// displayType is the object.Type shared by every Display instance (spec
// §4.2, C2's per-object-type interface registry).
var displayType = object.NewType("display")

func init() {
	displayType.AddInterface(&object.Interface{
		Name:    "org.compiz.Display",
		Version: 1,
		Properties: []object.PropertyDesc{
			{Name: "activeWindow", Type: object.PropInt, Default: int32(0)},
		},
		Signals: []object.SignalDesc{
			{Name: "activeWindowChanged", Signature: "i"},
		},
	})
}
