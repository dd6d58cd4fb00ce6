/*
Package object implements the object tree & reflection substrate (spec §4.2,
C2): a rooted tree of polymorphic nodes, each exposing a static set of
interface descriptors (methods/signals/properties/children), typed property
storage with change notification, signal connect/disconnect/emit with
bubbling, and the plugin "vtable wrapping" contract for virtual operations.

There is no single teacher file this is grounded on — the teacher is a
protocol-binding library, not a plugin host — so this package follows §9's
own re-architecture notes directly: "a typed interface-dispatch table per
object type" replacing the C vtable, and signal handlers modeled the way the
teacher's keybind/mousebind packages already model X callbacks: a
Connect/Run-shaped interface registered against a (source, key) pair in a
mutex-guarded map (keybind/xutil.go's Keybinds map; types.go's Callback
interface). Property storage follows icccm.go/motif.go's pattern of decoding
a property into a typed Go struct with named fields, generalized to runtime
descriptors since interfaces here are plugin-defined, not fixed at compile
time.
*/
package object

// PropertyType enumerates the four typed property kinds spec §3/§4.2 names.
type PropertyType int

const (
	PropBool PropertyType = iota
	PropInt
	PropDouble
	PropString
)

// PropertyDesc is a static property descriptor: name, type, optional
// min/max (ints/doubles only), default value, an optional setter hook run
// before the stored value changes, and an optional changed-notify callback.
type PropertyDesc struct {
	Name    string
	Type    PropertyType
	Min     float64
	Max     float64
	HasMin  bool
	HasMax  bool
	Default interface{}

	// Setter, if set, is consulted before a new value is committed; it may
	// reject the value by returning an error, or transform it.
	Setter func(n *Node, newVal interface{}) (interface{}, error)

	// Changed, if set, runs after a committed change (in addition to the
	// "<name>Changed" signal, e.g. opacityChanged, emitted automatically on
	// the node). No per-type boolChanged/int32Changed/... signal is emitted.
	Changed func(n *Node, old, new interface{})
}

// MethodDesc is a static method descriptor: name and the Go function that
// implements it. Marshaling (the teacher's "marshal thunk") is just a
// regular typed Go closure here — no wire format to bridge.
type MethodDesc struct {
	Name string
	Call func(n *Node, args []interface{}) ([]interface{}, error)
}

// SignalDesc is a static signal descriptor: name and a human-readable
// signature string (e.g. "ii" for two ints), used only for documentation
// and debug logging — emission itself is dynamically typed.
type SignalDesc struct {
	Name      string
	Signature string
}

// ChildDesc names a child-object slot a type declares it may hold (spec
// §4.2's "child-object table").
type ChildDesc struct {
	Name string
	Type string
}

// Interface is a static interface descriptor: the unit of reflection spec
// §3/§4.2 describe. Interfaces are registered once per object type (see
// Type.AddInterface) and shared by every instance of that type.
type Interface struct {
	Name       string
	Version    int
	Methods    []MethodDesc
	Signals    []SignalDesc
	Properties []PropertyDesc
	Children   []ChildDesc
}

func (iface *Interface) method(name string) (*MethodDesc, bool) {
	for i := range iface.Methods {
		if iface.Methods[i].Name == name {
			return &iface.Methods[i], true
		}
	}
	return nil, false
}

func (iface *Interface) property(name string) (*PropertyDesc, bool) {
	for i := range iface.Properties {
		if iface.Properties[i].Name == name {
			return &iface.Properties[i], true
		}
	}
	return nil, false
}

func (iface *Interface) signal(name string) (*SignalDesc, bool) {
	for i := range iface.Signals {
		if iface.Signals[i].Name == name {
			return &iface.Signals[i], true
		}
	}
	return nil, false
}
