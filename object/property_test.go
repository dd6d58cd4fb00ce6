package object

import "testing"

func opacityType() *Type {
	typ := NewType("window")
	typ.AddInterface(&Interface{
		Name:    "core",
		Version: 1,
		Properties: []PropertyDesc{
			{Name: "opacity", Type: PropInt, Min: 0, Max: 100, HasMin: true, HasMax: true, Default: int32(100)},
			{Name: "title", Type: PropString, Default: ""},
		},
	})
	return typ
}

func TestPropertyDefaultIsClamped(t *testing.T) {
	typ := NewType("window")
	typ.AddInterface(&Interface{
		Name: "core",
		Properties: []PropertyDesc{
			{Name: "opacity", Type: PropInt, Min: 0, Max: 100, HasMin: true, HasMax: true, Default: int32(500)},
		},
	})
	n := NewNode("w0", typ)
	v, err := n.GetInt("core", "opacity")
	if err != nil {
		t.Fatalf("GetInt: %v", err)
	}
	if v != 100 {
		t.Fatalf("expected default to be clamped to 100, got %d", v)
	}
}

func TestSetIntClampsAndEmitsChanged(t *testing.T) {
	n := NewNode("w0", opacityType())
	if err := n.SetInt("core", "opacity", 50); err != nil {
		t.Fatalf("SetInt: %v", err)
	}

	var oldSeen, newSeen interface{}
	n.Connect("core", "opacityChanged", "", func(path, iface, name string, args []interface{}) {
		oldSeen, newSeen = args[0], args[1]
	})

	if err := n.SetInt("core", "opacity", 500); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	v, _ := n.GetInt("core", "opacity")
	if v != 100 {
		t.Fatalf("expected clamp to 100, got %d", v)
	}
	if oldSeen != int32(50) || newSeen != int32(100) {
		t.Fatalf("unexpected changed args: old=%v new=%v", oldSeen, newSeen)
	}
}

func TestSetStringNoopWhenUnchanged(t *testing.T) {
	n := NewNode("w0", opacityType())
	fired := 0
	n.Connect("core", "titleChanged", "", func(path, iface, name string, args []interface{}) {
		fired++
	})

	if err := n.SetString("core", "title", "a"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if err := n.SetString("core", "title", "a"); err != nil {
		t.Fatalf("SetString: %v", err)
	}
	if fired != 1 {
		t.Fatalf("expected exactly one changed emission for one real change, got %d", fired)
	}
}

func TestSetUnknownPropertyErrors(t *testing.T) {
	n := NewNode("w0", opacityType())
	if err := n.SetInt("core", "doesNotExist", 1); err == nil {
		t.Fatalf("expected error setting an undeclared property")
	}
}
