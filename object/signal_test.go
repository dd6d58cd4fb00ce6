package object

import "testing"

func TestConnectEmitDisconnect(t *testing.T) {
	typ := NewType("window")
	n := NewNode("w0", typ)

	var got []interface{}
	id := n.Connect("core", "ping", "", func(path, iface, name string, args []interface{}) {
		got = args
	})

	n.Signal("", "core", "ping", "", []interface{}{42})
	if len(got) != 1 || got[0] != 42 {
		t.Fatalf("handler did not fire with expected args: %v", got)
	}

	if !n.Disconnect("core", "ping", id) {
		t.Fatalf("Disconnect on a live handler should return true")
	}

	got = nil
	n.Signal("", "core", "ping", "", []interface{}{7})
	if got != nil {
		t.Fatalf("disconnected handler must not fire, got %v", got)
	}
}

func TestSignalBubblesToParent(t *testing.T) {
	typ := NewType("any")
	root := NewNode("root", typ)
	child := NewNode("child", typ)
	if err := root.Insert("child", child); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	var sawPath string
	root.Connect("core", "poke", "", func(path, iface, name string, args []interface{}) {
		sawPath = path
	})

	child.Signal("", "core", "poke", "", nil)
	if sawPath != "child" {
		t.Fatalf("expected bubbled signal to report originating path %q, got %q", "child", sawPath)
	}
}

func TestInsertEmitsChildObjectAdded(t *testing.T) {
	typ := NewType("any")
	root := NewNode("root", typ)

	var added string
	root.Connect("core", "childObjectAdded", "", func(path, iface, name string, args []interface{}) {
		if len(args) == 1 {
			added, _ = args[0].(string)
		}
	})

	child := NewNode("child", typ)
	if err := root.Insert("win0", child); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if added != "win0" {
		t.Fatalf("expected childObjectAdded with name win0, got %q", added)
	}
}
