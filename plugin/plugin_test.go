package plugin

import (
	"testing"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/object"
)

// fakePlugin is a minimal Plugin for exercising Registry's bookkeeping
// without a live core.Core.
type fakePlugin struct {
	name      string
	finiCalls int
	onInitObj func(ObjectType)
	onFiniObj func()
}

func newFakePlugin(name string) *fakePlugin { return &fakePlugin{name: name} }

func newFakePluginFunc(name string, onInitObj func(ObjectType)) *fakePlugin {
	return &fakePlugin{name: name, onInitObj: onInitObj}
}

func newFakePluginDestroy(name string, onFiniObj func()) *fakePlugin {
	return &fakePlugin{name: name, onFiniObj: onFiniObj}
}

func (p *fakePlugin) Name() string             { return p.name }
func (p *fakePlugin) Init(c *core.Core) error  { return nil }
func (p *fakePlugin) Fini(c *core.Core)        { p.finiCalls++ }
func (p *fakePlugin) InitObject(c *core.Core, typ ObjectType, n *object.Node) error {
	if p.onInitObj != nil {
		p.onInitObj(typ)
	}
	return nil
}
func (p *fakePlugin) FiniObject(c *core.Core, typ ObjectType, n *object.Node) {
	if p.onFiniObj != nil {
		p.onFiniObj()
	}
}

func TestRegistryLoadRejectsDuplicateName(t *testing.T) {
	r := NewRegistry()
	p1 := newFakePlugin("deco")
	p2 := newFakePlugin("deco")

	if err := r.Load(nil, p1); err != nil {
		t.Fatalf("first Load() failed: %v", err)
	}
	if err := r.Load(nil, p2); err == nil {
		t.Fatal("second Load() with a duplicate name should fail")
	}
}

func TestRegistryUnloadUnknownFails(t *testing.T) {
	r := NewRegistry()
	if err := r.Unload(nil, "nonexistent"); err == nil {
		t.Fatal("Unload() of a plugin that was never loaded should fail")
	}
}

func TestRegistryLoadThenUnload(t *testing.T) {
	r := NewRegistry()
	p := newFakePlugin("deco")
	if err := r.Load(nil, p); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if err := r.Unload(nil, "deco"); err != nil {
		t.Fatalf("Unload() failed: %v", err)
	}
	if p.finiCalls != 1 {
		t.Errorf("Fini called %d times, want 1", p.finiCalls)
	}
	if err := r.Unload(nil, "deco"); err == nil {
		t.Fatal("double Unload() should fail the second time")
	}
}

func TestNotifyObjectCreatedRunsInLoadOrder(t *testing.T) {
	r := NewRegistry()
	var order []string
	first := newFakePluginFunc("first", func(typ ObjectType) { order = append(order, "first") })
	second := newFakePluginFunc("second", func(typ ObjectType) { order = append(order, "second") })
	r.Load(nil, first)
	r.Load(nil, second)

	n := object.NewNode("", object.NewType("window"))
	r.NotifyObjectCreated(nil, ObjectWindow, n)

	want := []string{"first", "second"}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("NotifyObjectCreated() order = %v, want %v", order, want)
	}
}

func TestNotifyObjectDestroyedRunsInReverseOrder(t *testing.T) {
	r := NewRegistry()
	var order []string
	first := newFakePluginDestroy("first", func() { order = append(order, "first") })
	second := newFakePluginDestroy("second", func() { order = append(order, "second") })
	r.Load(nil, first)
	r.Load(nil, second)

	n := object.NewNode("", object.NewType("window"))
	r.NotifyObjectDestroyed(nil, ObjectWindow, n)

	want := []string{"second", "first"}
	if len(order) != len(want) || order[0] != want[0] || order[1] != want[1] {
		t.Errorf("NotifyObjectDestroyed() order = %v, want %v", order, want)
	}
}

func TestIndicesPerObjectType(t *testing.T) {
	r := NewRegistry()
	if r.Indices(ObjectWindow) == nil {
		t.Fatal("Indices(ObjectWindow) should be pre-allocated")
	}
	if r.Indices(ObjectWindow) == r.Indices(ObjectScreen) {
		t.Error("each ObjectType should have its own pidx.Registry")
	}
}

func TestRegisterOptionDuplicateFails(t *testing.T) {
	r := NewRegistry()
	get := func(n *object.Node) (interface{}, error) { return nil, nil }
	set := func(n *object.Node, v interface{}) error { return nil }

	if err := r.RegisterOption(ObjectWindow, "opacity", get, set); err != nil {
		t.Fatalf("first RegisterOption() failed: %v", err)
	}
	if err := r.RegisterOption(ObjectWindow, "opacity", get, set); err == nil {
		t.Fatal("registering the same (type, name) twice should fail")
	}
}

func TestGetSetObjectOptionRoundTrip(t *testing.T) {
	r := NewRegistry()
	var stored interface{}
	get := func(n *object.Node) (interface{}, error) { return stored, nil }
	set := func(n *object.Node, v interface{}) error { stored = v; return nil }
	if err := r.RegisterOption(ObjectWindow, "opacity", get, set); err != nil {
		t.Fatalf("RegisterOption() failed: %v", err)
	}

	n := object.NewNode("", object.NewType("window"))
	if err := r.SetObjectOption(ObjectWindow, "opacity", n, 50); err != nil {
		t.Fatalf("SetObjectOption() failed: %v", err)
	}
	got, err := r.GetObjectOption(ObjectWindow, "opacity", n)
	if err != nil {
		t.Fatalf("GetObjectOption() failed: %v", err)
	}
	if got != 50 {
		t.Errorf("GetObjectOption() = %v, want 50", got)
	}
}

func TestGetObjectOptionUnregisteredFails(t *testing.T) {
	r := NewRegistry()
	n := object.NewNode("", object.NewType("window"))
	if _, err := r.GetObjectOption(ObjectWindow, "nope", n); err == nil {
		t.Fatal("GetObjectOption() for an unregistered name should fail")
	}
}
