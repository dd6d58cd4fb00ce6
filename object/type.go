package object

import "sync"

// Type is the static, per-object-type registry of interfaces a kind of node
// (display/screen/window/...) exposes. It plays the role of the teacher's
// compile-time struct layout: every Node of a given Type shares the same
// Type value and therefore the same interface set.
type Type struct {
	Name string

	mu    sync.RWMutex
	order []string
	ifs   map[string]*Interface
}

// NewType declares a fresh object type with no interfaces yet.
func NewType(name string) *Type {
	return &Type{Name: name, ifs: make(map[string]*Interface)}
}

// AddInterface layers an additional interface onto this type (a plugin
// "installs an interface on a type" per §3's private-indices paragraph).
// Re-adding an interface of the same name replaces it, matching a plugin
// being reloaded with a new descriptor.
func (t *Type) AddInterface(iface *Interface) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.ifs[iface.Name]; !exists {
		t.order = append(t.order, iface.Name)
	}
	t.ifs[iface.Name] = iface
}

// RemoveInterface unwinds AddInterface, e.g. when a plugin is unloaded.
func (t *Type) RemoveInterface(name string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.ifs[name]; !ok {
		return
	}
	delete(t.ifs, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Interface looks up one interface by name.
func (t *Type) Interface(name string) (*Interface, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	iface, ok := t.ifs[name]
	return iface, ok
}

// ForEachInterface enumerates every interface this type exposes, in
// registration order, stopping early if cb returns false.
func (t *Type) ForEachInterface(cb func(*Interface) bool) {
	t.mu.RLock()
	names := append([]string(nil), t.order...)
	t.mu.RUnlock()

	for _, n := range names {
		t.mu.RLock()
		iface := t.ifs[n]
		t.mu.RUnlock()
		if iface == nil {
			continue
		}
		if !cb(iface) {
			return
		}
	}
}

// Version returns the version of one of this type's interfaces, or -1 if
// the type does not expose it.
func (t *Type) Version(iface string) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if i, ok := t.ifs[iface]; ok {
		return i.Version
	}
	return -1
}
