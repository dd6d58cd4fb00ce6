package object

import "sync"

// Node is one member of the object tree: root → display → screen → window.
// Lifetime follows §3's rule exactly: a node becomes observable only once
// Insert links it under a parent, and is unlinked by Remove before it is
// finalized.
type Node struct {
	Type *Type
	name string

	mu       sync.RWMutex
	parent   *Node
	children map[string]*Node
	order    []string

	props    map[string]map[string]interface{} // iface -> prop -> value
	handlers map[signalKey][]*handler
	nextHID  uint64
}

// NewNode constructs a detached node of the given type. It is not part of
// any tree until Insert is called.
func NewNode(name string, typ *Type) *Node {
	n := &Node{
		Type:     typ,
		name:     name,
		children: make(map[string]*Node),
		props:    make(map[string]map[string]interface{}),
		handlers: make(map[signalKey][]*handler),
	}
	n.loadDefaults()
	return n
}

func (n *Node) loadDefaults() {
	n.Type.ForEachInterface(func(iface *Interface) bool {
		store := make(map[string]interface{}, len(iface.Properties))
		for _, p := range iface.Properties {
			store[p.Name] = clamp(p, p.Default)
		}
		n.props[iface.Name] = store
		return true
	})
}

// Name returns the node's child name within its parent.
func (n *Node) Name() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.name
}

// Parent returns the node's parent, or nil if detached or root.
func (n *Node) Parent() *Node {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.parent
}

// Insert links child under n as the given name and emits childObjectAdded
// up the tree (§3 lifetime rule). It is an error to insert a node that is
// already parented, or to reuse a name already present.
func (n *Node) Insert(name string, child *Node) error {
	n.mu.Lock()
	if _, exists := n.children[name]; exists {
		n.mu.Unlock()
		return errNameTaken(name)
	}
	child.mu.Lock()
	if child.parent != nil {
		child.mu.Unlock()
		n.mu.Unlock()
		return errAlreadyParented(name)
	}
	child.parent = n
	child.name = name
	child.mu.Unlock()

	n.children[name] = child
	n.order = append(n.order, name)
	n.mu.Unlock()

	n.Signal("", "core", "childObjectAdded", "s", []interface{}{name})
	return nil
}

// Remove unlinks the named child and emits childObjectRemoved up the tree,
// matching §3: "removal precedes finalization". The caller is responsible
// for releasing any pidx.Slots/resources once Remove returns — Remove
// itself only touches tree topology.
func (n *Node) Remove(name string) (*Node, bool) {
	n.mu.Lock()
	child, ok := n.children[name]
	if !ok {
		n.mu.Unlock()
		return nil, false
	}
	delete(n.children, name)
	for i, nm := range n.order {
		if nm == name {
			n.order = append(n.order[:i], n.order[i+1:]...)
			break
		}
	}
	n.mu.Unlock()

	child.mu.Lock()
	child.parent = nil
	child.mu.Unlock()

	n.Signal("", "core", "childObjectRemoved", "s", []interface{}{name})
	return child, true
}

// Child looks up a direct child by name.
func (n *Node) Child(name string) (*Node, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	c, ok := n.children[name]
	return c, ok
}

// ForEachChildObject enumerates direct children in insertion order,
// stopping early if cb returns false.
func (n *Node) ForEachChildObject(cb func(*Node) bool) {
	n.mu.RLock()
	names := append([]string(nil), n.order...)
	n.mu.RUnlock()

	for _, nm := range names {
		n.mu.RLock()
		c := n.children[nm]
		n.mu.RUnlock()
		if c == nil {
			continue
		}
		if !cb(c) {
			return
		}
	}
}

// ForEachMethod enumerates the methods of one interface.
func (n *Node) ForEachMethod(iface string, cb func(MethodDesc) bool) {
	i, ok := n.Type.Interface(iface)
	if !ok {
		return
	}
	for _, m := range i.Methods {
		if !cb(m) {
			return
		}
	}
}

// ForEachSignal enumerates the signals of one interface.
func (n *Node) ForEachSignal(iface string, cb func(SignalDesc) bool) {
	i, ok := n.Type.Interface(iface)
	if !ok {
		return
	}
	for _, s := range i.Signals {
		if !cb(s) {
			return
		}
	}
}

// ForEachProp enumerates the properties of one interface.
func (n *Node) ForEachProp(iface string, cb func(PropertyDesc) bool) {
	i, ok := n.Type.Interface(iface)
	if !ok {
		return
	}
	for _, p := range i.Properties {
		if !cb(p) {
			return
		}
	}
}

type treeError string

func (e treeError) Error() string { return string(e) }

func errNameTaken(name string) error {
	return treeError("object: child name already in use: " + name)
}

func errAlreadyParented(name string) error {
	return treeError("object: node already has a parent, cannot insert as " + name)
}
