package object

import "sync"

// signalKey identifies one (iface, name) signal slot on a node, mirroring
// how keybind/xutil.go keys its Keybinds map on (window, modifiers, keycode)
// rather than a single flat string.
type signalKey struct {
	iface string
	name  string
}

// handler is one connected callback, grounded on types.go's Callback
// interface (Connect/Run) from the teacher: a target to invoke plus an id
// for later Disconnect.
type handler struct {
	id  uint64
	cb  func(path, iface, name string, args []interface{})
	det string
}

var connMu sync.Mutex // guards nextGlobalID; per-node state stays under n.mu

var nextGlobalID uint64

func newHandlerID() uint64 {
	connMu.Lock()
	defer connMu.Unlock()
	nextGlobalID++
	return nextGlobalID
}

// Connect registers cb against (iface, name) on n, with an optional
// "details" filter string recorded for the caller's own matching (compiz's
// signal details, e.g. a specific key combo) but not interpreted here. It
// returns an id usable with Disconnect.
func (n *Node) Connect(iface, name, details string, cb func(path, iface, name string, args []interface{})) uint64 {
	id := newHandlerID()
	n.mu.Lock()
	defer n.mu.Unlock()
	key := signalKey{iface, name}
	n.handlers[key] = append(n.handlers[key], &handler{id: id, cb: cb, det: details})
	return id
}

// Disconnect removes a previously Connect-ed handler by id.
func (n *Node) Disconnect(iface, name string, id uint64) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	key := signalKey{iface, name}
	hs := n.handlers[key]
	for i, h := range hs {
		if h.id == id {
			n.handlers[key] = append(hs[:i], hs[i+1:]...)
			return true
		}
	}
	return false
}

// Signal emits (iface, name) on n with the given args, running every
// handler connected on n, then bubbling to the parent with the same
// signature — §4.2: "a single signal emission walks the source's handler
// list, then bubbles to parent, recursively". path identifies the
// originating node for handlers connected higher up the tree.
func (n *Node) Signal(path, iface, name string, signature string, args []interface{}) {
	_ = signature
	if path == "" {
		path = n.Name()
	}

	n.mu.RLock()
	hs := append([]*handler(nil), n.handlers[signalKey{iface, name}]...)
	parent := n.parent
	n.mu.RUnlock()

	for _, h := range hs {
		h.cb(path, iface, name, args)
	}

	if parent != nil {
		parent.Signal(path, iface, name, signature, args)
	}
}
