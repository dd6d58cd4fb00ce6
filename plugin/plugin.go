/*
Package plugin implements the plugin interface contract (spec §6, §4.2):
Init/Fini at the process level, InitObject/FiniObject per object type, and
GetObjectOption/SetObjectOption for the generic option-bag every plugin
exposes through the object tree's property system.

Wired to pidx.Registry for per-plugin-per-type private index allocation
(one Registry per object type, shared by every loaded plugin) and
object.WrapStack for the virtual-hook wrap/unwrap chain (one WrapStack per
hook point a plugin overrides, e.g. paintWindow/damageWindowRect).
*/
package plugin

import (
	"fmt"
	"sync"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/object"
	"github.com/compiz-go/compizcore/pidx"
)

// ObjectType names one of the object-tree node kinds a plugin can attach
// per-object private storage and hooks to (spec §3's display/screen/window
// hierarchy).
type ObjectType string

const (
	ObjectCore    ObjectType = "core"
	ObjectDisplay ObjectType = "display"
	ObjectScreen  ObjectType = "screen"
	ObjectWindow  ObjectType = "window"
)

// Plugin is the interface every loadable plugin implements (spec §6).
// InitObject/FiniObject run only through NotifyObjectCreated/
// NotifyObjectDestroyed, once per object created/destroyed while the plugin
// is loaded; Load and Unload do not call them for objects that already
// exist.
type Plugin interface {
	Name() string
	Init(c *core.Core) error
	Fini(c *core.Core)
	InitObject(c *core.Core, typ ObjectType, n *object.Node) error
	FiniObject(c *core.Core, typ ObjectType, n *object.Node)
}

// OptionGetter/OptionSetter back GetObjectOption/SetObjectOption: a plugin
// registers one pair per option name per object type, keeping its option
// storage in its own pidx-allocated slot rather than forcing every plugin
// through a single shared schema.
type OptionGetter func(n *object.Node) (interface{}, error)
type OptionSetter func(n *object.Node, v interface{}) error

type optionKey struct {
	typ  ObjectType
	name string
}

// Registry tracks every loaded plugin, the per-object-type private-index
// registries (spec §4.1) those plugins allocate from, and the option
// getter/setter pairs GetObjectOption/SetObjectOption dispatch to.
type Registry struct {
	mu      sync.RWMutex
	plugins []Plugin
	byName  map[string]Plugin

	indices map[ObjectType]*pidx.Registry

	getters map[optionKey]OptionGetter
	setters map[optionKey]OptionSetter
}

// NewRegistry constructs an empty plugin registry with one pidx.Registry
// pre-allocated per known ObjectType, since every plugin that attaches
// private storage to e.g. ObjectWindow shares that single registry (spec
// §4.1: "a per object-type registry").
func NewRegistry() *Registry {
	r := &Registry{
		byName:  make(map[string]Plugin),
		indices: make(map[ObjectType]*pidx.Registry),
		getters: make(map[optionKey]OptionGetter),
		setters: make(map[optionKey]OptionSetter),
	}
	for _, t := range []ObjectType{ObjectCore, ObjectDisplay, ObjectScreen, ObjectWindow} {
		r.indices[t] = pidx.NewRegistry()
	}
	return r
}

// Indices returns the shared pidx.Registry for typ, the handle a plugin
// passes to pidx.Registry.Alloc when it first needs private storage on
// that object type.
func (r *Registry) Indices(typ ObjectType) *pidx.Registry {
	return r.indices[typ]
}

// Load runs p.Init and, if it succeeds, records p for FiniObject/Init
// ordering on unload (spec §6: "plugins unload in the reverse order they
// loaded", mirrored by object.WrapStack.Unwrap's LIFO requirement).
func (r *Registry) Load(c *core.Core, p Plugin) error {
	r.mu.Lock()
	if _, dup := r.byName[p.Name()]; dup {
		r.mu.Unlock()
		return fmt.Errorf("plugin: %q already loaded", p.Name())
	}
	r.mu.Unlock()

	if err := p.Init(c); err != nil {
		return fmt.Errorf("plugin %q: Init failed: %w", p.Name(), err)
	}

	r.mu.Lock()
	r.plugins = append(r.plugins, p)
	r.byName[p.Name()] = p
	r.mu.Unlock()
	return nil
}

// Unload runs Fini on the named plugin. Callers must unload in reverse
// load order themselves — Registry does not enforce it beyond what
// object.WrapStack.Unwrap already enforces for any hooks the plugin wrapped.
func (r *Registry) Unload(c *core.Core, name string) error {
	r.mu.Lock()
	p, ok := r.byName[name]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("plugin: %q not loaded", name)
	}
	delete(r.byName, name)
	for i, pl := range r.plugins {
		if pl == p {
			r.plugins = append(r.plugins[:i], r.plugins[i+1:]...)
			break
		}
	}
	r.mu.Unlock()

	p.Fini(c)
	return nil
}

// NotifyObjectCreated runs InitObject on every loaded plugin for a newly
// created object of the given type, in load order (spec §6's per-object
// lifecycle hook).
func (r *Registry) NotifyObjectCreated(c *core.Core, typ ObjectType, n *object.Node) {
	r.mu.RLock()
	plugins := append([]Plugin(nil), r.plugins...)
	r.mu.RUnlock()

	for _, p := range plugins {
		if err := p.InitObject(c, typ, n); err != nil {
			c.Log.Warn().Err(err).Str("plugin", p.Name()).Msg("InitObject failed")
		}
	}
}

// NotifyObjectDestroyed runs FiniObject on every loaded plugin for a
// destroyed object, in reverse load order (mirroring unload ordering so a
// later plugin's FiniObject — which may depend on an earlier plugin's
// state still being valid — runs first).
func (r *Registry) NotifyObjectDestroyed(c *core.Core, typ ObjectType, n *object.Node) {
	r.mu.RLock()
	plugins := append([]Plugin(nil), r.plugins...)
	r.mu.RUnlock()

	for i := len(plugins) - 1; i >= 0; i-- {
		plugins[i].FiniObject(c, typ, n)
	}
}

// RegisterOption installs a getter/setter pair for name on objects of typ
// (spec §6: "GetObjectOption/SetObjectOption"), keyed independently of any
// particular plugin so two plugins can't collide on the same (typ, name)
// pair without one failing loudly.
func (r *Registry) RegisterOption(typ ObjectType, name string, get OptionGetter, set OptionSetter) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := optionKey{typ, name}
	if _, dup := r.getters[key]; dup {
		return fmt.Errorf("plugin: option %q already registered for %s", name, typ)
	}
	r.getters[key] = get
	r.setters[key] = set
	return nil
}

// GetObjectOption dispatches to the registered getter for (typ, name).
func (r *Registry) GetObjectOption(typ ObjectType, name string, n *object.Node) (interface{}, error) {
	r.mu.RLock()
	get, ok := r.getters[optionKey{typ, name}]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("plugin: no option %q registered for %s", name, typ)
	}
	return get(n)
}

// SetObjectOption dispatches to the registered setter for (typ, name).
func (r *Registry) SetObjectOption(typ ObjectType, name string, n *object.Node, v interface{}) error {
	r.mu.RLock()
	set, ok := r.setters[optionKey{typ, name}]
	r.mu.RUnlock()
	if !ok {
		return fmt.Errorf("plugin: no option %q registered for %s", name, typ)
	}
	return set(n, v)
}
