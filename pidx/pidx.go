/*
Package pidx implements the private-index allocator (spec §4.1): a per
object-type registry that hands out stable integer slots for plugin storage,
and keeps every live object's storage in lockstep with the set of allocated
slots.

§9's design note for this exact C pattern ("every plugin gets an int index
into an untyped array per object") prescribes "an arena of byte-addressed
slots with a phantom-typed accessor returning the concrete plugin struct"
rather than one monolithic, size-concatenated buffer — concatenation would
make every slot after a resized one shift offset, which breaks the stability
property tested by P8 ("slot b offsets and contents are unchanged"). pidx
therefore gives each index its own independently-sized arena entry: Alloc/
Free/resize at index a never touches index b's bytes or its identity.

The registry itself follows the mutex-guarded-map idiom the teacher uses for
its keybind/mousebind registries (keybind/xutil.go's KeybindsLck-protected
maps): one sync.Mutex per Registry, held across any operation that touches
the sizes table or the tracked-object set.
*/
package pidx

import "sync"

// Registry is the private-index allocator for a single object type. Index i
// is free (available to a future Alloc) iff sizes[i] == 0.
type Registry struct {
	mu      sync.Mutex
	sizes   []int
	tracked map[*Slots]struct{}
}

// Slots is one live object's private storage, tracked by its Registry so
// that Alloc/Free can keep it in lockstep with every other live object of
// the same type (I8).
type Slots struct {
	reg  *Registry
	data [][]byte // data[i] is nil until something has written through Slot
}

// NewRegistry creates an empty registry for one object type.
func NewRegistry() *Registry {
	return &Registry{tracked: make(map[*Slots]struct{})}
}

// NewSlots creates a storage arena sized to the registry's current index
// count and registers it for future Alloc/Free growth.
func (r *Registry) NewSlots() *Slots {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := &Slots{reg: r, data: make([][]byte, len(r.sizes))}
	r.tracked[s] = struct{}{}
	return s
}

// Forget removes a Slots from tracking, e.g. when its owning object is
// finalized (I7).
func (r *Registry) Forget(s *Slots) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tracked, s)
}

// Alloc scans for the lowest free slot (sizes[i] == 0), records size there
// (extending the table if every existing index is occupied), and grows every
// tracked object's arena to cover the new index count. Returns the allocated
// index. Allocating at an existing, just-freed index with a different size
// does not disturb any other index's storage or identity.
func (r *Registry) Alloc(size int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i, sz := range r.sizes {
		if sz == 0 {
			idx = i
			break
		}
	}
	if idx == -1 {
		idx = len(r.sizes)
		r.sizes = append(r.sizes, 0)
		for s := range r.tracked {
			s.data = append(s.data, nil)
		}
	}
	r.sizes[idx] = size

	for s := range r.tracked {
		s.data[idx] = make([]byte, size)
	}
	return idx
}

// Free releases index i: its size becomes 0 (reusable by a future Alloc, at
// whatever size that Alloc requests) and every tracked object drops its
// storage at that index. The sizes table itself does not shrink — "holes are
// reused by future allocations" per §4.1 — and no other index is touched.
func (r *Registry) Free(i int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if i < 0 || i >= len(r.sizes) || r.sizes[i] == 0 {
		return
	}
	r.sizes[i] = 0
	for s := range r.tracked {
		s.data[i] = nil
	}
}

// Slot returns the byte arena for private index i on s, allocating it
// lazily if this Slots predates index i's Alloc. Panics if i has never been
// allocated or was since freed — that indicates the caller holds a stale
// index from before a Free.
func (s *Slots) Slot(i, size int) []byte {
	s.reg.mu.Lock()
	defer s.reg.mu.Unlock()

	if i < 0 || i >= len(s.reg.sizes) || s.reg.sizes[i] == 0 {
		panic("pidx: access to unallocated or freed private index")
	}
	if i >= len(s.data) {
		grown := make([][]byte, len(s.reg.sizes))
		copy(grown, s.data)
		s.data = grown
	}
	if s.data[i] == nil {
		s.data[i] = make([]byte, s.reg.sizes[i])
	}
	if len(s.data[i]) != size {
		panic("pidx: slot size mismatch with registry allocation")
	}
	return s.data[i]
}

// Len reports how many indices (allocated or freed-but-reserved) the
// registry has handed out a slot for.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sizes)
}
