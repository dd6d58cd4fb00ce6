package object

import "sync"

// WrapStack implements the plugin "vtable wrapping" contract of §4.2/§9: a
// LIFO stack of implementations per virtual hook point. Each plugin that
// wraps a hook pushes its own T and keeps the previously-top T as its
// "super" — calling it to chain to whatever plugin (or the core default)
// was wrapped before it. Unwrapping (plugin unload) pops whatever is on top
// without checking which plugin pushed it, so plugins must unload in the
// reverse order they loaded.
type WrapStack[T any] struct {
	mu    sync.Mutex
	stack []T
}

// NewWrapStack seeds the stack with the core's default implementation,
// which is never popped.
func NewWrapStack[T any](base T) *WrapStack[T] {
	return &WrapStack[T]{stack: []T{base}}
}

// Wrap pushes a new top implementation, returning the previous top so the
// caller can invoke it as "super".
func (w *WrapStack[T]) Wrap(impl T) (super T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	super = w.stack[len(w.stack)-1]
	w.stack = append(w.stack, impl)
	return super
}

// Unwrap pops the top implementation. It panics if the stack only holds the
// base (nothing left to unwrap), matching the core invariant that the base
// implementation is never removed.
func (w *WrapStack[T]) Unwrap() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.stack) <= 1 {
		panic("object: Unwrap called with no wrapped implementation on the stack")
	}
	w.stack = w.stack[:len(w.stack)-1]
}

// Top returns the current, innermost-wrapping implementation to invoke.
func (w *WrapStack[T]) Top() T {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stack[len(w.stack)-1]
}

// Depth reports how many implementations (including the base) are on the
// stack.
func (w *WrapStack[T]) Depth() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.stack)
}
