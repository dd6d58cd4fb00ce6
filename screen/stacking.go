package screen

import (
	"sync"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/ewmh"
)

// stackNode is one link of the screen's stacking list: "doubly-linked in
// paint order and reverse" (spec §3 Screen, invariant I1: "prev/next form a
// total order bottom->top matching X server stack").
type stackNode struct {
	win        xproto.Window
	prev, next *stackNode
}

type stackState struct {
	mu         sync.Mutex
	bottom, top *stackNode
	byID       map[xproto.Window]*stackNode
}

// StackPush inserts w at the top of the stacking list (paint order: bottom to
// top), the initial position for a freshly mapped window.
func (s *Screen) StackPush(w xproto.Window) {
	s.stack.mu.Lock()
	defer s.stack.mu.Unlock()
	s.stackInsertBefore(w, nil)
}

// StackInsertAbove links w directly above `above` (above == 0 means top of
// stack), matching restack's "insert before above (or at top when above =
// None)" (spec §4.8 Restack).
func (s *Screen) StackInsertAbove(w, above xproto.Window) {
	s.stack.mu.Lock()
	defer s.stack.mu.Unlock()

	s.stackUnhook(w)
	if above == 0 {
		s.stackInsertBefore(w, nil)
		return
	}
	aboveNode, ok := s.stack.byID[above]
	if !ok {
		s.stackInsertBefore(w, nil)
		return
	}
	// "insert before above" in top-down terms means linking w directly
	// above aboveNode's position, i.e. as aboveNode.next (next = higher).
	s.stackInsertBefore(w, aboveNode.next)
}

// stackInsertBefore links w into the list immediately below `before`
// (before == nil means at the very top). Caller holds s.stack.mu.
func (s *Screen) stackInsertBefore(w xproto.Window, before *stackNode) {
	n := &stackNode{win: w}
	s.stack.byID[w] = n

	if before == nil {
		n.prev = s.stack.top
		if s.stack.top != nil {
			s.stack.top.next = n
		}
		s.stack.top = n
	} else {
		n.prev = before.prev
		n.next = before
		if before.prev != nil {
			before.prev.next = n
		}
		before.prev = n
	}
	if n.prev == nil {
		s.stack.bottom = n
	}
}

// StackRemove unhooks w from the stacking list (spec I7's removal path).
func (s *Screen) StackRemove(w xproto.Window) {
	s.stack.mu.Lock()
	defer s.stack.mu.Unlock()
	s.stackUnhook(w)
}

func (s *Screen) stackUnhook(w xproto.Window) {
	n, ok := s.stack.byID[w]
	if !ok {
		return
	}
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		s.stack.bottom = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		s.stack.top = n.prev
	}
	delete(s.stack.byID, w)
}

// StackAbove returns the window id directly above w, 0 if w is topmost or
// absent.
func (s *Screen) StackAbove(w xproto.Window) xproto.Window {
	s.stack.mu.Lock()
	defer s.stack.mu.Unlock()
	n, ok := s.stack.byID[w]
	if !ok || n.next == nil {
		return 0
	}
	return n.next.win
}

// StackBelow is the mirror of StackAbove.
func (s *Screen) StackBelow(w xproto.Window) xproto.Window {
	s.stack.mu.Lock()
	defer s.stack.mu.Unlock()
	n, ok := s.stack.byID[w]
	if !ok || n.prev == nil {
		return 0
	}
	return n.prev.win
}

// StackOrder returns the full stacking list bottom-to-top (paint order).
func (s *Screen) StackOrder() []xproto.Window {
	s.stack.mu.Lock()
	defer s.stack.mu.Unlock()

	out := make([]xproto.Window, 0, len(s.stack.byID))
	for n := s.stack.bottom; n != nil; n = n.next {
		out = append(out, n.win)
	}
	return out
}

// StackOrderReverse returns the stacking list top-to-bottom, the order
// findSiblingBelow's "walks top->down" traversal needs (spec §4.8).
func (s *Screen) StackOrderReverse() []xproto.Window {
	s.stack.mu.Lock()
	defer s.stack.mu.Unlock()

	out := make([]xproto.Window, 0, len(s.stack.byID))
	for n := s.stack.top; n != nil; n = n.prev {
		out = append(out, n.win)
	}
	return out
}

// StackContains reports whether w is currently in this screen's stacking
// list, the lookup the event dispatcher uses to find which Screen owns an
// already-managed window (spec §4.6).
func (s *Screen) StackContains(w xproto.Window) bool {
	s.stack.mu.Lock()
	defer s.stack.mu.Unlock()
	_, ok := s.stack.byID[w]
	return ok
}

// RefreshClientListStacking rewrites _NET_CLIENT_LIST_STACKING from the
// current stacking order, called after any restack (spec §4.8 Restack:
// "Refresh _NET_CLIENT_LIST_STACKING").
func (s *Screen) RefreshClientListStacking(c *core.Core) error {
	return ewmh.ClientListStackingSet(c, s.StackOrder())
}
