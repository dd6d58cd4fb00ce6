package engine

import (
	"testing"

	xsync "github.com/BurntSushi/xgb/sync"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/window"
)

func TestConfigureValuesOrderAndMask(t *testing.T) {
	evt := xproto.ConfigureRequestEvent{
		ValueMask:   uint16(xproto.ConfigWindowX | xproto.ConfigWindowHeight | xproto.ConfigWindowStackMode),
		X:           100,
		Y:           200,
		Width:       300,
		Height:      400,
		BorderWidth: 2,
		Sibling:     7,
		StackMode:   xproto.StackModeAbove,
	}

	got := configureValues(evt)
	want := []uint32{100, 400, uint32(xproto.StackModeAbove)}
	if len(got) != len(want) {
		t.Fatalf("configureValues() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("configureValues()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConfigureValuesEmptyMask(t *testing.T) {
	if got := configureValues(xproto.ConfigureRequestEvent{}); len(got) != 0 {
		t.Errorf("configureValues() with no bits set = %v, want empty", got)
	}
}

func TestEnginePutGetDrop(t *testing.T) {
	e := New(nil)
	w := &window.Window{ID: 5}

	if _, ok := e.get(5); ok {
		t.Fatal("get() on empty engine should report not-found")
	}

	e.put(w)
	got, ok := e.get(5)
	if !ok || got != w {
		t.Fatalf("get() after put() = (%v, %v), want (%v, true)", got, ok, w)
	}

	e.drop(5)
	if _, ok := e.get(5); ok {
		t.Error("get() after drop() should report not-found")
	}
}

func TestEnginePutIndexesAlarmCounter(t *testing.T) {
	e := New(nil)
	w := &window.Window{ID: 9, Protocols: window.ProtoSyncRequest, SyncCounter: xsync.Counter(3)}
	e.put(w)

	e.mu.RLock()
	id, tracked := e.byAlarmCounter[xsync.Counter(3)]
	e.mu.RUnlock()
	if !tracked || id != 9 {
		t.Fatalf("byAlarmCounter[3] = (%v, %v), want (9, true)", id, tracked)
	}

	e.drop(9)
	e.mu.RLock()
	_, tracked = e.byAlarmCounter[xsync.Counter(3)]
	e.mu.RUnlock()
	if tracked {
		t.Error("drop() should remove the window's alarm-counter index too")
	}
}

func TestEnginePutSkipsAlarmCounterWithoutSyncRequestProtocol(t *testing.T) {
	e := New(nil)
	w := &window.Window{ID: 11, SyncCounter: xsync.Counter(4)}
	e.put(w)

	e.mu.RLock()
	_, tracked := e.byAlarmCounter[xsync.Counter(4)]
	e.mu.RUnlock()
	if tracked {
		t.Error("a window that never declared _NET_WM_SYNC_REQUEST must not be alarm-indexed")
	}
}

func TestEngineSnapshotIsDefensiveCopy(t *testing.T) {
	e := New(nil)
	e.put(&window.Window{ID: 1})

	snap := e.snapshot()
	snap[2] = &window.Window{ID: 2}

	if _, ok := e.get(2); ok {
		t.Error("mutating the snapshot must not affect the engine's own map")
	}
}
