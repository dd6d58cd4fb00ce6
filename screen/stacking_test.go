package screen

import (
	"reflect"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
)

func TestStackPushOrder(t *testing.T) {
	s := newScreen(0, 1)
	s.StackPush(10)
	s.StackPush(20)
	s.StackPush(30)

	got := s.StackOrder()
	want := []xproto.Window{10, 20, 30}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("StackOrder() = %v, want %v", got, want)
	}

	gotRev := s.StackOrderReverse()
	wantRev := []xproto.Window{30, 20, 10}
	if !reflect.DeepEqual(gotRev, wantRev) {
		t.Errorf("StackOrderReverse() = %v, want %v", gotRev, wantRev)
	}
}

func TestStackInsertAboveZeroGoesToTop(t *testing.T) {
	s := newScreen(0, 1)
	s.StackPush(10)
	s.StackPush(20)
	s.StackInsertAbove(30, 0)

	want := []xproto.Window{10, 20, 30}
	if got := s.StackOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("StackOrder() after insert-above-0 = %v, want %v", got, want)
	}
}

func TestStackInsertAboveSpecificWindow(t *testing.T) {
	s := newScreen(0, 1)
	s.StackPush(10)
	s.StackPush(20)
	s.StackPush(30)

	// Insert 40 directly above 10: bottom -> top becomes 10, 40, 20, 30.
	s.StackInsertAbove(40, 10)

	want := []xproto.Window{10, 40, 20, 30}
	if got := s.StackOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("StackOrder() after insert-above(40, 10) = %v, want %v", got, want)
	}
}

func TestStackRemove(t *testing.T) {
	s := newScreen(0, 1)
	s.StackPush(10)
	s.StackPush(20)
	s.StackPush(30)
	s.StackRemove(20)

	want := []xproto.Window{10, 30}
	if got := s.StackOrder(); !reflect.DeepEqual(got, want) {
		t.Errorf("StackOrder() after remove(20) = %v, want %v", got, want)
	}
	if s.StackContains(20) {
		t.Error("StackContains(20) should be false after StackRemove(20)")
	}
}

func TestStackAboveBelow(t *testing.T) {
	s := newScreen(0, 1)
	s.StackPush(10)
	s.StackPush(20)
	s.StackPush(30)

	if got := s.StackAbove(20); got != 30 {
		t.Errorf("StackAbove(20) = %v, want 30", got)
	}
	if got := s.StackBelow(20); got != 10 {
		t.Errorf("StackBelow(20) = %v, want 10", got)
	}
	if got := s.StackAbove(30); got != 0 {
		t.Errorf("StackAbove(30) (topmost) = %v, want 0", got)
	}
	if got := s.StackBelow(10); got != 0 {
		t.Errorf("StackBelow(10) (bottommost) = %v, want 0", got)
	}
}

func TestStackContains(t *testing.T) {
	s := newScreen(0, 1)
	if s.StackContains(10) {
		t.Error("StackContains(10) should be false before it's pushed")
	}
	s.StackPush(10)
	if !s.StackContains(10) {
		t.Error("StackContains(10) should be true after it's pushed")
	}
}

func TestRecordActiveAndRecentActive(t *testing.T) {
	s := newScreen(0, 1)
	s.RecordActive(1)
	s.RecordActive(2)
	s.RecordActive(3)

	got := s.RecentActive(2)
	want := []xproto.Window{3, 2}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("RecentActive(2) = %v, want %v (most recent first)", got, want)
	}
}

func TestPendingDestroysCounter(t *testing.T) {
	s := newScreen(0, 1)
	if s.PendingDestroys() != 0 {
		t.Fatal("a fresh screen should have no pending destroys")
	}
	s.IncPendingDestroys()
	s.IncPendingDestroys()
	if s.PendingDestroys() != 2 {
		t.Errorf("PendingDestroys() = %d, want 2", s.PendingDestroys())
	}
	s.DecPendingDestroys()
	if s.PendingDestroys() != 1 {
		t.Errorf("PendingDestroys() after one Dec = %d, want 1", s.PendingDestroys())
	}
	s.DecPendingDestroys()
	s.DecPendingDestroys() // must not go negative
	if s.PendingDestroys() != 0 {
		t.Errorf("PendingDestroys() should floor at 0, got %d", s.PendingDestroys())
	}
}
