package loop

import (
	"testing"
	"time"
)

func TestAddTimeoutSortsByRemaining(t *testing.T) {
	l := New(nil, nil, nil)
	l.AddTimeout(&Timeout{Interval: 30 * time.Millisecond, Fire: func() bool { return true }})
	l.AddTimeout(&Timeout{Interval: 10 * time.Millisecond, Fire: func() bool { return true }})
	l.AddTimeout(&Timeout{Interval: 20 * time.Millisecond, Fire: func() bool { return true }})

	if len(l.timeouts) != 3 {
		t.Fatalf("AddTimeout() left %d entries, want 3", len(l.timeouts))
	}
	for i := 1; i < len(l.timeouts); i++ {
		if l.timeouts[i-1].remaining > l.timeouts[i].remaining {
			t.Errorf("timeouts not sorted ascending: %v", l.timeouts)
		}
	}
	if l.timeouts[0].Interval != 10*time.Millisecond {
		t.Errorf("shortest interval should sort first, got %v", l.timeouts[0].Interval)
	}
}

func TestWatchAppends(t *testing.T) {
	l := New(nil, nil, nil)
	called := false
	l.Watch(FDWatcher{FD: 3, Callback: func() { called = true }})
	if len(l.watchFds) != 1 {
		t.Fatalf("Watch() left %d entries, want 1", len(l.watchFds))
	}
	l.watchFds[0].Callback()
	if !called {
		t.Error("the registered callback should be reachable from watchFds")
	}
}

func TestNextTimeoutWaitDefault(t *testing.T) {
	l := New(nil, nil, nil)
	if got := l.nextTimeoutWait(); got != 16*time.Millisecond {
		t.Errorf("nextTimeoutWait() with no timeouts = %v, want 16ms", got)
	}
}

func TestNextTimeoutWaitReturnsSoonest(t *testing.T) {
	l := New(nil, nil, nil)
	l.AddTimeout(&Timeout{Interval: 50 * time.Millisecond, Fire: func() bool { return true }})
	l.AddTimeout(&Timeout{Interval: 5 * time.Millisecond, Fire: func() bool { return true }})

	if got := l.nextTimeoutWait(); got != 5*time.Millisecond {
		t.Errorf("nextTimeoutWait() = %v, want 5ms", got)
	}
}

func TestSweepTimeoutsRearmsOnTrueFire(t *testing.T) {
	l := New(nil, nil, nil)
	fireCount := 0
	l.AddTimeout(&Timeout{Interval: 10 * time.Millisecond, Fire: func() bool {
		fireCount++
		return true
	}})

	l.sweepTimeouts(15 * time.Millisecond)

	if fireCount != 1 {
		t.Fatalf("Fire called %d times, want 1", fireCount)
	}
	if len(l.timeouts) != 1 {
		t.Fatalf("a true-returning Fire should stay re-armed, got %d entries", len(l.timeouts))
	}
	if l.timeouts[0].remaining != 10*time.Millisecond {
		t.Errorf("re-armed timeout remaining = %v, want the full interval 10ms", l.timeouts[0].remaining)
	}
}

func TestSweepTimeoutsDropsOnFalseFire(t *testing.T) {
	l := New(nil, nil, nil)
	l.AddTimeout(&Timeout{Interval: 10 * time.Millisecond, Fire: func() bool { return false }})

	l.sweepTimeouts(15 * time.Millisecond)

	if len(l.timeouts) != 0 {
		t.Errorf("a false-returning Fire should drop the timeout, got %d entries", len(l.timeouts))
	}
}

func TestSweepTimeoutsNotYetDue(t *testing.T) {
	l := New(nil, nil, nil)
	fired := false
	l.AddTimeout(&Timeout{Interval: 100 * time.Millisecond, Fire: func() bool {
		fired = true
		return true
	}})

	l.sweepTimeouts(5 * time.Millisecond)

	if fired {
		t.Error("Fire must not run before the timeout's remaining time elapses")
	}
	if len(l.timeouts) != 1 {
		t.Fatalf("not-yet-due timeout should stay in the heap, got %d entries", len(l.timeouts))
	}
	if l.timeouts[0].remaining != 95*time.Millisecond {
		t.Errorf("remaining after partial decay = %v, want 95ms", l.timeouts[0].remaining)
	}
}
