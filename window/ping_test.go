package window

import (
	"testing"
	"time"
)

func TestRecordPongMarksAlive(t *testing.T) {
	w := &Window{}
	w.PingState.Alive = false
	w.RecordPong()
	if !w.PingState.Alive {
		t.Error("RecordPong() should mark the window alive")
	}
	if w.PingState.LastPong.IsZero() {
		t.Error("RecordPong() should stamp LastPong")
	}
}

func TestSweepPingMarksDeadWhenUnanswered(t *testing.T) {
	w := &Window{Protocols: ProtoPing}
	now := time.Now()
	w.PingState.LastPong = now
	w.PingState.LastPing = now.Add(time.Second) // a newer ping than the last pong

	w.SweepPing()

	if w.PingState.Alive {
		t.Error("SweepPing() should mark a window dead when LastPong precedes LastPing")
	}
}

func TestSweepPingAliveWhenAnswered(t *testing.T) {
	w := &Window{Protocols: ProtoPing}
	now := time.Now()
	w.PingState.LastPing = now
	w.PingState.LastPong = now.Add(time.Second) // answered after the ping was sent
	w.PingState.Alive = true

	w.SweepPing()

	if !w.PingState.Alive {
		t.Error("SweepPing() must not mark a window dead once its pong is newer than its ping")
	}
}

func TestSweepPingIgnoresWindowsWithoutPingProtocol(t *testing.T) {
	w := &Window{}
	w.PingState.Alive = true
	w.PingState.LastPing = time.Now().Add(time.Second)

	w.SweepPing()

	if !w.PingState.Alive {
		t.Error("SweepPing() must not touch a window that never declared _NET_WM_PING")
	}
}
