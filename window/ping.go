package window

import (
	"time"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/ewmh"
)

// Ping is the subset of spec §4.6/§5's liveness protocol a Window tracks:
// "window writes back lastPong = lastPing; the ping timer every pingDelay
// walks all normal viewable non-transient windows and bumps lastPing. A
// window with lastPong < lastPing is marked alive = false."
type Ping struct {
	LastPing time.Time
	LastPong time.Time
	Alive    bool
}

// SendPing implements the per-window half of the §5 ping watchdog: records
// the new lastPing and asks the client to echo _NET_WM_PING back to the
// root window. Skipped for clients that never declared the protocol.
func (w *Window) SendPing(c *core.Core) {
	if w.Protocols&ProtoPing == 0 {
		return
	}
	w.PingState.LastPing = time.Now()
	if err := ewmh.WmPing(c, w.ID, false); err != nil {
		c.Log.Warn().Err(err).Uint32("window", uint32(w.ID)).Msg("sending _NET_WM_PING failed")
	}
}

// RecordPong marks the most recent ping as answered (the event dispatcher
// calls this on the WM_PROTOCOLS/_NET_WM_PING echo ClientMessage).
func (w *Window) RecordPong() {
	w.PingState.LastPong = time.Now()
	w.PingState.Alive = true
}

// SweepPing implements the watchdog half: any window whose last ping was
// never answered is marked not-alive (spec §5: "paint brightness → 0xa8a8
// + saturation → 0" is a rendering-layer response to Alive==false this
// package only flags, since painting is out of this core's scope).
func (w *Window) SweepPing() {
	if w.Protocols&ProtoPing == 0 {
		return
	}
	if w.PingState.LastPong.Before(w.PingState.LastPing) {
		w.PingState.Alive = false
	}
}
