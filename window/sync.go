package window

import (
	xsync "github.com/BurntSushi/xgb/sync"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/ewmh"
)

// syncWatchdogMillis is how long, in milliseconds, a resize waits for the
// client's AlarmNotify before WatchdogExpired applies the geometry
// unconditionally (spec §4.5.5, S6).
const syncWatchdogMillis = 1200

// initSyncCounter implements the first half of spec §4.5.5: if the client
// declared _NET_WM_SYNC_REQUEST in WM_PROTOCOLS and published a counter
// via _NET_WM_SYNC_REQUEST_COUNTER, fetch that counter's current value so
// resize requests can allocate one unit above it.
func (w *Window) initSyncCounter(c *core.Core) {
	if w.Protocols&ProtoSyncRequest == 0 {
		return
	}
	counter, err := ewmh.WmSyncRequestCounter(c, w.ID)
	if err != nil || counter == 0 {
		w.Protocols &^= ProtoSyncRequest
		return
	}
	w.SyncCounter = xsync.Counter(counter)

	reply, err := xsync.QueryCounter(c.Conn, w.SyncCounter).Reply()
	if err != nil {
		w.Protocols &^= ProtoSyncRequest
		return
	}
	w.syncNextValue = int64(reply.CounterValue.Hi)<<32 | int64(reply.CounterValue.Lo)
}

// requestSync implements the resize half of spec §4.5.5: allocate the
// next counter value, stash the pending geometry in SyncGeom, arm
// SyncWait, and send the client a WM_SYNC_REQUEST ClientMessage carrying
// the new value's low/high 32 bits. Nothing in this module calls
// requestSync, and it arms no watchdog timer itself; WatchdogExpired is
// the fallback that applies SyncGeom when no AlarmNotify arrives.
func (w *Window) requestSync(c *core.Core, pending Geometry) error {
	if w.Protocols&ProtoSyncRequest == 0 || w.SyncWait {
		return nil
	}
	w.syncNextValue++
	w.SyncGeom = pending
	w.SyncWait = true

	return ewmh.WmSyncRequest(c, w.ID, uint64(w.syncNextValue))
}

// AlarmFired implements the counter-alarm-fire half of spec §4.5.5:
// applies the geometry that was pending when the request was sent and
// clears SyncWait, regardless of whether the fired counter value matches
// (a stale alarm for an old value is treated as "close enough", since a
// client that can't keep up is better served by not blocking resizes
// indefinitely).
func (w *Window) AlarmFired(value int64) {
	if !w.SyncWait {
		return
	}
	w.Current = w.SyncGeom
	w.SyncWait = false
}

// WatchdogExpired implements the 1200ms timeout branch: apply the pending
// geometry exactly as AlarmFired would, since a client that never replies
// must not be allowed to wedge future resizes.
func (w *Window) WatchdogExpired() {
	if !w.SyncWait {
		return
	}
	w.Current = w.SyncGeom
	w.SyncWait = false
}
