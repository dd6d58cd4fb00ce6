package screen

import "github.com/compiz-go/compizcore/xrect"

// DamageRegion accumulates damaged rectangles for one screen between
// redraws (spec §4.3 step 2/6). It keeps the simple "bounding union" model:
// compiz-core's actual damage extent tracking lives in the X DAMAGE
// extension's server-side region; this client-side accumulator only needs
// to know the union's bounding box to decide "is the whole screen damaged"
// (§4.3 step 6: "if the result equals the whole screen, escalate").
type DamageRegion struct {
	valid bool
	x, y  int16
	w, h  uint16
}

// Add unions r into the accumulated damage.
func (d *DamageRegion) Add(r xrect.Rect) {
	x, y, w, h := xrect.Intify(r)
	if !d.valid {
		d.x, d.y, d.w, d.h = int16(x), int16(y), uint16(w), uint16(h)
		d.valid = true
		return
	}
	x0 := min16(d.x, int16(x))
	y0 := min16(d.y, int16(y))
	x1 := max16(int(d.x)+int(d.w), x+w)
	y1 := max16(int(d.y)+int(d.h), y+h)
	d.x, d.y = x0, y0
	d.w, d.h = uint16(int(x1)-int(x0)), uint16(int(y1)-int(y0))
}

// Empty reports whether anything has been damaged since the last Clear.
func (d *DamageRegion) Empty() bool { return !d.valid }

// Clear resets the accumulator after a paint cycle.
func (d *DamageRegion) Clear() { *d = DamageRegion{} }

// Rect returns the accumulated bounding rectangle.
func (d *DamageRegion) Rect() xrect.Rect { return xrect.Make(d.x, d.y, d.w, d.h) }

// Damage exposes the screen's accumulated damage to the main loop.
func (s *Screen) Damage() *DamageRegion { return &s.damage }

// DamageAdd is the lock-guarded entry point event handlers and the window
// engine use to report newly damaged areas.
func (s *Screen) DamageAdd(r xrect.Rect) {
	s.damageMu.Lock()
	defer s.damageMu.Unlock()
	s.damage.Add(r)
}

func min16(a, b int16) int16 {
	if a < b {
		return a
	}
	return b
}

func max16(a, b int) int16 {
	if a > b {
		return int16(a)
	}
	return int16(b)
}
