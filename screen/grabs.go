package screen

import "sync"

// grabKey identifies one passive grab: a button or key code plus the
// modifier mask it was grabbed with (spec §3 Screen: "per-screen passive
// grabs (buttons and keys with reference counts)").
type grabKey struct {
	code uint8
	mods uint16
}

type grabState struct {
	mu      sync.Mutex
	buttons map[grabKey]int
	keys    map[grabKey]int
}

// GrabButton increments the refcount for (button, mods), returning true the
// first time (the caller should issue the real XGrabButton then).
func (s *Screen) GrabButton(button uint8, mods uint16) (first bool) {
	s.grabs.mu.Lock()
	defer s.grabs.mu.Unlock()
	k := grabKey{button, mods}
	s.grabs.buttons[k]++
	return s.grabs.buttons[k] == 1
}

// UngrabButton decrements the refcount, returning true when it reaches zero
// (the caller should issue the real XUngrabButton then).
func (s *Screen) UngrabButton(button uint8, mods uint16) (last bool) {
	s.grabs.mu.Lock()
	defer s.grabs.mu.Unlock()
	k := grabKey{button, mods}
	if s.grabs.buttons[k] == 0 {
		return false
	}
	s.grabs.buttons[k]--
	if s.grabs.buttons[k] == 0 {
		delete(s.grabs.buttons, k)
		return true
	}
	return false
}

// GrabKey is GrabButton for keycodes.
func (s *Screen) GrabKey(keycode uint8, mods uint16) (first bool) {
	s.grabs.mu.Lock()
	defer s.grabs.mu.Unlock()
	k := grabKey{keycode, mods}
	s.grabs.keys[k]++
	return s.grabs.keys[k] == 1
}

// UngrabKey is UngrabButton for keycodes.
func (s *Screen) UngrabKey(keycode uint8, mods uint16) (last bool) {
	s.grabs.mu.Lock()
	defer s.grabs.mu.Unlock()
	k := grabKey{keycode, mods}
	if s.grabs.keys[k] == 0 {
		return false
	}
	s.grabs.keys[k]--
	if s.grabs.keys[k] == 0 {
		delete(s.grabs.keys, k)
		return true
	}
	return false
}
