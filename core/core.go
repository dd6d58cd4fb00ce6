/*
Package core holds the connection context threaded through every other
compizcore package, in the same role xgbutil.XUtil played in the teacher
library: one value carrying the X connection, the atom cache, and a logger,
passed by pointer to every free function that needs to talk to the server.

Unlike the teacher, compizcore never keeps a package-level global; addDisplay
(see package display) constructs one *Core per X display and everything
downstream is reached from it.
*/
package core

import (
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/rs/zerolog"
)

// Core is the per-display connection context: the X connection, the root
// window of the default screen, the interned-atom cache, and a logger.
// It is the generalization of the teacher's XUtil.
type Core struct {
	Conn *xgb.Conn
	Root xproto.Window
	Log  zerolog.Logger

	atomsMu   sync.RWMutex
	atoms     map[string]xproto.Atom
	atomNames map[xproto.Atom]string

	keymap Keymap
}

// Dial connects to the named X display (empty string means $DISPLAY) and
// builds a Core around the default screen's root window. Mirrors
// xgbutil.Dial.
func Dial(display string, log zerolog.Logger) (*Core, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, err
	}

	setup := xproto.Setup(conn)
	if len(setup.Roots) == 0 {
		conn.Close()
		return nil, Uerr("Dial", "X server reported zero screens")
	}

	return &Core{
		Conn:      conn,
		Root:      setup.Roots[0].Root,
		Log:       log,
		atoms:     make(map[string]xproto.Atom, 64),
		atomNames: make(map[xproto.Atom]string, 64),
	}, nil
}

// Atom interns an atom, consulting and filling the cache first. onlyIfExists
// mirrors the X InternAtom flag of the same name.
func (c *Core) Atom(name string, onlyIfExists bool) (xproto.Atom, error) {
	c.atomsMu.RLock()
	if aid, ok := c.atoms[name]; ok {
		c.atomsMu.RUnlock()
		return aid, nil
	}
	c.atomsMu.RUnlock()

	reply, err := xproto.InternAtom(c.Conn, onlyIfExists, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, Xerr(err, "Atom", "error interning atom %q", name)
	}

	c.atomsMu.Lock()
	c.atoms[name] = reply.Atom
	c.atomNames[reply.Atom] = name
	c.atomsMu.Unlock()

	return reply.Atom, nil
}

// Atm is the "only_if_exists=true, panic on zero" convenience used
// pervasively by the teacher's xgbutil.Atm. Reserved for atoms that compizcore
// itself interns during bootstrap (display.InternAtoms), so a zero result
// means a programming error, not a missing client property.
func (c *Core) Atm(name string) xproto.Atom {
	aid, err := c.Atom(name, true)
	if err != nil || aid == 0 {
		panic(Uerr("Atm", "%q returned a zero atom id", name))
	}
	return aid
}

// AtomName is the reverse lookup, also cached.
func (c *Core) AtomName(aid xproto.Atom) (string, error) {
	c.atomsMu.RLock()
	if name, ok := c.atomNames[aid]; ok {
		c.atomsMu.RUnlock()
		return name, nil
	}
	c.atomsMu.RUnlock()

	reply, err := xproto.GetAtomName(c.Conn, aid).Reply()
	if err != nil {
		return "", Xerr(err, "AtomName", "error fetching name for atom %d", aid)
	}

	name := string(reply.Name)
	c.atomsMu.Lock()
	c.atoms[name] = aid
	c.atomNames[aid] = name
	c.atomsMu.Unlock()

	return name, nil
}

// CheckForError drains and discards any outstanding protocol errors,
// reporting whether at least one occurred. Window operations that must not
// raise (§7 propagation policy) call this after a risky sequence instead of
// inspecting individual request cookies.
func (c *Core) CheckForError() bool {
	ev, xerr := c.Conn.PollForEvent()
	found := false
	for ev != nil || xerr != nil {
		if xerr != nil {
			found = true
			c.Log.Warn().Err(xerr).Msg("x protocol error drained")
		}
		ev, xerr = c.Conn.PollForEvent()
	}
	return found
}
