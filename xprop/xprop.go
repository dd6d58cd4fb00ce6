/*
Package xprop collects helpers for working with X property replies, adapted
from the teacher's xprop.go to the modern cookie/Reply BurntSushi/xgb API and
to core.Core's atom cache instead of xgbutil.XUtil's.

Not all property replies are supported, only what compiz-core's ICCCM/EWMH/
Motif decoding needs.
*/
package xprop

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
)

// GetProperty abstracts the messiness of xproto.GetProperty.Reply.
func GetProperty(c *core.Core, win xproto.Window, atom string) (*xproto.GetPropertyReply, error) {
	atomId, err := c.Atom(atom, false)
	if err != nil {
		return nil, err
	}

	reply, err := xproto.GetProperty(c.Conn, false, win, atomId,
		xproto.GetPropertyTypeAny, 0, (1<<32)-1).Reply()
	if err != nil {
		return nil, core.Xerr(err, "GetProperty",
			"error retrieving property '%s' on window %x", atom, win)
	}
	if reply.Format == 0 {
		return nil, core.Uerr("GetProperty", "no such property '%s' on window %x", atom, win)
	}
	return reply, nil
}

// ChangeProp abstracts xproto.ChangeProperty for arbitrary byte data.
func ChangeProp(c *core.Core, win xproto.Window, format byte, prop, typ string, data []byte) error {
	propAtom, err := c.Atom(prop, false)
	if err != nil {
		return err
	}
	typAtom, err := c.Atom(typ, false)
	if err != nil {
		return err
	}

	return xproto.ChangePropertyChecked(c.Conn, xproto.PropModeReplace, win,
		propAtom, typAtom, format, uint32(len(data)/int(format/8)), data).Check()
}

// ChangeProp32 changes a 32-bit formatted property, constructing the raw X
// data from a list of 32-bit words.
func ChangeProp32(c *core.Core, win xproto.Window, prop, typ string, data ...uint32) error {
	buf := make([]byte, len(data)*4)
	for i, datum := range data {
		put32(buf[i*4:], datum)
	}
	return ChangeProp(c, win, 32, prop, typ, buf)
}

func put32(buf []byte, v uint32) {
	buf[0] = byte(v)
	buf[1] = byte(v >> 8)
	buf[2] = byte(v >> 16)
	buf[3] = byte(v >> 24)
}

func get32(buf []byte) uint32 {
	return uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
}

// PropValAtom transforms a GetPropertyReply into an atom name. Format must
// be 32.
func PropValAtom(c *core.Core, reply *xproto.GetPropertyReply, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if reply.Format != 32 {
		return "", core.Uerr("PropValAtom", "expected format 32 but got %d", reply.Format)
	}
	return c.AtomName(xproto.Atom(get32(reply.Value)))
}

// PropValAtoms is PropValAtom for a sequence of atoms.
func PropValAtoms(c *core.Core, reply *xproto.GetPropertyReply, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	if reply.Format != 32 {
		return nil, core.Uerr("PropValAtoms", "expected format 32 but got %d", reply.Format)
	}

	names := make([]string, 0, reply.ValueLen)
	vals := reply.Value
	for len(vals) >= 4 {
		name, err := c.AtomName(xproto.Atom(get32(vals)))
		if err != nil {
			return nil, err
		}
		names = append(names, name)
		vals = vals[4:]
	}
	return names, nil
}

// PropValWindow transforms a GetPropertyReply into a window id (format 32).
func PropValWindow(reply *xproto.GetPropertyReply, err error) (xproto.Window, error) {
	if err != nil {
		return 0, err
	}
	if reply.Format != 32 {
		return 0, core.Uerr("PropValWindow", "expected format 32 but got %d", reply.Format)
	}
	return xproto.Window(get32(reply.Value)), nil
}

// PropValWindows is PropValWindow for a sequence of window ids.
func PropValWindows(reply *xproto.GetPropertyReply, err error) ([]xproto.Window, error) {
	if err != nil {
		return nil, err
	}
	if reply.Format != 32 {
		return nil, core.Uerr("PropValWindows", "expected format 32 but got %d", reply.Format)
	}

	wins := make([]xproto.Window, 0, reply.ValueLen)
	vals := reply.Value
	for len(vals) >= 4 {
		wins = append(wins, xproto.Window(get32(vals)))
		vals = vals[4:]
	}
	return wins, nil
}

// PropValNum transforms a GetPropertyReply into a single 32-bit word.
func PropValNum(reply *xproto.GetPropertyReply, err error) (uint32, error) {
	if err != nil {
		return 0, err
	}
	if reply.Format != 32 {
		return 0, core.Uerr("PropValNum", "expected format 32 but got %d", reply.Format)
	}
	return get32(reply.Value), nil
}

// PropValNums is PropValNum for a sequence of 32-bit words.
func PropValNums(reply *xproto.GetPropertyReply, err error) ([]uint32, error) {
	if err != nil {
		return nil, err
	}
	if reply.Format != 32 {
		return nil, core.Uerr("PropValNums", "expected format 32 but got %d", reply.Format)
	}

	nums := make([]uint32, 0, reply.ValueLen)
	vals := reply.Value
	for len(vals) >= 4 {
		nums = append(nums, get32(vals))
		vals = vals[4:]
	}
	return nums, nil
}

// Atom is a thin wrapper around core.Core.Atom for callers that don't want
// to reach into core directly.
func Atom(c *core.Core, name string, onlyIfExists bool) (xproto.Atom, error) {
	return c.Atom(name, onlyIfExists)
}

// StrToAtoms interns a list of atom names, creating any that don't exist.
func StrToAtoms(c *core.Core, names []string) ([]uint32, error) {
	atoms := make([]uint32, len(names))
	for i, name := range names {
		a, err := c.Atom(name, false)
		if err != nil {
			return nil, err
		}
		atoms[i] = uint32(a)
	}
	return atoms, nil
}

// IdTo32 widens a slice of window ids into 32-bit words for ChangeProp32.
func IdTo32(ids []xproto.Window) []uint32 {
	out := make([]uint32, len(ids))
	for i, id := range ids {
		out[i] = uint32(id)
	}
	return out
}

// PropValStr transforms a GetPropertyReply into a string. Format must be 8.
func PropValStr(reply *xproto.GetPropertyReply, err error) (string, error) {
	if err != nil {
		return "", err
	}
	if reply.Format != 8 {
		return "", core.Uerr("PropValStr", "expected format 8 but got %d", reply.Format)
	}
	return string(reply.Value), nil
}

// PropValStrs is PropValStr for a property holding a sequence of
// null-terminated strings (e.g. WM_CLASS, _NET_DESKTOP_NAMES).
func PropValStrs(reply *xproto.GetPropertyReply, err error) ([]string, error) {
	if err != nil {
		return nil, err
	}
	if reply.Format != 8 {
		return nil, core.Uerr("PropValStrs", "expected format 8 but got %d", reply.Format)
	}

	var strs []string
	start := 0
	for i, b := range reply.Value {
		if b == 0 {
			strs = append(strs, string(reply.Value[start:i]))
			start = i + 1
		}
	}
	return strs, nil
}
