package xwindow

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/icccm"
)

// RequestClose asks win to close itself, following the WM_DELETE_WINDOW
// protocol if the client advertises support for it in WM_PROTOCOLS, and
// force-killing the client's connection otherwise. This is the window-
// manager side of the teacher's WMGracefulClose (which was written for a
// *client* wanting the currently running WM to treat it gently) — here
// compiz-core itself is the WM issuing the close, the _NET_CLOSE_WINDOW /
// WM_DELETE_WINDOW path of spec §4.6.
func RequestClose(c *core.Core, win xproto.Window, timestamp xproto.Timestamp) error {
	prots, err := icccm.WmProtocolsGet(c, win)
	if err == nil {
		for _, p := range prots {
			if p == "WM_DELETE_WINDOW" {
				return sendDeleteRequest(c, win, timestamp)
			}
		}
	}

	return xproto.KillClientChecked(c.Conn, uint32(win)).Check()
}

func sendDeleteRequest(c *core.Core, win xproto.Window, timestamp xproto.Timestamp) error {
	protoAtom, err := c.Atom("WM_PROTOCOLS", false)
	if err != nil {
		return err
	}
	deleteAtom, err := c.Atom("WM_DELETE_WINDOW", false)
	if err != nil {
		return err
	}

	var data xproto.ClientMessageDataUnion
	data.Data32[0] = uint32(deleteAtom)
	data.Data32[1] = uint32(timestamp)

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   protoAtom,
		Data:   data,
	}
	return xproto.SendEventChecked(c.Conn, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check()
}
