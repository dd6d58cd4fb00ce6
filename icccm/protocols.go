package icccm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
)

// IsDeleteRequest checks whether a ClientMessage event satisfies the
// WM_DELETE_WINDOW protocol: format 32, type WM_PROTOCOLS, first data item
// WM_DELETE_WINDOW. Consumed by the event dispatcher's close-window path
// (spec §4.6's ClientMessage handling).
func IsDeleteRequest(c *core.Core, ev xproto.ClientMessageEvent) bool {
	if ev.Format != 32 {
		return false
	}

	typeName, err := c.AtomName(ev.Type)
	if err != nil || typeName != "WM_PROTOCOLS" {
		return false
	}

	data32 := ev.Data.Data32
	if len(data32) == 0 {
		return false
	}
	protocolType, err := c.AtomName(xproto.Atom(data32[0]))
	if err != nil || protocolType != "WM_DELETE_WINDOW" {
		return false
	}
	return true
}
