/*
Package xinerama queries the Xinerama extension for the list of physical
output rectangles ("heads"), feeding screen.Outputs (spec §3's Screen.outputs
and the multi-monitor workarea/strut math of §4.5.3). Both RandR and
TwinView drivers still expose Xinerama data even when Xinerama itself isn't
driving the display, so this single query covers both.

Adapted from the teacher's xinerama.go, which lived oddly inside package
xgbutil; this version is its own package built on core.Core and the modern
BurntSushi/xgb/xinerama extension binding.
*/
package xinerama

import (
	"sort"

	"github.com/BurntSushi/xgb/xinerama"
	"github.com/compiz-go/compizcore/core"
)

// Head is a physical output rectangle, origin at the top-left corner.
type Head struct {
	X, Y, Width, Height uint32
}

// Heads is sortable left-to-right then top-to-bottom by (X, Y), matching
// the stable output ordering the screen-edge and workarea code expects.
type Heads []Head

func (hds Heads) Len() int      { return len(hds) }
func (hds Heads) Swap(i, j int) { hds[i], hds[j] = hds[j], hds[i] }
func (hds Heads) Less(i, j int) bool {
	return hds[i].X < hds[j].X || (hds[i].X == hds[j].X && hds[i].Y < hds[j].Y)
}

// Query fetches the current head list in physical order. Returns no heads
// and an error when the extension isn't present; callers should fall back
// to the root window's geometry in that case.
func Query(c *core.Core) (Heads, error) {
	if err := xinerama.Init(c.Conn); err != nil {
		return nil, core.Xerr(err, "xinerama.Query", "Xinerama extension unavailable")
	}

	reply, err := xinerama.QueryScreens(c.Conn).Reply()
	if err != nil {
		return nil, core.Xerr(err, "xinerama.Query", "QueryScreens failed")
	}

	hds := make(Heads, len(reply.ScreenInfo))
	for i, info := range reply.ScreenInfo {
		hds[i] = Head{
			X:      uint32(info.XOrg),
			Y:      uint32(info.YOrg),
			Width:  uint32(info.Width),
			Height: uint32(info.Height),
		}
	}

	sort.Sort(hds)
	return hds, nil
}
