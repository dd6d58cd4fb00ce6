package window

import (
	xsync "github.com/BurntSushi/xgb/sync"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/ewmh"
	"github.com/compiz-go/compizcore/icccm"
	"github.com/compiz-go/compizcore/motif"
	"github.com/compiz-go/compizcore/object"
	"github.com/compiz-go/compizcore/xprop"
	"github.com/compiz-go/compizcore/xrect"
	"github.com/compiz-go/compizcore/xwindow"
)

// Geometry is one (x, y, width, height, border) snapshot; Window keeps
// three of these per spec §3: current, server-acknowledged, and
// pending-sync.
type Geometry struct {
	X, Y          int
	Width, Height uint
	Border        uint
}

// SizeHints mirrors the normalised WM_NORMAL_HINTS fields spec §3/§4.5
// step 2 describes: "min <= base, inc >= 1, aspect terms >= 1, gravity
// defaulted to NorthWest, caps at 65535".
type SizeHints struct {
	MinWidth, MinHeight int
	MaxWidth, MaxHeight int
	BaseWidth, BaseHeight int
	WidthInc, HeightInc int
	MinAspectNum, MinAspectDen int
	MaxAspectNum, MaxAspectDen int
	WinGravity int
}

// Window is spec §3's Window node: one per managed or override-redirect
// client, child of a Screen in the object tree.
type Window struct {
	*object.Node

	ID     xproto.Window
	Frame  xproto.Window
	Wrapper xproto.Window

	Current  Geometry
	Server   Geometry
	SyncGeom Geometry

	OverrideRedirect bool
	Mapped           bool
	Depth            byte
	Visual           xproto.Visualid
	Colormap         xproto.Colormap

	WType      Type
	WState     State
	WActions   Action
	Protocols  Protocol

	MwmFunc, MwmDecor uint32

	Struts [4]StrutRect // left, right, top, bottom

	TransientFor   xproto.Window
	ClientLeader   xproto.Window
	Desktop        int32

	InputExtents  Extents
	OutputExtents Extents

	Hints     SizeHints
	InputHint bool // WM_HINTS input flag; ICCCM defaults this true when absent.

	Managed   bool
	Placed    bool
	Minimized bool
	Shaded    bool
	Hidden    bool
	InShowDesktop bool
	Grabbed   bool
	Destroyed bool

	DestroyRefCnt int
	UnmapRefCnt   int
	PendingUnmaps int

	SyncWait       bool
	SyncCounter    xsync.Counter
	syncNextValue  int64

	UserTimeKnown bool
	UserTime      xproto.Timestamp

	PingState Ping
}

// Extents are frame-decoration margins (spec §3: "output extents
// (frame-decoration margins)") or client input margins.
type Extents struct {
	Left, Right, Top, Bottom int
}

// StrutRect is one of the four strut rectangles struts computes (spec
// §4.5.3), already clipped to the output(s) it intersects.
type StrutRect struct {
	X, Y          int
	Width, Height int
}

// Adopt runs addWindow's first three steps (spec §4.5): select input,
// query attributes, normalise size hints, and fetch the EWMH/ICCCM/Motif
// properties type/action derivation needs. It does not yet reparent or map
// — Creation finishes in Manage.
func Adopt(c *core.Core, id xproto.Window) (*Window, error) {
	w := &Window{
		Node:      object.NewNode("", windowType),
		ID:        id,
		InputHint: true,
	}
	w.PingState.Alive = true

	attrs, err := xproto.GetWindowAttributes(c.Conn, id).Reply()
	if err != nil {
		// "fall back to safe defaults if destroyed mid-creation"
		w.OverrideRedirect = false
		w.Mapped = false
	} else {
		w.OverrideRedirect = attrs.OverrideRedirect
		w.Mapped = attrs.MapState != xproto.MapStateUnmapped
		w.Visual = attrs.Visual
	}

	geom, err := xwindow.RawGeometry(c, id)
	if err == nil {
		x, y, ww, hh := xrect.Intify(geom)
		w.Current = Geometry{X: x, Y: y, Width: uint(ww), Height: uint(hh)}
		w.Server = w.Current
	}

	if err := xwindow.Listen(c, id, uint32(xproto.EventMaskPropertyChange|xproto.EventMaskStructureNotify)); err != nil {
		c.Log.Warn().Err(err).Uint32("window", uint32(id)).Msg("could not select input on new window")
	}

	hints, err := icccm.WmNormalHintsGet(c, id)
	if err == nil {
		w.Hints = normaliseSizeHints(hints)
	} else {
		w.Hints = normaliseSizeHints(icccm.NormalHints{})
	}

	if tf, err := icccm.WmTransientForGet(c, id); err == nil {
		w.TransientFor = tf
	}
	if protos, err := icccm.WmProtocolsGet(c, id); err == nil {
		w.Protocols = protocolsFromAtomNames(protos)
	}
	if ih, err := icccm.WmHintsGet(c, id); err == nil && ih.Flags&icccm.HintInput != 0 {
		w.InputHint = ih.Input != 0
	}
	if mh, err := motif.WmHintsGet(c, id); err == nil {
		if mh.Flags&motif.HintFunctions != 0 {
			w.MwmFunc = mh.Function
		} else {
			w.MwmFunc = motif.FunctionAll
		}
		if mh.Flags&motif.HintDecorations != 0 {
			w.MwmDecor = mh.Decoration
		} else {
			w.MwmDecor = motif.DecorationAll
		}
	} else {
		w.MwmFunc, w.MwmDecor = motif.FunctionAll, motif.DecorationAll
	}
	if class, err := icccm.WmClassGet(c, id); err == nil {
		_ = class // consumed by plugin-level matching, not the core engine
	}
	if leader, err := xprop.PropValWindow(xprop.GetProperty(c, id, "WM_CLIENT_LEADER")); err == nil {
		w.ClientLeader = leader
	}
	if desk, err := ewmh.WmDesktopGet(c, id); err == nil {
		w.Desktop = int32(desk)
	}
	if states, err := ewmh.WmStateGet(c, id); err == nil {
		w.WState = stateFromAtomNames(states)
	}

	typeAtoms, _ := ewmh.WmWindowTypeGet(c, id)
	w.WType = deriveType(w, typeAtoms)
	w.WActions = deriveActions(w)

	return w, nil
}

// normaliseSizeHints applies spec §4.5 step 2's normalisation rules.
func normaliseSizeHints(h icccm.NormalHints) SizeHints {
	sh := SizeHints{
		MinWidth: h.MinWidth, MinHeight: h.MinHeight,
		MaxWidth: h.MaxWidth, MaxHeight: h.MaxHeight,
		BaseWidth: h.BaseWidth, BaseHeight: h.BaseHeight,
		WidthInc: h.WidthInc, HeightInc: h.HeightInc,
		MinAspectNum: h.MinAspectNum, MinAspectDen: h.MinAspectDen,
		MaxAspectNum: h.MaxAspectNum, MaxAspectDen: h.MaxAspectDen,
		WinGravity: h.WinGravity,
	}
	if sh.MaxWidth == 0 {
		sh.MaxWidth = 65535
	}
	if sh.MaxHeight == 0 {
		sh.MaxHeight = 65535
	}
	if sh.BaseWidth == 0 {
		sh.BaseWidth = sh.MinWidth
	}
	if sh.BaseHeight == 0 {
		sh.BaseHeight = sh.MinHeight
	}
	if sh.MinWidth > sh.BaseWidth {
		sh.MinWidth = sh.BaseWidth
	}
	if sh.MinHeight > sh.BaseHeight {
		sh.MinHeight = sh.BaseHeight
	}
	if sh.WidthInc < 1 {
		sh.WidthInc = 1
	}
	if sh.HeightInc < 1 {
		sh.HeightInc = 1
	}
	if sh.MinAspectNum < 1 {
		sh.MinAspectNum = 1
	}
	if sh.MinAspectDen < 1 {
		sh.MinAspectDen = 1
	}
	if sh.MaxAspectNum < 1 {
		sh.MaxAspectNum = 1
	}
	if sh.MaxAspectDen < 1 {
		sh.MaxAspectDen = 1
	}
	if sh.WinGravity <= 0 {
		sh.WinGravity = int(xproto.GravityNorthWest)
	}
	if sh.MaxWidth > 65535 {
		sh.MaxWidth = 65535
	}
	if sh.MaxHeight > 65535 {
		sh.MaxHeight = 65535
	}
	return sh
}

func stateFromAtomNames(names []string) State {
	var s State
	for _, n := range names {
		switch n {
		case "_NET_WM_STATE_STICKY":
			s |= StateSticky
		case "_NET_WM_STATE_MAXIMIZED_HORZ":
			s |= StateMaximizedHorz
		case "_NET_WM_STATE_MAXIMIZED_VERT":
			s |= StateMaximizedVert
		case "_NET_WM_STATE_SHADED":
			s |= StateShaded
		case "_NET_WM_STATE_HIDDEN":
			s |= StateHidden
		case "_NET_WM_STATE_FULLSCREEN":
			s |= StateFullscreen
		case "_NET_WM_STATE_ABOVE":
			s |= StateAbove
		case "_NET_WM_STATE_BELOW":
			s |= StateBelow
		case "_NET_WM_STATE_MODAL":
			s |= StateModal
		case "_NET_WM_STATE_DEMANDS_ATTENTION":
			s |= StateDemandsAttention
		case "_NET_WM_STATE_SKIP_PAGER":
			s |= StateSkipPager
		case "_NET_WM_STATE_SKIP_TASKBAR":
			s |= StateSkipTaskbar
		}
	}
	return s
}

func protocolsFromAtomNames(names []string) Protocol {
	var p Protocol
	for _, n := range names {
		switch n {
		case "WM_DELETE_WINDOW":
			p |= ProtoDeleteWindow
		case "WM_TAKE_FOCUS":
			p |= ProtoTakeFocus
		case "_NET_WM_PING":
			p |= ProtoPing
		case "_NET_WM_SYNC_REQUEST":
			p |= ProtoSyncRequest
		}
	}
	return p
}
