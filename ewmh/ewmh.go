/*
    An API to the entire EWMH spec.

    Since there are so many methods and they adhere to an existing spec, 
    this source file does not contain much documentation. Indeed, each
    method has only a single comment associated with it: the EWMH property name.

    See the EWMH spec for more info:
    http://standards.freedesktop.org/wm-spec/wm-spec-latest.html

    Here is the naming scheme using "_NET_ACTIVE_WINDOW" as an example.

    Methods "ActiveWindowGet" and "ActiveWindowSet" get and set the
    property, respectively. Both of these methods exist for most EWMH 
    properties.  Additionally, some EWMH properties support sending a client 
    message event to request the window manager perform some action. In the 
    case of "_NET_ACTIVE_WINDOW", this request is used to set the active 
    window.

    These sorts of methods end in "Req". So for "_NET_ACTIVE_WINDOW",
    the method name is "ActiveWindowReq". Moreover, most requests include
    various parameters that don't need to be changed often (like the source
    indication). Thus, by default, methods ending in "Req" force these to
    sensible defaults. If you need access to all of the parameters, use the
    corresponding "ReqExtra" method. So for "_NET_ACTIVE_WINDOW", that would
    be "ActiveWindowReqExtra". (If no "ReqExtra" method exists, then the
    "Req" method covers all available parameters.)

    This naming scheme has one exception: if a property's only use is through
    sending an event (like "_NET_CLOSE_WINDOW"), then the name will be
    "CloseWindow" for the short-hand version and "CloseWindowExtra"
    for access to all of the parameters.

    For properties that store more than just a simple integer, name or list
    of integers, structs have been created and exposed to organize the
    information returned in a sensible manner. For example, the 
    "_NET_DESKTOP_GEOMETRY" property would typically return a slice of integers
    of length 2, where the first integer is the width and the second is the
    height. Xgbutil will wrap this in a struct with the obvious members. These
    structs are documented.

    Finally, methods ending in "*Set" are typically only used when setting
    properties on clients *you've* created or when the window manager sets
    properties. Thus, it's unlikely that you should use them. Stick to the
    get methods and the "*Req" methods.

    N.B. Not all properties have "*Req" methods.
*/
package ewmh

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
	"github.com/compiz-go/compizcore/xprop"
)

// ClientEvent sends a ClientMessage event to the root window as specified
// by the EWMH spec, with up to 5 32-bit data words. Accepted element types
// are uint32, int, xproto.Window, xproto.Atom and xproto.Timestamp, which
// covers every EWMH message this package builds.
func ClientEvent(c *core.Core, window xproto.Window, messageType string, data ...interface{}) error {
	mstype, err := c.Atom(messageType, false)
	if err != nil {
		return err
	}

	var words xproto.ClientMessageDataUnion
	for i := 0; i < len(data) && i < 5; i++ {
		words.Data32[i] = toUint32(data[i])
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: window,
		Type:   mstype,
		Data:   words,
	}

	const evMask = xproto.EventMaskSubstructureNotify | xproto.EventMaskSubstructureRedirect
	return xproto.SendEventChecked(c.Conn, false, c.Root, evMask, string(ev.Bytes())).Check()
}

// toUint32 normalizes the handful of integer-like types EWMH client
// messages carry into the 32-bit word ClientMessageDataUnion expects.
func toUint32(v interface{}) uint32 {
	switch n := v.(type) {
	case uint32:
		return n
	case int:
		return uint32(n)
	case xproto.Window:
		return uint32(n)
	case xproto.Atom:
		return uint32(n)
	case xproto.Timestamp:
		return uint32(n)
	default:
		return 0
	}
}

// _NET_ACTIVE_WINDOW get
func ActiveWindowGet(c *core.Core) (xproto.Window, error) {
    return xprop.PropValWindow(xprop.GetProperty(c, c.Root,
                                             "_NET_ACTIVE_WINDOW"))
}

// _NET_ACTIVE_WINDOW set
func ActiveWindowSet(c *core.Core, win xproto.Window) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_ACTIVE_WINDOW", "WINDOW",
                              uint32(win))
}

// _NET_ACTIVE_WINDOW req
func ActiveWindowReq(c *core.Core, win xproto.Window) error {
    return ActiveWindowReqExtra(c, win, 2, 0, 0)
}

// _NET_ACTIVE_WINDOW req extra
func ActiveWindowReqExtra(c *core.Core, win xproto.Window, source uint32,
                          time xproto.Timestamp, current_active xproto.Window) error {
    return ClientEvent(c, win, "_NET_ACTIVE_WINDOW", source, uint32(time),
                       uint32(current_active))
}

// _NET_CLIENT_LIST get
func ClientListGet(c *core.Core) ([]xproto.Window, error) {
    return xprop.PropValWindows(xprop.GetProperty(c, c.Root,
                                              "_NET_CLIENT_LIST"))
}

// _NET_CLIENT_LIST set
func ClientListSet(c *core.Core, wins []xproto.Window) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_CLIENT_LIST", "WINDOW",
                              xprop.IdTo32(wins)...)
}

// _NET_CLIENT_LIST_STACKING get
func ClientListStackingGet(c *core.Core) ([]xproto.Window, error) {
    return xprop.PropValWindows(xprop.GetProperty(c, c.Root,
                                              "_NET_CLIENT_LIST_STACKING"))
}

// _NET_CLIENT_LIST_STACKING set
func ClientListStackingSet(c *core.Core, wins []xproto.Window) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_CLIENT_LIST_STACKING",
                              "WINDOW", xprop.IdTo32(wins)...)
}

// _NET_CLOSE_WINDOW req
func CloseWindow(c *core.Core, win xproto.Window) error {
    return CloseWindowExtra(c, win, 0, 2)
}

// _NET_CLOSE_WINDOW req extra
func CloseWindowExtra(c *core.Core, win xproto.Window, time xproto.Timestamp,
                      source uint32) error {
    return ClientEvent(c, win, "_NET_CLOSE_WINDOW", uint32(time), source)
}

// _NET_CURRENT_DESKTOP get
func CurrentDesktopGet(c *core.Core) (uint32, error) {
    return xprop.PropValNum(xprop.GetProperty(c, c.Root,
                                              "_NET_CURRENT_DESKTOP"))
}

// _NET_CURRENT_DESKTOP set
func CurrentDesktopSet(c *core.Core, desk uint32) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_CURRENT_DESKTOP",
                              "CARDINAL", desk)
}

// _NET_CURRENT_DESKTOP req
func CurrentDesktopReq(c *core.Core, desk uint32) error {
    return CurrentDesktopReqExtra(c, desk, 0)
}

// _NET_CURRENT_DESKTOP req extra
func CurrentDesktopReqExtra(c *core.Core, desk uint32,
                            time xproto.Timestamp) error {
    return ClientEvent(c, c.Root, "_NET_CURRENT_DESKTOP", desk, time)
}

// _NET_DESKTOP_NAMES get
func DesktopNamesGet(c *core.Core) ([]string, error) {
    return xprop.PropValStrs(xprop.GetProperty(c, c.Root,
                                               "_NET_DESKTOP_NAMES"))
}

// _NET_DESKTOP_NAMES set
func DesktopNamesSet(c *core.Core, names []string) error {
    nullterm := make([]byte, 0)
    for _, name := range names {
        nullterm = append(nullterm, name...)
        nullterm = append(nullterm, 0)
    }
    return xprop.ChangeProp(c, c.Root, 8, "_NET_DESKTOP_NAMES",
                            "UTF8_STRING", nullterm)
}

// DesktopGeometry is a struct that houses the width and height of a
// _NET_DESKTOP_GEOMETRY property reply.
type DesktopGeometry struct {
    Width uint32
    Height uint32
}

// _NET_DESKTOP_GEOMETRY get
func DesktopGeometryGet(c *core.Core) (DesktopGeometry, error) {
    geom, err := xprop.PropValNums(xprop.GetProperty(c, c.Root,
                                                     "_NET_DESKTOP_GEOMETRY"))
    if err != nil {
        return DesktopGeometry{}, err
    }

    return DesktopGeometry{Width: geom[0], Height: geom[1]}, nil
}

// _NET_DESKTOP_GEOMETRY set
func DesktopGeometrySet(c *core.Core, dg DesktopGeometry) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_DESKTOP_GEOMETRY",
                              "CARDINAL", dg.Width, dg.Height)
}

// _NET_DESKTOP_GEOMETRY req
func DesktopGeometryReq(c *core.Core, dg DesktopGeometry) error {
    return ClientEvent(c, c.Root, "_NET_DESKTOP_GEOMETRY", dg.Width,
                       dg.Height)
}

// DesktopLayout is a struct that organizes information pertaining to
// the _NET_DESKTOP_LAYOUT property. Namely, the orientation, the number
// of columns, the number of rows, and the starting corner.
type DesktopLayout struct {
    Orientation uint32
    Columns uint32
    Rows uint32
    StartingCorner uint32
}

// _NET_DESKTOP_LAYOUT constants for orientation
const (
    OrientHorz = iota
    OrientVert
)

// _NET_DESKTOP_LAYOUT constants for starting corner
const (
    TopLeft = iota
    TopRight
    BottomRight
    BottomLeft
)

// _NET_DESKTOP_LAYOUT get
func DesktopLayoutGet(c *core.Core) (dl DesktopLayout, err error) {
    dlraw, err := xprop.PropValNums(xprop.GetProperty(c, c.Root,
                                                      "_NET_DESKTOP_LAYOUT"))
    if err != nil {
        return DesktopLayout{}, err
    }

    dl.Orientation = dlraw[0]
    dl.Columns = dlraw[1]
    dl.Rows = dlraw[2]

    if len(dlraw) > 3 {
        dl.StartingCorner = dlraw[3]
    } else {
        dl.StartingCorner = TopLeft
    }

    return dl, nil
}

// _NET_DESKTOP_LAYOUT set
func DesktopLayoutSet(c *core.Core, orientation, columns, rows,
                      startingCorner uint32) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_DESKTOP_LAYOUT",
                              "CARDINAL", orientation, columns, rows,
                              startingCorner)
}

// DesktopViewport is a struct that contains a pairing of x,y coordinates
// representing the top-left corner of each desktop. (There will typically
// be one struct here for each desktop in existence.)
type DesktopViewport struct {
    X uint32
    Y uint32
}

// _NET_DESKTOP_VIEWPORT get
func DesktopViewportGet(c *core.Core) ([]DesktopViewport, error) {
    coords, err := xprop.PropValNums(xprop.GetProperty(c, c.Root,
                                                       "_NET_DESKTOP_VIEWPORT"))
    if err != nil {
        return nil, err
    }

    viewports := make([]DesktopViewport, len(coords) / 2)
    for i, _ := range viewports {
        viewports[i] = DesktopViewport{
            X: coords[i * 2],
            Y: coords[i * 2 + 1],
        }
    }
    return viewports, nil
}

// _NET_DESKTOP_VIEWPORT set
func DesktopViewportSet(c *core.Core, viewports []DesktopViewport) error {
    coords := make([]uint32, len(viewports) * 2)
    for i, viewport := range viewports {
        coords[i * 2] = viewport.X
        coords[i * 2 + 1] = viewport.Y
    }

    return xprop.ChangeProp32(c, c.Root, "_NET_DESKTOP_VIEWPORT",
                              "CARDINAL", coords...)
}

// _NET_DESKTOP_VIEWPORT req
func DesktopViewportReq(c *core.Core, x uint32, y uint32) error {
    return ClientEvent(c, c.Root, "_NET_DESKTOP_VIEWPORT", x, y)
}

// FrameExtents is a struct that organizes information associated with
// the _NET_FRAME_EXTENTS property. Namely, the left, right, top and bottom
// decoration sizes.
type FrameExtents struct {
    Left uint32
    Right uint32
    Top uint32
    Bottom uint32
}

// _NET_FRAME_EXTENTS get
func FrameExtentsGet(c *core.Core, win xproto.Window) (FrameExtents, error) {
    raw, err := xprop.PropValNums(xprop.GetProperty(c, win,
                                                    "_NET_FRAME_EXTENTS"))
    if err != nil {
        return FrameExtents{}, nil
    }

    return FrameExtents{
        Left: raw[0],
        Right: raw[1],
        Top: raw[2],
        Bottom: raw[3],
    }, nil
}

// _NET_FRAME_EXTENTS set
func FrameExtentsSet(c *core.Core, win xproto.Window, extents FrameExtents) error {
    raw := make([]uint32, 4)
    raw[0] = extents.Left
    raw[1] = extents.Right
    raw[2] = extents.Top
    raw[3] = extents.Bottom

    return xprop.ChangeProp32(c, win, "_NET_FRAME_EXTENTS", "CARDINAL", raw...)
}

// _NET_MOVERESIZE_WINDOW req
// If 'w' or 'h' are 0, then they are not sent.
// If you need to resize a window without moving it, use the ReqExtra variant,
// or ResizeWindow.
func MoveresizeWindow(c *core.Core, win xproto.Window, x, y int16,
                      w, h uint16) error {
    return MoveresizeWindowExtra(c, win, x, y, w, h, xproto.GravityBitForget,
                                 2, true, true)
}

// _NET_MOVERESIZE_WINDOW req resize only
func ResizeWindow(c *core.Core, win xproto.Window, w, h uint16) error {
    return MoveresizeWindowExtra(c, win, 0, 0, w, h, xproto.GravityBitForget,
                                 2, false, false)
}

// _NET_MOVERESIZE_WINDOW req move only
func MoveWindow(c *core.Core, win xproto.Window, x, y int16) error {
    return MoveresizeWindowExtra(c, win, x, y, 0, 0, xproto.GravityBitForget,
                                 2, true, true)
}

// _NET_MOVERESIZE_WINDOW req extra
// If 'w' or 'h' are 0, then they are not sent.
// To not set 'x' or 'y', 'usex' or 'usey' need to be set to false.
func MoveresizeWindowExtra(c *core.Core, win xproto.Window, x, y int16,
                           w, h uint16, gravity, source uint32,
                           usex, usey bool) error {
    flags := gravity
    flags |= source << 12
    if usex {
        flags |= 1 << 8
    }
    if usey {
        flags |= 1 << 9
    }
    if w > 0 {
        flags |= 1 << 10
    }
    if h > 0 {
        flags |= 1 << 11
    }

    return ClientEvent(c, win, "_NET_MOVERESIZE_WINDOW", flags,
                       uint32(x), uint32(y), uint32(w), uint32(h))
}

// _NET_NUMBER_OF_DESKTOPS get
func NumberOfDesktopsGet(c *core.Core) (uint32, error) {
    return xprop.PropValNum(xprop.GetProperty(c, c.Root,
                                              "_NET_NUMBER_OF_DESKTOPS"))
}

// _NET_NUMBER_OF_DESKTOPS set
func NumberOfDesktopsSet(c *core.Core, numDesks uint32) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_NUMBER_OF_DESKTOPS",
                              "CARDINAL", numDesks)
}

// _NET_NUMBER_OF_DESKTOPS req
func NumberOfDesktopsReq(c *core.Core, numDesks uint32) error {
    return ClientEvent(c, c.Root, "_NET_NUMBER_OF_DESKTOPS", numDesks)
}

// _NET_REQUEST_FRAME_EXTENTS req
func RequestFrameExtents(c *core.Core, win xproto.Window) error {
    return ClientEvent(c, win, "_NET_REQUEST_FRAME_EXTENTS")
}

// _NET_RESTACK_WINDOW req
// The shortcut here is to just raise the window to the top of the window stack.
func RestackWindow(c *core.Core, win xproto.Window) error {
    return RestackWindowExtra(c, win, xproto.StackModeAbove, 0, 2)
}

// _NET_RESTACK_WINDOW req extra
func RestackWindowExtra(c *core.Core, win xproto.Window, stack_mode uint32,
                        sibling xproto.Window, source uint32) error {
    return ClientEvent(c, win, "_NET_RESTACK_WINDOW", source, uint32(sibling),
                       stack_mode)
}

// _NET_SHOWING_DESKTOP get
func ShowingDesktopGet(c *core.Core) (bool, error) {
    reply, err := xprop.GetProperty(c, c.Root, "_NET_SHOWING_DESKTOP")
    if err != nil {
        return false, err
    }

    val, err := xprop.PropValNum(reply, nil)
    if err != nil {
        return false, err
    }

    return val == 1, nil
}

// _NET_SHOWING_DESKTOP set
func ShowingDesktopSet(c *core.Core, show bool) error {
    var showInt uint32
    if show {
        showInt = 1
    } else {
        showInt = 0
    }
    return xprop.ChangeProp32(c, c.Root, "_NET_SHOWING_DESKTOP",
                              "CARDINAL", showInt)
}

// _NET_SHOWING_DESKTOP req
func ShowingDesktopReq(c *core.Core, show bool) error {
    var showInt uint32
    if show {
        showInt = 1
    } else {
        showInt = 0
    }
    return ClientEvent(c, c.Root, "_NET_SHOWING_DESKTOP", showInt)
}

// _NET_SUPPORTED get
func SupportedGet(c *core.Core) ([]string, error) {
    reply, err := xprop.GetProperty(c, c.Root, "_NET_SUPPORTED")
    return xprop.PropValAtoms(c, reply, err)
}

// _NET_SUPPORTED set
// This will create any atoms in the argument if they don't already exist.
func SupportedSet(c *core.Core, atomNames []string) error {
    atoms, err := xprop.StrToAtoms(c, atomNames)
    if err != nil {
        return err
    }

    return xprop.ChangeProp32(c, c.Root, "_NET_SUPPORTED", "ATOM",
                              atoms...)
}

// _NET_SUPPORTING_WM_CHECK get
func SupportingWmCheckGet(c *core.Core, win xproto.Window) (xproto.Window, error) {
    return xprop.PropValWindow(xprop.GetProperty(c, win,
                                             "_NET_SUPPORTING_WM_CHECK"))
}

// _NET_SUPPORTING_WM_CHECK set
func SupportingWmCheckSet(c *core.Core, win xproto.Window, wm_win xproto.Window) error {
    return xprop.ChangeProp32(c, win, "_NET_SUPPORTING_WM_CHECK", "WINDOW",
                              uint32(wm_win))
}

// _NET_VIRTUAL_ROOTS get
func VirtualRootsGet(c *core.Core) ([]xproto.Window, error) {
    return xprop.PropValWindows(xprop.GetProperty(c, c.Root,
                                              "_NET_VIRTUAL_ROOTS"))
}

// _NET_VIRTUAL_ROOTS set
func VirtualRootsSet(c *core.Core, wins []xproto.Window) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_VIRTUAL_ROOTS", "WINDOW",
                              xprop.IdTo32(wins)...)
}

// _NET_VISIBLE_DESKTOPS get
// This is not parted of the EWMH spec, but is a property of my own creation.
// It allows the window manager to report that it has multiple desktops
// viewable at the same time. (This conflicts with other EWMH properties,
// so I don't think this will ever be added to the official spec.)
func VisibleDesktopsGet(c *core.Core) ([]uint32, error) {
    return xprop.PropValNums(xprop.GetProperty(c, c.Root,
                                               "_NET_VISIBLE_DESKTOPS"))
}

// _NET_VISIBLE_DESKTOPS set
func VisibleDesktopsSet(c *core.Core, desktops []uint32) error {
    return xprop.ChangeProp32(c, c.Root, "_NET_VISIBLE_DESKTOPS",
                              "CARDINAL", desktops...)
}

// _NET_WM_ALLOWED_ACTIONS get
func WmAllowedActionsGet(c *core.Core, win xproto.Window) ([]string, error) {
    raw, err := xprop.GetProperty(c, win, "_NET_WM_ALLOWED_ACTIONS")
    return xprop.PropValAtoms(c, raw, err)
}

// _NET_WM_ALLOWED_ACTIONS set
func WmAllowedActionsSet(c *core.Core, win xproto.Window,
                         atomNames []string) error {
    atoms, err := xprop.StrToAtoms(c, atomNames)
    if err != nil {
        return err
    }

    return xprop.ChangeProp32(c, win, "_NET_WM_ALLOWED_ACTIONS", "ATOM",
                              atoms...)
}

// _NET_WM_DESKTOP get
func WmDesktopGet(c *core.Core, win xproto.Window) (uint32, error) {
    return xprop.PropValNum(xprop.GetProperty(c, win, "_NET_WM_DESKTOP"))
}

// _NET_WM_DESKTOP set
func WmDesktopSet(c *core.Core, win xproto.Window, desk uint32) error {
    return xprop.ChangeProp32(c, win, "_NET_WM_DESKTOP", "CARDINAL", desk)
}

// _NET_WM_DESKTOP req
func WmDesktopReq(c *core.Core, win xproto.Window, desk uint32) error {
    return WmDesktopReqExtra(c, win, desk, 2)
}

// _NET_WM_DESKTOP req extra
func WmDesktopReqExtra(c *core.Core, win xproto.Window, desk uint32,
                       source uint32) error {
    return ClientEvent(c, win, "_NET_WM_DESKTOP", desk, source)
}

// WmFullscreenMonitors is a struct that organizes information related to the
// _NET_WM_FULLSCREEN_MONITORS property. Namely, the top, bottom, left and
// right monitor edges for a particular window.
type WmFullscreenMonitors struct {
    Top uint32
    Bottom uint32
    Left uint32
    Right uint32
}

// _NET_WM_FULLSCREEN_MONITORS get
func WmFullscreenMonitorsGet(c *core.Core, win xproto.Window) (
     WmFullscreenMonitors, error) {
    raw, err := xprop.PropValNums(
                    xprop.GetProperty(c, win, "_NET_WM_FULLSCREEN_MONITORS"))
    if err != nil {
        return WmFullscreenMonitors{}, err
    }

    return WmFullscreenMonitors{
        Top: raw[0],
        Bottom: raw[1],
        Left: raw[2],
        Right: raw[3],
    }, nil
}

// _NET_WM_FULLSCREEN_MONITORS set
func WmFullscreenMonitorsSet(c *core.Core, win xproto.Window,
                             edges WmFullscreenMonitors) error {
    raw := make([]uint32, 4)
    raw[0] = edges.Top
    raw[1] = edges.Bottom
    raw[2] = edges.Left
    raw[3] = edges.Right

    return xprop.ChangeProp32(c, win, "_NET_WM_FULLSCREEN_MONITORS",
                              "CARDINAL", raw...)
}

// _NET_WM_FULLSCREEN_MONITORS req
func WmFullscreenMonitorsReq(c *core.Core, win xproto.Window,
                             edges WmFullscreenMonitors) error {
    return WmFullscreenMonitorsReqExtra(c, win, edges, 2)
}

// _NET_WM_FULLSCREEN_MONITORS req extra
func WmFullscreenMonitorsReqExtra(c *core.Core, win xproto.Window,
                                  edges WmFullscreenMonitors,
                                  source uint32) error {
    return ClientEvent(c, win, "_NET_WM_FULLSCREEN_MONITORS",
                       edges.Top, edges.Bottom, edges.Left, edges.Right, source)
}

// _NET_WM_HANDLED_ICONS get
func WmHandledIconsGet(c *core.Core, win xproto.Window) (bool, error) {
    reply, err := xprop.GetProperty(c, win, "_NET_WM_HANDLED_ICONS")
    if err != nil {
        return false, err
    }

    val, err := xprop.PropValNum(reply, nil)
    if err != nil {
        return false, err
    }

    return val == 1, nil
}

// _NET_WM_HANDLED_ICONS set
func WmHandledIconsSet(c *core.Core, handle bool) error {
    var handled uint32
    if handle {
        handled = 1
    } else {
        handled = 0
    }
    return xprop.ChangeProp32(c, c.Root, "_NET_WM_HANDLED_ICONS",
                              "CARDINAL", handled)
}

// WmIcon is a struct that contains data for a single icon.
// The WmIcon method will return a list of these, since a single
// client can specify multiple icons of varying sizes.
type WmIcon struct {
    Width uint32
    Height uint32
    Data []uint32
}

// _NET_WM_ICON get
func WmIconGet(c *core.Core, win xproto.Window) ([]*WmIcon, error) {
    icon, err := xprop.PropValNums(xprop.GetProperty(c, win, "_NET_WM_ICON"))
    if err != nil {
        return nil, err
    }

    wmicons := make([]*WmIcon, 0)
    start := uint32(0)
    for int(start) < len(icon) {
        w, h := icon[start], icon[start + 1]
        upto := w * h

        wmicon := &WmIcon{
            Width: w,
            Height: h,
            Data: icon[(start + 2):(start + upto + 2)],
        }
        wmicons = append(wmicons, wmicon)

        start += upto + 2
    }

    return wmicons, nil
}

// _NET_WM_ICON set
func WmIconSet(c *core.Core, win xproto.Window, icons []*WmIcon) error {
    raw := make([]uint32, 0, 10000) // start big
    for _, icon := range icons {
        raw = append(raw, icon.Width, icon.Height)
        raw = append(raw, icon.Data...)
    }

    return xprop.ChangeProp32(c, win, "_NET_WM_ICON", "CARDINAL", raw...)
}

// WmIconGeometry struct organizes the information pertaining to the
// _NET_WM_ICON_GEOMETRY property. Namely, x, y, width and height.
type WmIconGeometry struct {
    X uint32
    Y uint32
    Width uint32
    Height uint32
}

// _NET_WM_ICON_GEOMETRY get
func WmIconGeometryGet(c *core.Core, win xproto.Window) (WmIconGeometry, error) {
    geom, err := xprop.PropValNums(xprop.GetProperty(c, win,
                                                     "_NET_WM_ICON_GEOMETRY"))
    if err != nil {
        return WmIconGeometry{}, err
    }

    return WmIconGeometry{
        X: geom[0],
        Y: geom[1],
        Width: geom[2],
        Height: geom[3],
    }, nil
}

// _NET_WM_ICON_GEOMETRY set
func WmIconGeometrySet(c *core.Core, win xproto.Window, geom WmIconGeometry) error {
    rawGeom := make([]uint32, 4)
    rawGeom[0] = geom.X
    rawGeom[1] = geom.Y
    rawGeom[2] = geom.Width
    rawGeom[3] = geom.Height

    return xprop.ChangeProp32(c, win, "_NET_WM_ICON_GEOMETRY", "CARDINAL",
                              rawGeom...)
}

// _NET_WM_ICON_NAME get
func WmIconNameGet(c *core.Core, win xproto.Window) (string, error) {
    return xprop.PropValStr(xprop.GetProperty(c, win, "_NET_WM_ICON_NAME"))
}

// _NET_WM_ICON_NAME set
func WmIconNameSet(c *core.Core, win xproto.Window, name string) error {
    return xprop.ChangeProp(c, win, 8, "_NET_WM_ICON_NAME", "UTF8_STRING",
                            []byte(name))
}

// _NET_WM_MOVERESIZE constants
const (
    SizeTopLeft = iota
    SizeTop
    SizeTopRight
    SizeRight
    SizeBottomRight
    SizeBottom
    SizeBottomLeft
    SizeLeft
    Move
    SizeKeyboard
    MoveKeyboard
    Cancel
    Infer // special for Wingo. DO NOT USE.
)

// _NET_WM_MOVERESIZE req
func WmMoveresize(c *core.Core, win xproto.Window, direction uint32) error {
    return WmMoveresizeExtra(c, win, direction, 0, 0, 0, 2)
}

// _NET_WM_MOVERESIZE req extra
func WmMoveresizeExtra(c *core.Core, win xproto.Window, direction, x_root, y_root,
                       button, source uint32) error {
    return ClientEvent(c, win, "_NET_WM_MOVERESIZE", x_root, y_root,
                       direction, button, source)
}

// _NET_WM_NAME get
func WmNameGet(c *core.Core, win xproto.Window) (string, error) {
    return xprop.PropValStr(xprop.GetProperty(c, win, "_NET_WM_NAME"))
}

// _NET_WM_NAME set
func WmNameSet(c *core.Core, win xproto.Window, name string) error {
    return xprop.ChangeProp(c, win, 8, "_NET_WM_NAME", "UTF8_STRING",
                            []byte(name))
}

// WmOpaqueRegion organizes information related to the _NET_WM_OPAQUE_REGION
// property. Namely, the x, y, width and height of an opaque rectangle
// relative to the client window.
type WmOpaqueRegion struct {
    X uint32
    Y uint32
    Width uint32
    Height uint32
}

// _NET_WM_OPAQUE_REGION get
func WmOpaqueRegionGet(c *core.Core, win xproto.Window) (
     []WmOpaqueRegion, error) {
    raw, err := xprop.PropValNums(xprop.GetProperty(c, win,
                                                    "_NET_WM_OPAQUE_REGION"))
    if err != nil {
        return nil, err
    }

    regions := make([]WmOpaqueRegion, len(raw) / 4)
    for i, _ := range(regions) {
        regions[i] = WmOpaqueRegion{
            X: raw[i * 4 + 0],
            Y: raw[i * 4 + 1],
            Width: raw[i * 4 + 2],
            Height: raw[i * 4 + 3],
        }
    }
    return regions, nil
}

// _NET_WM_OPAQUE_REGION set
func WmOpaqueRegionSet(c *core.Core, win xproto.Window,
                       regions []WmOpaqueRegion) error {
    raw := make([]uint32, len(regions) * 4)

    for i, region := range(regions) {
        raw[i * 4 + 0] = region.X
        raw[i * 4 + 1] = region.Y
        raw[i * 4 + 2] = region.Width
        raw[i * 4 + 3] = region.Height
    }

    return xprop.ChangeProp32(c, win, "_NET_WM_OPAQUE_REGION", "CARDINAL",
                              raw...)
}

// _NET_WM_PID get
func WmPidGet(c *core.Core, win xproto.Window) (uint32, error) {
    return xprop.PropValNum(xprop.GetProperty(c, win, "_NET_WM_PID"))
}

// _NET_WM_PID set
func WmPidSet(c *core.Core, win xproto.Window, pid uint32) error {
    return xprop.ChangeProp32(c, win, "_NET_WM_PID", "CARDINAL", pid)
}

// _NET_WM_PING req
func WmPing(c *core.Core, win xproto.Window, response bool) error {
    return WmPingExtra(c, win, response, 0)
}

// _NET_WM_PING req extra
func WmPingExtra(c *core.Core, win xproto.Window, response bool,
                                 time xproto.Timestamp) error {
    pingAtom, err := c.Atom("_NET_WM_PING", false)
    if err != nil {
        return err
    }

    var evWindow xproto.Window
    if response {
        evWindow = c.Root
    } else {
        evWindow = win
    }

    return ClientEvent(c, evWindow, "WM_PROTOCOLS", uint32(pingAtom), time,
                       win)
}

// _NET_WM_STATE constants for state toggling
// These correspond to the "action" parameter.
const (
    StateRemove = iota
    StateAdd
    StateToggle
)

// _NET_WM_STATE get
func WmStateGet(c *core.Core, win xproto.Window) ([]string, error) {
    raw, err := xprop.GetProperty(c, win, "_NET_WM_STATE")
    return xprop.PropValAtoms(c, raw, err)
}

// _NET_WM_STATE set
func WmStateSet(c *core.Core, win xproto.Window, atomNames []string) error {
    atoms, err := xprop.StrToAtoms(c, atomNames)
    if err != nil {
        return err
    }

    return xprop.ChangeProp32(c, win, "_NET_WM_STATE", "ATOM", atoms...)
}

// _NET_WM_STATE req
func WmStateReq(c *core.Core, win xproto.Window, action uint32,
                                atomName string) error {
    return WmStateReqExtra(c, win, action, atomName, "", 2)
}

// _NET_WM_STATE req extra
func WmStateReqExtra(c *core.Core, win xproto.Window, action uint32,
                     first string, second string, source uint32) (err error) {
    var atom1, atom2 xproto.Atom

    atom1, err = xprop.Atom(c, first, false)
    if err != nil {
        return err
    }

    if len(second) > 0 {
        atom2, err = xprop.Atom(c, second, false)
        if err != nil {
            return err
        }
    } else {
        atom2 = 0
    }

    return ClientEvent(c, win, "_NET_WM_STATE", action, uint32(atom1),
                       uint32(atom2), source)
}

// WmStrut struct organizes information for the _NET_WM_STRUT property.
// Namely, it encapsulates its four values: left, right, top and bottom.
type WmStrut struct {
    Left uint32
    Right uint32
    Top uint32
    Bottom uint32
}

// _NET_WM_STRUT get
func WmStrutGet(c *core.Core, win xproto.Window) (WmStrut, error) {
    struts, err := xprop.PropValNums(xprop.GetProperty(c, win,
                                                       "_NET_WM_STRUT"))
    if err != nil {
        return WmStrut{}, err
    }

    return WmStrut {
        Left: struts[0],
        Right: struts[1],
        Top: struts[2],
        Bottom: struts[3],
    }, nil
}

// _NET_WM_STRUT set
func WmStrutSet(c *core.Core, win xproto.Window, struts WmStrut) error {
    rawStruts := make([]uint32, 4)
    rawStruts[0] = struts.Left
    rawStruts[1] = struts.Right
    rawStruts[2] = struts.Top
    rawStruts[3] = struts.Bottom

    return xprop.ChangeProp32(c, win, "_NET_WM_STRUT", "CARDINAL",
                              rawStruts...)
}

// WmStrutPartial struct organizes information for the _NET_WM_STRUT_PARTIAL
// property. Namely, it encapsulates its twelve values: left, right, top,
// bottom, left_start_y, left_end_y, right_start_y, right_end_y,
// top_start_x, top_end_x, bottom_start_x, and bottom_end_x.
type WmStrutPartial struct {
    Left, Right, Top, Bottom uint32
    LeftStartY, LeftEndY, RightStartY, RightEndY uint32
    TopStartX, TopEndX, BottomStartX, BottomEndX uint32
}

// _NET_WM_STRUT_PARTIAL get
func WmStrutPartialGet(c *core.Core, win xproto.Window) (WmStrutPartial, error) {
    struts, err := xprop.PropValNums(xprop.GetProperty(c, win,
                                                       "_NET_WM_STRUT_PARTIAL"))
    if err != nil {
        return WmStrutPartial{}, err
    }

    return WmStrutPartial {
        Left: struts[0], Right: struts[1], Top: struts[2], Bottom: struts[3],
        LeftStartY: struts[4], LeftEndY: struts[5],
        RightStartY: struts[6], RightEndY: struts[7],
        TopStartX: struts[8], TopEndX: struts[9],
        BottomStartX: struts[10], BottomEndX: struts[11],
    }, nil
}

// _NET_WM_STRUT_PARTIAL set
func WmStrutPartialSet(c *core.Core, win xproto.Window,
                       struts WmStrutPartial) error {
    rawStruts := make([]uint32, 12)
    rawStruts[0] = struts.Left
    rawStruts[1] = struts.Right
    rawStruts[2] = struts.Top
    rawStruts[3] = struts.Bottom
    rawStruts[4] = struts.LeftStartY
    rawStruts[5] = struts.LeftEndY
    rawStruts[6] = struts.RightStartY
    rawStruts[7] = struts.RightEndY
    rawStruts[8] = struts.TopStartX
    rawStruts[9] = struts.TopEndX
    rawStruts[10] = struts.BottomStartX
    rawStruts[11] = struts.BottomEndX

    return xprop.ChangeProp32(c, win, "_NET_WM_STRUT_PARTIAL", "CARDINAL",
                              rawStruts...)
}

// _NET_WM_SYNC_REQUEST req
func WmSyncRequest(c *core.Core, win xproto.Window, req_num uint64) error {
    return WmSyncRequestExtra(c, win, req_num, 0)
}

// _NET_WM_SYNC_REQUEST req extra
func WmSyncRequestExtra(c *core.Core, win xproto.Window, req_num uint64,
                                        time xproto.Timestamp) error {
    syncReq, err := c.Atom("_NET_WM_SYNC_REQUEST", false)
    if err != nil {
        return err
    }

    high := uint32(req_num >> 32)
    low := uint32(req_num << 32 ^ req_num)

    return ClientEvent(c, win, "WM_PROTOCOLS", syncReq, time, low, high)
}

// _NET_WM_SYNC_REQUEST_COUNTER get 
// I'm pretty sure this needs 64 bit integers, but I'm not quite sure
// how to go about that yet. Any ideas?
func WmSyncRequestCounter(c *core.Core, win xproto.Window) (uint32, error) {
    return xprop.PropValNum(xprop.GetProperty(c, win,
                                              "_NET_WM_SYNC_REQUEST_COUNTER"))
}

// _NET_WM_SYNC_REQUEST_COUNTER set
// I'm pretty sure this needs 64 bit integers, but I'm not quite sure
// how to go about that yet. Any ideas?
func WmSyncRequestCounterSet(c *core.Core, win xproto.Window,
                             counter uint32) error {
    return xprop.ChangeProp32(c, win, "_NET_WM_SYNC_REQUEST_COUNTER",
                              "CARDINAL", counter)
}

// _NET_WM_USER_TIME get
func WmUserTimeGet(c *core.Core, win xproto.Window) (uint32, error) {
    return xprop.PropValNum(xprop.GetProperty(c, win, "_NET_WM_USER_TIME"))
}

// _NET_WM_USER_TIME set
func WmUserTimeSet(c *core.Core, win xproto.Window, user_time uint32) error {
    return xprop.ChangeProp32(c, win, "_NET_WM_USER_TIME", "CARDINAL",
                              user_time)
}

// _NET_WM_USER_TIME_WINDOW get
func WmUserTimeWindowGet(c *core.Core, win xproto.Window) (xproto.Window, error) {
    return xprop.PropValWindow(xprop.GetProperty(c, win,
                                             "_NET_WM_USER_TIME_WINDOW"))
}

// _NET_WM_USER_TIME_WINDOW set
func WmUserTimeWindowSet(c *core.Core, win xproto.Window, time_win xproto.Window) error {
    return xprop.ChangeProp32(c, win, "_NET_WM_USER_TIME_WINDOW", "CARDINAL",
                              uint32(time_win))
}

// _NET_WM_VISIBLE_ICON_NAME get
func WmVisibleIconNameGet(c *core.Core, win xproto.Window) (string, error) {
    return xprop.PropValStr(xprop.GetProperty(c, win,
                                              "_NET_WM_VISIBLE_ICON_NAME"))
}

// _NET_WM_VISIBLE_ICON_NAME set
func WmVisibleIconNameSet(c *core.Core, win xproto.Window, name string) error {
    return xprop.ChangeProp(c, win, 8, "_NET_WM_VISIBLE_ICON_NAME",
                            "UTF8_STRING", []byte(name))
}

// _NET_WM_VISIBLE_NAME get
func WmVisibleNameGet(c *core.Core, win xproto.Window) (string, error) {
    return xprop.PropValStr(xprop.GetProperty(c, win, "_NET_WM_VISIBLE_NAME"))
}

// _NET_WM_VISIBLE_NAME set
func WmVisibleNameSet(c *core.Core, win xproto.Window, name string) error {
    return xprop.ChangeProp(c, win, 8, "_NET_WM_VISIBLE_NAME", "UTF8_STRING",
                            []byte(name))
}

// _NET_WM_WINDOW_OPACITY get
// This isn't part of the EWMH spec, but is widely used by drop in
// compositing managers (i.e., xcompmgr, cairo-compmgr, etc.).
// This property is typically set not on a client window, but the *parent*
// of a client window in reparenting window managers.
func WmWindowOpacityGet(c *core.Core, win xproto.Window) (float64, error) {
    intOpacity, err := xprop.PropValNum(
                           xprop.GetProperty(c, win, "_NET_WM_WINDOW_OPACITY"))
    if err != nil {
        return 0, err
    }

    return float64(intOpacity) / float64(0xffffffff), nil
}

// _NET_WM_WINDOW_OPACITY set
func WmWindowOpacitySet(c *core.Core, win xproto.Window, opacity float64) error {
    return xprop.ChangeProp32(c, win, "_NET_WM_WINDOW_OPACITY", "CARDINAL",
                              uint32(opacity * 0xffffffff))
}

// _NET_WM_WINDOW_TYPE get
func WmWindowTypeGet(c *core.Core, win xproto.Window) ([]string, error) {
    raw, err := xprop.GetProperty(c, win, "_NET_WM_WINDOW_TYPE")
    return xprop.PropValAtoms(c, raw, err)
}

// _NET_WM_WINDOW_TYPE set
// This will create any atoms used in 'atomNames' if they don't already exist.
func WmWindowTypeSet(c *core.Core, win xproto.Window, atomNames []string) error {
    atoms, err := xprop.StrToAtoms(c, atomNames)
    if err != nil {
        return err
    }

    return xprop.ChangeProp32(c, win, "_NET_WM_WINDOW_TYPE", "ATOM", atoms...)
}

// Workarea is a struct that represents a rectangle as a bounding box of
// a single desktop. So there should be as many Workarea structs as there
// are desktops.
type Workarea struct {
    X uint32
    Y uint32
    Width uint32
    Height uint32
}

// _NET_WORKAREA get
func WorkareaGet(c *core.Core) ([]Workarea, error) {
    rects, err := xprop.PropValNums(xprop.GetProperty(c, c.Root,
                                                      "_NET_WORKAREA"))
    if err != nil {
        return nil, err
    }

    workareas := make([]Workarea, len(rects) / 4)
    for i, _ := range workareas {
        workareas[i] = Workarea {
            X: rects[i * 4],
            Y: rects[i * 4 + 1],
            Width: rects[i * 4 + 2],
            Height: rects[i * 4 + 3],
        }
    }
    return workareas, nil
}

// _NET_WORKAREA set
func WorkareaSet(c *core.Core, workareas []Workarea) error {
    rects := make([]uint32, len(workareas) * 4)
    for i, workarea := range workareas {
        rects[i * 4] = workarea.X
        rects[i * 4 + 1] = workarea.Y
        rects[i * 4 + 2] = workarea.Width
        rects[i * 4 + 3] = workarea.Height
    }

    return xprop.ChangeProp32(c, c.Root, "_NET_WORKAREA", "CARDINAL",
                              rects...)
}

