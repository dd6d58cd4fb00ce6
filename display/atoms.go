package display

// atomNames is the complete EWMH/ICCCM/compiz-private atom set interned at
// addDisplay step 2. Ordering is cosmetic; the map in Atoms makes lookup
// order-independent.
var atomNames = []string{
	// ICCCM
	"WM_STATE",
	"WM_CHANGE_STATE",
	"WM_PROTOCOLS",
	"WM_DELETE_WINDOW",
	"WM_TAKE_FOCUS",
	"WM_CLIENT_LEADER",
	"WM_NAME",
	"WM_ICON_NAME",
	"WM_CLASS",
	"WM_TRANSIENT_FOR",
	"WM_NORMAL_HINTS",
	"WM_HINTS",
	"WM_COLORMAP_WINDOWS",
	"WM_CLIENT_MACHINE",
	"WM_ICON_SIZE",

	// EWMH root properties / capabilities
	"_NET_SUPPORTED",
	"_NET_SUPPORTING_WM_CHECK",
	"_NET_CLIENT_LIST",
	"_NET_CLIENT_LIST_STACKING",
	"_NET_NUMBER_OF_DESKTOPS",
	"_NET_DESKTOP_GEOMETRY",
	"_NET_DESKTOP_VIEWPORT",
	"_NET_CURRENT_DESKTOP",
	"_NET_DESKTOP_NAMES",
	"_NET_ACTIVE_WINDOW",
	"_NET_WORKAREA",
	"_NET_VIRTUAL_ROOTS",
	"_NET_SHOWING_DESKTOP",

	// EWMH root messages
	"_NET_CLOSE_WINDOW",
	"_NET_MOVERESIZE_WINDOW",
	"_NET_WM_MOVERESIZE",
	"_NET_RESTACK_WINDOW",
	"_NET_REQUEST_FRAME_EXTENTS",

	// EWMH window properties
	"_NET_WM_NAME",
	"_NET_WM_VISIBLE_NAME",
	"_NET_WM_ICON_NAME",
	"_NET_WM_VISIBLE_ICON_NAME",
	"_NET_WM_DESKTOP",
	"_NET_WM_WINDOW_TYPE",
	"_NET_WM_STATE",
	"_NET_WM_ALLOWED_ACTIONS",
	"_NET_WM_STRUT",
	"_NET_WM_STRUT_PARTIAL",
	"_NET_WM_ICON_GEOMETRY",
	"_NET_WM_ICON",
	"_NET_WM_PID",
	"_NET_WM_HANDLED_ICONS",
	"_NET_WM_USER_TIME",
	"_NET_WM_FRAME_EXTENTS",
	"_NET_WM_OPAQUE_REGION",
	"_NET_WM_PING",
	"_NET_WM_SYNC_REQUEST",
	"_NET_WM_SYNC_REQUEST_COUNTER",
	"_NET_WM_WINDOW_OPACITY",
	"_NET_WM_FULLSCREEN_MONITORS",
	"_NET_WM_BYPASS_COMPOSITOR",
	"_NET_WM_CM_S0",
	"_NET_FRAME_EXTENTS",

	// EWMH window type atoms
	"_NET_WM_WINDOW_TYPE_DESKTOP",
	"_NET_WM_WINDOW_TYPE_DOCK",
	"_NET_WM_WINDOW_TYPE_TOOLBAR",
	"_NET_WM_WINDOW_TYPE_MENU",
	"_NET_WM_WINDOW_TYPE_UTILITY",
	"_NET_WM_WINDOW_TYPE_SPLASH",
	"_NET_WM_WINDOW_TYPE_DIALOG",
	"_NET_WM_WINDOW_TYPE_NORMAL",
	"_NET_WM_WINDOW_TYPE_DROPDOWN_MENU",
	"_NET_WM_WINDOW_TYPE_POPUP_MENU",
	"_NET_WM_WINDOW_TYPE_TOOLTIP",
	"_NET_WM_WINDOW_TYPE_NOTIFICATION",
	"_NET_WM_WINDOW_TYPE_COMBO",
	"_NET_WM_WINDOW_TYPE_DND",

	// EWMH state atoms
	"_NET_WM_STATE_MODAL",
	"_NET_WM_STATE_STICKY",
	"_NET_WM_STATE_MAXIMIZED_VERT",
	"_NET_WM_STATE_MAXIMIZED_HORZ",
	"_NET_WM_STATE_SHADED",
	"_NET_WM_STATE_SKIP_TASKBAR",
	"_NET_WM_STATE_SKIP_PAGER",
	"_NET_WM_STATE_HIDDEN",
	"_NET_WM_STATE_FULLSCREEN",
	"_NET_WM_STATE_ABOVE",
	"_NET_WM_STATE_BELOW",
	"_NET_WM_STATE_DEMANDS_ATTENTION",

	// EWMH action atoms
	"_NET_WM_ACTION_MOVE",
	"_NET_WM_ACTION_RESIZE",
	"_NET_WM_ACTION_MINIMIZE",
	"_NET_WM_ACTION_SHADE",
	"_NET_WM_ACTION_STICK",
	"_NET_WM_ACTION_MAXIMIZE_HORZ",
	"_NET_WM_ACTION_MAXIMIZE_VERT",
	"_NET_WM_ACTION_FULLSCREEN",
	"_NET_WM_ACTION_CHANGE_DESKTOP",
	"_NET_WM_ACTION_CLOSE",
	"_NET_WM_ACTION_ABOVE",
	"_NET_WM_ACTION_BELOW",

	// Motif
	"_MOTIF_WM_HINTS",

	// Startup notification / client leader
	"_NET_STARTUP_ID",
	"_NET_STARTUP_INFO",
	"_NET_STARTUP_INFO_BEGIN",

	// Compiz-private (compiz-core's own selections/atoms, per spec §4.4 step 3)
	"_COMPIZ_SUPPORTING_DM_CHECK",
	"_COMPIZ_TOOLKIT_ACTION",
	"_COMPIZ_TOOLKIT_ACTION_WINDOW_MENU",
	"_COMPIZ_TOOLKIT_ACTION_FORCE_QUIT",

	// Manager selection / WM ownership broadcast (spec §4.4 addScreen step 4)
	"MANAGER",
	"XdndAware",
}
