package ewmh

import "github.com/compiz-go/compizcore/core"

// RunningWM reports the name of an EWMH-compliant window manager already
// bound to this root window, if one is running. Startup uses this to refuse
// to take over a display that already has a manager, before it ever attempts
// the WM_Sn selection acquisition.
func RunningWM(c *core.Core) (wmName string, err error) {
    childCheck, err := SupportingWmCheckGet(c, c.Root)
    if err != nil {
        return "", nil
    }
    if childCheck == 0 {
        return "", nil
    }

    childCheck2, err := SupportingWmCheckGet(c, childCheck)
    if err != nil {
        return "", nil
    }
    if childCheck != childCheck2 {
        return "", core.Uerr("RunningWM",
            "_NET_SUPPORTING_WM_CHECK on root (%x) does not match the value "+
                "on its child window (%x)", childCheck, childCheck2)
    }

    return WmNameGet(c, childCheck)
}

