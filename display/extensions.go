package display

import (
	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/composite"
	"github.com/BurntSushi/xgb/damage"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/shape"
	xsync "github.com/BurntSushi/xgb/sync"
	"github.com/BurntSushi/xgb/xfixes"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
)

// minCompositeMajor/Minor is the floor this window manager requires for
// RedirectManual support (spec §4.4 step 3: "Composite ≥ 0.2").
const (
	minCompositeMajor = 0
	minCompositeMinor = 2
)

// Extensions records which optional/required X extensions this display
// negotiated, plus their event/error bases (spec §3 Display: "extension
// event/error bases"). Required extensions that fail to initialise make
// addDisplay return a SeverityFatalDisplay error; optional ones are simply
// left at Present == false.
type Extensions struct {
	Composite Probe
	Damage    Probe
	Sync      Probe
	Fixes     Probe
	Xkb       Probe

	Randr    Probe
	Shape    Probe
	Xinerama Probe
}

// Probe is one extension's negotiated presence and event/error base pair.
type Probe struct {
	Present    bool
	FirstEvent byte
	FirstError byte
}

// probeExtensions runs spec §4.4 step 3: require Composite(>=0.2), Damage,
// Sync, Fixes, XKB; RandR/Shape/Xinerama are best-effort.
func probeExtensions(c *core.Core) (Extensions, error) {
	var ext Extensions
	var err error

	if ext.Composite, err = requireComposite(c); err != nil {
		return ext, err
	}
	if ext.Damage, err = requireExt(c, "DAMAGE", damage.Init); err != nil {
		return ext, err
	}
	if ext.Sync, err = requireExt(c, "SYNC", xsync.Init); err != nil {
		return ext, err
	}
	if ext.Fixes, err = requireExt(c, "XFIXES", xfixes.Init); err != nil {
		return ext, err
	}
	if ext.Xkb, err = requireXkb(c); err != nil {
		return ext, err
	}

	ext.Randr = optionalExt(c, "RANDR", randr.Init)
	ext.Shape = optionalExt(c, "SHAPE", shape.Init)
	ext.Xinerama = optionalExt(c, "XINERAMA", xinerama.Init)

	return ext, nil
}

func requireComposite(c *core.Core) (Probe, error) {
	if err := composite.Init(c.Conn); err != nil {
		return Probe{}, core.XerrSeverity(err, core.SeverityFatalDisplay,
			"probeExtensions", "Composite extension unavailable, cannot redirect windows")
	}
	reply, err := composite.QueryVersion(c.Conn, minCompositeMajor, minCompositeMinor).Reply()
	if err != nil {
		return Probe{}, core.XerrSeverity(err, core.SeverityFatalDisplay,
			"probeExtensions", "Composite QueryVersion failed")
	}
	if reply.MajorVersion < minCompositeMajor ||
		(reply.MajorVersion == minCompositeMajor && reply.MinorVersion < minCompositeMinor) {
		return Probe{}, core.UerrSeverity(core.SeverityFatalDisplay,
			"probeExtensions", "Composite %d.%d is older than the required %d.%d",
			reply.MajorVersion, reply.MinorVersion, minCompositeMajor, minCompositeMinor)
	}
	return Probe{Present: true}, nil
}

// requireXkb negotiates XKB, which (unlike the other extensions wrapped by
// composite/damage/xfixes/sync) is queried through the core xproto
// QueryExtension request since BurntSushi/xgb carries no dedicated xkb
// package. No bell/state-notify selection is made afterwards (see
// selectXkbEvents).
func requireXkb(c *core.Core) (Probe, error) {
	reply, err := xproto.QueryExtension(c.Conn, uint16(len("XKEYBOARD")), "XKEYBOARD").Reply()
	if err != nil {
		return Probe{}, core.XerrSeverity(err, core.SeverityFatalDisplay,
			"probeExtensions", "QueryExtension(XKEYBOARD) failed")
	}
	if !reply.Present {
		return Probe{}, core.UerrSeverity(core.SeverityFatalDisplay,
			"probeExtensions", "XKB extension unavailable")
	}
	return Probe{Present: true, FirstEvent: reply.FirstEvent, FirstError: reply.FirstError}, nil
}

func requireExt(c *core.Core, name string, init func(*xgb.Conn) error) (Probe, error) {
	if err := init(c.Conn); err != nil {
		return Probe{}, core.XerrSeverity(err, core.SeverityFatalDisplay,
			"probeExtensions", "%s extension unavailable", name)
	}
	return Probe{Present: true}, nil
}

func optionalExt(c *core.Core, name string, init func(*xgb.Conn) error) Probe {
	if err := init(c.Conn); err != nil {
		c.Log.Info().Str("extension", name).Msg("optional X extension unavailable")
		return Probe{}
	}
	return Probe{Present: true}
}
