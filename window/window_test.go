package window

import (
	"testing"

	"github.com/compiz-go/compizcore/icccm"
)

func TestNormaliseSizeHints(t *testing.T) {
	got := normaliseSizeHints(icccm.NormalHints{
		MinWidth: 50, MinHeight: 200,
		BaseWidth: 0, BaseHeight: 0,
		WidthInc: 0, HeightInc: 0,
		MinAspectNum: 0, MinAspectDen: 0,
		MaxAspectNum: 0, MaxAspectDen: 0,
		WinGravity: 0,
	})

	if got.MaxWidth != 65535 || got.MaxHeight != 65535 {
		t.Errorf("zero max dimensions should default to 65535, got %dx%d", got.MaxWidth, got.MaxHeight)
	}
	if got.BaseWidth != got.MinWidth || got.BaseHeight != got.MinHeight {
		t.Errorf("zero base dimensions should fall back to min, got base=%dx%d min=%dx%d",
			got.BaseWidth, got.BaseHeight, got.MinWidth, got.MinHeight)
	}
	if got.WidthInc != 1 || got.HeightInc != 1 {
		t.Errorf("increments below 1 must clamp to 1, got %d,%d", got.WidthInc, got.HeightInc)
	}
	for _, v := range []int{got.MinAspectNum, got.MinAspectDen, got.MaxAspectNum, got.MaxAspectDen} {
		if v != 1 {
			t.Errorf("aspect terms below 1 must clamp to 1, got %d", v)
		}
	}
	if got.WinGravity <= 0 {
		t.Errorf("non-positive gravity should default away from zero, got %d", got.WinGravity)
	}
}

func TestNormaliseSizeHintsMinClampedToBase(t *testing.T) {
	got := normaliseSizeHints(icccm.NormalHints{
		MinWidth: 500, BaseWidth: 100,
		MinHeight: 500, BaseHeight: 100,
		WidthInc: 1, HeightInc: 1,
	})
	if got.MinWidth != 100 || got.MinHeight != 100 {
		t.Errorf("min must clamp down to base when min > base, got %dx%d", got.MinWidth, got.MinHeight)
	}
}

func TestNormaliseSizeHintsMaxClampedTo65535(t *testing.T) {
	got := normaliseSizeHints(icccm.NormalHints{MaxWidth: 1 << 20, MaxHeight: 1 << 20})
	if got.MaxWidth != 65535 || got.MaxHeight != 65535 {
		t.Errorf("oversized max must clamp to 65535, got %dx%d", got.MaxWidth, got.MaxHeight)
	}
}

func TestStateFromAtomNames(t *testing.T) {
	got := stateFromAtomNames([]string{
		"_NET_WM_STATE_STICKY",
		"_NET_WM_STATE_FULLSCREEN",
		"_NET_WM_STATE_UNKNOWN_ATOM",
	})
	want := StateSticky | StateFullscreen
	if got != want {
		t.Errorf("stateFromAtomNames() = %v, want %v", got, want)
	}
}

func TestProtocolsFromAtomNames(t *testing.T) {
	got := protocolsFromAtomNames([]string{"WM_DELETE_WINDOW", "_NET_WM_PING", "_NET_WM_SYNC_REQUEST"})
	want := ProtoDeleteWindow | ProtoPing | ProtoSyncRequest
	if got != want {
		t.Errorf("protocolsFromAtomNames() = %v, want %v", got, want)
	}
	if protocolsFromAtomNames(nil) != 0 {
		t.Error("protocolsFromAtomNames(nil) should be the zero value")
	}
}
