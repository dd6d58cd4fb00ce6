package xevent

import (
	"testing"

	"github.com/BurntSushi/xgb"
	xsync "github.com/BurntSushi/xgb/sync"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/core"
)

func TestClassifyKnownEvents(t *testing.T) {
	cases := []struct {
		name     string
		ev       xgb.Event
		wantType string
		wantWin  xproto.Window
	}{
		{"MapRequest", xproto.MapRequestEvent{Window: 10}, "MapRequest", 10},
		{"UnmapNotify", xproto.UnmapNotifyEvent{Window: 11}, "UnmapNotify", 11},
		{"DestroyNotify", xproto.DestroyNotifyEvent{Window: 12}, "DestroyNotify", 12},
		{"ConfigureRequest", xproto.ConfigureRequestEvent{Window: 13}, "ConfigureRequest", 13},
		{"PropertyNotify", xproto.PropertyNotifyEvent{Window: 14}, "PropertyNotify", 14},
		{"ClientMessage", xproto.ClientMessageEvent{Window: 15}, "ClientMessage", 15},
		{"FocusIn uses Event field", xproto.FocusInEvent{Event: 16}, "FocusIn", 16},
		{"MappingNotify has no target window", xproto.MappingNotifyEvent{}, "MappingNotify", 0},
		{"SelectionRequest uses Owner", xproto.SelectionRequestEvent{Owner: 17}, "SelectionRequest", 17},
		{"AlarmNotify has no target window", xsync.AlarmNotifyEvent{}, "AlarmNotify", 0},
		{"unrecognised event classifies empty", xproto.ExposeEvent{}, "", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gotType, gotWin := classify(tc.ev)
			if gotType != tc.wantType || gotWin != tc.wantWin {
				t.Errorf("classify() = (%q, %v), want (%q, %v)", gotType, gotWin, tc.wantType, tc.wantWin)
			}
		})
	}
}

func TestDispatcherConnectAndDispatchOrder(t *testing.T) {
	d := NewDispatcher()

	var order []string
	d.Connect("MapRequest", 0, func(c *core.Core, win xproto.Window, ev xgb.Event) {
		order = append(order, "global")
	})
	d.Connect("MapRequest", 42, func(c *core.Core, win xproto.Window, ev xgb.Event) {
		order = append(order, "scoped")
	})
	d.Connect("MapRequest", 99, func(c *core.Core, win xproto.Window, ev xgb.Event) {
		order = append(order, "other-window")
	})

	d.Dispatch(nil, xproto.MapRequestEvent{Window: 42})

	want := []string{"global", "scoped"}
	if len(order) != len(want) {
		t.Fatalf("Dispatch() ran callbacks %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Dispatch() callback order %v, want %v", order, want)
		}
	}
}

func TestDispatcherUnknownEventNoOp(t *testing.T) {
	d := NewDispatcher()
	ran := false
	d.Connect("MapRequest", 0, func(c *core.Core, win xproto.Window, ev xgb.Event) {
		ran = true
	})
	d.Dispatch(nil, xproto.ExposeEvent{})
	if ran {
		t.Error("Dispatch() must not run MapRequest callbacks for an unclassified event")
	}
}

func TestDetachRemovesWindowScopedCallbacks(t *testing.T) {
	d := NewDispatcher()
	ran := false
	d.Connect("MapRequest", 42, func(c *core.Core, win xproto.Window, ev xgb.Event) {
		ran = true
	})
	d.Detach(42)
	d.Dispatch(nil, xproto.MapRequestEvent{Window: 42})
	if ran {
		t.Error("Detach() should remove callbacks registered against that window")
	}
}
