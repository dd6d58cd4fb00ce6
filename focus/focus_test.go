package focus

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/window"
)

func TestIsWindowFocusAllowedEarlyDenials(t *testing.T) {
	tests := []struct {
		name string
		w    *window.Window
		want bool
	}{
		{"destroyed window denied", &window.Window{Destroyed: true, Managed: true}, false},
		{"unmanaged window denied", &window.Window{Managed: false}, false},
		{"minimized window denied", &window.Window{Managed: true, WState: window.StateMinimized}, false},
		{"hidden window denied", &window.Window{Managed: true, WState: window.StateHidden}, false},
		{"no input hint and no take-focus denied", &window.Window{Managed: true, InputHint: false}, false},
		{"demands attention always allowed", &window.Window{Managed: true, InputHint: true, WState: window.StateDemandsAttention}, true},
		{"desktop type denied", &window.Window{Managed: true, InputHint: true, WType: window.TypeDesktop}, false},
		{"dock type denied", &window.Window{Managed: true, InputHint: true, WType: window.TypeDock}, false},
		{"splash type denied", &window.Window{Managed: true, InputHint: true, WType: window.TypeSplash}, false},
		{"modal dialog allowed", &window.Window{Managed: true, InputHint: true, WType: window.TypeDialog, WState: window.StateModal}, true},
		{"no input hint but take-focus protocol present", &window.Window{Managed: true, InputHint: false, WType: window.TypeDialog, Protocols: window.ProtoTakeFocus, WState: window.StateModal}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsWindowFocusAllowed(nil, tc.w, 0); got != tc.want {
				t.Errorf("IsWindowFocusAllowed() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAllowWindowFocusDenialSetsDemandsAttention(t *testing.T) {
	w := &window.Window{Managed: true, InputHint: true, WState: window.StateMinimized}
	if AllowWindowFocus(nil, w, 0, 0) {
		t.Fatal("a minimized window must never be allowed focus")
	}
	if w.WState&window.StateDemandsAttention == 0 {
		t.Error("denying focus should flag the window as demanding attention")
	}
}

func TestAllowWindowFocusMaskOverridesType(t *testing.T) {
	w := &window.Window{Managed: true, InputHint: true, WState: window.StateDemandsAttention, WType: window.TypeDock}
	if AllowWindowFocus(nil, w, NoFocusDock, 0) {
		t.Error("NoFocusDock should deny focus to a dock-type window even if otherwise allowed")
	}
	if !AllowWindowFocus(nil, w, NoFocusDesktop, 0) {
		t.Error("a mask bit for a different type must not deny this window")
	}
}

func TestResolveModalTransient(t *testing.T) {
	owner := &window.Window{ID: 1}
	modal := &window.Window{ID: 2, TransientFor: 1, WState: window.StateModal}
	byID := map[xproto.Window]*window.Window{1: owner, 2: modal}

	if got := resolveModalTransient(byID, owner); got != modal {
		t.Errorf("resolveModalTransient() = %v, want the modal transient %v", got, modal)
	}
}

func TestResolveModalTransientNoneFound(t *testing.T) {
	owner := &window.Window{ID: 1}
	byID := map[xproto.Window]*window.Window{1: owner}
	if got := resolveModalTransient(byID, owner); got != owner {
		t.Errorf("resolveModalTransient() with no modal child = %v, want owner %v", got, owner)
	}
}
