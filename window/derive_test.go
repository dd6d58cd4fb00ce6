package window

import (
	"testing"

	"github.com/compiz-go/compizcore/motif"
)

func TestDeriveType(t *testing.T) {
	tests := []struct {
		name  string
		w     *Window
		hints []string
		want  Type
	}{
		{
			name: "recognised hint wins",
			w:    &Window{},
			hints: []string{"_NET_WM_WINDOW_TYPE_DIALOG", "_NET_WM_WINDOW_TYPE_NORMAL"},
			want:  TypeDialog,
		},
		{
			name:  "precedence picks the earlier entry regardless of hint order",
			w:     &Window{},
			hints: []string{"_NET_WM_WINDOW_TYPE_NORMAL", "_NET_WM_WINDOW_TYPE_DOCK"},
			want:  TypeDock,
		},
		{
			name:  "no hint, transient falls back to dialog",
			w:     &Window{TransientFor: 42},
			hints: nil,
			want:  TypeDialog,
		},
		{
			name:  "no hint, not override-redirect falls back to normal",
			w:     &Window{},
			hints: nil,
			want:  TypeNormal,
		},
		{
			name:  "no hint, override-redirect falls back to unknown",
			w:     &Window{OverrideRedirect: true},
			hints: nil,
			want:  TypeUnknown,
		},
		{
			name:  "modal transient promotes to modal dialog",
			w:     &Window{TransientFor: 7, WState: StateModal},
			hints: nil,
			want:  TypeModalDialog,
		},
		{
			name:  "fullscreen state wins over any hint",
			w:     &Window{WState: StateFullscreen},
			hints: []string{"_NET_WM_WINDOW_TYPE_DOCK"},
			want:  TypeFullscreen,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := deriveType(tc.w, tc.hints); got != tc.want {
				t.Errorf("deriveType() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDeriveActionsFixedSizeStripsResize(t *testing.T) {
	w := &Window{WType: TypeNormal, MwmFunc: motif.FunctionAll}
	w.Hints.MinWidth, w.Hints.MaxWidth = 100, 100
	w.Hints.MinHeight, w.Hints.MaxHeight = 50, 50

	got := deriveActions(w)
	if got&ActionResize != 0 {
		t.Error("fixed-size window must not keep ActionResize")
	}
	if got&ActionMaximizeHorz != 0 || got&ActionMaximizeVert != 0 || got&ActionFullscreen != 0 {
		t.Error("fixed-size window must not keep maximize/fullscreen actions")
	}
	if got&ActionMove == 0 || got&ActionClose == 0 {
		t.Error("fixed-size window should keep move/close")
	}
}

func TestDeriveActionsMwmFuncNarrows(t *testing.T) {
	w := &Window{WType: TypeNormal, MwmFunc: motif.FunctionMove | motif.FunctionClose}

	got := deriveActions(w)
	if got&ActionResize != 0 {
		t.Error("MwmFunc without Resize must strip ActionResize")
	}
	if got&ActionMinimize != 0 {
		t.Error("MwmFunc without Minimize must strip ActionMinimize")
	}
	if got&ActionMove == 0 {
		t.Error("MwmFunc with Move must keep ActionMove")
	}
	if got&ActionClose == 0 {
		t.Error("MwmFunc with Close must keep ActionClose")
	}
}

func TestDeriveActionsShadeFromInputExtents(t *testing.T) {
	w := &Window{WType: TypeNormal}
	w.InputExtents.Top = 20

	if deriveActions(w)&ActionShade == 0 {
		t.Error("non-zero top input extent should grant ActionShade")
	}
}

func TestGetAllowedActions(t *testing.T) {
	base := ActionMove | ActionResize
	got := GetAllowedActions(base, ActionClose, ActionResize)
	want := ActionMove | ActionClose
	if got != want {
		t.Errorf("GetAllowedActions() = %v, want %v", got, want)
	}
}
