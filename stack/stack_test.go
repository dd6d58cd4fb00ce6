package stack

import (
	"testing"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/compiz-go/compizcore/window"
)

func TestLayerOf(t *testing.T) {
	tests := []struct {
		name string
		w    *window.Window
		want layer
	}{
		{"desktop", &window.Window{WType: window.TypeDesktop}, layerDesktop},
		{"state below", &window.Window{WType: window.TypeNormal, WState: window.StateBelow}, layerBelow},
		{"dock", &window.Window{WType: window.TypeDock}, layerDock},
		{"state above", &window.Window{WType: window.TypeNormal, WState: window.StateAbove}, layerAbove},
		{"fullscreen state", &window.Window{WType: window.TypeNormal, WState: window.StateFullscreen}, layerFullscreen},
		{"fullscreen type", &window.Window{WType: window.TypeFullscreen}, layerFullscreen},
		{"normal", &window.Window{WType: window.TypeNormal}, layerNormal},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := layerOf(tc.w); got != tc.want {
				t.Errorf("layerOf() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsAncestor(t *testing.T) {
	byID := map[xproto.Window]*window.Window{
		1: {ID: 1},
		2: {ID: 2, TransientFor: 1},
		3: {ID: 3, TransientFor: 2},
	}
	if !isAncestor(byID, 3, 1) {
		t.Error("3's transient chain should reach ancestor 1 through 2")
	}
	if isAncestor(byID, 1, 3) {
		t.Error("1 is not transient for 3")
	}
	if isAncestor(byID, 3, 99) {
		t.Error("99 is not in 3's transient chain")
	}
}

func TestIsAncestorToleratesCycle(t *testing.T) {
	byID := map[xproto.Window]*window.Window{
		1: {ID: 1, TransientFor: 2},
		2: {ID: 2, TransientFor: 1},
	}
	// Must terminate (bounded depth) rather than loop forever.
	isAncestor(byID, 1, 99)
}

func TestStackLayerCheck(t *testing.T) {
	byID := map[xproto.Window]*window.Window{
		1: {ID: 1, WType: window.TypeNormal},
		2: {ID: 2, TransientFor: 1},
	}

	if allowed, ok := stackLayerCheck(byID, 1, 0); !ok || allowed != 0 {
		t.Errorf("stackLayerCheck with below=0 = (%v, %v), want (0, true)", allowed, ok)
	}

	if _, ok := stackLayerCheck(byID, 2, 1); ok {
		t.Error("stacking a window above its own transient ancestor must be rejected")
	}

	allowed, ok := stackLayerCheck(byID, 1, 2)
	if !ok || allowed != 2 {
		t.Errorf("stackLayerCheck(1 above 2) = (%v, %v), want (2, true)", allowed, ok)
	}
}

func TestFindSiblingBelow(t *testing.T) {
	byID := map[xproto.Window]*window.Window{
		1: {ID: 1, WType: window.TypeNormal},
		2: {ID: 2, WType: window.TypeDock},
		3: {ID: 3, WType: window.TypeNormal},
	}
	// top -> down
	order := []xproto.Window{2, 3, 1}
	if got := findSiblingBelow(order, byID, 1); got != 3 {
		t.Errorf("findSiblingBelow() = %v, want 3 (the topmost normal window, just below the dock)", got)
	}
}

func TestFindSiblingBelowNothingAbove(t *testing.T) {
	byID := map[xproto.Window]*window.Window{
		1: {ID: 1, WType: window.TypeNormal},
		2: {ID: 2, WType: window.TypeNormal},
	}
	order := []xproto.Window{1, 2}
	if got := findSiblingBelow(order, byID, 1); got != 2 {
		t.Errorf("findSiblingBelow() with nothing outranking = %v, want 2 (the topmost other normal window)", got)
	}
}

func TestFindLowestSiblingBelow(t *testing.T) {
	byID := map[xproto.Window]*window.Window{
		1: {ID: 1, WType: window.TypeDock},
		2: {ID: 2, WType: window.TypeNormal},
		3: {ID: 3, WType: window.TypeDock},
	}
	// bottom -> up
	bottomUp := []xproto.Window{2, 1, 3}
	if got := findLowestSiblingBelow(bottomUp, byID, 2); got != 1 {
		t.Errorf("findLowestSiblingBelow() = %v, want 1 (the first dock from the bottom)", got)
	}
}
