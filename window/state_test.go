package window

import "testing"

func TestConstrainWindowState(t *testing.T) {
	tests := []struct {
		name string
		in   State
		want State
	}{
		{"fullscreen strips shaded", StateFullscreen | StateShaded, StateFullscreen},
		{"hidden strips minimized", StateHidden | StateMinimized, StateHidden},
		{"both rules apply at once", StateFullscreen | StateShaded | StateHidden | StateMinimized, StateFullscreen | StateHidden},
		{"unaffected bits pass through", StateSticky | StateAbove, StateSticky | StateAbove},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ConstrainWindowState(tc.in); got != tc.want {
				t.Errorf("ConstrainWindowState(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestStateAtomNamesRoundTrip(t *testing.T) {
	in := StateSticky | StateFullscreen | StateDemandsAttention
	names := stateAtomNames(in)
	if got := stateFromAtomNames(names); got != in {
		t.Errorf("stateAtomNames/stateFromAtomNames round-trip = %v, want %v", got, in)
	}
}

func TestStateAtomNamesEmpty(t *testing.T) {
	if names := stateAtomNames(0); names != nil {
		t.Errorf("stateAtomNames(0) = %v, want nil", names)
	}
}
