package xrect

import "testing"

func TestIntify(t *testing.T) {
	r := Make(-5, 10, 100, 200)
	x, y, w, h := Intify(r)
	if x != -5 || y != 10 || w != 100 || h != 200 {
		t.Errorf("Intify() = (%d, %d, %d, %d), want (-5, 10, 100, 200)", x, y, w, h)
	}
}

func TestIntersectAreaOverlapping(t *testing.T) {
	r1 := Make(0, 0, 10, 10)
	r2 := Make(5, 5, 10, 10)
	if got := IntersectArea(r1, r2); got != 25 {
		t.Errorf("IntersectArea() = %d, want 25", got)
	}
}

func TestIntersectAreaDisjoint(t *testing.T) {
	r1 := Make(0, 0, 10, 10)
	r2 := Make(20, 20, 10, 10)
	if got := IntersectArea(r1, r2); got != 0 {
		t.Errorf("IntersectArea() of disjoint rects = %d, want 0", got)
	}
}

func TestIntersectAreaTouchingEdgesIsZero(t *testing.T) {
	r1 := Make(0, 0, 10, 10)
	r2 := Make(10, 0, 10, 10) // shares only the boundary, no area
	if got := IntersectArea(r1, r2); got != 0 {
		t.Errorf("IntersectArea() of edge-touching rects = %d, want 0", got)
	}
}

func TestLargestOverlapPicksBiggest(t *testing.T) {
	needle := Make(0, 0, 100, 100)
	small := Make(0, 0, 10, 10)
	big := Make(0, 0, 90, 90)
	haystack := []Rect{small, big}

	if got := LargestOverlap(needle, haystack); got != Rect(big) {
		t.Errorf("LargestOverlap() = %v, want the larger-overlap rect", got)
	}
}

func TestLargestOverlapNoneOverlapping(t *testing.T) {
	needle := Make(0, 0, 10, 10)
	haystack := []Rect{Make(100, 100, 10, 10)}
	if got := LargestOverlap(needle, haystack); got != nil {
		t.Errorf("LargestOverlap() with no overlap = %v, want nil", got)
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 || Min(5, 3) != 3 {
		t.Error("Min() failed")
	}
	if Max(3, 5) != 5 || Max(5, 3) != 5 {
		t.Error("Max() failed")
	}
}
