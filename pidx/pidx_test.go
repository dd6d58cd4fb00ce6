package pidx

import (
	"bytes"
	"testing"
)

// TestPrivateSlotStability is property P8: allocate a, b; create N objects;
// free a; allocate c of a different size. Slot b's contents are unchanged
// in every object.
func TestPrivateSlotStability(t *testing.T) {
	reg := NewRegistry()

	a := reg.Alloc(4)
	b := reg.Alloc(8)

	const n = 5
	objs := make([]*Slots, n)
	for i := range objs {
		objs[i] = reg.NewSlots()
		copy(objs[i].Slot(b, 8), []byte("deadbeef"))
	}

	snapshots := make([][]byte, n)
	for i, o := range objs {
		snapshots[i] = append([]byte(nil), o.Slot(b, 8)...)
	}

	reg.Free(a)
	c := reg.Alloc(16) // different size than a's freed slot
	if c != a {
		t.Fatalf("expected Free(a) to leave a hole reused by the next Alloc, got new index %d want %d", c, a)
	}

	for i, o := range objs {
		if !bytes.Equal(o.Slot(b, 8), snapshots[i]) {
			t.Fatalf("object %d: slot b contents changed after free/alloc of a", i)
		}
	}
}

func TestAllocReusesLowestFreeIndex(t *testing.T) {
	reg := NewRegistry()
	i0 := reg.Alloc(4)
	i1 := reg.Alloc(4)
	i2 := reg.Alloc(4)

	reg.Free(i1)
	i3 := reg.Alloc(8)
	if i3 != i1 {
		t.Fatalf("expected reallocation to reuse freed index %d, got %d", i1, i3)
	}
	if i0 == i2 {
		t.Fatalf("distinct allocations must have distinct indices")
	}
}

func TestFreeThenSlotPanics(t *testing.T) {
	reg := NewRegistry()
	a := reg.Alloc(4)
	s := reg.NewSlots()
	_ = s.Slot(a, 4)

	reg.Free(a)

	defer func() {
		if recover() == nil {
			t.Fatalf("expected Slot access on a freed index to panic")
		}
	}()
	s.Slot(a, 4)
}

func TestNewSlotsCoversCurrentAllocations(t *testing.T) {
	reg := NewRegistry()
	reg.Alloc(4)
	reg.Alloc(8)

	s := reg.NewSlots()
	if got, want := len(s.Slot(0, 4))+len(s.Slot(1, 8)), 12; got != want {
		t.Fatalf("slots do not cover allocated sizes: got %d want %d", got, want)
	}
}

func TestSlotsCreatedBeforeAllocStillSees(t *testing.T) {
	reg := NewRegistry()
	s := reg.NewSlots()
	i := reg.Alloc(4)
	got := s.Slot(i, 4)
	if len(got) != 4 {
		t.Fatalf("Slots created before Alloc should grow lazily to cover new indices")
	}
}
