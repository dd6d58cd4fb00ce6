package display

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/compiz-go/compizcore/core"
)

// Virtual modifier bits, translated to real masks on every grab (spec
// §4.4.1). These mirror the teacher's keybind virtual-modifier constants,
// extended with the modifiers the spec names explicitly.
const (
	CompShiftMask = 1 << iota
	CompLockMask
	CompControlMask
	CompAltMask
	CompMetaMask
	CompSuperMask
	CompHyperMask
	CompModeSwitchMask
	CompNumLockMask
	CompScrollLockMask
)

// keysymsForMod names the keysyms that identify each virtual modifier,
// looked up against the live keyboard mapping to find which real
// ModMask bit they're bound to (spec §4.4.1: "looking up XK_Alt_L..Num_Lock").
var keysymsForMod = map[uint32][]xproto.Keysym{
	CompAltMask:        {0xffe9, 0xffea}, // XK_Alt_L, XK_Alt_R
	CompMetaMask:       {0xffe7, 0xffe8}, // XK_Meta_L, XK_Meta_R
	CompSuperMask:      {0xffeb, 0xffec}, // XK_Super_L, XK_Super_R
	CompHyperMask:      {0xffed, 0xffee}, // XK_Hyper_L, XK_Hyper_R
	CompModeSwitchMask: {0xff7e},         // XK_Mode_switch
	CompNumLockMask:    {0xff7f},         // XK_Num_Lock
	CompScrollLockMask: {0xff14},         // XK_Scroll_Lock
}

// ModMap translates compiz-core's virtual modifier bits (CompAltMask, ...)
// to the real ModMask bits the X server actually reports on this keyboard.
// ignoredModMask collects Lock|NumLock|ScrollLock so passive grabs can be
// OR'd with it and survive state flips (spec §4.4.1).
type ModMap struct {
	real           map[uint32]uint16
	ignoredModMask uint16
}

// buildModMap computes the virtual→real mapping from the current modifier
// mapping and keyboard mapping cached on c (core.Core.Refresh must have run
// first; addDisplay step 5 calls it before this).
func buildModMap(c *core.Core) (ModMap, error) {
	modReply, err := c.ModifierMapping()
	if err != nil {
		return ModMap{}, err
	}

	mm := ModMap{real: make(map[uint32]uint16, len(keysymsForMod))}

	keycodesPerMod := int(modReply.KeycodesPerModifier)
	for bit := 0; bit < 8; bit++ {
		maskBit := uint16(1 << uint(bit))
		for i := 0; i < keycodesPerMod; i++ {
			kc := modReply.Keycodes[bit*keycodesPerMod+i]
			if kc == 0 {
				continue
			}
			for virt, keysyms := range keysymsForMod {
				for col := 0; col < 4; col++ {
					ks := c.Keysym(kc, col)
					if ks == 0 {
						continue
					}
					for _, want := range keysyms {
						if ks == want {
							mm.real[virt] |= maskBit
						}
					}
				}
			}
		}
	}

	mm.ignoredModMask = uint16(xproto.ModMaskLock) | mm.real[CompNumLockMask] | mm.real[CompScrollLockMask]
	return mm, nil
}

// Real translates a set of virtual modifier bits into the real ModMask,
// OR-ing in Shift/Control/Lock directly since those have fixed positions.
func (mm ModMap) Real(virtual uint32) uint16 {
	var real uint16
	if virtual&CompShiftMask != 0 {
		real |= uint16(xproto.ModMaskShift)
	}
	if virtual&CompControlMask != 0 {
		real |= uint16(xproto.ModMaskControl)
	}
	if virtual&CompLockMask != 0 {
		real |= uint16(xproto.ModMaskLock)
	}
	for _, bit := range []uint32{
		CompAltMask, CompMetaMask, CompSuperMask, CompHyperMask,
		CompModeSwitchMask, CompNumLockMask, CompScrollLockMask,
	} {
		if virtual&bit != 0 {
			real |= mm.real[bit]
		}
	}
	return real
}

// IgnoredModMask is OR-ed into passive grabs so Lock/NumLock/ScrollLock
// state flips don't break accelerators (spec §4.4.1).
func (mm ModMap) IgnoredModMask() uint16 {
	return mm.ignoredModMask
}
