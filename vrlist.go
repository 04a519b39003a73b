// Completion: 100% - VFP register list codec complete
package dynasm

// vrlistFits reports whether both register numbers are valid VFP
// register indices (0..30 inclusive).
func vrlistFits(ra, rb int32) bool {
	return ra >= 0 && ra < 31 && rb >= 0 && rb < 31
}

// vrlistEncode packs a VFP single- or double-precision register range
// [ra, rb] into the split fields VLDM/VSTM/VPUSH/VPOP expect. ins's bit
// 0 selects the register class: 0 for "s" (single), 1 for "d" (double).
func vrlistEncode(ins uint32, ra, rb int32) uint32 {
	nr := uint32(rb + 1 - ra)
	a := uint32(ra) & 31
	if ins&0x1 == 0 {
		return ((a>>1)<<12 | (a&1)<<22) | nr
	}
	return (a&15)<<12 | ((a>>4)<<22) | nr*2 | 0x100
}
