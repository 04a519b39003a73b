// Completion: 100% - IMM action (scaled/offset immediate) complete
package dynasm

// immRangeCheck reproduces the shared put-time validation for the IMM
// and IMM16 actions: the runtime value must be a multiple of 2^scale,
// and the value itself (not scaled down) must fit in bits bits
// (sign-extended if signed).
func immRangeCheck(n int32, bits, scale uint32, signed bool) bool {
	if n&((1<<scale)-1) != 0 {
		return false
	}
	if signed {
		return ((n + (1 << (bits - 1))) >> bits) == 0
	}
	return (n >> bits) == 0
}

// immEncode applies the IMM action at encode time. Normally the runtime
// value is scaled down by the payload's scale field, masked to its bit
// width, and shifted into position. When the payload's sign bit is set,
// the "scale" field instead carries a small signed offset that is
// added to n before the mask-and-shift (no scaling in this mode).
func immEncode(ins uint32, n int32) uint32 {
	scale := payloadScale(ins)
	if ins&payloadSignBit != 0 {
		if scale&0x10 != 0 {
			n -= int32(scale & 0x0F)
		} else {
			n += int32(scale & 0x0F)
		}
		scale = 0
	}
	bits := payloadBits(ins)
	shift := payloadShift(ins)
	masked := uint32(n>>scale) & ((1 << bits) - 1)
	return masked << shift
}
