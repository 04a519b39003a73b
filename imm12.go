// Completion: 100% - Thumb-2 modified 12-bit immediate codec complete
package dynasm

// imm12Encode encodes n as a Thumb-2 "modified immediate" per the ARM
// ARM: a bare 8-bit value, one of three repeated-byte patterns, or a
// rotated 8-bit value with its MSB forced into bit 7. Returns -1 if n
// cannot be represented in any of these forms. The returned value is
// already positioned at the bit offsets the instruction word expects
// (i at bit 26, imm3 at bits 12-14, imm8/a:bcdefgh at bits 0-7) and is
// meant to be OR-ed directly into the instruction.
func imm12Encode(n uint32) int32 {
	m := n
	switch {
	case m <= 255:
		return int32(m & 0xFF)
	case (m&0xff00ff00) == 0 && (((m>>16)^m)&0xff) == 0:
		return int32((m & 0xFF) | (0x01 << 12))
	case (m&0x00ff00ff) == 0 && (((m>>16)^m)&0xff00) == 0:
		return int32(((m >> 8) & 0xFF) | (0x02 << 12))
	case ((((m>>16)&0xffff)^m)&0xffff) == 0 && ((((m>>8)&0xff)^m)&0xff) == 0:
		return int32(((m >> 8) & 0xFF) | (0x03 << 12))
	}
	for i := uint32(0); i < 32; i, m = i+1, (m<<1)|(m>>31) {
		if m <= 255 && m&0x80 != 0 {
			return int32((m & 0x7F) | ((i & 0x1) << 7) | ((i & 0xE) << (12 - 1)) | ((i & 0x10) << (26 - 4)))
		}
	}
	return -1
}
