// Completion: 100% - Module complete
package dynasm

// imm32Encode ORs a raw 32-bit runtime value into the instruction
// unmodified. Used for literal 32-bit patches and as the fallback for
// externally-relocated branches/data after REL_EXT resolves a
// displacement.
func imm32Encode(n int32) uint32 { return uint32(n) }
