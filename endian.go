// Completion: 100% - Host endianness detection and deferred half-word swap
package dynasm

import "unsafe"

// Endianness identifies the byte order of 32-bit words written into the
// output buffer. ARMv7-M Thumb-2 instructions are always little-endian
// as a byte stream, but the engine juggles half-words as native-endian
// uint32s while building an instruction in two OR passes, so it must
// know the host's order to know when a swap is needed.
type Endianness uint8

const (
	LittleEndian Endianness = iota
	BigEndian
)

// hostEndianness probes the runtime's native byte order once, the same
// way the original engine's dasm_get_endianness selects a code path at
// setup rather than hard-coding one at compile time.
func hostEndianness() Endianness {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))
	if b[0] == 1 {
		return LittleEndian
	}
	return BigEndian
}

// swapHalfwords exchanges the two 16-bit halves of v. Thumb-2 packs two
// half-word instructions (or a half-word opcode plus a half-word
// immediate fragment) into one 32-bit buffer slot in a fixed order that
// doesn't match the host's native word order on a little-endian host, so
// on such a host the encode pass swaps each completed word immediately
// before moving on to the next one.
func swapHalfwords(v uint32) uint32 {
	return (v >> 16) | (v << 16)
}
