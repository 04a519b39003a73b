// Completion: 100% - Position composite helpers complete
package dynasm

// A position is a 32-bit composite: the high 8 bits hold the section
// index, the low 24 bits hold a zero-based index into that section's
// buffer. Positions from different sections are never equal, and within
// one section they increase monotonically as entries are appended.
//
// The original C engine keeps a per-section pointer pre-biased by
// -sectionBias so a position can be dereferenced directly. This port
// keeps the bias baked into pos/epos for arithmetic purposes (additions
// and comparisons within one section behave identically to the C code)
// but always decodes pos -> slice index before touching memory, per the
// safer alternative the design notes call out.
const (
	posIndexMask = 0x00ffffff
	posSecShift  = 24
)

func sectionBias(sec int32) int32 { return sec << posSecShift }

func posIndex(pos int32) int32 { return pos & posIndexMask }

func posSection(pos int32) int32 { return int32(uint32(pos) >> posSecShift) }
