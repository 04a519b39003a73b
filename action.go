// Completion: 100% - Action opcode table complete
package dynasm

// Action identifies one opcode in the static action list that the
// preprocessor emits. Values and ordering match the original DynASM
// ARMv7-M encoding engine exactly: code that compares "action >= X" to
// decide whether an opcode carries a runtime argument depends on this
// order.
type Action uint32

const (
	ActionSTOP Action = iota
	ActionSECTION
	ActionESC
	ActionRelExt
	// Actions below this point carry a buffer position.
	ActionALIGN
	ActionRelLG
	ActionLabelLG
	// Actions below this point also carry a first runtime argument.
	ActionRelPC
	ActionLabelPC
	ActionRelAPC
	ActionIMM
	ActionIMM12
	ActionIMM16
	ActionIMM32
	ActionIMML
	ActionIMMV8
	ActionIMMSHIFT
	// VRLIST carries a second runtime argument too.
	ActionVRLIST
	actionMax
)

// actionArgRequiredFrom is the first Action value whose opcode consumes a
// runtime argument from Put's variadic list. Everything below it is
// either argument-free or encodes its operand entirely in the payload.
const actionArgRequiredFrom = ActionRelPC

// ActionWord packs an opcode and its 16-bit payload the way the
// preprocessor does: opcode in the high 16 bits, payload in the low 16.
func ActionWord(a Action, payload uint16) uint32 {
	return uint32(a)<<16 | uint32(payload)
}

// decodeAction splits a 32-bit action word into its opcode and payload.
func decodeAction(word uint32) (Action, uint16) {
	return Action(word >> 16), uint16(word)
}

// payload bit-field helpers shared by IMM/IMM16/IMML/IMMV8/branch actions.
// Names mirror the bit ranges documented in the action opcode table.
const (
	payloadShiftMask  = 0x1F // bits 0..4: shift-into-instruction
	payloadBitsShift  = 5
	payloadBitsMask   = 0x1F // bits 5..9: bit-width
	payloadScaleShift = 10
	payloadScaleMask  = 0x1F // bits 10..14: input scale / offset flag+value
	payloadSignBit    = 0x8000
	payloadBranchBit  = 0x8000 // bit 15 in REL_* payloads: is-branch
	payloadVLoadBit   = 0x4000 // bit 14 in REL_* payloads: VFP load offset
	payloadADRBit     = 0x2000 // bit 13 in REL_* payloads: ADR form
	payloadIsImm10Bit = 0x4000 // bit 14: wide (imm10) branch form
)

func payloadShift(ins uint32) uint32 { return ins & payloadShiftMask }
func payloadBits(ins uint32) uint32  { return (ins >> payloadBitsShift) & payloadBitsMask }
func payloadScale(ins uint32) uint32 { return (ins >> payloadScaleShift) & payloadScaleMask }
