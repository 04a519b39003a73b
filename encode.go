// Completion: 100% - Pass 3 (encode) complete
package dynasm

import "encoding/binary"

// Encode walks every section's buffered actions once more, this time
// producing real instruction words into buf, which must be at least
// CodeSize() bytes. It re-derives structure by re-walking the action
// list in lockstep with the buffer exactly as Link did, but this time
// every REL_*/IMM*/VRLIST action patches bits into the most recently
// emitted word instead of just validating or measuring.
//
// Words are assembled in a native-order scratch array so later actions
// can keep OR-ing bits into an in-progress instruction; each word is
// half-word swapped (on a little-endian host) only once it is superseded,
// and the finished words are serialized into buf as little-endian at the
// end, matching the wire format §6 specifies.
func (s *State) Encode(buf []byte) Status {
	if !s.status.OK() {
		return s.status
	}
	if int32(len(buf)) < s.codesize {
		return makeStatus(ClassNOMEM, 0)
	}

	words := make([]uint32, s.codesize/4)
	cp := int32(0) // index of the next word to write, in words

	flush := func() {
		if cp != 0 && s.endianness == LittleEndian {
			words[cp-1] = swapHalfwords(words[cp-1])
		}
	}
	emit := func(w uint32) {
		flush()
		words[cp] = w
		cp++
	}

	for secnum := range s.sections {
		sec := &s.sections[secnum]
		secbuf := sec.buf
		last := posIndex(sec.pos)
		rb := int32(0)

		for rb < last {
			p := secbuf[rb]
			rb++
		walk:
			for {
				word := s.actionList[p]
				p++
				action, payload := decodeAction(word)
				ins := uint32(payload)

				var n, n2 int32
				if action >= ActionALIGN && action < actionMax {
					n = secbuf[rb]
					rb++
				}
				if action >= ActionVRLIST && action < actionMax {
					n2 = secbuf[rb]
					rb++
				}

				switch action {
				case ActionSTOP, ActionSECTION:
					break walk

				case ActionESC:
					lit := s.actionList[p]
					p++
					emit(lit)

				case ActionALIGN:
					mask := ins & 255
					for alignNeedsPad(cp*4, mask) {
						emit(nopWord)
					}

				case ActionRelExt:
					idx := int32(ins & 2047)
					isData := ins&2048 == 0
					n = s.externOrZero(uint32(cp*4), idx, isData)
					if st := s.patchRelAction(ins, n, words, cp, p-1); !st.OK() {
						return st
					}

				case ActionRelLG:
					if n < 0 {
						idx := -n
						isData := ins&payloadBranchBit == 0
						n = s.externOrZero(uint32(cp*4), idx, isData)
					} else {
						n = *s.at(n) - cp*4
					}
					if st := s.patchRelAction(ins, n, words, cp, p-1); !st.OK() {
						return st
					}

				case ActionRelPC:
					if s.Checks && n < 0 {
						return makeStatus(ClassUNDEF_PC, p-1)
					}
					n = *s.at(n) - cp*4
					if st := s.patchRelAction(ins, n, words, cp, p-1); !st.OK() {
						return st
					}

				case ActionRelAPC:
					selfAddr := s.BaseAddr + uintptr(cp-1)*4
					n -= int32(selfAddr)
					v, ok := relPatch(ins, n)
					if s.Checks && !ok {
						return makeStatus(ClassRANGE_REL, p-1)
					}
					words[cp-1] |= v

				case ActionLabelLG:
					idx := int32(ins & 2047)
					if idx >= 20 {
						s.globals[idx-20] = s.BaseAddr + uintptr(n)
					}

				case ActionLabelPC:
					// No code to emit; the buffer already holds the
					// link-adjusted offset for GetPCLabel to read back.

				case ActionIMM:
					words[cp-1] |= immEncode(ins, n)

				case ActionIMM12:
					v := imm12Encode(uint32(n))
					if s.Checks && v == -1 {
						return makeStatus(ClassRANGE_I, p-1)
					}
					words[cp-1] |= uint32(v)

				case ActionIMM16:
					words[cp-1] |= imm16Encode(n)

				case ActionIMM32:
					words[cp-1] |= imm32Encode(n)

				case ActionIMML, ActionIMMV8:
					words[cp-1] |= immlEncode(n)

				case ActionIMMSHIFT:
					words[cp-1] |= immshiftEncode(ins, n)

				case ActionVRLIST:
					words[cp-1] |= vrlistEncode(ins, n, n2)

				default:
					emit(word)
				}
			}
		}
	}

	flush()

	if cp*4 != s.codesize {
		return makeStatus(ClassPHASE, 0)
	}
	for i, w := range words {
		binary.LittleEndian.PutUint32(buf[i*4:], w)
	}
	return StatusOK
}

// externOrZero calls the host's extern hook if one is installed,
// returning 0 otherwise (matching the original engine's DASM_EXTERN
// macro, which defaults to a stub returning 0 when a host defines no
// external labels at all).
func (s *State) externOrZero(offset uint32, index int32, isData bool) int32 {
	if s.Extern == nil {
		return 0
	}
	return s.Extern(offset, index, isData)
}

// patchRelAction resolves a displacement already computed for a REL_LG,
// REL_PC, or REL_EXT action into the bits its carrying word needs, and
// ORs them in. Shared because all three converge on the same branch/
// vload/ADR/load-immediate dispatch once n is known.
func (s *State) patchRelAction(ins uint32, n int32, words []uint32, cp, actionIdx int32) Status {
	v, ok := relPatch(ins, n)
	if s.Checks && !ok {
		return makeStatus(ClassRANGE_REL, actionIdx)
	}
	words[cp-1] |= v
	return StatusOK
}
