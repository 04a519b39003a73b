// Completion: 100% - Pass 2 (link) complete
package dynasm

// Link walks every section's buffered actions in lockstep with the
// action list, collapsing forward references to globals that were never
// defined, shrinking ALIGN padding down from its pass-1 overestimate to
// the minimum actually required, and accumulating each section's byte
// offset into a running total. Sections are concatenated in index order.
//
// Link returns the current status immediately if it is already non-OK.
// With Checks on, it fails with UNDEF_PC, without linking, if a PC label
// was referenced but never defined.
func (s *State) Link() Status {
	if !s.status.OK() {
		return s.status
	}
	if s.Checks {
		for pc, v := range s.pclabels {
			if v > 0 {
				s.status = makeStatus(ClassUNDEF_PC, int32(pc))
				return s.status
			}
		}
	}

	for idx := 20; idx < len(s.lglabels); idx++ {
		n := s.lglabels[idx]
		for n > 0 {
			pb := s.at(n)
			n = *pb
			*pb = int32(-idx)
		}
	}

	var ofs int32
	for secnum := range s.sections {
		sec := &s.sections[secnum]
		buf := sec.buf
		pos := sectionBias(int32(secnum))
		last := sec.pos

		for pos != last {
			p := buf[posIndex(pos)]
			pos++
		walk:
			for {
				word := s.actionList[p]
				p++
				action, payload := decodeAction(word)
				ins := uint32(payload)
				switch {
				case action == ActionSTOP || action == ActionSECTION:
					break walk
				case action == ActionESC:
					p++
				case action == ActionRelExt:
				case action == ActionALIGN:
					mask := int32(ins & 255)
					ofs -= (buf[posIndex(pos)] + ofs) & mask
					pos++
				case action == ActionRelLG || action == ActionRelPC || action == ActionRelAPC:
					pos++
				case action == ActionLabelLG || action == ActionLabelPC:
					buf[posIndex(pos)] += ofs
					pos++
				case action == ActionIMM || action == ActionIMM12 || action == ActionIMM16 ||
					action == ActionIMM32 || action == ActionIMML || action == ActionIMMV8 ||
					action == ActionIMMSHIFT:
					pos++
				case action == ActionVRLIST:
					pos += 2
				case action >= actionMax:
					// Literal instruction word: no buffer entry, no offset
					// bookkeeping here (byte offset was already folded into
					// ofs during Put).
				}
			}
		}
		ofs += sec.ofs
	}

	s.codesize = ofs
	return StatusOK
}
