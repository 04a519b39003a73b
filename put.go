// Completion: 100% - Pass 1 (emit) complete
package dynasm

// Put replays the sub-sequence of the action list beginning at start,
// threading label references through the section's buffer and recording
// one buffer entry per action that needs one. args supplies, in emission
// order, the runtime operands that actions from RelPC onward consume —
// this is the Go stand-in for the original engine's va_list, read via an
// index cursor instead of a platform calling convention.
//
// Put is a no-op once the state's status has gone bad; callers are
// expected to check Status after every Put in hot paths, or rely on
// Link/Encode's short-circuit.
func (s *State) Put(start int32, args ...int32) Status {
	if !s.status.OK() {
		return s.status
	}

	sec := s.sec()
	pos := sec.pos
	ofs := sec.ofs

	if pos >= sec.epos {
		if err := s.growSection(sec, pos); err != nil {
			return s.status
		}
	}

	buf := sec.buf
	buf[posIndex(pos)] = start
	pos++

	p := start
	argi := 0
	arg := func() int32 {
		if argi >= len(args) {
			return 0
		}
		v := args[argi]
		argi++
		return v
	}

	fail := func(c Class) Status {
		st := makeStatus(c, p-1)
		s.status = st
		sec.pos = pos
		sec.ofs = ofs
		return st
	}

	for {
		word := s.actionList[p]
		p++
		action, payload := decodeAction(word)
		ins := uint32(payload)

		if action >= actionMax {
			ofs += 4
			continue
		}

		var n, n2 int32
		if action >= actionArgRequiredFrom {
			n = arg()
		}
		if action >= ActionVRLIST {
			n2 = arg()
		}

		switch action {
		case ActionSTOP:
			sec.pos = pos
			sec.ofs = ofs
			return StatusOK

		case ActionSECTION:
			n := int32(ins & 255)
			if s.Checks && n >= s.maxSection {
				return fail(ClassRANGE_SEC)
			}
			s.active = n
			sec.pos = pos
			sec.ofs = ofs
			return StatusOK

		case ActionESC:
			p++
			ofs += 4

		case ActionRelExt:
			// No buffer entry; resolved entirely at encode time.

		case ActionALIGN:
			ofs += int32(ins & 255)
			buf[posIndex(pos)] = ofs
			pos++

		case ActionRelLG:
			idx := int32(ins&2047) - 10
			var pl *int32
			if idx >= 0 {
				if s.Checks && int(idx) >= len(s.lglabels) {
					return fail(ClassRANGE_LG)
				}
				pl = &s.lglabels[idx]
				if s.Checks && !(idx >= 10 || *pl < 0) {
					return fail(ClassRANGE_LG)
				}
				pos = chainOrResolve(pl, buf, pos)
			} else {
				pl = &s.lglabels[idx+10]
				chain := *pl
				if chain < 0 {
					chain = 0
				}
				buf[posIndex(pos)] = chain
				*pl = pos
				pos++
			}

		case ActionRelPC:
			if s.Checks && (n < 0 || int(n) >= len(s.pclabels)) {
				return fail(ClassRANGE_PC)
			}
			pl := &s.pclabels[n]
			pos = chainOrResolve(pl, buf, pos)

		case ActionLabelLG:
			idx := int32(ins&2047) - 10
			if s.Checks && (idx < 0 || int(idx) >= len(s.lglabels)) {
				return fail(ClassRANGE_LG)
			}
			pos = s.putLabel(&s.lglabels[idx], pos, ofs, buf)

		case ActionLabelPC:
			if s.Checks && (n < 0 || int(n) >= len(s.pclabels)) {
				return fail(ClassRANGE_PC)
			}
			pos = s.putLabel(&s.pclabels[n], pos, ofs, buf)

		case ActionIMM, ActionIMM16:
			if s.Checks {
				bits := payloadBits(ins)
				scale := payloadScale(ins)
				signed := ins&payloadSignBit != 0
				if !immRangeCheck(n, bits, scale, signed) {
					return fail(ClassRANGE_I)
				}
			}
			buf[posIndex(pos)] = n
			pos++

		case ActionIMM32:
			buf[posIndex(pos)] = n
			pos++

		case ActionIMMV8:
			if s.Checks && n&3 != 0 {
				return fail(ClassRANGE_I)
			}
			n >>= 2
			if s.Checks && !immlFits(n, payloadBits(ins)) {
				return fail(ClassRANGE_I)
			}
			buf[posIndex(pos)] = n
			pos++

		case ActionIMML:
			if s.Checks && !immlFits(n, payloadBits(ins)) {
				return fail(ClassRANGE_I)
			}
			buf[posIndex(pos)] = n
			pos++

		case ActionIMM12:
			if s.Checks && imm12Encode(uint32(n)) == -1 {
				return fail(ClassRANGE_I)
			}
			buf[posIndex(pos)] = n
			pos++

		case ActionRelAPC, ActionIMMSHIFT:
			buf[posIndex(pos)] = n
			pos++

		case ActionVRLIST:
			if s.Checks && !(vrlistFits(n, n2)) {
				return fail(ClassRANGE_I)
			}
			buf[posIndex(pos)] = n
			pos++
			buf[posIndex(pos)] = n2
			pos++
		}
	}
}
