// Completion: 100% - Sample action list complete
package main

import "github.com/Esvandiary/DynASM"

// addImmProgram is a hand-written action list standing in for what the
// real DynASM Lua preprocessor would normally emit from:
//
//	.code
//	ADD r0, r0, #imm
//	NOP
//	BX lr
//
// It exercises one literal instruction word, one IMM12-patched word, a
// second literal word pairing a NOP with the return, and STOP. The IMM12
// action carries no payload fields of its own (the fully-positioned
// value dasm_imm12 computes is OR'd in directly), so its payload is 0.
var addImmProgram = []uint32{
	0xF1000000,                      // ADD r0, r0, #<imm12>
	dynasm.ActionWord(dynasm.ActionIMM12, 0),
	0xBF004770,                      // NOP ; BX lr
	dynasm.ActionWord(dynasm.ActionSTOP, 0),
}

// assembleAddImm runs all three passes over addImmProgram and returns the
// encoded machine code for "return r0 + imm".
func assembleAddImm(cfg Config, imm int32) ([]byte, error) {
	s := dynasm.Init(int32(cfg.MaxSection), nil)
	defer s.Free()
	s.Checks = cfg.Checks

	s.Setup(addImmProgram)
	if st := s.Put(0, imm); !st.OK() {
		return nil, engineError("put: %v", st.AsError())
	}
	if st := s.Link(); !st.OK() {
		return nil, engineError("link: %v", st.AsError())
	}

	code := make([]byte, s.CodeSize())
	if st := s.Encode(code); !st.OK() {
		return nil, engineError("encode: %v", st.AsError())
	}
	return code, nil
}
