package dynasm

import "testing"

func TestStateLifecycleInitSetupFree(t *testing.T) {
	s := Init(2, nil)
	if s.Status() != StatusOK {
		t.Fatalf("a freshly initialized State must report OK status")
	}
	if err := s.SetupGlobal(make([]uintptr, 3), 3); err != nil {
		t.Fatalf("SetupGlobal: %v", err)
	}
	if err := s.GrowPC(5); err != nil {
		t.Fatalf("GrowPC: %v", err)
	}
	s.Setup([]uint32{ActionWord(ActionSTOP, 0)})
	if st := s.Put(0); !st.OK() {
		t.Fatalf("Put on an empty program should succeed immediately at STOP")
	}
	s.Free()
}

func TestSetupResetsLabelTablesBetweenRuns(t *testing.T) {
	s := newTestState(t, 0, 0)
	defer s.Free()

	actions := []uint32{
		ActionWord(ActionLabelLG, 11), // define local label 1
		literal(1),
		ActionWord(ActionSTOP, 0),
	}
	s.Setup(actions)
	if st := s.Put(0); !st.OK() {
		t.Fatalf("first Put failed: %v", st.AsError())
	}
	if s.lglabels[1] >= 0 {
		t.Fatalf("label 1 should be marked defined (negative) after the first run")
	}

	// A second Setup call over the same action list must find a clean
	// slate, not a label already marked defined from the previous run.
	s.Setup(actions)
	if s.lglabels[1] != 0 {
		t.Fatalf("Setup must zero every label slot, got %d", s.lglabels[1])
	}
	if st := s.Put(0); !st.OK() {
		t.Fatalf("second Put failed: %v", st.AsError())
	}
}

func TestCheckStepDetectsUndefinedLocalLabel(t *testing.T) {
	s := newTestState(t, 0, 0)
	defer s.Free()

	// REL_LG forward-references local label 1 (payload 1, the raw local
	// slot index rather than the +10 backward/global form), which this
	// short sequence never defines before the checkpoint.
	actions := []uint32{
		literal(1),
		ActionWord(ActionRelLG, 1|payloadBranchBit),
		ActionWord(ActionSTOP, 0),
	}
	s.Setup(actions)
	if st := s.Put(0); !st.OK() {
		t.Fatalf("Put failed: %v", st.AsError())
	}

	st := s.CheckStep(-1)
	if st.OK() {
		t.Fatalf("CheckStep should catch local label 1 left undefined")
	}
	if st.Class() != ClassUNDEF_LG {
		t.Errorf("Class() = %v, want UNDEF_LG", st.Class())
	}
}

func TestCheckStepClearsDefinedLocalLabelsForReuse(t *testing.T) {
	s := newTestState(t, 0, 0)
	defer s.Free()

	actions := []uint32{
		ActionWord(ActionLabelLG, 11), // define local label 1
		literal(1),
		ActionWord(ActionSTOP, 0),
	}
	s.Setup(actions)
	if st := s.Put(0); !st.OK() {
		t.Fatalf("Put failed: %v", st.AsError())
	}

	if st := s.CheckStep(-1); !st.OK() {
		t.Fatalf("CheckStep should accept a fully-defined local label: %v", st.AsError())
	}
	if s.lglabels[1] != 0 {
		t.Errorf("CheckStep must clear local label 1 for reuse, got %d", s.lglabels[1])
	}
}

func TestCheckStepDetectsSectionMismatch(t *testing.T) {
	s := Init(2, nil)
	defer s.Free()
	if err := s.SetupGlobal(nil, 0); err != nil {
		t.Fatalf("SetupGlobal: %v", err)
	}
	s.Setup([]uint32{ActionWord(ActionSTOP, 0)})
	if st := s.Put(0); !st.OK() {
		t.Fatalf("Put failed: %v", st.AsError())
	}

	st := s.CheckStep(1)
	if st.OK() {
		t.Fatalf("CheckStep should catch that section 0 is active, not the requested section 1")
	}
	if st.Class() != ClassMATCH {
		t.Errorf("Class() = %v, want MATCH", st.Class())
	}
}

func TestGetPCLabelUnreferencedIsMinusTwo(t *testing.T) {
	s := newTestState(t, 0, 2)
	defer s.Free()
	s.Setup([]uint32{ActionWord(ActionSTOP, 0)})
	if st := s.Put(0); !st.OK() {
		t.Fatalf("Put failed: %v", st.AsError())
	}
	if off := s.GetPCLabel(0); off != -2 {
		t.Errorf("GetPCLabel on an untouched slot = %d, want -2", off)
	}
}

func TestGetPCLabelReferencedButUndefinedIsMinusOne(t *testing.T) {
	s := newTestState(t, 0, 1)
	defer s.Free()
	actions := []uint32{
		literal(1),
		ActionWord(ActionRelPC, payloadBranchBit),
		ActionWord(ActionSTOP, 0),
	}
	s.Setup(actions)
	s.Checks = false // Link is not run here; with checks on it would fail with UNDEF_PC for this label.
	if st := s.Put(0, 0); !st.OK() {
		t.Fatalf("Put failed: %v", st.AsError())
	}
	if off := s.GetPCLabel(0); off != -1 {
		t.Errorf("GetPCLabel on a referenced-but-undefined slot = %d, want -1", off)
	}
}

func TestGetPCLabelOutOfRangeIsMinusTwo(t *testing.T) {
	s := newTestState(t, 0, 1)
	defer s.Free()
	s.Setup([]uint32{ActionWord(ActionSTOP, 0)})
	if st := s.Put(0); !st.OK() {
		t.Fatalf("Put failed: %v", st.AsError())
	}
	if off := s.GetPCLabel(99); off != -2 {
		t.Errorf("GetPCLabel(99) = %d, want -2 (out of range)", off)
	}
}

func TestSectionSwitchSetsActiveSection(t *testing.T) {
	s := Init(2, nil)
	defer s.Free()
	if err := s.SetupGlobal(nil, 0); err != nil {
		t.Fatalf("SetupGlobal: %v", err)
	}

	actions := []uint32{
		ActionWord(ActionSECTION, 1),
		ActionWord(ActionSTOP, 0),
	}
	s.Setup(actions)
	if st := s.Put(0); !st.OK() {
		t.Fatalf("Put failed: %v", st.AsError())
	}
	if s.active != 1 {
		t.Errorf("active section = %d, want 1 after ActionSECTION", s.active)
	}
}

func TestSectionOutOfRangeFailsWhenChecksEnabled(t *testing.T) {
	s := Init(1, nil)
	defer s.Free()
	if err := s.SetupGlobal(nil, 0); err != nil {
		t.Fatalf("SetupGlobal: %v", err)
	}
	s.Setup([]uint32{ActionWord(ActionSECTION, 5)})
	s.Checks = true

	st := s.Put(0)
	if st.OK() {
		t.Fatalf("switching to section 5 with only 1 section configured should fail")
	}
	if st.Class() != ClassRANGE_SEC {
		t.Errorf("Class() = %v, want RANGE_SEC", st.Class())
	}
}

func TestVrlistActionRejectsOutOfRangeRegistersWhenChecksEnabled(t *testing.T) {
	s := newTestState(t, 0, 0)
	defer s.Free()
	actions := []uint32{
		literal(1),
		ActionWord(ActionVRLIST, 0),
		ActionWord(ActionSTOP, 0),
	}
	s.Setup(actions)
	s.Checks = true

	st := s.Put(0, 31, 35) // ra=31 is already out of the 0..30 VFP range
	if st.OK() {
		t.Fatalf("expected RANGE_I for an out-of-range VFP register list")
	}
	if st.Class() != ClassRANGE_I {
		t.Errorf("Class() = %v, want RANGE_I", st.Class())
	}
}

func TestEscActionEmitsFollowingWordVerbatim(t *testing.T) {
	s := newTestState(t, 0, 0)
	defer s.Free()

	const escaped = uint32(0x00000003) // a value that would decode as an
	// ordinary low-numbered action if it were not escaped.
	actions := []uint32{
		ActionWord(ActionESC, 0),
		escaped,
		ActionWord(ActionSTOP, 0),
	}
	s.Setup(actions)
	if st := s.Put(0); !st.OK() {
		t.Fatalf("Put failed: %v", st.AsError())
	}
	if st := s.Link(); !st.OK() {
		t.Fatalf("Link failed: %v", st.AsError())
	}
	if s.CodeSize() != 4 {
		t.Fatalf("CodeSize() = %d, want 4", s.CodeSize())
	}

	buf := make([]byte, s.CodeSize())
	if st := s.Encode(buf); !st.OK() {
		t.Fatalf("Encode failed: %v", st.AsError())
	}

	want := swapHalfwords(escaped)
	got := uint32(buf[0]) | uint32(buf[1])<<8 | uint32(buf[2])<<16 | uint32(buf[3])<<24
	if got != want {
		t.Errorf("escaped word = 0x%08x, want 0x%08x", got, want)
	}
}
