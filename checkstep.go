// Completion: 100% - Isolated-step sanity checker complete
package dynasm

// CheckStep is an optional sanity check a host can call between isolated
// sequences of Put calls (for instance, between one compiled statement
// and the next). It confirms every local label 1-9 used since the last
// check was defined, then zeroes those slots so the same numbers can be
// reused by the next sequence without colliding with stale chains.
//
// If secmatch is >= 0, CheckStep also confirms the active section is
// exactly secmatch, catching a host that forgot to switch sections (or
// switched to the wrong one) before continuing to emit.
func (s *State) CheckStep(secmatch int32) Status {
	if s.status.OK() {
		for i := int32(1); i <= 9; i++ {
			if s.lglabels[i] > 0 {
				s.status = makeStatus(ClassUNDEF_LG, i)
				break
			}
			s.lglabels[i] = 0
		}
	}
	if s.status.OK() && secmatch >= 0 && s.active != secmatch {
		s.status = makeStatus(ClassMATCH, s.active)
	}
	return s.status
}
