// Completion: 100% - PC label offset lookup complete
package dynasm

// GetPCLabel returns the byte offset a PC label was defined at, -1 if pc
// is a valid slot that was referenced but never defined, or -2 if pc is
// out of range or was never touched at all.
func (s *State) GetPCLabel(pc uint32) int32 {
	if int(pc) < len(s.pclabels) {
		pos := s.pclabels[pc]
		if pos < 0 {
			return *s.at(-pos)
		}
		if pos > 0 {
			return -1
		}
	}
	return -2
}
