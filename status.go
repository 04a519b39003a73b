// Completion: 100% - Status code model complete
package dynasm

import "fmt"

// Status is a monotonic status field packing an error class in the high
// byte and the offending action-list index in the low 24 bits. It is not
// a Go error: the engine produces no textual messages (see package docs
// on non-goals), and callers that want an error value convert explicitly
// with AsError.
type Status int32

// Class identifies the category of a non-OK Status.
type Class uint8

const (
	ClassOK        Class = 0x00
	ClassNOMEM     Class = 0x01
	ClassPHASE     Class = 0x02
	ClassMATCH     Class = 0x03
	ClassRANGE_I   Class = 0x11
	ClassRANGE_SEC Class = 0x12
	ClassRANGE_LG  Class = 0x13
	ClassRANGE_PC  Class = 0x14
	ClassRANGE_REL Class = 0x15
	ClassUNDEF_LG  Class = 0x21
	ClassUNDEF_PC  Class = 0x22
)

// StatusOK is the zero value of Status: no error, no index.
const StatusOK Status = 0

const statusIndexMask = 0x00ffffff

// makeStatus packs a class and an action-list index into a Status. The
// index is masked to 24 bits, matching the position composite used
// elsewhere in the engine.
func makeStatus(c Class, index int32) Status {
	return Status(int32(c)<<24 | (index & statusIndexMask))
}

// Class returns the error category carried by s.
func (s Status) Class() Class { return Class(uint32(s) >> 24) }

// Index returns the action-list index associated with s, or -1 if s is OK.
func (s Status) Index() int32 {
	if s == StatusOK {
		return -1
	}
	return int32(s) & statusIndexMask
}

// OK reports whether s carries no error.
func (s Status) OK() bool { return s == StatusOK }

// Internal reports whether s indicates a bug in the preprocessor or a
// host misuse (a phase mismatch, a section mismatch, an allocation
// failure, or a PC label left undefined after link),
// as opposed to a user-supplied value that simply didn't fit.
func (s Status) Internal() bool {
	switch s.Class() {
	case ClassPHASE, ClassMATCH, ClassUNDEF_PC, ClassNOMEM:
		return true
	default:
		return false
	}
}

func (c Class) String() string {
	switch c {
	case ClassOK:
		return "OK"
	case ClassNOMEM:
		return "NOMEM"
	case ClassPHASE:
		return "PHASE"
	case ClassMATCH:
		return "MATCH"
	case ClassRANGE_I:
		return "RANGE_I"
	case ClassRANGE_SEC:
		return "RANGE_SEC"
	case ClassRANGE_LG:
		return "RANGE_LG"
	case ClassRANGE_PC:
		return "RANGE_PC"
	case ClassRANGE_REL:
		return "RANGE_REL"
	case ClassUNDEF_LG:
		return "UNDEF_LG"
	case ClassUNDEF_PC:
		return "UNDEF_PC"
	default:
		return "UNKNOWN"
	}
}

func (s Status) String() string {
	if s.OK() {
		return "OK"
	}
	return fmt.Sprintf("%s@%d", s.Class(), s.Index())
}

// AsError converts a non-OK Status into an error, or nil if s is OK. Most
// callers should check s.OK() directly in hot paths; AsError exists for
// sites (the demo command, tests) that want ordinary Go error plumbing.
func (s Status) AsError() error {
	if s.OK() {
		return nil
	}
	return fmt.Errorf("dynasm: %s at action index %d", s.Class(), s.Index())
}
