// Completion: 100% - State lifecycle (init/free/setup) complete
package dynasm

// maxSecPos is the per-Put-call section buffer growth quantum: the
// largest number of buffer entries a single action sub-sequence can
// consume. Named DASM_MAXSECPOS in the original engine.
const maxSecPos = 25

// globalsBias reserves slots 0..9 of the local/global label table for
// local labels 0..9; externally visible globals start at index 10, and
// only indices >= 20 are written back into the host's Globals array (see
// label.go globalsVisibleFrom).
const globalsBias = 10

// section is one output stream of action-buffer entries: interleaved
// action-list start offsets and the runtime arguments/label links each
// action consumed, in emission order.
type section struct {
	buf  []int32 // true buffer; always indexed via posIndex(pos)
	pos  int32   // next free biased position
	epos int32   // biased position at which the buffer must grow
	ofs  int32   // byte offset accumulated for this section
}

// State is the handle through which a host drives one assembly run. It
// owns every section buffer and label table; the action list and globals
// array are owned by the host.
type State struct {
	alloc        Allocator
	actionList   []uint32
	lglabels     []int32
	pclabels     []int32
	globals      []uintptr
	sections     []section
	active       int32 // index of the currently active section
	codesize     int32
	maxSection   int32
	status       Status
	endianness   Endianness
	Checks       bool // enable range/undef validation (default true)

	// Extern resolves REL_EXT actions and REL_LG references to globals
	// that were never defined within this run. The host must install it
	// before Encode if the action list can contain either.
	Extern ExternHook

	// BaseAddr is the address the output buffer passed to Encode will
	// actually execute at. Only REL_APC needs it: every other relocation
	// works relative to the output buffer itself. Defaults to 0, which
	// is correct whenever the action list never uses REL_APC or the
	// host only cares about buffer-relative offsets.
	BaseAddr uintptr
}

// Init allocates a new State with room for maxSection independent output
// sections. Checks defaults to true; disable it to skip the range
// validation described in spec §4.3/§4.5 once an action stream is known
// good, mirroring the original's compile-time DASM_CHECKS toggle.
func Init(maxSection int32, alloc Allocator) *State {
	if alloc == nil {
		alloc = DefaultAllocator
	}
	s := &State{
		alloc:      alloc,
		sections:   make([]section, maxSection),
		maxSection: maxSection,
		endianness: hostEndianness(),
		Checks:     true,
	}
	for i := range s.sections {
		// epos starts at zero (not the section's bias) so the very
		// first Put into this section always triggers a growth.
		s.sections[i].epos = 0
	}
	return s
}

// Free releases every buffer the State owns. The State must not be used
// afterwards.
func (s *State) Free() {
	s.sections = nil
	s.lglabels = nil
	s.pclabels = nil
	s.actionList = nil
}

// SetupGlobal installs the host's globals array and grows the
// local/global label table to hold maxGlobals globals plus the 10
// reserved local-label slots. Must be called before Setup.
func (s *State) SetupGlobal(globals []uintptr, maxGlobals int) error {
	s.globals = globals
	grown, err := s.alloc.Grow(s.lglabels, globalsBias+maxGlobals)
	if err != nil {
		return err
	}
	s.lglabels = grown
	return nil
}

// GrowPC enlarges the PC label table to hold at least maxPC labels. May
// be called after Setup; newly added slots are zeroed.
func (s *State) GrowPC(maxPC int) error {
	old := len(s.pclabels)
	grown, err := s.alloc.Grow(s.pclabels, maxPC)
	if err != nil {
		return err
	}
	for i := old; i < len(grown); i++ {
		grown[i] = 0
	}
	s.pclabels = grown
	return nil
}

// Setup installs actionList, resets status to OK, zeroes every label
// table, and resets each section's buffer position to its section-biased
// initial value. Section buffers themselves (and their contents) are not
// released; a fresh action list can reuse the same State.
func (s *State) Setup(actionList []uint32) {
	s.actionList = actionList
	s.status = StatusOK
	s.active = 0
	for i := range s.lglabels {
		s.lglabels[i] = 0
	}
	for i := range s.pclabels {
		s.pclabels[i] = 0
	}
	for i := range s.sections {
		s.sections[i].pos = sectionBias(int32(i))
		s.sections[i].ofs = 0
	}
}

// Status returns the engine's current sticky status.
func (s *State) Status() Status { return s.status }

// CodeSize returns the total byte size computed by the most recent Link.
func (s *State) CodeSize() int32 { return s.codesize }

func (s *State) sec() *section { return &s.sections[s.active] }

func (s *State) growSection(sec *section, pos int32) error {
	bias := sectionBias(posSection(pos))
	needed := len(sec.buf) + 2*maxSecPos
	grown, err := s.alloc.Grow(sec.buf, needed)
	if err != nil {
		s.status = makeStatus(ClassNOMEM, 0)
		return err
	}
	sec.buf = grown
	sec.epos = bias + int32(len(grown)) - maxSecPos
	return nil
}
