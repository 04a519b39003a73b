// Completion: 100% - Platform-specific module complete
//go:build unix

package main

import (
	"fmt"
	"unsafe"

	"github.com/Esvandiary/DynASM"
	"golang.org/x/sys/unix"
)

// cmdExec encodes addImmProgram into an anonymous, executable mapping and
// calls straight into it, round-tripping through the BaseAddr field so
// REL_APC-style absolute relocations (not used by this particular
// program, but wired for anything that grows to need one) would resolve
// against the page's real runtime address rather than 0.
func cmdExec(ctx *CommandContext, args []string) error {
	imm, err := parseImmFlag(args)
	if err != nil {
		return err
	}

	size := 4096
	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return &DemoError{Level: LevelFatal, Category: CategoryPlatform, Message: fmt.Sprintf("mmap: %v", err)}
	}
	defer unix.Munmap(region)

	s := dynasm.Init(int32(ctx.Config.MaxSection), nil)
	defer s.Free()
	s.Checks = ctx.Config.Checks
	s.BaseAddr = uintptr(unsafe.Pointer(&region[0]))

	s.Setup(addImmProgram)
	if st := s.Put(0, imm); !st.OK() {
		return engineError("put: %v", st.AsError())
	}
	if st := s.Link(); !st.OK() {
		return engineError("link: %v", st.AsError())
	}
	if st := s.Encode(region[:s.CodeSize()]); !st.OK() {
		return engineError("encode: %v", st.AsError())
	}

	if err := unix.Mprotect(region, unix.PROT_READ|unix.PROT_EXEC); err != nil {
		return &DemoError{Level: LevelFatal, Category: CategoryPlatform, Message: fmt.Sprintf("mprotect: %v", err)}
	}

	codePtr := unsafe.Pointer(&region[0])
	fn := *(*func(int32) int32)(unsafe.Pointer(&codePtr))
	result := fn(10)
	fmt.Printf("f(10) = %d\n", result)
	return nil
}
