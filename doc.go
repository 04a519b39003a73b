// Completion: 100% - Package overview complete
// Package dynasm is the runtime half of a DynASM-style dynamic assembler
// targeting ARMv7-M Thumb-2, with VFP extensions for the ARMv7-A variant.
//
// A compile-time preprocessor (not part of this package) turns
// assembly-flavoured source into a static action list plus a sequence of
// Put calls carrying runtime operand values. This package consumes both:
// it resolves labels, computes branch displacements, packs immediates, and
// produces the final byte image a host can copy into executable memory.
//
// Usage follows a fixed lifecycle: Init, any number of SetupGlobal/GrowPC,
// Setup, then any number of Put calls, then Link, then Encode, then Free.
// A single State must not be used from more than one goroutine at a time.
package dynasm
