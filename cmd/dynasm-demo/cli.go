// Completion: 100% - CLI dispatch complete
package main

import (
	"fmt"
	"os"
	"strconv"
)

// cli.go - subcommand dispatch for the dynasm demo, in the same style as
// a typical Go CLI: a default no-args help, a handful of named
// subcommands, and an unknown-command fallback.
//
// dynasm-demo assemble [-imm N]   encode addImmProgram and print its hex
// dynasm-demo exec [-imm N]       mmap, encode, and run it on this host
// dynasm-demo help | version

// CommandContext holds the execution context shared by every subcommand.
type CommandContext struct {
	Args   []string
	Config Config
}

// RunCLI is the demo's entry point once argv and the environment-derived
// Config have been read.
func RunCLI(args []string, cfg Config) error {
	ctx := &CommandContext{Args: args, Config: cfg}

	if len(args) == 0 {
		return cmdHelp(ctx)
	}

	switch args[0] {
	case "assemble":
		return cmdAssemble(ctx, args[1:])
	case "exec":
		return cmdExec(ctx, args[1:])
	case "help", "--help", "-h":
		return cmdHelp(ctx)
	case "version", "--version", "-V":
		fmt.Println(versionString)
		return nil
	default:
		return usageError("unknown command: %s\n\nRun 'dynasm-demo help' for usage information", args[0])
	}
}

// parseImmFlag extracts an optional "-imm N" pair, defaulting to 5.
func parseImmFlag(args []string) (int32, error) {
	for i := 0; i < len(args); i++ {
		if args[i] == "-imm" && i+1 < len(args) {
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return 0, usageError("invalid -imm value %q: %v", args[i+1], err)
			}
			return int32(n), nil
		}
	}
	return 5, nil
}

func cmdAssemble(ctx *CommandContext, args []string) error {
	imm, err := parseImmFlag(args)
	if err != nil {
		return err
	}
	code, err := assembleAddImm(ctx.Config, imm)
	if err != nil {
		return err
	}
	if ctx.Config.Verbose {
		fmt.Fprintf(os.Stderr, "assembled %d bytes for add-immediate #%d\n", len(code), imm)
	}
	for _, b := range code {
		fmt.Printf("%02x", b)
	}
	fmt.Println()
	return nil
}

func cmdHelp(ctx *CommandContext) error {
	fmt.Println(versionString)
	fmt.Println(`
Usage:
  dynasm-demo assemble [-imm N]   encode "return r0 + N" and print its hex
  dynasm-demo exec [-imm N]       mmap, encode, and call it on this host
  dynasm-demo version             print the version string
  dynasm-demo help                print this text

Configuration is read from the environment:
  DYNASM_CHECKS      enable range/undef validation (default true)
  DYNASM_MAXSECTION  number of output sections to reserve (default 1)
  DYNASM_VERBOSE     print a size summary to stderr after assemble (default false)`)
	return nil
}
