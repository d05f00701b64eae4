// langcheck reports translation problems in flat key=value language files.
//
// Usage:
//
//	langcheck <subcommand> [flags] [args]
//
// Run "langcheck" with no arguments for a list of subcommands.
package main

import (
	"fmt"
	"os"
)

var subcommands = map[string]func([]string) error{
	"checklang":  runCheckLang,
	"missing":    runMissing,
	"stale":      runStale,
	"translate":  runTranslate,
	"summary":    runSummary,
	"references": runReferences,
	"unused":     runUnused,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches args to a subcommand and returns the process exit code.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	name := args[0]
	if name == "-h" || name == "--help" || name == "help" {
		printUsage()
		return 0
	}

	cmd, ok := subcommands[name]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown subcommand: %s\n\n", name)
		printUsage()
		return 1
	}

	if err := cmd(args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: langcheck <subcommand> [flags] [args]

Subcommands:
  checklang   Missing, bad format and untranslated keys for every locale
  missing     Registered keys absent from a target locale
  stale       Keys in a locale file absent from the reference file
  translate   Keys to translate in a locale, with reference values
  summary     Finding counts per locale
  references  Where each registered key constant is used (file:line)
  unused      Registered keys whose constant is never used

Common flags:
  --config     TOML config file (default .langcheck.toml if present)
  --root       Repository root (default: search upward for core/langs)
  --log-level  debug, info, warn or error

Run "langcheck <subcommand> -h" for subcommand-specific flags.`)
}
