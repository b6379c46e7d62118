package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes follow spec.md §6's CLI surface convention.
const (
	ExitUsage     = 64
	ExitScanParse = 65
	ExitResolve   = 1
	ExitRuntime   = 70
)

var rootCmd = &cobra.Command{
	Use:   "glox",
	Short: "glox is a tree-walking interpreter for Lox",
	Long: `glox is a Go implementation of Lox, the small dynamically-typed
scripting language from "Crafting Interpreters": first-class functions,
closures, single-inheritance classes, and lexically-scoped variables.`,
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return ExitUsage
	}
	return exitCode
}

// exitCode is set by subcommands that need to signal a specific exit code
// (scan/parse/resolve/runtime failure) rather than a cobra usage error.
var exitCode int
