package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/glox/internal/diagnostics"
	"github.com/cwbudde/glox/internal/glox"
)

var (
	evalExpr   string
	dumpTokens bool
	dumpAST    bool
	noWarnings bool
	traceRun   bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lox program",
	Long: `Execute a Lox program from a file or inline expression.

Examples:
  # Run a script file
  glox run script.lox

  # Evaluate inline source
  glox run -e "print 1 + 2;"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline source instead of reading from a file")
	runCmd.Flags().BoolVar(&dumpTokens, "dump-tokens", false, "print the scanned tokens and exit")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed statement count and exit (debugging aid)")
	runCmd.Flags().BoolVar(&noWarnings, "no-warnings", false, "suppress resolver warnings")
	runCmd.Flags().BoolVar(&traceRun, "trace", false, "print the interpreter's run ID before executing")
}

func runScript(_ *cobra.Command, args []string) error {
	source, file, err := readInput(evalExpr, args)
	if err != nil {
		exitCode = ExitUsage
		return err
	}

	tokens, errs := glox.Scan(source, file)
	if len(errs) > 0 {
		reportAll(errs)
		exitCode = ExitScanParse
		return nil
	}

	if dumpTokens {
		for _, t := range tokens {
			fmt.Println(t.String())
		}
		return nil
	}

	stmts, errs := glox.ParseProgram(tokens, source, file)
	if len(errs) > 0 {
		reportAll(errs)
		exitCode = ExitScanParse
		return nil
	}

	if dumpAST {
		fmt.Printf("%d top-level statement(s)\n", len(stmts))
		return nil
	}

	result := glox.Resolve(stmts, source, file)
	if !noWarnings {
		reportAll(result.Warnings)
	}
	if result.HasErrors() {
		reportAll(result.Errors)
		exitCode = ExitResolve
		return nil
	}

	interp := glox.NewInterpreter(source, file)
	if traceRun {
		fmt.Fprintln(os.Stderr, "run ID:", interp.RunID)
	}
	if err := interp.Execute(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exitCode = ExitRuntime
		return nil
	}
	return nil
}

func readInput(evalExpr string, args []string) (source, file string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e for inline source")
}

// reportAll prints each diagnostic's full formatted form (source excerpt +
// caret) to stderr, separated by a blank line.
func reportAll(diags []*diagnostics.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d.Format())
		fmt.Fprintln(os.Stderr)
	}
}
