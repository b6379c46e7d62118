package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/glox/internal/glox"
	"github.com/cwbudde/glox/internal/interp/values"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Lox session",
	Long: `Start a read-eval-print loop. Each line is first tried as a bare
expression (its value is printed); if that fails to parse, the line is
retried as a statement sequence. Definitions and side effects persist
across lines within the same session.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed statement count for each line")
	replCmd.Flags().BoolVar(&noWarnings, "no-warnings", false, "suppress resolver warnings")
	replCmd.Flags().BoolVar(&traceRun, "trace", false, "print the session's run ID on startup")
}

func runRepl(_ *cobra.Command, _ []string) error {
	interp := glox.NewInterpreter("", "<repl>")
	scanner := bufio.NewScanner(os.Stdin)

	if traceRun {
		fmt.Fprintln(os.Stderr, "run ID:", interp.RunID)
	}
	fmt.Fprintln(os.Stdout, "glox REPL — Ctrl-D to exit")
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(os.Stdout)
			return nil
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		replEvalLine(interp, line)
	}
}

// replEvalLine implements the REPL's dual-mode parse: a bare expression is
// tried first so "1 + 2" prints 3 without a trailing "print" or ";"; if that
// fails to parse, the line is retried as a full statement sequence.
func replEvalLine(interp *glox.Interpreter, line string) {
	tokens, errs := glox.Scan(line, "<repl>")
	if len(errs) > 0 {
		reportAll(errs)
		return
	}

	if expr, exprErrs := glox.ParseExpression(tokens, line, "<repl>"); len(exprErrs) == 0 {
		result := glox.ResolveExpr(expr, line, "<repl>")
		if !noWarnings {
			reportAll(result.Warnings)
		}
		if result.HasErrors() {
			reportAll(result.Errors)
			return
		}
		v, err := interp.EvaluateExpression(expr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Fprintln(os.Stdout, values.Stringify(v))
		return
	}

	stmts, stmtErrs := glox.ParseProgram(tokens, line, "<repl>")
	if len(stmtErrs) > 0 {
		reportAll(stmtErrs)
		return
	}

	if dumpAST {
		fmt.Fprintf(os.Stdout, "%d statement(s)\n", len(stmts))
	}

	result := glox.Resolve(stmts, line, "<repl>")
	if !noWarnings {
		reportAll(result.Warnings)
	}
	if result.HasErrors() {
		reportAll(result.Errors)
		return
	}

	if err := interp.Execute(stmts); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
}
