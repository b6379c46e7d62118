// Command glox is the CLI front-end for the Lox tree-walking interpreter.
// It is a thin boundary collaborator around the core: it loads source,
// drives scan/parse/resolve/execute, and prints diagnostics — none of the
// language semantics live here.
package main

import (
	"os"

	"github.com/cwbudde/glox/cmd/glox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
