// polyops CLI - polynomial evaluation, multiplication and Chebyshev generation.
package main

import (
	"errors"
	"os"

	"github.com/tuneinsight/polyops/cli/commands"
)

// ExitCoder is an interface for errors that have an exit code.
type ExitCoder interface {
	ExitCode() int
}

func main() {
	os.Exit(exitCode(commands.Execute()))
}

// exitCode maps the error returned by the CLI to the process exit code.
// Errors without an exit code are reported as validation failures.
func exitCode(err error) int {
	if err == nil {
		return commands.ExitSuccess
	}

	var ec ExitCoder
	if errors.As(err, &ec) {
		return ec.ExitCode()
	}

	return commands.ExitValidation
}
