package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/gitx-cli/gitx/cmd"
	"github.com/gitx-cli/gitx/internal/repository"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Passthrough invocations inherit git's exit status verbatim; git
		// already reported the failure on stderr.
		var exitErr *repository.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
