package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/hookup/cmd/hookup"
	"github.com/arthur-debert/hookup/pkg/bootstrap"
	"github.com/arthur-debert/hookup/pkg/style"
)

func main() {
	rootCmd := hookup.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))

		// Propagate the failing command's exit status
		os.Exit(bootstrap.ExitCode(err))
	}
}
