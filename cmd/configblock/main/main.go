package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/configblock/cmd/configblock"
	"github.com/arthur-debert/configblock/pkg/errors"
	"github.com/arthur-debert/configblock/pkg/style"
)

func main() {
	rootCmd := configblock.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := style.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
			fmt.Fprintln(os.Stderr, style.GetStyle("Muted").Render(fmt.Sprintf("  code: %s", code)))
		}
		os.Exit(1)
	}
}
