package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/configblock/cmd/configblock"
	"github.com/arthur-debert/configblock/internal/version"
)

func main() {
	rootCmd := configblock.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CONFIGBLOCK",
		Section: "1",
		Source:  "configblock " + version.Version,
		Manual:  "configblock manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
