package main

import (
	"os"

	"github.com/arthur-debert/buildplan/internal/cli"
	"github.com/arthur-debert/buildplan/pkg/ui"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		ui.NewPrinter(ui.FormatAuto, os.Stderr).Error(err)
		os.Exit(1)
	}
}
