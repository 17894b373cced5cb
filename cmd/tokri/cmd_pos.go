package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/tokri/config"
	"github.com/shashiranjanraj/tokri/internal/pos"
)

var useDefaultCatalog bool

// tokri pos — run an interactive checkout session.
var posCmd = &cobra.Command{
	Use:   "pos",
	Short: "Start an interactive checkout session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if !config.ColorEnabled() {
			color.NoColor = true
		}
		return pos.New(os.Stdin, os.Stdout, useDefaultCatalog).Run()
	},
}

func init() {
	posCmd.Flags().BoolVar(&useDefaultCatalog, "default-catalog", false,
		"skip product setup and sell from the sample catalogue")
}
