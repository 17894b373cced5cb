package main

import (
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/tokri/config"
	"github.com/shashiranjanraj/tokri/internal/pos"
)

// tokri demo — drive a scripted session over the sample catalogue so every
// operation can be seen without typing.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run a scripted checkout session against the sample catalogue",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}
		if !config.ColorEnabled() {
			color.NoColor = true
		}

		script := strings.Join([]string{
			"1",           // view products
			"2", "1", "2", // add 2x Bread
			"2", "2", "1", // add 1x Milk
			"4", "1", "3", // Bread quantity -> 3
			"5", "2", // remove Milk
			"3",         // view cart
			"6", "50.00", // checkout
			"7", // exit
		}, "\n") + "\n"

		return pos.New(strings.NewReader(script), os.Stdout, true).Run()
	},
}
