package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tokri",
	Short: "Tokri — terminal point-of-sale simulator",
	Long:  "Tokri simulates a supermarket checkout counter: seed a catalogue, build a cart against live stock, and check out — all in one terminal session.",
}

func init() {
	rootCmd.AddCommand(posCmd)
	rootCmd.AddCommand(demoCmd)
}
