package cmd

import (
	"github.com/huepick/huepick/plain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(plainCmd)
}

// plainCmd runs the picker as a sequence of prompts instead of a full-screen interface.
var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Pick a color with simple prompts instead of the full-screen interface",
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(plain.Run(&plain.Options{Store: openStore(cmd)}))
	},
}
