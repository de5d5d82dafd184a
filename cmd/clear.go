package cmd

import (
	"fmt"

	"github.com/huepick/huepick/filesystem"
	"github.com/huepick/huepick/icon"
	"github.com/huepick/huepick/util"
	"github.com/huepick/huepick/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a disposable artifact. The preferences file is deliberately not one.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"log files", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}
}

// clearCmd removes disposable artifacts such as logs.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove disposable artifacts such as logs",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}

			anyCleared = true
			location := target.location()
			var removed int
			if exists := lo.Must(filesystem.API().Exists(location)); exists {
				entries, err := filesystem.API().ReadDir(location)
				handleErr(err)
				removed = len(entries)
				handleErr(util.Delete(location))
			}
			fmt.Printf(
				"%s %s cleared, %s removed\n",
				icon.Get(icon.Success),
				util.Capitalize(target.name),
				util.Quantify(removed, "file", "files"),
			)
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
