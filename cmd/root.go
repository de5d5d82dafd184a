// Package cmd implements the command-line interface for huepick.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/huepick/huepick/color"
	"github.com/huepick/huepick/constant"
	"github.com/huepick/huepick/icon"
	"github.com/huepick/huepick/key"
	"github.com/huepick/huepick/log"
	"github.com/huepick/huepick/prefs"
	"github.com/huepick/huepick/style"
	"github.com/huepick/huepick/tui"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringP("store", "s", "", "Where the picked color is persisted (file, keyring)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("store", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{prefs.BackendFile, prefs.BackendKeyring}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.StorageBackend, rootCmd.PersistentFlags().Lookup("store")))

	rootCmd.PersistentFlags().BoolP("ephemeral", "e", false, "Keep the picked color in memory only")

	rootCmd.Flags().Bool("mouse", true, "Enable mouse clicks")
	lo.Must0(viper.BindPFlag(key.TUIMouse, rootCmd.Flags().Lookup("mouse")))
}

// rootCmd opens the full-screen color picker.
var rootCmd = &cobra.Command{
	Use:   constant.Huepick,
	Short: "Pick a color and keep it",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Pick a color and keep it"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(tui.Run(&tui.Options{Store: openStore(cmd)}))
	},
}

// openStore resolves the preference store selected by --ephemeral and storage.backend.
func openStore(cmd *cobra.Command) prefs.Store {
	if lo.Must(cmd.Flags().GetBool("ephemeral")) {
		return prefs.NewMemoryStore()
	}

	store, err := prefs.Open(viper.GetString(key.StorageBackend))
	handleErr(err)
	return store
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
