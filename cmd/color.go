package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/huepick/huepick/color"
	"github.com/huepick/huepick/icon"
	"github.com/huepick/huepick/key"
	"github.com/huepick/huepick/picker"
	"github.com/huepick/huepick/style"
	"github.com/invopop/jsonschema"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// colorOutput is what `color --json` prints.
type colorOutput struct {
	Color   string `json:"color" jsonschema:"description=Applied color as stored"`
	Hex     string `json:"hex,omitempty" jsonschema:"description=CSS value when the color is one of the menu colors"`
	Known   bool   `json:"known" jsonschema:"description=Whether the color is one of the menu colors"`
	Backend string `json:"backend" jsonschema:"enum=file,enum=keyring,enum=memory"`
}

func newColorOutput(page *picker.Page, backend string) colorOutput {
	out := colorOutput{Color: page.Applied(), Backend: backend}
	if c, ok := color.Lookup(page.Applied()); ok && c.Name == page.Applied() {
		out.Hex = c.Hex
		out.Known = true
	}
	return out
}

// resolveColor maps user input to a menu color. Only menu colors are accepted here.
func resolveColor(input string) (color.Choice, error) {
	if c, ok := color.Lookup(input); ok {
		return c, nil
	}

	closest := lo.MinBy(color.Names(), func(a, b string) bool {
		return levenshtein.Distance(input, a) < levenshtein.Distance(input, b)
	})
	return color.Choice{}, fmt.Errorf(
		"unknown color %s, did you mean %s?",
		style.Fg(color.Red)(input),
		style.Fg(color.Yellow)(closest),
	)
}

func completionColors(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	if toComplete == "" {
		return color.Names(), cobra.ShellCompDirectiveNoFileComp
	}
	return fuzzy.FindFold(toComplete, color.Names()), cobra.ShellCompDirectiveNoFileComp
}

func backendName(cmd *cobra.Command) string {
	if lo.Must(cmd.Flags().GetBool("ephemeral")) {
		return "memory"
	}
	return viper.GetString(key.StorageBackend)
}

func mountedPage(cmd *cobra.Command) *picker.Page {
	page, err := picker.New(openStore(cmd))
	handleErr(err)
	handleErr(page.Mount())
	return page
}

func init() {
	rootCmd.AddCommand(colorCmd)
	colorCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	colorCmd.SetOut(os.Stdout)
}

// colorCmd prints the persisted color.
var colorCmd = &cobra.Command{
	Use:   "color",
	Short: "Print the picked color",
	Long: `Print the picked color, falling back to red when nothing was picked yet.
Like opening the picker, this writes the resolved color back to the store.`,
	Run: func(cmd *cobra.Command, args []string) {
		page := mountedPage(cmd)

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			handleErr(encoder.Encode(newColorOutput(page, backendName(cmd))))
			return
		}

		cmd.Println(page.Caption())
		cmd.Println(style.Block(color.Swatch(page.Applied()), viper.GetInt(key.TUISwatchWidth), 1))
	},
}

func init() {
	colorCmd.AddCommand(colorSetCmd)
}

// colorSetCmd picks a color without opening the picker.
var colorSetCmd = &cobra.Command{
	Use:               "set [color]",
	Short:             "Pick one of red, blue, yellow, gray or green",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionColors,
	Example:           "  huepick color set yellow",
	Run: func(cmd *cobra.Command, args []string) {
		choice, err := resolveColor(args[0])
		handleErr(err)

		page := mountedPage(cmd)
		handleErr(page.SelectColor(choice.Name))

		cmd.Printf(
			"%s picked %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Swatch(choice.Name))(choice.Name),
		)
	},
}

func init() {
	colorCmd.AddCommand(colorSchemaCmd)
}

// colorSchemaCmd prints the JSON schema of `color --json`.
var colorSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the color --json output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.DoNotReference = true

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(reflector.Reflect(&colorOutput{})))
	},
}
