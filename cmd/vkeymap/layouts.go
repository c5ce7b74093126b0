package vkeymap

import (
	"fmt"
	"text/tabwriter"

	"github.com/dasdy/vkeymap/layout"
	"github.com/spf13/cobra"
)

var dumpFamily string

// layoutsCmd represents the layouts command.
var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "List layout families",
	Long: `List builtin and custom layout families with their default language.
With --dump, print one family in the YAML form read from the layouts directory.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		registry, err := loadRegistry()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if dumpFamily != "" {
			family := registry.Find(dumpFamily, true)
			if family == nil {
				return fmt.Errorf("%q: %w", dumpFamily, layout.ErrUnknownFamily)
			}

			return layout.WriteFamilyYAML(out, family)
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "LAYOUT\tLANGUAGE\tNUMLOCK")

		for _, name := range registry.Names() {
			info := registry.Find(name, true).Info()
			fmt.Fprintf(w, "%s\t%s\t%t\n", name, info.DefaultLanguage, info.NeedNumLock)
		}

		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)

	layoutsCmd.Flags().StringVar(&dumpFamily, "dump", "", "Print this family as YAML")
}
