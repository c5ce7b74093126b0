package vkeymap

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/dasdy/vkeymap/model"
	"github.com/dasdy/vkeymap/web/routes"
	"github.com/spf13/cobra"
)

var diamond bool

// lookupCmd represents the lookup command.
var lookupCmd = &cobra.Command{
	Use:   "lookup X Y [X Y...]",
	Short: "Resolve keyboard points to keys",
	Long: `Print, for each point given in keyboard pixels, the cell and key it hits on
the configured layout and the characters a touch there may have meant.`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 || len(args)%2 != 0 {
			return fmt.Errorf("expected pairs of coordinates, got %d arguments", len(args))
		}

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := newKeymap()
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())

		for i := 0; i < len(args); i += 2 {
			x, err := strconv.Atoi(args[i])
			if err != nil {
				return fmt.Errorf("invalid x %q: %w", args[i], err)
			}

			y, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("invalid y %q: %w", args[i+1], err)
			}

			if err := encoder.Encode(routes.LookupPoint(km, model.Point{X: x, Y: y}, diamond)); err != nil {
				return fmt.Errorf("could not write result: %w", err)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().BoolVar(&diamond, "diamond", true, "Use the diamond heuristic between rows")
}
