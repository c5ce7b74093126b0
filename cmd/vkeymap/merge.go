package vkeymap

import (
	"fmt"
	"os"

	"github.com/dasdy/vkeymap/db"
	"github.com/spf13/cobra"
)

var (
	mergeInputs []string
	mergeOut    string
)

// mergeCmd represents the merge command.
var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge tap databases into one",
	Long:  `Given several tap databases, create a new one holding the union of their taps.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		if len(mergeInputs) == 0 {
			return fmt.Errorf("no input databases given")
		}

		if _, err := os.Stat(mergeOut); err == nil {
			return fmt.Errorf("output file %s already exists", mergeOut)
		}

		inputs := make([]*db.SQLiteStorage, 0, len(mergeInputs))

		defer func() {
			for _, input := range inputs {
				input.Close()
			}
		}()

		for _, fn := range mergeInputs {
			store, err := db.NewStorageFromPath(fn, true)
			if err != nil {
				return err
			}

			inputs = append(inputs, store)
		}

		output, err := db.NewStorageFromPath(mergeOut, false)
		if err != nil {
			return err
		}
		defer output.Close()

		return db.Merge(inputs, output)
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	mergeCmd.Flags().StringSliceVarP(
		&mergeInputs,
		"file",
		"f",
		[]string{},
		"List of databases to merge")

	mergeCmd.Flags().StringVarP(
		&mergeOut,
		"out",
		"o",
		"./merged.sqlite",
		"Output path for the merged database")
}
