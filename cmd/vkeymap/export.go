package vkeymap

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/layout"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportAll    bool
	exportOut    string
)

var formatExtensions = map[string]string{
	"json": ".json",
	"xml":  ".xml",
	"yaml": ".yaml",
}

// writeLayout writes the active family of km in format.
func writeLayout(w io.Writer, km *keymap.Keymap, format string) error {
	switch format {
	case "json":
		data, err := km.LayoutJSON()
		if err != nil {
			return err
		}

		_, err = w.Write(append(data, '\n'))

		return err
	case "xml":
		return km.WriteLayoutXML(w)
	case "yaml":
		return layout.WriteFamilyYAML(w, km.Family())
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func exportFileName(family, format string) string {
	return strings.ReplaceAll(family, " ", "_") + formatExtensions[format]
}

func exportAllLayouts(km *keymap.Keymap, dir, format string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("could not create %s: %w", dir, err)
	}

	families := km.Registry().Names()
	bar := progressbar.Default(int64(len(families)), "Exporting layouts...")

	for _, name := range families {
		km.SetLayoutFamily(km.Registry().Find(name, true))

		path := filepath.Join(dir, exportFileName(name, format))

		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", path, err)
		}

		err = writeLayout(file, km, format)
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}

		if err != nil {
			return fmt.Errorf("could not export %s: %w", name, err)
		}

		_ = bar.Add(1)
	}

	log.Printf("Exported %d layouts to %s\n", len(families), dir)

	return nil
}

// exportCmd represents the export command.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export layouts",
	Long: `Export the configured layout, or every layout with --all.
Formats: json (key labels at their centers), xml (layout file of the text
prediction engine), yaml (the family definition).`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, ok := formatExtensions[exportFormat]; !ok {
			return fmt.Errorf("unknown format %q", exportFormat)
		}

		km, err := newKeymap()
		if err != nil {
			return err
		}

		if exportAll {
			if exportOut == "" {
				exportOut = "."
			}

			return exportAllLayouts(km, exportOut, exportFormat)
		}

		if exportOut == "" {
			return writeLayout(cmd.OutOrStdout(), km, exportFormat)
		}

		file, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("could not create %s: %w", exportOut, err)
		}
		defer file.Close()

		if err := writeLayout(file, km, exportFormat); err != nil {
			return err
		}

		return file.Close()
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "Output format: json, xml or yaml")
	exportCmd.Flags().BoolVar(&exportAll, "all", false, "Export every layout, one file each")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file, or directory with --all (default stdout)")
}
