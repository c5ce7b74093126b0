package layout

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dasdy/vkeymap/model"
	"gopkg.in/yaml.v3"
)

// familyFile is the YAML form of a family. Missing url or email bottom rows reuse
// the default one.
type familyFile struct {
	Info   `yaml:",inline"`
	Rows   [][]WKey `yaml:"rows"`
	Bottom struct {
		Default []WKey `yaml:"default"`
		URL     []WKey `yaml:"url,omitempty"`
		Email   []WKey `yaml:"email,omitempty"`
	} `yaml:"bottom"`
}

func toRow(cells []WKey, what string) (Row, error) {
	if len(cells) > model.GridColumns {
		return Row{}, fmt.Errorf("%w: %s has %d cells, at most %d allowed", ErrInvalidFamily, what, len(cells), model.GridColumns)
	}

	return row(cells...), nil
}

// LoadFamilyYAML reads a family description.
func LoadFamilyYAML(r io.Reader) (*Family, error) {
	var file familyFile

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	if err := decoder.Decode(&file); err != nil {
		return nil, fmt.Errorf("could not decode layout family: %w", err)
	}

	if len(file.Rows) != model.GridRows-1 {
		return nil, fmt.Errorf("%w: %s: expected %d rows above the bottom row, got %d",
			ErrInvalidFamily, file.Name, model.GridRows-1, len(file.Rows))
	}

	var rows [model.GridRows - 1]Row

	for y, cells := range file.Rows {
		r, err := toRow(cells, fmt.Sprintf("row %d", y))
		if err != nil {
			return nil, err
		}

		rows[y] = r
	}

	def, err := toRow(file.Bottom.Default, "default bottom row")
	if err != nil {
		return nil, err
	}

	url, email := def, def

	if len(file.Bottom.URL) > 0 {
		if url, err = toRow(file.Bottom.URL, "url bottom row"); err != nil {
			return nil, err
		}
	}

	if len(file.Bottom.Email) > 0 {
		if email, err = toRow(file.Bottom.Email, "email bottom row"); err != nil {
			return nil, err
		}
	}

	return NewFamily(file.Info, rows, def, url, email)
}

// WriteFamilyYAML writes f in the form LoadFamilyYAML reads.
func WriteFamilyYAML(w io.Writer, f *Family) error {
	file := familyFile{Info: f.Info()}

	for _, r := range f.rows {
		file.Rows = append(file.Rows, trimRow(r))
	}

	file.Bottom.Default = trimRow(f.bottoms[BottomDefault])
	file.Bottom.URL = trimRow(f.bottoms[BottomURL])
	file.Bottom.Email = trimRow(f.bottoms[BottomEmail])

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(file); err != nil {
		return fmt.Errorf("could not encode layout family %s: %w", f.Name(), err)
	}

	return encoder.Close()
}

// trimRow drops trailing hidden cells.
func trimRow(r Row) []WKey {
	n := len(r)
	for n > 0 && r[n-1].Equal(nokey) {
		n--
	}

	return append([]WKey{}, r[:n]...)
}

func loadFamilyFile(path string) (*Family, error) {
	file, err := OpenPath(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	f, err := LoadFamilyYAML(file)
	if err != nil {
		return nil, fmt.Errorf("could not load %s: %w", path, err)
	}

	return f, nil
}

// LoadDir registers every *.yaml or *.yml family found in dir. It stops at the
// first file that fails and reports how many families were added before it.
func LoadDir(r *Registry, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("could not read layouts directory %s: %w", dir, err)
	}

	loaded := 0

	for _, entry := range entries {
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}

		path := filepath.Join(dir, entry.Name())

		f, err := loadFamilyFile(path)
		if err != nil {
			return loaded, err
		}

		if err := r.Register(f); err != nil {
			return loaded, err
		}

		slog.InfoContext(logCtx, "Registered custom layout family", "name", f.Name(), "path", path)

		loaded++
	}

	return loaded, nil
}

// LoadRegistry returns the builtin families plus the custom ones in dir, frozen.
// An empty dir yields the shared builtin registry.
func LoadRegistry(dir string) (*Registry, error) {
	if dir == "" {
		return Builtin(), nil
	}

	r, err := NewBuiltinRegistry()
	if err != nil {
		return nil, err
	}

	if _, err := LoadDir(r, dir); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	r.Freeze()

	return r, nil
}
