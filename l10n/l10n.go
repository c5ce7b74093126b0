// Package l10n translates the few fixed strings drawn on key caps.
package l10n

import (
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dasdy/vkeymap/logging"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed strings.yaml
var builtinStrings []byte

var logCtx = logging.PackageCtx("l10n")

// Table holds the strings of one locale. Missing entries localize to the key itself.
type Table struct {
	locale  string
	strings map[string]string
}

// Locale returns the locale entry the table was built from, or "" if none matched.
func (t *Table) Locale() string { return t.locale }

func (t *Table) Localize(key string) string {
	if v, ok := t.strings[key]; ok && v != "" {
		return v
	}

	return key
}

func (t *Table) Len() int { return len(t.strings) }

// normalize turns "fr_FR" and "fr-fr" into "fr-fr".
func normalize(locale string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
}

// baseLanguage returns the language subtag of a locale, or "" if it does not parse.
func baseLanguage(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return ""
	}

	base, _ := tag.Base()

	return base.String()
}

// Load reads a YAML document mapping locales to string tables and returns the
// table matching locale: the exact locale if present, else its language.
func Load(r io.Reader, locale string) (*Table, error) {
	var all map[string]map[string]string

	if err := yaml.NewDecoder(r).Decode(&all); err != nil && err != io.EOF {
		return nil, fmt.Errorf("could not decode string tables: %w", err)
	}

	byLocale := make(map[string]map[string]string, len(all))
	for k, v := range all {
		byLocale[normalize(k)] = v
	}

	wanted := normalize(locale)
	candidates := []string{wanted}

	if base := baseLanguage(wanted); base != "" && base != wanted {
		candidates = append(candidates, base)
	}

	for _, candidate := range candidates {
		if table, ok := byLocale[candidate]; ok {
			return &Table{locale: candidate, strings: table}, nil
		}
	}

	slog.DebugContext(logCtx, "No strings for locale", "locale", locale)

	return &Table{strings: map[string]string{}}, nil
}

// LoadFile is Load over a file.
func LoadFile(path, locale string) (*Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open strings file: %w", err)
	}
	defer file.Close()

	return Load(file, locale)
}

// Builtin returns the table of locale from the strings shipped with the binary.
func Builtin(locale string) *Table {
	table, err := Load(strings.NewReader(string(builtinStrings)), locale)
	if err != nil {
		panic(err)
	}

	return table
}

// ForConfig returns the strings of locale from path, or the builtin strings when
// path is empty.
func ForConfig(path, locale string) (*Table, error) {
	if path == "" {
		return Builtin(locale), nil
	}

	return LoadFile(path, locale)
}
