package layout

import (
	"slices"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/model"
)

// WKey is one weighted cell of the grid. A negative weight marks an invisible zone
// merged into a neighbor holding the same key, a zero weight hides the cell.
// Extended is the long-press list and must be treated as read-only.
type WKey struct {
	Weight   float32    `yaml:"w"`
	Key      keys.Key   `yaml:"key"`
	Alt      keys.Key   `yaml:"alt,omitempty"`
	Extended []keys.Key `yaml:"ext,omitempty,flow"`
}

type Row [model.GridColumns]WKey

type Grid [model.GridRows]Row

func (w WKey) Hidden() bool { return w.Weight == 0 }

func (w WKey) Invisible() bool { return w.Weight < 0 }

// SameKeys reports whether both cells carry the same codes and long-press list.
func (w WKey) SameKeys(o WKey) bool {
	return w.Key == o.Key && w.Alt == o.Alt && slices.Equal(w.Extended, o.Extended)
}

func (w WKey) Equal(o WKey) bool {
	return w.Weight == o.Weight && w.SameKeys(o)
}

// Page returns the code shown on the given page.
func (w WKey) Page(page model.LayoutPage) keys.Key {
	if page == model.PagePlain {
		return w.Key
	}

	return w.Alt
}

func key1(w float32, k keys.Key) WKey {
	return WKey{Weight: w, Key: k, Alt: k}
}

func key2(w float32, k, alt keys.Key) WKey {
	return WKey{Weight: w, Key: k, Alt: alt}
}

func key3(w float32, k, alt keys.Key, ext []keys.Key) WKey {
	return WKey{Weight: w, Key: k, Alt: alt, Extended: ext}
}

var nokey = WKey{}

func c(r rune) keys.Key { return keys.Char(r) }

func chars(runes ...rune) []keys.Key {
	result := make([]keys.Key, len(runes))
	for i, r := range runes {
		result[i] = keys.Char(r)
	}

	return result
}

// row pads cells with hidden keys up to a full row.
func row(cells ...WKey) Row {
	var r Row

	copy(r[:], cells)

	return r
}
