package keymap

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/model"
)

// LayoutKey is one label of the layout snapshot, placed at its key center.
type LayoutKey struct {
	Label  string `json:"label"`
	Shift  bool   `json:"shift"`
	Symbol bool   `json:"symbol"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
}

// LayoutSnapshot lists the labels of every visible key for diagnostic tools.
type LayoutSnapshot struct {
	Layout string      `json:"layout"`
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Keys   []LayoutKey `json:"keys"`
}

// Snapshot returns the labels of the visible keys. Keys with a distinct alternate
// get a second entry, flagged symbol for letters and shift otherwise.
func (k *Keymap) Snapshot() LayoutSnapshot {
	snapshot := LayoutSnapshot{
		Layout: k.family.Name(),
		Width:  k.rect.W,
		Height: k.rect.H,
		Keys:   []LayoutKey{},
	}

	k.UpdateLimits()

	for y := range model.GridRows {
		for x := range model.GridColumns {
			zone, kind := k.KeyZone(model.GridCoord{X: x, Y: y})
			if kind != ZoneVisible {
				continue
			}

			center := zone.Center()
			wkey := k.WKey(x, y)

			snapshot.Keys = append(snapshot.Keys, LayoutKey{
				Label: k.KeyDisplayString(wkey.Key, true),
				X:     center.X,
				Y:     center.Y,
			})

			if wkey.Alt != keys.None && wkey.Alt != wkey.Key {
				letter := wkey.Key.IsASCIILetter()
				snapshot.Keys = append(snapshot.Keys, LayoutKey{
					Label:  k.KeyDisplayString(wkey.Alt, true),
					Shift:  !letter,
					Symbol: letter,
					X:      center.X,
					Y:      center.Y,
				})
			}
		}
	}

	return snapshot
}

// LayoutJSON returns Snapshot as JSON.
func (k *Keymap) LayoutJSON() ([]byte, error) {
	data, err := json.Marshal(k.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("could not encode layout %s: %w", k.family.Name(), err)
	}

	return data, nil
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" ?>` + "\n\n"

// Key rects in the layout file are shrunk by this many pixels on each side.
const xmlKeyInset = 6

type xmlKeyboard struct {
	XMLName      xml.Name `xml:"keyboard"`
	PrimaryID    string   `xml:"primaryId,attr"`
	SecondaryID  string   `xml:"secondaryId,attr"`
	LayoutWidth  int      `xml:"defaultLayoutWidth,attr"`
	LayoutHeight int      `xml:"defaultLayoutHeight,attr"`
	Area         xmlArea  `xml:"area"`
}

type xmlArea struct {
	ConditionValue int      `xml:"conditionValue,attr"`
	Keys           []xmlKey `xml:"key"`
}

type xmlKey struct {
	Label  string `xml:"keyLabel,attr"`
	Type   string `xml:"keyType,attr"`
	Name   string `xml:"keyName,attr,omitempty"`
	Left   string `xml:"keyLeft,attr"`
	Top    string `xml:"keyTop,attr"`
	Width  string `xml:"keyWidth,attr"`
	Height string `xml:"keyHeight,attr"`
}

func dp(v int) string { return fmt.Sprintf("%ddp", v) }

// WriteLayoutXML writes the character keys of the active layout, with rects
// relative to the keyboard, in the layout file format of the text prediction
// engine.
func (k *Keymap) WriteLayoutXML(w io.Writer) error {
	if k.rect.Empty() {
		return fmt.Errorf("could not write layout %s: %w", k.family.Name(), ErrInvalidRect)
	}

	k.UpdateLimits()

	info := k.family.Info()
	doc := xmlKeyboard{
		PrimaryID:    fmt.Sprintf("0x%02X", info.PrimaryID),
		SecondaryID:  fmt.Sprintf("0x%02X", info.SecondaryID>>8),
		LayoutWidth:  k.rect.W,
		LayoutHeight: k.rect.H,
	}

	for y := range model.GridRows {
		for x := range model.GridColumns {
			key := k.WKey(x, y).Key
			if !key.IsChar() {
				continue
			}

			zone, kind := k.KeyZone(model.GridCoord{X: x, Y: y})
			if kind != ZoneVisible {
				continue
			}

			r := zone.Translate(-k.rect.X, -k.rect.Y).Inset(xmlKeyInset)
			entry := xmlKey{
				Label:  string(key.Rune()),
				Type:   "nonRegional",
				Left:   dp(r.Left()),
				Top:    dp(r.Top()),
				Width:  dp(r.W),
				Height: dp(r.H),
			}

			switch {
			case key == keys.Space:
				entry.Type = "function"
				entry.Name = "ET9KEY_SPACE"
			case key.IsASCIILetter():
				entry.Type = "regional"
			}

			doc.Area.Keys = append(doc.Area.Keys, entry)
		}
	}

	if _, err := io.WriteString(w, xmlHeader); err != nil {
		return fmt.Errorf("could not write layout %s: %w", k.family.Name(), err)
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")

	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("could not write layout %s: %w", k.family.Name(), err)
	}

	_, err := io.WriteString(w, "\n")

	return err
}

// GenerateKeyboardLayout writes WriteLayoutXML output to path.
func (k *Keymap) GenerateKeyboardLayout(path string) error {
	if k.rect.Empty() {
		return fmt.Errorf("could not generate %s: %w", path, ErrInvalidRect)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create layout file: %w", err)
	}
	defer file.Close()

	if err := k.WriteLayoutXML(file); err != nil {
		return err
	}

	return file.Close()
}
