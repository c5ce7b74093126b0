package layout

import (
	"errors"
	"fmt"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/model"
)

var ErrInvalidFamily = errors.New("invalid layout family")

// BottomRowContext selects which bottom row template a text field uses.
type BottomRowContext int

const (
	BottomDefault BottomRowContext = iota
	BottomURL
	BottomEmail
)

func (b BottomRowContext) String() string {
	switch b {
	case BottomURL:
		return "url"
	case BottomEmail:
		return "email"
	default:
		return "default"
	}
}

// ContextFor returns the bottom row a field type asks for.
func ContextFor(field model.FieldType) BottomRowContext {
	switch field {
	case model.FieldEmail:
		return BottomEmail
	case model.FieldURL:
		return BottomURL
	default:
		return BottomDefault
	}
}

// Info is the metadata of a family.
type Info struct {
	Name               string `yaml:"name"`
	DefaultLanguage    string `yaml:"language"`
	PrimaryID          uint16 `yaml:"primaryId"`
	SecondaryID        uint16 `yaml:"secondaryId"`
	SymbolKeyLabel     string `yaml:"symbolLabel"`
	NoLanguageKeyLabel string `yaml:"noLanguageLabel"`
	TabX               int    `yaml:"tabX"`
	SymbolX            int    `yaml:"symbolX"`
	ReturnX            int    `yaml:"returnX"`
	ReturnY            int    `yaml:"returnY"`
	NeedNumLock        bool   `yaml:"needNumLock"`
}

// Family is an immutable language layout: four fixed rows plus one template per
// bottom row context. Families live in a Registry for the whole process.
type Family struct {
	info    Info
	rows    [model.GridRows - 1]Row
	bottoms [3]Row
}

func NewFamily(info Info, rows [model.GridRows - 1]Row, defaultBottom, urlBottom, emailBottom Row) (*Family, error) {
	f := &Family{
		info:    info,
		rows:    rows,
		bottoms: [3]Row{defaultBottom, urlBottom, emailBottom},
	}

	if err := f.validate(); err != nil {
		return nil, err
	}

	return f, nil
}

func mustFamily(info Info, rows [model.GridRows - 1]Row, defaultBottom, urlBottom, emailBottom Row) *Family {
	f, err := NewFamily(info, rows, defaultBottom, urlBottom, emailBottom)
	if err != nil {
		panic(err)
	}

	return f
}

func (f *Family) validate() error {
	if f.info.Name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidFamily)
	}

	if f.info.SymbolX < 0 || f.info.SymbolX+1 >= model.GridColumns {
		return fmt.Errorf("%w: %s: symbol column %d leaves no room for the language key", ErrInvalidFamily, f.info.Name, f.info.SymbolX)
	}

	if f.info.TabX < 0 || f.info.TabX >= model.GridColumns {
		return fmt.Errorf("%w: %s: tab column %d out of range", ErrInvalidFamily, f.info.Name, f.info.TabX)
	}

	if !(model.GridCoord{X: f.info.ReturnX, Y: f.info.ReturnY}).Valid() {
		return fmt.Errorf("%w: %s: return key (%d,%d) out of range", ErrInvalidFamily, f.info.Name, f.info.ReturnX, f.info.ReturnY)
	}

	if f.info.ReturnY < model.GridRows-1 && f.rows[f.info.ReturnY][f.info.ReturnX].Key != keys.Return {
		return fmt.Errorf("%w: %s: no return key at (%d,%d)", ErrInvalidFamily, f.info.Name, f.info.ReturnX, f.info.ReturnY)
	}

	check := func(where string, r Row) error {
		for x, cell := range r {
			if cell.Hidden() && (cell.Key != keys.None || cell.Alt != keys.None) {
				return fmt.Errorf("%w: %s: %s column %d has zero weight but carries %s", ErrInvalidFamily, f.info.Name, where, x, cell.Key)
			}
		}

		return nil
	}

	for y, r := range f.rows {
		if err := check(fmt.Sprintf("row %d", y), r); err != nil {
			return err
		}
	}

	for i, r := range f.bottoms {
		if err := check(BottomRowContext(i).String()+" bottom row", r); err != nil {
			return err
		}
	}

	return nil
}

func (f *Family) Info() Info { return f.info }

func (f *Family) Name() string { return f.info.Name }

func (f *Family) NeedNumLock() bool { return f.info.NeedNumLock }

// WKey returns the template cell. The last row is the default bottom row.
func (f *Family) WKey(x, y int) WKey {
	if y == model.GridRows-1 {
		return f.bottoms[BottomDefault][x]
	}

	return f.rows[y][x]
}

// BottomRow returns a copy of the template for ctx.
func (f *Family) BottomRow(ctx BottomRowContext) Row {
	if ctx < BottomDefault || ctx > BottomEmail {
		ctx = BottomDefault
	}

	return f.bottoms[ctx]
}

// Grid returns a copy of the whole template grid with the default bottom row.
func (f *Family) Grid() Grid {
	var g Grid

	copy(g[:], f.rows[:])
	g[model.GridRows-1] = f.bottoms[BottomDefault]

	return g
}
