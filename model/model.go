package model

import (
	"time"
)

const (
	GridColumns = 12
	GridRows    = 5
)

type Point struct {
	X int
	Y int
}

// Rect is a pixel rectangle. Right and Bottom are inclusive.
type Rect struct {
	X, Y, W, H int
}

// RectFromCoords builds a rect from inclusive edges.
func RectFromCoords(left, top, right, bottom int) Rect {
	return Rect{X: left, Y: top, W: right - left + 1, H: bottom - top + 1}
}

func (r Rect) Left() int   { return r.X }
func (r Rect) Top() int    { return r.Y }
func (r Rect) Right() int  { return r.X + r.W - 1 }
func (r Rect) Bottom() int { return r.Y + r.H - 1 }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

func (r Rect) Center() Point {
	return Point{X: (r.Left() + r.Right()) / 2, Y: (r.Top() + r.Bottom()) / 2}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Top() && p.Y <= r.Bottom()
}

func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Inset shrinks every edge by d pixels.
func (r Rect) Inset(d int) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// GridCoord addresses a cell as (column, row).
type GridCoord struct {
	X int
	Y int
}

// Outside means "not on the keyboard".
var Outside = GridCoord{X: -1, Y: -1}

// ResizeHandleCoord is the pseudo-cell of the resize handle, right of the top row.
var ResizeHandleCoord = GridCoord{X: GridColumns, Y: 0}

func (c GridCoord) Valid() bool {
	return c.X >= 0 && c.X < GridColumns && c.Y >= 0 && c.Y < GridRows
}

type FieldType int

const (
	FieldText FieldType = iota
	FieldPassword
	FieldSearch
	FieldRange
	FieldColor
	FieldEmail
	FieldURL
	FieldPhone
	FieldNumber
)

var fieldTypeNames = map[FieldType]string{
	FieldText:     "text",
	FieldPassword: "password",
	FieldSearch:   "search",
	FieldRange:    "range",
	FieldColor:    "color",
	FieldEmail:    "email",
	FieldURL:      "url",
	FieldPhone:    "phone",
	FieldNumber:   "number",
}

func (f FieldType) String() string {
	if s, ok := fieldTypeNames[f]; ok {
		return s
	}

	return "unknown"
}

// ParseFieldType accepts the names returned by String. Unknown names are text fields.
func ParseFieldType(s string) FieldType {
	for k, v := range fieldTypeNames {
		if v == s {
			return k
		}
	}

	return FieldText
}

type FieldFlags uint32

const (
	FieldFlagEmoticons FieldFlags = 1 << iota
	FieldFlagAutoCap
)

type FieldActions uint32

const (
	FieldActionNext FieldActions = 1 << iota
	FieldActionPrevious
)

// EditorState describes the focused text field. It is compared by value.
type EditorState struct {
	Type          FieldType
	Flags         FieldFlags
	Actions       FieldActions
	EnterKeyLabel string
}

type ShiftMode int

const (
	ShiftOff ShiftMode = iota
	ShiftOnce
	ShiftCapsLock
)

type SymbolMode int

const (
	SymbolOff SymbolMode = iota
	SymbolLock
)

type LayoutPage int

const (
	PagePlain LayoutPage = iota
	PageAlternate
)

type TabAction int

const (
	TabActionTab TabAction = iota
	TabActionNext
	TabActionPrevious
)

// KeyboardCombo is one user-selected layout and language pair.
type KeyboardCombo struct {
	Layout   string `json:"layout"`
	Language string `json:"language"`
}

// TouchEvent is a raw touch sample in keyboard pixel space.
type TouchEvent struct {
	X       int
	Y       int
	Pressed bool
}

// Tap is a resolved touch, as recorded while recording is on.
type Tap struct {
	X      int
	Y      int
	Col    int
	Row    int
	Key    string
	Layout string
}

type TapWithTimestamp struct {
	Tap
	Timestamp time.Time
}

// Cell addresses a key cell of one layout family.
type Cell struct {
	Layout string
	Col    int
	Row    int
}

func (t Tap) Cell() Cell { return Cell{Layout: t.Layout, Col: t.Col, Row: t.Row} }

// Adjacent reports whether o touches c, diagonals included.
func (c Cell) Adjacent(o Cell) bool {
	if c == o || c.Layout != o.Layout {
		return false
	}

	dc, dr := c.Col-o.Col, c.Row-o.Row

	return dc >= -1 && dc <= 1 && dr >= -1 && dr <= 1
}

// TapPair counts taps on To that came right after a tap on From.
type TapPair struct {
	From  Cell
	To    Cell
	Count int
}

type MinimalTap struct {
	Layout string
	Col    int
	Row    int
	Count  int
}
