package components

import (
	"fmt"

	"github.com/dasdy/vkeymap/model"
)

type PageType int

const (
	PageTypeStats PageType = iota
	PageTypeNeighbors
	PageTypeCorrections
)

func (p PageType) String() string {
	switch p {
	case PageTypeNeighbors:
		return "neighbors"
	case PageTypeCorrections:
		return "corrections"
	default:
		return "stats"
	}
}

// Item is one drawn key cell.
type Item struct {
	Cell      model.Cell
	Label     string
	Count     int
	Zone      model.Rect
	Highlight bool
}

// Connection is a line between two cells, weighted by how often they were tapped in a row.
type Connection struct {
	From  model.Cell
	To    model.Cell
	Count int
	// centers of both cells
	FromPoint model.Point
	ToPoint   model.Point
}

type RenderContext struct {
	Layout      string
	Width       int
	Height      int
	Items       []Item
	MaxVal      int
	Highlight   *model.Cell
	Connections []Connection
	Page        PageType
}

// ViewBoxSize returns the SVG view box covering the keyboard and every item.
func (rc *RenderContext) ViewBoxSize() string {
	width, height := rc.Width, rc.Height

	for _, item := range rc.Items {
		width = max(width, item.Zone.X+item.Zone.W)
		height = max(height, item.Zone.Y+item.Zone.H)
	}

	return fmt.Sprintf("0 0 %d %d", width, height)
}

// HeatColor maps count to a blue-green-red gradient scaled to maxVal.
func HeatColor(count, maxVal int) string {
	if maxVal <= 0 || count <= 0 {
		return "rgb(221, 221, 221)"
	}

	value := min(float64(count)/float64(maxVal), 1)

	var r, g, b float64

	if value <= 0.5 {
		ratio := value / 0.5
		g = 255 * ratio
		b = 255 * (1 - ratio)
	} else {
		ratio := (value - 0.5) / 0.5
		r = 255 * ratio
		g = 255 * (1 - ratio)
	}

	return fmt.Sprintf("rgb(%.0f, %.0f, %.0f)", r, g, b)
}

// ToTransform places an item's group at the top left corner of its zone.
func ToTransform(zone model.Rect) string {
	return fmt.Sprintf("translate(%d, %d)", zone.X, zone.Y)
}

// ItemClass returns the CSS classes of an item's group.
func ItemClass(item Item) string {
	if item.Highlight {
		return "key highlight"
	}

	return "key"
}

// ConnectionWidth scales the stroke of c to the largest count.
func (rc *RenderContext) ConnectionWidth(c Connection) int {
	if rc.MaxVal <= 0 {
		return 1
	}

	return 1 + 8*c.Count/rc.MaxVal
}
