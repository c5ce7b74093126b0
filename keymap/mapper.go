package keymap

import (
	"strings"
	"unicode"

	"github.com/dasdy/vkeymap/keys"
	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/model"
)

// Zone classifies the pixel area of a cell.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneVisible
	// ZoneInvisible cells take touches for a visible neighbor with the same key.
	ZoneInvisible
)

func (z Zone) String() string {
	switch z {
	case ZoneVisible:
		return "visible"
	case ZoneInvisible:
		return "invisible"
	default:
		return "none"
	}
}

// Diamond tuning. Higher reduce factors move the center of an edge row away from
// its inner neighbor, shrinking its effective height.
const (
	reduceFactorTopRow         = 4
	reduceFactorBottomRow      = 3
	reduceFactorBottomRowSpace = 2

	// A touch this fraction of a row height away from the row center considers
	// the neighbor row.
	rowCenterSlackDivisor = 10
	// Horizontal distance only counts when candidate centers are further apart.
	closeCentersPx = 2
)

// Importance of a candidate key when the diamond heuristic compares distances.
const (
	importanceSmallKey = 0.3
	importanceDefault  = 1.0
)

var keyImportance = map[keys.Key]float32{
	keys.Hide:  0.4,
	keys.Tab:   0.7,
	keys.Space: 0.9,
}

func importance(w layout.WKey) float32 {
	if w.Weight < 1 {
		return importanceSmallKey
	}

	if v, ok := keyImportance[w.Key]; ok {
		return v
	}

	return importanceDefault
}

func square(x int) int { return x * x }

func closeDistance(d, distance int) bool {
	if d < 0 {
		d = -d
	}

	return d <= distance
}

// xCenterOfKey returns the horizontal center of a cell in keyboard space. Keys
// wider than one unit follow the touch, keeping half a unit from their edges.
func (k *Keymap) xCenterOfKey(touchX, x, y int, weight float32) int {
	left := 0
	if x > 0 {
		left = int(k.hlimits[y][x-1])
	}

	right := int(k.hlimits[y][x])
	center := (left + right) / 2

	if weight > 1 {
		radius := int(float32(right-left) / (weight * 2))
		if touchX < center {
			center = max(touchX, left+radius)
		} else {
			center = min(touchX, right-radius)
		}
	}

	return center
}

// yCenterOfRow returns the vertical center used to compare a touch with row y.
func (k *Keymap) yCenterOfRow(y int, key keys.Key) int {
	top := 0
	if y > 0 {
		top = int(k.vlimits[y-1])
	}

	lower := int(k.vlimits[y])

	switch {
	case y == 0:
		return lower / reduceFactorTopRow
	case y < model.GridRows-1:
		return (top + lower) / 2
	case key == keys.Space:
		return (top + (reduceFactorBottomRowSpace-1)*lower) / reduceFactorBottomRowSpace
	default:
		return (top + (reduceFactorBottomRow-1)*lower) / reduceFactorBottomRow
	}
}

// locate finds the cell under a point given in keyboard space, one-based as the
// limits are right and bottom edges.
func (k *Keymap) locate(locx, locy int) (int, int, bool) {
	y := 0
	for y < model.GridRows && float32(locy) > k.vlimits[y] {
		y++
	}

	if y >= model.GridRows {
		return 0, 0, false
	}

	x := 0
	for x < model.GridColumns && float32(locx) > k.hlimits[y][x] {
		x++
	}

	if x >= model.GridColumns {
		return 0, 0, false
	}

	return x, y, true
}

// columnInRow finds the column of row oy under locx, starting from column x.
func (k *Keymap) columnInRow(locx, x, oy int) int {
	ox := x
	for ox > 0 && float32(locx) < k.hlimits[oy][ox] {
		ox--
	}

	for ox < model.GridColumns && float32(locx) > k.hlimits[oy][ox] {
		ox++
	}

	return ox
}

// PointToKeyboard returns the cell under a pixel point, or model.Outside. With
// diamond set, touches far from the row center may go to the closer key of the
// neighbor row.
func (k *Keymap) PointToKeyboard(p model.Point, diamond bool) model.GridCoord {
	k.UpdateLimits()

	locx := p.X - k.rect.X + 1
	locy := p.Y - k.rect.Y + 1

	x, y, ok := k.locate(locx, locy)
	if !ok {
		return model.Outside
	}

	changed := false
	wkey := k.WKey(x, y)

	if diamond {
		centerY := k.yCenterOfRow(y, wkey.Key)

		var previous float32
		if y > 0 {
			previous = k.vlimits[y-1]
		}

		slack := int((k.vlimits[y] - previous) / rowCenterSlackDivisor)

		oy := -1
		if y > 0 && locy < centerY-slack {
			oy = y - 1
		} else if y < model.GridRows-1 && locy > centerY+slack {
			oy = y + 1
		}

		if oy >= 0 {
			if ox := k.columnInRow(locx, x, oy); ox < model.GridColumns {
				other := k.WKey(ox, oy)

				centerX := k.xCenterOfKey(locx, x, y, wkey.Weight)
				centerOX := k.xCenterOfKey(locx, ox, oy, other.Weight)
				centerOY := k.yCenterOfRow(oy, other.Key)

				firstD := square(locy - centerY)
				otherD := square(locy - centerOY)

				if !closeDistance(centerX-centerOX, closeCentersPx) {
					firstD += square(locx - centerX)
					otherD += square(locx - centerOX)
				}

				if float32(otherD)*importance(wkey) < float32(firstD)*importance(other) {
					x, y, changed = ox, oy, true
				}
			}
		}
	}

	if !changed && wkey.Invisible() {
	search:
		for xo := max(0, x-1); xo <= x+1 && xo < model.GridColumns; xo++ {
			for yo := max(0, y-1); yo <= y+1 && yo < model.GridRows; yo++ {
				if (xo != x || yo != y) && k.WKey(xo, yo).Key == wkey.Key {
					x, y = xo, yo

					break search
				}
			}
		}
	}

	return model.GridCoord{X: x, Y: y}
}

// KeyZone returns the pixel rectangle of a cell and whether it is drawn.
func (k *Keymap) KeyZone(c model.GridCoord) (model.Rect, Zone) {
	if !c.Valid() {
		return model.Rect{}, ZoneNone
	}

	k.UpdateLimits()

	var leftEdge, topEdge float32
	if c.X > 0 {
		leftEdge = k.hlimits[c.Y][c.X-1]
	}

	if c.Y > 0 {
		topEdge = k.vlimits[c.Y-1]
	}

	left := int(float32(k.rect.X) + leftEdge)
	right := int(float32(k.rect.X) + k.hlimits[c.Y][c.X] - 1)
	top := int(float32(k.rect.Y) + topEdge)
	bottom := int(float32(k.rect.Y) + k.vlimits[c.Y] - 1)

	zone := model.RectFromCoords(left, top, right, bottom)

	switch {
	case right <= left:
		return zone, ZoneNone
	case k.weight(c.X, c.Y) < 0:
		return zone, ZoneInvisible
	default:
		return zone, ZoneVisible
	}
}

// Map resolves a cell to the key it types with the current modifiers.
func (k *Keymap) Map(c model.GridCoord) keys.Key {
	if c == model.ResizeHandleCoord {
		return keys.ResizeHandle
	}

	if !c.Valid() {
		return keys.None
	}

	wkey := k.WKey(c.X, c.Y)
	numLock := k.numLock || (k.family.NeedNumLock() && k.shiftMode == model.ShiftCapsLock)

	switch {
	case numLock && wkey.Alt.IsDigit():
		if !k.IsShiftActive() {
			return wkey.Alt
		}
	case wkey.Key.IsLetter():
		// Letters switch to their alternate with the symbol page, everything
		// else with shift.
		if k.page == model.PageAlternate {
			return wkey.Alt
		}
	case k.IsShiftActive():
		return wkey.Alt
	}

	return wkey.Key
}

// MapPage returns the key of a cell on the given page, ignoring modifiers.
func (k *Keymap) MapPage(c model.GridCoord, page model.LayoutPage) keys.Key {
	if !c.Valid() {
		return keys.None
	}

	return k.WKey(c.X, c.Y).Page(page)
}

// ExtendedChars returns the long-press list of a cell. Letters have none while
// the symbol page is active.
func (k *Keymap) ExtendedChars(c model.GridCoord) []keys.Key {
	if !c.Valid() {
		return nil
	}

	wkey := k.WKey(c.X, c.Y)
	if wkey.Key.IsASCIILetter() && k.IsSymbolActive() {
		return nil
	}

	return wkey.Extended
}

// PointToKeys lists the lowercase characters a touch may have meant: the key hit,
// its neighbor on the touched side, and the same on the closest other row.
func (k *Keymap) PointToKeys(p model.Point) string {
	k.UpdateLimits()

	locx := p.X - k.rect.X + 1
	locy := p.Y - k.rect.Y + 1

	x, y, ok := k.locate(locx, locy)
	if !ok {
		return ""
	}

	var sb strings.Builder

	k.writeXKeys(&sb, locx, x, y)

	// Candidates never include space, so the space key center does not apply.
	centerY := k.yCenterOfRow(y, keys.None)

	oy := -1
	if locy < centerY {
		if y > 0 {
			oy = y - 1
		}
	} else if y < model.GridRows-1 {
		oy = y + 1
	}

	if oy >= 0 {
		if ox := k.columnInRow(locx, x, oy); ox < model.GridColumns {
			k.writeXKeys(&sb, locx, ox, oy)
		}
	}

	return sb.String()
}

func (k *Keymap) writeXKeys(sb *strings.Builder, locx, x, y int) {
	add := func(key keys.Key) {
		if key.IsChar() && key != keys.Space {
			sb.WriteRune(unicode.ToLower(key.Rune()))
		}
	}

	key := k.Map(model.GridCoord{X: x, Y: y})
	add(key)

	ox := x + 1
	if locx < k.xCenterOfKey(locx, x, y, 1) {
		ox = x - 1
	}

	if ox >= 0 && ox < model.GridColumns {
		if other := k.Map(model.GridCoord{X: ox, Y: y}); other != key {
			add(other)
		}
	}
}
