package keymap

import (
	"github.com/dasdy/vkeymap/model"
)

// limitsEpsilon nudges sums up so the last boundary never exceeds the rect.
const limitsEpsilon = 0.0001

func abs32(f float32) float32 {
	if f < 0 {
		return -f
	}

	return f
}

// UpdateLimits recomputes the pixel boundaries of rows and columns if anything
// they depend on changed, and returns the limits version. Each recomputation
// bumps the version. An empty dimension keeps the previous boundaries.
func (k *Keymap) UpdateLimits() int {
	if !k.limitsDirty {
		return k.limitsVersion
	}

	if width := k.rect.W; width > 0 {
		for y := range model.GridRows {
			var sum float32 = limitsEpsilon

			for x := range model.GridColumns {
				sum += abs32(k.weight(x, y))
				k.hlimits[y][x] = sum
			}

			for x := range model.GridColumns {
				k.hlimits[y][x] = k.hlimits[y][x] * float32(width) / sum
			}
		}
	}

	if height := k.rect.H; height > 0 {
		var sum float32 = limitsEpsilon

		for y := range model.GridRows {
			sum += float32(k.rowHeight[y])
			k.vlimits[y] = sum
		}

		for y := range model.GridRows {
			k.vlimits[y] = k.vlimits[y] * float32(height) / sum
		}
	}

	k.limitsDirty = false
	k.limitsVersion++

	return k.limitsVersion
}

// LimitsVersion returns the current version without recomputing.
func (k *Keymap) LimitsVersion() int { return k.limitsVersion }

// ColumnLimits returns the right edge offsets of the columns of row y.
func (k *Keymap) ColumnLimits(y int) [model.GridColumns]float32 {
	k.UpdateLimits()

	return k.hlimits[y]
}

// RowLimits returns the bottom edge offsets of the rows.
func (k *Keymap) RowLimits() [model.GridRows]float32 {
	k.UpdateLimits()

	return k.vlimits
}
