package keymap_test

import (
	"testing"

	"github.com/dasdy/vkeymap/keymap"
	"github.com/dasdy/vkeymap/layout"
	"github.com/dasdy/vkeymap/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateLimitsIsIdempotent(t *testing.T) {
	km := newKeymap(t)

	v1 := km.UpdateLimits()
	rows := km.RowLimits()
	columns := km.ColumnLimits(2)

	assert.Equal(t, v1, km.UpdateLimits())
	assert.Equal(t, v1, km.LimitsVersion())
	assert.Equal(t, rows, km.RowLimits())
	assert.Equal(t, columns, km.ColumnLimits(2))

	km.SetRect(testRect)
	assert.Equal(t, v1, km.UpdateLimits(), "same rect")

	km.SetRect(model.Rect{W: 800, H: 300})
	assert.Equal(t, v1+1, km.UpdateLimits())
}

func TestLimitsFitTheRect(t *testing.T) {
	km := newKeymap(t)

	rows := km.RowLimits()
	assert.InDelta(t, 100, rows[0], 0.01)
	assert.InDelta(t, 500, rows[model.GridRows-1], 0.01)

	for y := range model.GridRows {
		columns := km.ColumnLimits(y)
		assert.InDelta(t, 1200, columns[model.GridColumns-1], 0.01, "row %d", y)
		assert.LessOrEqual(t, columns[model.GridColumns-1], float32(1200), "row %d", y)

		for x := 1; x < model.GridColumns; x++ {
			assert.GreaterOrEqual(t, columns[x], columns[x-1], "row %d column %d", y, x)
		}
	}
}

func TestRowHeight(t *testing.T) {
	km := newKeymap(t)
	version := km.UpdateLimits()

	km.SetRowHeight(7, 3)
	assert.Equal(t, version, km.UpdateLimits(), "invalid row ignored")

	km.SetRowHeight(4, 2)
	assert.Equal(t, version+1, km.UpdateLimits())

	rows := km.RowLimits()
	assert.InDelta(t, 500.0*4/6, rows[3], 0.01)
	assert.InDelta(t, 500, rows[4], 0.01)
}

func TestEmptyDimensionKeepsLimits(t *testing.T) {
	km := newKeymap(t)
	columns := km.ColumnLimits(1)

	km.SetRect(model.Rect{W: 0, H: 300})
	km.UpdateLimits()

	assert.Equal(t, columns, km.ColumnLimits(1))
	assert.InDelta(t, 300, km.RowLimits()[model.GridRows-1], 0.01)
}

// Cells of a row are contiguous and together span the whole keyboard width.
func TestZonesTileTheKeyboard(t *testing.T) {
	rect := model.Rect{X: 10, Y: 20, W: 1024, H: 400}
	registry := layout.Builtin()

	for _, name := range registry.Names() {
		t.Run(name, func(t *testing.T) {
			km := keymap.New()
			require.True(t, km.SetLayoutName(name) || name == layout.DefaultFamilyName)
			km.SetRect(rect)

			for y := range model.GridRows {
				first, _ := km.KeyZone(at(0, y))
				assert.Equal(t, rect.Left(), first.Left(), "row %d", y)

				previous := first
				for x := 1; x < model.GridColumns; x++ {
					zone, _ := km.KeyZone(at(x, y))
					assert.Equal(t, previous.Right()+1, zone.Left(), "row %d column %d", y, x)
					assert.Equal(t, previous.Top(), zone.Top(), "row %d column %d", y, x)
					previous = zone
				}

				assert.InDelta(t, rect.Right(), previous.Right(), 1, "row %d", y)
			}

			top, _ := km.KeyZone(at(0, 0))
			assert.Equal(t, rect.Top(), top.Top())

			for y := 1; y < model.GridRows; y++ {
				above, _ := km.KeyZone(at(0, y-1))
				zone, _ := km.KeyZone(at(0, y))
				assert.Equal(t, above.Bottom()+1, zone.Top(), "row %d", y)
			}

			bottom, _ := km.KeyZone(at(0, model.GridRows-1))
			assert.InDelta(t, rect.Bottom(), bottom.Bottom(), 1)
		})
	}
}

func TestKeyZoneKinds(t *testing.T) {
	km := newKeymap(t)

	_, kind := km.KeyZone(at(1, 1))
	assert.Equal(t, keymap.ZoneVisible, kind)

	_, kind = km.KeyZone(at(0, 2))
	assert.Equal(t, keymap.ZoneInvisible, kind)

	_, kind = km.KeyZone(at(11, 1))
	assert.Equal(t, keymap.ZoneNone, kind, "hidden cell has no width")

	zone, kind := km.KeyZone(at(12, 0))
	assert.Equal(t, keymap.ZoneNone, kind)
	assert.Equal(t, model.Rect{}, zone)

	assert.Equal(t, "invisible", keymap.ZoneInvisible.String())
}

func TestKeyZoneCoordinates(t *testing.T) {
	km := newKeymap(t)

	zone, kind := km.KeyZone(at(0, 1))
	require.Equal(t, keymap.ZoneVisible, kind)
	assert.Equal(t, model.RectFromCoords(0, 99, 108, 198), zone)
}
