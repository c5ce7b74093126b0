package components_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/dasdy/vkeymap/model"
	"github.com/dasdy/vkeymap/web/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToTransform(t *testing.T) {
	tests := []struct {
		name string
		zone model.Rect
		want string
	}{
		{"origin", model.Rect{}, "translate(0, 0)"},
		{"offset", model.Rect{X: 108, Y: 100, W: 108, H: 100}, "translate(108, 100)"},
		{"negative", model.Rect{X: -5, Y: -1}, "translate(-5, -1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, components.ToTransform(tt.zone))
		})
	}
}

func TestHeatColor(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		maxVal int
		want   string
	}{
		{"no taps", 0, 10, "rgb(221, 221, 221)"},
		{"empty max", 3, 0, "rgb(221, 221, 221)"},
		{"coldest", 1, 1000, "rgb(0, 1, 254)"},
		{"middle", 5, 10, "rgb(0, 255, 0)"},
		{"hottest", 10, 10, "rgb(255, 0, 0)"},
		{"clamped", 20, 10, "rgb(255, 0, 0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, components.HeatColor(tt.count, tt.maxVal))
		})
	}
}

func TestRenderContext_ViewBoxSize(t *testing.T) {
	tests := []struct {
		name     string
		context  components.RenderContext
		wantSize string
	}{
		{
			name:     "empty keyboard",
			context:  components.RenderContext{},
			wantSize: "0 0 0 0",
		},
		{
			name:     "keyboard without items",
			context:  components.RenderContext{Width: 1200, Height: 500},
			wantSize: "0 0 1200 500",
		},
		{
			name: "items within bounds",
			context: components.RenderContext{
				Width: 1200, Height: 500,
				Items: []components.Item{{Zone: model.Rect{X: 100, Y: 100, W: 100, H: 100}}},
			},
			wantSize: "0 0 1200 500",
		},
		{
			name: "items exceeding bounds",
			context: components.RenderContext{
				Width: 300, Height: 200,
				Items: []components.Item{{Zone: model.Rect{X: 250, Y: 150, W: 100, H: 100}}},
			},
			wantSize: "0 0 350 250",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSize, tt.context.ViewBoxSize())
		})
	}
}

func TestLinks(t *testing.T) {
	cell := model.Cell{Layout: "us qwerty", Col: 1, Row: 2}

	assert.Equal(t, "/neighbors?col=1&layout=us+qwerty&row=2", components.LinkForCell(cell, components.PageTypeStats))
	assert.Equal(t, "/corrections?col=1&layout=us+qwerty&row=2", components.LinkForCell(cell, components.PageTypeCorrections))
	assert.Equal(t, "/corrections?col=1&layout=us+qwerty&row=2", components.SwitchModeLink(cell, components.PageTypeNeighbors))
	assert.Equal(t, "/", components.SwitchModeLink(cell, components.PageTypeStats))
	assert.Equal(t, "View Neighbors", components.SwitchModeButtonText(components.PageTypeCorrections))
	assert.Empty(t, components.SwitchModeButtonText(components.PageTypeStats))
}

func TestHeatMapRender(t *testing.T) {
	highlight := model.Cell{Layout: "us qwerty", Col: 0, Row: 1}
	rc := components.RenderContext{
		Layout: "us qwerty",
		Width:  1200,
		Height: 500,
		Items: []components.Item{
			{Cell: highlight, Label: "q", Count: 4, Zone: model.Rect{X: 0, Y: 100, W: 108, H: 96}, Highlight: true},
			{Cell: model.Cell{Layout: "us qwerty", Col: 1, Row: 1}, Label: "<w>", Count: 0, Zone: model.Rect{X: 108, Y: 100, W: 108, H: 96}},
		},
		MaxVal:    4,
		Highlight: &highlight,
		Connections: []components.Connection{
			{From: highlight, To: model.Cell{Layout: "us qwerty", Col: 1, Row: 1}, Count: 4, FromPoint: model.Point{X: 54, Y: 148}, ToPoint: model.Point{X: 162, Y: 148}},
		},
		Page: components.PageTypeNeighbors,
	}

	var buf bytes.Buffer
	require.NoError(t, components.HeatMap(&rc).Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "<title>us qwerty: neighbors</title>")
	assert.Contains(t, html, `class="key highlight"`)
	assert.Contains(t, html, "&lt;w&gt;")
	assert.Contains(t, html, `fill="rgb(255, 0, 0)"`)
	assert.Contains(t, html, `x1="54" y1="148" x2="162" y2="148" stroke-width="9"`)
	assert.Contains(t, html, "View Corrections")
	assert.Contains(t, html, `href="/corrections?col=0&amp;layout=us+qwerty&amp;row=1"`)
}

func TestItemClass(t *testing.T) {
	assert.Equal(t, "key", components.ItemClass(components.Item{}))
	assert.Equal(t, "key highlight", components.ItemClass(components.Item{Highlight: true}))
}

func TestConnectionWidth(t *testing.T) {
	rc := components.RenderContext{MaxVal: 8}

	assert.Equal(t, 1, rc.ConnectionWidth(components.Connection{Count: 0}))
	assert.Equal(t, 5, rc.ConnectionWidth(components.Connection{Count: 4}))
	assert.Equal(t, 9, rc.ConnectionWidth(components.Connection{Count: 8}))

	empty := components.RenderContext{}
	assert.Equal(t, 1, empty.ConnectionWidth(components.Connection{Count: 3}))
}

func TestPageRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, components.Page("a & b").Render(context.Background(), &buf))

	html := buf.String()
	assert.Contains(t, html, "<title>a &amp; b</title>")
	assert.Contains(t, html, `<a href="/layouts">Layouts</a>`)
	assert.Contains(t, html, "</body></html>")
}

func TestLayoutListRender(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, components.LayoutList([]string{"us qwerty", "fr azerty"}, "fr azerty").Render(context.Background(), &buf))

	assert.Contains(t, buf.String(), "<li>us qwerty</li>")
	assert.Contains(t, buf.String(), "<li><b>fr azerty</b></li>")
}
