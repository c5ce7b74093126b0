package routes_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/dasdy/vkeymap/model"
	"github.com/dasdy/vkeymap/web/routes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockComponent implements the templ.Component interface for testing.
type MockComponent struct {
	RenderFunc func(ctx context.Context, w io.Writer) error
}

func (m MockComponent) Render(ctx context.Context, w io.Writer) error {
	return m.RenderFunc(ctx, w)
}

func TestSafeRenderTemplate(t *testing.T) {
	t.Run("successful render", func(t *testing.T) {
		// Create a mock component that writes "Hello, World!" to the writer
		mockComponent := MockComponent{
			RenderFunc: func(_ context.Context, w io.Writer) error {
				_, err := w.Write([]byte("Hello, World!"))
				if err != nil {
					return fmt.Errorf("failed to write data: %w", err)
				}

				return nil
			},
		}

		// Create a test response recorder
		recorder := httptest.NewRecorder()

		// Call the function
		err := routes.SafeRenderTemplate(mockComponent, recorder)

		// Assert there's no error
		require.NoError(t, err)

		// Assert the response has the correct content type
		assert.Equal(t, "text/html; charset=UTF-8", recorder.Header().Get("Content-Type"))

		// Assert the response body is correct
		assert.Equal(t, "Hello, World!", recorder.Body.String())
	})

	t.Run("render error", func(t *testing.T) {
		// Create a mock component that returns an error
		expectedErr := errors.New("render error")
		mockComponent := MockComponent{
			RenderFunc: func(_ context.Context, _ io.Writer) error {
				return expectedErr
			},
		}

		// Create a test response recorder
		recorder := httptest.NewRecorder()

		// Call the function
		err := routes.SafeRenderTemplate(mockComponent, recorder)

		// Assert the error is returned and wrapped
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not render template")

		// Assert no response was written
		assert.Empty(t, recorder.Body.String())
	})
}

func TestInitItems(t *testing.T) {
	km := newTestKeymap(t)

	t.Run("empty counts", func(t *testing.T) {
		items, maxVal := routes.InitItems(km, nil, nil)

		assert.Equal(t, 0, maxVal)
		require.NotEmpty(t, items)

		for _, item := range items {
			assert.Equal(t, testLayout, item.Cell.Layout)
			assert.False(t, item.Zone.Empty(), "%+v", item.Cell)
			assert.Zero(t, item.Count)
			assert.False(t, item.Highlight)
		}

		q, ok := itemFor(items, cell(0, 1))
		require.True(t, ok)
		assert.Equal(t, "q", q.Label)
		assert.Equal(t, model.Point{X: 54, Y: 148}, q.Zone.Center())
	})

	t.Run("counts and highlight", func(t *testing.T) {
		highlight := cell(1, 1)
		counts := map[model.Cell]int{
			cell(0, 1): 3,
			cell(1, 1): 7,
			{Layout: "fr azerty", Col: 0, Row: 1}: 50,
		}

		items, maxVal := routes.InitItems(km, counts, &highlight)

		assert.Equal(t, 7, maxVal)

		q, _ := itemFor(items, cell(0, 1))
		assert.Equal(t, 3, q.Count)
		assert.False(t, q.Highlight)

		w, _ := itemFor(items, cell(1, 1))
		assert.Equal(t, 7, w.Count)
		assert.True(t, w.Highlight)
	})

	t.Run("hidden cells are skipped", func(t *testing.T) {
		items, _ := routes.InitItems(km, nil, nil)

		_, ok := itemFor(items, cell(0, 0))
		assert.False(t, ok, "the number row starts with an invisible cell")
	})
}
