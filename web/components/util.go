package components

import (
	"fmt"
	"net/url"

	"github.com/dasdy/vkeymap/model"
)

func cellQuery(cell model.Cell) string {
	q := url.Values{}
	q.Set("layout", cell.Layout)
	q.Set("col", fmt.Sprint(cell.Col))
	q.Set("row", fmt.Sprint(cell.Row))

	return q.Encode()
}

// LinkForCell returns the page a click on cell leads to.
func LinkForCell(cell model.Cell, pageType PageType) string {
	switch pageType {
	case PageTypeCorrections:
		return "/corrections?" + cellQuery(cell)
	default:
		return "/neighbors?" + cellQuery(cell)
	}
}

// SwitchModeLink returns the URL to switch between neighbors and corrections for cell.
func SwitchModeLink(cell model.Cell, currentPageType PageType) string {
	switch currentPageType {
	case PageTypeNeighbors:
		return "/corrections?" + cellQuery(cell)
	case PageTypeCorrections:
		return "/neighbors?" + cellQuery(cell)
	default:
		return "/"
	}
}

func SwitchModeButtonText(currentPageType PageType) string {
	switch currentPageType {
	case PageTypeNeighbors:
		return "View Corrections"
	case PageTypeCorrections:
		return "View Neighbors"
	default:
		return ""
	}
}
