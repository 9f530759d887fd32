package tui

import (
	"fmt"

	"github.com/amaumene/moviehub/internal/models"
	"github.com/amaumene/moviehub/internal/search"
)

// resultItem adapts a search result to the list delegate.
type resultItem struct {
	item models.ResultItem
}

func (i resultItem) Title() string       { return search.Nice(i.item.Title) }
func (i resultItem) Description() string { return fmt.Sprintf("%s · %s", search.Nice(i.item.Year), search.Nice(i.item.Kind)) }
func (i resultItem) FilterValue() string { return i.item.Title }

type searchDoneMsg struct{ err error }

type loadMoreDoneMsg struct{ err error }

type detailDoneMsg struct{ err error }
