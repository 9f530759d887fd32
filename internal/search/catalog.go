// Package search holds the per-session search state: the paginated result
// list and the title currently opened in the detail overlay.
//
// Both components own their state behind a mutex that is never held across a
// network call. Every request records the generation it was issued under and
// its result is applied only if no newer request has replaced it since.
package search

import (
	"context"

	"github.com/amaumene/moviehub/internal/models"
)

// Catalog is the remote title catalog.
type Catalog interface {
	Search(ctx context.Context, query string, page int) (*models.ResultPage, error)
	Lookup(ctx context.Context, id string) (*models.OMDbTitleResponse, error)
}
