package search

import (
	"context"
	"strings"
	"sync"

	"github.com/amaumene/moviehub/internal/constants"
	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/amaumene/moviehub/internal/models"
	"github.com/amaumene/moviehub/pkg/logger"
)

// DetailViewer owns the title shown in the detail overlay.
type DetailViewer struct {
	catalog Catalog
	logger  logger.Logger

	mu         sync.Mutex
	generation uint64
	selected   *models.DetailRecord
	loading    bool
	notice     string
}

func NewDetailViewer(catalog Catalog, log logger.Logger) *DetailViewer {
	if log == nil {
		log = logger.Discard()
	}
	return &DetailViewer{
		catalog: catalog,
		logger:  log.WithPrefix("Detail"),
	}
}

// Open looks up id and makes it the active selection. A failed lookup leaves
// nothing selected and sets a short notice. Returns ErrStale when Close or a
// later Open happened while the lookup was in flight.
func (d *DetailViewer) Open(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return apperrors.NewValidationError("title id must not be empty")
	}

	d.mu.Lock()
	d.generation++
	gen := d.generation
	d.selected = nil
	d.notice = ""
	d.loading = true
	d.mu.Unlock()

	resp, err := d.catalog.Lookup(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.generation {
		d.logger.Debugf("discarding lookup of %s: superseded", id)
		return apperrors.ErrStale
	}
	d.loading = false

	if err != nil {
		d.notice = constants.MsgDetailUnavailable
		d.logger.Warnf("lookup of %s failed: %v", id, err)
		return nil
	}

	d.selected = NormalizeDetail(resp)
	if d.selected.ID == "" {
		d.selected.ID = id
	}
	return nil
}

// Close clears the selection. Any lookup still in flight is ignored when it
// completes.
func (d *DetailViewer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.generation++
	d.selected = nil
	d.loading = false
	d.notice = ""
}

func (d *DetailViewer) Snapshot() models.DetailState {
	d.mu.Lock()
	defer d.mu.Unlock()

	state := models.DetailState{Loading: d.loading, Notice: d.notice}
	if d.selected != nil {
		rec := *d.selected
		rec.Genres = append([]string(nil), d.selected.Genres...)
		rec.Ratings = append([]models.Rating(nil), d.selected.Ratings...)
		state.Selected = &rec
	}
	return state
}
