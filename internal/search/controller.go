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

// Controller owns the query, the accumulated result list and the loading and
// error status of one session's search page.
type Controller struct {
	catalog Catalog
	detail  *DetailViewer
	logger  logger.Logger

	mu          sync.Mutex
	generation  uint64
	query       string
	page        int
	results     []models.ResultItem
	total       int
	status      models.SearchStatus
	loading     bool
	loadingMore bool
	errMsg      string
}

func NewController(catalog Catalog, detail *DetailViewer, log logger.Logger) *Controller {
	if log == nil {
		log = logger.Discard()
	}
	if detail == nil {
		detail = NewDetailViewer(catalog, log)
	}
	return &Controller{
		catalog: catalog,
		detail:  detail,
		logger:  log.WithPrefix("Search"),
		results: []models.ResultItem{},
		status:  models.StatusIdle,
	}
}

// Detail returns the viewer item activation is delegated to.
func (c *Controller) Detail() *DetailViewer {
	return c.detail
}

// Search starts a fresh query lifecycle. A blank query returns ErrEmptyQuery
// and leaves the state untouched. Catalog failures are turned into state and
// not returned; ErrStale is returned when a newer search replaced this one
// before it completed.
func (c *Controller) Search(ctx context.Context, query string) error {
	q := strings.TrimSpace(query)
	if q == "" {
		return apperrors.ErrEmptyQuery
	}

	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.query = q
	c.page = 1
	c.results = []models.ResultItem{}
	c.total = 0
	c.errMsg = ""
	c.status = models.StatusSearching
	c.loading = true
	c.loadingMore = false
	c.mu.Unlock()

	c.logger.Debugf("searching for '%s' (generation %d)", q, gen)
	page, err := c.catalog.Search(ctx, q, 1)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		c.logger.Debugf("discarding result for '%s': superseded", q)
		return apperrors.ErrStale
	}
	defer func() { c.loading = false }()

	switch {
	case err == nil && len(page.Items) > 0:
		c.total = page.TotalCount
		c.results = appendCapped(c.results, page.Items, c.total)
		c.status = models.StatusPopulated
		c.logger.Infof("'%s': %d of %d results", q, len(c.results), c.total)

	case err == nil:
		c.status = models.StatusEmpty
		c.errMsg = constants.MsgNoResults

	case apperrors.IsType(err, apperrors.ErrorTypeNotFound):
		c.status = models.StatusEmpty
		c.errMsg = notFoundMessage(err)
		c.logger.Debugf("'%s': %s", q, c.errMsg)

	default:
		c.status = models.StatusNetworkError
		c.errMsg = constants.MsgNetworkError
		c.logger.Errorf("search for '%s' failed: %v", q, err)
	}
	return nil
}

// LoadMore requests the next page for the current query and appends it.
// It is a no-op when every result is already loaded, when no populated search
// exists, or when a load-more for the current query is still in flight.
// Failures only clear the loading-more flag; the error is returned for the
// caller to log and never reaches the visible state.
func (c *Controller) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.status != models.StatusPopulated || len(c.results) >= c.total || c.loadingMore {
		c.mu.Unlock()
		return nil
	}
	gen := c.generation
	next := c.page + 1
	q := c.query
	c.loadingMore = true
	c.mu.Unlock()

	c.logger.Debugf("loading page %d for '%s'", next, q)
	page, err := c.catalog.Search(ctx, q, next)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return apperrors.ErrStale
	}
	c.loadingMore = false

	if err != nil {
		c.logger.Warnf("page %d for '%s' failed: %v", next, q, err)
		return err
	}

	if len(page.Items) == 0 {
		// Upstream reported more results than it will serve.
		c.total = len(c.results)
		return nil
	}

	c.results = appendCapped(c.results, page.Items, c.total)
	c.page = next
	return nil
}

// SelectItem opens the detail view for id.
func (c *Controller) SelectItem(ctx context.Context, id string) error {
	return c.detail.Open(ctx, id)
}

// Snapshot returns a copy of the current state.
func (c *Controller) Snapshot() models.SearchState {
	c.mu.Lock()
	defer c.mu.Unlock()

	results := make([]models.ResultItem, len(c.results))
	copy(results, c.results)

	return models.SearchState{
		Query:        c.query,
		Page:         c.page,
		Results:      results,
		TotalResults: c.total,
		Status:       c.status,
		Loading:      c.loading,
		LoadingMore:  c.loadingMore,
		ErrorMessage: c.errMsg,
	}
}

// appendCapped appends items to dst without letting it grow past limit.
func appendCapped(dst, items []models.ResultItem, limit int) []models.ResultItem {
	room := limit - len(dst)
	if room <= 0 {
		return dst
	}
	if len(items) > room {
		items = items[:room]
	}
	return append(dst, items...)
}

func notFoundMessage(err error) string {
	var ce *apperrors.CatalogError
	if apperrors.As(err, &ce) && strings.TrimSpace(ce.Message) != "" {
		return ce.Message
	}
	return constants.MsgNoResults
}
