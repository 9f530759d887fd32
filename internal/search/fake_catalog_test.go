package search

import (
	"context"
	"fmt"
	"sync"

	"github.com/amaumene/moviehub/internal/models"
)

type searchCall struct {
	query string
	page  int
}

// fakeCatalog serves canned pages and titles. A channel registered in gates
// blocks the matching call until it is closed.
type fakeCatalog struct {
	mu       sync.Mutex
	pages    map[string]map[int]*models.ResultPage
	errs     map[string]map[int]error
	titles   map[string]*models.OMDbTitleResponse
	titleErr map[string]error
	gates    map[string]chan struct{}
	calls    []searchCall
	lookups  []string
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		pages:    map[string]map[int]*models.ResultPage{},
		errs:     map[string]map[int]error{},
		titles:   map[string]*models.OMDbTitleResponse{},
		titleErr: map[string]error{},
		gates:    map[string]chan struct{}{},
	}
}

func (f *fakeCatalog) addPage(query string, page, total int, items ...models.ResultItem) {
	if f.pages[query] == nil {
		f.pages[query] = map[int]*models.ResultPage{}
	}
	f.pages[query][page] = &models.ResultPage{Items: items, TotalCount: total, PageNumber: page}
}

func (f *fakeCatalog) failPage(query string, page int, err error) {
	if f.errs[query] == nil {
		f.errs[query] = map[int]error{}
	}
	f.errs[query][page] = err
}

// gate makes the next call keyed by key block until release is called.
func (f *fakeCatalog) gate(key string) (release func()) {
	ch := make(chan struct{})
	f.mu.Lock()
	f.gates[key] = ch
	f.mu.Unlock()
	return func() { close(ch) }
}

func (f *fakeCatalog) wait(key string) {
	f.mu.Lock()
	ch := f.gates[key]
	f.mu.Unlock()
	if ch != nil {
		<-ch
	}
}

func (f *fakeCatalog) Search(ctx context.Context, query string, page int) (*models.ResultPage, error) {
	f.mu.Lock()
	f.calls = append(f.calls, searchCall{query, page})
	f.mu.Unlock()

	f.wait(fmt.Sprintf("s:%s:%d", query, page))

	if err := f.errs[query][page]; err != nil {
		return nil, err
	}
	if p := f.pages[query][page]; p != nil {
		return p, nil
	}
	return &models.ResultPage{Items: []models.ResultItem{}, PageNumber: page}, nil
}

func (f *fakeCatalog) Lookup(ctx context.Context, id string) (*models.OMDbTitleResponse, error) {
	f.mu.Lock()
	f.lookups = append(f.lookups, id)
	f.mu.Unlock()

	f.wait("i:" + id)

	if err := f.titleErr[id]; err != nil {
		return nil, err
	}
	if t := f.titles[id]; t != nil {
		return t, nil
	}
	return nil, fmt.Errorf("unknown id %s", id)
}

func (f *fakeCatalog) searchCalls() []searchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]searchCall(nil), f.calls...)
}

func items(prefix string, from, to int) []models.ResultItem {
	out := make([]models.ResultItem, 0, to-from+1)
	for i := from; i <= to; i++ {
		out = append(out, models.ResultItem{
			ID:        fmt.Sprintf("%s%04d", prefix, i),
			Title:     fmt.Sprintf("Title %d", i),
			Year:      "2005",
			PosterURL: "N/A",
			Kind:      "movie",
		})
	}
	return out
}
