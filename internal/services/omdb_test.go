package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/amaumene/moviehub/pkg/httputil"
	"github.com/amaumene/moviehub/pkg/logger"
	"github.com/amaumene/moviehub/pkg/ratelimiter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "a1b2c3d4"

// omdbStub mimics the two OMDb endpoints for the "batman" catalog of 57 titles.
func omdbStub(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apikey") != testKey {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"Response":"False","Error":"Invalid API key!"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")

		switch {
		case q.Get("s") == "batman":
			page, _ := strconv.Atoi(q.Get("page"))
			fmt.Fprintf(w, `{"Search":[{"Title":"Batman Page %d","Year":"2005","imdbID":"tt%07d","Type":"movie","Poster":"N/A"}],"totalResults":"57","Response":"True"}`, page, page)
		case q.Get("s") == "garbage":
			fmt.Fprint(w, `{"Search":[],"totalResults":"many","Response":"True"}`)
		case q.Get("s") == "truncated":
			fmt.Fprint(w, `{"Search":[`)
		case q.Get("s") != "":
			fmt.Fprint(w, `{"Response":"False","Error":"Movie not found!"}`)
		case q.Get("i") == "tt0372784":
			assert.Equal(t, "full", q.Get("plot"))
			fmt.Fprint(w, `{"Title":"Batman Begins","Year":"2005","Rated":"PG-13","Genre":"Action, Crime, Drama","Director":"Christopher Nolan","BoxOffice":"N/A","imdbID":"tt0372784","imdbRating":"8.2","Ratings":[{"Source":"Internet Movie Database","Value":"8.2/10"}],"Response":"True"}`)
		default:
			fmt.Fprint(w, `{"Response":"False","Error":"Incorrect IMDb ID."}`)
		}
	}))
}

func newTestClient(t *testing.T, key string) *OMDb {
	srv := omdbStub(t)
	t.Cleanup(srv.Close)
	return NewOMDb(key, srv.URL, httputil.NewDefaultHTTPClient(), logger.Discard())
}

func TestSearchParsesPage(t *testing.T) {
	o := newTestClient(t, testKey)

	page, err := o.Search(context.Background(), "batman", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 57, page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "tt0000002", page.Items[0].ID)
	assert.Equal(t, "Batman Page 2", page.Items[0].Title)
	assert.Equal(t, "N/A", page.Items[0].PosterURL)
	assert.Equal(t, "movie", page.Items[0].Kind)
}

func TestSearchNotFound(t *testing.T) {
	o := newTestClient(t, testKey)

	_, err := o.Search(context.Background(), "zzzznomovie", 1)

	require.True(t, apperrors.IsType(err, apperrors.ErrorTypeNotFound))
	var ce *apperrors.CatalogError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "Movie not found!", ce.Message)
}

func TestSearchTransportFailures(t *testing.T) {
	o := newTestClient(t, testKey)
	for _, q := range []string{"garbage", "truncated"} {
		_, err := o.Search(context.Background(), q, 1)
		assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport), q)
	}
}

func TestSearchBadKeyIsTransport(t *testing.T) {
	o := newTestClient(t, "zzzzzzzz")

	_, err := o.Search(context.Background(), "batman", 1)

	require.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport))
	var statusErr *httputil.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusUnauthorized, statusErr.StatusCode)
}

func TestSearchUnreachable(t *testing.T) {
	srv := omdbStub(t)
	srv.Close()
	o := NewOMDb(testKey, srv.URL, nil, logger.Discard())

	_, err := o.Search(context.Background(), "batman", 1)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport))
}

func TestSearchWithoutKey(t *testing.T) {
	o := newTestClient(t, "")

	_, err := o.Search(context.Background(), "batman", 1)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeAPIKeyMissing))
}

func TestSearchBlankQuery(t *testing.T) {
	o := newTestClient(t, testKey)
	_, err := o.Search(context.Background(), "  ", 1)
	assert.ErrorIs(t, err, apperrors.ErrEmptyQuery)
}

func TestLookup(t *testing.T) {
	o := newTestClient(t, testKey)

	title, err := o.Lookup(context.Background(), "tt0372784")
	require.NoError(t, err)

	assert.True(t, title.OK())
	assert.Equal(t, "Batman Begins", title.Title)
	assert.Equal(t, "Christopher Nolan", title.Director)
	require.Len(t, title.Ratings, 1)
	assert.Equal(t, "8.2/10", title.Ratings[0].Value)
}

func TestLookupNotOK(t *testing.T) {
	o := newTestClient(t, testKey)

	_, err := o.Lookup(context.Background(), "tt9999999")
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeDetailFetch))
	assert.Contains(t, err.Error(), "Incorrect IMDb ID.")
}

func TestRateLimiterCancellation(t *testing.T) {
	o := newTestClient(t, testKey)
	rl := ratelimiter.NewTokenBucket(1, 1)
	o.SetRateLimiter(rl)
	require.True(t, rl.TakeToken())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := o.Search(ctx, "batman", 1)
	assert.True(t, apperrors.IsType(err, apperrors.ErrorTypeTransport))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRedactHidesKey(t *testing.T) {
	o := NewOMDb(testKey, "https://www.omdbapi.com/", nil, logger.Discard())
	u := o.buildSearchURL("batman", 1)

	assert.Contains(t, u, "apikey="+testKey)
	assert.NotContains(t, o.redact(u), testKey)
	assert.Equal(t, "https://www.omdbapi.com/?apikey="+testKey+"&page=1&s=batman", u)
}
