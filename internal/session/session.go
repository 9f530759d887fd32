// Package session keeps the transient, per-visitor state: who logged in and
// their search page. Nothing here outlives the process.
package session

import (
	"time"

	"github.com/amaumene/moviehub/internal/models"
	"github.com/amaumene/moviehub/internal/search"
	"github.com/amaumene/moviehub/pkg/logger"
)

type Session struct {
	ID        string
	Username  string
	CreatedAt time.Time

	Search *search.Controller
	Detail *search.DetailViewer
}

func newSession(id, username string, catalog search.Catalog, log logger.Logger) *Session {
	detail := search.NewDetailViewer(catalog, log)
	return &Session{
		ID:        id,
		Username:  username,
		CreatedAt: time.Now(),
		Search:    search.NewController(catalog, detail, log),
		Detail:    detail,
	}
}

// View is everything a page needs to render the session.
type View struct {
	Username string             `json:"username"`
	Search   models.SearchState `json:"search"`
	Detail   models.DetailState `json:"detail"`
}

func (s *Session) View() View {
	return View{
		Username: s.Username,
		Search:   s.Search.Snapshot(),
		Detail:   s.Detail.Snapshot(),
	}
}
