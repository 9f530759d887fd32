package session

import (
	"context"
	"time"

	"github.com/amaumene/moviehub/internal/cache"
	"github.com/amaumene/moviehub/internal/search"
	"github.com/amaumene/moviehub/pkg/logger"
	"github.com/google/uuid"
)

// Store holds live sessions in a bounded LRU whose entries expire after a
// period of inactivity.
type Store struct {
	sessions *cache.LRUCache
	catalog  search.Catalog
	logger   logger.Logger
}

func NewStore(catalog search.Catalog, capacity int, idleTTL time.Duration, log logger.Logger) *Store {
	if log == nil {
		log = logger.Discard()
	}
	sessions := cache.New(capacity, idleTTL)
	sessions.SetSliding(true)

	s := &Store{
		sessions: sessions,
		catalog:  catalog,
		logger:   log,
	}
	sessions.OnEvict(func(key string, value interface{}) {
		if sess, ok := value.(*Session); ok {
			s.logger.Debugf("[Session] expired session for %s", sess.Username)
		}
	})
	return s
}

// Login runs the login gate and, when it passes, opens a new session.
func (s *Store) Login(username, password string) (*Session, error) {
	if err := CheckCredentials(username, password); err != nil {
		return nil, err
	}

	sess := newSession(uuid.NewString(), username, s.catalog, s.logger)
	s.sessions.Set(sess.ID, sess)
	s.logger.Infof("[Session] %s logged in", username)
	return sess, nil
}

func (s *Store) Get(id string) (*Session, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := s.sessions.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*Session), true
}

// Logout destroys the session and everything it holds.
func (s *Store) Logout(id string) {
	if sess, ok := s.Get(id); ok {
		sess.Detail.Close()
		s.logger.Infof("[Session] %s logged out", sess.Username)
	}
	s.sessions.Delete(id)
}

func (s *Store) Len() int {
	return s.sessions.Len()
}

// StartCleanup evicts idle sessions every interval until ctx is done.
func (s *Store) StartCleanup(ctx context.Context, interval time.Duration) {
	s.sessions.StartCleanup(ctx, interval)
}
