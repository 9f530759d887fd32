package middleware

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amaumene/moviehub/internal/constants"
	"github.com/amaumene/moviehub/internal/session"
	"github.com/amaumene/moviehub/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProtectedRouter(store *session.Store) *gin.Engine {
	r := gin.New()
	r.Use(LoadSession(store))
	protected := r.Group("/", RequireLogin())
	protected.GET("/search", func(c *gin.Context) {
		sess, _ := CurrentSession(c)
		c.String(http.StatusOK, sess.Username)
	})
	protected.GET("/api/state", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestRequireLoginRedirectsPages(t *testing.T) {
	store := session.NewStore(nil, 10, time.Hour, logger.Discard())
	r := newProtectedRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/search", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestRequireLoginRejectsAPI(t *testing.T) {
	store := session.NewStore(nil, 10, time.Hour, logger.Discard())
	r := newProtectedRouter(store)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/state", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "login required")
}

func TestLoadSessionFromCookie(t *testing.T) {
	store := session.NewStore(nil, 10, time.Hour, logger.Discard())
	sess, err := store.Login("ada", "secret")
	require.NoError(t, err)
	r := newProtectedRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: sess.ID})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada", w.Body.String())
}

func TestLoadSessionIgnoresUnknownCookie(t *testing.T) {
	store := session.NewStore(nil, 10, time.Hour, logger.Discard())
	r := newProtectedRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/search", nil)
	req.AddCookie(&http.Cookie{Name: constants.SessionCookieName, Value: "forged"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/api/state", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/api/state", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestGzip(t *testing.T) {
	r := gin.New()
	r.Use(Gzip())
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("Accept-Encoding", "gzip, deflate")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, "gzip", w.Header().Get("Content-Encoding"))
	zr, err := gzip.NewReader(w.Body)
	require.NoError(t, err)
	body, err := io.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, "ok", string(body))
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(Logger(logger.NewWithWriter(logger.LevelWarn, &buf)))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Empty(t, buf.String())

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/boom?x=1", nil))
	assert.True(t, strings.Contains(buf.String(), "500"))
	assert.Contains(t, buf.String(), "/boom?x=1")
}
