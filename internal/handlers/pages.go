package handlers

import (
	"net/http"
	"time"

	"github.com/amaumene/moviehub/internal/constants"
	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/amaumene/moviehub/internal/middleware"
	"github.com/gin-gonic/gin"
)

type loginView struct {
	Username string
	Error    string
}

// handleSplash shows the splash screen, then forwards to the login form.
func (h *Handler) handleSplash(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusSeeOther, "/search")
		return
	}

	delay := time.Duration(h.config.SplashDuration)
	if delay <= 0 {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	c.Header("Refresh", refreshHeader(delay, "/login"))
	c.HTML(http.StatusOK, "splash", nil)
}

func (h *Handler) handleLoginForm(c *gin.Context) {
	if _, ok := middleware.CurrentSession(c); ok {
		c.Redirect(http.StatusSeeOther, "/search")
		return
	}
	c.HTML(http.StatusOK, "login", loginView{})
}

func (h *Handler) handleLogin(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	sess, err := h.services.Sessions.Login(username, password)
	if err != nil {
		c.HTML(http.StatusBadRequest, "login", loginView{
			Username: username,
			Error:    userMessage(err, constants.MsgLoginRequired),
		})
		return
	}

	h.setSessionCookie(c, sess.ID)
	c.Redirect(http.StatusSeeOther, "/search")
}

func (h *Handler) handleLogout(c *gin.Context) {
	if sess, ok := middleware.CurrentSession(c); ok {
		h.services.Sessions.Logout(sess.ID)
	}
	h.clearSessionCookie(c)
	c.Redirect(http.StatusSeeOther, "/login")
}

func (h *Handler) handleSearchPage(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	c.HTML(http.StatusOK, "search", sess.View())
}

// handleSearchSubmit runs the query and redirects back to the page, so a
// reload never resubmits the form. A blank query changes nothing.
func (h *Handler) handleSearchSubmit(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	err := sess.Search.Search(c.Request.Context(), c.PostForm("q"))
	h.logOutcome("search", err)
	c.Redirect(http.StatusSeeOther, "/search")
}

func (h *Handler) handleLoadMore(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	err := sess.Search.LoadMore(c.Request.Context())
	h.logOutcome("load more", err)
	c.Redirect(http.StatusSeeOther, "/search")
}

func (h *Handler) handleOpenTitle(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	err := sess.Search.SelectItem(c.Request.Context(), c.Param("id"))
	h.logOutcome("detail", err)
	c.Redirect(http.StatusSeeOther, "/search")
}

func (h *Handler) handleCloseTitle(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	sess.Detail.Close()
	c.Redirect(http.StatusSeeOther, "/search")
}

// logOutcome records errors the page flow absorbs. They never reach the
// visitor; the rendered state already carries the user-facing message.
func (h *Handler) logOutcome(action string, err error) {
	switch {
	case err == nil:
	case apperrors.Is(err, apperrors.ErrStale):
		h.services.Logger.Debugf("[Handlers] %s superseded by a newer request", action)
	case apperrors.IsType(err, apperrors.ErrorTypeValidation):
		h.services.Logger.Debugf("[Handlers] %s ignored: %v", action, err)
	default:
		h.services.Logger.Warnf("[Handlers] %s failed: %v", action, err)
	}
}
