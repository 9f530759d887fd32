package handlers

import (
	"net/http"

	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/amaumene/moviehub/internal/middleware"
	"github.com/gin-gonic/gin"
)

func (h *Handler) apiState(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	c.JSON(http.StatusOK, sess.View())
}

// apiSearch runs a fresh query. Catalog failures are part of the returned
// state; only a blank query or a superseded request is an HTTP error.
func (h *Handler) apiSearch(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	err := sess.Search.Search(c.Request.Context(), c.Query("q"))
	if h.abortOnRequestError(c, err) {
		return
	}
	c.JSON(http.StatusOK, sess.Search.Snapshot())
}

// apiLoadMore fetches the next page. A failed page leaves the state as it
// was and still answers 200.
func (h *Handler) apiLoadMore(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	err := sess.Search.LoadMore(c.Request.Context())
	if h.abortOnRequestError(c, err) {
		return
	}
	h.logOutcome("load more", err)
	c.JSON(http.StatusOK, sess.Search.Snapshot())
}

func (h *Handler) apiOpenTitle(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	err := sess.Search.SelectItem(c.Request.Context(), c.Param("id"))
	if h.abortOnRequestError(c, err) {
		return
	}
	c.JSON(http.StatusOK, sess.Detail.Snapshot())
}

func (h *Handler) apiCloseTitle(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)
	sess.Detail.Close()
	c.JSON(http.StatusOK, sess.Detail.Snapshot())
}

// abortOnRequestError answers 400 for invalid input and 409 when a newer
// request replaced this one. Other errors are left to the caller.
func (h *Handler) abortOnRequestError(c *gin.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case apperrors.IsType(err, apperrors.ErrorTypeValidation):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": userMessage(err, err.Error())})
		return true
	case apperrors.Is(err, apperrors.ErrStale):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
		return true
	}
	return false
}
