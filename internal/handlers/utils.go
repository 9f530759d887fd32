package handlers

import (
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/amaumene/moviehub/internal/constants"
	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/gin-gonic/gin"
)

// refreshHeader builds a Refresh header value; browsers only honour whole seconds.
func refreshHeader(delay time.Duration, target string) string {
	secs := int(math.Ceil(delay.Seconds()))
	return fmt.Sprintf("%d; url=%s", secs, target)
}

func (h *Handler) setSessionCookie(c *gin.Context, id string) {
	maxAge := int(time.Duration(h.config.SessionTTL).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, id, maxAge, "/", "", false, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(constants.SessionCookieName, "", -1, "/", "", false, true)
}

// userMessage returns the CatalogError's message, or fallback for anything else.
func userMessage(err error, fallback string) string {
	var ce *apperrors.CatalogError
	if apperrors.As(err, &ce) && ce.Message != "" {
		return ce.Message
	}
	return fallback
}
