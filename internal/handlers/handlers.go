// Package handlers implements the HTTP pages and the JSON API of MovieHUB.
package handlers

import (
	"html/template"
	"net/http"

	"github.com/amaumene/moviehub/internal/config"
	"github.com/amaumene/moviehub/internal/middleware"
	"github.com/amaumene/moviehub/internal/services"
	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the search site.
type Handler struct {
	services  *services.Container
	config    *config.Config
	templates *template.Template
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, config *config.Config) *Handler {
	return &Handler{
		services:  services,
		config:    config,
		templates: parseTemplates(),
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.SetHTMLTemplate(h.templates)
	r.Use(middleware.LoadSession(h.services.Sessions))

	r.GET("/healthz", h.handleHealth)

	// Public pages
	r.GET("/", h.handleSplash)
	r.GET("/login", h.handleLoginForm)
	r.POST("/login", h.handleLogin)
	r.POST("/logout", h.handleLogout)

	// Search page, form posts redirect back to it
	pages := r.Group("/", middleware.RequireLogin())
	pages.GET("/search", h.handleSearchPage)
	pages.POST("/search", h.handleSearchSubmit)
	pages.POST("/search/more", h.handleLoadMore)
	pages.POST("/titles/close", h.handleCloseTitle)
	pages.POST("/titles/:id", h.handleOpenTitle)

	api := r.Group("/api", middleware.CORS(), middleware.RequireLogin())
	api.GET("/state", h.apiState)
	api.GET("/search", h.apiSearch)
	api.POST("/search/more", h.apiLoadMore)
	api.GET("/titles/:id", h.apiOpenTitle)
	api.DELETE("/titles", h.apiCloseTitle)
	// Preflight requests are answered by CORS before any handler runs.
	api.OPTIONS("/*path", func(c *gin.Context) {})
}

func (h *Handler) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": h.services.Sessions.Len(),
	})
}
