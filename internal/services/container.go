// Package services wires the remote catalog client and the session store
// into a container shared by the HTTP handlers.
package services

import (
	"github.com/amaumene/moviehub/internal/config"
	"github.com/amaumene/moviehub/internal/search"
	"github.com/amaumene/moviehub/internal/session"
	"github.com/amaumene/moviehub/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Catalog  search.Catalog
	Sessions *session.Store
	Logger   logger.Logger
	Config   *config.Config
}

// Compile-time check that the OMDb client satisfies the catalog contract.
var _ search.Catalog = (*OMDb)(nil)
