package constants

import "time"

const (
	// RequestTimeout bounds a single call to OMDb.
	RequestTimeout = 10 * time.Second

	// SplashDuration is how long the splash page stays before moving on.
	SplashDuration = 3 * time.Second

	// SessionCleanupInterval is how often expired sessions are evicted.
	SessionCleanupInterval = 10 * time.Minute

	// ShutdownTimeout bounds graceful HTTP shutdown.
	ShutdownTimeout = 5 * time.Second
)
