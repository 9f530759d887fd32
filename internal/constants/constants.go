// Package constants defines application-wide constants and default values.
package constants

const (
	AppName    = "MovieHUB"
	AppVersion = "1.0.0"

	// Default configuration values
	DefaultPort            = "5000"
	DefaultLogLevel        = "info"
	DefaultOMDbBaseURL     = "https://www.omdbapi.com/"
	DefaultSessionCapacity = 1000
	DefaultSessionTTL      = 12 // hours

	// Rate limiting toward OMDb; 0 disables the limiter.
	DefaultOMDbRateLimit = 0
	DefaultOMDbRateBurst = 5

	SessionCookieName = "moviehub_session"
)

// Upstream sentinels and display placeholders.
const (
	// MissingValue is what OMDb puts in a field it has no data for.
	MissingValue = "N/A"
	// Placeholder is shown instead of a missing value.
	Placeholder = "—"
	// PosterPlaceholderURL is used when a title has no poster.
	PosterPlaceholderURL = "https://via.placeholder.com/300x450?text=No+Poster"
	// IMDbTitleURL is formatted with an IMDb id.
	IMDbTitleURL = "https://www.imdb.com/title/%s"
)

// User-facing messages.
const (
	MsgNoResults         = "No results found."
	MsgNetworkError      = "Network error. Please try again."
	MsgDetailUnavailable = "Could not load details."
	MsgLoginRequired     = "Please enter both username and password."
)
