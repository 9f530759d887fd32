package services

import (
	"context"
	"net/http"
	"strings"

	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/amaumene/moviehub/internal/models"
	"github.com/amaumene/moviehub/pkg/httputil"
	"github.com/amaumene/moviehub/pkg/logger"
	"github.com/amaumene/moviehub/pkg/ratelimiter"
	"github.com/amaumene/moviehub/pkg/security"
)

// OMDb consumes the OMDb API: paginated title search and lookup by IMDb id.
type OMDb struct {
	apiKey      string
	baseURL     string
	rateLimiter ratelimiter.RateLimiter
	httpClient  *http.Client
	logger      logger.Logger
	validator   *security.APIKeyValidator
}

func NewOMDb(apiKey, baseURL string, httpClient *http.Client, log logger.Logger) *OMDb {
	validator := security.NewAPIKeyValidator()

	if httpClient == nil {
		httpClient = httputil.NewDefaultHTTPClient()
	}
	if log == nil {
		log = logger.New()
	}

	o := &OMDb{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     log.WithPrefix("OMDb"),
		validator:  validator,
	}
	o.SetAPIKey(apiKey)
	return o
}

// SetRateLimiter paces outbound calls. A nil limiter disables pacing.
func (o *OMDb) SetRateLimiter(rl ratelimiter.RateLimiter) {
	o.rateLimiter = rl
}

func (o *OMDb) SetAPIKey(apiKey string) {
	sanitizedKey := o.validator.SanitizeAPIKey(apiKey)
	if sanitizedKey != "" && !o.validator.IsValidOMDbKey(sanitizedKey) {
		o.logger.Warnf("API key has an unusual format (key: %s)", o.validator.MaskAPIKey(sanitizedKey))
	}
	o.apiKey = sanitizedKey
}

// Search fetches one page of results for query. An explicit "no match" answer
// yields a NOT_FOUND CatalogError carrying OMDb's message; anything that
// prevents reading a well-formed answer yields a TRANSPORT CatalogError.
func (o *OMDb) Search(ctx context.Context, query string, page int) (*models.ResultPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.ErrEmptyQuery
	}
	if page < 1 {
		page = 1
	}

	var resp models.OMDbSearchResponse
	if err := o.get(ctx, o.buildSearchURL(query, page), &resp); err != nil {
		return nil, err
	}

	if !resp.OK() {
		o.logger.Debugf("no match for '%s' page %d: %s", query, page, resp.Error)
		return nil, apperrors.NewNotFoundError(resp.Error)
	}

	return o.toResultPage(&resp, page)
}

// Lookup fetches the full record for an IMDb id.
func (o *OMDb) Lookup(ctx context.Context, id string) (*models.OMDbTitleResponse, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperrors.NewValidationError("title id must not be empty")
	}

	var resp models.OMDbTitleResponse
	if err := o.get(ctx, o.buildLookupURL(id), &resp); err != nil {
		return nil, apperrors.NewDetailFetchError(id, "", err)
	}

	if !resp.OK() {
		o.logger.Debugf("lookup of %s refused: %s", id, resp.Error)
		return nil, apperrors.NewDetailFetchError(id, resp.Error, nil)
	}

	return &resp, nil
}
