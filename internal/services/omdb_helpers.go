package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	apperrors "github.com/amaumene/moviehub/internal/errors"
	"github.com/amaumene/moviehub/internal/models"
	"github.com/amaumene/moviehub/pkg/httputil"
)

func (o *OMDb) buildSearchURL(query string, page int) string {
	params := url.Values{}
	params.Set("s", query)
	params.Set("page", strconv.Itoa(page))
	params.Set("apikey", o.apiKey)
	return o.endpoint() + "?" + params.Encode()
}

func (o *OMDb) buildLookupURL(id string) string {
	params := url.Values{}
	params.Set("i", id)
	params.Set("plot", "full")
	params.Set("apikey", o.apiKey)
	return o.endpoint() + "?" + params.Encode()
}

func (o *OMDb) endpoint() string {
	base := strings.TrimSuffix(o.baseURL, "?")
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base
}

// redact hides the API key before a URL reaches the logs.
func (o *OMDb) redact(rawURL string) string {
	if o.apiKey == "" {
		return rawURL
	}
	return strings.ReplaceAll(rawURL, "apikey="+o.apiKey, "apikey="+o.validator.MaskAPIKey(o.apiKey))
}

func (o *OMDb) validateAPIKey() error {
	if o.apiKey == "" {
		return apperrors.NewAPIKeyMissingError("OMDb")
	}
	return nil
}

// get performs the rate-limited GET and maps every failure to a TRANSPORT
// CatalogError (or API_KEY_MISSING).
func (o *OMDb) get(ctx context.Context, apiURL string, v interface{}) error {
	if err := o.validateAPIKey(); err != nil {
		return err
	}

	if o.rateLimiter != nil {
		if err := o.rateLimiter.Wait(ctx); err != nil {
			return apperrors.NewTransportError("rate limiter wait aborted", err)
		}
	}

	o.logger.Debugf("API URL: %s", o.redact(apiURL))

	if err := httputil.GetJSON(ctx, o.httpClient, apiURL, v); err != nil {
		o.logger.Warnf("request failed: %s", o.redactError(err))
		return apperrors.NewTransportError("OMDb request failed", err)
	}
	return nil
}

func (o *OMDb) redactError(err error) string {
	msg := err.Error()
	if o.apiKey != "" {
		msg = strings.ReplaceAll(msg, o.apiKey, o.validator.MaskAPIKey(o.apiKey))
	}
	return msg
}

func (o *OMDb) toResultPage(resp *models.OMDbSearchResponse, page int) (*models.ResultPage, error) {
	total := 0
	if resp.TotalResults != "" {
		n, err := strconv.Atoi(strings.TrimSpace(resp.TotalResults))
		if err != nil || n < 0 {
			return nil, apperrors.NewTransportError(
				fmt.Sprintf("malformed totalResults %q", resp.TotalResults), err)
		}
		total = n
	}

	items := make([]models.ResultItem, 0, len(resp.Search))
	for _, s := range resp.Search {
		items = append(items, models.ResultItem{
			ID:        s.IMDbID,
			Title:     s.Title,
			Year:      s.Year,
			PosterURL: s.Poster,
			Kind:      s.Type,
		})
	}

	// totalResults is sometimes absent on otherwise valid pages.
	if total < len(items) {
		total = len(items)
	}

	return &models.ResultPage{
		Items:      items,
		TotalCount: total,
		PageNumber: page,
	}, nil
}
