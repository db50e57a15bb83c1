// Package importer fetches recipe pages and extracts meals from their
// schema.org JSON-LD markup.
package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainerrors "github.com/GamingGoku/ProductionMealApp/internal/errors"
	"github.com/GamingGoku/ProductionMealApp/internal/ratelimit"
)

// maxBodyBytes caps how much of a recipe page we will read.
const maxBodyBytes = 5 << 20

// Importer fetches and parses remote recipe pages. Requests to the same
// host are rate limited so bulk imports stay polite.
type Importer struct {
	client    *http.Client
	limiter   *ratelimit.KeyedRateLimiter
	logger    *slog.Logger
	userAgent string
}

// New creates an importer. rps bounds requests per second per remote host.
func New(logger *slog.Logger, rps float64, burst int, timeout time.Duration) *Importer {
	return &Importer{
		client:    &http.Client{Timeout: timeout},
		limiter:   ratelimit.New(rps, burst),
		logger:    logger,
		userAgent: "meal-planner/1.0 (+recipe import)",
	}
}

// FetchRecipe downloads the page at rawURL and extracts its recipe.
func (imp *Importer) FetchRecipe(ctx context.Context, rawURL string) (*Recipe, error) {
	u, err := parseHTTPURL(rawURL)
	if err != nil {
		return nil, err
	}

	if err := imp.limiter.Wait(ctx, u.Host); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, domainerrors.Upstream("failed to build request").WithCause(err)
	}
	req.Header.Set("User-Agent", imp.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := imp.client.Do(req)
	if err != nil {
		return nil, domainerrors.Upstream("could not fetch recipe page").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.Upstream(fmt.Sprintf("recipe page returned status %d", resp.StatusCode))
	}

	recipe, err := ParseRecipeHTML(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}

	imp.logger.Info("Imported recipe",
		"host", u.Host,
		"title", recipe.Title,
		"ingredients", len(recipe.Ingredients))
	return recipe, nil
}

// parseHTTPURL validates that rawURL is an absolute http(s) URL.
func parseHTTPURL(rawURL string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, domainerrors.Validation("a valid http(s) URL is required")
	}
	return u, nil
}
