package taxonomy

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the public English Wikipedia category endpoint.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

// Config holds configuration for the taxonomy client.
type Config struct {
	// BaseURL is the category lookup endpoint.
	BaseURL string

	// HTTPClient performs the requests. Defaults to a plain http.Client.
	// The service imposes no timeout of its own; configure one here if the
	// caller wants bounded lookups.
	HTTPClient *http.Client

	// MaxAttempts is the number of tries per lookup. Values below 1 are
	// treated as 1 (no retry); retry policy is deliberately the caller's
	// choice, not a built-in.
	MaxAttempts int

	// RetryDelay is the base delay between attempts, doubling each retry.
	RetryDelay time.Duration
}

// Client looks up the categories associated with a title.
type Client struct {
	config Config
	logger *slog.Logger
}

// NewClient creates a taxonomy client.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrBaseURLRequired
	}
	if config.HTTPClient == nil {
		config.HTTPClient = &http.Client{}
	}
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = time.Second
	}
	return &Client{
		config: config,
		logger: slog.Default().With("component", "taxonomy-client"),
	}, nil
}

// Categories returns the raw category titles associated with the given
// title, in service order, namespace prefix intact. A transport error,
// non-2xx status, or unparseable body yields a wrapped ErrFetch.
func (c *Client) Categories(ctx context.Context, title string) ([]string, error) {
	var categories []string
	var lastErr error

	delay := c.config.RetryDelay
	for attempt := 1; attempt <= c.config.MaxAttempts; attempt++ {
		if attempt > 1 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, ctx.Err()
			case <-timer.C:
			}
			delay *= 2
			c.logger.Debug("retrying category lookup", "title", title, "attempt", attempt)
		}

		categories, lastErr = c.fetch(ctx, title)
		if lastErr == nil {
			return categories, nil
		}
	}
	return nil, lastErr
}

func (c *Client) fetch(ctx context.Context, title string) ([]string, error) {
	query := url.Values{}
	query.Set("format", "xml")
	query.Set("action", "query")
	query.Set("prop", "categories")
	query.Set("titles", title)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: unexpected status %d", ErrFetch, resp.StatusCode)
	}

	categories, err := parseCategories(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	return categories, nil
}

// parseCategories extracts the title attribute of every category link
// element ("cl"), wherever it sits in the response tree.
func parseCategories(r io.Reader) ([]string, error) {
	decoder := xml.NewDecoder(r)
	categories := make([]string, 0)

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "cl" {
			continue
		}
		for _, attr := range start.Attr {
			if attr.Name.Local == "title" {
				categories = append(categories, attr.Value)
				break
			}
		}
	}
	return categories, nil
}
