package zotero

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client defines the read-only operations against one remote library.
type Client interface {
	// TopItems lists up to target top-level bibliographic items for the
	// whole library, in ascending title order.
	TopItems(ctx context.Context, target int) ([]Item, error)
	// CollectionItems lists up to target top-level items of one collection.
	CollectionItems(ctx context.Context, collectionKey string, target int) ([]Item, error)
	// Item fetches a single item's detail record.
	Item(ctx context.Context, key string) (Item, error)
	// ItemsByKeys fetches several items in one batched request.
	ItemsByKeys(ctx context.Context, keys []string) ([]Item, error)
	// Collections lists up to 200 top-level collections, sorted by name.
	Collections(ctx context.Context) ([]Collection, error)
	// Collection fetches one collection's metadata.
	Collection(ctx context.Context, key string) (Collection, error)
	// SubCollections lists a collection's direct children, sorted by name.
	SubCollections(ctx context.Context, key string) ([]Collection, error)
	// CollectionItemCount probes how many top-level items a collection holds.
	CollectionItemCount(ctx context.Context, key string) (int, error)
	// Attachments lists an item's attachment children with resolved URLs.
	Attachments(ctx context.Context, itemKey string) ([]Attachment, error)
	// Notes lists an item's note children.
	Notes(ctx context.Context, itemKey string) ([]Note, error)
}

// NewClient creates a new API client for the configured library. It validates
// the configuration up front and performs no network calls.
func NewClient(cfg Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://api.zotero.org"
	}
	base, err := url.Parse(baseURL)
	if err != nil || base.Host == "" {
		return nil, &ConfigError{Field: "base_url", Reason: "not a valid URL"}
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 20
	}
	timeoutDuration := time.Duration(timeout) * time.Second

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	// Custom transport with strict timeouts
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   timeoutDuration, // Connection setup timeout
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   timeoutDuration,
		ExpectContinueTimeout: 1 * time.Second,
		ResponseHeaderTimeout: timeoutDuration,
	}

	return &client{
		base:     base,
		prefix:   fmt.Sprintf("%s/%d", cfg.LibraryType, cfg.LibraryID),
		apiKey:   cfg.APIKey,
		webdav:   strings.TrimSuffix(strings.TrimSpace(cfg.WebDAVBase), "/"),
		pageSize: pageSize,
		httpc: &http.Client{
			Transport: transport,
			Timeout:   timeoutDuration,
		},
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}, nil
}

const maxPageSize = 100

type client struct {
	base     *url.URL
	prefix   string // e.g. "users/12345"
	apiKey   string
	webdav   string
	pageSize int
	httpc    *http.Client
	limiter  *rate.Limiter
}

// get performs one library-scoped API request and returns the body plus the
// total-count header value, or -1 when the server did not report a total.
func (c *client) get(ctx context.Context, resource string, query url.Values) ([]byte, int, error) {
	u := *c.base
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + c.prefix + "/" + resource

	if query == nil {
		query = url.Values{}
	}
	query.Set("format", "json")
	query.Set("include", "data")
	u.RawQuery = query.Encode()

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, -1, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, -1, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Zotero-API-Key", c.apiKey)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, -1, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, -1, fmt.Errorf("read response from %s: %w", u.String(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, -1, &RemoteError{
			StatusCode: resp.StatusCode,
			URL:        u.String(),
			Body:       strings.TrimSpace(string(body)),
		}
	}

	total := -1
	if h := resp.Header.Get("Total-Results"); h != "" {
		if n, err := strconv.Atoi(h); err == nil {
			total = n
		}
	}

	return body, total, nil
}

// authorize appends the API key query parameter to a resolved URL, but only
// when the URL points at the API host itself. The key must never leak to
// WebDAV servers or arbitrary linked hosts.
func (c *client) authorize(raw string) string {
	if c.apiKey == "" || raw == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host != c.base.Host {
		return raw
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	u.RawQuery = q.Encode()
	return u.String()
}
