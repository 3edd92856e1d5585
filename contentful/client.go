package contentful

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production CDA endpoint.
const DefaultBaseURL = "https://cdn.contentful.com"

// Credentials identify a Contentful space.
type Credentials struct {
	SpaceID     string
	AccessToken string
	// Environment defaults to "master" when empty.
	Environment string
}

// Query describes one entry listing request.
type Query struct {
	// ContentType is the content type discriminator. Required.
	ContentType string

	// Filters are field-equality constraints, keyed by the full CDA
	// field path (e.g. "fields.slug").
	Filters map[string]string

	// Order is a CDA sort key (e.g. "-sys.createdAt"). Empty means
	// store-provided order.
	Order string

	// Limit caps the number of returned entries. Zero means the CDA
	// default page size.
	Limit int
}

// Entry is a raw record: the store's identity and timestamps plus an
// untyped attribute bag. Values that arrived as asset links are replaced
// with *Asset before the entry is returned.
type Entry struct {
	ID        string
	CreatedAt time.Time
	UpdatedAt time.Time
	Fields    map[string]any
}

// Asset is a resolved media asset.
type Asset struct {
	URL    string
	Title  string
	Width  int
	Height int
}

// Client lists entries from the content store.
type Client interface {
	// ListEntries returns all entries matching q. Implementations
	// return an empty slice, not nil errors wrapped in panics, when
	// nothing matches.
	ListEntries(ctx context.Context, q Query) ([]Entry, error)

	// Configured reports whether the client holds real credentials.
	// The null client returns false.
	Configured() bool
}

// AcquireClient builds a Client for the given credentials. Missing
// credentials or a construction failure degrade to a null client that
// always returns empty results; the condition is logged, never returned.
func AcquireClient(creds Credentials, logger *zap.Logger) Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if creds.SpaceID == "" || creds.AccessToken == "" {
		logger.Warn("contentful credentials missing, using null client; all queries will return empty results")
		return nullClient{}
	}

	c, err := newAPIClient(DefaultBaseURL, creds, logger)
	if err != nil {
		logger.Warn("contentful client construction failed, using null client", zap.Error(err))
		return nullClient{}
	}
	return c
}

// nullClient satisfies Client with empty results.
type nullClient struct{}

func (nullClient) ListEntries(ctx context.Context, q Query) ([]Entry, error) {
	return []Entry{}, nil
}

func (nullClient) Configured() bool { return false }

// apiClient talks to the CDA over HTTP.
type apiClient struct {
	hc      *http.Client
	baseURL string
	creds   Credentials
	logger  *zap.Logger
}

func newAPIClient(baseURL string, creds Credentials, logger *zap.Logger) (*apiClient, error) {
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if creds.Environment == "" {
		creds.Environment = "master"
	}
	return &apiClient{
		hc:      &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimSuffix(baseURL, "/"),
		creds:   creds,
		logger:  logger,
	}, nil
}

// NewClient builds a client against a custom endpoint. Used by tests to
// point at a local fake; production callers go through AcquireClient.
func NewClient(baseURL string, creds Credentials, logger *zap.Logger) (Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	return newAPIClient(baseURL, creds, logger)
}

func (c *apiClient) Configured() bool { return true }

func (c *apiClient) ListEntries(ctx context.Context, q Query) ([]Entry, error) {
	if q.ContentType == "" {
		return nil, fmt.Errorf("query missing content type")
	}

	params := url.Values{}
	params.Set("access_token", c.creds.AccessToken)
	params.Set("content_type", q.ContentType)
	if q.Order != "" {
		params.Set("order", q.Order)
	}
	if q.Limit > 0 {
		params.Set("limit", fmt.Sprintf("%d", q.Limit))
	}
	filterKeys := make([]string, 0, len(q.Filters))
	for k := range q.Filters {
		filterKeys = append(filterKeys, k)
	}
	sort.Strings(filterKeys)
	for _, k := range filterKeys {
		params.Set(k, q.Filters[k])
	}

	endpoint := fmt.Sprintf("%s/spaces/%s/environments/%s/entries?%s",
		c.baseURL, c.creds.SpaceID, c.creds.Environment, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list entries %s: %w", q.ContentType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("list entries %s: status %d: %s", q.ContentType, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var decoded entriesResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode entries %s: %w", q.ContentType, err)
	}

	assets := decoded.assetMap()
	entries := make([]Entry, 0, len(decoded.Items))
	for _, item := range decoded.Items {
		entries = append(entries, Entry{
			ID:        item.Sys.ID,
			CreatedAt: item.Sys.CreatedAt,
			UpdatedAt: item.Sys.UpdatedAt,
			Fields:    resolveAssetLinks(item.Fields, assets),
		})
	}
	return entries, nil
}

type entriesResponse struct {
	Total    int       `json:"total"`
	Items    []rawItem `json:"items"`
	Includes struct {
		Asset []rawItem `json:"Asset"`
	} `json:"includes"`
}

type rawItem struct {
	Sys struct {
		ID        string    `json:"id"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	} `json:"sys"`
	Fields map[string]any `json:"fields"`
}

func (r entriesResponse) assetMap() map[string]*Asset {
	if len(r.Includes.Asset) == 0 {
		return nil
	}
	assets := make(map[string]*Asset, len(r.Includes.Asset))
	for _, item := range r.Includes.Asset {
		a := assetFromFields(item.Fields)
		if a != nil {
			assets[item.Sys.ID] = a
		}
	}
	return assets
}

func assetFromFields(fields map[string]any) *Asset {
	file, ok := fields["file"].(map[string]any)
	if !ok {
		return nil
	}
	rawURL, _ := file["url"].(string)
	if rawURL == "" {
		return nil
	}
	// The CDA serves protocol-relative asset URLs.
	if strings.HasPrefix(rawURL, "//") {
		rawURL = "https:" + rawURL
	}

	a := &Asset{URL: rawURL}
	a.Title, _ = fields["title"].(string)
	if details, ok := file["details"].(map[string]any); ok {
		if img, ok := details["image"].(map[string]any); ok {
			if w, ok := img["width"].(float64); ok {
				a.Width = int(w)
			}
			if h, ok := img["height"].(float64); ok {
				a.Height = int(h)
			}
		}
	}
	return a
}

// resolveAssetLinks replaces asset links in fields with the matching
// *Asset from the response includes. Unresolvable links are dropped so
// downstream code never sees a dangling link object.
func resolveAssetLinks(fields map[string]any, assets map[string]*Asset) map[string]any {
	if len(fields) == 0 {
		return fields
	}
	resolved := make(map[string]any, len(fields))
	for k, v := range fields {
		if id, ok := assetLinkID(v); ok {
			if a, found := assets[id]; found {
				resolved[k] = a
			}
			continue
		}
		resolved[k] = v
	}
	return resolved
}

func assetLinkID(v any) (string, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	sys, ok := m["sys"].(map[string]any)
	if !ok {
		return "", false
	}
	if lt, _ := sys["linkType"].(string); lt != "Asset" {
		return "", false
	}
	id, _ := sys["id"].(string)
	return id, id != ""
}
