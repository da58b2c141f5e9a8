// Package graph is a read-only Meta Graph API client used to fetch
// Instagram business-account and Facebook Page KPIs.
package graph

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream"
)

const (
	defaultBaseURL    = "https://graph.facebook.com"
	defaultAPIVersion = "v19.0"
	defaultTimeout    = 30 * time.Second

	// DefaultEdgeLimit caps an edge listing when the caller does not ask
	// for a specific number of items.
	DefaultEdgeLimit = 50

	// maxPageSize is the largest per-page limit the Graph API accepts.
	maxPageSize = 100
)

// Client is a Meta Graph API client for KPI retrieval
type Client struct {
	baseURL    string
	apiVersion string
	http       *resty.Client
}

// ClientOption is a function that configures the Client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithAPIVersion sets the API version
func WithAPIVersion(version string) ClientOption {
	return func(c *Client) {
		c.apiVersion = version
	}
}

// WithTimeout sets the outbound request timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.http.SetTimeout(timeout)
	}
}

// New creates a new Graph API client
func New(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		apiVersion: defaultAPIVersion,
		http:       resty.New().SetTimeout(defaultTimeout),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// GetObject fetches a single Graph object with the given field selection.
// GET /{version}/{id}?fields=...&access_token=...
func (c *Client) GetObject(ctx context.Context, id string, fields []string, accessToken string) (gjson.Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"fields":       strings.Join(fields, ","),
			"access_token": accessToken,
		}).
		Get(fmt.Sprintf("%s/%s/%s", c.baseURL, c.apiVersion, id))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("requesting object %s: %w", id, err)
	}

	return upstream.Decode(resp)
}

// ListEdge fetches items from an object's edge (e.g. "media" or "posts"),
// following the vendor-supplied paging.next cursor until the cursor runs
// out, a page yields no items, or the accumulated count reaches limit.
// Each page requests at most maxPageSize items. A failure at any page
// aborts the whole listing; no page is retried.
func (c *Client) ListEdge(ctx context.Context, id, edge string, fields []string, accessToken string, limit int) ([]gjson.Result, error) {
	if limit <= 0 {
		limit = DefaultEdgeLimit
	}

	items := make([]gjson.Result, 0, min(limit, maxPageSize))
	next := ""

	for {
		pageSize := limit - len(items)
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}

		var (
			resp *resty.Response
			err  error
		)
		if next != "" {
			// paging.next is a fully qualified URL carrying the original
			// query, cursor included.
			resp, err = c.http.R().SetContext(ctx).Get(next)
		} else {
			resp, err = c.http.R().
				SetContext(ctx).
				SetQueryParams(map[string]string{
					"fields":       strings.Join(fields, ","),
					"access_token": accessToken,
					"limit":        strconv.Itoa(pageSize),
				}).
				Get(fmt.Sprintf("%s/%s/%s/%s", c.baseURL, c.apiVersion, id, edge))
		}
		if err != nil {
			return nil, fmt.Errorf("requesting %s edge of %s: %w", edge, id, err)
		}

		page, err := upstream.Decode(resp)
		if err != nil {
			return nil, err
		}

		data := page.Get("data").Array()
		// An empty page means the listing is exhausted even when the
		// vendor still hands out a cursor; following it would loop forever.
		if len(data) == 0 {
			return items, nil
		}
		for _, item := range data {
			items = append(items, item)
			if len(items) == limit {
				return items, nil
			}
		}

		next = page.Get("paging.next").String()
		if next == "" {
			return items, nil
		}
	}
}
