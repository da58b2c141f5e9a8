// Package linkedin is a LinkedIn REST client covering the organization
// lookup and follower count used by the channels KPI endpoint.
//
// Follower counts come from the networkSizes endpoint; organization
// metadata requires Marketing Developer Platform access.
package linkedin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/tidwall/gjson"

	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream"
)

const (
	defaultBaseURL = "https://api.linkedin.com"
	defaultTimeout = 30 * time.Second
)

// Client is a LinkedIn API client
type Client struct {
	baseURL     string
	accessToken string
	http        *resty.Client
}

// ClientOption is a function that configures the Client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// New creates a LinkedIn client using the given member access token
func New(accessToken string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		accessToken: accessToken,
		http:        resty.New().SetTimeout(defaultTimeout),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// OrganizationStats holds the KPI subset for one LinkedIn organization
type OrganizationStats struct {
	Name      string `json:"name"`
	Followers int64  `json:"followers"`
}

// OrganizationStatistics fetches the organization's localized name and its
// first-degree follower count. Two calls, sequential; either failing fails
// the lookup.
func (c *Client) OrganizationStatistics(ctx context.Context, orgID string) (*OrganizationStats, error) {
	org, err := c.get(ctx, fmt.Sprintf("%s/v2/organizations/%s", c.baseURL, orgID))
	if err != nil {
		return nil, err
	}

	sizes, err := c.get(ctx, fmt.Sprintf("%s/v2/networkSizes/urn:li:organization:%s?edgeType=COMPANY_FOLLOWED_BY_MEMBER", c.baseURL, orgID))
	if err != nil {
		return nil, err
	}

	return &OrganizationStats{
		Name:      org.Get("localizedName").String(),
		Followers: sizes.Get("firstDegreeSize").Int(),
	}, nil
}

func (c *Client) get(ctx context.Context, url string) (gjson.Result, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.accessToken).
		SetHeader("X-Restli-Protocol-Version", "2.0.0").
		Get(url)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("requesting %s: %w", url, err)
	}

	return upstream.Decode(resp)
}
