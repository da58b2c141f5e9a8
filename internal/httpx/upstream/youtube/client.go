// Package youtube is a YouTube Data API v3 client covering the channel
// statistics lookup used by the channels KPI endpoint.
package youtube

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream"
)

const (
	defaultBaseURL = "https://www.googleapis.com"
	defaultTimeout = 30 * time.Second
)

// ErrChannelNotFound is returned when channels.list yields no items
var ErrChannelNotFound = errors.New("youtube channel not found")

// Client is a YouTube Data API client
type Client struct {
	baseURL string
	http    *resty.Client
	tokens  oauth2.TokenSource
}

// ClientOption is a function that configures the Client
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// NewTokenSource exchanges a stored refresh token for short-lived access
// tokens against Google's OAuth2 endpoint. Tokens are refreshed lazily and
// reused until expiry.
func NewTokenSource(ctx context.Context, clientID, clientSecret, refreshToken string) oauth2.TokenSource {
	conf := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Endpoint:     google.Endpoint,
	}
	return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
}

// New creates a YouTube client using the given token source
func New(tokens oauth2.TokenSource, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: defaultBaseURL,
		http:    resty.New().SetTimeout(defaultTimeout),
		tokens:  tokens,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// ChannelStats is the statistics subset of a channels.list response
type ChannelStats struct {
	Title       string `json:"title"`
	Subscribers int64  `json:"subs"`
	Views       int64  `json:"views"`
	Videos      int64  `json:"videos"`
}

// ChannelStatistics fetches snippet + statistics for one channel.
// GET /youtube/v3/channels?id=...&part=statistics,snippet
func (c *Client) ChannelStatistics(ctx context.Context, channelID string) (*ChannelStats, error) {
	tok, err := c.tokens.Token()
	if err != nil {
		return nil, fmt.Errorf("fetching YouTube access token: %w", err)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(tok.AccessToken).
		SetQueryParams(map[string]string{
			"id":   channelID,
			"part": "statistics,snippet",
		}).
		Get(c.baseURL + "/youtube/v3/channels")
	if err != nil {
		return nil, fmt.Errorf("requesting channel %s: %w", channelID, err)
	}

	body, err := upstream.Decode(resp)
	if err != nil {
		return nil, err
	}

	item := body.Get("items.0")
	if !item.Exists() {
		return nil, ErrChannelNotFound
	}

	return &ChannelStats{
		Title:       item.Get("snippet.title").String(),
		Subscribers: item.Get("statistics.subscriberCount").Int(),
		Views:       item.Get("statistics.viewCount").Int(),
		Videos:      item.Get("statistics.videoCount").Int(),
	}, nil
}
