// Package youtube talks to the YouTube Data API v3, either directly or through a cinerow relay.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/cinerow/cinerow/apierr"
	"github.com/cinerow/cinerow/log"
	"github.com/cinerow/cinerow/network"
	"github.com/cinerow/cinerow/util"
)

// BaseURL is the YouTube Data API v3 root.
const BaseURL = "https://www.googleapis.com/youtube/v3"

// PageSize caps how many recent videos are listed per channel.
const PageSize = 5

const service = "YouTube"

// Client calls the Data API with an API key.
type Client struct {
	apiKey   string
	baseURL  string
	http     *http.Client
	channels *ChannelCache
	demo     bool
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithChannelCache skips the name search for channels resolved before.
func WithChannelCache(cache *ChannelCache) Option {
	return func(c *Client) { c.channels = cache }
}

// WithDemo serves the fixtures from mock.go instead of calling the API.
func WithDemo(demo bool) Option {
	return func(c *Client) { c.demo = demo }
}

func New(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: BaseURL,
		http:    network.Client,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether calls can succeed without a ConfigError.
func (c *Client) Configured() bool {
	return c.apiKey != "" || c.demo
}

// ResolveChannel maps a display name to a channel id.
// The first search hit is taken as the channel; there is no disambiguation.
func (c *Client) ResolveChannel(ctx context.Context, name string) (string, error) {
	if id, ok := c.channels.Get(name).Get(); ok {
		return id, nil
	}

	if c.demo {
		return mockChannelID(name), nil
	}

	resp, err := c.search(ctx, url.Values{
		"part":       {"snippet"},
		"q":          {name},
		"type":       {"channel"},
		"maxResults": {"1"},
	})
	if err != nil {
		return "", err
	}

	if len(resp.Items) == 0 || resp.Items[0].ID.ChannelID == "" {
		return "", &apierr.NotFoundError{What: "channel", Query: name}
	}

	id := resp.Items[0].ID.ChannelID
	if err := c.channels.Set(name, id); err != nil {
		log.Warnf("youtube: cache channel id of %q: %v", name, err)
	}
	return id, nil
}

// ChannelVideos lists the PageSize most recent videos of the named channel, newest first.
func (c *Client) ChannelVideos(ctx context.Context, name string) (*SearchResponse, error) {
	if !c.Configured() {
		return nil, &apierr.ConfigError{Service: service}
	}

	id, err := c.ResolveChannel(ctx, name)
	if err != nil {
		return nil, err
	}

	if c.demo {
		resp := mockChannelVideos(name, id)
		return &resp, nil
	}

	return c.search(ctx, url.Values{
		"part":       {"snippet"},
		"channelId":  {id},
		"order":      {"date"},
		"type":       {"video"},
		"maxResults": {strconv.Itoa(PageSize)},
	})
}

// SearchTrailers runs a full-text search for short embeddable trailers of title.
func (c *Client) SearchTrailers(ctx context.Context, title string, limit int) ([]SearchItem, error) {
	if !c.Configured() {
		return nil, &apierr.ConfigError{Service: service}
	}

	if limit <= 0 {
		limit = 1
	}

	if c.demo {
		resp := mockTrailerSearch(title)
		return resp.Items, nil
	}

	resp, err := c.search(ctx, url.Values{
		"part":            {"snippet"},
		"q":               {title + " official trailer"},
		"type":            {"video"},
		"order":           {"relevance"},
		"videoDuration":   {"short"},
		"videoEmbeddable": {"true"},
		"maxResults":      {strconv.Itoa(limit)},
	})
	if err != nil {
		return nil, err
	}
	return resp.Items, nil
}

func (c *Client) search(ctx context.Context, params url.Values) (*SearchResponse, error) {
	if c.apiKey == "" {
		return nil, &apierr.ConfigError{Service: service}
	}

	params.Set("key", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build search request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &apierr.NetworkError{Service: service, Err: err}
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Error struct {
				Message string `json:"message"`
			} `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)

		msg := body.Error.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}

		log.Warnf("youtube: search returned %d: %s", resp.StatusCode, msg)
		return nil, &apierr.UpstreamError{Service: service, Status: resp.StatusCode, Message: msg}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierr.NetworkError{Service: service, Err: err}
	}

	out, err := decodeSearch(body)
	if err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return out, nil
}
