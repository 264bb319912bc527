package client

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/microcms-go/internal/constants"
	"github.com/fivetwenty-io/microcms-go/pkg/microcms"
)

// Get implements microcms.Client.Get.
func (c *Client) Get(ctx context.Context, endpoint string, params *microcms.GetParams) (microcms.Value, error) {
	if endpoint == "" {
		return microcms.Value{}, microcms.ErrEndpointRequired
	}

	var contentID string
	if params != nil {
		contentID = params.ContentID
	}

	resp, err := c.httpClient.Get(ctx, contentPath(endpoint, contentID), params.ToValues())
	if err != nil {
		return microcms.Value{}, fmt.Errorf("getting %s: %w", endpoint, err)
	}

	value, err := microcms.ParseValue(resp.Body)
	if err != nil {
		return microcms.Value{}, fmt.Errorf("parsing %s response: %w", endpoint, err)
	}

	c.logFetched(endpoint, value)

	return value, nil
}

// List implements microcms.Client.List.
func (c *Client) List(ctx context.Context, endpoint string, params *microcms.ListParams) (microcms.Value, error) {
	if endpoint == "" {
		return microcms.Value{}, microcms.ErrEndpointRequired
	}

	resp, err := c.httpClient.Get(ctx, contentPath(endpoint, ""), params.ToValues())
	if err != nil {
		return microcms.Value{}, fmt.Errorf("listing %s: %w", endpoint, err)
	}

	value, err := microcms.ParseValue(resp.Body)
	if err != nil {
		return microcms.Value{}, fmt.Errorf("parsing %s response: %w", endpoint, err)
	}

	c.logFetched(endpoint, value)

	return value, nil
}

// contentPath returns /v1/{endpoint} or /v1/{endpoint}/{contentID}.
func contentPath(endpoint, contentID string) string {
	path := constants.APIVersionPath + "/" + strings.Trim(endpoint, "/")
	if contentID != "" {
		path += "/" + url.PathEscape(contentID)
	}

	return path
}

func (c *Client) logFetched(endpoint string, value microcms.Value) {
	if c.logger == nil {
		return
	}

	c.logger.Debug("Content fetched", map[string]interface{}{
		"endpoint": endpoint,
		"kind":     value.Kind().String(),
	})
}
