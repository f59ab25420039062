// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import (
	"strings"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/metrics"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/querystring"
)

var slugReplacer = strings.NewReplacer("/", "-", "?", "-")

// Slugify makes a display name safe to embed as a single path segment by
// replacing '/' and '?' with '-'. Percent-encoding of anything else is left
// to the caller.
func Slugify(name string) string {
	return slugReplacer.Replace(name)
}

// BuildURL returns {APIURL}/{handler}.
func (c *Client) BuildURL(handler string) (string, error) {
	u, err := c.apiURL(handler, nil)
	return c.finish(metrics.FamilyAPI, "BuildURL", u, err)
}

// BuildURLWithParams returns {APIURL}/{handler}?{params}. The query string
// is omitted when params is empty.
func (c *Client) BuildURLWithParams(handler string, params *querystring.Dictionary) (string, error) {
	if params == nil {
		return c.finish(metrics.FamilyAPI, "BuildURLWithParams", "", invalidArgument("params"))
	}
	u, err := c.apiURL(handler, params)
	return c.finish(metrics.FamilyAPI, "BuildURLWithParams", u, err)
}

func (c *Client) apiURL(handler string, params *querystring.Dictionary) (string, error) {
	if handler == "" {
		return "", invalidArgument("handler")
	}

	u := c.APIURL() + "/" + handler
	if params != nil {
		u = params.URL(u)
	}
	return u, nil
}

// finish records the outcome of a public builder. A "no image" result is
// counted by noImage, not here.
func (c *Client) finish(family, op, u string, err error) (string, error) {
	if err != nil {
		metrics.RecordURLBuild(family, err)
		c.logger.Warn().Err(err).Str("operation", op).Msg("URL build rejected")
		return "", err
	}
	if u == "" {
		return "", nil
	}

	metrics.RecordURLBuild(family, nil)
	c.logger.Debug().Str("operation", op).Str("url", u).Msg("URL built")
	return u, nil
}
