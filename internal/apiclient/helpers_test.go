// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/serializer"
)

const testBase = "http://media.local:8096/mediabrowser"

func testIdentity() Identity {
	return Identity{
		ServerHost:         "media.local",
		ServerPort:         8096,
		ClientName:         "Dashboard",
		DeviceName:         "kitchen",
		DeviceID:           "dev-1",
		ApplicationVersion: "1.0.0",
	}
}

// newTestClient returns a client for testIdentity with a silent logger.
func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	logger := zerolog.Nop()
	c, err := NewClient(&logger, serializer.NewJSON(), testIdentity(), opts...)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

// parsedURL splits a built URL into path (relative to testBase) and query.
type parsedURL struct {
	path  string
	query url.Values
	keys  []string
}

func parseBuilt(t *testing.T, raw string) parsedURL {
	t.Helper()
	if !strings.HasPrefix(raw, testBase+"/") {
		t.Fatalf("url %q does not start with %q", raw, testBase+"/")
	}
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("url.Parse(%q): %v", raw, err)
	}

	var keys []string
	if u.RawQuery != "" {
		for _, pair := range strings.Split(u.RawQuery, "&") {
			k, _, _ := strings.Cut(pair, "=")
			keys = append(keys, k)
		}
	}

	return parsedURL{
		path:  strings.TrimPrefix(u.Path, "/mediabrowser/"),
		query: u.Query(),
		keys:  keys,
	}
}

// checkStringEqual checks that got equals want
func checkStringEqual(t *testing.T, fieldName, got, want string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: expected %q, got %q", fieldName, want, got)
	}
}

// checkParam checks a single-valued query parameter
func checkParam(t *testing.T, p parsedURL, key, want string) {
	t.Helper()
	vals, ok := p.query[key]
	if !ok {
		t.Errorf("query key %q missing (keys %v)", key, p.keys)
		return
	}
	if len(vals) != 1 {
		t.Errorf("query key %q: expected exactly one value, got %v", key, vals)
		return
	}
	if vals[0] != want {
		t.Errorf("query %s: expected %q, got %q", key, want, vals[0])
	}
}

// checkNoParam checks that key is absent
func checkNoParam(t *testing.T, p parsedURL, key string) {
	t.Helper()
	if _, ok := p.query[key]; ok {
		t.Errorf("query key %q should be absent, got %q", key, p.query.Get(key))
	}
}

// checkInvalidArgument checks that err wraps ErrInvalidArgument
func checkInvalidArgument(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

// mustBuild fails the test on a builder error and parses the URL.
// Use as mustBuild(t)(c.ItemListURL(q)).
func mustBuild(t *testing.T) func(string, error) parsedURL {
	t.Helper()
	return func(u string, err error) parsedURL {
		t.Helper()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return parseBuilt(t, u)
	}
}
