// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import "io"

// DeserializeFromStream decodes r into v using the client's serializer.
// Errors are returned unchanged.
func (c *Client) DeserializeFromStream(r io.Reader, v any) error {
	return c.serializer.DeserializeFromStream(r, v)
}

// SerializeToString encodes v using the client's serializer.
func (c *Client) SerializeToString(v any) (string, error) {
	return c.serializer.SerializeToString(v)
}

// Deserialize decodes r into a new T.
func Deserialize[T any](c *Client, r io.Reader) (T, error) {
	var v T
	err := c.serializer.DeserializeFromStream(r, &v)
	return v, err
}

// Serializer returns the client's JSON collaborator.
func (c *Client) Serializer() Serializer { return c.serializer }
