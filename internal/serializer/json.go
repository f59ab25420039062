// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

// Package serializer provides the JSON serializer the API client delegates
// to, backed by goccy/go-json.
package serializer

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"
)

// ErrNilReader is returned when DeserializeFromStream is given no reader.
var ErrNilReader = errors.New("serializer: nil reader")

// JSON implements the client's serializer contract.
type JSON struct {
	// DisallowUnknownFields rejects payload fields the target type lacks.
	DisallowUnknownFields bool
}

// NewJSON returns a JSON serializer with lenient decoding.
func NewJSON() *JSON {
	return &JSON{}
}

// SerializeToString encodes v as a JSON string.
func (s *JSON) SerializeToString(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to serialize %T: %w", v, err)
	}
	return string(data), nil
}

// DeserializeFromStream decodes one JSON value from r into v, which must be
// a non-nil pointer.
func (s *JSON) DeserializeFromStream(r io.Reader, v any) error {
	if r == nil {
		return ErrNilReader
	}
	dec := json.NewDecoder(r)
	if s.DisallowUnknownFields {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to deserialize into %T: %w", v, err)
	}
	return nil
}

// Marshal encodes v to bytes.
func (s *JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes data into v.
func (s *JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
