// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package querystring

import (
	"net/url"
	"strconv"
	"strings"
)

// DefaultDelimiter joins list values unless a caller overrides it.
const DefaultDelimiter = ","

// Dictionary is an insertion-ordered set of query parameters.
//
// Setting a key that already exists replaces its value but keeps its
// original position. The zero value is ready to use. A Dictionary is not
// safe for concurrent mutation; builders create one per URL.
type Dictionary struct {
	keys   []string
	values map[string]string
}

// New returns an empty Dictionary.
func New() *Dictionary {
	return &Dictionary{}
}

// Set stores value under key unconditionally.
func (d *Dictionary) Set(key, value string) {
	if d.values == nil {
		d.values = make(map[string]string)
	}
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
}

// SetBool stores a boolean flag unconditionally ("true"/"false").
func (d *Dictionary) SetBool(key string, value bool) {
	d.Set(key, strconv.FormatBool(value))
}

// SetInt stores an integer unconditionally.
func (d *Dictionary) SetInt(key string, value int) {
	d.Set(key, strconv.Itoa(value))
}

// SetIfNotEmpty stores value only when it is non-empty.
func (d *Dictionary) SetIfNotEmpty(key, value string) {
	if value == "" {
		return
	}
	d.Set(key, value)
}

// SetList joins values with the default delimiter. Empty lists are skipped.
func (d *Dictionary) SetList(key string, values []string) {
	d.SetListDelimited(key, values, DefaultDelimiter)
}

// SetListDelimited joins values with delim. Empty lists are skipped.
func (d *Dictionary) SetListDelimited(key string, values []string, delim string) {
	if len(values) == 0 {
		return
	}
	d.Set(key, strings.Join(values, delim))
}

// Get returns the value stored under key.
func (d *Dictionary) Get(key string) (string, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Has reports whether key has been set.
func (d *Dictionary) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Len returns the number of distinct keys.
func (d *Dictionary) Len() int {
	return len(d.keys)
}

// Keys returns the keys in insertion order.
func (d *Dictionary) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Encode renders the parameters as key=value pairs joined by '&', in
// insertion order, with keys and values query-escaped.
func (d *Dictionary) Encode() string {
	if len(d.keys) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, k := range d.keys {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(k))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(d.values[k]))
	}
	return sb.String()
}

// URL appends the encoded parameters to prefix. Without parameters the
// prefix is returned unchanged.
func (d *Dictionary) URL(prefix string) string {
	encoded := d.Encode()
	if encoded == "" {
		return prefix
	}
	return prefix + "?" + encoded
}
