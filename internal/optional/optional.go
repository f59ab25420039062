// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

// Package optional provides an explicit Some/None value used by request
// objects whose fields the server treats as "not supplied" when absent.
//
// A zero Value is None, so request structs can be built with only the fields
// a caller cares about:
//
//	q := models.ItemQuery{
//	    UserID:     "u1",
//	    StartIndex: optional.Some(0),
//	    Limit:      optional.Some(50),
//	}
//
// Values round-trip through JSON as either the wrapped value or null.
package optional

import (
	"bytes"

	"github.com/goccy/go-json"
)

// Value holds either a T (Some) or nothing (None).
type Value[T any] struct {
	value T
	ok    bool
}

// Some wraps v as a present value.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, ok: true}
}

// None returns an absent value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Value[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// Get returns the wrapped value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present.
func (o Value[T]) IsSome() bool {
	return o.ok
}

// IsNone reports whether the value is absent.
func (o Value[T]) IsNone() bool {
	return !o.ok
}

// OrElse returns the wrapped value, or def when absent.
func (o Value[T]) OrElse(def T) T {
	if !o.ok {
		return def
	}
	return o.value
}

// Or returns o when present, otherwise other.
func (o Value[T]) Or(other Value[T]) Value[T] {
	if o.ok {
		return o
	}
	return other
}

// Ptr returns a pointer to a copy of the wrapped value, or nil when absent.
func (o Value[T]) Ptr() *T {
	if !o.ok {
		return nil
	}
	v := o.value
	return &v
}

// Interface returns the wrapped value as any, or nil when absent.
// The validation package uses it to look through optionals.
func (o Value[T]) Interface() any {
	if !o.ok {
		return nil
	}
	return o.value
}

var nullLiteral = []byte("null")

// MarshalJSON encodes None as null and Some(v) as v.
func (o Value[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return nullLiteral, nil
	}
	return json.Marshal(o.value)
}

// UnmarshalJSON decodes null as None and anything else as Some.
func (o *Value[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), nullLiteral) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
