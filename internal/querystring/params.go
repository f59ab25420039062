// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package querystring

import (
	"strconv"
	"strings"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
)

// Param is one emission rule for a request type Q: a query key, a presence
// check, and a formatter. Apply writes Key=Format(q) only when Present(q).
type Param[Q any] struct {
	Key     string
	Present func(q Q) bool
	Format  func(q Q) string
}

// Params is an ordered emission table for Q.
type Params[Q any] []Param[Q]

// Apply evaluates every rule against q and writes the present ones into d
// in table order.
func (ps Params[Q]) Apply(d *Dictionary, q Q) {
	for _, p := range ps {
		if p.Present(q) {
			d.Set(p.Key, p.Format(q))
		}
	}
}

// Keys returns the query keys the table can emit, in order.
func (ps Params[Q]) Keys() []string {
	keys := make([]string, len(ps))
	for i, p := range ps {
		keys[i] = p.Key
	}
	return keys
}

// Opt emits an optional field when it is Some.
func Opt[Q, T any](key string, get func(Q) optional.Value[T], format func(T) string) Param[Q] {
	return Param[Q]{
		Key:     key,
		Present: func(q Q) bool { return get(q).IsSome() },
		Format: func(q Q) string {
			v, _ := get(q).Get()
			return format(v)
		},
	}
}

// OptString emits an optional string when it is Some and non-empty.
func OptString[Q any](key string, get func(Q) optional.Value[string]) Param[Q] {
	return Param[Q]{
		Key: key,
		Present: func(q Q) bool {
			v, ok := get(q).Get()
			return ok && v != ""
		},
		Format: func(q Q) string { return get(q).OrElse("") },
	}
}

// OptText emits an optional string-backed enum by its textual name.
func OptText[Q any, E ~string](key string, get func(Q) optional.Value[E]) Param[Q] {
	return Param[Q]{
		Key: key,
		Present: func(q Q) bool {
			v, ok := get(q).Get()
			return ok && v != ""
		},
		Format: func(q Q) string {
			v, _ := get(q).Get()
			return string(v)
		},
	}
}

// OptInt emits an optional int when it is Some.
func OptInt[Q any](key string, get func(Q) optional.Value[int]) Param[Q] {
	return Opt(key, get, strconv.Itoa)
}

// OptInt64 emits an optional int64 when it is Some.
func OptInt64[Q any](key string, get func(Q) optional.Value[int64]) Param[Q] {
	return Opt(key, get, func(v int64) string { return strconv.FormatInt(v, 10) })
}

// OptFloat emits an optional float64 in its shortest decimal form.
func OptFloat[Q any](key string, get func(Q) optional.Value[float64]) Param[Q] {
	return Opt(key, get, FormatFloat)
}

// OptBool emits an optional bool when it is Some, whatever its value.
func OptBool[Q any](key string, get func(Q) optional.Value[bool]) Param[Q] {
	return Opt(key, get, strconv.FormatBool)
}

// NonEmpty emits a plain string field when it is non-empty.
func NonEmpty[Q any](key string, get func(Q) string) Param[Q] {
	return Param[Q]{
		Key:     key,
		Present: func(q Q) bool { return get(q) != "" },
		Format:  get,
	}
}

// Always emits a boolean flag regardless of its value.
func Always[Q any](key string, get func(Q) bool) Param[Q] {
	return Param[Q]{
		Key:     key,
		Present: func(Q) bool { return true },
		Format:  func(q Q) string { return strconv.FormatBool(get(q)) },
	}
}

// WhenTrue emits key=true only when the flag is set.
func WhenTrue[Q any](key string, get func(Q) bool) Param[Q] {
	return Param[Q]{
		Key:     key,
		Present: get,
		Format:  func(Q) string { return "true" },
	}
}

// List joins a string-backed slice with the default delimiter. Nil and
// empty slices are skipped.
func List[Q any, E ~string](key string, get func(Q) []E) Param[Q] {
	return ListDelimited(key, DefaultDelimiter, get)
}

// ListDelimited joins a string-backed slice with delim.
func ListDelimited[Q any, E ~string](key, delim string, get func(Q) []E) Param[Q] {
	return ListFunc(key, delim, get, func(e E) string { return string(e) })
}

// ListFunc joins any slice with delim after formatting each element.
func ListFunc[Q, E any](key, delim string, get func(Q) []E, format func(E) string) Param[Q] {
	return Param[Q]{
		Key:     key,
		Present: func(q Q) bool { return len(get(q)) > 0 },
		Format: func(q Q) string {
			items := get(q)
			parts := make([]string, len(items))
			for i, it := range items {
				parts[i] = format(it)
			}
			return strings.Join(parts, delim)
		},
	}
}

// FormatFloat renders f without trailing zeros or exponent.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
