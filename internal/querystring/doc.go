// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

/*
Package querystring accumulates URL query parameters for the API client.

Dictionary keeps keys in insertion order, replaces values on duplicate keys
(last write wins, first position kept) and renders a query-escaped
key=value&key2=value2 suffix.

Params is a declarative emission table: each Param names a query key, a
presence check and a formatter, so the rules for a request type can be
tested on their own and applied uniformly:

	var nextUpParams = querystring.Params[*models.NextUpQuery]{
	    querystring.NonEmpty("UserId", func(q *models.NextUpQuery) string { return q.UserID }),
	    querystring.OptInt("Limit", func(q *models.NextUpQuery) optional.Value[int] { return q.Limit }),
	    querystring.List("fields", func(q *models.NextUpQuery) []models.ItemFields { return q.Fields }),
	}

	d := querystring.New()
	nextUpParams.Apply(d, query)
	url := d.URL(base + "/Shows/NextUp")

Emission rules:
  - Opt* helpers write a field only when it is Some (strings also need to be non-empty)
  - List helpers join a non-empty slice with "," or a custom delimiter such as "|"
  - Always writes a boolean flag whatever its value
  - WhenTrue writes a flag only when it is set
*/
package querystring
