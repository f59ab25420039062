// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

/*
Package models defines the request objects and item DTOs consumed by the
API client's URL builders.

Key Components:

  - ItemQuery, ItemsByNameQuery, NextUpQuery, SimilarItemsQuery: listing requests
  - ImageOptions: image size, quality, format and index selection
  - StreamOptions, VideoStreamOptions: audio/video playback parameters
  - BaseItemDto, UserDto, BaseItemPerson, ChapterInfoDto: item-like inputs for image URLs
  - ImageType, ImageFormat, SortOrder, ItemFields, ItemFilter, ...: textual enums

Request objects carry no behavior. Nullable scalars use optional.Value so the
client can tell "not supplied" apart from a zero value; slices are treated as
absent when nil or empty. JSON field names follow the server's DTO casing so
request objects can be read straight from JSON files.
*/
package models
