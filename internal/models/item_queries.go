// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package models

import "github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"

// ItemQuery selects items from a user's library (Users/{UserId}/Items).
type ItemQuery struct {
	UserID   string                 `json:"UserId"`
	ParentID optional.Value[string] `json:"ParentId"`

	StartIndex optional.Value[int] `json:"StartIndex" validate:"omitempty,min=0"`
	Limit      optional.Value[int] `json:"Limit" validate:"omitempty,min=0"`

	SortBy    []string                  `json:"SortBy,omitempty"`
	SortOrder optional.Value[SortOrder] `json:"SortOrder"`

	Fields               []ItemFields   `json:"Fields,omitempty"`
	Filters              []ItemFilter   `json:"Filters,omitempty"`
	ImageTypes           []ImageType    `json:"ImageTypes,omitempty"`
	MediaTypes           []string       `json:"MediaTypes,omitempty"`
	IDs                  []string       `json:"Ids,omitempty"`
	IncludeItemTypes     []string       `json:"IncludeItemTypes,omitempty"`
	ExcludeItemTypes     []string       `json:"ExcludeItemTypes,omitempty"`
	VideoTypes           []VideoType    `json:"VideoTypes,omitempty"`
	SeriesStatuses       []SeriesStatus `json:"SeriesStatuses,omitempty"`
	AirDays              []string       `json:"AirDays,omitempty"`
	LocationTypes        []LocationType `json:"LocationTypes,omitempty"`
	ExcludeLocationTypes []LocationType `json:"ExcludeLocationTypes,omitempty"`
	PersonTypes          []string       `json:"PersonTypes,omitempty"`
	Years                []int          `json:"Years,omitempty"`

	// Pipe-delimited on the wire because names may contain commas.
	Genres  []string `json:"Genres,omitempty"`
	Studios []string `json:"Studios,omitempty"`
	Artists []string `json:"Artists,omitempty"`

	Person                         optional.Value[string] `json:"Person"`
	SearchTerm                     optional.Value[string] `json:"SearchTerm"`
	NameStartsWith                 optional.Value[string] `json:"NameStartsWith"`
	NameStartsWithOrGreater        optional.Value[string] `json:"NameStartsWithOrGreater"`
	NameLessThan                   optional.Value[string] `json:"NameLessThan"`
	AlbumArtistStartsWithOrGreater optional.Value[string] `json:"AlbumArtistStartsWithOrGreater"`
	MinOfficialRating              optional.Value[string] `json:"MinOfficialRating"`
	MaxOfficialRating              optional.Value[string] `json:"MaxOfficialRating"`
	AdjacentTo                     optional.Value[string] `json:"AdjacentTo"`

	Is3D                optional.Value[bool] `json:"Is3D"`
	IsHD                optional.Value[bool] `json:"IsHD"`
	IsPlayed            optional.Value[bool] `json:"IsPlayed"`
	IsMissing           optional.Value[bool] `json:"IsMissing"`
	IsUnaired           optional.Value[bool] `json:"IsUnaired"`
	IsVirtualUnaired    optional.Value[bool] `json:"IsVirtualUnaired"`
	IsInBoxSet          optional.Value[bool] `json:"IsInBoxSet"`
	CollapseBoxSetItems optional.Value[bool] `json:"CollapseBoxSetItems"`
	HasThemeSong        optional.Value[bool] `json:"HasThemeSong"`
	HasThemeVideo       optional.Value[bool] `json:"HasThemeVideo"`
	HasSubtitles        optional.Value[bool] `json:"HasSubtitles"`
	HasSpecialFeature   optional.Value[bool] `json:"HasSpecialFeature"`
	HasTrailer          optional.Value[bool] `json:"HasTrailer"`
	HasParentalRating   optional.Value[bool] `json:"HasParentalRating"`

	MinIndexNumber    optional.Value[int] `json:"MinIndexNumber"`
	ParentIndexNumber optional.Value[int] `json:"ParentIndexNumber"`
	AiredDuringSeason optional.Value[int] `json:"AiredDuringSeason"`
	MinPlayers        optional.Value[int] `json:"MinPlayers" validate:"omitempty,min=0"`
	MaxPlayers        optional.Value[int] `json:"MaxPlayers" validate:"omitempty,min=0"`

	MinCommunityRating optional.Value[float64] `json:"MinCommunityRating"`
	MinCriticRating    optional.Value[float64] `json:"MinCriticRating"`

	Recursive bool `json:"Recursive"`
}

// ItemsByNameQuery lists named entities such as genres, studios, people,
// artists and years.
type ItemsByNameQuery struct {
	UserID   optional.Value[string] `json:"UserId"`
	ParentID optional.Value[string] `json:"ParentId"`

	StartIndex optional.Value[int] `json:"StartIndex" validate:"omitempty,min=0"`
	Limit      optional.Value[int] `json:"Limit" validate:"omitempty,min=0"`

	SortBy    []string                  `json:"SortBy,omitempty"`
	SortOrder optional.Value[SortOrder] `json:"SortOrder"`

	Fields           []ItemFields `json:"Fields,omitempty"`
	Filters          []ItemFilter `json:"Filters,omitempty"`
	ImageTypes       []ImageType  `json:"ImageTypes,omitempty"`
	MediaTypes       []string     `json:"MediaTypes,omitempty"`
	IncludeItemTypes []string     `json:"IncludeItemTypes,omitempty"`
	ExcludeItemTypes []string     `json:"ExcludeItemTypes,omitempty"`
	PersonTypes      []string     `json:"PersonTypes,omitempty"`

	NameStartsWith          optional.Value[string] `json:"NameStartsWith"`
	NameStartsWithOrGreater optional.Value[string] `json:"NameStartsWithOrGreater"`
	NameLessThan            optional.Value[string] `json:"NameLessThan"`

	IsPlayed optional.Value[bool] `json:"IsPlayed"`

	Recursive bool `json:"Recursive"`
}

// NextUpQuery requests the next unwatched episode per series (Shows/NextUp).
type NextUpQuery struct {
	UserID     string                 `json:"UserId"`
	SeriesID   optional.Value[string] `json:"SeriesId"`
	StartIndex optional.Value[int]    `json:"StartIndex" validate:"omitempty,min=0"`
	Limit      optional.Value[int]    `json:"Limit" validate:"omitempty,min=0"`
	Fields     []ItemFields           `json:"Fields,omitempty"`
}

// SimilarItemsQuery drives both the Similar and InstantMix endpoints. ID is
// required by the id-based builders.
type SimilarItemsQuery struct {
	ID     string                 `json:"Id"`
	UserID optional.Value[string] `json:"UserId"`
	Limit  optional.Value[int]    `json:"Limit" validate:"omitempty,min=0"`
	Fields []ItemFields           `json:"Fields,omitempty"`
}
