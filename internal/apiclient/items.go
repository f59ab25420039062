// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import (
	"strconv"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/metrics"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/models"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/querystring"
)

type itemQuery = *models.ItemQuery

var itemQueryParams = querystring.Params[itemQuery]{
	querystring.OptString("ParentId", func(q itemQuery) optional.Value[string] { return q.ParentID }),
	querystring.OptInt("StartIndex", func(q itemQuery) optional.Value[int] { return q.StartIndex }),
	querystring.OptInt("Limit", func(q itemQuery) optional.Value[int] { return q.Limit }),
	querystring.List("SortBy", func(q itemQuery) []string { return q.SortBy }),
	querystring.OptText("sortOrder", func(q itemQuery) optional.Value[models.SortOrder] { return q.SortOrder }),
	querystring.List("SeriesStatus", func(q itemQuery) []models.SeriesStatus { return q.SeriesStatuses }),
	querystring.List("fields", func(q itemQuery) []models.ItemFields { return q.Fields }),
	querystring.List("Filters", func(q itemQuery) []models.ItemFilter { return q.Filters }),
	querystring.List("ImageTypes", func(q itemQuery) []models.ImageType { return q.ImageTypes }),
	querystring.OptBool("Is3D", func(q itemQuery) optional.Value[bool] { return q.Is3D }),
	querystring.List("AirDays", func(q itemQuery) []string { return q.AirDays }),
	querystring.List("VideoTypes", func(q itemQuery) []models.VideoType { return q.VideoTypes }),
	querystring.OptString("MinOfficialRating", func(q itemQuery) optional.Value[string] { return q.MinOfficialRating }),
	querystring.OptString("MaxOfficialRating", func(q itemQuery) optional.Value[string] { return q.MaxOfficialRating }),
	querystring.Always("recursive", func(q itemQuery) bool { return q.Recursive }),
	querystring.List("MediaTypes", func(q itemQuery) []string { return q.MediaTypes }),
	querystring.ListDelimited("Genres", "|", func(q itemQuery) []string { return q.Genres }),
	querystring.List("Ids", func(q itemQuery) []string { return q.IDs }),
	querystring.ListDelimited("Studios", "|", func(q itemQuery) []string { return q.Studios }),
	querystring.List("ExcludeItemTypes", func(q itemQuery) []string { return q.ExcludeItemTypes }),
	querystring.List("IncludeItemTypes", func(q itemQuery) []string { return q.IncludeItemTypes }),
	querystring.ListDelimited("Artists", "|", func(q itemQuery) []string { return q.Artists }),
	querystring.OptBool("HasThemeSong", func(q itemQuery) optional.Value[bool] { return q.HasThemeSong }),
	querystring.OptBool("HasThemeVideo", func(q itemQuery) optional.Value[bool] { return q.HasThemeVideo }),
	querystring.OptBool("HasSubtitles", func(q itemQuery) optional.Value[bool] { return q.HasSubtitles }),
	querystring.OptBool("HasSpecialFeature", func(q itemQuery) optional.Value[bool] { return q.HasSpecialFeature }),
	querystring.OptBool("HasTrailer", func(q itemQuery) optional.Value[bool] { return q.HasTrailer }),
	querystring.OptString("AdjacentTo", func(q itemQuery) optional.Value[string] { return q.AdjacentTo }),
	querystring.OptInt("MinIndexNumber", func(q itemQuery) optional.Value[int] { return q.MinIndexNumber }),
	querystring.OptBool("HasParentalRating", func(q itemQuery) optional.Value[bool] { return q.HasParentalRating }),
	querystring.OptBool("IsHD", func(q itemQuery) optional.Value[bool] { return q.IsHD }),
	querystring.List("PersonTypes", func(q itemQuery) []string { return q.PersonTypes }),
	querystring.ListFunc("Years", querystring.DefaultDelimiter, func(q itemQuery) []int { return q.Years }, strconv.Itoa),
	querystring.OptInt("ParentIndexNumber", func(q itemQuery) optional.Value[int] { return q.ParentIndexNumber }),
	querystring.OptBool("IsMissing", func(q itemQuery) optional.Value[bool] { return q.IsMissing }),
	querystring.OptBool("IsUnaired", func(q itemQuery) optional.Value[bool] { return q.IsUnaired }),
	querystring.OptBool("IsVirtualUnaired", func(q itemQuery) optional.Value[bool] { return q.IsVirtualUnaired }),
	querystring.OptString("Person", func(q itemQuery) optional.Value[string] { return q.Person }),
	querystring.OptString("SearchTerm", func(q itemQuery) optional.Value[string] { return q.SearchTerm }),
	querystring.OptString("NameStartsWith", func(q itemQuery) optional.Value[string] { return q.NameStartsWith }),
	querystring.OptString("NameStartsWithOrGreater", func(q itemQuery) optional.Value[string] { return q.NameStartsWithOrGreater }),
	querystring.OptString("NameLessThan", func(q itemQuery) optional.Value[string] { return q.NameLessThan }),
	querystring.OptString("AlbumArtistStartsWithOrGreater", func(q itemQuery) optional.Value[string] { return q.AlbumArtistStartsWithOrGreater }),
	querystring.List("LocationTypes", func(q itemQuery) []models.LocationType { return q.LocationTypes }),
	querystring.List("ExcludeLocationTypes", func(q itemQuery) []models.LocationType { return q.ExcludeLocationTypes }),
	querystring.OptFloat("MinCommunityRating", func(q itemQuery) optional.Value[float64] { return q.MinCommunityRating }),
	querystring.OptFloat("MinCriticRating", func(q itemQuery) optional.Value[float64] { return q.MinCriticRating }),
	querystring.OptInt("AiredDuringSeason", func(q itemQuery) optional.Value[int] { return q.AiredDuringSeason }),
	querystring.OptInt("MinPlayers", func(q itemQuery) optional.Value[int] { return q.MinPlayers }),
	querystring.OptInt("MaxPlayers", func(q itemQuery) optional.Value[int] { return q.MaxPlayers }),
	querystring.OptBool("IsPlayed", func(q itemQuery) optional.Value[bool] { return q.IsPlayed }),
	querystring.OptBool("IsInBoxSet", func(q itemQuery) optional.Value[bool] { return q.IsInBoxSet }),
	querystring.OptBool("CollapseBoxSetItems", func(q itemQuery) optional.Value[bool] { return q.CollapseBoxSetItems }),
}

type byNameQuery = *models.ItemsByNameQuery

var itemsByNameParams = querystring.Params[byNameQuery]{
	querystring.OptString("ParentId", func(q byNameQuery) optional.Value[string] { return q.ParentID }),
	querystring.OptString("UserId", func(q byNameQuery) optional.Value[string] { return q.UserID }),
	querystring.OptInt("StartIndex", func(q byNameQuery) optional.Value[int] { return q.StartIndex }),
	querystring.OptInt("Limit", func(q byNameQuery) optional.Value[int] { return q.Limit }),
	querystring.List("SortBy", func(q byNameQuery) []string { return q.SortBy }),
	querystring.OptText("sortOrder", func(q byNameQuery) optional.Value[models.SortOrder] { return q.SortOrder }),
	querystring.List("fields", func(q byNameQuery) []models.ItemFields { return q.Fields }),
	querystring.List("Filters", func(q byNameQuery) []models.ItemFilter { return q.Filters }),
	querystring.List("ImageTypes", func(q byNameQuery) []models.ImageType { return q.ImageTypes }),
	querystring.Always("recursive", func(q byNameQuery) bool { return q.Recursive }),
	querystring.List("MediaTypes", func(q byNameQuery) []string { return q.MediaTypes }),
	querystring.List("ExcludeItemTypes", func(q byNameQuery) []string { return q.ExcludeItemTypes }),
	querystring.List("IncludeItemTypes", func(q byNameQuery) []string { return q.IncludeItemTypes }),
	querystring.List("PersonTypes", func(q byNameQuery) []string { return q.PersonTypes }),
	querystring.OptString("NameStartsWith", func(q byNameQuery) optional.Value[string] { return q.NameStartsWith }),
	querystring.OptString("NameStartsWithOrGreater", func(q byNameQuery) optional.Value[string] { return q.NameStartsWithOrGreater }),
	querystring.OptString("NameLessThan", func(q byNameQuery) optional.Value[string] { return q.NameLessThan }),
	querystring.OptBool("IsPlayed", func(q byNameQuery) optional.Value[bool] { return q.IsPlayed }),
}

type nextUpQuery = *models.NextUpQuery

var nextUpParams = querystring.Params[nextUpQuery]{
	querystring.OptString("SeriesId", func(q nextUpQuery) optional.Value[string] { return q.SeriesID }),
	querystring.NonEmpty("UserId", func(q nextUpQuery) string { return q.UserID }),
	querystring.OptInt("StartIndex", func(q nextUpQuery) optional.Value[int] { return q.StartIndex }),
	querystring.OptInt("Limit", func(q nextUpQuery) optional.Value[int] { return q.Limit }),
	querystring.List("fields", func(q nextUpQuery) []models.ItemFields { return q.Fields }),
}

type similarQuery = *models.SimilarItemsQuery

var similarItemsParams = querystring.Params[similarQuery]{
	querystring.OptString("UserId", func(q similarQuery) optional.Value[string] { return q.UserID }),
	querystring.OptInt("Limit", func(q similarQuery) optional.Value[int] { return q.Limit }),
	querystring.List("fields", func(q similarQuery) []models.ItemFields { return q.Fields }),
}

// ItemListURL builds Users/{UserID}/Items for query.
func (c *Client) ItemListURL(query *models.ItemQuery) (string, error) {
	u, err := c.itemListURL(query)
	return c.finish(metrics.FamilyItems, "ItemListURL", u, err)
}

func (c *Client) itemListURL(query *models.ItemQuery) (string, error) {
	if query == nil {
		return "", invalidArgument("query")
	}
	if query.UserID == "" {
		return "", invalidArgument("query.UserID")
	}
	if err := validateRequest("query", query); err != nil {
		return "", err
	}

	d := querystring.New()
	itemQueryParams.Apply(d, query)
	return c.apiURL("Users/"+query.UserID+"/Items", d)
}

// ItemsByNameURL builds the listing for a by-name collection such as
// Genres, Studios, Persons, Artists or Years. itemType is the path prefix.
func (c *Client) ItemsByNameURL(itemType string, query *models.ItemsByNameQuery) (string, error) {
	u, err := c.itemsByNameURL(itemType, query)
	return c.finish(metrics.FamilyItems, "ItemsByNameURL", u, err)
}

func (c *Client) itemsByNameURL(itemType string, query *models.ItemsByNameQuery) (string, error) {
	if query == nil {
		return "", invalidArgument("query")
	}
	if itemType == "" {
		return "", invalidArgument("itemType")
	}
	if err := validateRequest("query", query); err != nil {
		return "", err
	}

	d := querystring.New()
	itemsByNameParams.Apply(d, query)
	return c.apiURL(itemType, d)
}

// NextUpURL builds Shows/NextUp for query.
func (c *Client) NextUpURL(query *models.NextUpQuery) (string, error) {
	u, err := c.nextUpURL(query)
	return c.finish(metrics.FamilyItems, "NextUpURL", u, err)
}

func (c *Client) nextUpURL(query *models.NextUpQuery) (string, error) {
	if query == nil {
		return "", invalidArgument("query")
	}
	if query.UserID == "" {
		return "", invalidArgument("query.UserID")
	}
	if err := validateRequest("query", query); err != nil {
		return "", err
	}

	d := querystring.New()
	nextUpParams.Apply(d, query)
	return c.apiURL(models.ItemTypeShows+"/NextUp", d)
}

// SimilarItemsURL builds {itemType}/{query.ID}/Similar.
func (c *Client) SimilarItemsURL(itemType string, query *models.SimilarItemsQuery) (string, error) {
	u, err := c.similarURL(itemType, query, "Similar")
	return c.finish(metrics.FamilyItems, "SimilarItemsURL", u, err)
}

// InstantMixURL builds {itemType}/{query.ID}/InstantMix.
func (c *Client) InstantMixURL(itemType string, query *models.SimilarItemsQuery) (string, error) {
	u, err := c.similarURL(itemType, query, "InstantMix")
	return c.finish(metrics.FamilyItems, "InstantMixURL", u, err)
}

func (c *Client) similarURL(itemType string, query *models.SimilarItemsQuery, action string) (string, error) {
	if query == nil {
		return "", invalidArgument("query")
	}
	if query.ID == "" {
		return "", invalidArgument("query.ID")
	}
	return c.similarPath(itemType, query.ID, query, action)
}

// InstantMixByNameURL builds {itemType}/{Slugify(name)}/InstantMix for
// by-name collections (genres, artists) that have no stable id. query.ID is
// ignored.
func (c *Client) InstantMixByNameURL(itemType, name string, query *models.SimilarItemsQuery) (string, error) {
	u, err := c.instantMixByNameURL(itemType, name, query)
	return c.finish(metrics.FamilyItems, "InstantMixByNameURL", u, err)
}

func (c *Client) instantMixByNameURL(itemType, name string, query *models.SimilarItemsQuery) (string, error) {
	if query == nil {
		return "", invalidArgument("query")
	}
	if name == "" {
		return "", invalidArgument("name")
	}
	return c.similarPath(itemType, Slugify(name), query, "InstantMix")
}

func (c *Client) similarPath(itemType, segment string, query *models.SimilarItemsQuery, action string) (string, error) {
	if itemType == "" {
		return "", invalidArgument("itemType")
	}
	if err := validateRequest("query", query); err != nil {
		return "", err
	}

	d := querystring.New()
	similarItemsParams.Apply(d, query)
	return c.apiURL(itemType+"/"+segment+"/"+action, d)
}
