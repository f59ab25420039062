// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package models

import (
	"fmt"
	"strings"
)

// ImageType identifies an image slot on an item. The value is the exact
// path segment the server expects.
type ImageType string

const (
	ImageTypePrimary    ImageType = "Primary"
	ImageTypeArt        ImageType = "Art"
	ImageTypeBackdrop   ImageType = "Backdrop"
	ImageTypeBanner     ImageType = "Banner"
	ImageTypeLogo       ImageType = "Logo"
	ImageTypeThumb      ImageType = "Thumb"
	ImageTypeDisc       ImageType = "Disc"
	ImageTypeBox        ImageType = "Box"
	ImageTypeScreenshot ImageType = "Screenshot"
	ImageTypeMenu       ImageType = "Menu"
	ImageTypeChapter    ImageType = "Chapter"
	ImageTypeBoxRear    ImageType = "BoxRear"
)

// ImageTypes lists every known image type.
var ImageTypes = []ImageType{
	ImageTypePrimary, ImageTypeArt, ImageTypeBackdrop, ImageTypeBanner,
	ImageTypeLogo, ImageTypeThumb, ImageTypeDisc, ImageTypeBox,
	ImageTypeScreenshot, ImageTypeMenu, ImageTypeChapter, ImageTypeBoxRear,
}

// ImageFormat is the output encoding requested for an image.
// The zero value behaves as ImageFormatOriginal.
type ImageFormat string

const (
	ImageFormatOriginal ImageFormat = "Original"
	ImageFormatGif      ImageFormat = "Gif"
	ImageFormatJpg      ImageFormat = "Jpg"
	ImageFormatPng      ImageFormat = "Png"
	ImageFormatWebp     ImageFormat = "Webp"
)

// ImageFormats lists every known output format.
var ImageFormats = []ImageFormat{
	ImageFormatOriginal, ImageFormatGif, ImageFormatJpg, ImageFormatPng, ImageFormatWebp,
}

// IsOriginal reports whether no re-encoding was requested.
func (f ImageFormat) IsOriginal() bool {
	return f == "" || f == ImageFormatOriginal
}

// SortOrder controls listing direction.
type SortOrder string

const (
	SortOrderAscending  SortOrder = "Ascending"
	SortOrderDescending SortOrder = "Descending"
)

// SortOrders lists both sort directions.
var SortOrders = []SortOrder{SortOrderAscending, SortOrderDescending}

// ItemFields names an optional field the server should include in results.
type ItemFields string

const (
	ItemFieldsAudioInfo               ItemFields = "AudioInfo"
	ItemFieldsChapters                ItemFields = "Chapters"
	ItemFieldsCriticRatingSummary     ItemFields = "CriticRatingSummary"
	ItemFieldsCumulativeRunTimeTicks  ItemFields = "CumulativeRunTimeTicks"
	ItemFieldsDateCreated             ItemFields = "DateCreated"
	ItemFieldsDisplayMediaType        ItemFields = "DisplayMediaType"
	ItemFieldsGenres                  ItemFields = "Genres"
	ItemFieldsHomePageURL             ItemFields = "HomePageUrl"
	ItemFieldsIndexOptions            ItemFields = "IndexOptions"
	ItemFieldsMediaStreams            ItemFields = "MediaStreams"
	ItemFieldsOverview                ItemFields = "Overview"
	ItemFieldsParentID                ItemFields = "ParentId"
	ItemFieldsPath                    ItemFields = "Path"
	ItemFieldsPeople                  ItemFields = "People"
	ItemFieldsProviderIDs             ItemFields = "ProviderIds"
	ItemFieldsPrimaryImageAspectRatio ItemFields = "PrimaryImageAspectRatio"
	ItemFieldsSortName                ItemFields = "SortName"
	ItemFieldsStudios                 ItemFields = "Studios"
	ItemFieldsTaglines                ItemFields = "Taglines"
)

// ItemFilter restricts listing results.
type ItemFilter string

const (
	ItemFilterIsFolder          ItemFilter = "IsFolder"
	ItemFilterIsNotFolder       ItemFilter = "IsNotFolder"
	ItemFilterIsUnplayed        ItemFilter = "IsUnplayed"
	ItemFilterIsPlayed          ItemFilter = "IsPlayed"
	ItemFilterIsFavorite        ItemFilter = "IsFavorite"
	ItemFilterIsResumable       ItemFilter = "IsResumable"
	ItemFilterLikes             ItemFilter = "Likes"
	ItemFilterDislikes          ItemFilter = "Dislikes"
	ItemFilterIsFavoriteOrLikes ItemFilter = "IsFavoriteOrLikes"
)

// LocationType describes where an item lives.
type LocationType string

const (
	LocationTypeFileSystem LocationType = "FileSystem"
	LocationTypeRemote     LocationType = "Remote"
	LocationTypeVirtual    LocationType = "Virtual"
	LocationTypeOffline    LocationType = "Offline"
)

// SeriesStatus is the airing state of a series.
type SeriesStatus string

const (
	SeriesStatusContinuing SeriesStatus = "Continuing"
	SeriesStatusEnded      SeriesStatus = "Ended"
)

// VideoType is the container kind of a video item.
type VideoType string

const (
	VideoTypeVideoFile VideoType = "VideoFile"
	VideoTypeIso       VideoType = "Iso"
	VideoTypeDvd       VideoType = "Dvd"
	VideoTypeBluRay    VideoType = "BluRay"
	VideoTypeHdDvd     VideoType = "HdDvd"
)

// Common item type names used as path prefixes and IncludeItemTypes values.
const (
	ItemTypeMovies      = "Movies"
	ItemTypeShows       = "Shows"
	ItemTypeTrailers    = "Trailers"
	ItemTypeAlbums      = "Albums"
	ItemTypeGames       = "Games"
	ItemTypeSongs       = "Songs"
	ItemTypeArtists     = "Artists"
	ItemTypeGenres      = "Genres"
	ItemTypeMusicGenres = "MusicGenres"
	ItemTypeGameGenres  = "GameGenres"
	ItemTypeStudios     = "Studios"
	ItemTypePersons     = "Persons"
	ItemTypeYears       = "Years"
)

// Person roles accepted by PersonTypes filters.
const (
	PersonTypeActor     = "Actor"
	PersonTypeDirector  = "Director"
	PersonTypeComposer  = "Composer"
	PersonTypeWriter    = "Writer"
	PersonTypeGuestStar = "GuestStar"
	PersonTypeProducer  = "Producer"
)

// Sort keys accepted by SortBy.
const (
	SortByAlbum           = "Album"
	SortByAlbumArtist     = "AlbumArtist"
	SortByArtist          = "Artist"
	SortByCommunityRating = "CommunityRating"
	SortByCriticRating    = "CriticRating"
	SortByDateCreated     = "DateCreated"
	SortByDatePlayed      = "DatePlayed"
	SortByPremiereDate    = "PremiereDate"
	SortByProductionYear  = "ProductionYear"
	SortByRandom          = "Random"
	SortByRuntime         = "Runtime"
	SortBySortName        = "SortName"
)

// ParseImageType matches s case-insensitively against the known image types.
func ParseImageType(s string) (ImageType, error) {
	for _, t := range ImageTypes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown image type %q", s)
}

// ParseImageFormat matches s case-insensitively against the known formats.
// An empty string yields ImageFormatOriginal.
func ParseImageFormat(s string) (ImageFormat, error) {
	if s == "" {
		return ImageFormatOriginal, nil
	}
	for _, f := range ImageFormats {
		if strings.EqualFold(string(f), s) {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown image format %q", s)
}

// ParseSortOrder matches s case-insensitively against the sort directions.
func ParseSortOrder(s string) (SortOrder, error) {
	for _, o := range SortOrders {
		if strings.EqualFold(string(o), s) {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown sort order %q", s)
}
