// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package models

// BaseItemDto is the subset of the server's item representation the image
// builders need: own tags plus the inherited parent/series references.
type BaseItemDto struct {
	ID   string `json:"Id"`
	Name string `json:"Name,omitempty"`
	Type string `json:"Type,omitempty"`

	ImageTags         map[ImageType]string `json:"ImageTags,omitempty"`
	BackdropImageTags []string             `json:"BackdropImageTags,omitempty"`

	ParentBackdropItemID    string   `json:"ParentBackdropItemId,omitempty"`
	ParentBackdropImageTags []string `json:"ParentBackdropImageTags,omitempty"`

	ParentLogoItemID   string `json:"ParentLogoItemId,omitempty"`
	ParentLogoImageTag string `json:"ParentLogoImageTag,omitempty"`

	ParentArtItemID   string `json:"ParentArtItemId,omitempty"`
	ParentArtImageTag string `json:"ParentArtImageTag,omitempty"`

	ParentThumbItemID   string `json:"ParentThumbItemId,omitempty"`
	ParentThumbImageTag string `json:"ParentThumbImageTag,omitempty"`

	SeriesID            string `json:"SeriesId,omitempty"`
	SeriesThumbImageTag string `json:"SeriesThumbImageTag,omitempty"`

	Chapters []ChapterInfoDto `json:"Chapters,omitempty"`
}

// ImageTag returns the item's own tag for imageType.
func (b *BaseItemDto) ImageTag(imageType ImageType) (string, bool) {
	tag, ok := b.ImageTags[imageType]
	return tag, ok && tag != ""
}

// HasImage reports whether the item carries its own image of imageType.
func (b *BaseItemDto) HasImage(imageType ImageType) bool {
	_, ok := b.ImageTag(imageType)
	return ok
}

// HasLogo reports whether the item has its own logo.
func (b *BaseItemDto) HasLogo() bool { return b.HasImage(ImageTypeLogo) }

// HasArt reports whether the item has its own art image.
func (b *BaseItemDto) HasArt() bool { return b.HasImage(ImageTypeArt) }

// HasThumb reports whether the item has its own thumb.
func (b *BaseItemDto) HasThumb() bool { return b.HasImage(ImageTypeThumb) }

// BackdropCount is the number of backdrops the item owns.
func (b *BaseItemDto) BackdropCount() int { return len(b.BackdropImageTags) }

// ChapterInfoDto is a chapter marker with an optional still image.
type ChapterInfoDto struct {
	StartPositionTicks int64  `json:"StartPositionTicks"`
	Name               string `json:"Name,omitempty"`
	ImageTag           string `json:"ImageTag,omitempty"`
}

// UserDto is the part of a user record needed to build avatar URLs.
type UserDto struct {
	ID              string `json:"Id"`
	Name            string `json:"Name,omitempty"`
	PrimaryImageTag string `json:"PrimaryImageTag,omitempty"`
}

// HasPrimaryImage reports whether the user has an avatar.
func (u *UserDto) HasPrimaryImage() bool { return u.PrimaryImageTag != "" }

// BaseItemPerson is a cast or crew entry on an item. Person images are
// addressed by name, not id.
type BaseItemPerson struct {
	Name            string `json:"Name"`
	Role            string `json:"Role,omitempty"`
	Type            string `json:"Type,omitempty"`
	PrimaryImageTag string `json:"PrimaryImageTag,omitempty"`
}

// HasPrimaryImage reports whether the person has a primary image.
func (p *BaseItemPerson) HasPrimaryImage() bool { return p.PrimaryImageTag != "" }
