// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package models

import "github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"

// ImageOptions describes a single image request.
//
// Tag is normally filled in by the item-based builders from the item's tag
// data; callers using the id-based builders may set it themselves.
type ImageOptions struct {
	ImageType  ImageType           `json:"ImageType"`
	ImageIndex optional.Value[int] `json:"ImageIndex" validate:"omitempty,min=0"`

	Width     optional.Value[int] `json:"Width" validate:"omitempty,min=0"`
	Height    optional.Value[int] `json:"Height" validate:"omitempty,min=0"`
	MaxWidth  optional.Value[int] `json:"MaxWidth" validate:"omitempty,min=0"`
	MaxHeight optional.Value[int] `json:"MaxHeight" validate:"omitempty,min=0"`

	// Quality falls back to the client's default image quality when None.
	Quality optional.Value[int] `json:"Quality" validate:"omitempty,min=0,max=100"`

	Tag string `json:"Tag,omitempty"`

	CropWhitespace       optional.Value[bool] `json:"CropWhitespace"`
	EnableImageEnhancers bool                 `json:"EnableImageEnhancers"`

	Format ImageFormat `json:"Format,omitempty"`

	AddPlayedIndicator bool                    `json:"AddPlayedIndicator"`
	PercentPlayed      optional.Value[float64] `json:"PercentPlayed" validate:"omitempty,min=0,max=100"`
	BackgroundColor    optional.Value[string]  `json:"BackgroundColor"`
}

// NewImageOptions returns options for imageType with image enhancers on,
// which is what the server does when the flag is omitted.
func NewImageOptions(imageType ImageType) ImageOptions {
	return ImageOptions{
		ImageType:            imageType,
		EnableImageEnhancers: true,
		Format:               ImageFormatOriginal,
	}
}
