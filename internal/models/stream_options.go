// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package models

import "github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"

// TicksPerMillisecond converts milliseconds to server ticks (100ns units).
const TicksPerMillisecond int64 = 10_000

// StreamOptions holds the parameters shared by audio and video streams.
type StreamOptions struct {
	ItemID string `json:"ItemId"`

	// OutputFileExtension becomes the stream path suffix. A leading dot is
	// accepted and normalized.
	OutputFileExtension string `json:"OutputFileExtension,omitempty"`

	AudioCodec         optional.Value[string] `json:"AudioCodec"`
	MaxAudioChannels   optional.Value[int]    `json:"MaxAudioChannels" validate:"omitempty,min=0"`
	MaxAudioSampleRate optional.Value[int]    `json:"MaxAudioSampleRate" validate:"omitempty,min=0"`
	AudioBitRate       optional.Value[int]    `json:"AudioBitRate" validate:"omitempty,min=0"`

	// StartTimeTicks is measured in 100-nanosecond ticks.
	StartTimeTicks optional.Value[int64] `json:"StartTimeTicks" validate:"omitempty,min=0"`

	// Static requests the original file without transcoding.
	Static bool `json:"Static"`
}

// VideoStreamOptions adds video parameters to StreamOptions.
type VideoStreamOptions struct {
	StreamOptions

	VideoCodec   optional.Value[string] `json:"VideoCodec"`
	VideoBitRate optional.Value[int]    `json:"VideoBitRate" validate:"omitempty,min=0"`

	Width     optional.Value[int] `json:"Width" validate:"omitempty,min=0"`
	Height    optional.Value[int] `json:"Height" validate:"omitempty,min=0"`
	MaxWidth  optional.Value[int] `json:"MaxWidth" validate:"omitempty,min=0"`
	MaxHeight optional.Value[int] `json:"MaxHeight" validate:"omitempty,min=0"`

	FrameRate optional.Value[float64] `json:"FrameRate" validate:"omitempty,min=0"`

	AudioStreamIndex    optional.Value[int] `json:"AudioStreamIndex" validate:"omitempty,min=0"`
	VideoStreamIndex    optional.Value[int] `json:"VideoStreamIndex" validate:"omitempty,min=0"`
	SubtitleStreamIndex optional.Value[int] `json:"SubtitleStreamIndex" validate:"omitempty,min=0"`

	Profile optional.Value[string] `json:"Profile"`
	Level   optional.Value[string] `json:"Level"`

	TimeStampOffsetMs optional.Value[int] `json:"TimeStampOffsetMs"`
}
