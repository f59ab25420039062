// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestBaseItemDto_ImageHelpers(t *testing.T) {
	item := &BaseItemDto{
		ID: "1",
		ImageTags: map[ImageType]string{
			ImageTypePrimary: "p",
			ImageTypeLogo:    "",
			ImageTypeThumb:   "t",
		},
		BackdropImageTags: []string{"b0", "b1"},
	}

	if !item.HasImage(ImageTypePrimary) {
		t.Error("expected primary image")
	}
	if item.HasLogo() {
		t.Error("empty logo tag should count as no logo")
	}
	if item.HasArt() {
		t.Error("no art tag expected")
	}
	if !item.HasThumb() {
		t.Error("expected thumb")
	}
	if item.BackdropCount() != 2 {
		t.Errorf("BackdropCount() = %d, want 2", item.BackdropCount())
	}

	var empty BaseItemDto
	if empty.HasImage(ImageTypePrimary) || empty.BackdropCount() != 0 {
		t.Error("zero BaseItemDto should report no images")
	}
}

func TestBaseItemDto_DecodesServerJSON(t *testing.T) {
	payload := `{
		"Id": "abc",
		"Name": "Episode 1",
		"ImageTags": {"Primary": "tag1"},
		"BackdropImageTags": [],
		"ParentBackdropItemId": "series1",
		"ParentBackdropImageTags": ["bd0", "bd1", "bd2"],
		"SeriesId": "series1",
		"SeriesThumbImageTag": "st",
		"Chapters": [{"StartPositionTicks": 0, "Name": "Intro", "ImageTag": "c0"}]
	}`

	var item BaseItemDto
	if err := json.Unmarshal([]byte(payload), &item); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if item.ID != "abc" {
		t.Errorf("ID = %q", item.ID)
	}
	if tag, ok := item.ImageTag(ImageTypePrimary); !ok || tag != "tag1" {
		t.Errorf("ImageTag(Primary) = (%q, %v)", tag, ok)
	}
	if item.BackdropCount() != 0 || len(item.ParentBackdropImageTags) != 3 {
		t.Errorf("backdrops = %d own, %d parent", item.BackdropCount(), len(item.ParentBackdropImageTags))
	}
	if len(item.Chapters) != 1 || item.Chapters[0].ImageTag != "c0" {
		t.Errorf("Chapters = %+v", item.Chapters)
	}
}

func TestVideoStreamOptions_EmbeddedJSON(t *testing.T) {
	payload := `{"ItemId": "42", "OutputFileExtension": "mkv", "Static": true, "VideoCodec": "h264", "MaxWidth": 1280}`

	var opts VideoStreamOptions
	if err := json.Unmarshal([]byte(payload), &opts); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if opts.ItemID != "42" || !opts.Static || opts.OutputFileExtension != "mkv" {
		t.Errorf("embedded StreamOptions not decoded: %+v", opts.StreamOptions)
	}
	if got := opts.VideoCodec.OrElse(""); got != "h264" {
		t.Errorf("VideoCodec = %q", got)
	}
	if got := opts.MaxWidth.OrElse(0); got != 1280 {
		t.Errorf("MaxWidth = %d", got)
	}
	if opts.Width.IsSome() {
		t.Error("Width should be None")
	}
}

func TestNewImageOptions(t *testing.T) {
	opts := NewImageOptions(ImageTypeThumb)
	if opts.ImageType != ImageTypeThumb || !opts.EnableImageEnhancers || !opts.Format.IsOriginal() {
		t.Errorf("NewImageOptions = %+v", opts)
	}
}
