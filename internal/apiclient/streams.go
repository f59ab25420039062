// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import (
	"strings"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/metrics"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/models"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/querystring"
)

const (
	hlsAudioHandler = "audio.m3u8"
	hlsVideoHandler = "video.m3u8"
)

type streamOpts = *models.StreamOptions

var streamParams = querystring.Params[streamOpts]{
	querystring.OptString("audioCodec", func(o streamOpts) optional.Value[string] { return o.AudioCodec }),
	querystring.OptInt("MaxAudioChannels", func(o streamOpts) optional.Value[int] { return o.MaxAudioChannels }),
	querystring.OptInt("AudioSampleRate", func(o streamOpts) optional.Value[int] { return o.MaxAudioSampleRate }),
	querystring.OptInt("AudioBitRate", func(o streamOpts) optional.Value[int] { return o.AudioBitRate }),
	querystring.OptInt64("StartTimeTicks", func(o streamOpts) optional.Value[int64] { return o.StartTimeTicks }),
	querystring.Always("Static", func(o streamOpts) bool { return o.Static }),
}

type videoOpts = *models.VideoStreamOptions

var videoParams = querystring.Params[videoOpts]{
	querystring.OptString("VideoCodec", func(o videoOpts) optional.Value[string] { return o.VideoCodec }),
	querystring.OptInt("VideoBitRate", func(o videoOpts) optional.Value[int] { return o.VideoBitRate }),
	querystring.OptInt("Width", func(o videoOpts) optional.Value[int] { return o.Width }),
	querystring.OptInt("Height", func(o videoOpts) optional.Value[int] { return o.Height }),
	querystring.OptInt("MaxWidth", func(o videoOpts) optional.Value[int] { return o.MaxWidth }),
	querystring.OptInt("MaxHeight", func(o videoOpts) optional.Value[int] { return o.MaxHeight }),
	querystring.OptFloat("Framerate", func(o videoOpts) optional.Value[float64] { return o.FrameRate }),
	querystring.OptInt("AudioStreamIndex", func(o videoOpts) optional.Value[int] { return o.AudioStreamIndex }),
	querystring.OptInt("VideoStreamIndex", func(o videoOpts) optional.Value[int] { return o.VideoStreamIndex }),
	querystring.OptInt("SubtitleStreamIndex", func(o videoOpts) optional.Value[int] { return o.SubtitleStreamIndex }),
	querystring.OptString("Profile", func(o videoOpts) optional.Value[string] { return o.Profile }),
	querystring.OptString("Level", func(o videoOpts) optional.Value[string] { return o.Level }),
	querystring.OptInt("TimeStampOffsetMs", func(o videoOpts) optional.Value[int] { return o.TimeStampOffsetMs }),
}

// streamPath returns {prefix}/{itemID}/stream[.ext].
func streamPath(prefix string, options *models.StreamOptions) string {
	path := prefix + "/" + options.ItemID + "/stream"
	if ext := strings.TrimLeft(options.OutputFileExtension, "."); ext != "" {
		path += "." + ext
	}
	return path
}

// AudioStreamURL builds Audio/{ItemID}/stream[.ext].
func (c *Client) AudioStreamURL(options *models.StreamOptions) (string, error) {
	u, err := c.audioStreamURL(options, false)
	return c.finish(metrics.FamilyStreams, "AudioStreamURL", u, err)
}

// HLSAudioStreamURL builds the audio.m3u8 playlist URL. The item is passed
// as the id query parameter.
func (c *Client) HLSAudioStreamURL(options *models.StreamOptions) (string, error) {
	u, err := c.audioStreamURL(options, true)
	return c.finish(metrics.FamilyStreams, "HLSAudioStreamURL", u, err)
}

func (c *Client) audioStreamURL(options *models.StreamOptions, hls bool) (string, error) {
	if options == nil {
		return "", invalidArgument("options")
	}
	if options.ItemID == "" {
		return "", invalidArgument("options.ItemID")
	}

	d := querystring.New()
	if hls {
		d.Set("id", options.ItemID)
		return c.streamURL(hlsAudioHandler, options, d)
	}
	return c.streamURL(streamPath("Audio", options), options, d)
}

// VideoStreamURL builds Videos/{ItemID}/stream[.ext].
func (c *Client) VideoStreamURL(options *models.VideoStreamOptions) (string, error) {
	u, err := c.videoStreamURL(options, false)
	return c.finish(metrics.FamilyStreams, "VideoStreamURL", u, err)
}

// HLSVideoStreamURL builds the video.m3u8 playlist URL. The item is passed
// as the id query parameter.
func (c *Client) HLSVideoStreamURL(options *models.VideoStreamOptions) (string, error) {
	u, err := c.videoStreamURL(options, true)
	return c.finish(metrics.FamilyStreams, "HLSVideoStreamURL", u, err)
}

func (c *Client) videoStreamURL(options *models.VideoStreamOptions, hls bool) (string, error) {
	if options == nil {
		return "", invalidArgument("options")
	}
	if options.ItemID == "" {
		return "", invalidArgument("options.ItemID")
	}
	if err := validateRequest("options", options); err != nil {
		return "", err
	}

	d := querystring.New()
	handler := streamPath("Videos", &options.StreamOptions)
	if hls {
		d.Set("id", options.ItemID)
		handler = hlsVideoHandler
	}
	videoParams.Apply(d, options)
	return c.streamURL(handler, &options.StreamOptions, d)
}

// StreamURL builds a stream URL for an arbitrary handler using only the
// shared audio parameters.
func (c *Client) StreamURL(handler string, options *models.StreamOptions) (string, error) {
	u, err := c.streamURL(handler, options, querystring.New())
	return c.finish(metrics.FamilyStreams, "StreamURL", u, err)
}

// streamURL appends the shared parameters to d and builds handler.
func (c *Client) streamURL(handler string, options *models.StreamOptions, d *querystring.Dictionary) (string, error) {
	if options == nil {
		return "", invalidArgument("options")
	}
	if handler == "" {
		return "", invalidArgument("handler")
	}
	if err := validateRequest("options", options); err != nil {
		return "", err
	}

	streamParams.Apply(d, options)
	return c.apiURL(handler, d)
}
