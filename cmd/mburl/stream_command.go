// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/models"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
)

func newStreamCommand(ctx *commandContext) *cobra.Command {
	var (
		optionsPath string
		ext         string
		static      bool
		hls         bool
		startMs     int64
	)

	cmd := &cobra.Command{
		Use:   "stream <audio|video> <item-id>",
		Short: "Build a direct or HLS streaming URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := &models.VideoStreamOptions{}
			if err := ctx.loadQuery(cmd, optionsPath, opts); err != nil {
				return err
			}

			opts.ItemID = args[1]
			if cmd.Flags().Changed("ext") {
				opts.OutputFileExtension = ext
			}
			if cmd.Flags().Changed("static") {
				opts.Static = static
			}
			if cmd.Flags().Changed("start") {
				opts.StartTimeTicks = optional.Some(startMs * models.TicksPerMillisecond)
			}

			var u string
			var err error
			switch args[0] {
			case "audio":
				if hls {
					u, err = ctx.client.HLSAudioStreamURL(&opts.StreamOptions)
				} else {
					u, err = ctx.client.AudioStreamURL(&opts.StreamOptions)
				}
			case "video":
				if hls {
					u, err = ctx.client.HLSVideoStreamURL(opts)
				} else {
					u, err = ctx.client.VideoStreamURL(opts)
				}
			default:
				return fmt.Errorf("unknown stream kind %q (expected audio or video)", args[0])
			}
			return ctx.printURL(cmd, u, err)
		},
	}

	cmd.Flags().StringVarP(&optionsPath, "options", "o", "", "JSON stream options file (- for stdin)")
	cmd.Flags().StringVar(&ext, "ext", "", "Output file extension")
	cmd.Flags().BoolVar(&static, "static", false, "Request the original file without transcoding")
	cmd.Flags().BoolVar(&hls, "hls", false, "Build the HLS playlist URL")
	cmd.Flags().Int64Var(&startMs, "start", 0, "Start position in milliseconds")
	return cmd
}
