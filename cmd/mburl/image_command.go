// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/models"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
)

// imageFlags mirrors ImageOptions on the command line.
type imageFlags struct {
	imageType       string
	index           int
	width           int
	height          int
	maxWidth        int
	maxHeight       int
	quality         int
	format          string
	tag             string
	playedIndicator bool
	percentPlayed   float64
	background      string
	noEnhancers     bool
	cropWhitespace  bool
}

func (f *imageFlags) register(fs *pflag.FlagSet) {
	fs.StringVarP(&f.imageType, "type", "t", string(models.ImageTypePrimary), "Image type")
	fs.IntVar(&f.index, "index", 0, "Image index")
	fs.IntVar(&f.width, "width", 0, "Width in pixels")
	fs.IntVar(&f.height, "height", 0, "Height in pixels")
	fs.IntVar(&f.maxWidth, "max-width", 0, "Maximum width in pixels")
	fs.IntVar(&f.maxHeight, "max-height", 0, "Maximum height in pixels")
	fs.IntVar(&f.quality, "quality", 0, "Quality 0-100")
	fs.StringVar(&f.format, "format", "", "Output format (Original, Gif, Jpg, Png, Webp)")
	fs.StringVar(&f.tag, "tag", "", "Cache tag for id- and name-based images")
	fs.BoolVar(&f.playedIndicator, "played-indicator", false, "Overlay the played indicator")
	fs.Float64Var(&f.percentPlayed, "percent-played", 0, "Progress overlay percentage")
	fs.StringVar(&f.background, "background", "", "Background color")
	fs.BoolVar(&f.noEnhancers, "no-enhancers", false, "Disable image enhancers")
	fs.BoolVar(&f.cropWhitespace, "crop-whitespace", false, "Crop surrounding whitespace")
}

// options converts the flags, leaving unset ones as None.
func (f *imageFlags) options(fs *pflag.FlagSet) (*models.ImageOptions, error) {
	imageType, err := models.ParseImageType(f.imageType)
	if err != nil {
		return nil, err
	}
	format, err := models.ParseImageFormat(f.format)
	if err != nil {
		return nil, err
	}

	opts := models.NewImageOptions(imageType)
	opts.Format = format
	opts.Tag = f.tag
	opts.AddPlayedIndicator = f.playedIndicator
	opts.EnableImageEnhancers = !f.noEnhancers

	setInt := func(name string, dst *optional.Value[int], v int) {
		if fs.Changed(name) {
			*dst = optional.Some(v)
		}
	}
	setInt("index", &opts.ImageIndex, f.index)
	setInt("width", &opts.Width, f.width)
	setInt("height", &opts.Height, f.height)
	setInt("max-width", &opts.MaxWidth, f.maxWidth)
	setInt("max-height", &opts.MaxHeight, f.maxHeight)
	setInt("quality", &opts.Quality, f.quality)

	if fs.Changed("percent-played") {
		opts.PercentPlayed = optional.Some(f.percentPlayed)
	}
	if fs.Changed("background") {
		opts.BackgroundColor = optional.Some(f.background)
	}
	if fs.Changed("crop-whitespace") {
		opts.CropWhitespace = optional.Some(f.cropWhitespace)
	}
	return &opts, nil
}

type namedImageBuilder func(string, *models.ImageOptions) (string, error)

func newImageCommand(ctx *commandContext) *cobra.Command {
	flags := &imageFlags{}

	named := func() map[string]namedImageBuilder {
		c := ctx.client
		return map[string]namedImageBuilder{
			"id":          c.ItemImageURL,
			"user":        c.UserImageURLByID,
			"person":      c.PersonImageURLByName,
			"genre":       c.GenreImageURL,
			"music-genre": c.MusicGenreImageURL,
			"game-genre":  c.GameGenreImageURL,
			"studio":      c.StudioImageURL,
			"artist":      c.ArtistImageURL,
			"year": func(arg string, opts *models.ImageOptions) (string, error) {
				year, err := strconv.Atoi(arg)
				if err != nil {
					return "", fmt.Errorf("invalid year %q: %w", arg, err)
				}
				return c.YearImageURL(year, opts)
			},
		}
	}

	cmd := &cobra.Command{
		Use:   "image <item|id|user|person|year|genre|music-genre|game-genre|studio|artist> <arg>",
		Short: "Build an image URL",
		Long: `Build an image URL.

"item" takes a JSON item file (- for stdin) and resolves the image through
the item's parent and series fallbacks. The other kinds take an id, name or
year directly.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Flags())
			if err != nil {
				return err
			}

			kind, arg := args[0], args[1]
			if kind == "item" {
				item := &models.BaseItemDto{}
				if err := ctx.decodeFile(cmd, arg, item); err != nil {
					return err
				}
				u, err := ctx.client.ImageURL(item, opts)
				return ctx.printURL(cmd, u, err)
			}

			builders := named()
			build, ok := builders[kind]
			if !ok {
				kinds := make([]string, 0, len(builders)+1)
				for k := range builders {
					kinds = append(kinds, k)
				}
				kinds = append(kinds, "item")
				sort.Strings(kinds)
				return fmt.Errorf("unknown image kind %q (expected one of %s)", kind, strings.Join(kinds, ", "))
			}
			u, err := build(arg, opts)
			return ctx.printURL(cmd, u, err)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func newBackdropsCommand(ctx *commandContext) *cobra.Command {
	flags := &imageFlags{}

	cmd := &cobra.Command{
		Use:   "backdrops <item.json>",
		Short: "List backdrop URLs for an item, inheriting the parent's",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd.Flags())
			if err != nil {
				return err
			}
			item := &models.BaseItemDto{}
			if err := ctx.decodeFile(cmd, args[0], item); err != nil {
				return err
			}
			urls, err := ctx.client.BackdropImageURLs(item, opts)
			if err != nil {
				return err
			}
			return ctx.printResult(cmd, urls...)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}
