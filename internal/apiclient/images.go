// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package apiclient

import (
	"fmt"
	"strconv"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/metrics"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/models"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/optional"
	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/querystring"
)

// imageRequest pairs caller options with the client's default quality.
type imageRequest struct {
	opts           *models.ImageOptions
	defaultQuality optional.Value[int]
}

var imageParams = querystring.Params[imageRequest]{
	querystring.OptInt("Width", func(r imageRequest) optional.Value[int] { return r.opts.Width }),
	querystring.OptInt("Height", func(r imageRequest) optional.Value[int] { return r.opts.Height }),
	querystring.OptInt("MaxWidth", func(r imageRequest) optional.Value[int] { return r.opts.MaxWidth }),
	querystring.OptInt("MaxHeight", func(r imageRequest) optional.Value[int] { return r.opts.MaxHeight }),
	querystring.OptInt("Quality", func(r imageRequest) optional.Value[int] { return r.opts.Quality.Or(r.defaultQuality) }),
	querystring.NonEmpty("Tag", func(r imageRequest) string { return r.opts.Tag }),
	querystring.OptBool("CropWhitespace", func(r imageRequest) optional.Value[bool] { return r.opts.CropWhitespace }),
	querystring.Always("EnableImageEnhancers", func(r imageRequest) bool { return r.opts.EnableImageEnhancers }),
	{
		Key:     "Format",
		Present: func(r imageRequest) bool { return !r.opts.Format.IsOriginal() },
		Format:  func(r imageRequest) string { return string(r.opts.Format) },
	},
	querystring.WhenTrue("AddPlayedIndicator", func(r imageRequest) bool { return r.opts.AddPlayedIndicator }),
	querystring.OptFloat("PercentPlayed", func(r imageRequest) optional.Value[float64] { return r.opts.PercentPlayed }),
	querystring.OptString("BackgroundColor", func(r imageRequest) optional.Value[string] { return r.opts.BackgroundColor }),
}

// imageSource is the resolved owner of an image.
type imageSource struct {
	itemID string
	tag    string
}

// resolveLogo returns the item's own logo, else its parent's.
func resolveLogo(item *models.BaseItemDto) (imageSource, bool) {
	if item.HasLogo() {
		return imageSource{item.ID, item.ImageTags[models.ImageTypeLogo]}, true
	}
	if item.ParentLogoItemID != "" {
		return imageSource{item.ParentLogoItemID, item.ParentLogoImageTag}, true
	}
	return imageSource{}, false
}

// resolveArt returns the item's own art image, else its parent's.
func resolveArt(item *models.BaseItemDto) (imageSource, bool) {
	if item.HasArt() {
		return imageSource{item.ID, item.ImageTags[models.ImageTypeArt]}, true
	}
	if item.ParentArtItemID != "" {
		return imageSource{item.ParentArtItemID, item.ParentArtImageTag}, true
	}
	return imageSource{}, false
}

// resolveThumb walks item, series, then parent.
func resolveThumb(item *models.BaseItemDto) (imageSource, bool) {
	if item.HasThumb() {
		return imageSource{item.ID, item.ImageTags[models.ImageTypeThumb]}, true
	}
	if item.SeriesID != "" && item.SeriesThumbImageTag != "" {
		return imageSource{item.SeriesID, item.SeriesThumbImageTag}, true
	}
	if item.ParentThumbItemID != "" {
		return imageSource{item.ParentThumbItemID, item.ParentThumbImageTag}, true
	}
	return imageSource{}, false
}

// backdropOwner returns the id owning the backdrops and their tags. Items
// with no backdrops of their own inherit the parent's.
func backdropOwner(item *models.BaseItemDto) (string, []string) {
	if item.BackdropCount() == 0 {
		return item.ParentBackdropItemID, item.ParentBackdropImageTags
	}
	return item.ID, item.BackdropImageTags
}

// ImageURL resolves the owning id and tag for options.ImageType on item and
// returns its URL. An empty string with a nil error means the item and its
// fallback chain have no such image.
func (c *Client) ImageURL(item *models.BaseItemDto, options *models.ImageOptions) (string, error) {
	u, err := c.imageURLForItem(item, options)
	return c.finish(metrics.FamilyImages, "ImageURL", u, err)
}

func (c *Client) imageURLForItem(item *models.BaseItemDto, options *models.ImageOptions) (string, error) {
	if item == nil {
		return "", invalidArgument("item")
	}
	if options == nil {
		return "", invalidArgument("options")
	}
	if err := validateRequest("options", options); err != nil {
		return "", err
	}

	opts := *options

	switch opts.ImageType {
	case models.ImageTypeBackdrop:
		id, tags := backdropOwner(item)
		index := opts.ImageIndex.OrElse(0)
		if id == "" || index >= len(tags) {
			return c.noImage(opts.ImageType), nil
		}
		opts.Tag = tags[index]
		return c.itemImageURL(id, &opts)

	case models.ImageTypeLogo:
		return c.resolvedImageURL(item, &opts, resolveLogo)

	case models.ImageTypeArt:
		return c.resolvedImageURL(item, &opts, resolveArt)

	case models.ImageTypeThumb:
		return c.resolvedImageURL(item, &opts, resolveThumb)

	case models.ImageTypeChapter:
		index := opts.ImageIndex.OrElse(0)
		if index >= len(item.Chapters) {
			return "", fmt.Errorf("%w: chapter index %d out of range (%d chapters)",
				ErrInvalidArgument, index, len(item.Chapters))
		}
		opts.Tag = item.Chapters[index].ImageTag
		return c.itemImageURL(item.ID, &opts)

	case models.ImageTypeScreenshot:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImageType, opts.ImageType)

	default:
		if tag, ok := item.ImageTag(opts.ImageType); ok {
			opts.Tag = tag
		}
		return c.itemImageURL(item.ID, &opts)
	}
}

func (c *Client) resolvedImageURL(item *models.BaseItemDto, opts *models.ImageOptions,
	resolve func(*models.BaseItemDto) (imageSource, bool)) (string, error) {
	src, ok := resolve(item)
	if !ok {
		return c.noImage(opts.ImageType), nil
	}
	opts.Tag = src.tag
	return c.itemImageURL(src.itemID, opts)
}

func (c *Client) noImage(imageType models.ImageType) string {
	metrics.RecordImageUnavailable(string(imageType))
	c.logger.Debug().Str("image_type", string(imageType)).Msg("No image in fallback chain")
	return ""
}

// LogoImageURL is ImageURL with the type forced to Logo.
func (c *Client) LogoImageURL(item *models.BaseItemDto, options *models.ImageOptions) (string, error) {
	return c.forcedTypeImageURL("LogoImageURL", models.ImageTypeLogo, item, options)
}

// ArtImageURL is ImageURL with the type forced to Art.
func (c *Client) ArtImageURL(item *models.BaseItemDto, options *models.ImageOptions) (string, error) {
	return c.forcedTypeImageURL("ArtImageURL", models.ImageTypeArt, item, options)
}

// ThumbImageURL is ImageURL with the type forced to Thumb.
func (c *Client) ThumbImageURL(item *models.BaseItemDto, options *models.ImageOptions) (string, error) {
	return c.forcedTypeImageURL("ThumbImageURL", models.ImageTypeThumb, item, options)
}

func (c *Client) forcedTypeImageURL(op string, imageType models.ImageType,
	item *models.BaseItemDto, options *models.ImageOptions) (string, error) {
	if options == nil {
		return c.finish(metrics.FamilyImages, op, "", invalidArgument("options"))
	}
	opts := *options
	opts.ImageType = imageType
	u, err := c.imageURLForItem(item, &opts)
	return c.finish(metrics.FamilyImages, op, u, err)
}

// BackdropImageURLs returns one URL per backdrop of item, or of its parent
// when the item has none. ImageIndex on each URL is the backdrop position.
// The result is empty, never nil, when no owner resolves.
func (c *Client) BackdropImageURLs(item *models.BaseItemDto, options *models.ImageOptions) ([]string, error) {
	urls, err := c.backdropImageURLs(item, options)
	if err != nil {
		metrics.RecordURLBuild(metrics.FamilyImages, err)
		c.logger.Warn().Err(err).Str("operation", "BackdropImageURLs").Msg("URL build rejected")
		return nil, err
	}
	if len(urls) == 0 {
		return urls, nil
	}
	metrics.RecordURLBuild(metrics.FamilyImages, nil)
	c.logger.Debug().Str("operation", "BackdropImageURLs").Int("count", len(urls)).Msg("URLs built")
	return urls, nil
}

func (c *Client) backdropImageURLs(item *models.BaseItemDto, options *models.ImageOptions) ([]string, error) {
	if item == nil {
		return nil, invalidArgument("item")
	}
	if options == nil {
		return nil, invalidArgument("options")
	}
	if err := validateRequest("options", options); err != nil {
		return nil, err
	}

	id, tags := backdropOwner(item)
	if id == "" || len(tags) == 0 {
		c.noImage(models.ImageTypeBackdrop)
		return []string{}, nil
	}

	urls := make([]string, 0, len(tags))
	for i, tag := range tags {
		opts := *options
		opts.ImageType = models.ImageTypeBackdrop
		opts.ImageIndex = optional.Some(i)
		opts.Tag = tag

		u, err := c.itemImageURL(id, &opts)
		if err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, nil
}

// ItemImageURL builds Items/{itemID}/Images/{type}[/{index}]. The caller
// supplies Tag, if any.
func (c *Client) ItemImageURL(itemID string, options *models.ImageOptions) (string, error) {
	u, err := c.itemImageURL(itemID, options)
	return c.finish(metrics.FamilyImages, "ItemImageURL", u, err)
}

func (c *Client) itemImageURL(itemID string, options *models.ImageOptions) (string, error) {
	if itemID == "" {
		return "", invalidArgument("itemID")
	}
	return c.imageURL("Items/"+itemID, options)
}

// UserImageURL builds the avatar URL for user, tagged with its primary
// image tag.
func (c *Client) UserImageURL(user *models.UserDto, options *models.ImageOptions) (string, error) {
	u, err := c.userImageURL(user, options)
	return c.finish(metrics.FamilyImages, "UserImageURL", u, err)
}

func (c *Client) userImageURL(user *models.UserDto, options *models.ImageOptions) (string, error) {
	if user == nil {
		return "", invalidArgument("user")
	}
	if options == nil {
		return "", invalidArgument("options")
	}
	if user.ID == "" {
		return "", invalidArgument("user.ID")
	}

	opts := *options
	if user.PrimaryImageTag != "" {
		opts.Tag = user.PrimaryImageTag
	}
	return c.imageURL("Users/"+user.ID, &opts)
}

// UserImageURLByID builds Users/{userID}/Images/{type}[/{index}].
func (c *Client) UserImageURLByID(userID string, options *models.ImageOptions) (string, error) {
	var u string
	var err error
	if userID == "" {
		err = invalidArgument("userID")
	} else {
		u, err = c.imageURL("Users/"+userID, options)
	}
	return c.finish(metrics.FamilyImages, "UserImageURLByID", u, err)
}

// PersonImageURL builds the image URL for a cast or crew entry, tagged with
// its primary image tag.
func (c *Client) PersonImageURL(person *models.BaseItemPerson, options *models.ImageOptions) (string, error) {
	u, err := c.personImageURL(person, options)
	return c.finish(metrics.FamilyImages, "PersonImageURL", u, err)
}

func (c *Client) personImageURL(person *models.BaseItemPerson, options *models.ImageOptions) (string, error) {
	if person == nil {
		return "", invalidArgument("person")
	}
	if options == nil {
		return "", invalidArgument("options")
	}

	opts := *options
	if person.PrimaryImageTag != "" {
		opts.Tag = person.PrimaryImageTag
	}
	return c.namedImageURL(models.ItemTypePersons, person.Name, &opts)
}

// PersonImageURLByName builds Persons/{Slugify(name)}/Images/{type}.
func (c *Client) PersonImageURLByName(name string, options *models.ImageOptions) (string, error) {
	u, err := c.namedImageURL(models.ItemTypePersons, name, options)
	return c.finish(metrics.FamilyImages, "PersonImageURLByName", u, err)
}

// YearImageURL builds Years/{year}/Images/{type}. Years are not slugified.
func (c *Client) YearImageURL(year int, options *models.ImageOptions) (string, error) {
	u, err := c.imageURL(models.ItemTypeYears+"/"+strconv.Itoa(year), options)
	return c.finish(metrics.FamilyImages, "YearImageURL", u, err)
}

// GenreImageURL builds Genres/{Slugify(name)}/Images/{type}.
func (c *Client) GenreImageURL(name string, options *models.ImageOptions) (string, error) {
	u, err := c.namedImageURL(models.ItemTypeGenres, name, options)
	return c.finish(metrics.FamilyImages, "GenreImageURL", u, err)
}

// MusicGenreImageURL builds MusicGenres/{Slugify(name)}/Images/{type}.
func (c *Client) MusicGenreImageURL(name string, options *models.ImageOptions) (string, error) {
	u, err := c.namedImageURL(models.ItemTypeMusicGenres, name, options)
	return c.finish(metrics.FamilyImages, "MusicGenreImageURL", u, err)
}

// GameGenreImageURL builds GameGenres/{Slugify(name)}/Images/{type}.
func (c *Client) GameGenreImageURL(name string, options *models.ImageOptions) (string, error) {
	u, err := c.namedImageURL(models.ItemTypeGameGenres, name, options)
	return c.finish(metrics.FamilyImages, "GameGenreImageURL", u, err)
}

// StudioImageURL builds Studios/{Slugify(name)}/Images/{type}.
func (c *Client) StudioImageURL(name string, options *models.ImageOptions) (string, error) {
	u, err := c.namedImageURL(models.ItemTypeStudios, name, options)
	return c.finish(metrics.FamilyImages, "StudioImageURL", u, err)
}

// ArtistImageURL builds Artists/{Slugify(name)}/Images/{type}.
func (c *Client) ArtistImageURL(name string, options *models.ImageOptions) (string, error) {
	u, err := c.namedImageURL(models.ItemTypeArtists, name, options)
	return c.finish(metrics.FamilyImages, "ArtistImageURL", u, err)
}

func (c *Client) namedImageURL(collection, name string, options *models.ImageOptions) (string, error) {
	if name == "" {
		return "", invalidArgument("name")
	}
	return c.imageURL(collection+"/"+Slugify(name), options)
}

// imageURL appends /Images/{type}[/{index}] and the image query to base.
func (c *Client) imageURL(base string, options *models.ImageOptions) (string, error) {
	if options == nil {
		return "", invalidArgument("options")
	}
	if options.ImageType == "" {
		return "", invalidArgument("options.ImageType")
	}
	if err := validateRequest("options", options); err != nil {
		return "", err
	}

	handler := base + "/Images/" + string(options.ImageType)
	if index, ok := options.ImageIndex.Get(); ok {
		handler += "/" + strconv.Itoa(index)
	}

	d := querystring.New()
	imageParams.Apply(d, imageRequest{opts: options, defaultQuality: c.imageQuality})
	return c.apiURL(handler, d)
}
