// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

/*
Package apiclient builds REST URLs for MediaBrowser (Emby) servers.

A Client holds the connection identity (host, port, API root, client and
device identity, current user) and turns typed request objects from
package models into absolute URLs. It performs no network I/O; the URLs
are consumed by whatever HTTP layer the application uses.

# Builders

  - BuildURL, BuildURLWithParams: {APIURL}/{handler}[?query]
  - ItemListURL, ItemsByNameURL, NextUpURL, SimilarItemsURL,
    InstantMixURL, InstantMixByNameURL: library listings
  - ImageURL and friends: image URLs with parent/series fallback
  - AudioStreamURL, VideoStreamURL and their HLS variants

Query parameters are driven by declarative querystring.Params tables, so an
absent optional field never produces a key.

# Errors

Missing required arguments wrap ErrInvalidArgument. Item-based image
builders return ErrUnsupportedImageType for Screenshot. A builder that
finds no image in an item's fallback chain returns "" and a nil error.

# Usage

	c, err := apiclient.NewClient(&logger, serializer.NewJSON(), apiclient.Identity{
	    ServerHost: "media.local",
	    ClientName: "Dashboard",
	    DeviceName: "kitchen",
	    DeviceID:   "f3a1",
	    ApplicationVersion: "1.0.0",
	})
	if err != nil {
	    return err
	}
	u, err := c.AudioStreamURL(&models.StreamOptions{ItemID: "42", OutputFileExtension: "mp3", Static: true})

# Thread Safety

Builders only read client state. Setters are unsynchronized; see Client.
*/
package apiclient
