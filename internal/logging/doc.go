// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

/*
Package logging provides the zerolog-based global logger and context helpers.

# Quick Start

	logging.Init(logging.Config{Level: "debug", Format: "console"})

	l := logging.WithComponent("apiclient")
	client, err := apiclient.NewClient(&l, serializer.NewJSON(), identity)

	ctx := logging.ContextWithNewCorrelationID(context.Background())
	logging.Ctx(ctx).Info().Str("url", u).Msg("Built URL")

# Configuration

Config.Level accepts trace, debug, info, warn, error, fatal, panic and
disabled; unknown values fall back to info. Config.Format is json (default)
or console.

Always terminate log chains with .Msg() or .Send():

	logging.Ctx(ctx).Info().Str("key", "value").Msg("message")  // Correct
	logging.Ctx(ctx).Info().Str("key", "value")                 // WRONG - log not emitted
*/
package logging
