// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/querystring"
)

func newAPICommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "api <handler> [key=value...]",
		Short: "Build a URL for an arbitrary API handler",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := querystring.New()
			for _, pair := range args[1:] {
				key, value, ok := strings.Cut(pair, "=")
				if !ok || key == "" {
					return fmt.Errorf("invalid parameter %q, expected key=value", pair)
				}
				params.Set(key, value)
			}
			u, err := ctx.client.BuildURLWithParams(args[0], params)
			return ctx.printURL(cmd, u, err)
		},
	}
}

func newAuthHeaderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "auth-header",
		Short: "Print the X-Emby-Authorization header value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := ctx.client.AuthorizationParameter()
			if header == "" {
				return fmt.Errorf("client identity is empty")
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "MediaBrowser %s\n", header)
			return err
		},
	}
}
