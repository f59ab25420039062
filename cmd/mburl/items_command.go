// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

package main

import (
	"github.com/spf13/cobra"

	"github.com/shaunarundell/MediaBrowser.ApiClient/internal/models"
)

func newItemsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Build library listing URLs from JSON query files",
	}

	cmd.AddCommand(
		newItemsListCommand(ctx),
		newItemsByNameCommand(ctx),
		newNextUpCommand(ctx),
		newSimilarCommand(ctx),
		newInstantMixCommand(ctx),
	)
	return cmd
}

func newItemsListCommand(ctx *commandContext) *cobra.Command {
	var queryPath string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Users/{UserId}/Items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &models.ItemQuery{}
			if err := ctx.loadQuery(cmd, queryPath, query); err != nil {
				return err
			}
			if query.UserID == "" {
				query.UserID = ctx.client.CurrentUserID()
			}
			u, err := ctx.client.ItemListURL(query)
			return ctx.printURL(cmd, u, err)
		},
	}
	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "JSON ItemQuery file (- for stdin)")
	return cmd
}

func newItemsByNameCommand(ctx *commandContext) *cobra.Command {
	var queryPath string
	cmd := &cobra.Command{
		Use:   "by-name <type>",
		Short: "Genres, Studios, Persons, Artists, Years...",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &models.ItemsByNameQuery{}
			if err := ctx.loadQuery(cmd, queryPath, query); err != nil {
				return err
			}
			u, err := ctx.client.ItemsByNameURL(args[0], query)
			return ctx.printURL(cmd, u, err)
		},
	}
	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "JSON ItemsByNameQuery file (- for stdin)")
	return cmd
}

func newNextUpCommand(ctx *commandContext) *cobra.Command {
	var queryPath string
	cmd := &cobra.Command{
		Use:   "next-up",
		Short: "Shows/NextUp",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &models.NextUpQuery{}
			if err := ctx.loadQuery(cmd, queryPath, query); err != nil {
				return err
			}
			if query.UserID == "" {
				query.UserID = ctx.client.CurrentUserID()
			}
			u, err := ctx.client.NextUpURL(query)
			return ctx.printURL(cmd, u, err)
		},
	}
	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "JSON NextUpQuery file (- for stdin)")
	return cmd
}

func newSimilarCommand(ctx *commandContext) *cobra.Command {
	var queryPath string
	cmd := &cobra.Command{
		Use:   "similar <type> <id>",
		Short: "{type}/{id}/Similar",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &models.SimilarItemsQuery{}
			if err := ctx.loadQuery(cmd, queryPath, query); err != nil {
				return err
			}
			query.ID = args[1]
			u, err := ctx.client.SimilarItemsURL(args[0], query)
			return ctx.printURL(cmd, u, err)
		},
	}
	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "JSON SimilarItemsQuery file (- for stdin)")
	return cmd
}

func newInstantMixCommand(ctx *commandContext) *cobra.Command {
	var queryPath string
	var byName bool
	cmd := &cobra.Command{
		Use:   "instant-mix <type> <id-or-name>",
		Short: "{type}/{id}/InstantMix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := &models.SimilarItemsQuery{}
			if err := ctx.loadQuery(cmd, queryPath, query); err != nil {
				return err
			}

			var u string
			var err error
			if byName {
				u, err = ctx.client.InstantMixByNameURL(args[0], args[1], query)
			} else {
				query.ID = args[1]
				u, err = ctx.client.InstantMixURL(args[0], query)
			}
			return ctx.printURL(cmd, u, err)
		},
	}
	cmd.Flags().StringVarP(&queryPath, "query", "q", "", "JSON SimilarItemsQuery file (- for stdin)")
	cmd.Flags().BoolVar(&byName, "by-name", false, "Treat the second argument as a name")
	return cmd
}

// loadQuery decodes path into query when a path was given.
func (c *commandContext) loadQuery(cmd *cobra.Command, path string, query any) error {
	if path == "" {
		return nil
	}
	return c.decodeFile(cmd, path, query)
}
