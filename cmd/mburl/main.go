// MediaBrowser.ApiClient - Media Server REST API Client
// Copyright 2026 The MediaBrowser.ApiClient Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/shaunarundell/MediaBrowser.ApiClient

// Command mburl prints MediaBrowser API URLs built from the local
// configuration. It never contacts the server.
package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
