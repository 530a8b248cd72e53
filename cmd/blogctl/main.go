// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Command blogctl manages the blog content repository.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/olegiv/ocms-blog/internal/cli"
)

func main() {
	code, err := cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(code)
}
