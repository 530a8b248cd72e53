// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/blog"
)

// NewSlugCmd returns the `blogctl slug` command.
func NewSlugCmd(deps *Deps) *cobra.Command {
	var unique bool

	cmd := &cobra.Command{
		Use:   "slug TITLE...",
		Short: "print the slug generated for a title",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slug := blog.GenerateSlug(strings.Join(args, " "))
			if unique {
				var err error
				slug, err = deps.Repo.UniqueSlug(cmd.Context(), slug, "")
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), slug)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&unique, "unique", "u", false, "resolve collisions with stored posts")
	return cmd
}
