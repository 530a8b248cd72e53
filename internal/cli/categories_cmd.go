// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/util"
)

// NewCategoriesCmd returns the `blogctl categories` command group.
func NewCategoriesCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"cats"},
		Short:   "list and add categories",
	}
	cmd.AddCommand(newCategoriesListCmd(deps), newCategoriesAddCmd(deps))
	return cmd
}

func newCategoriesListCmd(deps *Deps) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list categories",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := deps.Repo.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), categories)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tSLUG\tNAME\tCOLOR")
			for _, c := range categories {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Slug, c.Name, c.Color)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print categories as JSON")
	return cmd
}

func newCategoriesAddCmd(deps *Deps) *cobra.Command {
	var c model.Category

	cmd := &cobra.Command{
		Use:   "add",
		Short: "create a category, or replace one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.Slug != "" && !util.IsValidSlug(c.Slug) {
				return fmt.Errorf("invalid slug %q", c.Slug)
			}
			if c.ID == "" {
				c.ID = uuid.NewString()
			}

			saved, err := deps.Repo.SaveCategory(cmd.Context(), c)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved category %s (%s)\n", saved.Slug, saved.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&c.ID, "id", "", "category id (generated when empty)")
	f.StringVarP(&c.Name, "name", "n", "", "category name")
	f.StringVar(&c.Slug, "slug", "", "slug (derived from the name when empty)")
	f.StringVarP(&c.Description, "description", "d", "", "description")
	f.StringVar(&c.Color, "color", "bg-blue-100 text-blue-800", "display color token")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
