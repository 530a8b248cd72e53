// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/demo"
)

// NewInitCmd returns the `blogctl init` command.
func NewInitCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "seed demo data if no posts exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			seeded, err := deps.Repo.InitializeData(cmd.Context())
			if err != nil {
				return err
			}
			if seeded {
				fmt.Fprintln(cmd.OutOrStdout(), "seeded demo data")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "posts already exist, nothing to do")
			}
			return nil
		},
	}
}

// NewResetCmd returns the `blogctl reset` command.
func NewResetCmd(deps *Deps) *cobra.Command {
	var (
		force      bool
		staleAfter time.Duration
		stateDir   string
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "erase all collections and reseed demo data",
		Long: `Erase all collections and reseed demo data.

With --stale-after the reset only runs when the last recorded reset in
--state-dir is older than the given duration, which suits a cron entry
refreshing a public demo.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if staleAfter > 0 {
				ran, err := demo.ResetIfNeeded(cmd.Context(), deps.Repo, stateDir, staleAfter, deps.Clock, deps.Logger)
				if err != nil {
					return err
				}
				if ran {
					fmt.Fprintln(cmd.OutOrStdout(), "reset complete")
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), "last reset is recent, nothing to do")
				}
				return nil
			}

			if !force {
				return errors.New("reset erases every post, user and category; pass --force to confirm")
			}
			if err := deps.Repo.Reset(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "reset complete")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "confirm the reset")
	cmd.Flags().DurationVar(&staleAfter, "stale-after", 0, "reset only if the last reset is older than this")
	cmd.Flags().StringVar(&stateDir, "state-dir", "./data", "directory holding the last reset timestamp")
	return cmd
}
