// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/version"
)

// NewRootCmd builds the blogctl command tree around deps.
func NewRootCmd(deps *Deps) *cobra.Command {
	if deps == nil {
		deps = &Deps{}
	}

	cmd := &cobra.Command{
		Use:           "blogctl",
		Short:         "manage blog posts, users and categories",
		Version:       version.Get().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return deps.Setup(cmd.ErrOrStderr())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return deps.Close()
		},
	}

	cmd.PersistentFlags().StringVar(&deps.EnvFile, "env-file", ".env", "dotenv file loaded before the environment")
	cmd.PersistentFlags().StringVar(&deps.LogLevel, "log-level", "", "minimum log level (overrides BLOG_LOG_LEVEL)")
	cmd.PersistentFlags().StringVar(&deps.LogFormat, "log-format", "", "text or json (overrides BLOG_LOG_FORMAT)")

	cmd.AddCommand(
		NewInitCmd(deps),
		NewResetCmd(deps),
		NewPostsCmd(deps),
		NewUsersCmd(deps),
		NewCategoriesCmd(deps),
		NewSlugCmd(deps),
		NewExportCmd(deps),
		NewImportCmd(deps),
		NewBackupCmd(deps),
	)

	return cmd
}
