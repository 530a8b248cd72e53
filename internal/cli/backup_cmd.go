// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/scheduler"
	"github.com/olegiv/ocms-blog/internal/transfer"
)

// NewBackupCmd returns the `blogctl backup` command.
func NewBackupCmd(deps *Deps) *cobra.Command {
	var (
		dir      string
		schedule string
		daemon   bool
	)

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "write a JSON snapshot, or keep writing them on a schedule with --daemon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = deps.Config.BackupDir
			}
			if schedule == "" {
				schedule = deps.Config.BackupSchedule
			}

			s := scheduler.New(transfer.NewExporter(deps.Repo, deps.Logger), dir, schedule, deps.Logger)

			if !daemon {
				path, err := s.RunBackup(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			if err := s.Start(); err != nil {
				return err
			}
			defer s.Stop()

			fmt.Fprintf(cmd.OutOrStdout(), "backups every %q into %s, next at %s\n",
				schedule, dir, s.NextRun().Format("2006-01-02 15:04:05"))
			<-cmd.Context().Done()
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "backup directory (default BLOG_BACKUP_DIR)")
	cmd.Flags().StringVar(&schedule, "schedule", "", "cron spec (default BLOG_BACKUP_SCHEDULE)")
	cmd.Flags().BoolVar(&daemon, "daemon", false, "run until interrupted, writing backups on the schedule")
	return cmd
}
