// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/model"
)

// NewUsersCmd returns the `blogctl users` command group.
func NewUsersCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "list and add users",
	}
	cmd.AddCommand(newUsersListCmd(deps), newUsersAddCmd(deps))
	return cmd
}

func newUsersListCmd(deps *Deps) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list users",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			users, err := deps.Repo.ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), users)
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE")
			for _, u := range users {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print users as JSON")
	return cmd
}

func newUsersAddCmd(deps *Deps) *cobra.Command {
	var u model.User

	cmd := &cobra.Command{
		Use:   "add",
		Short: "create a user, or replace one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !model.IsValidRole(u.Role) {
				return fmt.Errorf("invalid role %q: must be %s, %s or %s",
					u.Role, model.RoleAdmin, model.RoleAuthor, model.RoleUser)
			}
			if u.ID == "" {
				u.ID = uuid.NewString()
			}

			saved, err := deps.Repo.SaveUser(cmd.Context(), u)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved user %s (%s)\n", saved.Name, saved.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&u.ID, "id", "", "user id (generated when empty)")
	f.StringVarP(&u.Name, "name", "n", "", "display name")
	f.StringVarP(&u.Email, "email", "e", "", "email address")
	f.StringVarP(&u.Role, "role", "r", model.RoleAuthor, "admin, author or user")
	f.StringVar(&u.Avatar, "avatar", "", "avatar URL")
	f.StringVar(&u.Bio, "bio", "", "short biography")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
