// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/transfer"
)

// NewExportCmd returns the `blogctl export` command.
func NewExportCmd(deps *Deps) *cobra.Command {
	var (
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "export users, categories and posts as JSON or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := transfer.ParseFormat(format)
			if err != nil {
				return err
			}
			if output != "" && !cmd.Flags().Changed("format") {
				f = transfer.FormatFromPath(output)
			}

			exp := transfer.NewExporter(deps.Repo, deps.Logger)
			if output == "" || output == "-" {
				return exp.ExportToWriter(cmd.Context(), cmd.OutOrStdout(), f)
			}
			if err := exp.ExportToFile(cmd.Context(), output, f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(transfer.FormatJSON), "json or yaml")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// NewImportCmd returns the `blogctl import` command.
func NewImportCmd(deps *Deps) *cobra.Command {
	var (
		strategy string
		format   string
		dryRun   bool
	)

	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "import an export file, - reads stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cs, err := transfer.ParseConflictStrategy(strategy)
			if err != nil {
				return err
			}
			opts := transfer.ImportOptions{DryRun: dryRun, ConflictStrategy: cs}
			imp := transfer.NewImporter(deps.Repo, deps.Logger)

			var result *transfer.ImportResult
			if args[0] == "-" {
				f, ferr := transfer.ParseFormat(format)
				if ferr != nil {
					return ferr
				}
				result, err = imp.ImportFromReader(cmd.Context(), cmd.InOrStdin(), f, opts)
			} else {
				result, err = imp.ImportFromFile(cmd.Context(), args[0], opts)
			}

			if result != nil {
				printImportResult(cmd.OutOrStdout(), result)
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&strategy, "strategy", "s", string(transfer.ConflictSkip), "skip or overwrite existing ids")
	cmd.Flags().StringVarP(&format, "format", "f", string(transfer.FormatJSON), "stdin format, json or yaml")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would change without writing")
	return cmd
}

func printImportResult(w io.Writer, r *transfer.ImportResult) {
	if r.DryRun {
		fmt.Fprintln(w, "dry run, nothing written")
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ENTITY\tCREATED\tUPDATED\tSKIPPED")
	for _, e := range []string{transfer.EntityUser, transfer.EntityCategory, transfer.EntityPost} {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", e, r.Created[e], r.Updated[e], r.Skipped[e])
	}
	_ = tw.Flush()

	for _, e := range r.Errors {
		fmt.Fprintf(w, "error: %s %s: %s\n", e.Entity, e.ID, e.Message)
	}
}
