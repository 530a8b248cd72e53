// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/blog"
	"github.com/olegiv/ocms-blog/internal/content"
	"github.com/olegiv/ocms-blog/internal/model"
	"github.com/olegiv/ocms-blog/internal/search"
)

// NewPostsCmd returns the `blogctl posts` command group.
func NewPostsCmd(deps *Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "list, show, save and delete posts",
	}
	cmd.AddCommand(
		newPostsListCmd(deps),
		newPostsShowCmd(deps),
		newPostsSaveCmd(deps),
		newPostsDeleteCmd(deps),
	)
	return cmd
}

func newPostsListCmd(deps *Deps) *cobra.Command {
	var (
		q      search.Query
		all    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "list published posts matching a search term and category",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			posts, err := deps.Repo.ListPosts(cmd.Context())
			if err != nil {
				return err
			}
			if !all {
				posts = search.Filter(posts, q)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), posts)
			}
			if len(posts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no posts found")
				return nil
			}

			tw := newTable(cmd.OutOrStdout())
			fmt.Fprintln(tw, "SLUG\tTITLE\tAUTHOR\tCREATED\tREAD\tSTATUS")
			for _, p := range posts {
				status := "published"
				if !p.Published {
					status = "draft"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d min\t%s\n",
					p.Slug, p.Title, p.Author.Name, p.CreatedAt.Format(dateLayout), p.ReadTime, status)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVarP(&q.SearchTerm, "search", "s", "", "match title, excerpt or tags")
	cmd.Flags().StringVarP(&q.CategoryID, "category", "c", search.CategoryAll, "category id, or \"all\"")
	cmd.Flags().BoolVar(&all, "all", false, "list every stored post, drafts included, without filtering")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print posts as JSON")
	cmd.MarkFlagsMutuallyExclusive("all", "search")
	cmd.MarkFlagsMutuallyExclusive("all", "category")

	return cmd
}

func newPostsShowCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:   "show SLUG",
		Short: "print a post with its content split into blocks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			post, err := deps.Repo.GetPostBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if post == nil {
				return fmt.Errorf("post %q not found", args[0])
			}
			printPost(cmd.OutOrStdout(), post)
			return nil
		},
	}
}

func printPost(w io.Writer, p *model.Post) {
	fmt.Fprintf(w, "%s\n", p.Title)
	fmt.Fprintf(w, "by %s | %s | %d min read\n", p.Author.Name, p.CreatedAt.Format(dateLayout), p.ReadTime)

	if len(p.Categories) > 0 {
		names := make([]string, len(p.Categories))
		for i, c := range p.Categories {
			names[i] = c.Name
		}
		fmt.Fprintf(w, "categories: %s\n", strings.Join(names, ", "))
	}
	if len(p.Tags) > 0 {
		fmt.Fprintf(w, "tags: %s\n", strings.Join(p.Tags, ", "))
	}

	for _, b := range content.Parse(p.Content) {
		fmt.Fprintln(w)
		switch b.Kind {
		case content.KindHeading:
			fmt.Fprintf(w, "%s %s\n", strings.Repeat("#", b.Level), b.Text)
		case content.KindUnorderedList:
			for _, item := range b.Items {
				fmt.Fprintf(w, "  * %s\n", item)
			}
		case content.KindOrderedList:
			for i, item := range b.Items {
				fmt.Fprintf(w, "  %d. %s\n", i+1, item)
			}
		default:
			fmt.Fprintln(w, b.Text)
		}
	}
}

func newPostsSaveCmd(deps *Deps) *cobra.Command {
	var (
		in          blog.PostInput
		contentFile string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "create a post, or update one with --id",
		Long: `Create a post from flags. With --id the stored post is loaded first
and only the flags given on the command line replace its fields.
--content-file - reads the content from stdin.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			if contentFile != "" {
				body, err := readContent(cmd.InOrStdin(), contentFile)
				if err != nil {
					return err
				}
				in.Content = body
			}

			if in.ID != "" {
				existing, err := deps.Repo.GetPostByID(ctx, in.ID)
				if err != nil {
					return err
				}
				if existing == nil {
					return fmt.Errorf("post %q not found", in.ID)
				}
				fillUnchanged(&in, existing, flags.Changed, contentFile != "")
			}

			draft, err := deps.Repo.NewDraft(ctx, in)
			if err != nil {
				return err
			}
			saved, err := deps.Repo.SavePost(ctx, draft)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "saved %s (%s)\n", saved.Slug, saved.ID)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.ID, "id", "", "id of the post to update")
	f.StringVarP(&in.Title, "title", "t", "", "post title")
	f.StringVar(&in.Content, "content", "", "post content")
	f.StringVar(&contentFile, "content-file", "", "read content from a file, - for stdin")
	f.StringVar(&in.Excerpt, "excerpt", "", "excerpt (generated from content when empty)")
	f.StringVarP(&in.AuthorID, "author", "a", "", "author user id")
	f.StringSliceVarP(&in.CategoryIDs, "category", "c", nil, "category id (repeatable)")
	f.StringSliceVar(&in.Tags, "tag", nil, "tag (repeatable)")
	f.BoolVar(&in.Published, "published", false, "publish the post")
	f.StringVar(&in.FeaturedImage, "image", "", "featured image URL")
	cmd.MarkFlagsMutuallyExclusive("content", "content-file")

	return cmd
}

// fillUnchanged copies fields of existing into in for every flag the user
// did not set.
func fillUnchanged(in *blog.PostInput, existing *model.Post, changed func(string) bool, contentSet bool) {
	if !changed("title") {
		in.Title = existing.Title
	}
	if !changed("content") && !contentSet {
		in.Content = existing.Content
	}
	if !changed("excerpt") {
		in.Excerpt = existing.Excerpt
	}
	if !changed("author") {
		in.AuthorID = existing.Author.ID
	}
	if !changed("category") {
		in.CategoryIDs = existing.CategoryIDs()
	}
	if !changed("tag") {
		in.Tags = existing.Tags
	}
	if !changed("published") {
		in.Published = existing.Published
	}
	if !changed("image") {
		in.FeaturedImage = existing.FeaturedImage
	}
}

func readContent(stdin io.Reader, path string) (string, error) {
	var (
		b   []byte
		err error
	)
	if path == "-" {
		b, err = io.ReadAll(stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("reading content: %w", err)
	}
	return string(b), nil
}

func newPostsDeleteCmd(deps *Deps) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "delete a post by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			existing, err := deps.Repo.GetPostByID(ctx, args[0])
			if err != nil {
				return err
			}
			if err := deps.Repo.DeletePost(ctx, args[0]); err != nil {
				return err
			}
			if existing == nil {
				fmt.Fprintf(cmd.OutOrStdout(), "no post with id %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", existing.Slug)
			return nil
		},
	}
}
