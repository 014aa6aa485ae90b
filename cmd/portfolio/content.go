package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-portfolio/cmd/portfolio/internal/bootstrap"
	"github.com/goliatone/go-portfolio/content"
	"github.com/goliatone/go-portfolio/themes"
)

func (a *app) postsCmd() *cobra.Command {
	var drafts bool
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List blog posts grouped by year, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			list := module.Content.PublishedPosts
			if drafts {
				list = module.Content.AllPosts
			}
			posts, err := list(cmd.Context())
			if err != nil {
				return err
			}
			a.logger("posts").Debug("cli.posts.listed", "count", len(posts), "drafts", drafts)

			out := cmd.OutOrStdout()
			if len(posts) == 0 {
				printf(out, "%s\n", muted("no posts"))
				return nil
			}
			for _, group := range content.PostsByYear(posts) {
				heading(out, yearLabel(group.Key))
				for _, post := range group.Items {
					writePostLine(out, post)
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&drafts, "drafts", false, "include draft posts")
	return cmd
}

func writePostLine(w io.Writer, post content.BlogPost) {
	line := fmt.Sprintf("  %-28s %s  %s", post.Slug, post.Title, muted(post.ReadingTime.Text))
	if post.Draft {
		line += " " + warnStyle.Render("[draft]")
	}
	printf(w, "%s\n", line)
}

func (a *app) postCmd() *cobra.Command {
	var render bool
	cmd := &cobra.Command{
		Use:   "post <slug>",
		Short: "Show a single blog post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			post, err := module.Content.PostBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if post == nil {
				return fmt.Errorf("post %q not found", args[0])
			}

			out := cmd.OutOrStdout()
			heading(out, post.Title)
			printf(out, "slug:      %s\n", post.Slug)
			printf(out, "published: %s\n", formatDate(post.Published))
			if post.Author != "" {
				printf(out, "author:    %s\n", post.Author)
			}
			if len(post.Tags) > 0 {
				printf(out, "tags:      %s\n", strings.Join(post.Tags, ", "))
			}
			printf(out, "reading:   %s (%s)\n", post.ReadingTime.Text, plural(post.ReadingTime.Words, "word"))
			if post.Draft {
				printf(out, "%s\n", warnStyle.Render("draft"))
			}
			return writeBody(out, post.Body, render, a.resolvedAppearance(module, render))
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "render the markdown body for the terminal")
	return cmd
}

func (a *app) relatedCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "related <slug>",
		Short: "List published posts sharing tags with a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			posts, err := module.Content.RelatedPosts(cmd.Context(), args[0], count)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(posts) == 0 {
				printf(out, "%s\n", muted("no related posts"))
				return nil
			}
			for _, post := range posts {
				writePostLine(out, post)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of posts (default from config)")
	return cmd
}

func (a *app) publicationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "publications",
		Aliases: []string{"pubs"},
		Short:   "List publications, talks and posters grouped by year",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			repo := module.Content

			pubs, err := repo.Publications(ctx)
			if err != nil {
				return err
			}
			talks, err := repo.Talks(ctx)
			if err != nil {
				return err
			}
			posters, err := repo.Posters(ctx)
			if err != nil {
				return err
			}
			counts, err := repo.PublicationCounts(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printf(out, "%s, %s, %s (%d total)\n",
				plural(counts.Publications, "publication"),
				plural(counts.Talks, "talk"),
				plural(counts.Posters, "poster"),
				counts.Total,
			)
			for _, group := range content.PublicationsByYear(pubs) {
				heading(out, "Publications "+yearLabel(group.Key))
				for _, pub := range group.Items {
					printf(out, "  %-28s %s %s\n", pub.Slug, pub.Title, muted("["+pub.Type+", "+pub.Status+"]"))
				}
			}
			for _, group := range content.TalksByYear(talks) {
				heading(out, "Talks "+yearLabel(group.Key))
				for _, talk := range group.Items {
					printf(out, "  %-28s %s %s\n", talk.Slug, talk.Title, muted(talk.Event))
				}
			}
			for _, group := range content.PostersByYear(posters) {
				heading(out, "Posters "+yearLabel(group.Key))
				for _, poster := range group.Items {
					printf(out, "  %-28s %s %s\n", poster.Slug, poster.Title, muted(poster.Event))
				}
			}
			return nil
		},
	}
}

func (a *app) researchCmd() *cobra.Command {
	var featured bool
	cmd := &cobra.Command{
		Use:   "research",
		Short: "List research projects, ongoing first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			list := module.Content.Research
			if featured {
				list = module.Content.FeaturedProjects
			}
			projects, err := list(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, group := range content.ResearchByStatus(projects) {
				if len(group.Items) == 0 {
					continue
				}
				heading(out, strings.ToUpper(group.Key[:1])+group.Key[1:])
				for _, project := range group.Items {
					printf(out, "  %-28s %s %s\n", project.Slug, project.ShortTitle, muted(project.DateRange))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured projects")
	return cmd
}

func (a *app) profileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the portfolio owner profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			profile, err := module.Content.Profile(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			heading(out, profile.Name)
			printf(out, "%s\n", profile.Tagline)
			if profile.Institution != "" {
				printf(out, "%s\n", strings.Join(nonEmpty(profile.Department, profile.Institution), ", "))
			}
			if profile.Email != "" {
				printf(out, "email: %s\n", profile.Email)
			}
			for _, link := range profile.SocialLinks() {
				printf(out, "%s: %s\n", link.Label, link.URL)
			}
			for _, link := range profile.ProfileURLs {
				printf(out, "%s: %s\n", link.Label, link.URL)
			}
			if profile.Bio != "" {
				printf(out, "\n%s\n", strings.TrimSpace(profile.Bio))
			}
			return nil
		},
	}
}

func (a *app) pageCmd() *cobra.Command {
	var render bool
	cmd := &cobra.Command{
		Use:   "page <slug>",
		Short: "Show a static page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			page, err := module.Content.PageBySlug(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if page == nil {
				slugs, _ := module.Content.PageSlugs(cmd.Context())
				return fmt.Errorf("page %q not found (available: %s)", args[0], strings.Join(slugs, ", "))
			}
			out := cmd.OutOrStdout()
			heading(out, page.Title)
			return writeBody(out, page.Body, render, a.resolvedAppearance(module, render))
		},
	}
	cmd.Flags().BoolVar(&render, "render", false, "render the markdown body for the terminal")
	return cmd
}

func (a *app) lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint",
		Short: "Report front matter that does not match its content type schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			module, err := a.load(cmd)
			if err != nil {
				return err
			}
			if module.Module.Container().Schemas() == nil {
				return fmt.Errorf("lint feature disabled; set features.lint in the config")
			}

			out := cmd.OutOrStdout()
			flagged := 0
			for _, contentType := range content.KnownTypes() {
				items, err := module.Content.ListByType(cmd.Context(), contentType)
				if err != nil {
					return err
				}
				for _, item := range items {
					if len(item.Issues) == 0 {
						continue
					}
					flagged++
					heading(out, item.SourcePath)
					for _, issue := range item.Issues {
						printf(out, "  %s\n", issue.String())
					}
				}
			}
			a.logger("lint").Debug("cli.lint.completed", "flagged", flagged)
			if flagged > 0 {
				return fmt.Errorf("%s with front matter issues", plural(flagged, "file"))
			}
			printf(out, "%s\n", muted("no issues"))
			return nil
		},
	}
}

// resolvedAppearance picks the glamour style for --render output. The
// preference store is only read when rendering.
func (a *app) resolvedAppearance(module *bootstrap.Module, render bool) themes.Resolved {
	if !render {
		return themes.ResolvedLight
	}
	return module.Module.Themes().Init().Resolved
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			out = append(out, value)
		}
	}
	return out
}
