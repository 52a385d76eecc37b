package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

var (
	flagSentiment  string
	flagTagFilter  string
	flagVideoID    string
	flagBookmarked bool
	flagSearch     string
	flagPage       int
	flagPageLimit  int
)

var commentsCmd = &cobra.Command{
	Use:   "comments",
	Short: "Browse and tag analyzed comments",
}

var commentsListCmd = &cobra.Command{
	Use:   "list [channel-id]",
	Short: "List comments for a channel with filters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		filter := model.CommentFilter{
			Sentiment: model.Sentiment(flagSentiment),
			Tags:      flagTagFilter,
			VideoID:   flagVideoID,
			Search:    flagSearch,
			Page:      flagPage,
			Limit:     flagPageLimit,
		}
		if cmd.Flags().Changed("bookmarked") {
			filter.IsBookmarked = &flagBookmarked
		}

		page, err := a.client.ListComments(ctx, args[0], filter)
		if err != nil {
			return fmt.Errorf("failed to list comments: %w", err)
		}

		rows := make([][]string, 0, len(page.Items))
		for _, c := range page.Items {
			bookmark := ""
			if c.IsBookmarked {
				bookmark = "*"
			}
			rows = append(rows, []string{
				c.CommentID,
				c.AuthorName,
				string(c.Sentiment),
				strings.Join(c.Tags, ","),
				bookmark,
				truncate(c.Text, 60),
			})
		}
		if err := a.render(page, []string{"ID", "AUTHOR", "SENTIMENT", "TAGS", "BM", "TEXT"}, rows); err != nil {
			return err
		}
		if a.cfg.Output != "json" {
			fmt.Printf("Page %d of %d (%d comments)\n", page.Page, page.Pages, page.Total)
		}
		return nil
	},
}

var commentsBookmarkCmd = &cobra.Command{
	Use:   "bookmark [comment-id]",
	Short: "Bookmark a comment (or --remove to clear)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		remove, _ := cmd.Flags().GetBool("remove")
		if err := a.client.SetBookmark(ctx, args[0], !remove); err != nil {
			return fmt.Errorf("failed to update bookmark: %w", err)
		}
		if remove {
			fmt.Println("Bookmark removed")
		} else {
			fmt.Println("Comment bookmarked")
		}
		return nil
	},
}

var commentsTagCmd = &cobra.Command{
	Use:   "tag [comment-id] [tags]",
	Short: "Replace a comment's tags (comma-separated; empty clears)",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		var tags []string
		if len(args) == 2 && args[1] != "" {
			for _, t := range strings.Split(args[1], ",") {
				if t = strings.TrimSpace(t); t != "" {
					tags = append(tags, t)
				}
			}
		}
		if err := a.client.SetCommentTags(ctx, args[0], tags); err != nil {
			return fmt.Errorf("failed to update tags: %w", err)
		}
		fmt.Printf("Tags set: %s\n", strings.Join(tags, ", "))
		return nil
	},
}

var commentsBookmarkedCmd = &cobra.Command{
	Use:   "bookmarked [channel-id]",
	Short: "List bookmarked comments for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		page, err := a.client.ListBookmarked(ctx, args[0], flagPage, flagPageLimit)
		if err != nil {
			return fmt.Errorf("failed to list bookmarked comments: %w", err)
		}

		rows := make([][]string, 0, len(page.Items))
		for _, c := range page.Items {
			rows = append(rows, []string{
				c.CommentID,
				c.AuthorName,
				string(c.Sentiment),
				truncate(c.Text, 70),
			})
		}
		return a.render(page, []string{"ID", "AUTHOR", "SENTIMENT", "TEXT"}, rows)
	},
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage comment tag definitions",
}

var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tag definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		tags, err := a.client.ListTags(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		rows := make([][]string, 0, len(tags))
		for _, t := range tags {
			kind := "user"
			if t.IsSystem {
				kind = "system"
			}
			rows = append(rows, []string{t.Name, t.Color, kind, strconv.FormatInt(t.UsageCount, 10)})
		}
		return a.render(tags, []string{"NAME", "COLOR", "KIND", "USES"}, rows)
	},
}

var tagsCreateCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a tag definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		color, _ := cmd.Flags().GetString("color")
		description, _ := cmd.Flags().GetString("description")
		tag, err := a.client.CreateTag(ctx, args[0], color, description)
		if err != nil {
			return fmt.Errorf("failed to create tag: %w", err)
		}
		fmt.Printf("Created tag %s\n", tag.Name)
		return nil
	},
}

var tagsUpdateCmd = &cobra.Command{
	Use:   "update [name]",
	Short: "Change a tag's color or description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		color, _ := cmd.Flags().GetString("color")
		description, _ := cmd.Flags().GetString("description")
		if color == "" && description == "" {
			return fmt.Errorf("nothing to update: pass --color or --description")
		}
		tag, err := a.client.UpdateTag(ctx, args[0], color, description)
		if err != nil {
			return fmt.Errorf("failed to update tag: %w", err)
		}
		fmt.Printf("Updated tag %s\n", tag.Name)
		return nil
	},
}

var tagsDeleteCmd = &cobra.Command{
	Use:   "delete [name]",
	Short: "Delete a tag definition",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete tag " + args[0] + "?") {
			return nil
		}

		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		if err := a.client.DeleteTag(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete tag: %w", err)
		}
		fmt.Println("Tag deleted")
		return nil
	},
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}

func init() {
	commentsListCmd.Flags().StringVar(&flagSentiment, "sentiment", "", "filter by sentiment: positive, neutral, negative")
	commentsListCmd.Flags().StringVar(&flagTagFilter, "tags", "", "filter by comma-separated tags")
	commentsListCmd.Flags().StringVar(&flagVideoID, "video", "", "filter by video id")
	commentsListCmd.Flags().BoolVar(&flagBookmarked, "bookmarked", false, "filter by bookmark state")
	commentsListCmd.Flags().StringVar(&flagSearch, "search", "", "full-text search")
	commentsListCmd.Flags().IntVar(&flagPage, "page", 1, "page number")
	commentsListCmd.Flags().IntVar(&flagPageLimit, "limit", 50, "page size")

	commentsBookmarkCmd.Flags().Bool("remove", false, "clear the bookmark instead")

	commentsBookmarkedCmd.Flags().IntVar(&flagPage, "page", 1, "page number")
	commentsBookmarkedCmd.Flags().IntVar(&flagPageLimit, "limit", 50, "page size")

	tagsCreateCmd.Flags().String("color", "#808080", "display color")
	tagsCreateCmd.Flags().String("description", "", "tag description")

	tagsUpdateCmd.Flags().String("color", "", "new display color")
	tagsUpdateCmd.Flags().String("description", "", "new description")

	commentsCmd.AddCommand(commentsListCmd, commentsBookmarkCmd, commentsTagCmd, commentsBookmarkedCmd)
	tagsCmd.AddCommand(tagsListCmd, tagsCreateCmd, tagsUpdateCmd, tagsDeleteCmd)
	rootCmd.AddCommand(commentsCmd, tagsCmd)
}
