package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

var (
	flagVideoLimit int
	flagVideoSkip  int
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Browse analyzed videos",
}

var videosListCmd = &cobra.Command{
	Use:   "list [channel-id]",
	Short: "List analyzed videos for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		videos, err := a.client.ListChannelVideos(ctx, args[0], flagVideoLimit, flagVideoSkip)
		if err != nil {
			return fmt.Errorf("failed to list videos: %w", err)
		}

		rows := make([][]string, 0, len(videos))
		for _, v := range videos {
			rows = append(rows, []string{
				v.VideoID,
				truncate(v.Title, 50),
				formatCount(v.CommentCount),
				formatCount(v.AnalyzedCommentCount),
			})
		}
		return a.render(videos, []string{"ID", "TITLE", "COMMENTS", "ANALYZED"}, rows)
	},
}

var videosGetCmd = &cobra.Command{
	Use:   "get [video-id]",
	Short: "Show one analyzed video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		video, err := a.client.GetVideo(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get video: %w", err)
		}
		return printJSON(video)
	},
}

var videosCommentsCmd = &cobra.Command{
	Use:   "comments [video-id]",
	Short: "List analyzed comments on one video",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		comments, err := a.client.GetVideoComments(ctx, args[0], model.Sentiment(flagSentiment), flagVideoLimit, flagVideoSkip)
		if err != nil {
			return fmt.Errorf("failed to get video comments: %w", err)
		}

		rows := make([][]string, 0, len(comments.Items))
		for _, c := range comments.Items {
			rows = append(rows, []string{
				c.CommentID,
				c.AuthorName,
				string(c.Sentiment),
				truncate(c.Text, 60),
			})
		}
		if err := a.render(comments, []string{"ID", "AUTHOR", "SENTIMENT", "TEXT"}, rows); err != nil {
			return err
		}
		if a.cfg.Output != "json" {
			fmt.Printf("%d of %d comments\n", len(comments.Items), comments.Total)
		}
		return nil
	},
}

func init() {
	videosListCmd.Flags().IntVar(&flagVideoLimit, "limit", 50, "page size")
	videosListCmd.Flags().IntVar(&flagVideoSkip, "skip", 0, "items to skip")

	videosCommentsCmd.Flags().StringVar(&flagSentiment, "sentiment", "", "filter by sentiment: positive, neutral, negative")
	videosCommentsCmd.Flags().IntVar(&flagVideoLimit, "limit", 50, "page size")
	videosCommentsCmd.Flags().IntVar(&flagVideoSkip, "skip", 0, "items to skip")

	videosCmd.AddCommand(videosListCmd, videosGetCmd, videosCommentsCmd)
	rootCmd.AddCommand(videosCmd)
}
