package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var flagCommunityLimit int

var communityCmd = &cobra.Command{
	Use:   "community",
	Short: "Commenter community statistics",
}

var communityStatsCmd = &cobra.Command{
	Use:   "stats [channel-id]",
	Short: "Show commenter population stats",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		stats, err := a.views.CommunityStats(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get community stats: %w", err)
		}
		if a.cfg.Output == "json" {
			return printJSON(stats)
		}

		fmt.Printf("Commenters:        %s\n", formatCount(stats.TotalCommenters))
		fmt.Printf("Unique:            %s\n", formatCount(stats.UniqueCommenters))
		fmt.Printf("Repeat:            %s (%.1f%%)\n", formatCount(stats.RepeatCommenters), stats.RepeatPercentage)
		fmt.Printf("Comments per user: %.1f\n", stats.AvgCommentsPerUser)
		return nil
	},
}

var communityTopCmd = &cobra.Command{
	Use:   "top [channel-id]",
	Short: "Show the most active commenters",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		commenters, err := a.views.TopCommenters(ctx, args[0], flagCommunityLimit)
		if err != nil {
			return fmt.Errorf("failed to get top commenters: %w", err)
		}

		rows := make([][]string, 0, len(commenters))
		for _, c := range commenters {
			rows = append(rows, []string{
				c.AuthorName,
				formatCount(c.CommentCount),
				formatCount(c.TotalLikesReceived),
				strconv.FormatInt(c.VideosCount, 10),
			})
		}
		return a.render(commenters, []string{"NAME", "COMMENTS", "LIKES", "VIDEOS"}, rows)
	},
}

var communityStreaksCmd = &cobra.Command{
	Use:   "streaks [channel-id]",
	Short: "Show commenters with the longest daily streaks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		commenters, err := a.views.Streaks(ctx, args[0], flagCommunityLimit)
		if err != nil {
			return fmt.Errorf("failed to get streaks: %w", err)
		}

		rows := make([][]string, 0, len(commenters))
		for _, c := range commenters {
			rows = append(rows, []string{
				c.AuthorName,
				strconv.FormatInt(c.StreakDays, 10),
				formatCount(c.CommentCount),
			})
		}
		return a.render(commenters, []string{"NAME", "STREAK DAYS", "COMMENTS"}, rows)
	},
}

var communityProfileCmd = &cobra.Command{
	Use:   "profile [author-channel-id]",
	Short: "Show one commenter's profile and recent comments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		channelID, _ := cmd.Flags().GetString("channel")
		if channelID == "" {
			return fmt.Errorf("--channel is required")
		}

		profile, err := a.client.GetCommenterProfile(ctx, args[0], channelID)
		if err != nil {
			return fmt.Errorf("failed to get commenter profile: %w", err)
		}
		return printJSON(profile)
	},
}

func init() {
	communityTopCmd.Flags().IntVar(&flagCommunityLimit, "limit", 20, "number of commenters")
	communityStreaksCmd.Flags().IntVar(&flagCommunityLimit, "limit", 20, "number of commenters")
	communityProfileCmd.Flags().String("channel", "", "channel the profile is scoped to")

	communityCmd.AddCommand(communityStatsCmd, communityTopCmd, communityStreaksCmd, communityProfileCmd)
	rootCmd.AddCommand(communityCmd)
}
