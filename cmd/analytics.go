package cmd

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	flagTrendDays int
	flagTopLimit  int
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Channel analytics: sentiment, tags, trends, top videos",
}

var analyticsSummaryCmd = &cobra.Command{
	Use:   "summary [channel-id]",
	Short: "Show the dashboard summary for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		summary, err := a.views.Summary(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get summary: %w", err)
		}
		if a.cfg.Output == "json" {
			return printJSON(summary)
		}

		fmt.Printf("Comments:          %s\n", formatCount(summary.TotalComments))
		fmt.Printf("Videos analyzed:   %s\n", formatCount(summary.TotalVideos))
		fmt.Printf("Unique commenters: %s\n", formatCount(summary.UniqueCommenters))
		fmt.Printf("Bookmarked:        %s\n", formatCount(summary.BookmarkedComments))
		fmt.Printf("Last 7 days:       %s\n", formatCount(summary.RecentComments7d))
		p := summary.Sentiment.Percentages
		fmt.Printf("Sentiment:         %.0f%% positive / %.0f%% neutral / %.0f%% negative\n",
			p.Positive, p.Neutral, p.Negative)
		return nil
	},
}

var analyticsSentimentCmd = &cobra.Command{
	Use:   "sentiment [channel-id]",
	Short: "Show the sentiment breakdown for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		breakdown, err := a.views.Sentiment(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get sentiment: %w", err)
		}
		if a.cfg.Output == "json" {
			return printJSON(breakdown)
		}

		printTable(
			[]string{"POLARITY", "COUNT", "SHARE"},
			[][]string{
				{"positive", formatCount(breakdown.Breakdown.Positive), fmt.Sprintf("%.1f%%", breakdown.Percentages.Positive)},
				{"neutral", formatCount(breakdown.Breakdown.Neutral), fmt.Sprintf("%.1f%%", breakdown.Percentages.Neutral)},
				{"negative", formatCount(breakdown.Breakdown.Negative), fmt.Sprintf("%.1f%%", breakdown.Percentages.Negative)},
			},
		)
		fmt.Printf("Total analyzed: %s\n", formatCount(breakdown.Total))
		return nil
	},
}

var analyticsTagsCmd = &cobra.Command{
	Use:   "tags [channel-id]",
	Short: "Show tag usage counts for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		counts, err := a.views.TagCounts(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get tag counts: %w", err)
		}
		if a.cfg.Output == "json" {
			return printJSON(counts)
		}

		names := make([]string, 0, len(counts))
		for name := range counts {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool { return counts[names[i]] > counts[names[j]] })

		rows := make([][]string, 0, len(names))
		for _, name := range names {
			rows = append(rows, []string{name, formatCount(counts[name])})
		}
		printTable([]string{"TAG", "COUNT"}, rows)
		return nil
	},
}

var analyticsTrendsCmd = &cobra.Command{
	Use:   "trends [channel-id]",
	Short: "Show the daily sentiment trend",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		trends, err := a.views.Trends(ctx, args[0], flagTrendDays)
		if err != nil {
			return fmt.Errorf("failed to get trends: %w", err)
		}

		rows := make([][]string, 0, len(trends))
		for _, t := range trends {
			rows = append(rows, []string{
				t.Date,
				strconv.FormatInt(t.Positive, 10),
				strconv.FormatInt(t.Neutral, 10),
				strconv.FormatInt(t.Negative, 10),
				strconv.FormatInt(t.Total, 10),
			})
		}
		return a.render(trends, []string{"DATE", "POSITIVE", "NEUTRAL", "NEGATIVE", "TOTAL"}, rows)
	},
}

var analyticsTopVideosCmd = &cobra.Command{
	Use:   "top-videos [channel-id]",
	Short: "Show top videos by comment engagement",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		videos, err := a.views.TopVideos(ctx, args[0], flagTopLimit)
		if err != nil {
			return fmt.Errorf("failed to get top videos: %w", err)
		}

		rows := make([][]string, 0, len(videos))
		for _, v := range videos {
			rows = append(rows, []string{
				v.Title,
				formatCount(v.CommentCount),
				formatCount(v.PositiveCount),
				formatCount(v.NegativeCount),
				fmt.Sprintf("%.2f", v.SentimentRatio),
			})
		}
		return a.render(videos, []string{"TITLE", "COMMENTS", "POSITIVE", "NEGATIVE", "RATIO"}, rows)
	},
}

func init() {
	analyticsTrendsCmd.Flags().IntVar(&flagTrendDays, "days", 30, "trend window in days")
	analyticsTopVideosCmd.Flags().IntVar(&flagTopLimit, "limit", 10, "number of videos")

	analyticsCmd.AddCommand(
		analyticsSummaryCmd,
		analyticsSentimentCmd,
		analyticsTagsCmd,
		analyticsTrendsCmd,
		analyticsTopVideosCmd,
	)
	rootCmd.AddCommand(analyticsCmd)
}
