package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PriyanshAroraa/CreatorPulse/stream"
	"github.com/PriyanshAroraa/CreatorPulse/tui"
)

var (
	flagRefresh   bool
	flagDaysBack  int
	flagMaxVideos int
	flagWatch     bool
)

var channelsCmd = &cobra.Command{
	Use:   "channels",
	Short: "Manage connected YouTube channels",
}

var channelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List connected channels",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		channels := a.store.Load(ctx, flagRefresh)

		rows := make([][]string, 0, len(channels))
		for _, c := range channels {
			rows = append(rows, []string{
				c.Name,
				c.ChannelID,
				string(c.SyncStatus),
				formatCount(c.TotalComments),
				formatCount(c.TotalVideosAnalyzed),
				formatTime(c.LastSynced),
			})
		}
		return a.render(channels,
			[]string{"NAME", "CHANNEL ID", "STATUS", "COMMENTS", "VIDEOS", "LAST SYNCED"}, rows)
	},
}

var channelsGetCmd = &cobra.Command{
	Use:   "get [channel-id]",
	Short: "Show one channel record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		channel, err := a.views.Channel(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get channel: %w", err)
		}
		return printJSON(channel)
	},
}

var channelsAddCmd = &cobra.Command{
	Use:   "add [channel-url-or-id]",
	Short: "Connect a new channel",
	Long: `Connect a YouTube channel by URL or ID. Pass --sync to start comment
ingestion immediately, and --watch to follow sync progress live.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		channel, err := a.client.AddChannel(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to add channel: %w", err)
		}
		a.store.Add(*channel)
		fmt.Printf("Added channel %s (%s)\n", channel.Name, channel.ChannelID)

		startSync, _ := cmd.Flags().GetBool("sync")
		if !startSync && !flagWatch {
			return nil
		}
		if err := a.client.SyncChannel(ctx, channel.ChannelID, flagDaysBack, flagMaxVideos); err != nil {
			return fmt.Errorf("failed to start sync: %w", err)
		}
		fmt.Println("Sync started")
		if flagWatch {
			return a.watchSync(cmd.Context(), channel.ChannelID, channel.Name)
		}
		return nil
	},
}

var channelsRemoveCmd = &cobra.Command{
	Use:   "remove [channel-id]",
	Short: "Delete a connected channel and its analyzed data",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete channel " + args[0] + " and all its analyzed data?") {
			return nil
		}

		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		if err := a.client.DeleteChannel(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete channel: %w", err)
		}
		a.store.Remove(args[0])
		fmt.Println("Channel deleted")
		return nil
	},
}

var channelsSyncCmd = &cobra.Command{
	Use:   "sync [channel-id]",
	Short: "Start a backend sync job for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		if err := a.client.SyncChannel(ctx, args[0], flagDaysBack, flagMaxVideos); err != nil {
			return fmt.Errorf("failed to start sync: %w", err)
		}
		fmt.Println("Sync started")

		if flagWatch {
			return a.watchSync(cmd.Context(), args[0], args[0])
		}
		return nil
	},
}

var channelsStatusCmd = &cobra.Command{
	Use:   "status [channel-id]",
	Short: "Show sync status for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		status, err := a.client.GetSyncStatus(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get sync status: %w", err)
		}
		return printJSON(status)
	},
}

var channelsLogsCmd = &cobra.Command{
	Use:   "logs [channel-id]",
	Short: "Show sync log history for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		entries, err := a.client.GetSyncLogs(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get sync logs: %w", err)
		}

		rows := make([][]string, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, []string{
				e.CreatedAt.Local().Format("15:04:05"),
				string(e.Level),
				e.Message,
			})
		}
		return a.render(entries, []string{"TIME", "LEVEL", "MESSAGE"}, rows)
	},
}

var channelsWatchCmd = &cobra.Command{
	Use:   "watch [channel-id]",
	Short: "Follow a channel's sync log live",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		return a.watchSync(cmd.Context(), args[0], args[0])
	},
}

// watchSync runs the live log view. Sync completion forces a channel list
// reload, invalidates the channel's cached views, and re-warms them so reads
// after the watcher exits see updated counts.
func (a *app) watchSync(ctx context.Context, channelID, channelName string) error {
	ls := stream.New(a.client, func() {
		refreshCtx := context.Background()
		a.store.Load(refreshCtx, true)
		a.views.InvalidateChannel(channelID)
		a.views.Prefetch(refreshCtx, channelID)
	})
	return tui.RunSyncLog(ctx, ls, channelID, channelName)
}

func init() {
	channelsListCmd.Flags().BoolVar(&flagRefresh, "refresh", false, "bypass the cached list")

	channelsAddCmd.Flags().Bool("sync", false, "start sync after adding")
	channelsAddCmd.Flags().IntVar(&flagDaysBack, "days-back", 30, "how many days of videos to ingest")
	channelsAddCmd.Flags().IntVar(&flagMaxVideos, "max-videos", 50, "maximum videos to ingest")
	channelsAddCmd.Flags().BoolVar(&flagWatch, "watch", false, "follow sync progress live")

	channelsSyncCmd.Flags().IntVar(&flagDaysBack, "days-back", 30, "how many days of videos to ingest")
	channelsSyncCmd.Flags().IntVar(&flagMaxVideos, "max-videos", 50, "maximum videos to ingest")
	channelsSyncCmd.Flags().BoolVar(&flagWatch, "watch", false, "follow sync progress live")

	channelsCmd.AddCommand(
		channelsListCmd,
		channelsGetCmd,
		channelsAddCmd,
		channelsRemoveCmd,
		channelsSyncCmd,
		channelsStatusCmd,
		channelsLogsCmd,
		channelsWatchCmd,
	)
	rootCmd.AddCommand(channelsCmd)
}
