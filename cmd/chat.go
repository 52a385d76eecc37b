package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var flagHistoryLimit int

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Ask the AI assistant about a channel's comments",
}

var chatSendCmd = &cobra.Command{
	Use:   "send [channel-id] [message...]",
	Short: "Send a question to the assistant",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		// Assistant responses can take a while; allow double the regular
		// request timeout.
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*a.timeout())
		defer cancel()

		message := strings.Join(args[1:], " ")
		reply, err := a.client.SendChat(ctx, args[0], message)
		if err != nil {
			return fmt.Errorf("failed to send chat message: %w", err)
		}
		fmt.Println(reply.Response)
		return nil
	},
}

var chatHistoryCmd = &cobra.Command{
	Use:   "history [channel-id]",
	Short: "Show recent assistant exchanges",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		history, err := a.client.GetChatHistory(ctx, args[0], flagHistoryLimit)
		if err != nil {
			return fmt.Errorf("failed to get chat history: %w", err)
		}
		if a.cfg.Output == "json" {
			return printJSON(history)
		}

		for _, m := range history {
			fmt.Printf("[%s]\n", m.Timestamp.Local().Format("2006-01-02 15:04"))
			fmt.Printf("you: %s\n", m.UserMessage)
			fmt.Printf("ai:  %s\n\n", m.AIResponse)
		}
		return nil
	},
}

var chatClearCmd = &cobra.Command{
	Use:   "clear [channel-id]",
	Short: "Delete the assistant conversation for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Clear chat history for channel " + args[0] + "?") {
			return nil
		}

		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		if err := a.client.ClearChatHistory(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to clear chat history: %w", err)
		}
		fmt.Println("Chat history cleared")
		return nil
	},
}

func init() {
	chatHistoryCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "number of exchanges")

	chatCmd.AddCommand(chatSendCmd, chatHistoryCmd, chatClearCmd)
	rootCmd.AddCommand(chatCmd)
}
