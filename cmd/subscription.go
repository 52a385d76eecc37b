package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PriyanshAroraa/CreatorPulse/config"
)

var subscriptionCmd = &cobra.Command{
	Use:   "subscription",
	Short: "Billing plan status and upgrades",
}

var subscriptionStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current plan and channel limit",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		status, err := a.client.GetSubscriptionStatus(ctx)
		if err != nil {
			return fmt.Errorf("failed to get subscription status: %w", err)
		}
		if a.cfg.Output == "json" {
			return printJSON(status)
		}

		fmt.Printf("Plan:         %s (%s)\n", status.Plan, status.Status)
		fmt.Printf("Max channels: %d\n", status.MaxChannels)
		return nil
	},
}

var subscriptionUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Start a plan upgrade and print the checkout URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		checkoutURL, err := a.client.CreateCheckout(ctx)
		if err != nil {
			return fmt.Errorf("failed to create checkout: %w", err)
		}
		fmt.Println(checkoutURL)
		return nil
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage client configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("api-url")
		path, err := config.Init(apiURL)
		if err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().String("api-url", "", "backend base URL to seed the file with")

	subscriptionCmd.AddCommand(subscriptionStatusCmd, subscriptionUpgradeCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(subscriptionCmd, configCmd)
}
