package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "Generate and manage analytics reports",
}

var reportsListCmd = &cobra.Command{
	Use:   "list [channel-id]",
	Short: "List reports for a channel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		reports, err := a.client.ListReports(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to list reports: %w", err)
		}

		rows := make([][]string, 0, len(reports))
		for _, r := range reports {
			rows = append(rows, []string{
				r.ID,
				r.Title,
				r.DateFrom + " .. " + r.DateTo,
				string(r.Status),
			})
		}
		return a.render(reports, []string{"ID", "TITLE", "RANGE", "STATUS"}, rows)
	},
}

var reportsCreateCmd = &cobra.Command{
	Use:   "create [channel-id]",
	Short: "Generate a report for a date range",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		dateFrom, _ := cmd.Flags().GetString("from")
		dateTo, _ := cmd.Flags().GetString("to")
		title, _ := cmd.Flags().GetString("title")
		if dateFrom == "" || dateTo == "" {
			return fmt.Errorf("--from and --to are required (YYYY-MM-DD)")
		}

		report, err := a.client.CreateReport(ctx, args[0], dateFrom, dateTo, title)
		if err != nil {
			return fmt.Errorf("failed to create report: %w", err)
		}
		fmt.Printf("Report %s is %s\n", report.ID, report.Status)
		return nil
	},
}

var reportsGetCmd = &cobra.Command{
	Use:   "get [report-id]",
	Short: "Show one report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		report, err := a.client.GetReport(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to get report: %w", err)
		}
		return printJSON(report)
	},
}

var reportsDeleteCmd = &cobra.Command{
	Use:   "delete [report-id]",
	Short: "Delete a report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirm("Delete report " + args[0] + "?") {
			return nil
		}

		a, err := loadApp()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), a.timeout())
		defer cancel()

		if err := a.client.DeleteReport(ctx, args[0]); err != nil {
			return fmt.Errorf("failed to delete report: %w", err)
		}
		fmt.Println("Report deleted")
		return nil
	},
}

var reportsDownloadCmd = &cobra.Command{
	Use:   "download [report-id]",
	Short: "Print the download URL for a finished report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := loadApp()
		if err != nil {
			return err
		}
		fmt.Println(a.client.ReportDownloadURL(args[0]))
		return nil
	},
}

func init() {
	reportsCreateCmd.Flags().String("from", "", "start date (YYYY-MM-DD)")
	reportsCreateCmd.Flags().String("to", "", "end date (YYYY-MM-DD)")
	reportsCreateCmd.Flags().String("title", "", "report title")

	reportsCmd.AddCommand(reportsListCmd, reportsCreateCmd, reportsGetCmd, reportsDeleteCmd, reportsDownloadCmd)
	rootCmd.AddCommand(reportsCmd)
}
