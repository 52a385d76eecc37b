package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/PriyanshAroraa/CreatorPulse/model"
)

// ListReports returns every report generated for a channel.
func (c *Client) ListReports(ctx context.Context, channelID string) ([]model.Report, error) {
	var reports []model.Report
	if err := c.get(ctx, "/reports/channel/"+url.PathEscape(channelID), &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

// CreateReport asks the backend to generate a report for a date range.
// Generation is asynchronous; the returned record starts in "generating".
func (c *Client) CreateReport(ctx context.Context, channelID, dateFrom, dateTo, title string) (*model.Report, error) {
	body := map[string]string{
		"channel_id": channelID,
		"date_from":  dateFrom,
		"date_to":    dateTo,
	}
	if title != "" {
		body["title"] = title
	}

	var report model.Report
	if err := c.do(ctx, http.MethodPost, "/reports", body, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// GetReport returns one report record.
func (c *Client) GetReport(ctx context.Context, reportID string) (*model.Report, error) {
	var report model.Report
	if err := c.get(ctx, "/reports/"+url.PathEscape(reportID), &report); err != nil {
		return nil, err
	}
	return &report, nil
}

// DeleteReport removes a generated report.
func (c *Client) DeleteReport(ctx context.Context, reportID string) error {
	return c.do(ctx, http.MethodDelete, "/reports/"+url.PathEscape(reportID), nil, nil)
}

// ReportDownloadURL is the direct download location for a finished report.
func (c *Client) ReportDownloadURL(reportID string) string {
	return c.baseURL + "/reports/" + url.PathEscape(reportID) + "/download"
}
