package backend

import (
	"context"
	"net/url"

	"github.com/sardorbek/darsxona/core/session"
)

// ReportSummary is the dashboard headline block; aggregation is server-side.
type ReportSummary struct {
	Period       string  `json:"period"`
	Students     int     `json:"students"`
	ActiveGroups int     `json:"active_groups"`
	Revenue      float64 `json:"revenue"`
	Debtors      int     `json:"debtors"`
}

// TrendPoint is one x-axis step of the payments/enrollment chart.
type TrendPoint struct {
	Label    string  `json:"label"`
	Payments float64 `json:"payments"`
	Students int     `json:"students"`
}

func (c *Client) ReportSummary(ctx context.Context, sess session.Session, period string) (ReportSummary, error) {
	var query url.Values
	if period != "" {
		query = url.Values{"period": {period}}
	}
	var out ReportSummary
	err := c.get(ctx, sess, "/reports/summary", query, &out)
	return out, err
}

func (c *Client) ReportTrend(ctx context.Context, sess session.Session) ([]TrendPoint, error) {
	var out []TrendPoint
	err := c.get(ctx, sess, "/reports/trend", nil, &out)
	return out, err
}

// ExportReport proxies the backend's generated file (xlsx or pdf) unchanged.
func (c *Client) ExportReport(ctx context.Context, sess session.Session, period, format string) (Export, error) {
	query := url.Values{}
	if period != "" {
		query.Set("period", period)
	}
	if format != "" {
		query.Set("format", format)
	}
	return c.getRaw(ctx, sess, "/reports/export", query)
}
