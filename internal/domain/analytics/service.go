// Package analytics assembles the GA4 KPI payload: session/user totals
// over the 7-day and 28-day windows plus the top pages by sessions.
package analytics

import (
	"context"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/skyhealth/kpi-gateway/internal/httpx/upstream/ga4"
)

// DefaultTopLimit bounds the top-pages report when the request does not
// ask for a specific count
const DefaultTopLimit = 10

// ReportAPI is the consumer-side view of the GA4 client
type ReportAPI interface {
	RunReport(ctx context.Context, propertyID string, req ga4.ReportRequest) (gjson.Result, error)
}

// Service runs the three GA4 reports behind one KPI response
type Service struct {
	api ReportAPI
}

// New creates the analytics service
func New(api ReportAPI) *Service {
	return &Service{api: api}
}

// PageStat is one row of the top-pages report
type PageStat struct {
	Path     string `json:"path"`
	PV       int64  `json:"pv"`
	Sessions int64  `json:"sessions"`
}

// Report is the assembled GA4 KPI payload. Events and conversions are
// reserved slots kept empty for response-shape compatibility.
type Report struct {
	Sessions    map[string]int64 `json:"sessions"` // keyed "7d", "28d"
	Users       map[string]int64 `json:"users"`
	TopPages    []PageStat       `json:"top_pages"`
	Events      []any            `json:"events"`
	Conversions []any            `json:"conversions"`
}

// Fetch runs the three reports concurrently and merges them. Any report
// failing fails the whole request.
func (s *Service) Fetch(ctx context.Context, propertyID string, topLimit int) (*Report, error) {
	if topLimit <= 0 {
		topLimit = DefaultTopLimit
	}

	var tot7, tot28, top gjson.Result

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tot7, err = s.api.RunReport(gctx, propertyID, totalsRequest("7daysAgo"))
		return err
	})
	g.Go(func() error {
		var err error
		tot28, err = s.api.RunReport(gctx, propertyID, totalsRequest("28daysAgo"))
		return err
	})
	g.Go(func() error {
		var err error
		top, err = s.api.RunReport(gctx, propertyID, topPagesRequest(topLimit))
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	s7, u7 := totals(tot7)
	s28, u28 := totals(tot28)

	return &Report{
		Sessions:    map[string]int64{"7d": s7, "28d": s28},
		Users:       map[string]int64{"7d": u7, "28d": u28},
		TopPages:    topPages(top),
		Events:      []any{},
		Conversions: []any{},
	}, nil
}

func totalsRequest(startDate string) ga4.ReportRequest {
	return ga4.ReportRequest{
		DateRanges: []ga4.DateRange{{StartDate: startDate, EndDate: "today"}},
		Metrics:    []ga4.Metric{{Name: "sessions"}, {Name: "totalUsers"}},
	}
}

func topPagesRequest(limit int) ga4.ReportRequest {
	return ga4.ReportRequest{
		DateRanges: []ga4.DateRange{{StartDate: "7daysAgo", EndDate: "today"}},
		Metrics:    []ga4.Metric{{Name: "screenPageViews"}, {Name: "sessions"}},
		Dimensions: []ga4.Dimension{{Name: "pagePath"}},
		OrderBys:   []ga4.OrderBy{{Desc: true, Metric: &ga4.MetricOrderBy{MetricName: "sessions"}}},
		Limit:      int64(limit),
	}
}

// totals reads the single-row totals report. GA4 serializes metric values
// as strings; missing rows read as 0.
func totals(report gjson.Result) (sessions, users int64) {
	row := report.Get("rows.0")
	return row.Get("metricValues.0.value").Int(), row.Get("metricValues.1.value").Int()
}

func topPages(report gjson.Result) []PageStat {
	rows := report.Get("rows").Array()
	pages := make([]PageStat, 0, len(rows))
	for _, row := range rows {
		path := row.Get("dimensionValues.0.value").String()
		if path == "" {
			path = "/"
		}
		pages = append(pages, PageStat{
			Path:     path,
			PV:       row.Get("metricValues.0.value").Int(),
			Sessions: row.Get("metricValues.1.value").Int(),
		})
	}
	return pages
}
