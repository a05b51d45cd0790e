// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import (
	"context"
	"net/url"
	"strconv"

	"github.com/tomtom215/geodash/internal/models"
)

// DefaultReportDays is the facade default window for report reads.
const DefaultReportDays = 30

// Reports reads the aggregate dashboards.
type Reports struct {
	c Caller
}

// Overview returns the top stat cards.
func (r *Reports) Overview(ctx context.Context) (*models.Overview, error) {
	raw, err := r.c.Get(ctx, "/reports/overview", nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Overview](raw)
}

// Trends returns daily index-check hits over w.
func (r *Reports) Trends(ctx context.Context, w Window) ([]models.TrendPoint, error) {
	raw, err := r.c.Get(ctx, "/reports/trends", w.apply(nil, DefaultReportDays))
	if err != nil {
		return nil, err
	}
	return ListOf[models.TrendPoint](raw)
}

// IndexTrend returns the article index-status trend.
func (r *Reports) IndexTrend(ctx context.Context) ([]models.TrendPoint, error) {
	raw, err := r.c.Get(ctx, "/reports/trend/index", nil)
	if err != nil {
		return nil, err
	}
	return ListOf[models.TrendPoint](raw)
}

// Stats returns publishing and hit-rate totals. projectID 0 means all
// projects.
func (r *Reports) Stats(ctx context.Context, projectID int, w Window) (*models.Stats, error) {
	raw, err := r.c.Get(ctx, "/reports/stats", w.apply(projectQuery(projectID), DefaultReportDays))
	if err != nil {
		return nil, err
	}
	return decode[models.Stats](raw)
}

// PlatformComparison returns per-platform hit rates.
func (r *Reports) PlatformComparison(ctx context.Context, projectID int, w Window) ([]models.PlatformComparison, error) {
	raw, err := r.c.Get(ctx, "/reports/platform-comparison", w.apply(projectQuery(projectID), DefaultReportDays))
	if err != nil {
		return nil, err
	}
	return ListOf[models.PlatformComparison](raw)
}

// ProjectLeaderboard ranks projects by AI visibility over w.
func (r *Reports) ProjectLeaderboard(ctx context.Context, w Window) ([]models.LeaderboardEntry, error) {
	raw, err := r.c.Get(ctx, "/reports/project-leaderboard", w.apply(nil, DefaultReportDays))
	if err != nil {
		return nil, err
	}
	return ListOf[models.LeaderboardEntry](raw)
}

// ContentAnalysis ranks published articles by AI contribution.
func (r *Reports) ContentAnalysis(ctx context.Context, projectID int, w Window) ([]models.ContentContribution, error) {
	raw, err := r.c.Get(ctx, "/reports/content-analysis", w.apply(projectQuery(projectID), DefaultReportDays))
	if err != nil {
		return nil, err
	}
	return ListOf[models.ContentContribution](raw)
}

func projectQuery(projectID int) url.Values {
	if projectID <= 0 {
		return nil
	}
	return url.Values{"project_id": {strconv.Itoa(projectID)}}
}
