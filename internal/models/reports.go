// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package models

// Overview feeds the dashboard's top stat cards.
type Overview struct {
	TotalProjects  int     `json:"total_projects"`
	TotalKeywords  int     `json:"total_keywords"`
	KeywordFound   int     `json:"keyword_found"`
	CompanyFound   int     `json:"company_found"`
	OverallHitRate float64 `json:"overall_hit_rate"`
}

// TrendPoint is one day of index-check results.
type TrendPoint struct {
	Date              string `json:"date"`
	KeywordFoundCount int    `json:"keyword_found_count"`
	TotalChecks       int    `json:"total_checks"`
}

// Stats is the aggregate report for a project and day window.
type Stats struct {
	TotalArticles  int `json:"total_articles"`
	CommonArticles int `json:"common_articles"`
	GeoArticles    int `json:"geo_articles"`

	PublishSuccessRate  float64 `json:"publish_success_rate"`
	PublishSuccessCount int     `json:"publish_success_count"`
	PublishTotalCount   int     `json:"publish_total_count"`

	KeywordHitRate    float64 `json:"keyword_hit_rate"`
	KeywordHitCount   int     `json:"keyword_hit_count"`
	KeywordCheckCount int     `json:"keyword_check_count"`

	CompanyHitRate    float64 `json:"company_hit_rate"`
	CompanyHitCount   int     `json:"company_hit_count"`
	CompanyCheckCount int     `json:"company_check_count"`
}

// PlatformComparison is the hit rate of one AI platform.
type PlatformComparison struct {
	Platform   string  `json:"platform"`
	HitCount   int     `json:"hit_count"`
	TotalCount int     `json:"total_count"`
	HitRate    float64 `json:"hit_rate"`
}

// LeaderboardEntry ranks a project by AI visibility.
type LeaderboardEntry struct {
	Rank           int     `json:"rank"`
	ProjectName    string  `json:"project_name"`
	CompanyName    string  `json:"company_name"`
	ContentVolume  int     `json:"content_volume"`
	AIMentionRate  float64 `json:"ai_mention_rate"`
	BrandRelevance float64 `json:"brand_relevance"`
}

// ContentContribution ranks a published article by AI contribution.
type ContentContribution struct {
	Rank           int       `json:"rank"`
	Title          string    `json:"title"`
	Platform       string    `json:"platform"`
	AIContribution float64   `json:"ai_contribution"`
	PublishTime    Timestamp `json:"publish_time"`
}
