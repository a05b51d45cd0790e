// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package models

// Article status values reported by the backend.
const (
	QualityPending = "pending"
	QualityPassed  = "passed"
	QualityFailed  = "failed"

	PublishDraft     = "draft"
	PublishPublished = "published"
	PublishFailed    = "failed"

	IndexUnchecked = "uncheck"
	IndexIndexed   = "indexed"
	IndexMissing   = "not_indexed"
)

// DefaultPlatform is the publish platform used when none is given.
const DefaultPlatform = "zhihu"

// Article is a generated GEO article and its pipeline state.
type Article struct {
	ID        int     `json:"id"`
	KeywordID int     `json:"keyword_id"`
	Title     *string `json:"title,omitempty"`
	Content   *string `json:"content,omitempty"`

	QualityStatus string `json:"quality_status"`
	PublishStatus string `json:"publish_status"`
	IndexStatus   string `json:"index_status"`
	Platform      string `json:"platform"`

	QualityScore     *int `json:"quality_score,omitempty"`
	AIScore          *int `json:"ai_score,omitempty"`
	ReadabilityScore *int `json:"readability_score,omitempty"`

	RetryCount   int     `json:"retry_count"`
	ErrorMsg     *string `json:"error_msg,omitempty"`
	PublishLogs  *string `json:"publish_logs,omitempty"`
	PlatformURL  *string `json:"platform_url,omitempty"`
	IndexDetails *string `json:"index_details,omitempty"`

	PublishTime   Timestamp `json:"publish_time"`
	LastCheckTime Timestamp `json:"last_check_time"`
	CreatedAt     Timestamp `json:"created_at"`
}

// DisplayTitle returns the title or a placeholder while generation runs.
func (a *Article) DisplayTitle() string {
	if a.Title == nil || *a.Title == "" {
		return "(generating)"
	}
	return *a.Title
}

// GenerateArticleRequest is the body of POST /geo/generate.
type GenerateArticleRequest struct {
	KeywordID   int        `json:"keyword_id"`
	CompanyName string     `json:"company_name,omitempty"`
	Platform    string     `json:"platform,omitempty"`
	PublishTime *Timestamp `json:"publish_time,omitempty"`
}
