// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package models

// DefaultCheckPlatforms are queried when CheckRequest.Platforms is empty.
var DefaultCheckPlatforms = []string{"doubao", "qianwen", "deepseek"}

// CheckRequest asks the backend to probe AI platforms for a keyword.
type CheckRequest struct {
	KeywordID   int      `json:"keyword_id"`
	CompanyName string   `json:"company_name"`
	Platforms   []string `json:"platforms,omitempty"`
}

// IndexRecord is one platform answer from an index check.
type IndexRecord struct {
	ID           int       `json:"id"`
	KeywordID    int       `json:"keyword_id"`
	Platform     string    `json:"platform"`
	Question     string    `json:"question"`
	Answer       *string   `json:"answer,omitempty"`
	KeywordFound bool      `json:"keyword_found"`
	CompanyFound bool      `json:"company_found"`
	CheckTime    Timestamp `json:"check_time"`
}
