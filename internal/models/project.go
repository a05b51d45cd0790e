// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package models

// Project is a keyword project owned by one company.
type Project struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	CompanyName   string    `json:"company_name"`
	DomainKeyword *string   `json:"domain_keyword,omitempty"`
	Description   *string   `json:"description,omitempty"`
	Industry      *string   `json:"industry,omitempty"`
	Status        int       `json:"status"`
	CreatedAt     Timestamp `json:"created_at"`
}

// ProjectCreate is the body of POST /keywords/projects.
type ProjectCreate struct {
	Name          string `json:"name"`
	CompanyName   string `json:"company_name"`
	DomainKeyword string `json:"domain_keyword,omitempty"`
	Description   string `json:"description,omitempty"`
	Industry      string `json:"industry,omitempty"`
}

// Keyword belongs to a Project.
type Keyword struct {
	ID              int       `json:"id"`
	ProjectID       int       `json:"project_id"`
	Keyword         string    `json:"keyword"`
	DifficultyScore *int      `json:"difficulty_score,omitempty"`
	Status          *string   `json:"status,omitempty"`
	CreatedAt       Timestamp `json:"created_at"`
}

// KeywordCreate is the body of POST /keywords/projects/{id}/keywords.
type KeywordCreate struct {
	ProjectID       int    `json:"project_id"`
	Keyword         string `json:"keyword"`
	DifficultyScore *int   `json:"difficulty_score,omitempty"`
}

// QuestionVariant is a generated question phrasing for a keyword.
type QuestionVariant struct {
	ID        int       `json:"id"`
	KeywordID int       `json:"keyword_id"`
	Question  string    `json:"question"`
	CreatedAt Timestamp `json:"created_at"`
}

// DefaultDistillCount is the number of keywords distilled when Count is 0.
const DefaultDistillCount = 10

// DistillRequest asks the backend to distill keywords for a project.
type DistillRequest struct {
	ProjectID   int    `json:"project_id"`
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry,omitempty"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count"`
}

// DefaultQuestionCount is the number of question variants when Count is 0.
const DefaultQuestionCount = 3

// GenerateQuestionsRequest asks for question variants of one keyword.
type GenerateQuestionsRequest struct {
	KeywordID int `json:"keyword_id"`
	Count     int `json:"count"`
}
