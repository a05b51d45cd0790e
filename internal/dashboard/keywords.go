// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import (
	"context"
	"fmt"

	"github.com/tomtom215/geodash/internal/models"
)

// Keywords manages keyword projects, their keywords and question variants.
type Keywords struct {
	c Caller
}

// ListProjects returns all active projects.
func (k *Keywords) ListProjects(ctx context.Context) ([]models.Project, error) {
	raw, err := k.c.Get(ctx, "/keywords/projects", nil)
	if err != nil {
		return nil, err
	}
	return ListOf[models.Project](raw)
}

// GetProject returns project id.
func (k *Keywords) GetProject(ctx context.Context, id int) (*models.Project, error) {
	raw, err := k.c.Get(ctx, fmt.Sprintf("/keywords/projects/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Project](raw)
}

// ProjectKeywords returns the keywords of project id.
func (k *Keywords) ProjectKeywords(ctx context.Context, id int) ([]models.Keyword, error) {
	raw, err := k.c.Get(ctx, fmt.Sprintf("/keywords/projects/%d/keywords", id), nil)
	if err != nil {
		return nil, err
	}
	return ListOf[models.Keyword](raw)
}

// CreateProject creates a project.
func (k *Keywords) CreateProject(ctx context.Context, req models.ProjectCreate) (*models.Project, error) {
	raw, err := k.c.Post(ctx, "/keywords/projects", req)
	if err != nil {
		return nil, err
	}
	return decode[models.Project](raw)
}

// CreateKeyword adds a keyword to project id. req.ProjectID defaults to id.
func (k *Keywords) CreateKeyword(ctx context.Context, id int, req models.KeywordCreate) (*models.Keyword, error) {
	if req.ProjectID == 0 {
		req.ProjectID = id
	}
	raw, err := k.c.Post(ctx, fmt.Sprintf("/keywords/projects/%d/keywords", id), req)
	if err != nil {
		return nil, err
	}
	return decode[models.Keyword](raw)
}

// Distill asks the backend to derive keywords for a project.
func (k *Keywords) Distill(ctx context.Context, req models.DistillRequest) (*models.ActionResult, error) {
	if req.Count == 0 {
		req.Count = models.DefaultDistillCount
	}
	raw, err := k.c.Post(ctx, "/keywords/distill", req)
	if err != nil {
		return nil, err
	}
	return decode[models.ActionResult](raw)
}

// GenerateQuestions asks for question variants of a keyword.
func (k *Keywords) GenerateQuestions(ctx context.Context, req models.GenerateQuestionsRequest) (*models.ActionResult, error) {
	if req.Count == 0 {
		req.Count = models.DefaultQuestionCount
	}
	raw, err := k.c.Post(ctx, "/keywords/generate-questions", req)
	if err != nil {
		return nil, err
	}
	return decode[models.ActionResult](raw)
}

// DeleteKeyword removes keyword id.
func (k *Keywords) DeleteKeyword(ctx context.Context, id int) (*models.ActionResult, error) {
	raw, err := k.c.Delete(ctx, fmt.Sprintf("/keywords/keywords/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decode[models.ActionResult](raw)
}
