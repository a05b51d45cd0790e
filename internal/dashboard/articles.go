// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/tomtom215/geodash/internal/apiclient"
	"github.com/tomtom215/geodash/internal/models"
)

// Articles drives article generation and its quality and index checks.
type Articles struct {
	c               Caller
	generateTimeout time.Duration
}

// List returns up to limit articles, newest first. A limit of 0 leaves the
// page size to the backend.
func (a *Articles) List(ctx context.Context, limit int) ([]models.Article, error) {
	var q url.Values
	if limit > 0 {
		q = url.Values{"limit": {strconv.Itoa(limit)}}
	}
	raw, err := a.c.Get(ctx, "/geo/articles", q)
	if err != nil {
		return nil, err
	}
	return ListOf[models.Article](raw)
}

// Get returns article id.
func (a *Articles) Get(ctx context.Context, id int) (*models.Article, error) {
	raw, err := a.c.Get(ctx, fmt.Sprintf("/geo/articles/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decode[models.Article](raw)
}

// Generate starts article generation. The call runs under the generate
// timeout instead of the client default.
func (a *Articles) Generate(ctx context.Context, req models.GenerateArticleRequest) (*models.ActionResult, error) {
	raw, err := a.c.Post(ctx, "/geo/generate", req, apiclient.WithTimeout(a.generateTimeout))
	if err != nil {
		return nil, err
	}
	return decode[models.ActionResult](raw)
}

// CheckQuality runs the quality check on article id.
func (a *Articles) CheckQuality(ctx context.Context, id int) (*models.ActionResult, error) {
	raw, err := a.c.Post(ctx, fmt.Sprintf("/geo/articles/%d/check-quality", id), nil)
	if err != nil {
		return nil, err
	}
	return decode[models.ActionResult](raw)
}

// CheckIndex runs the search-engine index check on article id.
func (a *Articles) CheckIndex(ctx context.Context, id int) (*models.ActionResult, error) {
	raw, err := a.c.Post(ctx, fmt.Sprintf("/geo/articles/%d/check-index", id), nil)
	if err != nil {
		return nil, err
	}
	return decode[models.ActionResult](raw)
}

// Delete removes article id.
func (a *Articles) Delete(ctx context.Context, id int) (*models.ActionResult, error) {
	raw, err := a.c.Delete(ctx, fmt.Sprintf("/geo/articles/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return decode[models.ActionResult](raw)
}

// Projects returns the projects selectable when generating an article.
func (a *Articles) Projects(ctx context.Context) ([]models.Project, error) {
	raw, err := a.c.Get(ctx, "/geo/projects", nil)
	if err != nil {
		return nil, err
	}
	return ListOf[models.Project](raw)
}
