// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import (
	"context"

	"github.com/tomtom215/geodash/internal/models"
)

// Scheduler controls the backend's periodic job runner.
type Scheduler struct {
	c Caller
}

// Jobs lists scheduled jobs.
func (s *Scheduler) Jobs(ctx context.Context) ([]models.Record, error) {
	raw, err := s.c.Get(ctx, "/scheduler/jobs", nil)
	if err != nil {
		return nil, err
	}
	return ListOf[models.Record](raw)
}

// Start starts the scheduler.
func (s *Scheduler) Start(ctx context.Context) (models.Record, error) {
	raw, err := s.c.Post(ctx, "/scheduler/start", nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}

// Stop stops the scheduler.
func (s *Scheduler) Stop(ctx context.Context) (models.Record, error) {
	raw, err := s.c.Post(ctx, "/scheduler/stop", nil)
	if err != nil {
		return nil, err
	}
	return decodeRecord(raw)
}
