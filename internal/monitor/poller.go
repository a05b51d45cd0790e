// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

// Package monitor refreshes the report overview on a fixed interval for the
// monitoring view.
package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/tomtom215/geodash/internal/logging"
	"github.com/tomtom215/geodash/internal/metrics"
	"github.com/tomtom215/geodash/internal/models"
)

// DefaultInterval is the refresh period when none is configured.
const DefaultInterval = 10 * time.Second

// OverviewSource is satisfied by *dashboard.Reports.
type OverviewSource interface {
	Overview(ctx context.Context) (*models.Overview, error)
}

// Snapshot is the latest successful refresh.
type Snapshot struct {
	Overview  models.Overview `json:"overview"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Poller implements suture.Service.
type Poller struct {
	source   OverviewSource
	interval time.Duration
	onUpdate func(Snapshot)

	mu     sync.RWMutex
	latest *Snapshot
}

// New returns a Poller. onUpdate may be nil.
func New(source OverviewSource, interval time.Duration, onUpdate func(Snapshot)) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		source:   source,
		interval: interval,
		onUpdate: onUpdate,
	}
}

// Serve refreshes immediately and then every interval until ctx is done.
func (p *Poller) Serve(ctx context.Context) error {
	p.refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.refresh(ctx)
		}
	}
}

// String implements fmt.Stringer for suture logs.
func (p *Poller) String() string {
	return "overview-poller"
}

// Latest returns the last successful snapshot.
func (p *Poller) Latest() (Snapshot, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.latest == nil {
		return Snapshot{}, false
	}
	return *p.latest, true
}

// refresh keeps the previous snapshot on failure; the client has already
// notified the error.
func (p *Poller) refresh(ctx context.Context) {
	ctx = logging.ContextWithNewCorrelationID(ctx)
	ov, err := p.source.Overview(ctx)
	metrics.RecordPollerRefresh(err)
	if err != nil {
		if ctx.Err() == nil {
			logging.Ctx(ctx).Debug().Err(err).Msg("Overview refresh skipped")
		}
		return
	}

	snap := Snapshot{Overview: *ov, UpdatedAt: time.Now()}
	p.mu.Lock()
	p.latest = &snap
	p.mu.Unlock()

	if p.onUpdate != nil {
		p.onUpdate(snap)
	}
}
