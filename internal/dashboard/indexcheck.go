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

	"github.com/tomtom215/geodash/internal/models"
)

// DefaultIndexTrendDays is the facade default for IndexCheck.Trend.
const DefaultIndexTrendDays = 7

// IndexCheck asks AI platforms whether they mention a keyword and company.
type IndexCheck struct {
	c Caller
}

// Check runs an index check. Empty Platforms lets the backend pick its
// default set.
func (i *IndexCheck) Check(ctx context.Context, req models.CheckRequest) (*models.ActionResult, error) {
	raw, err := i.c.Post(ctx, "/index-check/check", req)
	if err != nil {
		return nil, err
	}
	return decode[models.ActionResult](raw)
}

// Records returns check records, optionally filtered to keywordID. Zero
// values are not sent.
func (i *IndexCheck) Records(ctx context.Context, keywordID, limit int) ([]models.IndexRecord, error) {
	q := url.Values{}
	if keywordID > 0 {
		q.Set("keyword_id", strconv.Itoa(keywordID))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	raw, err := i.c.Get(ctx, "/index-check/records", q)
	if err != nil {
		return nil, err
	}
	return ListOf[models.IndexRecord](raw)
}

// Trend returns daily hit counts for keywordID over w.
func (i *IndexCheck) Trend(ctx context.Context, keywordID int, w Window) ([]models.TrendPoint, error) {
	raw, err := i.c.Get(ctx, fmt.Sprintf("/index-check/trend/%d", keywordID), w.apply(nil, DefaultIndexTrendDays))
	if err != nil {
		return nil, err
	}
	return ListOf[models.TrendPoint](raw)
}
