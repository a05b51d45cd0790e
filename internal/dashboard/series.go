// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import "github.com/tomtom215/geodash/internal/models"

// TrendSeries turns trend points into chart labels and counts. A point
// without keyword_found_count contributes 0.
func TrendSeries(points []models.TrendPoint) (labels []string, counts []int) {
	labels = make([]string, len(points))
	counts = make([]int, len(points))
	for i, p := range points {
		labels[i] = p.Date
		counts[i] = p.KeywordFoundCount
	}
	return labels, counts
}
