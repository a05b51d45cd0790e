// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

/*
Package models defines the request and response shapes of the GEO backend.

The backend is the source of truth for every field here; the client never
validates them. Fields the backend declares optional are pointers or carry
omitempty so an absent value and a zero value stay distinguishable where the
dashboard cares.

Model Categories:

 1. Keyword projects: Project, ProjectCreate, Keyword, KeywordCreate,
    QuestionVariant, DistillRequest, GenerateQuestionsRequest
 2. Articles: Article, GenerateArticleRequest
 3. Index checks: CheckRequest, IndexRecord
 4. Reports: Overview, TrendPoint, Stats, PlatformComparison,
    LeaderboardEntry, ContentContribution
 5. Loosely typed: ActionResult, Record

Timestamps use Timestamp, which accepts the naive ISO-8601 strings the
backend emits as well as RFC 3339.
*/
package models
