// GeoDash - GEO Content Operations Client
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/geodash

package dashboard

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/geodash/internal/apiclient"
	"github.com/tomtom215/geodash/internal/models"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string
	Body   string
}

// fakeBackend records every request under /api and serves routes
// registered by the test.
type fakeBackend struct {
	mu       sync.Mutex
	requests []recordedRequest
	notes    []apiclient.Notification
}

func (f *fakeBackend) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{r.Method, r.URL.Path, r.URL.RawQuery, string(body)})
		f.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (f *fakeBackend) Notify(_ context.Context, n apiclient.Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notes = append(f.notes, n)
}

func (f *fakeBackend) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeBackend) notifications() []apiclient.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]apiclient.Notification(nil), f.notes...)
}

// newFakeBackend starts a chi server; routes registers handlers under /api.
// Unregistered paths answer {}.
func newFakeBackend(t *testing.T, routes func(r chi.Router), opts ...apiclient.Option) (*fakeBackend, *Services) {
	t.Helper()
	fb := &fakeBackend{}

	r := chi.NewRouter()
	r.Use(fb.record)
	r.Route("/api", func(r chi.Router) {
		if routes != nil {
			routes(r)
		}
		r.HandleFunc("/*", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})
	})

	server := httptest.NewServer(r)
	t.Cleanup(server.Close)

	opts = append([]apiclient.Option{apiclient.WithNotifier(fb)}, opts...)
	c, err := apiclient.New(apiclient.Config{BaseURL: server.URL + "/api"}, opts...)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return fb, New(c)
}

func TestEndpointTable(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func(s *Services) error
		method string
		path   string
		query  string
		body   string
	}{
		{"accounts list", func(s *Services) error {
			_, err := s.Accounts.List(ctx, url.Values{"platform": {"zhihu"}})
			return err
		}, "GET", "/api/accounts", "platform=zhihu", ""},
		{"accounts start auth", func(s *Services) error {
			_, err := s.Accounts.StartAuth(ctx, models.Record{"platform": "zhihu"})
			return err
		}, "POST", "/api/accounts/auth/start", "", `{"platform":"zhihu"}`},
		{"accounts auth status", func(s *Services) error {
			_, err := s.Accounts.AuthStatus(ctx, "task-1")
			return err
		}, "GET", "/api/accounts/auth/status/task-1", "", ""},
		{"accounts update", func(s *Services) error {
			_, err := s.Accounts.Update(ctx, 7, models.Record{"remark": "main"})
			return err
		}, "PUT", "/api/accounts/7", "", `{"remark":"main"}`},
		{"accounts delete", func(s *Services) error {
			return s.Accounts.Delete(ctx, 7)
		}, "DELETE", "/api/accounts/7", "", ""},
		{"list projects", func(s *Services) error {
			_, err := s.Keywords.ListProjects(ctx)
			return err
		}, "GET", "/api/keywords/projects", "", ""},
		{"get project", func(s *Services) error {
			_, err := s.Keywords.GetProject(ctx, 3)
			return err
		}, "GET", "/api/keywords/projects/3", "", ""},
		{"project keywords", func(s *Services) error {
			_, err := s.Keywords.ProjectKeywords(ctx, 3)
			return err
		}, "GET", "/api/keywords/projects/3/keywords", "", ""},
		{"create project", func(s *Services) error {
			_, err := s.Keywords.CreateProject(ctx, models.ProjectCreate{Name: "P", CompanyName: "Acme"})
			return err
		}, "POST", "/api/keywords/projects", "", `{"name":"P","company_name":"Acme"}`},
		{"create keyword", func(s *Services) error {
			_, err := s.Keywords.CreateKeyword(ctx, 3, models.KeywordCreate{Keyword: "geo"})
			return err
		}, "POST", "/api/keywords/projects/3/keywords", "", `{"project_id":3,"keyword":"geo"}`},
		{"distill", func(s *Services) error {
			_, err := s.Keywords.Distill(ctx, models.DistillRequest{ProjectID: 3, CompanyName: "Acme"})
			return err
		}, "POST", "/api/keywords/distill", "", `{"project_id":3,"company_name":"Acme","count":10}`},
		{"generate questions", func(s *Services) error {
			_, err := s.Keywords.GenerateQuestions(ctx, models.GenerateQuestionsRequest{KeywordID: 4})
			return err
		}, "POST", "/api/keywords/generate-questions", "", `{"keyword_id":4,"count":3}`},
		{"delete keyword", func(s *Services) error {
			_, err := s.Keywords.DeleteKeyword(ctx, 4)
			return err
		}, "DELETE", "/api/keywords/keywords/4", "", ""},
		{"articles list", func(s *Services) error {
			_, err := s.Articles.List(ctx, 100)
			return err
		}, "GET", "/api/geo/articles", "limit=100", ""},
		{"article get", func(s *Services) error {
			_, err := s.Articles.Get(ctx, 12)
			return err
		}, "GET", "/api/geo/articles/12", "", ""},
		{"generate", func(s *Services) error {
			_, err := s.Articles.Generate(ctx, models.GenerateArticleRequest{KeywordID: 5, Platform: "zhihu"})
			return err
		}, "POST", "/api/geo/generate", "", `{"keyword_id":5,"platform":"zhihu"}`},
		{"check quality", func(s *Services) error {
			_, err := s.Articles.CheckQuality(ctx, 12)
			return err
		}, "POST", "/api/geo/articles/12/check-quality", "", ""},
		{"check index", func(s *Services) error {
			_, err := s.Articles.CheckIndex(ctx, 12)
			return err
		}, "POST", "/api/geo/articles/12/check-index", "", ""},
		{"article delete", func(s *Services) error {
			_, err := s.Articles.Delete(ctx, 12)
			return err
		}, "DELETE", "/api/geo/articles/12", "", ""},
		{"article projects", func(s *Services) error {
			_, err := s.Articles.Projects(ctx)
			return err
		}, "GET", "/api/geo/projects", "", ""},
		{"index check", func(s *Services) error {
			_, err := s.IndexCheck.Check(ctx, models.CheckRequest{KeywordID: 4, CompanyName: "Acme"})
			return err
		}, "POST", "/api/index-check/check", "", `{"keyword_id":4,"company_name":"Acme"}`},
		{"index records", func(s *Services) error {
			_, err := s.IndexCheck.Records(ctx, 4, 50)
			return err
		}, "GET", "/api/index-check/records", "keyword_id=4&limit=50", ""},
		{"index trend", func(s *Services) error {
			_, err := s.IndexCheck.Trend(ctx, 4, Window{})
			return err
		}, "GET", "/api/index-check/trend/4", "days=7", ""},
		{"overview", func(s *Services) error {
			_, err := s.Reports.Overview(ctx)
			return err
		}, "GET", "/api/reports/overview", "", ""},
		{"index trend report", func(s *Services) error {
			_, err := s.Reports.IndexTrend(ctx)
			return err
		}, "GET", "/api/reports/trend/index", "", ""},
		{"stats", func(s *Services) error {
			_, err := s.Reports.Stats(ctx, 2, Days(7))
			return err
		}, "GET", "/api/reports/stats", "days=7&project_id=2", ""},
		{"platform comparison", func(s *Services) error {
			_, err := s.Reports.PlatformComparison(ctx, 0, ServerDefault)
			return err
		}, "GET", "/api/reports/platform-comparison", "", ""},
		{"leaderboard", func(s *Services) error {
			_, err := s.Reports.ProjectLeaderboard(ctx, Window{})
			return err
		}, "GET", "/api/reports/project-leaderboard", "days=30", ""},
		{"content analysis", func(s *Services) error {
			_, err := s.Reports.ContentAnalysis(ctx, 1, Days(14))
			return err
		}, "GET", "/api/reports/content-analysis", "days=14&project_id=1", ""},
		{"scheduler jobs", func(s *Services) error {
			_, err := s.Scheduler.Jobs(ctx)
			return err
		}, "GET", "/api/scheduler/jobs", "", ""},
		{"scheduler start", func(s *Services) error {
			_, err := s.Scheduler.Start(ctx)
			return err
		}, "POST", "/api/scheduler/start", "", ""},
		{"scheduler stop", func(s *Services) error {
			_, err := s.Scheduler.Stop(ctx)
			return err
		}, "POST", "/api/scheduler/stop", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fb, s := newFakeBackend(t, nil)
			if err := tt.call(s); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			reqs := fb.recorded()
			if len(reqs) != 1 {
				t.Fatalf("expected exactly one request, got %d", len(reqs))
			}
			got := reqs[0]
			checkStringEqual(t, "method", got.Method, tt.method)
			checkStringEqual(t, "path", got.Path, tt.path)
			checkStringEqual(t, "query", got.Query, tt.query)
			checkStringEqual(t, "body", got.Body, tt.body)
		})
	}
}

func TestTrendsWindowAndSeries(t *testing.T) {
	fb, s := newFakeBackend(t, func(r chi.Router) {
		r.Get("/reports/trends", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[
				{"date":"2025-03-01","keyword_found_count":4,"total_checks":9},
				{"date":"2025-03-02","total_checks":3},
				{"date":"2025-03-03","keyword_found_count":null,"total_checks":1}
			]`))
		})
	})
	ctx := context.Background()

	points, err := s.Reports.Trends(ctx, Window{})
	if err != nil {
		t.Fatalf("trends: %v", err)
	}
	if _, err := s.Reports.Trends(ctx, Days(7)); err != nil {
		t.Fatalf("trends 7d: %v", err)
	}
	if _, err := s.Reports.Trends(ctx, ServerDefault); err != nil {
		t.Fatalf("trends server default: %v", err)
	}

	reqs := fb.recorded()
	checkStringEqual(t, "default window", reqs[0].Query, "days=30")
	checkStringEqual(t, "explicit window", reqs[1].Query, "days=7")
	checkStringEqual(t, "omitted window", reqs[2].Query, "")

	labels, counts := TrendSeries(points)
	if len(labels) != 3 || labels[0] != "2025-03-01" || labels[2] != "2025-03-03" {
		t.Errorf("unexpected labels %v", labels)
	}
	want := []int{4, 0, 0}
	for i := range want {
		if counts[i] != want[i] {
			t.Errorf("counts[%d]: expected %d, got %d", i, want[i], counts[i])
		}
	}
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestGenerateUsesLongTimeout(t *testing.T) {
	deadlines := make(map[string]time.Duration)
	var mu sync.Mutex

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"message":"queued","data":{"article_id":12}}`))
	}))
	defer server.Close()

	capture := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		if dl, ok := r.Context().Deadline(); ok {
			mu.Lock()
			deadlines[r.URL.Path] = time.Until(dl)
			mu.Unlock()
		}
		return http.DefaultTransport.RoundTrip(r)
	})

	c, err := apiclient.New(apiclient.Config{BaseURL: server.URL + "/api"},
		apiclient.WithHTTPClient(&http.Client{Transport: capture}))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	s := New(c)
	ctx := context.Background()

	res, err := s.Articles.Generate(ctx, models.GenerateArticleRequest{KeywordID: 5, Platform: "zhihu"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !res.Success || res.Message != "queued" {
		t.Errorf("unexpected result %+v", res)
	}
	if _, err := s.Reports.Overview(ctx); err != nil {
		t.Fatalf("overview: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if d := deadlines["/api/geo/generate"]; d < 4*time.Minute || d > 5*time.Minute {
		t.Errorf("generate deadline: expected about 5m, got %v", d)
	}
	if d := deadlines["/api/reports/overview"]; d > apiclient.DefaultTimeout || d < apiclient.DefaultTimeout-5*time.Second {
		t.Errorf("overview deadline: expected about %v, got %v", apiclient.DefaultTimeout, d)
	}
}

func TestDeleteAccountDoesNotReload(t *testing.T) {
	fb, s := newFakeBackend(t, func(r chi.Router) {
		r.Delete("/accounts/{id}", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"success":true,"message":"deleted ` + chi.URLParam(r, "id") + `"}`))
		})
	})

	if err := s.Accounts.Delete(context.Background(), 7); err != nil {
		t.Fatalf("delete: %v", err)
	}

	reqs := fb.recorded()
	if len(reqs) != 1 {
		t.Fatalf("expected only the DELETE, got %d requests: %+v", len(reqs), reqs)
	}
	checkStringEqual(t, "method", reqs[0].Method, http.MethodDelete)
	checkStringEqual(t, "path", reqs[0].Path, "/api/accounts/7")
}

func TestFacadeErrorsCarryNormalizedMessage(t *testing.T) {
	fb, s := newFakeBackend(t, func(r chi.Router) {
		r.Post("/keywords/projects", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"detail":"project name already exists"}`))
		})
		r.Get("/geo/articles/{id}", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":{"code":17}}`))
		})
	})
	ctx := context.Background()

	_, err := s.Keywords.CreateProject(ctx, models.ProjectCreate{Name: "dup", CompanyName: "Acme"})
	if got := apiclient.StatusCode(err); got != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%v)", got, err)
	}

	_, err = s.Articles.Get(ctx, 1)
	if err == nil {
		t.Fatal("expected error for malformed error body")
	}

	notes := fb.notifications()
	if len(notes) != 2 {
		t.Fatalf("expected two notifications, got %d", len(notes))
	}
	checkStringEqual(t, "detail message", notes[0].Message, "project name already exists")
	checkStringEqual(t, "fallback message", notes[1].Message, "request failed with status code 400")
}
