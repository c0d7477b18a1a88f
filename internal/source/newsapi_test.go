package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/seenimoa/marketpulse/pkg/models"
)

func testQuery() models.CompanyQuery {
	return models.CompanyQuery{Name: "TCS", DateRange: "1d"}
}

func newTestClient(baseURL string) *NewsAPIClient {
	return NewNewsAPIClient("test-key", baseURL, 5*time.Second, nil)
}

func TestNewsAPISearchFiltersWholeWord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/everything" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != `"TCS"` {
			t.Errorf("q = %q, want quoted company", got)
		}
		if r.URL.Query().Get("from") == "" {
			t.Error("missing from date floor")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 3,
			"articles": [
				{"source":{"name":"Reuters"},"title":"TCS wins major cloud contract","description":"Tata Consultancy Services lands deal","url":"https://example.com/1","publishedAt":"2026-08-29T10:00:00Z"},
				{"source":{"name":"Blog"},"title":"BTCS token rallies again","description":"crypto news","url":"https://example.com/2","publishedAt":"2026-08-29T11:00:00Z"},
				{"source":{"name":"Wire"},"title":"","description":"TCS mentioned but no title","url":"https://example.com/3","publishedAt":""}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	articles, outcome := c.Search(context.Background(), testQuery(), 10)

	if outcome != APIOK {
		t.Fatalf("outcome = %v, want APIOK", outcome)
	}
	if len(articles) != 1 {
		t.Fatalf("got %d articles, want 1 (whole-word filter)", len(articles))
	}
	a := articles[0]
	if a.Title != "TCS wins major cloud contract" {
		t.Errorf("Title = %q", a.Title)
	}
	if a.Source.Name != "Reuters" {
		t.Errorf("Source = %q", a.Source.Name)
	}
	if a.Sentiment == "" || a.SentimentReasoning == "" {
		t.Error("article not scored")
	}
	if a.SentimentConfidence < 0.5 || a.SentimentConfidence > 0.95 {
		t.Errorf("confidence %v out of range", a.SentimentConfidence)
	}
}

func TestNewsAPISearchRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	articles, outcome := c.Search(context.Background(), testQuery(), 10)
	if outcome != APIRateLimited {
		t.Fatalf("outcome = %v, want APIRateLimited", outcome)
	}
	if articles != nil {
		t.Fatalf("expected no articles, got %d", len(articles))
	}
}

func TestNewsAPISearchServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, outcome := c.Search(context.Background(), testQuery(), 10)
	if outcome != APIError {
		t.Fatalf("outcome = %v, want APIError", outcome)
	}
}

func TestNewsAPISearchBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, outcome := c.Search(context.Background(), testQuery(), 10)
	if outcome != APIError {
		t.Fatalf("outcome = %v, want APIError", outcome)
	}
}

func TestNewsAPISearchUnreachable(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1")
	_, outcome := c.Search(context.Background(), testQuery(), 10)
	if outcome != APIError {
		t.Fatalf("outcome = %v, want APIError", outcome)
	}
}

func TestNewsAPISearchNoKey(t *testing.T) {
	c := NewNewsAPIClient("", "http://example.invalid", time.Second, nil)
	articles, outcome := c.Search(context.Background(), testQuery(), 10)
	if outcome != APIDisabled {
		t.Fatalf("outcome = %v, want APIDisabled", outcome)
	}
	if len(articles) != 0 {
		t.Fatal("expected no articles without an API key")
	}
}

func TestNewsAPISearchRespectsMax(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"status": "ok",
			"totalResults": 3,
			"articles": [
				{"source":{"name":"A"},"title":"TCS quarterly results announced today","description":"","url":"u1","publishedAt":"2026-08-29T10:00:00Z"},
				{"source":{"name":"B"},"title":"TCS expands hiring in Pune","description":"","url":"u2","publishedAt":"2026-08-29T10:01:00Z"},
				{"source":{"name":"C"},"title":"TCS board meets next week","description":"","url":"u3","publishedAt":"2026-08-29T10:02:00Z"}
			]
		}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	articles, _ := c.Search(context.Background(), testQuery(), 2)
	if len(articles) != 2 {
		t.Fatalf("got %d articles, want 2 (max cap)", len(articles))
	}
}
