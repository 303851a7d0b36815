package research

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pdiddy/article-engine/pkg/types"
)

const serpFixture = `{
  "organic_results": [
    {"title": "Vitamin D Deficiency - Symptoms", "snippet": "Fatigue, bone pain, and muscle weakness are common.", "link": "https://health.test/vitd", "position": 1},
    {"title": "Low Vitamin D Levels", "snippet": "Testing and treatment overview.", "link": "https://clinic.test/low-d", "position": 2},
    {"title": "", "snippet": "", "link": "https://empty.test"}
  ],
  "related_questions": [
    {"question": "How do I know if my vitamin D is low?"},
    {"question": "What is a dangerously low vitamin D level?"}
  ]
}`

func withSerpServer(t *testing.T, handler http.HandlerFunc) *SerpProvider {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	old := serpAPIBase
	serpAPIBase = ts.URL
	t.Cleanup(func() { serpAPIBase = old })

	return &SerpProvider{Client: ts.Client()}
}

func TestSerpProviderParsesResponse(t *testing.T) {
	p := withSerpServer(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("q"); got != "vitamin d deficiency" {
			t.Errorf("query param q = %q, want keyword", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(serpFixture))
	})

	partial, err := p.Lookup(context.Background(), "vitamin d deficiency", testCfg())
	if err != nil {
		t.Fatal(err)
	}

	// The empty third result is dropped.
	if len(partial.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(partial.Results))
	}
	if partial.Results[0].Position != 1 || partial.Results[0].URL != "https://health.test/vitd" {
		t.Errorf("first result = %+v", partial.Results[0])
	}
	if len(partial.Questions) != 2 {
		t.Errorf("got %d questions, want 2", len(partial.Questions))
	}
}

func TestSerpProviderHTTPError(t *testing.T) {
	p := withSerpServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	if _, err := p.Lookup(context.Background(), "anything", testCfg()); err == nil {
		t.Error("non-200 status should surface as a provider error")
	}
}

func TestSerpProviderBadJSON(t *testing.T) {
	p := withSerpServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("{not json"))
	})

	if _, err := p.Lookup(context.Background(), "anything", testCfg()); err == nil {
		t.Error("malformed JSON should surface as a provider error")
	}
}

func TestSerpProviderSendsAPIKey(t *testing.T) {
	var gotKey string
	p := withSerpServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("api_key")
		w.Write([]byte(`{"organic_results": []}`))
	})
	p.APIKey = "sk_test"

	if _, err := p.Lookup(context.Background(), "anything", testCfg()); err != nil {
		t.Fatal(err)
	}
	if gotKey != "sk_test" {
		t.Errorf("api_key = %q, want sk_test", gotKey)
	}
}

func TestDefaultProvidersRespectLiveFlag(t *testing.T) {
	cfg := testCfg()
	cfg.EnableLiveLookup = false
	if got := len(DefaultProviders(types.CategoryGeneral, cfg)); got != 2 {
		t.Errorf("got %d providers without live lookup, want 2", got)
	}
	cfg.EnableLiveLookup = true
	if got := len(DefaultProviders(types.CategoryGeneral, cfg)); got != 3 {
		t.Errorf("got %d providers with live lookup, want 3", got)
	}
}
