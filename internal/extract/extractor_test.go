package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/daybreakbrief/news-bot/internal/adapters/config"
	"github.com/daybreakbrief/news-bot/pkg/models"
)

func newTestExtractor() *Extractor {
	return NewExtractor(&config.ExtractConfig{
		Timeout:   2 * time.Second,
		UserAgent: "test-agent",
	})
}

func TestExtractor_ExtractText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Errorf("Expected configured user agent, got %q", r.Header.Get("User-Agent"))
		}

		w.Write([]byte(`<html><head><title>t</title><style>body {color: red}</style></head>
			<body>
				<script>var tracking = true;</script>
				<h1>Bitcoin   rallies</h1>
				<p>Price  moved
				sharply higher.</p>
			</body></html>`))
	}))
	defer server.Close()

	text, err := newTestExtractor().ExtractText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("ExtractText failed: %v", err)
	}

	if text != "Bitcoin rallies Price moved sharply higher." {
		t.Errorf("Unexpected extracted text: %q", text)
	}

	if strings.Contains(text, "tracking") || strings.Contains(text, "color") {
		t.Errorf("Script/style content leaked into text: %q", text)
	}
}

func TestExtractor_ExtractText_HTTPErrorIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "paywall", http.StatusForbidden)
	}))
	defer server.Close()

	if _, err := newTestExtractor().ExtractText(context.Background(), server.URL); err == nil {
		t.Fatal("Expected error for non-2xx response")
	}
}

func TestExtractor_ExtractGroups_ToleratesFailedURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/bad" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("<html><body>fine</body></html>"))
	}))
	defer server.Close()

	selection := models.RankedSelection{
		MostPositive: []models.NormalizedRecord{{URL: server.URL + "/good"}},
		MostNegative: []models.NormalizedRecord{{URL: server.URL + "/bad"}},
	}

	groups := newTestExtractor().ExtractGroups(context.Background(), selection)

	if len(groups.Positive) != 1 || len(groups.Negative) != 1 {
		t.Fatalf("Both groups must keep their URLs, got %+v", groups)
	}

	if groups.Positive[0].Text != "fine" {
		t.Errorf("Expected extracted text, got %q", groups.Positive[0].Text)
	}

	if groups.Negative[0].Text != "" {
		t.Errorf("Failed URL should carry empty text, got %q", groups.Negative[0].Text)
	}

	if groups.Negative[0].URL != server.URL+"/bad" {
		t.Errorf("URL must be preserved for failed extraction")
	}
}
