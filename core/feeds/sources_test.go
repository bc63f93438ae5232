package feeds

import (
	"context"
	"strings"
	"testing"

	"localpulse-api/core/domain"
	"localpulse-api/core/interfaces"
)

func TestValidateSources_AllConfigured(t *testing.T) {
	sources := DefaultSources()
	for d, cfg := range sources {
		cfg.URL = "https://example.com/" + string(d)
		sources[d] = cfg
	}

	if err := ValidateSources(sources); err != nil {
		t.Errorf("fully configured sources should validate, got %v", err)
	}
}

func TestValidateSources_DefaultsFailFast(t *testing.T) {
	err := ValidateSources(DefaultSources())
	if err == nil {
		t.Fatal("default sources carry no URLs and must not validate")
	}
	for _, d := range domain.AllDomains() {
		if !strings.Contains(err.Error(), string(d)) {
			t.Errorf("error should name the unconfigured domain %s, got %q", d, err)
		}
	}
}

func TestValidateSources_NamesOnlyMissingDomains(t *testing.T) {
	sources := DefaultSources()
	for d, cfg := range sources {
		if d != domain.DomainNews {
			cfg.URL = "https://example.com/" + string(d)
			sources[d] = cfg
		}
	}

	err := ValidateSources(sources)
	if err == nil {
		t.Fatal("a source without a URL must fail validation")
	}
	if !strings.Contains(err.Error(), "news") {
		t.Errorf("error should name the news domain, got %q", err)
	}
	if strings.Contains(err.Error(), "weather") {
		t.Errorf("error should not name configured domains, got %q", err)
	}
}

func TestSourceConfig_AcceptLeadsWithDeclaredType(t *testing.T) {
	sources := DefaultSources()

	accept := sources[domain.DomainAlerts].Accept()
	if !strings.HasPrefix(accept, "application/xml") {
		t.Errorf("alerts Accept = %q, want the declared type first", accept)
	}

	accept = sources[domain.DomainNews].Accept()
	if !strings.HasPrefix(accept, "text/xml") {
		t.Errorf("news Accept = %q, want the declared type first", accept)
	}
	if !strings.Contains(accept, "application/rss+xml") {
		t.Errorf("Accept = %q, want generic feed fallbacks", accept)
	}
}

func TestFetch_SendsDeclaredAccept(t *testing.T) {
	cfg := DefaultSources()[domain.DomainNews]
	cfg.URL = "https://example.com/news/feed"
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: `<rss version="2.0"><channel></channel></rss>`}, nil
		},
	}
	svc := NewService(cfg, testDeps(client), nil)

	_ = svc.Refresh(context.Background())

	if len(client.accepts) != 1 {
		t.Fatalf("got %d fetches, want 1", len(client.accepts))
	}
	if client.accepts[0] != cfg.Accept() {
		t.Errorf("Accept = %q, want the source's declared header %q", client.accepts[0], cfg.Accept())
	}
}
