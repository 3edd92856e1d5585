package contentful

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestAcquireClient_MissingCredentials(t *testing.T) {
	client := AcquireClient(Credentials{}, zap.NewNop())

	if client.Configured() {
		t.Error("expected null client to report not configured")
	}

	entries, err := client.ListEntries(context.Background(), Query{ContentType: "blogPost"})
	if err != nil {
		t.Fatalf("null client returned error: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty result from null client, got %d entries", len(entries))
	}
}

func TestAcquireClient_PartialCredentials(t *testing.T) {
	client := AcquireClient(Credentials{SpaceID: "space-only"}, zap.NewNop())
	if client.Configured() {
		t.Error("expected null client when access token is missing")
	}
}

func TestListEntries_QueryParameters(t *testing.T) {
	var gotPath string
	var gotQuery map[string][]string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{"total": 0, "items": []any{}})
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL, Credentials{SpaceID: "sp1", AccessToken: "tok1"}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	_, err = client.ListEntries(context.Background(), Query{
		ContentType: "blogPost",
		Filters:     map[string]string{"fields.slug": "hello"},
		Order:       "-sys.createdAt",
		Limit:       10,
	})
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}

	if gotPath != "/spaces/sp1/environments/master/entries" {
		t.Errorf("unexpected path %s", gotPath)
	}
	want := map[string]string{
		"access_token": "tok1",
		"content_type": "blogPost",
		"fields.slug":  "hello",
		"order":        "-sys.createdAt",
		"limit":        "10",
	}
	for k, v := range want {
		if len(gotQuery[k]) == 0 || gotQuery[k][0] != v {
			t.Errorf("expected query param %s=%s, got %v", k, v, gotQuery[k])
		}
	}
}

func TestListEntries_ResolvesAssetLinks(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"total": 1,
			"items": []any{
				map[string]any{
					"sys": map[string]any{"id": "e1", "createdAt": "2024-01-02T03:04:05Z"},
					"fields": map[string]any{
						"title": "First",
						"image": map[string]any{
							"sys": map[string]any{"type": "Link", "linkType": "Asset", "id": "a1"},
						},
						"broken": map[string]any{
							"sys": map[string]any{"type": "Link", "linkType": "Asset", "id": "missing"},
						},
					},
				},
			},
			"includes": map[string]any{
				"Asset": []any{
					map[string]any{
						"sys": map[string]any{"id": "a1"},
						"fields": map[string]any{
							"title": "Cover",
							"file": map[string]any{
								"url": "//images.example.com/cover.png",
								"details": map[string]any{
									"image": map[string]any{"width": 800.0, "height": 600.0},
								},
							},
						},
					},
				},
			},
		})
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL, Credentials{SpaceID: "sp", AccessToken: "tok"}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	entries, err := client.ListEntries(context.Background(), Query{ContentType: "blogPost"})
	if err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	e := entries[0]
	if e.ID != "e1" {
		t.Errorf("expected ID e1, got %s", e.ID)
	}

	asset, ok := e.Fields["image"].(*Asset)
	if !ok {
		t.Fatalf("expected image field to be *Asset, got %T", e.Fields["image"])
	}
	if asset.URL != "https://images.example.com/cover.png" {
		t.Errorf("expected https URL, got %s", asset.URL)
	}
	if asset.Width != 800 || asset.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", asset.Width, asset.Height)
	}
	if asset.Title != "Cover" {
		t.Errorf("expected asset title Cover, got %s", asset.Title)
	}

	// Dangling links are dropped, not passed through as raw maps.
	if _, present := e.Fields["broken"]; present {
		t.Error("expected unresolvable asset link to be dropped")
	}
}

func TestListEntries_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"sys":{"id":"AccessTokenInvalid"}}`, http.StatusUnauthorized)
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL, Credentials{SpaceID: "sp", AccessToken: "bad"}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if _, err := client.ListEntries(context.Background(), Query{ContentType: "blogPost"}); err == nil {
		t.Fatal("expected error on 401 response")
	}
}

func TestListEntries_MissingContentType(t *testing.T) {
	client, err := NewClient("http://localhost:0", Credentials{SpaceID: "sp", AccessToken: "tok"}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.ListEntries(context.Background(), Query{}); err == nil {
		t.Fatal("expected error for query without content type")
	}
}

func TestListEntries_CustomEnvironment(t *testing.T) {
	var gotPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"total": 0, "items": []any{}})
	}))
	defer ts.Close()

	client, err := NewClient(ts.URL, Credentials{SpaceID: "sp", AccessToken: "tok", Environment: "staging"}, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	if _, err := client.ListEntries(context.Background(), Query{ContentType: "meeting"}); err != nil {
		t.Fatalf("ListEntries failed: %v", err)
	}
	if gotPath != "/spaces/sp/environments/staging/entries" {
		t.Errorf("unexpected path %s", gotPath)
	}
}
