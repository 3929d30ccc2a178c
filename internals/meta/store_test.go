package meta

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

const vanillaMeta = `{"main_class": "net.minecraft.client.main.Main", "traits": ["SupportsQuickPlayWorld"]}`

func newCatalog(t *testing.T, docs map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		doc, ok := docs[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(doc))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetComponentMetaCaches(t *testing.T) {
	srv := newCatalog(t, map[string]string{"/net.minecraft/1.20.json": vanillaMeta})
	cacheDir := t.TempDir()
	store := NewStore(srv.Client(), srv.URL, cacheDir)

	c, err := store.GetComponentMeta(context.Background(), "net.minecraft", "1.20")
	if err != nil {
		t.Fatal(err)
	}
	if c.MainClass != "net.minecraft.client.main.Main" {
		t.Errorf("unexpected main class %q", c.MainClass)
	}

	cached, err := os.ReadFile(filepath.Join(cacheDir, "net.minecraft", "1.20.json"))
	if err != nil {
		t.Fatal(err)
	}
	if string(cached) != vanillaMeta {
		t.Errorf("cache should contain the raw document, got %q", cached)
	}
}

func TestGetComponentMetaFallsBackToCache(t *testing.T) {
	cacheDir := t.TempDir()
	srv := newCatalog(t, map[string]string{"/net.minecraft/1.20.json": vanillaMeta})
	store := NewStore(srv.Client(), srv.URL, cacheDir)
	if _, err := store.GetComponentMeta(context.Background(), "net.minecraft", "1.20"); err != nil {
		t.Fatal(err)
	}

	// the catalog goes away, the cached copy is used
	srv.Close()
	c, err := store.GetComponentMeta(context.Background(), "net.minecraft", "1.20")
	if err != nil {
		t.Fatalf("expected cached metadata, got error: %v", err)
	}
	if c.MainClass == "" {
		t.Error("cached metadata was not decoded")
	}

	// nothing cached for this one, the network error is returned
	if _, err := store.GetComponentMeta(context.Background(), "net.minecraft", "1.19"); err == nil {
		t.Error("expected an error without cache")
	}
}

func TestGetComponentMetaNotFound(t *testing.T) {
	srv := newCatalog(t, nil)
	store := NewStore(srv.Client(), srv.URL, t.TempDir())

	_, err := store.GetComponentMeta(context.Background(), "net.minecraft", "0.0")
	if !errors.Is(err, ErrMetaNotFound) {
		t.Fatalf("expected ErrMetaNotFound, got %v", err)
	}
}

func TestGetComponentMetaStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()
	store := NewStore(srv.Client(), srv.URL, t.TempDir())

	_, err := store.GetComponentMeta(context.Background(), "net.minecraft", "1.20")
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 500 {
		t.Fatalf("expected StatusError 500, got %v", err)
	}
}

func TestGetComponentMetaMalformed(t *testing.T) {
	cacheDir := t.TempDir()
	srv := newCatalog(t, map[string]string{"/net.minecraft/1.20.json": `{"main_class": 12}`})
	store := NewStore(srv.Client(), srv.URL, cacheDir)

	_, err := store.GetComponentMeta(context.Background(), "net.minecraft", "1.20")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestMalformedCacheIsFatal(t *testing.T) {
	cacheDir := t.TempDir()
	os.MkdirAll(filepath.Join(cacheDir, "net.minecraft"), 0755)
	os.WriteFile(filepath.Join(cacheDir, "net.minecraft", "1.20.json"), []byte("{"), 0644)

	srv := newCatalog(t, nil)
	srv.Close()
	store := NewStore(srv.Client(), srv.URL, cacheDir)

	_, err := store.GetComponentMeta(context.Background(), "net.minecraft", "1.20")
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected ParseError from corrupt cache, got %v", err)
	}
}

func TestComponentIndex(t *testing.T) {
	srv := newCatalog(t, map[string]string{
		"/net.minecraft.json": `[{"version": "1.20.1", "type": "release"}, {"version": "1.20", "type": "release"}]`,
	})
	store := NewStore(srv.Client(), srv.URL, t.TempDir())
	ctx := context.Background()

	index, err := store.GetComponentIndex(ctx, "net.minecraft")
	if err != nil {
		t.Fatal(err)
	}
	if len(index) != 2 || index[0].Version != "1.20.1" {
		t.Errorf("unexpected index %+v", index)
	}

	tests := []struct {
		id      string
		version string
		want    bool
	}{
		{"net.minecraft", "1.20", true},
		{"net.minecraft", "1.7.10", false},
		{"org.unknown", "1.0", false},
	}
	for _, tt := range tests {
		got, err := store.VersionExists(ctx, tt.id, tt.version)
		if err != nil {
			t.Fatalf("VersionExists(%s, %s): %v", tt.id, tt.version, err)
		}
		if got != tt.want {
			t.Errorf("VersionExists(%s, %s) = %v, want %v", tt.id, tt.version, got, tt.want)
		}
	}
}
