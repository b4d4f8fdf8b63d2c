package index

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/coastline-tools/zigup/internal/store"
)

func testClient(t *testing.T, handler http.Handler) (*Client, Family, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	st := store.At(t.TempDir())
	client := NewClient(st)
	fam := Family{Name: store.FamilyZig, URL: srv.URL}
	return client, fam, srv
}

func countingHandler(body string, hits *int) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*hits++
		_, _ = w.Write([]byte(body))
	})
}

func TestLoadOrRefreshDownloadsWhenMissing(t *testing.T) {
	hits := 0
	client, fam, _ := testClient(t, countingHandler(sampleDocument, &hits))

	ix, err := client.LoadOrRefresh(fam)
	if err != nil {
		t.Fatalf("LoadOrRefresh: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected one download, got %d", hits)
	}
	if got, _ := ix.MasterVersion(); got != "0.14.0-dev.1+abcabc" {
		t.Fatalf("master = %q", got)
	}

	// A second call within the same invocation reuses the parsed document.
	if _, err := client.LoadOrRefresh(fam); err != nil {
		t.Fatalf("second LoadOrRefresh: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected memoized document, got %d downloads", hits)
	}
}

func TestLoadOrRefreshStalenessBoundary(t *testing.T) {
	hits := 0
	client, fam, _ := testClient(t, countingHandler(sampleDocument, &hits))

	path := client.Store.IndexPath(fam.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}

	// One hour old: trusted, no download.
	now := time.Now()
	oneHourAgo := now.Add(-time.Hour)
	if err := os.Chtimes(path, oneHourAgo, oneHourAgo); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	client.Now = func() time.Time { return now }
	if _, err := client.LoadOrRefresh(fam); err != nil {
		t.Fatalf("LoadOrRefresh fresh cache: %v", err)
	}
	if hits != 0 {
		t.Fatalf("fresh cache must not refresh, got %d downloads", hits)
	}

	// Twenty-five hours old: stale, refreshed.
	stale := now.Add(-25 * time.Hour)
	if err := os.Chtimes(path, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	client.loaded = make(map[string]*Index)
	if _, err := client.LoadOrRefresh(fam); err != nil {
		t.Fatalf("LoadOrRefresh stale cache: %v", err)
	}
	if hits != 1 {
		t.Fatalf("stale cache must refresh exactly once, got %d downloads", hits)
	}
}

func TestRefreshFailureKeepsExistingCache(t *testing.T) {
	client, fam, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	path := client.Store.IndexPath(fam.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}

	if err := client.Refresh(fam); err == nil {
		t.Fatalf("expected refresh failure for 500 status")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if string(data) != sampleDocument {
		t.Fatalf("failed refresh must not clobber the previous cache")
	}
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("failed refresh left stray files: %v", entries)
	}
}

func TestLoadOrRefreshStaleCacheFailedRefreshIsFatal(t *testing.T) {
	client, fam, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	path := client.Store.IndexPath(fam.Name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(sampleDocument), 0o644); err != nil {
		t.Fatalf("write cache: %v", err)
	}
	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(path, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	// There is no fallback to a stale-but-present cache.
	if _, err := client.LoadOrRefresh(fam); err == nil {
		t.Fatalf("expected stale cache with failed refresh to be fatal")
	}
}

func TestLoadOrRefreshMalformedBodyIsFatal(t *testing.T) {
	client, fam, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))

	if _, err := client.LoadOrRefresh(fam); err == nil {
		t.Fatalf("expected parse error for malformed index body")
	}
}
