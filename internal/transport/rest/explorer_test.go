package rest

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExplorer(t *testing.T) {
	h := Explorer("/graphql")

	req := httptest.NewRequest(http.MethodGet, "/graphiql", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.Contains(ct, "text/html") {
		t.Errorf("expected text/html content type, got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "graphiql") {
		t.Error("expected the explorer mount point markup in the body")
	}
	if !strings.Contains(body, "/graphql") {
		t.Error("expected the page to reference the query endpoint")
	}
}

func TestStatic(t *testing.T) {
	dir := t.TempDir()
	content := []byte("body { margin: 0 }\n")
	if err := os.WriteFile(filepath.Join(dir, "styles.css"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	h := Static(dir)

	req := httptest.NewRequest(http.MethodGet, "/styles.css", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Body.String(); got != string(content) {
		t.Errorf("expected file served verbatim, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/missing.js", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status %d for missing file, got %d", http.StatusNotFound, rec.Code)
	}
}
