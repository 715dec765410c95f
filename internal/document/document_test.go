package document

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveMissing(t *testing.T) {
	dir := t.TempDir()
	statuses := Resolve(dir)
	require.Len(t, statuses, len(Library))
	for _, s := range statuses {
		require.False(t, s.Exists)
		require.Zero(t, s.Size)
		require.Equal(t, filepath.Join(dir, s.LocalName), s.Path)
	}
}

func TestResolvePresent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Library[0].LocalName)
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 stub"), 0o644))

	statuses := Resolve(dir)
	require.True(t, statuses[0].Exists)
	require.Equal(t, int64(13), statuses[0].Size)
	require.False(t, statuses[1].Exists)
}

func TestFetchMissingDownloads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 payload"))
	}))
	defer srv.Close()

	// Point both documents at the test server.
	orig := Library
	defer func() { Library = orig }()
	Library = []Document{
		{Title: "Doc A", ExternalURL: srv.URL + "/a.pdf", LocalName: "a.pdf"},
		{Title: "Doc B", ExternalURL: srv.URL + "/b.pdf", LocalName: "b.pdf"},
	}

	dir := t.TempDir()
	results := FetchMissing(context.Background(), srv.Client(), dir)
	require.Len(t, results, 2)
	for _, res := range results {
		require.True(t, res.OK, res.Message)
	}
	for _, doc := range Library {
		data, err := os.ReadFile(filepath.Join(dir, doc.LocalName))
		require.NoError(t, err)
		require.Equal(t, "%PDF-1.4 payload", string(data))
	}

	// Second run reports the copies as already present.
	results = FetchMissing(context.Background(), srv.Client(), dir)
	for _, res := range results {
		require.True(t, res.OK)
		require.Equal(t, "already present", res.Message)
	}
}

func TestFetchMissingReportsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	orig := Library
	defer func() { Library = orig }()
	Library = []Document{
		{Title: "Doc A", ExternalURL: srv.URL + "/a.pdf", LocalName: "a.pdf"},
	}

	dir := t.TempDir()
	results := FetchMissing(context.Background(), srv.Client(), dir)
	require.Len(t, results, 1)
	require.False(t, results[0].OK)
	require.Contains(t, results[0].Message, "download failed")

	// No truncated file left behind.
	_, err := os.Stat(filepath.Join(dir, "a.pdf"))
	require.True(t, os.IsNotExist(err))
}

func TestExtractTablesMissingFile(t *testing.T) {
	_, err := ExtractTables(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}

func TestExtractTablesMalformedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))

	_, err := ExtractTables(path)
	require.Error(t, err)
}

func TestDedupeKeepsOrder(t *testing.T) {
	notes := []string{"* note one", "NOTE two", "* note one", "Note three", "NOTE two"}
	require.Equal(t, []string{"* note one", "NOTE two", "Note three"}, dedupe(notes))
}
