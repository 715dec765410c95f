package document

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// FetchResult is the per-document outcome of a download attempt.
type FetchResult struct {
	Title   string
	OK      bool
	Message string
}

// FetchMissing downloads every library document that has no local copy yet.
// Failures are reported per document and never abort the remaining fetches.
func FetchMissing(ctx context.Context, client *http.Client, dir string) []FetchResult {
	if client == nil {
		client = http.DefaultClient
	}

	results := make([]FetchResult, 0, len(Library))
	for _, doc := range Library {
		path := filepath.Join(dir, doc.LocalName)
		if _, err := os.Stat(path); err == nil {
			results = append(results, FetchResult{Title: doc.Title, OK: true, Message: "already present"})
			continue
		}

		if err := fetchOne(ctx, client, doc.ExternalURL, path); err != nil {
			results = append(results, FetchResult{
				Title:   doc.Title,
				Message: fmt.Sprintf("download failed: %v", err),
			})
			continue
		}
		results = append(results, FetchResult{
			Title:   doc.Title,
			OK:      true,
			Message: fmt.Sprintf("downloaded to %s", path),
		})
	}
	return results
}

func fetchOne(ctx context.Context, client *http.Client, url, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	// Write through a temp file so a failed download never leaves a
	// truncated PDF that Resolve would report as present.
	tmp, err := os.CreateTemp(filepath.Dir(path), ".fetch-*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
