// Package document manages the reference specifications behind the catalog
// tables: the known document list, local availability, best-effort download,
// and table/footnote extraction from local PDF copies.
package document

import (
	"os"
	"path/filepath"
)

// Document is one reference specification tracked by the library.
type Document struct {
	Title       string
	ExternalURL string
	LocalName   string // file name expected inside the files directory
}

// Library lists the reference documents in display order.
var Library = []Document{
	{
		Title:       "MIL-SD-248D",
		ExternalURL: "https://u.dianyuan.com/bbs/u/39/1142217644.pdf",
		LocalName:   "MIL-SD-248D.pdf",
	},
	{
		Title:       "MIL-S-23284A",
		ExternalURL: "https://www.dcma.mil/Portals/31/Documents/NPP/MIL-S-23284A.pdf",
		LocalName:   "MIL-S-23284A.pdf",
	},
}

// Status reports whether a document's local copy exists and how large it is.
type Status struct {
	Document
	Path   string
	Exists bool
	Size   int64
}

// Resolve checks every library document against the given files directory.
func Resolve(dir string) []Status {
	statuses := make([]Status, 0, len(Library))
	for _, doc := range Library {
		path := filepath.Join(dir, doc.LocalName)
		status := Status{Document: doc, Path: path}
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			status.Exists = true
			status.Size = info.Size()
		}
		statuses = append(statuses, status)
	}
	return statuses
}

// Find returns the library document with the given title.
func Find(title string) (Document, bool) {
	for _, doc := range Library {
		if doc.Title == title {
			return doc, true
		}
	}
	return Document{}, false
}

// LocalPath returns the expected path of a document's local copy.
func LocalPath(dir string, doc Document) string {
	return filepath.Join(dir, doc.LocalName)
}
