// Package store persists v2 records as one file per record, organized by
// service and WAF pillar, with whole-tree guid deduplication.
package store

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/recokit/reconv/internal/encode"
	"github.com/recokit/reconv/internal/model"
)

// CrossServiceDir holds records that carry no service.
const CrossServiceDir = "cross-service"

// Store writes records under a single output root. The root is shared
// across runs: the guid index built from it is what makes reruns detect
// files written earlier, wherever in the tree they live.
type Store struct {
	root      string
	format    encode.Format
	overwrite bool
}

// Summary reports what a Persist call did. Per-record problems (missing
// guid, conflicts) are counted here and logged; they never abort the batch.
type Summary struct {
	Written   int
	Skipped   int      // records without a guid
	Conflicts []string // resolved paths of existing files that blocked a write
}

// New creates a Store. The root is created on first Persist if missing.
func New(root string, format encode.Format, overwrite bool) *Store {
	return &Store{root: root, format: format, overwrite: overwrite}
}

// Persist writes each record to
// <root>/<service|cross-service>/<waf-pillar?>/<guid>.<ext>.
//
// A file for the same guid anywhere under the root — the record may have
// moved service or pillar since the last run — is either a reported
// conflict (overwrite off) or deleted before the new file is written
// (overwrite on). After an overwrite run, directories left empty by
// deletions are pruned.
//
// The returned error is fatal configuration only (unknown format); data
// problems are reported per record and processing continues.
func (s *Store) Persist(records []model.Record) (Summary, error) {
	var sum Summary
	if !s.format.Valid() {
		return sum, fmt.Errorf("store: %w: %s", encode.ErrUnsupportedFormat, s.format)
	}

	if err := os.MkdirAll(s.root, 0755); err != nil {
		return sum, fmt.Errorf("store: create output root %s: %w", s.root, err)
	}

	index, err := s.indexExisting()
	if err != nil {
		return sum, fmt.Errorf("store: scan output root %s: %w", s.root, err)
	}

	for _, rec := range records {
		if !rec.HasGUID() {
			slog.Error("no guid found in recommendation, skipping", "title", rec.DisplayName())
			sum.Skipped++
			continue
		}
		guid := *rec.GUID
		dest := filepath.Join(s.recordDir(rec), guid+"."+s.format.Ext())

		if existing, ok := index[guid]; ok {
			if !s.overwrite {
				resolved := resolvePath(existing)
				slog.Error("file already exists for recommendation, skipping",
					"guid", guid, "existing", resolved)
				sum.Conflicts = append(sum.Conflicts, resolved)
				continue
			}
			if err := os.Remove(existing); err != nil {
				slog.Error("could not remove existing file, skipping record",
					"guid", guid, "existing", existing, "error", err)
				sum.Skipped++
				continue
			}
			delete(index, guid)
		}

		if err := s.writeRecord(dest, rec); err != nil {
			slog.Error("could not store recommendation", "guid", guid, "error", err)
			sum.Skipped++
			continue
		}
		index[guid] = dest
		sum.Written++
		slog.Debug("stored recommendation", "path", dest)
	}

	if s.overwrite {
		s.pruneEmptyDirs()
	}
	return sum, nil
}

// recordDir computes the destination directory for a record: service
// (or cross-service), then the WAF pillar when present.
func (s *Store) recordDir(rec model.Record) string {
	dir := s.root
	if rec.Service != nil {
		dir = filepath.Join(dir, pathSegment(*rec.Service))
	} else {
		dir = filepath.Join(dir, CrossServiceDir)
	}
	if rec.WAF != nil {
		dir = filepath.Join(dir, pathSegment(*rec.WAF))
	}
	return dir
}

func (s *Store) writeRecord(dest string, rec model.Record) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
	}
	data, err := encode.Marshal(rec, s.format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// indexExisting walks the output tree once and maps guid → path for every
// file carrying the store's extension. One walk per Persist call replaces
// the legacy per-record recursive glob; the index is kept current across
// writes and deletions so in-batch guid collisions behave like reruns.
func (s *Store) indexExisting() (map[string]string, error) {
	index := make(map[string]string)
	ext := "." + s.format.Ext()
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ext) {
			return nil
		}
		guid := strings.TrimSuffix(d.Name(), ext)
		if _, ok := index[guid]; !ok {
			// First match wins, like the legacy glob.
			index[guid] = path
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return index, nil
}

// pruneEmptyDirs removes directories under the root left empty by
// overwrite deletions, deepest first so a parent emptied by removing its
// last child goes too. Failures are reported, never fatal.
func (s *Store) pruneEmptyDirs() {
	var dirs []string
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && path != s.root {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		slog.Error("could not scan output root for empty directories",
			"root", s.root, "error", err)
		return
	}

	sort.Slice(dirs, func(i, j int) bool {
		di := strings.Count(dirs[i], string(filepath.Separator))
		dj := strings.Count(dirs[j], string(filepath.Separator))
		if di != dj {
			return di > dj
		}
		return dirs[i] < dirs[j]
	})

	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			slog.Error("could not read directory during cleanup", "dir", dir, "error", err)
			continue
		}
		if len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			slog.Error("could not remove empty directory", "dir", dir, "error", err)
		}
	}
}

// pathSegment turns a service or pillar name into a directory name:
// NFC-normalized, spaces removed.
func pathSegment(name string) string {
	return strings.ReplaceAll(norm.NFC.String(name), " ", "")
}

// resolvePath absolutizes a path for error messages; conflicts report where
// the blocking file actually is.
func resolvePath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
