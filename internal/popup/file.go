package popup

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/NielsdaWheelz/filemyrti/internal/errors"
	"github.com/NielsdaWheelz/filemyrti/internal/fs"
)

const fileSchemaVersion = 1

// flagFile is the on-disk format of the file store.
type flagFile struct {
	Version int `json:"version"`
	// Visitors maps visitor id to flag name to the time it was set (RFC3339).
	Visitors map[string]map[string]string `json:"visitors"`
}

// FileStore persists flags in a single JSON file, rewritten atomically via
// temp file + rename on every change.
type FileStore struct {
	FS   fs.FS
	Path string
	Now  func() time.Time

	mu sync.Mutex
}

// NewFileStore creates a FileStore at path.
func NewFileStore(filesystem fs.FS, path string, now func() time.Time) *FileStore {
	if now == nil {
		now = time.Now
	}
	return &FileStore{FS: filesystem, Path: path, Now: now}
}

// Backend implements Store.
func (s *FileStore) Backend() string { return "file" }

// Seen implements Store.
func (s *FileStore) Seen(_ context.Context, visitor string) (bool, error) {
	if err := ValidateVisitor(visitor); err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}
	_, ok := doc.Visitors[visitor][FlagName]
	return ok, nil
}

// MarkSeen implements Store. Marking an already-seen visitor keeps the
// original timestamp and does not rewrite the file.
func (s *FileStore) MarkSeen(_ context.Context, visitor string) error {
	if err := ValidateVisitor(visitor); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	flags := doc.Visitors[visitor]
	if _, ok := flags[FlagName]; ok {
		return nil
	}
	if flags == nil {
		flags = make(map[string]string)
		doc.Visitors[visitor] = flags
	}
	flags[FlagName] = s.Now().UTC().Format(time.RFC3339)

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return errors.Wrap(errors.EInternal, "failed to encode popup flags", err)
	}
	data = append(data, '\n')
	if err := fs.WriteFileAtomic(s.FS, s.Path, data, 0o644); err != nil {
		return errors.WrapWithDetails(errors.EPersistFailed, "failed to write popup flags", err, map[string]string{
			"path": s.Path,
		})
	}
	return nil
}

// load reads the flag file. A missing file is an empty document.
func (s *FileStore) load() (flagFile, error) {
	doc := flagFile{Version: fileSchemaVersion, Visitors: make(map[string]map[string]string)}

	data, err := s.FS.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return doc, errors.WrapWithDetails(errors.EPersistFailed, "failed to read popup flags", err, map[string]string{
			"path": s.Path,
		})
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		return doc, errors.WrapWithDetails(errors.EStoreCorrupt, "popup flag file is not valid json", err, map[string]string{
			"path": s.Path,
		})
	}
	if doc.Version != fileSchemaVersion {
		return doc, errors.NewWithDetails(errors.EStoreCorrupt, "unsupported popup flag file version", map[string]string{
			"path": s.Path,
		})
	}
	if doc.Visitors == nil {
		doc.Visitors = make(map[string]map[string]string)
	}
	return doc, nil
}
