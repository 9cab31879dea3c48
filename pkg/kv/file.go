package kv

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
)

const (
	// tempFilePrefix is the prefix used for temporary atomic write files.
	tempFilePrefix = "curator-tmp-"

	fileExt = ".json"
)

// FileStore persists each key as its own file under a data directory.
// Writes are atomic (temp file + rename), so a crash mid-write never leaves
// a half-written value behind. Keys are escaped to stay filesystem-safe.
type FileStore struct {
	dir    string
	logger *slog.Logger
}

// NewFileStore creates a file-backed store rooted at dir, creating the
// directory if needed.
func NewFileStore(dir string, logger *slog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir, logger: logger}, nil
}

func (f *FileStore) path(key string) string {
	return filepath.Join(f.dir, url.QueryEscape(key)+fileExt)
}

func keyFromName(name string) (string, bool) {
	if strings.HasPrefix(name, tempFilePrefix) || !strings.HasSuffix(name, fileExt) {
		return "", false
	}
	key, err := url.QueryUnescape(strings.TrimSuffix(name, fileExt))
	if err != nil {
		return "", false
	}
	return key, true
}

func (f *FileStore) SetItem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if f.logger != nil {
		f.logger.Debug("writing key to disk", "key", key)
	}
	return writeFileAtomic(f.path(key), []byte(value), 0o644)
}

func (f *FileStore) GetItem(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

func (f *FileStore) RemoveItem(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *FileStore) Keys(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory: %w", err)
	}
	var keys []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if key, ok := keyFromName(e.Name()); ok {
			keys = append(keys, key)
		}
	}
	return keys, nil
}

func (f *FileStore) MultiGet(ctx context.Context, keys []string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	for _, k := range keys {
		v, ok, err := f.GetItem(ctx, k)
		if err != nil {
			return nil, err
		}
		if ok {
			result[k] = v
		}
	}
	return result, nil
}

func (f *FileStore) MultiRemove(ctx context.Context, keys []string) error {
	for _, k := range keys {
		if err := f.RemoveItem(ctx, k); err != nil {
			return err
		}
	}
	return nil
}

// Watch emits an event for every key change under the data directory until
// ctx is done. The pattern is a doublestar glob matched against the key.
func (f *FileStore) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(f.dir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch data directory: %w", err)
	}

	events := make(chan Event)
	go func() {
		defer close(events)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				key, ok := keyFromName(filepath.Base(ev.Name))
				if !ok {
					continue
				}
				if pattern != "" {
					matched, err := doublestar.Match(pattern, key)
					if err != nil || !matched {
						continue
					}
				}
				eType := mapEventType(ev)
				if eType == "" {
					continue
				}
				select {
				case events <- Event{Type: eType, Key: key, Time: time.Now()}:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if f.logger != nil {
					f.logger.Warn("watch error", "error", err)
				}
			}
		}
	}()
	return events, nil
}

func mapEventType(ev fsnotify.Event) EventType {
	switch {
	case ev.Has(fsnotify.Create):
		return EventCreate
	case ev.Has(fsnotify.Write):
		return EventModify
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		return EventDelete
	default:
		return ""
	}
}

// writeFileAtomic writes data to a file atomically by writing to a temp file
// and then renaming it to the target filename.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name()) // Clean up if we fail before rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
