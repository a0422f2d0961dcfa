package service

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"photoframe/internal/domain"
)

const (
	errFolderUnsupported = "directory access is not supported on this platform"
	errFolderEmpty       = "no supported image files were found in the selected folder"
)

var supportedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

// LocalResult is the outcome of a folder selection. Error is non-fatal:
// the feed is still valid, just empty.
type LocalResult struct {
	Photos []domain.PhotoItem
	Source *domain.PhotoSource
	Error  string
}

// LocalSession produces a photo feed from a user-chosen directory tree.
// No network involved.
type LocalSession struct {
	picker FolderPicker
	urls   MediaURLIssuer
	logger *slog.Logger
	now    func() time.Time

	mu     sync.Mutex
	issued []string
	last   LocalResult
}

// NewLocalSession creates a local folder session. A nil picker marks the
// platform as having no directory access.
func NewLocalSession(picker FolderPicker, urls MediaURLIssuer, logger *slog.Logger) *LocalSession {
	return &LocalSession{
		picker: picker,
		urls:   urls,
		logger: logger.With("session", "local"),
		now:    time.Now,
	}
}

// SelectFolder prompts for a directory, enumerates its image files and
// builds a feed sorted ascending by modification time. Display URLs from
// any previous selection are released first.
func (s *LocalSession) SelectFolder(ctx context.Context, recursive bool) (*LocalResult, error) {
	if s.picker == nil {
		return s.finish(LocalResult{Photos: []domain.PhotoItem{}, Error: errFolderUnsupported}), nil
	}

	dir, err := s.picker.PickFolder(ctx)
	if err != nil {
		return s.finish(LocalResult{Photos: []domain.PhotoItem{}, Error: err.Error()}), nil
	}

	files, err := enumerateImages(dir, recursive)
	if err != nil {
		return s.finish(LocalResult{Photos: []domain.PhotoItem{}, Error: err.Error()}), nil
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].modTime.Before(files[j].modTime)
	})

	s.releaseIssued()

	photos := make([]domain.PhotoItem, 0, len(files))
	for i, f := range files {
		url, err := s.urls.Issue(f.path)
		if err != nil {
			s.logger.Warn("unable to issue display url", "path", f.path, "error", err)
			continue
		}
		s.trackIssued(url)

		takenAt := f.modTime
		photos = append(photos, domain.PhotoItem{
			ID:      fmt.Sprintf("%s-%d-%s", filepath.Base(dir), i, f.name),
			Title:   f.name,
			URL:     url,
			TakenAt: &takenAt,
		})
	}

	synced := s.now()
	result := LocalResult{
		Photos: photos,
		Source: &domain.PhotoSource{
			Kind:        domain.SourceLocal,
			DisplayName: filepath.Base(dir),
			LastSynced:  &synced,
		},
	}
	if len(photos) == 0 {
		result.Error = errFolderEmpty
	}

	s.logger.Info("folder selected", "dir", dir, "photos", len(photos), "recursive", recursive)
	return s.finish(result), nil
}

// Clear releases issued display URLs and resets the session.
func (s *LocalSession) Clear() {
	s.releaseIssued()
	s.mu.Lock()
	s.last = LocalResult{Photos: []domain.PhotoItem{}}
	s.mu.Unlock()
}

// Last returns the most recent selection result.
func (s *LocalSession) Last() LocalResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *LocalSession) finish(result LocalResult) *LocalResult {
	s.mu.Lock()
	s.last = result
	s.mu.Unlock()
	return &result
}

func (s *LocalSession) trackIssued(url string) {
	s.mu.Lock()
	s.issued = append(s.issued, url)
	s.mu.Unlock()
}

func (s *LocalSession) releaseIssued() {
	s.mu.Lock()
	issued := s.issued
	s.issued = nil
	s.mu.Unlock()

	for _, url := range issued {
		s.urls.Release(url)
	}
}

type imageFile struct {
	path    string
	name    string
	modTime time.Time
}

func enumerateImages(dir string, recursive bool) ([]imageFile, error) {
	var files []imageFile

	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !isSupportedImage(d.Name()) {
				return nil
			}
			info, err := d.Info()
			if err != nil {
				return err
			}
			files = append(files, imageFile{path: path, name: d.Name(), modTime: info.ModTime()})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk directory: %w", err)
		}
		return files, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !isSupportedImage(entry.Name()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, err
		}
		files = append(files, imageFile{
			path:    filepath.Join(dir, entry.Name()),
			name:    entry.Name(),
			modTime: info.ModTime(),
		})
	}
	return files, nil
}

func isSupportedImage(name string) bool {
	_, ok := supportedExtensions[strings.ToLower(filepath.Ext(name))]
	return ok
}

// StaticFolderPicker always picks the same directory; it backs headless
// deployments where the folder comes from config instead of a UI picker.
type StaticFolderPicker string

func (p StaticFolderPicker) PickFolder(ctx context.Context) (string, error) {
	if _, err := os.Stat(string(p)); err != nil {
		return "", fmt.Errorf("open folder: %w", err)
	}
	return string(p), nil
}

// FileURLIssuer issues file:// display URLs. Releasing is a no-op since
// nothing is held per URL.
type FileURLIssuer struct{}

func (FileURLIssuer) Issue(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}

func (FileURLIssuer) Release(url string) {}
