package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"github.com/Tejasai37/papercast/application/ports/outbound"
	"github.com/Tejasai37/papercast/domain"
	"github.com/gofrs/flock"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileLockRetryDelay = 50 * time.Millisecond

// jsonFilePodcastStore keeps every record in one JSON object keyed by article
// id. The file lock lets the CLI and a running server share the file; the
// mutex serializes goroutines, which share a single lock handle.
type jsonFilePodcastStore struct {
	logger   outbound.LoggerPort
	path     string
	mu       sync.Mutex
	fileLock *flock.Flock
}

func NewJsonFilePodcastStore(logger outbound.LoggerPort, path string) (outbound.PodcastStorePort, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &jsonFilePodcastStore{
		logger:   logger,
		path:     path,
		fileLock: flock.New(path + ".lock"),
	}, nil
}

func (s *jsonFilePodcastStore) Get(ctx context.Context, articleID string) (*domain.PodcastRecord, error) {
	var record *domain.PodcastRecord
	err := s.withLock(ctx, func() error {
		documents, err := s.load()
		if err != nil {
			return err
		}
		document, ok := documents[articleID]
		if !ok {
			return fmt.Errorf("podcast %s: %w", articleID, domain.ErrNotFound)
		}
		found := document.toRecord(articleID)
		record = &found
		return nil
	})
	return record, err
}

func (s *jsonFilePodcastStore) Put(ctx context.Context, articleID string, record domain.PodcastRecord) error {
	return s.withLock(ctx, func() error {
		documents, err := s.load()
		if err != nil {
			return err
		}
		documents[articleID] = toPodcastDocument(articleID, record)
		return s.save(documents)
	})
}

func (s *jsonFilePodcastStore) Scan(ctx context.Context, predicate outbound.RecordPredicate) ([]domain.PodcastRecord, error) {
	records := make([]domain.PodcastRecord, 0)
	err := s.withLock(ctx, func() error {
		documents, err := s.load()
		if err != nil {
			return err
		}
		for id, document := range documents {
			record := document.toRecord(id)
			if matches(predicate, record) {
				records = append(records, record)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (s *jsonFilePodcastStore) Delete(ctx context.Context, articleID string) error {
	return s.withLock(ctx, func() error {
		documents, err := s.load()
		if err != nil {
			return err
		}
		if _, ok := documents[articleID]; !ok {
			return nil
		}
		delete(documents, articleID)
		return s.save(documents)
	})
}

func (s *jsonFilePodcastStore) withLock(ctx context.Context, fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	locked, err := s.fileLock.TryLockContext(ctx, fileLockRetryDelay)
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to lock podcast store file", map[string]interface{}{
			"path": s.path,
		})
		return err
	}
	if !locked {
		return fmt.Errorf("podcast store %s is locked", s.path)
	}
	defer func() {
		if err := s.fileLock.Unlock(); err != nil {
			s.logger.ErrorWithFields(err, "Failed to unlock podcast store file", map[string]interface{}{
				"path": s.path,
			})
		}
	}()

	return fn()
}

func (s *jsonFilePodcastStore) load() (map[string]podcastDocument, error) {
	documents := map[string]podcastDocument{}
	content, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return documents, nil
	}
	if err != nil {
		s.logger.ErrorWithFields(err, "Failed to read podcast store file", map[string]interface{}{
			"path": s.path,
		})
		return nil, err
	}
	if len(content) == 0 {
		return documents, nil
	}
	if err := json.Unmarshal(content, &documents); err != nil {
		s.logger.ErrorWithFields(err, "Podcast store file is corrupt", map[string]interface{}{
			"path": s.path,
		})
		return nil, err
	}
	return documents, nil
}

// save writes to a sibling temp file and renames it over the store so readers
// never see a half written file.
func (s *jsonFilePodcastStore) save(documents map[string]podcastDocument) error {
	content, err := json.MarshalIndent(documents, "", "    ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		s.logger.ErrorWithFields(err, "Failed to replace podcast store file", map[string]interface{}{
			"path": s.path,
		})
		os.Remove(tmpName)
		return err
	}
	return nil
}
