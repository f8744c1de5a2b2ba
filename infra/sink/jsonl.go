package sink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	coresink "github.com/kilianp07/tracelab/core/sink"
)

// JSONLSink appends step records to a JSON-lines run log, rotating the file
// when it grows past the configured size.
type JSONLSink struct {
	mu         sync.Mutex
	path       string
	maxSizeMB  int
	maxBackups int
	f          *os.File
}

// NewJSONLSink opens (or creates) the run log at path. maxSizeMB <= 0
// disables rotation; maxBackups <= 0 keeps every rotated file.
func NewJSONLSink(path string, maxSizeMB, maxBackups int) (*JSONLSink, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open run log: %w", err)
	}
	return &JSONLSink{path: path, maxSizeMB: maxSizeMB, maxBackups: maxBackups, f: f}, nil
}

// RecordStep appends the record as one JSON line.
func (s *JSONLSink) RecordStep(rec coresink.StepRecord) error {
	line, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.rotateIfNeeded(int64(len(line) + 1)); err != nil {
		return err
	}
	if _, err := s.f.Write(append(line, '\n')); err != nil {
		return err
	}
	return nil
}

// Close closes the underlying file.
func (s *JSONLSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.f.Close()
}

func (s *JSONLSink) rotateIfNeeded(incoming int64) error {
	if s.maxSizeMB <= 0 {
		return nil
	}
	info, err := s.f.Stat()
	if err != nil {
		return err
	}
	if info.Size()+incoming <= int64(s.maxSizeMB)*1024*1024 {
		return nil
	}
	if err := s.f.Close(); err != nil {
		return err
	}
	backup := fmt.Sprintf("%s.%s", s.path, time.Now().UTC().Format("20060102T150405.000"))
	if err := os.Rename(s.path, backup); err != nil {
		return err
	}
	if err := s.pruneBackups(); err != nil {
		return err
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	s.f = f
	return nil
}

func (s *JSONLSink) pruneBackups() error {
	if s.maxBackups <= 0 {
		return nil
	}
	matches, err := filepath.Glob(s.path + ".*")
	if err != nil {
		return err
	}
	if len(matches) <= s.maxBackups {
		return nil
	}
	sort.Strings(matches)
	for _, old := range matches[:len(matches)-s.maxBackups] {
		if err := os.Remove(old); err != nil {
			return err
		}
	}
	return nil
}
