package cache

import (
	"crypto/md5"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Store caches raw /analyze response bodies keyed by ticker and day, so
// repeating an analysis within the TTL skips the backend entirely. Entries
// live in memory first and fall through to JSON files under the cache dir.
type Store struct {
	dir     string
	ttl     time.Duration
	enabled bool

	mu     sync.RWMutex
	memory map[string]memEntry
}

type memEntry struct {
	body []byte
	at   time.Time
}

func New(dir string, ttl time.Duration, enabled bool) *Store {
	return &Store{
		dir:     dir,
		ttl:     ttl,
		enabled: enabled,
		memory:  make(map[string]memEntry),
	}
}

func (s *Store) key(ticker string, day time.Time) string {
	sum := md5.Sum([]byte(ticker + "_" + day.Format("2006-01-02")))
	return fmt.Sprintf("analysis_%x.json", sum)
}

// Get returns a cached response body if one exists and has not expired.
func (s *Store) Get(ticker string, day time.Time) ([]byte, bool) {
	if !s.enabled {
		return nil, false
	}

	key := s.key(ticker, day)

	s.mu.RLock()
	if e, ok := s.memory[key]; ok && time.Since(e.at) <= s.ttl {
		s.mu.RUnlock()
		return e.body, true
	}
	s.mu.RUnlock()

	path := filepath.Join(s.dir, key)
	info, err := os.Stat(path)
	if err != nil {
		return nil, false
	}
	if time.Since(info.ModTime()) > s.ttl {
		os.Remove(path)
		return nil, false
	}

	body, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	s.mu.Lock()
	s.memory[key] = memEntry{body: body, at: info.ModTime()}
	s.mu.Unlock()
	return body, true
}

// Set stores a response body for the ticker and day.
func (s *Store) Set(ticker string, day time.Time, body []byte) error {
	if !s.enabled {
		return nil
	}

	key := s.key(ticker, day)

	s.mu.Lock()
	s.memory[key] = memEntry{body: body, at: time.Now()}
	s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, key), body, 0644)
}
