package cache

import (
	"bytes"
	"testing"
	"time"
)

func TestSetAndGet(t *testing.T) {
	s := New(t.TempDir(), time.Hour, true)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	body := []byte(`{"analysis": {"recommendation": "BUY"}}`)

	if _, ok := s.Get("AAPL", day); ok {
		t.Fatal("empty cache should miss")
	}
	if err := s.Set("AAPL", day, body); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, ok := s.Get("AAPL", day)
	if !ok || !bytes.Equal(got, body) {
		t.Fatalf("Get = %q %v", got, ok)
	}
}

func TestKeysSeparateTickersAndDays(t *testing.T) {
	s := New(t.TempDir(), time.Hour, true)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	s.Set("AAPL", day, []byte("a"))
	if _, ok := s.Get("MSFT", day); ok {
		t.Error("different ticker should miss")
	}
	if _, ok := s.Get("AAPL", day.AddDate(0, 0, 1)); ok {
		t.Error("different day should miss")
	}
}

func TestFileFallbackSurvivesNewStore(t *testing.T) {
	dir := t.TempDir()
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	s1 := New(dir, time.Hour, true)
	s1.Set("AAPL", day, []byte("persisted"))

	s2 := New(dir, time.Hour, true)
	got, ok := s2.Get("AAPL", day)
	if !ok || string(got) != "persisted" {
		t.Fatalf("file-backed entry missing: %q %v", got, ok)
	}
}

func TestDisabledStoreIsInert(t *testing.T) {
	s := New(t.TempDir(), time.Hour, false)
	day := time.Now()

	if err := s.Set("AAPL", day, []byte("x")); err != nil {
		t.Fatalf("disabled Set should be a no-op, got %v", err)
	}
	if _, ok := s.Get("AAPL", day); ok {
		t.Error("disabled store should always miss")
	}
}

func TestExpiry(t *testing.T) {
	s := New(t.TempDir(), time.Millisecond, true)
	day := time.Now()

	s.Set("AAPL", day, []byte("stale"))
	time.Sleep(10 * time.Millisecond)
	if _, ok := s.Get("AAPL", day); ok {
		t.Error("expired entry should miss")
	}
}
