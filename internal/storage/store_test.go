package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testProviders(t *testing.T) map[string]Provider {
	dir := t.TempDir()
	return map[string]Provider{
		"json":  NewJSONStore(filepath.Join(dir, "aurapulse.json")),
		"diskv": NewDiskvStore(filepath.Join(dir, "records")),
	}
}

func TestProviderContract(t *testing.T) {
	ctx := context.Background()

	for name, p := range testProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Load(); !errors.Is(err, ErrNotInitialized) {
				t.Errorf("Load() before Init = %v, want ErrNotInitialized", err)
			}
			if err := p.Init(); err != nil {
				t.Fatalf("Init() failed: %v", err)
			}
			defer p.Close()

			if _, err := p.Read(ctx, "aura_activities"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Read(missing) = %v, want ErrNotFound", err)
			}

			if err := p.Write(ctx, "aura_activities", []byte(`[{"id":"a"}]`)); err != nil {
				t.Fatalf("Write() failed: %v", err)
			}
			if err := p.Write(ctx, "aura_goals", []byte(`not json at all`)); err != nil {
				t.Fatalf("Write() of opaque bytes failed: %v", err)
			}
			if err := p.Write(ctx, "aura_activities", []byte(`[]`)); err != nil {
				t.Fatalf("overwrite failed: %v", err)
			}

			got, err := p.Read(ctx, "aura_activities")
			if err != nil {
				t.Fatalf("Read() failed: %v", err)
			}
			if string(got) != "[]" {
				t.Errorf("Read() = %q, want overwritten value", got)
			}

			got, err = p.Read(ctx, "aura_goals")
			if err != nil || string(got) != "not json at all" {
				t.Errorf("Read(aura_goals) = %q, %v", got, err)
			}
		})
	}
}

func TestProviderReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	reopen := map[string]func() Provider{
		"json":  func() Provider { return NewJSONStore(filepath.Join(dir, "a.json")) },
		"diskv": func() Provider { return NewDiskvStore(filepath.Join(dir, "kv")) },
	}

	for name, open := range reopen {
		t.Run(name, func(t *testing.T) {
			first := open()
			if err := first.Init(); err != nil {
				t.Fatalf("Init() failed: %v", err)
			}
			if err := first.Write(ctx, "aura_goals", []byte(`[1]`)); err != nil {
				t.Fatalf("Write() failed: %v", err)
			}
			first.Close()

			second := open()
			if err := second.Load(); err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			got, err := second.Read(ctx, "aura_goals")
			if err != nil || string(got) != "[1]" {
				t.Errorf("Read() after reopen = %q, %v", got, err)
			}

			// Init on an existing store keeps its data
			third := open()
			if err := third.Init(); err != nil {
				t.Fatalf("second Init() failed: %v", err)
			}
			if got, _ := third.Read(ctx, "aura_goals"); string(got) != "[1]" {
				t.Errorf("Init() lost data: %q", got)
			}
		})
	}
}

func TestProviderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, p := range testProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := p.Init(); err != nil {
				t.Fatalf("Init() failed: %v", err)
			}
			if err := p.Write(ctx, "k", []byte("v")); err == nil {
				t.Error("Write() with cancelled context should fail")
			}
			if _, err := p.Read(ctx, "k"); err == nil {
				t.Error("Read() with cancelled context should fail")
			}
		})
	}
}

func TestJSONStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{oops"), 0600); err != nil {
		t.Fatal(err)
	}
	if err := NewJSONStore(path).Load(); err == nil {
		t.Error("Load() of a corrupt file should fail")
	}
}

func TestDiskvKeyLayout(t *testing.T) {
	dir := t.TempDir()
	s := NewDiskvStore(dir)
	if err := s.Init(); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(context.Background(), "aura_activities", []byte("[]")); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "aura", "activities")); err != nil {
		t.Errorf("expected record file at aura/activities: %v", err)
	}

	for _, key := range []string{"aura_activities", "plain", "a_b_c"} {
		if got := pathToKey(keyToPath(key)); got != key {
			t.Errorf("key round trip %q -> %q", key, got)
		}
	}
}
