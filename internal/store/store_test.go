package store

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		if want := int64(i + 1); seq != want {
			t.Errorf("seq[%d] = %d, want %d", i, seq, want)
		}
	}
}

func TestEntKVRoundTrip(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	if _, ok, err := kv.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, want absent", ok, err)
	}

	if err := kv.Set(ctx, "stats:daily:2026-08-29", `{"total":3}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	// Overwrite.
	if err := kv.Set(ctx, "stats:daily:2026-08-29", `{"total":4}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	v, ok, err := kv.Get(ctx, "stats:daily:2026-08-29")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if v != `{"total":4}` {
		t.Errorf("value = %q, want overwritten value", v)
	}
}

func TestEntKVListAndRemove(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	ctx := context.Background()

	for _, k := range []string{"completion:2026-08-27", "completion:2026-08-28", "stats:streak"} {
		if err := kv.Set(ctx, k, "x"); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	keys, err := kv.ListKeys(ctx, "completion:")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(keys) != 2 {
		t.Fatalf("ListKeys(completion:) = %v, want 2 keys", keys)
	}

	if err := kv.MultiRemove(ctx, keys); err != nil {
		t.Fatalf("remove: %v", err)
	}
	keys, err = kv.ListKeys(ctx, "completion:")
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if len(keys) != 0 {
		t.Errorf("keys after remove = %v, want none", keys)
	}

	// Unrelated prefix untouched.
	if _, ok, _ := kv.Get(ctx, "stats:streak"); !ok {
		t.Error("stats:streak removed by completion cleanup")
	}
}

func TestMemKVMatchesContract(t *testing.T) {
	kv := NewMemKV()
	ctx := context.Background()

	if err := kv.Set(ctx, "a:1", "one"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "a:2", "two"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := kv.Set(ctx, "b:1", "three"); err != nil {
		t.Fatalf("set: %v", err)
	}

	keys, _ := kv.ListKeys(ctx, "a:")
	if len(keys) != 2 || keys[0] != "a:1" || keys[1] != "a:2" {
		t.Errorf("ListKeys = %v, want sorted [a:1 a:2]", keys)
	}

	if err := kv.MultiRemove(ctx, []string{"a:1", "a:2", "nope"}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if kv.Len() != 1 {
		t.Errorf("Len = %d, want 1", kv.Len())
	}
}

func TestMemKVFailWrites(t *testing.T) {
	kv := NewMemKV()
	kv.FailWrites = true
	kv.Err = errors.New("store offline")

	if err := kv.Set(context.Background(), "k", "v"); err == nil {
		t.Fatal("expected write error")
	}
	if kv.Len() != 0 {
		t.Errorf("Len = %d after failed write, want 0", kv.Len())
	}
}
