package store

import (
	"path/filepath"
	"testing"
)

func TestOpen_Memory(t *testing.T) {
	kv, info, err := Open(Options{Backend: BackendMemory}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = kv.Close() }()

	if _, ok := kv.(*MemoryStore); !ok {
		t.Errorf("expected *MemoryStore, got %T", kv)
	}
	if info.Backend != BackendMemory || info.IsFallback {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestOpen_SQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "blog.db")

	kv, info, err := Open(Options{Backend: BackendSQLite, DBPath: path}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = kv.Close() }()

	if info.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want %q", info.Backend, BackendSQLite)
	}
}

func TestOpen_RedisFallback(t *testing.T) {
	kv, info, err := Open(Options{
		Backend:          BackendRedis,
		RedisURL:         "redis://127.0.0.1:1/0",
		FallbackToMemory: true,
	}, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer func() { _ = kv.Close() }()

	if !info.IsFallback || info.Backend != BackendMemory {
		t.Errorf("expected memory fallback, got %+v", info)
	}
}

func TestOpen_RedisNoFallback(t *testing.T) {
	_, _, err := Open(Options{
		Backend:  BackendRedis,
		RedisURL: "redis://127.0.0.1:1/0",
	}, nil)
	if err == nil {
		t.Error("expected error when redis is unreachable and fallback disabled")
	}
}

func TestOpen_UnknownBackend(t *testing.T) {
	if _, _, err := Open(Options{Backend: "etcd"}, nil); err == nil {
		t.Error("expected error for unknown backend")
	}
}
