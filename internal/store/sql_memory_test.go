package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/olegiv/ocms-blog/internal/store"
	"github.com/olegiv/ocms-blog/internal/testutil"
)

func TestSQLStore_InMemoryDatabase(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	s := store.NewSQLStore(db, store.DialectSQLite)
	ctx := context.Background()

	if _, err := s.Get(ctx, "blog_categories"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on empty table, got %v", err)
	}

	if err := s.Set(ctx, "blog_categories", []byte(`[{"id":"c1"}]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "blog_categories", []byte(`[]`)); err != nil {
		t.Fatalf("Set (replace): %v", err)
	}

	got, err := s.Get(ctx, "blog_categories")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "[]" {
		t.Errorf("Get = %s, want []", got)
	}
}

func TestSQLStore_CloseLeavesBorrowedDBOpen(t *testing.T) {
	db := testutil.TestMemoryDB(t)
	s := store.NewSQLStore(db, store.DialectSQLite)

	if err := s.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := db.Ping(); err != nil {
		t.Errorf("borrowed database was closed: %v", err)
	}
	if err := s.Set(context.Background(), "k", nil); !errors.Is(err, store.ErrClosed) {
		t.Errorf("expected ErrClosed, got %v", err)
	}
}
