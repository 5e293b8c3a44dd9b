package cache

import (
	"context"
	"testing"
)

func TestStorePutThenGet(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	if err := s.Put(ctx, "Sol Ring", 150, true); err != nil {
		t.Fatalf("Put: %v", err)
	}

	cents, known, found, err := s.Get(ctx, "Sol Ring")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !found || !known || cents != 150 {
		t.Errorf("unexpected row: cents=%d known=%v found=%v", cents, known, found)
	}
}

func TestStoreGetMissReturnsNotFound(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	_, _, found, err := s.Get(context.Background(), "Nonexistent Card")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if found {
		t.Error("expected found=false for missing row")
	}
}

func TestStorePutOverwrites(t *testing.T) {
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	_ = s.Put(ctx, "Sol Ring", 150, true)
	_ = s.Put(ctx, "Sol Ring", 175, true)

	cents, _, _, err := s.Get(ctx, "Sol Ring")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if cents != 175 {
		t.Errorf("expected overwritten price 175, got %d", cents)
	}
}
