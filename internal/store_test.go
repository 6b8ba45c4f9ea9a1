package internal

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDatasetStore_ReplaceAll(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dataset.db")

	store, err := OpenDatasetStore(path)
	if err != nil {
		t.Fatalf("OpenDatasetStore() error = %v", err)
	}
	defer store.Close()

	records := []Record{
		CreateTestRecord("Vadesiz hesap"),
		CreateTestPromptRecord("Kredi kartı"),
		CreateTestPromptRecord("EFT iptali"),
	}
	if err := store.ReplaceAll(ctx, records); err != nil {
		t.Fatalf("ReplaceAll() error = %v", err)
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 3 {
		t.Errorf("Count() = %d, want 3", n)
	}

	byKind, err := store.CountByKind(ctx)
	if err != nil {
		t.Fatalf("CountByKind() error = %v", err)
	}
	if diff := cmp.Diff(map[Kind]int{KindComplete: 1, KindPromptOnly: 2}, byKind); diff != "" {
		t.Errorf("CountByKind() mismatch (-want +got):\n%s", diff)
	}

	loaded, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if diff := cmp.Diff(records, loaded); diff != "" {
		t.Errorf("LoadAll() mismatch (-want +got):\n%s", diff)
	}
}

func TestDatasetStore_ReplaceAllOverwrites(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "dataset.db")

	store, err := OpenDatasetStore(path)
	if err != nil {
		t.Fatalf("OpenDatasetStore() error = %v", err)
	}
	defer store.Close()

	if err := store.ReplaceAll(ctx, []Record{CreateTestRecord("a"), CreateTestRecord("b")}); err != nil {
		t.Fatal(err)
	}
	if err := store.ReplaceAll(ctx, []Record{CreateTestPromptRecord("c")}); err != nil {
		t.Fatal(err)
	}

	loaded, err := store.LoadAll(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"c"}, UserMessages(loaded)); diff != "" {
		t.Errorf("snapshot not replaced (-want +got):\n%s", diff)
	}
}

func TestOpenDatasetStore_BadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", "dataset.db")
	if _, err := OpenDatasetStore(path); err == nil {
		t.Error("OpenDatasetStore() should fail when the directory does not exist")
	}
}
