package internal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/iksnae/plan-dataset/testutil"
)

func TestSaveAndLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "manifest.yaml")

	want := &Manifest{
		Curated:      SourceInfo{Path: "a.jsonl", ModTime: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC), Records: 10},
		Prompts:      SourceInfo{Path: "c.jsonl", ModTime: time.Date(2026, 1, 3, 0, 0, 0, 0, time.UTC), Records: 50},
		Generated:    79,
		Policy:       PolicyLegacy.String(),
		Merge:        MergeStats{Seeded: 89, Added: 45, Skipped: 5},
		OutputPath:   "out.jsonl",
		OutputFormat: "jsonl",
		OutputSHA256: "abc",
		Summary:      Summary{Total: 134, Complete: 49, PromptOnly: 85},
	}
	if err := SaveManifest(path, want); err != nil {
		t.Fatalf("SaveManifest() error = %v", err)
	}

	got, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest() error = %v", err)
	}
	if !got.Curated.ModTime.Equal(want.Curated.ModTime) || !got.Prompts.ModTime.Equal(want.Prompts.ModTime) {
		t.Errorf("ModTime = %v / %v, want %v / %v", got.Curated.ModTime, got.Prompts.ModTime, want.Curated.ModTime, want.Prompts.ModTime)
	}
	got.Curated.ModTime = want.Curated.ModTime
	got.Prompts.ModTime = want.Prompts.ModTime
	if *got != *want {
		t.Errorf("LoadManifest() = %+v, want %+v", got, want)
	}
}

func TestFileSHA256(t *testing.T) {
	dir := t.TempDir()
	a := testutil.WriteFile(t, dir, "a.jsonl", "line\n")
	b := testutil.WriteFile(t, dir, "b.jsonl", "line\n")
	c := testutil.WriteFile(t, dir, "c.jsonl", "other\n")

	ha, err := FileSHA256(a)
	if err != nil {
		t.Fatal(err)
	}
	hb, _ := FileSHA256(b)
	hc, _ := FileSHA256(c)

	if ha != hb {
		t.Error("identical files should have identical digests")
	}
	if ha == hc {
		t.Error("different files should have different digests")
	}
	if len(ha) != 64 {
		t.Errorf("digest length = %d, want 64", len(ha))
	}
}

func TestNewSourceInfo(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "a.jsonl", "{}\n")

	info, err := NewSourceInfo(path, 1)
	if err != nil {
		t.Fatalf("NewSourceInfo() error = %v", err)
	}
	if info.Path != path || info.Records != 1 || info.ModTime.IsZero() {
		t.Errorf("NewSourceInfo() = %+v", info)
	}

	if _, err := NewSourceInfo(filepath.Join(t.TempDir(), "missing"), 0); err == nil {
		t.Error("NewSourceInfo() should fail for a missing file")
	}
}
