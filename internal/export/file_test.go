package export

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/iksnae/plan-dataset/internal"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged.jsonl")
	records := []internal.Record{internal.CreateTestRecord("a"), internal.CreateTestPromptRecord("b")}

	if err := WriteFile(&JSONLExporter{}, records, path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var direct bytes.Buffer
	_ = (&JSONLExporter{}).Export(records, &direct)
	if !bytes.Equal(first, direct.Bytes()) {
		t.Error("file content should equal the exporter output")
	}

	// overwrite with fewer records
	if err := WriteFile(&JSONLExporter{}, records[:1], path); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	second, _ := os.ReadFile(path)
	if bytes.Count(second, []byte("\n")) != 1 {
		t.Errorf("overwritten file has %d lines, want 1", bytes.Count(second, []byte("\n")))
	}
}

func TestWriteFile_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "merged.jsonl")

	err := WriteFile(&JSONLExporter{}, nil, path)
	if !errors.Is(err, internal.ErrIO) {
		t.Fatalf("WriteFile() error = %v, want ErrIO", err)
	}
	var werr *internal.WriteError
	if !errors.As(err, &werr) || werr.Path != path || werr.Format != "jsonl" {
		t.Errorf("WriteFile() error = %#v, want *WriteError for %s", err, path)
	}
}

var errBoom = errors.New("boom")

type errExporter struct{}

func (errExporter) Export([]internal.Record, io.Writer) error { return errBoom }
func (errExporter) Extension() string                         { return "err" }

func TestWriteFile_ExportError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "merged.jsonl")
	err := WriteFile(errExporter{}, []internal.Record{internal.CreateTestRecord("a")}, path)
	if !errors.Is(err, internal.ErrIO) || !errors.Is(err, errBoom) {
		t.Errorf("WriteFile() error = %v, want ErrIO wrapping the export error", err)
	}
}
