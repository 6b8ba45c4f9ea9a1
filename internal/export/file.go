package export

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/iksnae/plan-dataset/internal"
)

// WriteFile creates or truncates path and writes records with exporter.
// Any failure is reported as an *internal.WriteError matching internal.ErrIO;
// a failed write may leave a partial file behind.
func WriteFile(exporter Exporter, records []internal.Record, path string) error {
	format := exporter.Extension()

	file, err := os.Create(path)
	if err != nil {
		return &internal.WriteError{Format: format, Path: path, Err: err}
	}

	w := bufio.NewWriter(file)
	if err := exporter.Export(records, w); err != nil {
		_ = file.Close()
		return &internal.WriteError{Format: format, Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		_ = file.Close()
		return &internal.WriteError{Format: format, Path: path, Err: err}
	}
	if err := file.Close(); err != nil {
		return &internal.WriteError{Format: format, Path: path, Err: err}
	}

	internal.LogDebug("Wrote %d record(s) to %s", len(records), filepath.Clean(path))
	return nil
}
