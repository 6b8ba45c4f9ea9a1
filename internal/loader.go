package internal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

// maxLineSize bounds a single JSONL line; assistant payloads can be large.
const maxLineSize = 16 * 1024 * 1024

// LoadRecords reads a JSONL file into records, preserving line order.
// Blank lines are skipped; the first malformed line aborts the load.
func LoadRecords(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &LoadError{Path: path, Kind: ErrNotFound, Err: err}
		}
		return nil, &LoadError{Path: path, Kind: ErrIO, Err: err}
	}
	defer func() { _ = file.Close() }()

	records, err := DecodeRecords(file, path)
	if err != nil {
		return nil, err
	}
	LogDebug("Loaded %d record(s) from %s", len(records), path)
	return records, nil
}

// DecodeRecords decodes JSONL from r. name is used in error messages.
func DecodeRecords(r io.Reader, name string) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	records := make([]Record, 0)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var record Record
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			return nil, &LoadError{Path: name, Line: lineNo, Kind: ErrMalformedInput, Err: err}
		}
		if err := record.Validate(); err != nil {
			return nil, &LoadError{Path: name, Line: lineNo, Kind: ErrMalformedInput, Err: err}
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		kind := ErrIO
		if errors.Is(err, bufio.ErrTooLong) {
			kind = ErrMalformedInput
		}
		return nil, &LoadError{Path: name, Line: lineNo + 1, Kind: kind, Err: fmt.Errorf("read: %w", err)}
	}
	return records, nil
}
