package internal

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// SourceInfo describes one input file of a build
type SourceInfo struct {
	Path    string    `yaml:"path"`
	ModTime time.Time `yaml:"mod_time"`
	Records int       `yaml:"records"`
}

// Manifest records what a build read and wrote
type Manifest struct {
	Curated      SourceInfo `yaml:"curated"`
	Prompts      SourceInfo `yaml:"prompts"`
	Generated    int        `yaml:"generated"`
	Policy       string     `yaml:"policy"`
	Merge        MergeStats `yaml:"merge"`
	OutputPath   string     `yaml:"output_path"`
	OutputFormat string     `yaml:"output_format"`
	OutputSHA256 string     `yaml:"output_sha256"`
	Summary      Summary    `yaml:"summary"`
}

// NewSourceInfo stats path and records its modification time
func NewSourceInfo(path string, records int) (SourceInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return SourceInfo{}, err
	}
	return SourceInfo{Path: path, ModTime: info.ModTime().UTC(), Records: records}, nil
}

// FileSHA256 returns the hex SHA-256 digest of a file
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() { _ = f.Close() }()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// SaveManifest writes m as YAML, creating parent directories
func SaveManifest(path string, m *Manifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// LoadManifest reads a manifest written by SaveManifest
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal manifest: %w", err)
	}
	return &m, nil
}
