package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variables that override built-in defaults
const (
	EnvCuratedPath  = "PLAN_DATASET_CURATED"
	EnvPromptsPath  = "PLAN_DATASET_PROMPTS"
	EnvOutputPath   = "PLAN_DATASET_OUTPUT"
	EnvFormat       = "PLAN_DATASET_FORMAT"
	EnvSystemPrompt = "PLAN_DATASET_SYSTEM_PROMPT"
)

// Built-in defaults, relative to the working directory
const (
	DefaultCuratedPath = "training_data.jsonl"
	DefaultPromptsPath = "training_data_rft.jsonl"
	DefaultOutputPath  = "merged_training_data.jsonl"
	DefaultFormat      = "jsonl"
)

var supportedFormats = []string{"jsonl", "json", "yaml", "md", "markdown"}

// Config holds the inputs of a build run
type Config struct {
	// CuratedPath holds complete examples, merged first.
	CuratedPath string
	// PromptsPath holds reward fine-tuning prompts, merged last and filtered.
	PromptsPath  string
	OutputPath   string
	Format       string
	SystemPrompt string
	Policy       MergePolicy
	// Optional artifacts, skipped when empty
	SQLitePath   string
	ManifestPath string
}

// LoadEnvFile loads variables from a .env file without overriding ones
// already set. A missing file is only an error when required is true.
func LoadEnvFile(path string, required bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			LogDebug("No env file at %s, using process environment", path)
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	LogDebug("Loaded environment from %s", path)
	return nil
}

// DefaultConfig returns built-in defaults overridden by the environment
func DefaultConfig() Config {
	return Config{
		CuratedPath:  envOr(EnvCuratedPath, DefaultCuratedPath),
		PromptsPath:  envOr(EnvPromptsPath, DefaultPromptsPath),
		OutputPath:   envOr(EnvOutputPath, DefaultOutputPath),
		Format:       envOr(EnvFormat, DefaultFormat),
		SystemPrompt: envOr(EnvSystemPrompt, DefaultSystemPrompt),
		Policy:       PolicyLegacy,
	}
}

// Validate checks required fields
func (c Config) Validate() error {
	if strings.TrimSpace(c.CuratedPath) == "" {
		return errors.New("curated examples path is empty")
	}
	if strings.TrimSpace(c.PromptsPath) == "" {
		return errors.New("prompts path is empty")
	}
	if strings.TrimSpace(c.OutputPath) == "" {
		return errors.New("output path is empty")
	}
	if strings.TrimSpace(c.SystemPrompt) == "" {
		return errors.New("system prompt is empty")
	}
	for _, f := range supportedFormats {
		if c.Format == f {
			return nil
		}
	}
	return fmt.Errorf("unsupported format: %s (supported: %s)", c.Format, strings.Join(supportedFormats, ", "))
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
