// Package pipeline assembles the merged training dataset: curated examples,
// then the built-in catalog, then reward fine-tuning prompts filtered
// against everything before them.
package pipeline

import (
	"context"
	"fmt"

	"github.com/iksnae/plan-dataset/internal"
	"github.com/iksnae/plan-dataset/internal/export"
)

// Report summarizes a completed build
type Report struct {
	CuratedLoaded int
	Generated     internal.Summary
	PromptsLoaded int
	Merge         internal.MergeStats
	Added         int
	Skipped       int
	Output        internal.Summary
	OutputPath    string
	ManifestPath  string
	SQLitePath    string
}

// Pipeline runs one build for a configuration
type Pipeline struct {
	cfg     internal.Config
	catalog *internal.Catalog
}

// New validates cfg and prepares a pipeline. A nil catalog selects the
// embedded banking catalog.
func New(cfg internal.Config, catalog *internal.Catalog) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if catalog == nil {
		var err error
		catalog, err = internal.LoadCatalog()
		if err != nil {
			return nil, err
		}
	}
	return &Pipeline{cfg: cfg, catalog: catalog}, nil
}

// Run executes every step in order. The first error aborts the build.
func (p *Pipeline) Run(ctx context.Context) (*Report, error) {
	exporter, err := export.NewExporter(p.cfg.Format)
	if err != nil {
		return nil, err
	}

	var (
		curated   []internal.Record
		generated []internal.Record
		prompts   []internal.Record
		merger    = internal.NewMerger(p.cfg.Policy)
		report    = &Report{OutputPath: p.cfg.OutputPath}
	)

	steps := []internal.ProgressStep{
		{
			Message: "Loading curated examples",
			Fn: func() error {
				var loadErr error
				curated, loadErr = internal.LoadRecords(p.cfg.CuratedPath)
				if loadErr != nil {
					return loadErr
				}
				report.CuratedLoaded = len(curated)
				internal.LogInfo("Loaded %d curated example(s) from %s", len(curated), p.cfg.CuratedPath)
				return nil
			},
		},
		{
			Message: "Generating catalog examples",
			Fn: func() error {
				generated = p.catalog.Records(p.cfg.SystemPrompt)
				report.Generated = internal.Summarize(generated)
				internal.LogInfo("Generated %d catalog example(s) (%d complete, %d prompt-only)",
					report.Generated.Total, report.Generated.Complete, report.Generated.PromptOnly)

				merger.Seed(curated)
				merger.Seed(generated)
				return nil
			},
		},
		{
			Message: "Merging reward prompts",
			Fn: func() error {
				var loadErr error
				prompts, loadErr = internal.LoadRecords(p.cfg.PromptsPath)
				if loadErr != nil {
					return loadErr
				}
				report.PromptsLoaded = len(prompts)
				report.Added, report.Skipped = merger.Filter(prompts)
				internal.LogInfo("Added %d prompt(s), skipped %d duplicate(s)", report.Added, report.Skipped)
				return nil
			},
		},
		{
			Message: fmt.Sprintf("Writing %s", p.cfg.OutputPath),
			Fn: func() error {
				records := merger.Records()
				report.Output = internal.Summarize(records)
				return export.WriteFile(exporter, records, p.cfg.OutputPath)
			},
		},
	}

	if p.cfg.SQLitePath != "" {
		steps = append(steps, internal.ProgressStep{
			Message: fmt.Sprintf("Writing SQLite snapshot %s", p.cfg.SQLitePath),
			Fn: func() error {
				if err := writeSnapshot(ctx, p.cfg.SQLitePath, merger.Records()); err != nil {
					return err
				}
				report.SQLitePath = p.cfg.SQLitePath
				return nil
			},
		})
	}

	if p.cfg.ManifestPath != "" {
		steps = append(steps, internal.ProgressStep{
			Message: fmt.Sprintf("Writing manifest %s", p.cfg.ManifestPath),
			Fn: func() error {
				if err := p.writeManifest(report, merger.Stats()); err != nil {
					return err
				}
				report.ManifestPath = p.cfg.ManifestPath
				return nil
			},
		})
	}

	if err := internal.RunSteps(ctx, steps); err != nil {
		return nil, err
	}
	report.Merge = merger.Stats()
	return report, nil
}

func writeSnapshot(ctx context.Context, path string, records []internal.Record) error {
	store, err := internal.OpenDatasetStore(path)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	return store.ReplaceAll(ctx, records)
}

func (p *Pipeline) writeManifest(report *Report, stats internal.MergeStats) error {
	curated, err := internal.NewSourceInfo(p.cfg.CuratedPath, report.CuratedLoaded)
	if err != nil {
		return err
	}
	prompts, err := internal.NewSourceInfo(p.cfg.PromptsPath, report.PromptsLoaded)
	if err != nil {
		return err
	}
	digest, err := internal.FileSHA256(p.cfg.OutputPath)
	if err != nil {
		return err
	}

	return internal.SaveManifest(p.cfg.ManifestPath, &internal.Manifest{
		Curated:      curated,
		Prompts:      prompts,
		Generated:    report.Generated.Total,
		Policy:       p.cfg.Policy.String(),
		Merge:        stats,
		OutputPath:   p.cfg.OutputPath,
		OutputFormat: p.cfg.Format,
		OutputSHA256: digest,
		Summary:      report.Output,
	})
}
