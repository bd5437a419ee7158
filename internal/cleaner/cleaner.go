package cleaner

import (
	"fmt"

	"github.com/jaywantadh/DeckSweep/internal/assembler"
	"github.com/jaywantadh/DeckSweep/internal/cache"
	"github.com/jaywantadh/DeckSweep/internal/classifier"
	"github.com/jaywantadh/DeckSweep/internal/extractor"
	"github.com/jaywantadh/DeckSweep/pkg/logging"
)

// Options configures a single cleaning run.
type Options struct {
	InputPath  string
	OutputPath string
	Threshold  float64
	DryRun     bool
	Verbose    bool
	// CacheDir enables the page-text cache when non-empty.
	CacheDir string
}

// Report summarizes a run. Kept and Dropped hold ascending 0-based page
// indices.
type Report struct {
	TotalPages int
	Kept       []int
	Dropped    []int
}

// DroppedPages returns the dropped page numbers 1-based, for human-facing
// output.
func (r *Report) DroppedPages() []int {
	pages := make([]int, len(r.Dropped))
	for i, idx := range r.Dropped {
		pages[i] = idx + 1
	}
	return pages
}

// BuildReport runs the redundancy sweep over the given page texts.
func BuildReport(texts []string, threshold float64) *Report {
	res := classifier.Sweep(texts, threshold)
	return &Report{
		TotalPages: res.Total,
		Kept:       res.Kept,
		Dropped:    res.Dropped,
	}
}

// Clean runs the whole pipeline: extract page texts, sweep for redundant
// pages, then either write the cleaned PDF or (in dry-run mode) stop after
// the report.
func Clean(opts Options) (*Report, error) {
	texts, err := pageTexts(opts)
	if err != nil {
		return nil, err
	}

	report := BuildReport(texts, opts.Threshold)

	if opts.Verbose {
		for _, idx := range report.Dropped {
			logging.Log.Infof("Removing slide %d (merged into %d)", idx+1, idx+2)
		}
	}

	if opts.DryRun {
		return report, nil
	}

	if err := assembler.CopyPages(opts.InputPath, opts.OutputPath, report.Kept); err != nil {
		return nil, err
	}
	return report, nil
}

// pageTexts extracts the normalized per-page text of the input, going
// through the cache when one is configured. Cache failures degrade to plain
// extraction instead of failing the run.
func pageTexts(opts Options) ([]string, error) {
	if opts.CacheDir == "" {
		return extractTexts(opts.InputPath)
	}

	store, err := cache.Open(opts.CacheDir)
	if err != nil {
		logging.Log.Warnf("Page-text cache unavailable, extracting directly: %v", err)
		return extractTexts(opts.InputPath)
	}
	defer store.Close()

	key, err := cache.FileKey(opts.InputPath)
	if err != nil {
		logging.Log.Warnf("Failed to hash input for caching, extracting directly: %v", err)
		return extractTexts(opts.InputPath)
	}

	if texts, ok, err := store.Get(key); err != nil {
		logging.Log.Warnf("Failed to read page-text cache: %v", err)
	} else if ok {
		logging.Log.Debugf("Cache hit for %s", opts.InputPath)
		return texts, nil
	}

	texts, err := extractTexts(opts.InputPath)
	if err != nil {
		return nil, err
	}
	if err := store.Put(key, texts); err != nil {
		logging.Log.Warnf("Failed to cache page texts: %v", err)
	}
	return texts, nil
}

func extractTexts(path string) ([]string, error) {
	doc, err := extractor.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input document: %v", err)
	}
	defer doc.Close()

	return doc.PageTexts(), nil
}
