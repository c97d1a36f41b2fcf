package loader

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/branch-locator/app/models"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Options shape the directory produced from rows
type Options struct {
	Fields Fields
	Locale language.Tag
	Scope  models.RegionScope
}

// DefaultOptions Arabic collation, original header names, region-name keying
func DefaultOptions() Options {
	return Options{
		Fields: DefaultFields(),
		Locale: language.Arabic,
		Scope:  models.ScopeRegionName,
	}
}

// Loader fetch → decode → parse → build pipeline for one source
type Loader struct {
	source Source
	opts   Options
	logger *zap.Logger
}

// New creates a loader for source
func New(source Source, opts Options, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Locale == language.Und {
		opts.Locale = language.Arabic
	}
	return &Loader{source: source, opts: opts, logger: logger}
}

// ReadRows fetches and parses the source without building a directory
func (l *Loader) ReadRows(ctx context.Context) ([]Row, error) {
	rc, err := l.source.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	if strings.EqualFold(path.Ext(l.source.Name()), ".xlsx") {
		return ParseXLSX(rc)
	}
	return ParseCSV(Decode(rc))
}

// Load runs the whole pipeline. Any failure aborts the load; rows that lack a
// branch name are dropped silently.
func (l *Loader) Load(ctx context.Context) (*models.Directory, error) {
	start := time.Now()

	rows, err := l.ReadRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", l.source.Name(), err)
	}

	dir := Build(rows, l.opts)

	l.logger.Info("Directory loaded",
		zap.String("source", l.source.Name()),
		zap.Int("rows", len(rows)),
		zap.Int("cities", len(dir.Cities())),
		zap.Int("branches", dir.Len()),
		zap.Duration("elapsed", time.Since(start)))

	return dir, nil
}

// Build turns parsed rows into a directory
func Build(rows []Row, opts Options) *models.Directory {
	if opts.Locale == language.Und {
		opts.Locale = language.Arabic
	}
	b := NewBuilder(opts.Locale, opts.Scope)
	for _, row := range rows {
		if rec, ok := ExtractRecord(row, opts.Fields); ok {
			b.Add(rec)
		}
	}
	return b.Build()
}

// ReadAll is a convenience wrapper parsing CSV text held in memory
func ReadAll(r io.Reader, opts Options) (*models.Directory, error) {
	rows, err := ParseCSV(Decode(r))
	if err != nil {
		return nil, err
	}
	return Build(rows, opts), nil
}
