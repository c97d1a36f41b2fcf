package services

import (
	"context"
	"sync"
	"time"

	"github.com/branch-locator/app/models"
	"github.com/branch-locator/helpers/utils"
	"github.com/branch-locator/internal/loader"
	"go.uber.org/zap"
)

// DirectoryLoader produces a directory from the real data source
type DirectoryLoader interface {
	Load(ctx context.Context) (*models.Directory, error)
}

// LoadResult outcome of the one-shot load. Directory is never nil.
type LoadResult struct {
	Directory *models.Directory
	Fallback  bool   // sample data is in use
	Warning   string // user-facing, non-blocking; set only when loading failed
	Err       error  // the failure behind Warning, for logs and tests
	LoadID    string
	Elapsed   time.Duration
}

// DirectoryService loads the directory once and substitutes the sample
// dataset when the real one is unavailable or empty
type DirectoryService struct {
	loader  DirectoryLoader
	opts    loader.Options
	warning string
	logger  *zap.Logger

	once   sync.Once
	result LoadResult
}

// NewDirectoryService creates the service; warning is the localized message
// shown when the fallback is forced by a failure
func NewDirectoryService(l DirectoryLoader, opts loader.Options, warning string, logger *zap.Logger) *DirectoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryService{
		loader:  l,
		opts:    opts,
		warning: warning,
		logger:  logger,
	}
}

// Load runs the load on first call and returns the same result afterwards.
// It never fails: errors become fallback data plus a warning.
func (s *DirectoryService) Load(ctx context.Context) LoadResult {
	s.once.Do(func() {
		s.result = s.load(ctx)
	})
	return s.result
}

func (s *DirectoryService) load(ctx context.Context) LoadResult {
	start := time.Now()
	res := LoadResult{LoadID: utils.GenerateShortID()}
	log := s.logger.With(zap.String("load_id", res.LoadID))

	dir, err := s.loader.Load(ctx)
	switch {
	case err != nil:
		log.Warn("Cannot load branch data, using sample data", zap.Error(err))
		res.Directory = loader.Fallback(s.opts.Locale, s.opts.Scope)
		res.Fallback = true
		res.Warning = s.warning
		res.Err = err
	case dir.IsEmpty():
		log.Warn("Branch data is empty, using sample data")
		res.Directory = loader.Fallback(s.opts.Locale, s.opts.Scope)
		res.Fallback = true
	default:
		res.Directory = dir
	}

	res.Elapsed = time.Since(start)
	log.Info("Directory ready",
		zap.Bool("fallback", res.Fallback),
		zap.Int("cities", len(res.Directory.Cities())),
		zap.Int("branches", res.Directory.Len()),
		zap.Duration("elapsed", res.Elapsed))
	return res
}
