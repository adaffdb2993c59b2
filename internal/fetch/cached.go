package fetch

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/types"
)

const maxConcurrentFetches = 4

// CachedFetcher wraps posting retrieval with database-backed caching, so
// repeated ranking runs do not re-fetch every posting.
type CachedFetcher struct {
	db        *db.DB
	options   *Options
	cacheTTL  time.Duration
	skipCache bool
}

// CachedFetcherConfig holds configuration for the cached fetcher.
type CachedFetcherConfig struct {
	CacheTTL  time.Duration
	SkipCache bool
	Options   *Options
}

// NewCachedFetcher creates a cached fetcher. A nil database disables caching
// and every call fetches fresh content.
func NewCachedFetcher(database *db.DB, config *CachedFetcherConfig) *CachedFetcher {
	if config == nil {
		config = &CachedFetcherConfig{}
	}
	if config.Options == nil {
		config.Options = DefaultOptions()
	}
	if config.CacheTTL == 0 {
		config.CacheTTL = db.DefaultPostingTTL
	}
	return &CachedFetcher{
		db:        database,
		options:   config.Options,
		cacheTTL:  config.CacheTTL,
		skipCache: config.SkipCache,
	}
}

// Posting retrieves a job posting, serving from cache when a fresh copy
// exists. The second return reports whether the result came from cache.
func (f *CachedFetcher) Posting(ctx context.Context, urlStr string) (*types.JobPosting, bool, error) {
	if !f.skipCache && f.db != nil {
		cached, err := f.db.GetFreshJobPosting(ctx, urlStr)
		if err != nil {
			return nil, false, err
		}
		if cached != nil {
			return &types.JobPosting{
				ID:          cached.ID.String(),
				Title:       cached.Title,
				Company:     cached.Company,
				Location:    cached.Location,
				Description: cached.Description,
				URL:         cached.URL,
			}, true, nil
		}
	}

	posting, err := Posting(ctx, urlStr, f.options)
	if err != nil {
		return nil, false, err
	}

	if f.db != nil {
		if rec, saveErr := f.db.UpsertJobPosting(ctx, posting, f.cacheTTL); saveErr == nil {
			posting.ID = rec.ID.String()
		}
	}

	return posting, false, nil
}

// PostingMultiple fetches several posting URLs concurrently. Results line up
// with the input slice; a failed fetch leaves a nil entry and its error in
// the errors slice.
func (f *CachedFetcher) PostingMultiple(ctx context.Context, urls []string) ([]*types.JobPosting, []error) {
	postings := make([]*types.JobPosting, len(urls))
	errors := make([]error, len(urls))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)
	for i, urlStr := range urls {
		g.Go(func() error {
			posting, _, err := f.Posting(gctx, urlStr)
			if err != nil {
				errors[i] = err
				return nil
			}
			postings[i] = posting
			return nil
		})
	}
	_ = g.Wait()

	return postings, errors
}
