package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var rankJobsCmd = &cobra.Command{
	Use:   "rank-jobs",
	Short: "Rank multiple job postings against a resume",
	Long:  "Score a resume against a set of job postings and list the ones above the match floor, best first. Postings come from a JSON file, from URLs, or from the posting cache in the database.",
	RunE:  runRankJobs,
}

var (
	rankResumeFile string
	rankJobsFile   string
	rankURLs       []string
	rankFromDB     bool
	rankOutputFile string
)

func init() {
	rankJobsCmd.Flags().StringVarP(&rankResumeFile, "resume", "r", "", "Path to resume file (required)")
	rankJobsCmd.Flags().StringVar(&rankJobsFile, "jobs", "", "Path to JSON file with an array of job postings")
	rankJobsCmd.Flags().StringArrayVar(&rankURLs, "url", nil, "Job posting URL to fetch (repeatable)")
	rankJobsCmd.Flags().BoolVar(&rankFromDB, "from-db", false, "Rank cached postings from the database")
	rankJobsCmd.Flags().StringVarP(&rankOutputFile, "out", "o", "", "Path to output JSON file")
	_ = rankJobsCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(rankJobsCmd)
}

func runRankJobs(_ *cobra.Command, _ []string) error {
	sources := 0
	if rankJobsFile != "" {
		sources++
	}
	if len(rankURLs) > 0 {
		sources++
	}
	if rankFromDB {
		sources++
	}
	if sources != 1 {
		return fmt.Errorf("provide exactly one of --jobs, --url, or --from-db")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := context.Background()
	database, err := openDatabase(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if database != nil {
		defer database.Close()
	}

	resume, err := parseResumeFile(rankResumeFile)
	if err != nil {
		return err
	}

	var jobs []types.JobPosting
	switch {
	case rankJobsFile != "":
		jobs, err = loadPostingsFile(rankJobsFile)
		if err != nil {
			return err
		}
	case len(rankURLs) > 0:
		jobs, err = fetchPostings(ctx, cfg, database, rankURLs)
		if err != nil {
			return err
		}
	case rankFromDB:
		if database == nil {
			return fmt.Errorf("--from-db requires DATABASE_URL to be configured")
		}
		jobs, err = database.ListActivePostings(ctx, 0)
		if err != nil {
			return err
		}
	}

	if len(jobs) == 0 {
		return fmt.Errorf("no job postings to rank")
	}

	engine := newEngine(cfg, true)
	matches, err := engine.RankJobs(ctx, resume, jobs)
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintJobMatches(matches)

	if rankOutputFile != "" {
		if err := writeJSON(rankOutputFile, matches); err != nil {
			return err
		}
		fmt.Printf("Output: %s\n", rankOutputFile)
	}

	return nil
}

func loadPostingsFile(path string) ([]types.JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs file: %w", err)
	}
	var jobs []types.JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to decode jobs file: %w", err)
	}
	return jobs, nil
}

func fetchPostings(ctx context.Context, cfg *config.Config, database *db.DB, urls []string) ([]types.JobPosting, error) {
	opts := fetch.DefaultOptions()
	opts.UseBrowser = cfg.UseBrowser
	fetcher := fetch.NewCachedFetcher(database, &fetch.CachedFetcherConfig{Options: opts})

	postings, errs := fetcher.PostingMultiple(ctx, urls)

	var jobs []types.JobPosting
	for i, posting := range postings {
		if errs[i] != nil {
			fmt.Fprintf(os.Stderr, "Warning: skipping %s: %v\n", urls[i], errs[i])
			continue
		}
		jobs = append(jobs, *posting)
	}
	return jobs, nil
}
