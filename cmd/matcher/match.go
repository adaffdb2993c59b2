package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a job description",
	Long:  "Parse a resume and a job description, then score the fit: keyword skill coverage blended with embedding-based semantic similarity when an embedding endpoint is configured.",
	RunE:  runMatch,
}

var (
	matchResumeFile string
	matchJobFile    string
	matchJobURL     string
	matchOutputFile string
	matchNoSemantic bool
	matchAdvise     bool
	matchSave       bool
)

func init() {
	matchCmd.Flags().StringVarP(&matchResumeFile, "resume", "r", "", "Path to resume file (required)")
	matchCmd.Flags().StringVarP(&matchJobFile, "job", "j", "", "Path to job description file")
	matchCmd.Flags().StringVar(&matchJobURL, "job-url", "", "Job posting URL to fetch")
	matchCmd.Flags().StringVarP(&matchOutputFile, "out", "o", "", "Path to output JSON file")
	matchCmd.Flags().BoolVar(&matchNoSemantic, "no-semantic", false, "Skip semantic scoring even when an embedding endpoint is configured")
	matchCmd.Flags().BoolVar(&matchAdvise, "advise", false, "Generate improvement advice with Gemini (requires GEMINI_API_KEY)")
	matchCmd.Flags().BoolVar(&matchSave, "save", false, "Persist documents and analysis to the database")
	_ = matchCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(_ *cobra.Command, _ []string) error {
	if (matchJobFile == "") == (matchJobURL == "") {
		return fmt.Errorf("provide exactly one of --job or --job-url")
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

	resume, err := parseResumeFile(matchResumeFile)
	if err != nil {
		return err
	}

	jd, err := parseJobInput(ctx, cfg, database, matchJobFile, matchJobURL)
	if err != nil {
		return err
	}

	engine := newEngine(cfg, !matchNoSemantic)
	analysis, err := engine.Match(ctx, resume, jd)
	if err != nil {
		return fmt.Errorf("failed to compute match: %w", err)
	}

	if matchAdvise {
		advice, adviceErr := generateAdvice(ctx, cfg, resume, jd, analysis)
		if adviceErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: advice generation failed: %v\n", adviceErr)
		} else {
			analysis.Suggestions = advice
		}
	}

	if err := validateOutput(schemas.MatchAnalysisSchema, analysis); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintMatchAnalysis(analysis)

	if matchOutputFile != "" {
		if err := writeJSON(matchOutputFile, analysis); err != nil {
			return err
		}
		fmt.Printf("Output: %s\n", matchOutputFile)
	}

	if matchSave {
		if database == nil {
			return fmt.Errorf("--save requires DATABASE_URL to be configured")
		}
		resumeID, err := database.SaveResume(ctx, resume)
		if err != nil {
			return err
		}
		jobID, err := database.SaveJobDescription(ctx, jd)
		if err != nil {
			return err
		}
		analysisID, err := database.SaveAnalysis(ctx, resumeID, jobID, analysis)
		if err != nil {
			return err
		}
		fmt.Printf("Saved analysis: %s\n", analysisID)
	}

	return nil
}

func parseResumeFile(path string) (*types.Resume, error) {
	text, err := ingestion.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	resume, err := parsing.NewResumeParser().Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume: %w", err)
	}
	resume.SourceFile = path
	return resume, nil
}

func parseJobInput(ctx context.Context, cfg *config.Config, database *db.DB, file, url string) (*types.JobDescription, error) {
	var text string
	if url != "" {
		posting, err := fetchPosting(ctx, cfg, database, url)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch job posting: %w", err)
		}
		text = posting.Description
		if posting.Title != "" {
			text = posting.Title + "\n" + text
		}
	} else {
		var err error
		text, err = ingestion.Load(file)
		if err != nil {
			return nil, fmt.Errorf("failed to load job description: %w", err)
		}
	}

	jd, err := parsing.NewJobDescriptionParser().Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse job description: %w", err)
	}
	if url != "" {
		jd.URL = url
	} else {
		jd.SourceFile = file
	}
	return jd, nil
}

func generateAdvice(ctx context.Context, cfg *config.Config, resume *types.Resume, jd *types.JobDescription, analysis *types.MatchAnalysis) ([]string, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is not set")
	}

	client, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, "")
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Close() }()

	return llm.NewAdvisor(client).Suggestions(ctx, resume, jd, analysis), nil
}
