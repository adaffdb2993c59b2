package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/schemas"
)

var parseJobCmd = &cobra.Command{
	Use:   "parse-job",
	Short: "Parse a job description into structured JSON",
	Long:  "Parse a job description from a local file or a job board URL into structured JSON with responsibilities, requirements, and extracted skills.",
	RunE:  runParseJob,
}

var (
	jobInputFile  string
	jobURL        string
	jobOutputFile string
	jobSave       bool
)

func init() {
	parseJobCmd.Flags().StringVarP(&jobInputFile, "in", "i", "", "Path to job description file")
	parseJobCmd.Flags().StringVarP(&jobURL, "url", "u", "", "Job posting URL to fetch")
	parseJobCmd.Flags().StringVarP(&jobOutputFile, "out", "o", "", "Path to output JSON file")
	parseJobCmd.Flags().BoolVar(&jobSave, "save", false, "Persist the parsed job description to the database")

	rootCmd.AddCommand(parseJobCmd)
}

func runParseJob(_ *cobra.Command, _ []string) error {
	if (jobInputFile == "") == (jobURL == "") {
		return fmt.Errorf("provide exactly one of --in or --url")
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

	var text, source string
	if jobURL != "" {
		posting, err := fetchPosting(ctx, cfg, database, jobURL)
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
		text = posting.Description
		if posting.Title != "" {
			text = posting.Title + "\n" + text
		}
		source = jobURL
	} else {
		text, err = ingestion.Load(jobInputFile)
		if err != nil {
			return fmt.Errorf("failed to load job description: %w", err)
		}
		source = jobInputFile
	}

	jd, err := parsing.NewJobDescriptionParser().Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse job description: %w", err)
	}
	if jobURL != "" {
		jd.URL = jobURL
	} else {
		jd.SourceFile = source
	}

	if err := validateOutput(schemas.JobDescriptionSchema, jd); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintJobDescription(jd)

	if jobOutputFile != "" {
		if err := writeJSON(jobOutputFile, jd); err != nil {
			return err
		}
		fmt.Printf("Output: %s\n", jobOutputFile)
	}

	if jobSave {
		if database == nil {
			return fmt.Errorf("--save requires DATABASE_URL to be configured")
		}
		id, err := database.SaveJobDescription(ctx, jd)
		if err != nil {
			return err
		}
		fmt.Printf("Saved job description: %s\n", id)
	}

	return nil
}
