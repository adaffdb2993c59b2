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

var parseResumeCmd = &cobra.Command{
	Use:   "parse-resume",
	Short: "Parse a resume file into structured JSON",
	Long:  "Parse a resume (PDF, DOCX, or plain text) into structured JSON with contact info, experience, education, skills, projects, and certifications.",
	RunE:  runParseResume,
}

var (
	resumeInputFile  string
	resumeOutputFile string
	resumeSave       bool
)

func init() {
	parseResumeCmd.Flags().StringVarP(&resumeInputFile, "in", "i", "", "Path to resume file (required)")
	parseResumeCmd.Flags().StringVarP(&resumeOutputFile, "out", "o", "", "Path to output JSON file")
	parseResumeCmd.Flags().BoolVar(&resumeSave, "save", false, "Persist the parsed resume to the database")
	_ = parseResumeCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(parseResumeCmd)
}

func runParseResume(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	text, err := ingestion.Load(resumeInputFile)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	resume, err := parsing.NewResumeParser().Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse resume: %w", err)
	}
	resume.SourceFile = resumeInputFile

	if err := validateOutput(schemas.ResumeSchema, resume); err != nil {
		return err
	}

	observability.NewPrinter(os.Stdout).PrintResume(resume)

	if resumeOutputFile != "" {
		if err := writeJSON(resumeOutputFile, resume); err != nil {
			return err
		}
		fmt.Printf("Output: %s\n", resumeOutputFile)
	}

	if resumeSave {
		ctx := context.Background()
		database, err := openDatabase(ctx, cfg)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		if database == nil {
			return fmt.Errorf("--save requires DATABASE_URL to be configured")
		}
		defer database.Close()

		id, err := database.SaveResume(ctx, resume)
		if err != nil {
			return err
		}
		fmt.Printf("Saved resume: %s\n", id)
	}

	return nil
}
