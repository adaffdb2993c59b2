package matching

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/parsing"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vectorstore"
)

const (
	// Weight constants for score components.
	defaultKeywordWeight  = 0.6
	defaultSemanticWeight = 0.4

	// defaultSimilarityThreshold is the cosine similarity below which a
	// requirement-to-bullet pair does not count as a semantic match.
	defaultSimilarityThreshold = 0.5

	// defaultRankFloor excludes jobs scoring at or below it from ranking
	// results. A score of exactly the floor is out.
	defaultRankFloor = 10.0

	// bulletsPerRequirement bounds how many resume chunks each job
	// requirement is compared against. Only the closest one is scored.
	bulletsPerRequirement = 2

	// maxQueriesPerSection caps how many responsibilities and requirements
	// each drive the semantic stage.
	maxQueriesPerSection = 5

	// minStrongMatches is how many requirements should land before the
	// analysis stops suggesting resume rewording.
	minStrongMatches = 3

	maxConcurrentJobs = 8
)

// Config tunes the engine's scoring. Zero values fall back to the defaults.
type Config struct {
	KeywordWeight       float64
	SemanticWeight      float64
	SimilarityThreshold float64
	RankFloor           float64
}

func (c Config) withDefaults() Config {
	if c.KeywordWeight == 0 && c.SemanticWeight == 0 {
		c.KeywordWeight = defaultKeywordWeight
		c.SemanticWeight = defaultSemanticWeight
	}
	if c.SimilarityThreshold == 0 {
		c.SimilarityThreshold = defaultSimilarityThreshold
	}
	if c.RankFloor == 0 {
		c.RankFloor = defaultRankFloor
	}
	return c
}

// Engine scores resumes against job descriptions. The keyword stage always
// runs; the semantic stage runs when an embedding service is configured and
// reachable, and silently degrades to keyword-only scoring otherwise.
type Engine struct {
	skills   *SkillMatcher
	embedder *embedding.Service // nil disables the semantic stage
	store    *vectorstore.Store
	cfg      Config
}

// NewEngine builds an engine. embedder may be nil for keyword-only scoring.
func NewEngine(skills *SkillMatcher, embedder *embedding.Service, store *vectorstore.Store, cfg Config) *Engine {
	if store == nil {
		store = vectorstore.NewStore()
	}
	return &Engine{skills: skills, embedder: embedder, store: store, cfg: cfg.withDefaults()}
}

// Match produces the full analysis for one resume against one job
// description.
func (e *Engine) Match(ctx context.Context, resume *types.Resume, jd *types.JobDescription) (*types.MatchAnalysis, error) {
	analysis := &types.MatchAnalysis{
		KeywordMatch: e.skills.Match(jd.RequiredSkills, resume),
	}
	analysis.SemanticMatch = e.semanticMatch(ctx, resume, jd)

	if analysis.SemanticMatch.Available {
		analysis.OverallScore = analysis.KeywordMatch.Percentage*e.cfg.KeywordWeight +
			analysis.SemanticMatch.Percentage*e.cfg.SemanticWeight
	} else {
		analysis.OverallScore = analysis.KeywordMatch.Percentage
	}

	// Postings that list no required skills still drive suggestions from
	// their technologies; the keyword score stays on required skills only.
	missing := analysis.KeywordMatch.MissingSkills
	if len(jd.RequiredSkills) == 0 && len(jd.Technologies) > 0 {
		missing = e.skills.Match(jd.Technologies, resume).MissingSkills
	}

	declared := append(append([]string{}, resume.Skills...), resume.GenAISkills...)
	analysis.SkillPointers = e.skills.Suggest(missing, declared)
	analysis.Suggestions = e.buildSuggestions(analysis)

	return analysis, nil
}

// semanticMatch indexes the resume, then compares the job's leading
// responsibilities and requirements against its experience bullets. Each
// query contributes its single closest bullet to the mean when that
// similarity clears the threshold; a job with no counted pair scores zero.
func (e *Engine) semanticMatch(ctx context.Context, resume *types.Resume, jd *types.JobDescription) types.SemanticMatch {
	if e.embedder == nil {
		return types.SemanticMatch{}
	}

	collection := "match-" + uuid.NewString()
	defer e.store.Reset(collection)

	indexer := vectorstore.NewIndexer(e.embedder, e.store)
	if _, err := indexer.IndexResume(ctx, collection, resume); err != nil {
		return types.SemanticMatch{}
	}

	queries := append([]string{}, jd.Responsibilities[:min(len(jd.Responsibilities), maxQueriesPerSection)]...)
	for _, req := range jd.Requirements[:min(len(jd.Requirements), maxQueriesPerSection)] {
		queries = append(queries, req.Description)
	}
	if len(queries) == 0 && jd.Overview != "" {
		queries = append(queries, jd.Overview)
	}
	if len(queries) == 0 {
		return types.SemanticMatch{Available: true}
	}

	vectors, err := e.embedder.EmbedTexts(ctx, queries)
	if err != nil {
		return types.SemanticMatch{}
	}

	result := types.SemanticMatch{Available: true}
	var total float64
	var counted int
	for i, query := range queries {
		hits := e.store.Search(collection, vectors[i], bulletsPerRequirement, vectorstore.TypeExperienceBullet)
		if len(hits) == 0 || hits[0].Similarity < e.cfg.SimilarityThreshold {
			continue
		}
		total += hits[0].Similarity
		counted++
		result.TopMatches = append(result.TopMatches, types.SemanticHit{
			Requirement: query,
			MatchedText: hits[0].Chunk.Text,
			Similarity:  hits[0].Similarity,
		})
	}

	if counted > 0 {
		result.Percentage = total / float64(counted) * 100
	}

	sort.SliceStable(result.TopMatches, func(i, j int) bool {
		return result.TopMatches[i].Similarity > result.TopMatches[j].Similarity
	})
	return result
}

// buildSuggestions writes reader-facing advice when the analysis looks weak:
// a thin semantic overlap, too few requirement matches, or missing skills
// that near-matches could cover.
func (e *Engine) buildSuggestions(analysis *types.MatchAnalysis) []string {
	var suggestions []string

	if analysis.SemanticMatch.Available {
		if analysis.SemanticMatch.Percentage < e.cfg.SimilarityThreshold*100 {
			suggestions = append(suggestions, "experience bullets overlap weakly with this job's responsibilities; reword top bullets toward the posting's language")
		}
		if len(analysis.SemanticMatch.TopMatches) < minStrongMatches {
			suggestions = append(suggestions, fmt.Sprintf("only %d requirement(s) matched experience strongly; surface more directly relevant work", len(analysis.SemanticMatch.TopMatches)))
		}
	}

	for _, pointer := range analysis.SkillPointers {
		suggestions = append(suggestions, pointer.Suggestion)
	}
	if len(analysis.KeywordMatch.MissingSkills) > 0 && len(analysis.SkillPointers) == 0 {
		suggestions = append(suggestions, "missing required skills: "+strings.Join(analysis.KeywordMatch.MissingSkills, ", "))
	}

	return suggestions
}

// RankJobs embeds the resume once and scores every posting against it,
// returning matches above the rank floor in descending score order. Postings
// are scored concurrently. When the embedding service is missing or fails the
// ranking falls back to keyword percentage against skills mined from each
// posting body.
func (e *Engine) RankJobs(ctx context.Context, resume *types.Resume, jobs []types.JobPosting) ([]types.JobMatch, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	resumeVector, err := e.embedResume(ctx, resume)
	if err != nil || resumeVector == nil {
		return e.rankByKeywords(resume, jobs), nil
	}

	scores := make([]float64, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentJobs)
	for i, job := range jobs {
		g.Go(func() error {
			text := strings.TrimSpace(job.Title + " " + job.Description)
			vector, err := e.embedder.EmbedText(gctx, text)
			if err != nil {
				return err
			}
			scores[i] = embedding.CosineSimilarity(resumeVector, vector) * 100
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return e.rankByKeywords(resume, jobs), nil
	}

	var matches []types.JobMatch
	for i, job := range jobs {
		if scores[i] > e.cfg.RankFloor {
			matches = append(matches, types.JobMatch{Job: job, SimilarityScore: scores[i]})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})
	return matches, nil
}

func (e *Engine) embedResume(ctx context.Context, resume *types.Resume) ([]float32, error) {
	if e.embedder == nil {
		return nil, nil
	}

	text := resume.RawText
	if strings.TrimSpace(text) == "" {
		parts := []string{resume.Summary, strings.Join(resume.Skills, ", "), resume.ExperienceText()}
		text = strings.TrimSpace(strings.Join(parts, " "))
	}
	return e.embedder.EmbedText(ctx, text)
}

// rankByKeywords is the degraded ranking path: score each posting by the
// share of its mined skills the resume covers.
func (e *Engine) rankByKeywords(resume *types.Resume, jobs []types.JobPosting) []types.JobMatch {
	var matches []types.JobMatch
	for _, job := range jobs {
		skills := parsing.MineSkills(job.Title + "\n" + job.Description)
		score := e.skills.Match(skills, resume).Percentage
		if score > e.cfg.RankFloor {
			matches = append(matches, types.JobMatch{Job: job, SimilarityScore: score})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].SimilarityScore > matches[j].SimilarityScore
	})
	return matches
}
