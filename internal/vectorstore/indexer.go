package vectorstore

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	embedBatchSize     = 32
	maxConcurrentBatch = 4
)

// Indexer chunks parsed documents, embeds the chunks, and loads them into a
// store.
type Indexer struct {
	embedder *embedding.Service
	store    *Store
}

// NewIndexer returns an indexer writing through the given embedding service.
func NewIndexer(embedder *embedding.Service, store *Store) *Indexer {
	return &Indexer{embedder: embedder, store: store}
}

// IndexResume chunks a resume into the collection and returns the chunk
// count. Experience entries contribute both a combined chunk and one chunk
// per bullet, so a single strong bullet can surface on its own.
func (ix *Indexer) IndexResume(ctx context.Context, collection string, resume *types.Resume) (int, error) {
	var chunks []Chunk

	if resume.Summary != "" {
		chunks = append(chunks, newChunk(TypeSummary, resume.Summary, nil))
	}

	for _, exp := range resume.Experience {
		meta := map[string]string{"company": exp.Company, "title": exp.Title}

		combined := exp.Title + " at " + exp.Company + ". " + strings.Join(exp.Bullets, " ")
		chunks = append(chunks, newChunk(TypeExperience, combined, meta))

		for _, bullet := range exp.Bullets {
			chunks = append(chunks, newChunk(TypeExperienceBullet, bullet, meta))
		}
	}

	for _, edu := range resume.Education {
		text := edu.Degree
		if edu.FieldOfStudy != "" {
			text += " in " + edu.FieldOfStudy
		}
		if edu.Institution != "" {
			text += " from " + edu.Institution
		}
		chunks = append(chunks, newChunk(TypeEducation, strings.TrimSpace(text), nil))
	}

	if len(resume.Skills) > 0 {
		chunks = append(chunks, newChunk(TypeSkills, strings.Join(resume.Skills, ", "), nil))
	}

	for _, project := range resume.Projects {
		text := project.Name
		if project.Description != "" {
			text += ". " + project.Description
		}
		text += " " + strings.Join(project.Bullets, " ")
		chunks = append(chunks, newChunk(TypeProject, strings.TrimSpace(text), nil))
	}

	return ix.load(ctx, collection, chunks)
}

// IndexJob chunks a job description into the collection and returns the
// chunk count.
func (ix *Indexer) IndexJob(ctx context.Context, collection string, jd *types.JobDescription) (int, error) {
	var chunks []Chunk

	if jd.Overview != "" {
		chunks = append(chunks, newChunk(TypeJobOverview, jd.Overview, nil))
	}
	for _, resp := range jd.Responsibilities {
		chunks = append(chunks, newChunk(TypeJobResponsibility, resp, nil))
	}
	for _, req := range jd.Requirements {
		chunks = append(chunks, newChunk(TypeJobRequirement, req.Description, map[string]string{"category": req.Category}))
	}
	if len(jd.RequiredSkills) > 0 {
		chunks = append(chunks, newChunk(TypeJobRequiredSkills, strings.Join(jd.RequiredSkills, ", "), nil))
	}
	if len(jd.PreferredSkills) > 0 {
		chunks = append(chunks, newChunk(TypePreferredSkills, strings.Join(jd.PreferredSkills, ", "), nil))
	}

	return ix.load(ctx, collection, chunks)
}

// load embeds chunks in bounded parallel batches and adds them to the store.
// On any batch failure nothing is added.
func (ix *Indexer) load(ctx context.Context, collection string, chunks []Chunk) (int, error) {
	if len(chunks) == 0 {
		return 0, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentBatch)

	// Batches are disjoint subslices, so each goroutine writes its own
	// elements.
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		g.Go(func() error {
			texts := make([]string, len(batch))
			for i, c := range batch {
				texts[i] = c.Text
			}
			vectors, err := ix.embedder.EmbedTexts(gctx, texts)
			if err != nil {
				return err
			}
			for i := range batch {
				batch[i].Vector = vectors[i]
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	ix.store.Add(collection, chunks...)
	return len(chunks), nil
}

func newChunk(chunkType, text string, metadata map[string]string) Chunk {
	return Chunk{
		ID:       uuid.NewString(),
		Type:     chunkType,
		Text:     text,
		Metadata: metadata,
	}
}
