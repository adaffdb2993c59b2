package vectorstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/types"
)

func TestStoreSearchRanksBySimilarity(t *testing.T) {
	store := NewStore()
	store.Add("resume",
		Chunk{ID: "a", Type: TypeSummary, Vector: []float32{1, 0, 0}},
		Chunk{ID: "b", Type: TypeSummary, Vector: []float32{0.9, 0.1, 0}},
		Chunk{ID: "c", Type: TypeSummary, Vector: []float32{0, 1, 0}},
	)

	hits := store.Search("resume", []float32{1, 0, 0}, 2)
	require.Len(t, hits, 2)
	assert.Equal(t, "a", hits[0].Chunk.ID)
	assert.Equal(t, "b", hits[1].Chunk.ID)
	assert.Greater(t, hits[0].Similarity, hits[1].Similarity)
}

func TestStoreSearchTypeFilter(t *testing.T) {
	store := NewStore()
	store.Add("resume",
		Chunk{ID: "sum", Type: TypeSummary, Vector: []float32{1, 0}},
		Chunk{ID: "bul", Type: TypeExperienceBullet, Vector: []float32{1, 0}},
	)

	hits := store.Search("resume", []float32{1, 0}, 10, TypeExperienceBullet)
	require.Len(t, hits, 1)
	assert.Equal(t, "bul", hits[0].Chunk.ID)
}

func TestStoreSearchTopKBounds(t *testing.T) {
	store := NewStore()
	store.Add("resume",
		Chunk{ID: "a", Type: TypeSummary, Vector: []float32{1, 0}},
		Chunk{ID: "b", Type: TypeSummary, Vector: []float32{0, 1}},
		Chunk{ID: "c", Type: TypeExperienceBullet, Vector: []float32{1, 1}},
	)

	// k larger than the matching count returns everything that matches
	assert.Len(t, store.Search("resume", []float32{1, 0}, 10), 3)
	assert.Len(t, store.Search("resume", []float32{1, 0}, 10, TypeSummary), 2)

	// k smaller than the matching count returns exactly k
	assert.Len(t, store.Search("resume", []float32{1, 0}, 1), 1)
	assert.Len(t, store.Search("resume", []float32{1, 0}, 2, TypeSummary), 2)
}

func TestStoreSearchEmptyCollection(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.Search("nothing", []float32{1}, 5))
}

func TestStoreResetAndCount(t *testing.T) {
	store := NewStore()
	store.Add("jobs", Chunk{ID: "x"})
	assert.Equal(t, 1, store.Count("jobs"))

	store.Reset("jobs")
	assert.Zero(t, store.Count("jobs"))
}

// unitEmbedder emits fixed-direction vectors so indexing is deterministic.
type unitEmbedder struct{ dim int }

func (u *unitEmbedder) Dimension() int { return u.dim }

func (u *unitEmbedder) Embed(_ context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, text := range texts {
		v := make([]float32, u.dim)
		v[len(text)%u.dim] = 1
		out[i] = v
	}
	return out, nil
}

func TestIndexResumeGranularity(t *testing.T) {
	store := NewStore()
	indexer := NewIndexer(embedding.NewService(&unitEmbedder{dim: 16}), store)

	resume := &types.Resume{
		Summary: "Data engineer with streaming experience.",
		Experience: []types.Experience{
			{
				Company: "Acme",
				Title:   "Senior Data Engineer",
				Bullets: []string{"Built pipelines.", "Cut latency."},
			},
		},
		Education: []types.Education{
			{Degree: "B.S.", FieldOfStudy: "Computer Science", Institution: "State University"},
		},
		Skills: []string{"Python", "SQL"},
		Projects: []types.Project{
			{Name: "Lakehouse", Bullets: []string{"Migrated marts."}},
		},
	}

	n, err := indexer.IndexResume(context.Background(), "resume", resume)
	require.NoError(t, err)

	// summary + experience + 2 bullets + education + skills + project
	assert.Equal(t, 7, n)
	assert.Equal(t, 7, store.Count("resume"))

	counts := map[string]int{}
	for _, hit := range store.Search("resume", []float32{1}, 100) {
		counts[hit.Chunk.Type]++
		assert.NotEmpty(t, hit.Chunk.ID)
	}
	assert.Equal(t, 1, counts[TypeSummary])
	assert.Equal(t, 1, counts[TypeExperience])
	assert.Equal(t, 2, counts[TypeExperienceBullet])
	assert.Equal(t, 1, counts[TypeEducation])
	assert.Equal(t, 1, counts[TypeSkills])
	assert.Equal(t, 1, counts[TypeProject])
}

func TestIndexJobGranularity(t *testing.T) {
	store := NewStore()
	indexer := NewIndexer(embedding.NewService(&unitEmbedder{dim: 16}), store)

	jd := &types.JobDescription{
		Overview:         "We build data platforms.",
		Responsibilities: []string{"Design pipelines.", "Own ingestion."},
		Requirements: []types.JobRequirement{
			{Category: types.CategoryRequired, Description: "5 years of Python"},
		},
		RequiredSkills:  []string{"Python", "SQL"},
		PreferredSkills: []string{"Terraform"},
	}

	n, err := indexer.IndexJob(context.Background(), "job", jd)
	require.NoError(t, err)
	assert.Equal(t, 6, n)

	hits := store.Search("job", []float32{1}, 100, TypeJobRequirement)
	require.Len(t, hits, 1)
	assert.Equal(t, types.CategoryRequired, hits[0].Chunk.Metadata["category"])
}

func TestIndexEmptyResume(t *testing.T) {
	store := NewStore()
	indexer := NewIndexer(embedding.NewService(&unitEmbedder{dim: 4}), store)

	n, err := indexer.IndexResume(context.Background(), "resume", &types.Resume{})
	require.NoError(t, err)
	assert.Zero(t, n)
}
