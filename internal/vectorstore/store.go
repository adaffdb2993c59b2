// Package vectorstore keeps embedded document chunks in memory and answers
// nearest-neighbor queries over them. Corpora are small (one resume and a
// handful of job descriptions) so a brute-force scan beats any index.
package vectorstore

import (
	"sort"
	"sync"

	"github.com/jonathan/resume-matcher/internal/embedding"
)

// Chunk type tags for resume content.
const (
	TypeSummary          = "summary"
	TypeExperience       = "experience"
	TypeExperienceBullet = "experience_bullet"
	TypeEducation        = "education"
	TypeSkills           = "skills"
	TypeProject          = "project"
)

// Chunk type tags for job description content.
const (
	TypeJobOverview       = "jd_overview"
	TypeJobResponsibility = "jd_responsibility"
	TypeJobRequirement    = "jd_requirement"
	TypeJobRequiredSkills = "jd_required_skills"
	TypePreferredSkills   = "jd_preferred_skills"
)

// Chunk is one embedded piece of a document.
type Chunk struct {
	ID       string
	Type     string
	Text     string
	Vector   []float32
	Metadata map[string]string
}

// Hit pairs a chunk with its similarity to a query vector.
type Hit struct {
	Chunk      Chunk
	Similarity float64
}

// Store holds chunks grouped into named collections. Safe for concurrent
// use.
type Store struct {
	mu          sync.RWMutex
	collections map[string][]Chunk
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{collections: make(map[string][]Chunk)}
}

// Add appends chunks to a collection.
func (s *Store) Add(collection string, chunks ...Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = append(s.collections[collection], chunks...)
}

// Reset drops a collection.
func (s *Store) Reset(collection string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.collections, collection)
}

// Count reports how many chunks a collection holds.
func (s *Store) Count(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections[collection])
}

// Search returns the k most similar chunks to the query vector, highest
// first. When chunkTypes is non-empty only chunks of those types are
// considered.
func (s *Store) Search(collection string, query []float32, k int, chunkTypes ...string) []Hit {
	if k <= 0 {
		return nil
	}

	typeFilter := make(map[string]struct{}, len(chunkTypes))
	for _, t := range chunkTypes {
		typeFilter[t] = struct{}{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var hits []Hit
	for _, chunk := range s.collections[collection] {
		if len(typeFilter) > 0 {
			if _, ok := typeFilter[chunk.Type]; !ok {
				continue
			}
		}
		hits = append(hits, Hit{
			Chunk:      chunk,
			Similarity: embedding.CosineSimilarity(query, chunk.Vector),
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}
