package extracting

import (
	"regexp"
	"strings"
)

// maxGenAISkills caps the mined list; past thirty entries the signal is gone.
const maxGenAISkills = 30

// genAIKeywords are the curated tool and technique names worth surfacing from
// a dedicated GenAI skills section or from the body text.
var genAIKeywords = []string{
	"LLM", "LLMs", "GPT", "GPT-4", "ChatGPT", "Claude", "Llama", "Gemini",
	"OpenAI", "Azure OpenAI", "Hugging Face", "Transformers", "BERT",
	"LangChain", "LlamaIndex", "Semantic Kernel",
	"RAG", "Retrieval Augmented Generation",
	"Pinecone", "Chroma", "ChromaDB", "FAISS", "Weaviate", "Milvus", "Qdrant",
	"Vector Database", "Vector Search", "Embeddings",
	"Prompt Engineering", "Fine-tuning", "PEFT", "LoRA", "RLHF",
	"Agents", "Function Calling", "MCP",
}

// genAITerms match generically, catching entries the curated list misses.
var genAITerms = []string{
	"llm", "genai", "gen ai", "generative ai", "ai", "ml", "rag",
	"vector", "embedding", "prompt", "transformer", "langchain",
	"openai", "azure openai",
}

// genAISkipTerms are section-parse leftovers that look AI-adjacent but are
// process words, not skills.
var genAISkipTerms = map[string]struct{}{
	"similarity": {}, "matching": {}, "search": {}, "retrieval": {},
	"generation": {}, "analysis": {}, "processing": {}, "pipeline": {},
	"models": {}, "model": {}, "data": {},
}

// ExtractGenAISkills parses a dedicated GenAI skills section with the general
// skills rules, keeps only AI-relevant entries, and supplements them with
// curated keywords found anywhere in the raw document text.
func ExtractGenAISkills(sectionText, rawText string) []string {
	var skills []string

	for _, skill := range ExtractSkills(sectionText) {
		if isGenAISkill(skill) {
			skills = append(skills, skill)
		}
	}

	for _, kw := range genAIKeywords {
		if len(skills) >= maxGenAISkills {
			break
		}
		if wordBoundaryMatch(rawText, kw) {
			skills = append(skills, kw)
		}
	}

	skills = dedupeSkills(skills)
	if len(skills) > maxGenAISkills {
		skills = skills[:maxGenAISkills]
	}
	return skills
}

func isGenAISkill(skill string) bool {
	lower := strings.ToLower(skill)
	if _, skip := genAISkipTerms[lower]; skip {
		return false
	}
	for _, kw := range genAIKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	for _, term := range genAITerms {
		if lower == term || strings.Contains(lower, term+" ") || strings.Contains(lower, " "+term) {
			return true
		}
	}
	return false
}

func wordBoundaryMatch(text, keyword string) bool {
	pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(keyword) + `\b`)
	if err != nil {
		return false
	}
	return pattern.MatchString(text)
}
