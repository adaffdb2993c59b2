package llm

import "strings"

// fenceLanguage reports whether the text on an opening fence looks like a
// language tag rather than the start of the payload.
func fenceLanguage(s string) bool {
	return len(s) < 20 && !strings.ContainsAny(s, " {[")
}

// CleanJSONBlock unwraps a markdown code fence around a JSON payload. Models
// often fence their output even when instructed not to; anything that is not
// fenced passes through untouched.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := text[len("```"):]
	if nl := strings.Index(body, "\n"); nl >= 0 && fenceLanguage(body[:nl]) {
		body = body[nl+1:]
	}
	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
