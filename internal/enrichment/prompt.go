package enrichment

import "fmt"

// SystemPrompt asks for the four analysis fields as a JSON object.
const SystemPrompt = "You are an AI assistant that summarizes, analyzes sentiment, " +
	"extracts topics, and recommends related content. " +
	"Return a JSON object with keys: summary, sentiment, topics, recommendations."

// FreeformSystemPrompt is the same task without the JSON instruction.
// It backs the standalone analysis endpoint, which returns raw model text.
const FreeformSystemPrompt = "You are an AI assistant that summarizes, analyzes sentiment, " +
	"extracts topics, and recommends related content."

// UserPrompt embeds the text to analyze.
func UserPrompt(text string) string {
	return fmt.Sprintf("Summarize, analyze sentiment, extract topics, and recommend related content for: %s", text)
}
