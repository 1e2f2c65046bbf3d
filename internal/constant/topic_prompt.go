package constant

import "fmt"

const (
	TopicModelTemperature = 0.5
	TopicModelMaxTokens   = 1000

	topicListPromptTemplate = `User wants to learn: %s
Generate a topic list with this JSON structure:
{
  "title": "string",
  "sections": [
    {
      "name": "string",
      "topics": ["string", "string"]
    }
  ]
}

Return only the JSON object, no markdown, no code blocks, no extra text. Only return valid JSON.`
)

// TopicListPrompt embeds the learner's request in the fixed generation instruction.
func TopicListPrompt(message string) string {
	return fmt.Sprintf(topicListPromptTemplate, message)
}
