package gemini

import (
	"context"
	"fmt"
	"strings"

	"ai-topiclist-be/pkg/llm"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const roleModel = "model"

type GeminiProvider struct {
	client    *genai.Client
	modelName string
}

var _ llm.LLMProvider = &GeminiProvider{}

func NewGeminiProvider(ctx context.Context, apiKey, modelName string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiProvider{client: client, modelName: modelName}, nil
}

func (g *GeminiProvider) Close() error {
	return g.client.Close()
}

func (g *GeminiProvider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	if len(history) == 0 {
		return "", fmt.Errorf("gemini: history is empty")
	}
	options := llm.ApplyOptions(llm.Options{Temperature: 0.7}, opts...)

	modelName := g.modelName
	if options.Model != "" {
		modelName = options.Model
	}
	model := g.client.GenerativeModel(modelName)
	model.SetTemperature(float32(options.Temperature))
	if options.MaxTokens > 0 {
		model.SetMaxOutputTokens(int32(options.MaxTokens))
	}

	contents, system := toContents(history)
	if system != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(system)}}
	}

	last := contents[len(contents)-1]
	if last.Role != llm.RoleUser {
		return "", fmt.Errorf("gemini: last message must come from the user")
	}

	session := model.StartChat()
	session.History = contents[:len(contents)-1]

	resp, err := session.SendMessage(ctx, last.Parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: send message: %w", err)
	}
	return collectText(resp)
}

func (g *GeminiProvider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return g.Chat(ctx, []llm.Message{{Role: llm.RoleUser, Content: prompt}}, opts...)
}

// toContents maps provider-agnostic messages onto genai contents. System
// messages are joined into a single instruction since genai carries it apart
// from the history.
func toContents(history []llm.Message) ([]*genai.Content, string) {
	var system []string
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := msg.Role
		switch role {
		case llm.RoleSystem:
			system = append(system, msg.Content)
			continue
		case llm.RoleAssistant, roleModel:
			role = roleModel
		default:
			role = llm.RoleUser
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents, strings.Join(system, "\n\n")
}

func collectText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", llm.ErrEmptyResponse
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", llm.ErrEmptyResponse
	}
	return sb.String(), nil
}
