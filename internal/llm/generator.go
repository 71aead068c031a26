// Package llm implements the high-tier word generator: the accumulated raw
// question/answer exchanges are handed to a chat model, which proposes the
// word directly instead of going through the clue store.
package llm

// #region imports
import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/pdekker/merlin-solver/internal/oracle"
)

// #endregion

// #region prompts

const systemPrompt = "You are a word puzzle solver. Given a transcript of " +
	"questions about a secret word and the answers, predict the most likely " +
	"word. Return only the word, nothing else."

// #endregion

// #region generator

// WordGenerator calls an OpenAI-compatible chat endpoint.
type WordGenerator struct {
	client *openai.Client
	model  string
}

// NewWordGenerator builds a generator. baseURL may be empty for the default
// endpoint; model may be empty for gpt-4o-mini.
func NewWordGenerator(apiKey, baseURL, model string) *WordGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if model == "" {
		model = openai.GPT4oMini
	}
	return &WordGenerator{client: openai.NewClientWithConfig(cfg), model: model}
}

// #endregion

// #region generate

// Generate compresses the exchanges into one prompt and asks the model for
// the word. The reply is lower-cased and stripped to letters; validation
// against the clue store is the caller's job.
func (g *WordGenerator) Generate(ctx context.Context, exchanges []oracle.Exchange) (string, error) {
	if len(exchanges) == 0 {
		return "", fmt.Errorf("no exchanges to generate from")
	}

	var b strings.Builder
	b.WriteString("Transcript:\n")
	for _, ex := range exchanges {
		fmt.Fprintf(&b, "Q: %s\nA: %s\n", ex.Question, ex.Answer)
	}
	b.WriteString("\nWhat is the secret word?")

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: b.String()},
		},
		MaxTokens:   10,
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion: empty response")
	}

	word := cleanWord(resp.Choices[0].Message.Content)
	if word == "" {
		return "", fmt.Errorf("chat completion: no word in %q", resp.Choices[0].Message.Content)
	}
	return word, nil
}

func cleanWord(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// #endregion
