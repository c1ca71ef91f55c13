package llmservice

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"doc-summarizer/internal/config"
	"doc-summarizer/internal/models"
)

// Generator is the single chat-completion call the summarizer needs.
// *openai.LLM satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error)
}

// NewAzureLLM builds a langchaingo client for an Azure OpenAI deployment.
// Azure mode requires an embedding deployment name even though only chat is
// used, so the chat deployment is passed for both. Requests go through
// paramsDoer so they carry top_p and the max_tokens field.
func NewAzureLLM(llmConfig *config.LLMConfig) (*openai.LLM, error) {
	return openai.New(
		openai.WithAPIType(openai.APITypeAzure),
		openai.WithBaseURL(strings.TrimSuffix(llmConfig.BaseURL, "/")),
		openai.WithToken(llmConfig.Key),
		openai.WithAPIVersion(llmConfig.APIVersion),
		openai.WithModel(llmConfig.Model),
		openai.WithEmbeddingModel(llmConfig.Model),
		openai.WithHTTPClient(newParamsDoer(http.DefaultClient, llmConfig.TopP)),
	)
}

// Client sends text through a prompt with the run's fixed generation
// parameters.
type Client struct {
	llm         Generator
	maxTokens   int
	temperature float64
	topP        float64
	log         zerolog.Logger
}

func NewClient(llm Generator, llmConfig *config.LLMConfig, log zerolog.Logger) *Client {
	return &Client{
		llm:         llm,
		maxTokens:   llmConfig.MaxTokens,
		temperature: llmConfig.Temperature,
		topP:        llmConfig.TopP,
		log:         log.With().Str("component", "llmservice").Logger(),
	}
}

// SummarizeChunks makes one call per chunk and returns the summaries in input
// order. Chunks whose call fails or comes back empty are logged and left out.
func (c *Client) SummarizeChunks(ctx context.Context, chunks []models.Chunk, prompt models.Prompt) []string {
	summaries := make([]string, 0, len(chunks))

	for _, chunk := range chunks {
		start := time.Now()
		chars := utf8.RuneCountInString(chunk.Content)
		res, err := c.llm.GenerateContent(ctx, BuildMessages(prompt, chunk.Content),
			llms.WithMaxTokens(c.maxTokens),
			llms.WithTemperature(c.temperature),
			llms.WithTopP(c.topP),
		)
		if err != nil {
			c.log.Error().Err(err).Int("chunk", chunk.Index).Msg("Error summarizing chunk")
			continue
		}

		if res == nil || len(res.Choices) == 0 || strings.TrimSpace(res.Choices[0].Content) == "" {
			c.log.Warn().Int("chunk", chunk.Index).Int("chars", chars).Msgf("No summary generated for chunk: %s", preview(chunk.Content))
			continue
		}

		summaries = append(summaries, strings.TrimSpace(res.Choices[0].Content))
		c.log.Debug().
			Int("chunk", chunk.Index).
			Int("chars", chars).
			Dur("elapsed", time.Since(start)).
			Msg("Chunk summarized")
	}

	return summaries
}

// BuildMessages prefixes the prompt to a single user message holding text
func BuildMessages(prompt models.Prompt, text string) []llms.MessageContent {
	messages := make([]llms.MessageContent, 0, len(prompt)+1)
	for _, m := range prompt {
		messages = append(messages, llms.TextParts(chatRole(m.Role), m.Content))
	}
	return append(messages, llms.TextParts(llms.ChatMessageTypeHuman, text))
}

func chatRole(role string) llms.ChatMessageType {
	switch role {
	case models.RoleSystem:
		return llms.ChatMessageTypeSystem
	case models.RoleAssistant:
		return llms.ChatMessageTypeAI
	default:
		return llms.ChatMessageTypeHuman
	}
}

func preview(s string) string {
	const limit = 80
	if r := []rune(s); len(r) > limit {
		return string(r[:limit]) + "..."
	}
	return s
}
