package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"doc-summarizer/internal/config"
	"doc-summarizer/internal/helper"
	"doc-summarizer/internal/llmservice"
	"doc-summarizer/internal/models"
	"doc-summarizer/internal/parser"
)

var (
	ErrPrompts     = errors.New("error loading prompts")
	ErrNoChunks    = errors.New("no chunks to process")
	ErrClientInit  = errors.New("failed to initialize Azure OpenAI client")
	ErrWriteOutput = errors.New("failed to write final summary")
)

// LLMFactory builds the chat client once the input is known to be usable
type LLMFactory func(llmConfig *config.LLMConfig) (llmservice.Generator, error)

// AzureFactory is the production LLMFactory
func AzureFactory(llmConfig *config.LLMConfig) (llmservice.Generator, error) {
	return llmservice.NewAzureLLM(llmConfig)
}

type Pipeline struct {
	cfg    *config.Config
	log    zerolog.Logger
	newLLM LLMFactory
}

func New(cfg *config.Config, log zerolog.Logger, newLLM LLMFactory) *Pipeline {
	if newLLM == nil {
		newLLM = AzureFactory
	}
	return &Pipeline{cfg: cfg, log: log, newLLM: newLLM}
}

// Run summarizes the configured document and returns the path of the
// summary file. It returns "" and a nil error when no final summary came back.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	startTime := time.Now()

	log := p.log
	if runID, err := helper.GenerateUUID(); err != nil {
		log.Warn().Err(err).Msg("Running without a run id")
	} else {
		log = log.With().Str("run_id", runID).Logger()
	}
	defer func() {
		log.Info().Msgf("Execution completed in %.2f seconds.", time.Since(startTime).Seconds())
	}()

	// Step 1: required configuration
	if err := p.cfg.Validate(); err != nil {
		return "", err
	}

	// Step 2: prompts
	prompts, err := config.LoadPrompts(p.cfg.PromptsPath)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrPrompts, err)
	}
	if len(prompts.Initial) == 0 {
		log.Warn().Str("prompts", p.cfg.PromptsPath).Msg("initial_prompt is empty")
	}
	if len(prompts.Final) == 0 {
		log.Warn().Str("prompts", p.cfg.PromptsPath).Msg("final_prompt is empty")
	}

	// Step 3: read and chunk
	log.Info().Str("file", p.cfg.FilePath).Msgf("Processing document: %s", p.cfg.FilePath)
	chunks, err := parser.ReadAndChunk(p.cfg.FilePath, p.cfg.ChunkSize)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoChunks, err)
	}
	if len(chunks) == 0 {
		return "", ErrNoChunks
	}
	log.Info().Int("chunks", len(chunks)).Int("chunk_size", p.cfg.ChunkSize).Msg("Document chunked")

	// Step 4: client
	llm, err := p.newLLM(&p.cfg.LLM)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrClientInit, err)
	}
	client := llmservice.NewClient(llm, &p.cfg.LLM, log)

	// Step 5: per-chunk summaries
	log.Info().Msg("Summarizing document chunks...")
	chunkSummaries := client.SummarizeChunks(ctx, chunks, prompts.Initial)
	log.Info().Int("summaries", len(chunkSummaries)).Int("chunks", len(chunks)).Msg("Chunk summaries generated")

	// Step 6 & 7: combine and summarize again
	combined := strings.Join(chunkSummaries, "\n")
	finalSummary := client.SummarizeChunks(ctx, models.NewChunks([]string{combined}), prompts.Final)

	// Step 8: output
	if len(finalSummary) == 0 {
		log.Warn().Msg("No final summary generated.")
		return "", nil
	}

	outputPath, err := helper.WriteSummary(p.cfg.OutputDir, p.cfg.FilePath, finalSummary[0])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	log.Info().Str("output", outputPath).Msgf("Final summary saved to %s", outputPath)

	return outputPath, nil
}
