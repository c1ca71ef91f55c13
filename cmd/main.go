package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"doc-summarizer/internal/config"
	"doc-summarizer/internal/logger"
	"doc-summarizer/internal/pipeline"
)

const (
	configFilePath = "./configs/config.yaml"
	dotEnvPath     = ".env"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

// run returns the process exit status. Only a client init failure is non-zero.
func run(args []string, stdout io.Writer) int {
	flags := flag.NewFlagSet("doc-summarizer", flag.ContinueOnError)
	flags.SetOutput(stdout)
	configPath := flags.String("config", configFilePath, "Path to the optional YAML config file")
	filePath := flags.String("file", "", "Path to the .docx or .txt document (overrides FILE_PATH)")
	promptsPath := flags.String("prompts", "", "Path to the prompts JSON file (overrides PROMPTS_PATH)")
	outputDir := flags.String("out", "", "Folder for the summary file (overrides OUTPUT_DIR)")
	chunkSize := flags.Int("chunk-size", 0, "Maximum characters per chunk")
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	// used until the configured logger exists
	bootLog := logger.New(stdout, os.Getenv(config.EnvLogLevel), "console")

	if err := config.LoadDotEnv(dotEnvPath); err != nil {
		bootLog.Warn().Err(err).Str("path", dotEnvPath).Msg("Failed to load .env")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		bootLog.Error().Err(err).Str("config", *configPath).Msg("Failed to load config")
		return 0
	}
	if *filePath != "" {
		cfg.FilePath = *filePath
	}
	if *promptsPath != "" {
		cfg.PromptsPath = *promptsPath
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *chunkSize > 0 {
		cfg.ChunkSize = *chunkSize
	}

	log := logger.New(stdout, cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	_, err = pipeline.New(cfg, log, pipeline.AzureFactory).Run(ctx)
	switch {
	case err == nil:
	case errors.Is(err, pipeline.ErrClientInit):
		log.Error().Err(err).Msg("Failed to initialize Azure OpenAI client")
		return 1
	case errors.Is(err, config.ErrMissingConfig):
		log.Error().Err(err).Msg("Missing required environment variables.")
	case errors.Is(err, pipeline.ErrPrompts):
		log.Error().Err(err).Msg("Error loading prompts")
	case errors.Is(err, pipeline.ErrNoChunks):
		log.Error().Err(err).Msg("No chunks to process.")
	default:
		log.Error().Err(err).Msg("Summarization failed")
	}
	return 0
}
