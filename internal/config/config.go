package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"doc-summarizer/internal/models"
)

// Environment variables read by Load.
const (
	EnvAPIKey      = "AZ_OPENAI_API_KEY"
	EnvEndpoint    = "AZ_OPENAI_ENDPOINT"
	EnvDeployment  = "AZ_OPENAI_DEPLOYMENT_NAME"
	EnvAPIVersion  = "AZ_OPENAI_API_VERSION"
	EnvFilePath    = "FILE_PATH"
	EnvPromptsPath = "PROMPTS_PATH"
	EnvOutputDir   = "OUTPUT_DIR"
	EnvLogLevel    = "LOG_LEVEL"
	EnvChunkSize   = "CHUNK_SIZE"
)

var ErrMissingConfig = errors.New("missing required environment variables")

type Config struct {
	LLM         LLMConfig     `yaml:"llm"`
	FilePath    string        `yaml:"file_path"`
	ChunkSize   int           `yaml:"chunk_size"`
	PromptsPath string        `yaml:"prompts_path"`
	OutputDir   string        `yaml:"output_dir"`
	Logging     LoggingConfig `yaml:"logging"`
}

// LLMConfig describes the Azure OpenAI deployment and the fixed generation
// parameters used for every call of a run.
type LLMConfig struct {
	Key         string  `yaml:"-"`
	BaseURL     string  `yaml:"endpoint"`
	Model       string  `yaml:"deployment"`
	APIVersion  string  `yaml:"api_version"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"top_p"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns a config populated with the built-in defaults
func Default() *Config {
	return &Config{
		LLM: LLMConfig{
			APIVersion:  models.DefaultAPIVersion,
			MaxTokens:   models.DefaultMaxTokens,
			Temperature: models.DefaultTemperature,
			TopP:        models.DefaultTopP,
		},
		ChunkSize:   models.DefaultChunkSize,
		PromptsPath: models.DefaultPromptsPath,
		OutputDir:   models.DefaultOutputDir,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadDotEnv loads a .env file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load reads the optional YAML file at path on top of the defaults, then
// applies environment overrides. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setFromEnv(&c.LLM.Key, EnvAPIKey)
	setFromEnv(&c.LLM.BaseURL, EnvEndpoint)
	setFromEnv(&c.LLM.Model, EnvDeployment)
	setFromEnv(&c.LLM.APIVersion, EnvAPIVersion)
	setFromEnv(&c.FilePath, EnvFilePath)
	setFromEnv(&c.PromptsPath, EnvPromptsPath)
	setFromEnv(&c.OutputDir, EnvOutputDir)
	setFromEnv(&c.Logging.Level, EnvLogLevel)

	if v, ok := os.LookupEnv(EnvChunkSize); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvChunkSize, err)
		}
		c.ChunkSize = n
	}
	return nil
}

func setFromEnv(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

// Validate checks that the four required values are present and fills in
// defaults for anything left at its zero value.
func (c *Config) Validate() error {
	var missing []string
	if c.LLM.Key == "" {
		missing = append(missing, EnvAPIKey)
	}
	if c.LLM.BaseURL == "" {
		missing = append(missing, EnvEndpoint)
	}
	if c.LLM.Model == "" {
		missing = append(missing, EnvDeployment)
	}
	if c.FilePath == "" {
		missing = append(missing, EnvFilePath)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingConfig, strings.Join(missing, ", "))
	}

	if c.ChunkSize <= 0 {
		c.ChunkSize = models.DefaultChunkSize
	}
	if c.LLM.APIVersion == "" {
		c.LLM.APIVersion = models.DefaultAPIVersion
	}
	if c.LLM.MaxTokens <= 0 {
		c.LLM.MaxTokens = models.DefaultMaxTokens
	}
	if c.PromptsPath == "" {
		c.PromptsPath = models.DefaultPromptsPath
	}
	if c.OutputDir == "" {
		c.OutputDir = models.DefaultOutputDir
	}
	return nil
}
