package models

const (
	DefaultChunkSize   = 15000
	DefaultMaxTokens   = 4096
	DefaultTemperature = 0.5
	DefaultTopP        = 0.5
	DefaultAPIVersion  = "2024-02-01"
	DefaultPromptsPath = "prompts.json"
	DefaultOutputDir   = "."

	SummarySuffix = "_Summary.txt"
)
