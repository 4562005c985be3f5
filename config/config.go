package config

// Config represents the terminology extraction configuration
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Batch      BatchConfig      `mapstructure:"batch"`
}

// DatabaseConfig configures the SQLite glossary database
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// ExtractionConfig configures the relation extraction core
type ExtractionConfig struct {
	// MinConfidence filters relationships below this score after
	// deduplication. Must stay within [0, 1].
	MinConfidence float64 `mapstructure:"min_confidence"`

	// AnalyzerMode selects the parsing engine: "full" uses the prose-backed
	// analyzer, "degraded" installs the null analyzer (all extraction calls
	// return empty, matching behavior when the engine cannot be loaded).
	AnalyzerMode string `mapstructure:"analyzer_mode"`
}

// BatchConfig configures batch runs across the whole vocabulary
type BatchConfig struct {
	// MaxDefinitions caps how many definitions one batch run processes
	// across all entries (0 = no cap).
	MaxDefinitions int `mapstructure:"max_definitions"`
}

// Analyzer mode constants
const (
	AnalyzerModeFull     = "full"
	AnalyzerModeDegraded = "degraded"
)
