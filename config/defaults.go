package config

import (
	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Database defaults
	v.SetDefault("database.path", "glossary.db")

	// Extraction defaults
	v.SetDefault("extraction.min_confidence", 0.5)
	v.SetDefault("extraction.analyzer_mode", AnalyzerModeFull)

	// Batch defaults
	v.SetDefault("batch.max_definitions", 0)
}
