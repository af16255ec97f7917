// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// NormalizeConfig holds settings for the normalization stage.
type NormalizeConfig struct {
	// UnknownLabel replaces missing journal and source_x values (default "Unknown").
	UnknownLabel string `json:"unknown_label" yaml:"unknown_label" mapstructure:"unknown_label"`

	// PreprintMarker is the case-insensitive source_x substring that marks
	// a preprint (default "preprint").
	PreprintMarker string `json:"preprint_marker" yaml:"preprint_marker" mapstructure:"preprint_marker"`
}

// WithDefaults returns c with zero fields set to their defaults.
func (c NormalizeConfig) WithDefaults() NormalizeConfig {
	if c.UnknownLabel == "" {
		c.UnknownLabel = "Unknown"
	}
	if c.PreprintMarker == "" {
		c.PreprintMarker = "preprint"
	}
	return c
}

// AggregateConfig holds settings for the lexical aggregation stage.
type AggregateConfig struct {
	// RollingWindow is the trailing window, in months, of the monthly
	// moving average (default 3).
	RollingWindow int `json:"rolling_window" yaml:"rolling_window" mapstructure:"rolling_window"`

	// TopCategories is the number of journals and sources kept (default 20).
	TopCategories int `json:"top_categories" yaml:"top_categories" mapstructure:"top_categories"`

	// TopTrendJournals is the number of journals in the cumulative trend (default 5).
	TopTrendJournals int `json:"top_trend_journals" yaml:"top_trend_journals" mapstructure:"top_trend_journals"`

	// TopNGrams is the number of unigrams and bigrams kept (default 50).
	TopNGrams int `json:"top_ngrams" yaml:"top_ngrams" mapstructure:"top_ngrams"`

	// Parallel runs independent sub-aggregations concurrently.
	Parallel bool `json:"parallel" yaml:"parallel" mapstructure:"parallel"`

	// FromYear and ToYear bound the years included; 0 leaves a bound open.
	FromYear int `json:"from_year,omitempty" yaml:"from_year,omitempty" mapstructure:"from_year"`
	ToYear   int `json:"to_year,omitempty" yaml:"to_year,omitempty" mapstructure:"to_year"`
}

// WithDefaults returns c with zero or negative sizes set to their defaults.
func (c AggregateConfig) WithDefaults() AggregateConfig {
	if c.RollingWindow <= 0 {
		c.RollingWindow = 3
	}
	if c.TopCategories <= 0 {
		c.TopCategories = 20
	}
	if c.TopTrendJournals <= 0 {
		c.TopTrendJournals = 5
	}
	if c.TopNGrams <= 0 {
		c.TopNGrams = 50
	}
	return c
}

// SnapshotFormat selects how the cleaned dataset is written.
type SnapshotFormat string

const (
	SnapshotCSV    SnapshotFormat = "csv"
	SnapshotSQLite SnapshotFormat = "sqlite"
)

// SnapshotConfig holds settings for writing the cleaned dataset.
type SnapshotConfig struct {
	// Format is csv or sqlite (default csv).
	Format SnapshotFormat `json:"format" yaml:"format" mapstructure:"format"`

	// Path is the output file (default metadata_cleaned.csv, or
	// metadata_cleaned.db for sqlite).
	Path string `json:"path" yaml:"path" mapstructure:"path"`
}

// WithDefaults returns c with an empty format or path filled in.
func (c SnapshotConfig) WithDefaults() SnapshotConfig {
	if c.Format == "" {
		c.Format = SnapshotCSV
	}
	if c.Path == "" {
		switch c.Format {
		case SnapshotSQLite:
			c.Path = "metadata_cleaned.db"
		default:
			c.Path = "metadata_cleaned.csv"
		}
	}
	return c
}

// ExportFormat selects how the aggregate report is written.
type ExportFormat string

const (
	ExportYAML ExportFormat = "yaml"
	ExportJSON ExportFormat = "json"
	ExportCSV  ExportFormat = "csv"
)

// ExportConfig holds settings for writing the aggregate report.
type ExportConfig struct {
	// OutputDir receives report files (default "outputs").
	OutputDir string `json:"output_dir" yaml:"output_dir" mapstructure:"output_dir"`

	// Format is yaml, json, or csv (default yaml).
	Format ExportFormat `json:"format" yaml:"format" mapstructure:"format"`
}

// WithDefaults returns c with empty fields filled in.
func (c ExportConfig) WithDefaults() ExportConfig {
	if c.OutputDir == "" {
		c.OutputDir = "outputs"
	}
	if c.Format == "" {
		c.Format = ExportYAML
	}
	return c
}

// LogConfig holds logging and metrics settings.
type LogConfig struct {
	// Level is debug, info, warn, or error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// MetricsFile, when set, receives pipeline metrics in the Prometheus
	// text format after each run.
	MetricsFile string `json:"metrics_file,omitempty" yaml:"metrics_file,omitempty" mapstructure:"metrics_file"`
}

// PipelineConfig groups all stage configurations for the pipeline.
type PipelineConfig struct {
	Normalize NormalizeConfig `json:"normalize" yaml:"normalize" mapstructure:"normalize"`
	Aggregate AggregateConfig `json:"aggregate" yaml:"aggregate" mapstructure:"aggregate"`
	Snapshot  SnapshotConfig  `json:"snapshot" yaml:"snapshot" mapstructure:"snapshot"`
	Export    ExportConfig    `json:"export" yaml:"export" mapstructure:"export"`
	Log       LogConfig       `json:"log" yaml:"log" mapstructure:"log"`
}

// WithDefaults applies every section's defaults.
func (c PipelineConfig) WithDefaults() PipelineConfig {
	c.Normalize = c.Normalize.WithDefaults()
	c.Aggregate = c.Aggregate.WithDefaults()
	c.Snapshot = c.Snapshot.WithDefaults()
	c.Export = c.Export.WithDefaults()
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	return c
}
