package configs

// Config holds all configuration for the application.
type Config struct {
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	FileStorage FileStorageConfig `mapstructure:"file_storage" validate:"required"`
	Ingestion   IngestionConfig   `mapstructure:"ingestion" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Analysis    AnalysisConfig    `mapstructure:"analysis" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}

// FileStorageConfig holds file storage configuration.
type FileStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// IngestionConfig holds log ingestion configuration.
type IngestionConfig struct {
	// LogFileKey is the key of the access-log TSV inside the storage root.
	LogFileKey string `mapstructure:"log_file_key" validate:"required"`
}

// AggregationConfig holds aggregation configuration.
type AggregationConfig struct {
	WindowSize string `mapstructure:"window_size" validate:"required,oneof=minute hour"`
}

// AnalysisConfig holds LLM security-analysis configuration.
type AnalysisConfig struct {
	// ApiKey is read from the GEMINI_API_KEY environment variable; when
	// empty the analyze endpoint degrades to a placeholder result.
	ApiKey         string   `mapstructure:"api_key"`
	Models         []string `mapstructure:"models" validate:"required,min=1"`
	TimeoutSeconds int      `mapstructure:"timeout" validate:"required,min=1"` // per LLM call
	SampleSize     int      `mapstructure:"sample_size" validate:"required,min=1"`
	SampleSeed     int64    `mapstructure:"sample_seed"`
	RatePerSecond  float64  `mapstructure:"rate_per_second" validate:"required,gt=0"`
	RateBurst      int      `mapstructure:"rate_burst" validate:"required,min=1"`
}
