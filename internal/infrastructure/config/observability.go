package config

// LoggingConfig selects the logrus level, formatter and destination
type LoggingConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Output is stdout, stderr or file. A file destination needs FilePath.
	Output   string `mapstructure:"output" validate:"required,oneof=stdout stderr file"`
	FilePath string `mapstructure:"file_path" validate:"required_if=Output file"`

	// IncludeCaller adds file:line to every entry
	IncludeCaller bool `mapstructure:"include_caller"`
}

// MetricsConfig controls the Prometheus collectors and the scrape endpoint.
// With Enabled false no collector is registered and no server starts.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`
	Path    string `mapstructure:"path"`
}
