package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/andrescamacho/greenhouse-go/internal/application/simulation"
)

// DefaultConfig returns the complete default configuration: a one-week run
// recorded to a local SQLite file
func DefaultConfig() *Config {
	return &Config{
		Simulation: simulationConfigFrom(simulation.DefaultSettings()),
		Database: DatabaseConfig{
			Type:    "sqlite",
			Path:    "greenhouse.db",
			Host:    "localhost",
			Port:    5432,
			User:    "greenhouse",
			Name:    "greenhouse",
			SSLMode: "disable",
			Pool: PoolConfig{
				MaxOpen:     10,
				MaxIdle:     2,
				MaxLifetime: 5 * time.Minute,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
		Metrics: MetricsConfig{
			Host: "localhost",
			Port: 9090,
			Path: "/metrics",
		},
	}
}

// registerDefaults exposes every scalar default to viper. Maps and lists are
// filled by SetDefaults after unmarshalling.
func registerDefaults(v *viper.Viper, d *Config) {
	s := d.Simulation
	v.SetDefault("simulation.days", s.Days)
	v.SetDefault("simulation.seed", s.Seed)
	v.SetDefault("simulation.greenhouse_name", s.GreenhouseName)
	v.SetDefault("simulation.opening_date", s.OpeningDate)
	v.SetDefault("simulation.order_probability", s.OrderProbability)
	v.SetDefault("simulation.advice_probability", s.AdviceProbability)
	v.SetDefault("simulation.complaint_probability", s.ComplaintProbability)
	v.SetDefault("simulation.extras_probability", s.ExtrasProbability)
	v.SetDefault("simulation.max_order_lines", s.MaxOrderLines)
	v.SetDefault("simulation.max_quantity", s.MaxQuantity)
	v.SetDefault("simulation.capacity", s.Capacity)
	v.SetDefault("simulation.initial_mature_fraction", s.InitialMatureFraction)
	v.SetDefault("simulation.restock_threshold", s.RestockThreshold)
	v.SetDefault("simulation.restock_amount", s.RestockAmount)
	v.SetDefault("simulation.water_threshold", s.WaterThreshold)
	v.SetDefault("simulation.lifecycle.maturity_age", s.Lifecycle.MaturityAge)
	v.SetDefault("simulation.lifecycle.lifespan", s.Lifecycle.Lifespan)
	v.SetDefault("simulation.lifecycle.min_growth_water", s.Lifecycle.MinGrowthWater)

	v.SetDefault("catalog.file", d.Catalog.File)

	v.SetDefault("database.type", d.Database.Type)
	v.SetDefault("database.url", d.Database.URL)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("database.host", d.Database.Host)
	v.SetDefault("database.port", d.Database.Port)
	v.SetDefault("database.user", d.Database.User)
	v.SetDefault("database.password", d.Database.Password)
	v.SetDefault("database.name", d.Database.Name)
	v.SetDefault("database.sslmode", d.Database.SSLMode)
	v.SetDefault("database.pool.max_open", d.Database.Pool.MaxOpen)
	v.SetDefault("database.pool.max_idle", d.Database.Pool.MaxIdle)
	v.SetDefault("database.pool.max_lifetime", d.Database.Pool.MaxLifetime)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
	v.SetDefault("logging.output", d.Logging.Output)
	v.SetDefault("logging.file_path", d.Logging.FilePath)
	v.SetDefault("logging.include_caller", d.Logging.IncludeCaller)

	v.SetDefault("metrics.enabled", d.Metrics.Enabled)
	v.SetDefault("metrics.host", d.Metrics.Host)
	v.SetDefault("metrics.port", d.Metrics.Port)
	v.SetDefault("metrics.path", d.Metrics.Path)
}

// SetDefaults fills every field left empty after loading
func SetDefaults(cfg *Config) {
	d := DefaultConfig()

	// Simulation defaults
	sim := &cfg.Simulation
	if sim.Days == 0 {
		sim.Days = d.Simulation.Days
	}
	if sim.GreenhouseName == "" {
		sim.GreenhouseName = d.Simulation.GreenhouseName
	}
	if sim.OpeningDate == "" {
		sim.OpeningDate = d.Simulation.OpeningDate
	}
	if sim.MaxOrderLines == 0 {
		sim.MaxOrderLines = d.Simulation.MaxOrderLines
	}
	if sim.MaxQuantity == 0 {
		sim.MaxQuantity = d.Simulation.MaxQuantity
	}
	if sim.Lifecycle.Lifespan == 0 {
		sim.Lifecycle = d.Simulation.Lifecycle
	}
	if sim.CustomersPerLevel == nil {
		sim.CustomersPerLevel = d.Simulation.CustomersPerLevel
	}
	if sim.Staffing == nil {
		sim.Staffing = d.Simulation.Staffing
	}
	if sim.PlantSelection == nil {
		sim.PlantSelection = d.Simulation.PlantSelection
	}
	if sim.Supplies == nil {
		sim.Supplies = d.Simulation.Supplies
	}

	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = d.Database.Type
	}
	if cfg.Database.Type == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = d.Database.Path
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = d.Database.Host
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = d.Database.Port
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = d.Database.SSLMode
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = d.Database.Pool.MaxOpen
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = d.Database.Pool.MaxIdle
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = d.Database.Pool.MaxLifetime
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = d.Logging.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = d.Logging.Format
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = d.Logging.Output
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = d.Metrics.Host
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = d.Metrics.Port
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = d.Metrics.Path
	}
}
