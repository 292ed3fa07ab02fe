package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagCatalog = flag.String("catalog", "", "Path to structure catalog YAML")
	flagLogFile = flag.String("log-file", "", "Write logs to this file")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCatalog != "" {
		cfg.Data.CatalogPath = *flagCatalog
	}
	if *flagLogFile != "" {
		cfg.Logging.File = *flagLogFile
	}
}
