package main

import "time"

const (
	defaultModelFile    = "data/model.xml"
	defaultReportKind   = 1
	defaultFormat       = "console"
	defaultOutputDir    = "reports"
	defaultBindHost     = "127.0.0.1"
	defaultAPIPort      = 3000
	defaultQueryTimeout = 30 * time.Second
)

// appConfig is internal runtime configuration. It is package-private to keep
// defaults and shape local to the CLI entrypoint.
type appConfig struct {
	File         string        `mapstructure:"file"`
	Report       int           `mapstructure:"report"`
	Served       bool          `mapstructure:"served"`
	Format       string        `mapstructure:"format"`
	OutputDir    string        `mapstructure:"output-dir"`
	DBPath       string        `mapstructure:"db-path"`
	Serve        bool          `mapstructure:"serve"`
	APIPort      int           `mapstructure:"api-port"`
	APIAddr      string        `mapstructure:"api-addr"`
	QueryTimeout time.Duration `mapstructure:"query-timeout"`
	ConfigPath   string        `mapstructure:"-"` // not from config file
}
