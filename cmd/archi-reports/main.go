package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Build variables - set by ldflags during build.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	var configPath string
	var showVersion bool
	var fileFlag string
	var reportFlag int
	var servedFlag bool
	var formatFlag string
	var serveFlag bool
	var dbPathFlag string

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/archi-reports/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.StringVar(&fileFlag, "file", defaultModelFile, "path to the ArchiMate model XML file")
	flag.IntVar(&reportFlag, "report", defaultReportKind, "report type: 1=processes by served/unserved status, 2=application components with served processes")
	flag.BoolVar(&servedFlag, "served", false, "show served processes instead of unserved ones (report 1 only)")
	flag.StringVar(&formatFlag, "format", defaultFormat, "output format: console or csv")
	flag.BoolVar(&serveFlag, "serve", false, "keep running and serve the analysis over the HTTP API")
	flag.StringVar(&dbPathFlag, "db-path", "", "DuckDB file for run history (empty disables persistence)")
	flag.Parse()

	if showVersion {
		fmt.Printf("archi-reports - ArchiMate Model Analyzer\n")
		fmt.Printf("  Version: %s\n", version)
		fmt.Printf("  Commit:  %s\n", commit)
		fmt.Printf("  Built:   %s\n", buildTime)
		return
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Explicit command-line flags beat config file and environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "file":
			cfg.File = fileFlag
		case "report":
			cfg.Report = reportFlag
		case "served":
			cfg.Served = servedFlag
		case "format":
			cfg.Format = formatFlag
		case "serve":
			cfg.Serve = serveFlag
		case "db-path":
			cfg.DBPath = dbPathFlag
		}
	})

	if err := validateConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig(configPath string) (appConfig, error) {
	var cfg appConfig

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg, fmt.Errorf("finding home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix("ARCHI")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("file", defaultModelFile)
	v.SetDefault("report", defaultReportKind)
	v.SetDefault("served", false)
	v.SetDefault("format", defaultFormat)
	v.SetDefault("output-dir", defaultOutputDir)
	v.SetDefault("db-path", "")
	v.SetDefault("serve", false)
	v.SetDefault("api-port", defaultAPIPort)
	v.SetDefault("query-timeout", defaultQueryTimeout)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigFile(filepath.Join(home, ".config", "archi-reports", "config.yml"))
	}

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFound) && !os.IsNotExist(err) {
			return cfg, err
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	// Expand ~ in db-path
	if strings.HasPrefix(cfg.DBPath, "~/") {
		cfg.DBPath = filepath.Join(home, cfg.DBPath[2:])
	}

	if cfg.APIAddr == "" {
		cfg.APIAddr = net.JoinHostPort(defaultBindHost, strconv.Itoa(cfg.APIPort))
	}

	return cfg, nil
}

func validateConfig(cfg appConfig) error {
	if cfg.Report != 1 && cfg.Report != 2 {
		return fmt.Errorf("invalid report type %d: must be 1 or 2", cfg.Report)
	}
	if cfg.Format != "console" && cfg.Format != "csv" {
		return fmt.Errorf("invalid format %q: must be console or csv", cfg.Format)
	}
	if cfg.APIPort <= 0 || cfg.APIPort > 65535 {
		return fmt.Errorf("invalid api-port: %d", cfg.APIPort)
	}
	return nil
}
