package main

// cliConfig holds the TUI client configuration.
type cliConfig struct {
	File       string `mapstructure:"file"`
	ConfigPath string `mapstructure:"-"` // not from config file
}
