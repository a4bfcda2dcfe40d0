// Package cmd holds the fluentmap subcommands run by kong.
package cmd

// CLI is the root command line of fluentmap.
type CLI struct {
	Config string  `help:"Configuration file (JSON, YAML or TOML)" env:"FLUENTMAP_CONFIG" type:"path"`
	Log    LogFlag `embed:"" prefix:"log."`

	Export  Export  `cmd:"" help:"Apply mapping definitions and export the resulting mappings"`
	Check   Check   `cmd:"" help:"Verify an exported mapping file against the current definitions"`
	Inspect Inspect `cmd:"" help:"Show the tables implied by the mapping definitions"`
	Schema  Schema  `cmd:"" help:"Print the JSON schema of exported mapping documents"`
}

// LogFlag configures the process logger.
type LogFlag struct {
	Level string `help:"Log level" enum:"trace,debug,info,warn,error" default:"warn" env:"FLUENTMAP_LOG_LEVEL"`
	File  string `help:"Log file path; logs go to stderr as well" env:"FLUENTMAP_LOG_FILE" type:"path"`
}
