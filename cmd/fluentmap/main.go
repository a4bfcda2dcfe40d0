// Command fluentmap applies fluent mapping definitions and exports, checks or
// inspects the resulting mappings.
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"

	"fluentmap/internal/cmd"
	"fluentmap/internal/configpaths"
	"fluentmap/internal/log"

	_ "fluentmap/store"     // Register store mappings
	_ "fluentmap/warehouse" // Register warehouse mappings
)

func main() {
	userCfg := configpaths.FindUserConfig(os.Args[1:], os.Getenv)
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli cmd.CLI
	ctx := kong.Parse(&cli,
		kong.Name(configpaths.AppName),
		kong.Description("Apply fluent mapping definitions and export the resulting mappings"),
		kong.UsageOnError(),
		// Flags and env override config values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File, log.Console{Stdout: os.Stderr, Stderr: os.Stderr})
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx.Bind(logger)
	ctx.BindTo(os.Stdout, (*io.Writer)(nil))

	err = ctx.Run()

	// FatalIfErrorf exits, so log files are closed first.
	_ = log.CloseAll(closeFiles)
	ctx.FatalIfErrorf(err)
}
