// Package configpaths lists the configuration files the fluentmap command
// reads, per format.
package configpaths

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName is the base name of configuration files and directories.
const AppName = "fluentmap"

// EnvConfig names the environment variable holding a configuration path.
const EnvConfig = "FLUENTMAP_CONFIG"

// ConfigCandidatePaths builds candidate paths for config files per format.
// If userPath is provided, it is prioritized and routed to the matching
// loader by extension; unknown extensions are read as JSON.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch strings.ToLower(filepath.Ext(userPath)) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	// Working directory candidates
	if wd, err := os.Getwd(); err == nil {
		addBase(filepath.Join(wd, AppName), &jsonPaths, &yamlPaths, &tomlPaths)
	}

	// User configuration directory candidates
	if dir, err := os.UserConfigDir(); err == nil {
		addBase(filepath.Join(dir, AppName, "config"), &jsonPaths, &yamlPaths, &tomlPaths)
	}

	return jsonPaths, yamlPaths, tomlPaths
}

func addBase(base string, jsonPaths, yamlPaths, tomlPaths *[]string) {
	*jsonPaths = append(*jsonPaths, base+".json")
	*yamlPaths = append(*yamlPaths, base+".yaml", base+".yml")
	*tomlPaths = append(*tomlPaths, base+".toml")
}

// FindUserConfig returns the --config value from args, falling back to the
// EnvConfig variable read through getenv.
func FindUserConfig(args []string, getenv func(string) string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}

		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}

	return getenv(EnvConfig)
}
