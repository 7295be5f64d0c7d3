package cli

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/modreport/modreport/pkg/errors"
)

// defaultConfigFile is picked up from the working directory when --config
// is not given.
const defaultConfigFile = "modreport.toml"

// fileConfig is the TOML configuration file surface. Every value is a
// default; command-line flags override it.
type fileConfig struct {
	Export exportConfig `toml:"export"`
	Render renderConfig `toml:"render"`
}

type exportConfig struct {
	Output        string   `toml:"output"`
	Format        string   `toml:"format"`
	Modules       []string `toml:"modules"`
	Scripts       []string `toml:"scripts"`
	Distributions []string `toml:"distributions"`
	Excludes      []string `toml:"excludes"`
	Paths         []string `toml:"paths"`
	ExcludeStdlib bool     `toml:"exclude-stdlib"`
}

type renderConfig struct {
	Engine string `toml:"engine"`
	Format string `toml:"format"`
}

// loadConfig reads the TOML config file at path. When path is empty, the
// default file is used if it exists; otherwise an empty config is returned.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig

	if path == "" {
		if _, err := os.Stat(defaultConfigFile); err != nil {
			return cfg, nil
		}
		path = defaultConfigFile
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "load config %s", path)
	}
	return cfg, nil
}
