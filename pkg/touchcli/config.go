package touchcli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dansimau/touch/pkg/fsutil"
	"gopkg.in/yaml.v2"
)

// ConfigEnvVar names a config file to use when --config is not given.
const ConfigEnvVar = "TOUCH_CONFIG"

type Config struct {
	NoCreate bool `yaml:"noCreate"`
	Verbose  bool `yaml:"verbose"`
}

// resolveConfigPath returns the config file to read and whether it must
// exist. An explicitly requested file (flag or env) must exist; the default
// location under the user config dir is optional.
func resolveConfigPath(explicit string) (path string, required bool) {
	if explicit != "" {
		return explicit, true
	}

	if env := os.Getenv(ConfigEnvVar); env != "" {
		return env, true
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}

	return filepath.Join(configDir, "touch", "config.yaml"), false
}

// ReadConfig loads the config file selected by explicit, $TOUCH_CONFIG or the
// default location, in that order.
func ReadConfig(explicit string) (*Config, error) {
	cfg := &Config{}

	configPath, required := resolveConfigPath(explicit)
	if configPath == "" {
		return cfg, nil
	}

	exists, err := fsutil.FileExists(configPath)
	if err != nil {
		return nil, err
	}

	if !exists {
		if required {
			return nil, fmt.Errorf("config file not found: %s", configPath)
		}

		return cfg, nil
	}

	yamlBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	if err := yaml.UnmarshalStrict(yamlBytes, cfg); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return cfg, nil
}
