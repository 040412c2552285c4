package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/hl/pkg/theme"
)

// Defaults applied before any file or flag is consulted.
const (
	DefaultSchemeName      = "default"
	DefaultNumber          = 30
	DefaultWinwidth        = 62
	DefaultOutputThreshold = 100000

	configFileName = ".hl.yaml"
)

// AppConfig is the .hl.yaml shape merged over hardcoded defaults.
type AppConfig struct {
	Scheme          string `yaml:"scheme"`
	NoIcon          bool   `yaml:"no_icon"`
	Number          int    `yaml:"number"`
	Winwidth        int    `yaml:"winwidth"`
	OutputThreshold int    `yaml:"output_threshold"`
	NoColor         bool   `yaml:"no_color"`
	Debug           bool   `yaml:"debug"`

	// GrepCmd is the base grep command line the plugin configures.
	GrepCmd string `yaml:"grep_cmd"`

	// Schemes holds user scheme definitions addressable by name,
	// overriding built-ins on collision.
	Schemes map[string]*theme.Scheme `yaml:"schemes"`
}

// LoadConfig loads .hl.yaml over the defaults. Missing or broken files
// degrade to defaults with a stderr warning.
func LoadConfig() *AppConfig {
	appCfg := &AppConfig{
		Scheme:          DefaultSchemeName,
		Number:          DefaultNumber,
		Winwidth:        DefaultWinwidth,
		OutputThreshold: DefaultOutputThreshold,
		GrepCmd:         "rg -H --no-heading --vimgrep --smart-case",
		Schemes:         make(map[string]*theme.Scheme),
	}

	configPath := getConfigPath()
	if configPath == "" {
		return appCfg
	}

	yamlFile, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: error reading config file %s: %v. Using defaults.\n", configPath, err)
		}
		return appCfg
	}

	var fileCfg AppConfig
	if err := yaml.Unmarshal(yamlFile, &fileCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: error unmarshalling config file %s: %v. Using defaults.\n", configPath, err)
		return appCfg
	}

	mergeFileConfig(appCfg, &fileCfg)
	return appCfg
}

func mergeFileConfig(base, file *AppConfig) {
	if file.Scheme != "" {
		base.Scheme = file.Scheme
	}
	if file.Number > 0 {
		base.Number = file.Number
	}
	if file.Winwidth > 0 {
		base.Winwidth = file.Winwidth
	}
	if file.OutputThreshold > 0 {
		base.OutputThreshold = file.OutputThreshold
	}
	if file.GrepCmd != "" {
		base.GrepCmd = file.GrepCmd
	}
	base.NoIcon = base.NoIcon || file.NoIcon
	base.NoColor = base.NoColor || file.NoColor
	base.Debug = base.Debug || file.Debug
	for name, s := range file.Schemes {
		if s == nil {
			continue
		}
		if s.Name == "" {
			s.Name = name
		}
		base.Schemes[name] = s
	}
}

// getConfigPath prefers a .hl.yaml in the working directory, then the XDG
// config dir, then $HOME/.config.
func getConfigPath() string {
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	path := filepath.Join(configHome, "hl", configFileName)
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

// SchemeByName resolves a scheme name against user schemes first, then the
// built-ins. Unknown names fall back to the default scheme.
func (c *AppConfig) SchemeByName(name string) *theme.Scheme {
	if s, ok := c.Schemes[name]; ok {
		return s
	}
	return theme.SchemeByName(name)
}
