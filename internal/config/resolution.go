package config

import (
	"fmt"
	"os"
	"strconv"
)

// CliFlags carries parsed command-line values into resolution. The *Set
// fields distinguish "flag given" from "zero value", so an explicit
// --number=0 still overrides the file.
type CliFlags struct {
	Scheme    string
	SchemeSet bool

	NoIcon    bool
	NoIconSet bool

	Number    int
	NumberSet bool

	Winwidth    int
	WinwidthSet bool

	OutputThreshold    int
	OutputThresholdSet bool

	NoColor    bool
	NoColorSet bool

	Debug    bool
	DebugSet bool
}

// Settings is the fully resolved runtime configuration.
type Settings struct {
	Scheme          string
	NoIcon          bool
	Number          int
	Winwidth        int
	OutputThreshold int
	NoColor         bool
	Debug           bool
	GrepCmd         string
}

// ResolveConfig merges CLI flags and environment over the loaded file
// config. Priority: CLI > environment > file > defaults.
func ResolveConfig(appCfg *AppConfig, flags CliFlags) (Settings, error) {
	s := Settings{
		Scheme:          appCfg.Scheme,
		NoIcon:          appCfg.NoIcon,
		Number:          appCfg.Number,
		Winwidth:        appCfg.Winwidth,
		OutputThreshold: appCfg.OutputThreshold,
		NoColor:         appCfg.NoColor,
		Debug:           appCfg.Debug,
		GrepCmd:         appCfg.GrepCmd,
	}

	if v, ok := getEnvBool("HL_NO_COLOR", "NO_COLOR"); ok {
		s.NoColor = v
	}
	if v, ok := getEnvBool("HL_DEBUG"); ok {
		s.Debug = v
	}
	if v, ok := getEnvBool("HL_NO_ICON"); ok {
		s.NoIcon = v
	}

	if flags.SchemeSet {
		s.Scheme = flags.Scheme
	}
	if flags.NoIconSet {
		s.NoIcon = flags.NoIcon
	}
	if flags.NumberSet {
		s.Number = flags.Number
	}
	if flags.WinwidthSet {
		s.Winwidth = flags.Winwidth
	}
	if flags.OutputThresholdSet {
		s.OutputThreshold = flags.OutputThreshold
	}
	if flags.NoColorSet {
		s.NoColor = flags.NoColor
	}
	if flags.DebugSet {
		s.Debug = flags.Debug
	}

	if s.Number < 0 {
		return Settings{}, fmt.Errorf("number must be >= 0, got %d", s.Number)
	}
	if s.Winwidth < 0 {
		return Settings{}, fmt.Errorf("winwidth must be >= 0, got %d", s.Winwidth)
	}
	if s.OutputThreshold <= 0 {
		return Settings{}, fmt.Errorf("output threshold must be > 0, got %d", s.OutputThreshold)
	}
	return s, nil
}

// getEnvBool returns the first set key's boolean value. Values strconv can
// parse are taken literally; any other non-empty value counts as true, which
// covers the NO_COLOR convention of "set means on".
func getEnvBool(keys ...string) (bool, bool) {
	for _, key := range keys {
		raw, ok := os.LookupEnv(key)
		if !ok || raw == "" {
			continue
		}
		if v, err := strconv.ParseBool(raw); err == nil {
			return v, true
		}
		return true, true
	}
	return false, false
}
