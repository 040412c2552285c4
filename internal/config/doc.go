// Package config loads and resolves hl's runtime configuration.
//
// Resolution applies an explicit priority order: CLI flags beat environment
// variables, which beat the .hl.yaml file, which beat built-in defaults.
// Configuration trouble is reported as a stderr warning and never aborts
// the run; the editor plugin would otherwise lose its listing over a typo.
package config
