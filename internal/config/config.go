// Package config holds globally available configuration for the engine,
// populated from defaults and optionally overridden by a TOML file.
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/chessforge/engine/internal/util"
)

// ConfFile is the path to the config file, relative to the working
// directory unless ResolveFile finds it next to the executable instead.
var ConfFile = "./config.toml"

// LogLevel is the standard log level (0-5, matching op/go-logging's
// CRITICAL..DEBUG scale). Not read by the loggers, which use
// Settings.Log.Level; the -loglvl flag writes that field, not this one.
var LogLevel = 4

// Settings is the global, TOML-backed configuration.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads the config file (if present) over the compiled-in defaults.
// Safe to call more than once; only the first call has effect.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("config file present but could not be parsed, using defaults:", err)
		}
	}
	initialized = true
}
