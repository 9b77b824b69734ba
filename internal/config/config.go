// Package config resolves runtime settings from the environment, with an
// optional .env file for local overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables. LISTINHA_DATA_DIR overrides where the list
// document and debug log live; LISTINHA_VOICE_CMD names the external
// speech-capture command; LISTINHA_DEBUG enables file logging.
const (
	EnvDataDir  = "LISTINHA_DATA_DIR"
	EnvVoiceCmd = "LISTINHA_VOICE_CMD"
	EnvDebug    = "LISTINHA_DEBUG"
)

type Config struct {
	DataDir  string
	VoiceCmd string // empty: voice capture not supported on this host
	Debug    bool
}

// Load reads the configuration. A .env in the working directory is applied
// first if present; a missing .env is not an error.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		VoiceCmd: os.Getenv(EnvVoiceCmd),
	}
	if v := os.Getenv(EnvDebug); v != "" {
		cfg.Debug, _ = strconv.ParseBool(v)
	}

	if dir := os.Getenv(EnvDataDir); dir != "" {
		cfg.DataDir = dir
		return cfg, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to the working directory rather than failing: the
		// app must stay usable.
		wd, werr := os.Getwd()
		if werr != nil {
			return cfg, werr
		}
		cfg.DataDir = wd
		return cfg, nil
	}
	cfg.DataDir = filepath.Join(home, ".listinha")
	return cfg, nil
}

// LogPath is where the debug log goes when Debug is on.
func (c Config) LogPath() string {
	return filepath.Join(c.DataDir, "listinha.log")
}
