// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries everything the curator needs to run. Spotify credentials
// feed the OAuth client; the refresh token is the listener-bound session
// handle obtained out of band (the OAuth dance itself is not part of this
// tool).
type Config struct {
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID,required"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET,required"`
	SpotifyRefreshToken string `env:"SPOTIFY_REFRESH_TOKEN,required"`
	SpotifyRedirectURL  string `env:"SPOTIFY_REDIRECT_URI" envDefault:"http://localhost:8888/callback"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"` // empty disables AI features
	GeminiModel  string `env:"GEMINI_MODEL"`

	Market       string `env:"CURATOR_MARKET" envDefault:"US"`
	PlaylistSize int    `env:"CURATOR_PLAYLIST_SIZE" envDefault:"25"`
	TimeRange    string `env:"CURATOR_TIME_RANGE" envDefault:"medium"`
	DBPath       string `env:"CURATOR_DB_PATH" envDefault:"curator.db"`

	Mood     string `env:"CURATOR_MOOD"`
	Theme    string `env:"CURATOR_THEME"`
	Occasion string `env:"CURATOR_OCCASION"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
