// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config loads run settings from an env-format file and the process
// environment, applies defaults, and validates them.
//
// The env file (default ".env") uses KEY=value pairs with the same names the
// original deployment documented: OPENAI_API_KEY, DEFAULT_MODEL,
// DEFAULT_LANGUAGE, MCP_SERVERS, UNSPLASH_ACCESS_KEY, and so on. Process
// environment variables take precedence over the file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/auto-blogger/pkg/types"
)

// DefaultEnvFile is the env file read when no --config flag is given.
const DefaultEnvFile = ".env"

// ErrMissingAPIKey reports that the completion endpoint credential is unset.
// Generation cannot proceed without it; init and version can.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is not set: run `auto-blogger init` and edit the generated .env file")

// defaults for every optional setting.
const (
	defaultModel       = "gpt-4o-mini"
	defaultLanguage    = "Korean"
	defaultTemperature = 0.7
	defaultImageCount  = 1
	defaultTimeout     = 30 * time.Second
	defaultUserAgent   = "auto-blogger/0.1"
)

// Load reads envFile (missing file is not an error) and the process
// environment into a Settings value with defaults applied. The returned
// Settings are immutable for the rest of the run.
func Load(envFile string) (types.Settings, error) {
	v := viper.New()

	v.SetDefault("DEFAULT_MODEL", defaultModel)
	v.SetDefault("DEFAULT_LANGUAGE", defaultLanguage)
	v.SetDefault("DEFAULT_TONE", string(types.ToneProfessional))
	v.SetDefault("DEFAULT_LENGTH", string(types.LengthMedium))
	v.SetDefault("TEMPERATURE", defaultTemperature)
	v.SetDefault("DEFAULT_IMAGE_COUNT", defaultImageCount)
	v.SetDefault("REQUEST_TIMEOUT", defaultTimeout.String())
	v.AutomaticEnv()

	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")
		if err := v.ReadInConfig(); err != nil {
			return types.Settings{}, fmt.Errorf("reading %s: %w", envFile, err)
		}
	}

	timeout, err := time.ParseDuration(v.GetString("REQUEST_TIMEOUT"))
	if err != nil {
		return types.Settings{}, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	s := types.Settings{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		APIKey:                strings.TrimSpace(v.GetString("OPENAI_API_KEY")),
		APIBase:               strings.TrimSpace(v.GetString("OPENAI_API_BASE")),
		Model:                 v.GetString("DEFAULT_MODEL"),
		Language:              v.GetString("DEFAULT_LANGUAGE"),
		Tone:                  types.Tone(v.GetString("DEFAULT_TONE")),
		Length:                types.Length(v.GetString("DEFAULT_LENGTH")),
		Temperature:           v.GetFloat64("TEMPERATURE"),
		MCPServers:            splitServers(v.GetString("MCP_SERVERS")),
		ImageCount:            v.GetInt("DEFAULT_IMAGE_COUNT"),
		UnsplashApplicationID: strings.TrimSpace(v.GetString("UNSPLASH_APPLICATION_ID")),
		UnsplashAccessKey:     strings.TrimSpace(v.GetString("UNSPLASH_ACCESS_KEY")),
		UnsplashSecretKey:     strings.TrimSpace(v.GetString("UNSPLASH_SECRET_KEY")),
	}

	if err := Validate(s); err != nil {
		return types.Settings{}, err
	}
	return s, nil
}

// Validate checks every enumerated or bounded field. It does not check the
// API key; see RequireAPIKey.
func Validate(s types.Settings) error {
	switch s.Tone {
	case types.ToneProfessional, types.ToneCasual, types.ToneTechnical:
	default:
		return fmt.Errorf("invalid tone %q: must be professional, casual, or technical", s.Tone)
	}
	switch s.Length {
	case types.LengthShort, types.LengthMedium, types.LengthLong:
	default:
		return fmt.Errorf("invalid length %q: must be short, medium, or long", s.Length)
	}
	if s.Temperature < 0 || s.Temperature > 2 {
		return fmt.Errorf("invalid temperature %v: must be between 0 and 2", s.Temperature)
	}
	if s.ImageCount < 0 || s.ImageCount > 3 {
		return fmt.Errorf("invalid image count %d: must be between 0 and 3", s.ImageCount)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("invalid timeout %v: must be positive", s.Timeout)
	}
	return nil
}

// RequireAPIKey returns ErrMissingAPIKey when the completion credential is
// unset. Called by operations that will reach the completion endpoint.
func RequireAPIKey(s types.Settings) error {
	if s.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}

// splitServers parses the comma-separated MCP_SERVERS value, dropping empty
// entries. Order is preserved: it determines snippet order in the output.
func splitServers(raw string) []string {
	var servers []string
	for _, part := range strings.Split(raw, ",") {
		if s := strings.TrimSpace(part); s != "" {
			servers = append(servers, s)
		}
	}
	return servers
}
