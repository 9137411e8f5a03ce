package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mauv0809/padel-tracker/internal/padel"
)

const (
	envPrefix = "PADEL_"
	// FileEnv names the optional YAML file layered under the environment.
	FileEnv = "PADEL_CONFIG"
)

// groups are the nested config sections; PADEL_SLACK_BOT_TOKEN maps to slack.bot_token.
var groups = []string{"slack", "turso"}

// Default returns the configuration used when nothing overrides a key.
func Default() Config {
	return Config{
		Port:          "8080",
		DBName:        "padel.db",
		ScorePolicy:   string(padel.PolicyMinMaxAvg),
		PublicBaseURL: "http://localhost:8080",
		LogLevel:      "info",
	}
}

// Load reads configuration in order of precedence (low -> high):
//  1. defaults
//  2. the YAML file named by PADEL_CONFIG, if set
//  3. environment variables prefixed PADEL_, including those from a .env file
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	k := koanf.New(".")
	if path := os.Getenv(FileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %v", ErrLoadConfig, path, err)
		}
	}
	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func envKey(s string) string {
	s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	for _, g := range groups {
		if strings.HasPrefix(s, g+"_") {
			return g + "." + strings.TrimPrefix(s, g+"_")
		}
	}
	return s
}

// Validate checks the values a running server depends on.
func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("%w: port must not be empty", ErrInvalidConfig)
	}
	if c.DBName == "" && c.Turso.PrimaryURL == "" {
		return fmt.Errorf("%w: either db_name or turso.primary_url must be set", ErrInvalidConfig)
	}
	if _, err := padel.ParseScorePolicy(c.ScorePolicy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalidConfig, err)
	}
	if (c.Slack.Token == "") != (c.Slack.ChannelID == "") {
		return fmt.Errorf("%w: slack.bot_token and slack.channel_id must be set together", ErrInvalidConfig)
	}
	return nil
}

// Policy returns the validated score policy.
func (c Config) Policy() padel.ScorePolicy {
	p, err := padel.ParseScorePolicy(c.ScorePolicy)
	if err != nil {
		return padel.PolicyMinMaxAvg
	}
	return p
}
