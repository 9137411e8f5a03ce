package config

// Config holds all configuration for the application.
type Config struct {
	Port          string      `koanf:"port"`
	DBName        string      `koanf:"db_name"`
	Turso         TursoConfig `koanf:"turso"`
	Slack         SlackConfig `koanf:"slack"`
	ProjectID     string      `koanf:"gcp_project"`
	ScorePolicy   string      `koanf:"score_policy"`
	PublicBaseURL string      `koanf:"public_base_url"`
	LogLevel      string      `koanf:"log_level"`
}

type SlackConfig struct {
	Token         string `koanf:"bot_token"`
	ChannelID     string `koanf:"channel_id"`
	SigningSecret string `koanf:"signing_secret"`
}

type TursoConfig struct {
	PrimaryURL string `koanf:"primary_url"`
	AuthToken  string `koanf:"auth_token"`
}

// SlackEnabled reports whether enough Slack settings are present to post
// notifications.
func (c Config) SlackEnabled() bool {
	return c.Slack.Token != "" && c.Slack.ChannelID != ""
}

// PubSubEnabled reports whether events should be published to Cloud Pub/Sub.
func (c Config) PubSubEnabled() bool {
	return c.ProjectID != ""
}
