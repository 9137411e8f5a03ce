package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mauv0809/padel-tracker/internal/config"
	"github.com/mauv0809/padel-tracker/internal/padel"
	"github.com/smartystreets/goconvey/convey"
)

func TestConfig_Default(t *testing.T) {
	convey.Convey("Given the default config", t, func() {
		cfg := config.Default()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.Port, convey.ShouldEqual, "8080")
			convey.So(cfg.DBName, convey.ShouldEqual, "padel.db")
			convey.So(cfg.Policy(), convey.ShouldEqual, padel.PolicyMinMaxAvg)
			convey.So(cfg.SlackEnabled(), convey.ShouldBeFalse)
			convey.So(cfg.PubSubEnabled(), convey.ShouldBeFalse)
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})
	})
}

func TestConfig_Load(t *testing.T) {
	convey.Convey("Given environment overrides", t, func() {
		t.Setenv("PADEL_PORT", "9090")
		t.Setenv("PADEL_SCORE_POLICY", "roundedScore")
		t.Setenv("PADEL_SLACK_BOT_TOKEN", "xoxb-test")
		t.Setenv("PADEL_SLACK_CHANNEL_ID", "C123")
		t.Setenv("PADEL_TURSO_PRIMARY_URL", "libsql://padel.turso.io")

		cfg, err := config.Load()

		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Port, convey.ShouldEqual, "9090")
		convey.So(cfg.Policy(), convey.ShouldEqual, padel.PolicyRoundedScore)
		convey.So(cfg.Slack.Token, convey.ShouldEqual, "xoxb-test")
		convey.So(cfg.Slack.ChannelID, convey.ShouldEqual, "C123")
		convey.So(cfg.Turso.PrimaryURL, convey.ShouldEqual, "libsql://padel.turso.io")
		convey.So(cfg.SlackEnabled(), convey.ShouldBeTrue)
	})
}

func TestConfig_LoadFile(t *testing.T) {
	convey.Convey("Given a YAML file and an env override", t, func() {
		path := filepath.Join(t.TempDir(), "padel.yaml")
		yaml := "port: \"7070\"\ndb_name: club.db\npublic_base_url: https://padel.example.com\nslack:\n  signing_secret: s3cret\n"
		convey.So(os.WriteFile(path, []byte(yaml), 0o600), convey.ShouldBeNil)
		t.Setenv(config.FileEnv, path)
		t.Setenv("PADEL_DB_NAME", "override.db")

		cfg, err := config.Load()

		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Port, convey.ShouldEqual, "7070")
		convey.So(cfg.DBName, convey.ShouldEqual, "override.db")
		convey.So(cfg.PublicBaseURL, convey.ShouldEqual, "https://padel.example.com")
		convey.So(cfg.Slack.SigningSecret, convey.ShouldEqual, "s3cret")
	})
}

func TestConfig_LoadInvalidPolicy(t *testing.T) {
	convey.Convey("Given an unknown score policy", t, func() {
		t.Setenv("PADEL_SCORE_POLICY", "median")

		_, err := config.Load()

		convey.So(errors.Is(err, config.ErrInvalidConfig), convey.ShouldBeTrue)
	})
}

func TestConfig_LoadMissingFile(t *testing.T) {
	convey.Convey("Given a missing config file", t, func() {
		t.Setenv(config.FileEnv, filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := config.Load()

		convey.So(errors.Is(err, config.ErrLoadConfig), convey.ShouldBeTrue)
	})
}

func TestConfig_Validate(t *testing.T) {
	convey.Convey("Given a Slack token without a channel", t, func() {
		cfg := config.Default()
		cfg.Slack.Token = "xoxb"

		convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
	})

	convey.Convey("Given a bad log level", t, func() {
		cfg := config.Default()
		cfg.LogLevel = "loud"

		convey.So(errors.Is(cfg.Validate(), config.ErrInvalidConfig), convey.ShouldBeTrue)
	})
}
