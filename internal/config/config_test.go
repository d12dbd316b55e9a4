package config_test

import (
	"testing"

	"github.com/smartystreets/goconvey/convey"

	"github.com/pable/go-pitch-metrics/internal/config"
)

func TestConfig_New(t *testing.T) {
	convey.Convey("Given a new config with defaults", t, func() {
		cfg := config.New()

		convey.Convey("Then it should have sensible defaults", func() {
			convey.So(cfg.LogLevel, convey.ShouldEqual, "info")
			convey.So(cfg.LogFormat, convey.ShouldEqual, "text")
			convey.So(cfg.Delimiter, convey.ShouldEqual, ";")
			convey.So(cfg.TopN, convey.ShouldEqual, 5)
			convey.So(cfg.DBPath, convey.ShouldEndWith, "events.db")
			convey.So(cfg.Validate(), convey.ShouldBeNil)
		})

		convey.Convey("Then the delimiter rune falls back to a semicolon", func() {
			cfg.Delimiter = ""
			convey.So(cfg.DelimiterRune(), convey.ShouldEqual, ';')
			cfg.Delimiter = ","
			convey.So(cfg.DelimiterRune(), convey.ShouldEqual, ',')
		})
	})
}
