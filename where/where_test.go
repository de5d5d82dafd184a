package where

import (
	"path/filepath"
	"testing"

	"github.com/huepick/huepick/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Logs()", func() {
			path := Logs()
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
			So(filepath.Dir(path), ShouldEqual, Config())
		})

		Convey("Preferences() lives in the config dir", func() {
			So(filepath.Dir(Preferences()), ShouldEqual, Config())
			So(filepath.Base(Preferences()), ShouldEqual, "preferences.json")
		})

		Convey("ConfigFile() is the toml file", func() {
			So(filepath.Base(ConfigFile()), ShouldEqual, "huepick.toml")
		})
	})

	Convey("Given HUEPICK_CONFIG_PATH", t, func() {
		t.Setenv(EnvConfigPath, "/custom/huepick")

		Convey("Config() should honor it", func() {
			So(Config(), ShouldEqual, "/custom/huepick")
			So(lo.Must(filesystem.API().IsDir("/custom/huepick")), ShouldBeTrue)
		})
	})
}
