package where

import (
	"os"
	"strings"
	"testing"

	"github.com/picsan-cli/picsan/filesystem"
	"github.com/picsan-cli/picsan/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestConfig(t *testing.T) {
	Convey("Config path", t, func() {
		Convey("Should honor the override environment variable", func() {
			So(os.Setenv(EnvConfigPath, "/custom/config"), ShouldBeNil)
			defer os.Unsetenv(EnvConfigPath)

			So(Config(), ShouldEqual, "/custom/config")
		})
	})
}

func TestDownloads(t *testing.T) {
	Convey("Downloads path", t, func() {
		Convey("Should honor the download.path setting", func() {
			viper.Set(key.DownloadPath, "/my/albums")
			defer viper.Set(key.DownloadPath, "")

			So(Downloads(), ShouldEqual, "/my/albums")
		})

		Convey("Should fall back to a localized albums directory", func() {
			viper.Set(key.DownloadPath, "")
			So(Downloads(), ShouldEqual, "albums")
		})
	})
}

func TestLogs(t *testing.T) {
	Convey("Logs path", t, func() {
		So(os.Setenv(EnvConfigPath, "/custom/config"), ShouldBeNil)
		defer os.Unsetenv(EnvConfigPath)

		So(Logs(), ShouldEqual, "/custom/config/logs")
	})
}

func TestQueries(t *testing.T) {
	Convey("Queries path", t, func() {
		So(strings.HasSuffix(Queries(), "queries.json"), ShouldBeTrue)
	})
}
