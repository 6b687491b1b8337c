package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestLoadConfig(t *testing.T) {
	Convey("默认值", t, func() {
		cfg, err := loadConfig(nil, io.Discard)
		So(err, ShouldBeNil)
		So(cfg.Addr, ShouldEqual, "127.0.0.1:4221")
		So(cfg.Directory, ShouldBeEmpty)
		So(cfg.BufferSize, ShouldEqual, 256)
		So(cfg.LogLevel, ShouldEqual, "info")
	})

	Convey("--directory", t, func() {
		cfg, err := loadConfig([]string{"--directory", "/tmp/data"}, io.Discard)
		So(err, ShouldBeNil)
		So(cfg.Directory, ShouldEqual, "/tmp/data")
	})

	Convey("ini 配置文件", t, func() {
		path := filepath.Join(t.TempDir(), "server.ini")
		ini := "addr = 0.0.0.0:9000\ndirectory = /srv/files\nbuffer_size = 1024\nlog_level = debug\n"
		So(os.WriteFile(path, []byte(ini), 0o644), ShouldBeNil)

		Convey("读取所有键", func() {
			cfg, err := loadConfig([]string{"--config", path}, io.Discard)
			So(err, ShouldBeNil)
			So(cfg.Addr, ShouldEqual, "0.0.0.0:9000")
			So(cfg.Directory, ShouldEqual, "/srv/files")
			So(cfg.BufferSize, ShouldEqual, 1024)
			So(cfg.LogLevel, ShouldEqual, "debug")
		})

		Convey("显式的命令行参数覆盖配置文件", func() {
			cfg, err := loadConfig([]string{"--config", path, "--directory", "/tmp/x", "--log-level", "warn"}, io.Discard)
			So(err, ShouldBeNil)
			So(cfg.Directory, ShouldEqual, "/tmp/x")
			So(cfg.LogLevel, ShouldEqual, "warn")
			So(cfg.Addr, ShouldEqual, "0.0.0.0:9000")
		})
	})

	Convey("错误的配置", t, func() {
		Convey("配置文件不存在", func() {
			_, err := loadConfig([]string{"--config", filepath.Join(t.TempDir(), "nope.ini")}, io.Discard)
			So(err, ShouldNotBeNil)
		})

		Convey("buffer_size 不是正数", func() {
			path := filepath.Join(t.TempDir(), "server.ini")
			So(os.WriteFile(path, []byte("buffer_size = 0\n"), 0o644), ShouldBeNil)
			_, err := loadConfig([]string{"--config", path}, io.Discard)
			So(err, ShouldNotBeNil)
		})

		Convey("未知的日志级别", func() {
			_, err := loadConfig([]string{"--log-level", "loud"}, io.Discard)
			So(err, ShouldNotBeNil)
		})

		Convey("未知的参数", func() {
			_, err := loadConfig([]string{"--port", "1"}, io.Discard)
			So(err, ShouldNotBeNil)
		})
	})
}
