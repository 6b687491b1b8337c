package main

import (
	"testing"

	"github.com/astaxie/beego/logs"
	. "github.com/smartystreets/goconvey/convey"
)

// quietLogger 测试里只输出 error 级别的日志
func quietLogger() *logs.BeeLogger {
	l, err := newLogger("error")
	if err != nil {
		panic(err)
	}
	return l
}

func TestNewLogger(t *testing.T) {
	Convey("按名字设置日志级别", t, func() {
		for name, level := range logLevels {
			l, err := newLogger(name)
			So(err, ShouldBeNil)
			So(l.GetLevel(), ShouldEqual, level)
		}
	})

	Convey("未知的名字按 info 处理", t, func() {
		l, err := newLogger("loud")
		So(err, ShouldBeNil)
		So(l.GetLevel(), ShouldEqual, logs.LevelInformational)
	})
}
