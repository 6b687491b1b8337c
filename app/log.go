package main

import (
	"fmt"

	"github.com/astaxie/beego/logs"
)

var logLevels = map[string]int{
	"debug": logs.LevelDebug,
	"info":  logs.LevelInformational,
	"warn":  logs.LevelWarning,
	"error": logs.LevelError,
}

// newLogger 控制台日志，level 取 logLevels 里的名字，未知的名字按 info 处理
func newLogger(level string) (*logs.BeeLogger, error) {
	l := logs.NewLogger()
	if err := l.SetLogger(logs.AdapterConsole); err != nil {
		return nil, fmt.Errorf("init console logger: %w", err)
	}
	lv, ok := logLevels[level]
	if !ok {
		lv = logs.LevelInformational
	}
	l.SetLevel(lv)
	return l, nil
}
