package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/astaxie/beego/config"
)

const (
	defaultAddr       = "127.0.0.1:4221"
	defaultBufferSize = 256 // 单次读取的缓冲区大小，也是请求的最大长度
	defaultLogLevel   = "info"
)

// Config 服务器配置，启动后只读
type Config struct {
	Addr       string
	Directory  string // --directory，空表示 /files/ 路由不可用
	BufferSize int
	LogLevel   string
}

func defaultConfig() *Config {
	return &Config{
		Addr:       defaultAddr,
		BufferSize: defaultBufferSize,
		LogLevel:   defaultLogLevel,
	}
}

// loadConfig 解析命令行参数（不含程序名）
// 优先级：默认值 < --config 指定的 ini 文件 < 显式传入的命令行参数
// 示例：./your_program.sh --directory /tmp/data/...
func loadConfig(args []string, output io.Writer) (*Config, error) {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("http-server", flag.ContinueOnError)
	fs.SetOutput(output)
	var (
		addr      = fs.String("addr", cfg.Addr, "listen address")
		directory = fs.String("directory", "", "root directory served under /files/")
		iniFile   = fs.String("config", "", "optional ini config file")
		logLevel  = fs.String("log-level", cfg.LogLevel, "log level: debug|info|warn|error")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *iniFile != "" {
		if err := cfg.loadIni(*iniFile); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "addr":
			cfg.Addr = *addr
		case "directory":
			cfg.Directory = *directory
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadIni 读取 ini 配置，缺省的键保持原值
//
//	addr = 127.0.0.1:4221
//	directory = /tmp/data
//	buffer_size = 256
//	log_level = debug
func (c *Config) loadIni(path string) error {
	cnf, err := config.NewConfig("ini", path)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	c.Addr = cnf.DefaultString("addr", c.Addr)
	c.Directory = cnf.DefaultString("directory", c.Directory)
	c.BufferSize = cnf.DefaultInt("buffer_size", c.BufferSize)
	c.LogLevel = cnf.DefaultString("log_level", c.LogLevel)
	return nil
}

func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("invalid config: empty addr")
	}
	if c.BufferSize <= 0 {
		return fmt.Errorf("invalid config: buffer_size must be positive, got %d", c.BufferSize)
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("invalid config: unknown log level %q", c.LogLevel)
	}
	return nil
}
