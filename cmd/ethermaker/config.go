package main

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/io7m-com/ethermaker/pkg/config/xconf"
)

const (
	defaultLogLevel  = "info"
	defaultLogFormat = "text"
	defaultCount     = 1
)

// cliConfig 是配置文件的结构。优先级：显式 flag > 配置文件 > 内置默认值。
//
//	log:
//	  level: debug
//	  file: /var/log/ethermaker.log
//	generate:
//	  organization: f497c2
//	  count: 10
//	  local: true
//	  max_attempts: 100000
type cliConfig struct {
	Log      logConfig      `koanf:"log"`
	Describe describeConfig `koanf:"describe"`
	Generate generateConfig `koanf:"generate"`
}

type logConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	File   string `koanf:"file"`
}

type describeConfig struct {
	Format string `koanf:"format"`
}

type generateConfig struct {
	// Organization 为 nil 表示未指定；显式给出的空串同样要经过校验
	Organization *string `koanf:"organization"`
	Local        bool    `koanf:"local"`
	Unicast      bool    `koanf:"unicast"`
	Multicast    bool    `koanf:"multicast"`
	Count        int     `koanf:"count"`
	MaxAttempts  int     `koanf:"max_attempts"`
	Format       string  `koanf:"format"`
}

func defaultConfig() cliConfig {
	return cliConfig{
		Log: logConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Generate: generateConfig{
			Unicast: true,
			Count:   defaultCount,
		},
	}
}

// loadConfig 在默认值之上叠加配置文件。path 为空时只返回默认值。
func loadConfig(path string) (cliConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	c, err := xconf.New(path, xconf.WithStrict())
	if err != nil {
		return cfg, err
	}
	if err := c.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// applyLogFlags 用显式设置的全局 flag 覆盖日志配置。
func applyLogFlags(cmd *cli.Command, cfg *logConfig) {
	if cmd.IsSet("log-level") {
		cfg.Level = cmd.String("log-level")
	}
	if cmd.IsSet("log-format") {
		cfg.Format = cmd.String("log-format")
	}
	if cmd.IsSet("log-file") {
		cfg.File = cmd.String("log-file")
	}
}

// applyGenerateFlags 用显式设置的 generate flag 覆盖生成配置。
func applyGenerateFlags(cmd *cli.Command, cfg *generateConfig) {
	if cmd.IsSet("organization") {
		org := cmd.String("organization")
		cfg.Organization = &org
	}
	if cmd.IsSet("local") {
		cfg.Local = cmd.Bool("local")
	}
	if cmd.IsSet("unicast") {
		cfg.Unicast = cmd.Bool("unicast")
	}
	if cmd.IsSet("multicast") {
		cfg.Multicast = cmd.Bool("multicast")
	}
	if cmd.IsSet("count") {
		cfg.Count = cmd.Int("count")
	}
	if cmd.IsSet("max-attempts") {
		cfg.MaxAttempts = cmd.Int("max-attempts")
	}
	if cmd.IsSet("format") {
		cfg.Format = cmd.String("format")
	}
}
