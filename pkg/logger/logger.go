package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config 日志配置
type Config struct {
	Level  string // debug | info | warn | error
	Format string // console | json
	Output string // stdout | stderr
}

// New 创建zerolog日志器
// 设计说明：
// 1. json格式用于生产（便于采集），console格式用于本地开发
// 2. 统一带时间戳和service字段，便于多服务环境下检索
func New(cfg Config) zerolog.Logger {
	var out *os.File
	switch cfg.Output {
	case "stderr":
		out = os.Stderr
	default:
		out = os.Stdout
	}

	var w = zerolog.New(out)
	if cfg.Format == "console" {
		w = zerolog.New(zerolog.ConsoleWriter{Out: out})
	}

	return w.Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Str("service", "bookreview").
		Logger()
}

// Nop 空日志器（测试用）
func Nop() zerolog.Logger {
	return zerolog.Nop()
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
