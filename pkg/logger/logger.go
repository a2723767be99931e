// Package logger 提供统一的日志框架
package logger

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	once   sync.Once
	logger zerolog.Logger
)

// Level 日志级别
type Level = zerolog.Level

const (
	DebugLevel = zerolog.DebugLevel
	InfoLevel  = zerolog.InfoLevel
	WarnLevel  = zerolog.WarnLevel
	ErrorLevel = zerolog.ErrorLevel
	FatalLevel = zerolog.FatalLevel
)

// Config 日志配置
type Config struct {
	Level      string `yaml:"level" json:"level"`
	Format     string `yaml:"format" json:"format"` // json/console
	Output     string `yaml:"output" json:"output"` // stdout/stderr/file
	FilePath   string `yaml:"file_path,omitempty" json:"file_path,omitempty"`
	TimeFormat string `yaml:"time_format,omitempty" json:"time_format,omitempty"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: time.RFC3339,
	}
}

// Init 初始化日志器
func Init(cfg Config) {
	once.Do(func() {
		level := parseLevel(cfg.Level)
		zerolog.SetGlobalLevel(level)

		var output io.Writer
		switch cfg.Output {
		case "stderr":
			output = os.Stderr
		case "file":
			if cfg.FilePath != "" {
				f, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
				if err == nil {
					output = f
				} else {
					output = os.Stdout
				}
			} else {
				output = os.Stdout
			}
		default:
			output = os.Stdout
		}

		if cfg.Format == "console" {
			output = zerolog.ConsoleWriter{
				Out:        output,
				TimeFormat: cfg.TimeFormat,
			}
		}

		logger = zerolog.New(output).With().Timestamp().Logger()
	})
}

// parseLevel 解析日志级别
func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// Get 获取日志器
func Get() *zerolog.Logger {
	if logger.GetLevel() == zerolog.Disabled {
		Init(DefaultConfig())
	}
	return &logger
}

// ctxKey 上下文键类型，避免与其他包的字符串键冲突
type ctxKey string

// RequestIDKey 请求ID在上下文中的键，由HTTP中间件写入
const RequestIDKey ctxKey = "request_id"

// WithContext 从上下文创建日志器
func WithContext(ctx context.Context) *zerolog.Logger {
	l := Get().With().Logger()

	// 添加请求ID
	if reqID, ok := ctx.Value(RequestIDKey).(string); ok {
		l = l.With().Str("request_id", reqID).Logger()
	}

	return &l
}

// Debug 记录调试日志
func Debug() *zerolog.Event {
	return Get().Debug()
}

// Info 记录信息日志
func Info() *zerolog.Event {
	return Get().Info()
}

// Warn 记录警告日志
func Warn() *zerolog.Event {
	return Get().Warn()
}

// Error 记录错误日志
func Error() *zerolog.Event {
	return Get().Error()
}

// Fatal 记录致命错误日志
func Fatal() *zerolog.Event {
	return Get().Fatal()
}

// WithError 添加错误信息
func WithError(err error) *zerolog.Event {
	return Get().Error().Err(err)
}

// AllocatorLogger 分配引擎专用日志器
type AllocatorLogger struct {
	base *zerolog.Logger
}

// NewAllocatorLogger 创建分配引擎日志器
func NewAllocatorLogger() *AllocatorLogger {
	l := Get().With().Str("component", "allocator").Logger()
	return &AllocatorLogger{base: &l}
}

// StartAllocation 记录分配开始
func (l *AllocatorLogger) StartAllocation(turns, stands, rules int) {
	l.base.Info().
		Int("turns", turns).
		Int("stands", stands).
		Int("rules", rules).
		Msg("开始机位分配")
}

// ModelBuilt 记录模型装配完成
func (l *AllocatorLogger) ModelBuilt(candidates, bools, intervals int) {
	l.base.Debug().
		Int("candidates", candidates).
		Int("bool_vars", bools).
		Int("interval_vars", intervals).
		Msg("约束模型装配完成")
}

// AllocationComplete 记录分配完成
func (l *AllocatorLogger) AllocationComplete(status string, assigned int, duration time.Duration) {
	l.base.Info().
		Str("status", status).
		Int("assigned", assigned).
		Dur("duration", duration).
		Msg("机位分配完成")
}
