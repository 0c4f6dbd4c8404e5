package xrotate

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// 默认配置值，面向命令行工具的诊断日志，体量远小于服务日志
const (
	// DefaultMaxSizeMB 默认单个日志文件最大大小（MB）
	DefaultMaxSizeMB = 10

	// DefaultMaxBackups 默认保留的备份文件数量
	DefaultMaxBackups = 3

	// DefaultMaxAgeDays 默认保留备份的天数
	DefaultMaxAgeDays = 7

	// DefaultCompress 默认是否压缩备份
	DefaultCompress = false

	// maxSizeMB 单个日志文件大小上限（1 GB）
	maxSizeMB = 1024

	// maxBackups 备份文件数量上限
	maxBackups = 100

	// maxAgeDays 备份保留天数上限
	maxAgeDays = 365

	// dirPerm 自动创建父目录时使用的权限
	dirPerm = 0o750
)

// config 轮转器配置
type config struct {
	// MaxSizeMB 超过此大小时触发轮转，必须 > 0
	MaxSizeMB int

	// MaxBackups 0 表示不限制数量（但仍受 MaxAgeDays 约束）
	MaxBackups int

	// MaxAgeDays 0 表示不按天数清理（但仍受 MaxBackups 约束）
	MaxAgeDays int

	Compress  bool
	LocalTime bool
}

// Option 轮转器配置选项函数
type Option func(*config)

// WithMaxSize 设置单个日志文件最大大小（MB）
func WithMaxSize(mb int) Option {
	return func(c *config) {
		c.MaxSizeMB = mb
	}
}

// WithMaxBackups 设置保留的备份文件数量
func WithMaxBackups(n int) Option {
	return func(c *config) {
		c.MaxBackups = n
	}
}

// WithMaxAge 设置保留备份的天数
func WithMaxAge(days int) Option {
	return func(c *config) {
		c.MaxAgeDays = days
	}
}

// WithCompress 设置是否 gzip 压缩备份文件
func WithCompress(compress bool) Option {
	return func(c *config) {
		c.Compress = compress
	}
}

// WithLocalTime 设置备份文件名是否使用本地时间（默认 UTC）
func WithLocalTime(local bool) Option {
	return func(c *config) {
		c.LocalTime = local
	}
}

// fileRotator 基于 lumberjack 的 Rotator 实现
type fileRotator struct {
	logger *lumberjack.Logger
	closed atomic.Bool
}

// NewLumberjack 创建基于 lumberjack 的日志轮转器。
//
// filename 会被规范化，不存在的父目录以 0750 权限创建。
// 文件本身由 lumberjack 在首次写入时延迟创建。
func NewLumberjack(filename string, opts ...Option) (Rotator, error) {
	if filename == "" {
		return nil, ErrEmptyFilename
	}

	cfg := config{
		MaxSizeMB:  DefaultMaxSizeMB,
		MaxBackups: DefaultMaxBackups,
		MaxAgeDays: DefaultMaxAgeDays,
		Compress:   DefaultCompress,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	path := filepath.Clean(filename)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return nil, fmt.Errorf("xrotate: create log directory: %w", err)
	}

	return &fileRotator{
		logger: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
			LocalTime:  cfg.LocalTime,
		},
	}, nil
}

func validateConfig(cfg *config) error {
	if cfg.MaxSizeMB <= 0 || cfg.MaxSizeMB > maxSizeMB {
		return fmt.Errorf("%w: got %d, want 1~%d", ErrInvalidMaxSize, cfg.MaxSizeMB, maxSizeMB)
	}
	if cfg.MaxBackups < 0 || cfg.MaxBackups > maxBackups {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxBackups, cfg.MaxBackups, maxBackups)
	}
	if cfg.MaxAgeDays < 0 || cfg.MaxAgeDays > maxAgeDays {
		return fmt.Errorf("%w: got %d, want 0~%d", ErrInvalidMaxAge, cfg.MaxAgeDays, maxAgeDays)
	}
	if cfg.MaxBackups == 0 && cfg.MaxAgeDays == 0 {
		return fmt.Errorf("%w: MaxBackups and MaxAgeDays cannot both be 0", ErrNoCleanupPolicy)
	}
	return nil
}

// Write 实现 io.Writer 接口
func (r *fileRotator) Write(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, ErrClosed
	}
	n, err := r.logger.Write(p)
	if err != nil && r.closed.Load() {
		// Close 可能在底层写入期间完成
		return n, ErrClosed
	}
	return n, err
}

// Close 实现 io.Closer 接口，重复调用返回 [ErrClosed]
func (r *fileRotator) Close() error {
	if r.closed.Swap(true) {
		return ErrClosed
	}
	return r.logger.Close()
}

// Rotate 手动触发轮转
func (r *fileRotator) Rotate() error {
	if r.closed.Load() {
		return ErrClosed
	}
	return r.logger.Rotate()
}
