// Package log 提供 honeybadger 统一日志接口
//
// 基于 Go 标准库 log/slog 封装，提供按组件划分的日志 API。
// 库自身不改写进程级默认 logger：组件 logger 在每次调用时
// 解析 slog.Default()，沿用宿主程序的日志配置；宿主也可以
// 通过 SetDefault/SetOutput 显式接管。
package log

import (
	"io"
	"log/slog"
)

// 日志级别常量（从 slog 导出，方便使用）
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// SetDefault 设置默认 logger
//
// 库内所有组件 logger 都会在下一次日志调用时使用新的默认 logger，
// 宿主程序可借此把库日志并入自己的日志管线。
func SetDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// SetOutput 将日志输出重定向到指定 Writer（Info 级别）
func SetOutput(w io.Writer) {
	SetOutputWithLevel(w, slog.LevelInfo)
}

// SetOutputWithLevel 同时设置日志输出目标和级别
func SetOutputWithLevel(w io.Writer, level slog.Level) {
	opts := &slog.HandlerOptions{
		Level: level,
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, opts)))
}

// ============================================================================
//                              ComponentLogger
// ============================================================================

// ComponentLogger 按组件命名的懒加载 logger
//
// 每次日志调用时都从 slog.Default() 获取最新的 handler，
// 支持在运行时动态切换日志输出目标。
type ComponentLogger struct {
	component string
}

// Logger 返回带组件名的 ComponentLogger
//
// 使用方式：
//
//	var logger = log.Logger("core/worker")
//	logger.Info("worker started")
func Logger(component string) *ComponentLogger {
	return &ComponentLogger{component: component}
}

// Debug 输出 Debug 级别日志
func (l *ComponentLogger) Debug(msg string, args ...any) {
	slog.Default().With("component", l.component).Debug(msg, args...)
}

// Info 输出 Info 级别日志
func (l *ComponentLogger) Info(msg string, args ...any) {
	slog.Default().With("component", l.component).Info(msg, args...)
}

// Warn 输出 Warn 级别日志
func (l *ComponentLogger) Warn(msg string, args ...any) {
	slog.Default().With("component", l.component).Warn(msg, args...)
}

// Error 输出 Error 级别日志
func (l *ComponentLogger) Error(msg string, args ...any) {
	slog.Default().With("component", l.component).Error(msg, args...)
}

// With 添加额外的属性
func (l *ComponentLogger) With(args ...any) *slog.Logger {
	return slog.Default().With("component", l.component).With(args...)
}
