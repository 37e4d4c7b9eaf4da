// Package logger provides leveled, structured logging backed by zap.
package logger

import (
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/attaebra/familytv/internal/constants"
)

// LogLevel represents the various logging levels
type LogLevel int

const (
	// LevelError only logs errors
	LevelError LogLevel = iota
	// LevelWarn logs warnings and errors
	LevelWarn
	// LevelInfo logs info, warnings, and errors
	LevelInfo
	// LevelDebug logs everything
	LevelDebug
)

// Field is a single structured key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

var (
	// mutex to protect the default logger
	mu sync.RWMutex
	// default logger used by the package level functions
	std *ZapLogger
	// history shared by every logger in the process
	history = NewHistory(constants.DefaultHistorySize)
)

func init() {
	std = NewZapLogger(LevelInfo)
}

// ZapLogger is a leveled logger writing to stderr and the shared history.
type ZapLogger struct {
	level zap.AtomicLevel
	zap   *zap.Logger
}

// NewZapLogger creates a logger at the given level.
func NewZapLogger(level LogLevel) *ZapLogger {
	atom := zap.NewAtomicLevelAt(level.zapLevel())

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	sink := zapcore.NewMultiWriteSyncer(zapcore.Lock(os.Stderr), history)
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), sink, atom)

	return &ZapLogger{
		level: atom,
		zap:   zap.New(core),
	}
}

// SetLevel changes the level of this logger.
func (l *ZapLogger) SetLevel(level LogLevel) {
	l.level.SetLevel(level.zapLevel())
}

// Level returns the current level of this logger.
func (l *ZapLogger) Level() LogLevel {
	return fromZapLevel(l.level.Level())
}

// Debug logs a debug message
func (l *ZapLogger) Debug(msg string, fields ...Field) {
	l.zap.Debug(msg, toZap(fields)...)
}

// Info logs an info message
func (l *ZapLogger) Info(msg string, fields ...Field) {
	l.zap.Info(msg, toZap(fields)...)
}

// Warn logs a warning message
func (l *ZapLogger) Warn(msg string, fields ...Field) {
	l.zap.Warn(msg, toZap(fields)...)
}

// Error logs an error message
func (l *ZapLogger) Error(msg string, fields ...Field) {
	l.zap.Error(msg, toZap(fields)...)
}

// Fatal logs a fatal error message and exits
func (l *ZapLogger) Fatal(msg string, fields ...Field) {
	l.zap.Fatal(msg, toZap(fields)...)
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.zap.Sync()
}

// SetLevel sets the current logging level
func SetLevel(level LogLevel) {
	mu.RLock()
	defer mu.RUnlock()
	std.SetLevel(level)
}

// GetLevel returns the current logging level
func GetLevel() LogLevel {
	mu.RLock()
	defer mu.RUnlock()
	return std.Level()
}

// Default returns the logger behind the package level functions.
func Default() *ZapLogger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

// Recent returns the tail of log output produced by this process.
func Recent() string {
	return string(history.Bytes())
}

// SetHistorySize changes how many bytes of recent output Recent keeps.
func SetHistorySize(size int) {
	history.Resize(size)
}

// LevelFromString converts a string log level to LogLevel
func LevelFromString(level string) LogLevel {
	switch level {
	case "error":
		return LevelError
	case "warn":
		return LevelWarn
	case "info":
		return LevelInfo
	case "debug":
		return LevelDebug
	default:
		return LevelInfo
	}
}

// Debug logs a debug message
func Debug(msg string, fields ...Field) {
	Default().Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...Field) {
	Default().Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...Field) {
	Default().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...Field) {
	Default().Error(msg, fields...)
}

// Fatal logs a fatal error message and exits
func Fatal(msg string, fields ...Field) {
	Default().Fatal(msg, fields...)
}

// String returns the string representation of a log level
func (l LogLevel) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarn:
		return "warn"
	case LevelDebug:
		return "debug"
	default:
		return "info"
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LevelError:
		return zapcore.ErrorLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelDebug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func fromZapLevel(l zapcore.Level) LogLevel {
	switch {
	case l <= zapcore.DebugLevel:
		return LevelDebug
	case l == zapcore.InfoLevel:
		return LevelInfo
	case l == zapcore.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

// String creates a string field.
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Int creates an int field.
func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// Int64 creates an int64 field.
func Int64(key string, value int64) Field {
	return Field{Key: key, Value: value}
}

// Bool creates a bool field.
func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field {
	return Field{Key: key, Value: value}
}

// ErrorField creates a field holding an error.
func ErrorField(key string, err error) Field {
	return Field{Key: key, Value: err}
}

// Any creates a field holding an arbitrary value.
func Any(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

func toZap(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			out = append(out, zap.NamedError(f.Key, v))
		case fmt.Stringer:
			out = append(out, zap.Stringer(f.Key, v))
		default:
			out = append(out, zap.Any(f.Key, v))
		}
	}
	return out
}
