package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

// Logger логгер сервиса с printf-интерфейсом поверх slog.
// Пишет JSON в stdout и, если указан файл, дублирует записи в него.
type Logger struct {
	slog *slog.Logger
	file *os.File
}

// New создает логгер. Пустой filePath означает вывод только в stdout.
func New(filePath string, level string) (*Logger, error) {
	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", filePath, err)
		}
		file = f
		out = io.MultiWriter(os.Stdout, f)
	}

	return &Logger{
		slog: slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: parseLevel(level)})),
		file: file,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level string) *Logger {
	return &Logger{
		slog: slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseLevel(level)})),
	}
}

// Nop возвращает логгер, который ничего не пишет
func Nop() *Logger {
	return NewWithWriter(io.Discard, LevelError)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) log(level slog.Level, format string, v ...interface{}) {
	if !l.slog.Enabled(context.Background(), level) {
		return
	}
	l.slog.Log(context.Background(), level, fmt.Sprintf(format, v...))
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log(slog.LevelDebug, format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log(slog.LevelInfo, format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log(slog.LevelWarn, format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
}

// Fatal логирует ошибку и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log(slog.LevelError, format, v...)
	_ = l.Close()
	os.Exit(1)
}

// Slog возвращает нижележащий slog.Logger для библиотек, которые его принимают
func (l *Logger) Slog() *slog.Logger {
	return l.slog
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
