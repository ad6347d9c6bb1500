package assistant

import "context"

// TextGenerator генерация текста по промпту
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
