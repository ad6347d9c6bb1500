package assistant

import "errors"

var (
	// ErrMissingAPIKey возвращается, когда ключ Gemini не задан
	ErrMissingAPIKey = errors.New("assistant: gemini api key is required")

	// ErrEmptyResponse возвращается, когда модель не вернула текста
	ErrEmptyResponse = errors.New("assistant: empty model response")

	// ErrGenerate возвращается при ошибке вызова модели
	ErrGenerate = errors.New("assistant: generation failed")
)
