package events

import "errors"

var (
	// ErrPublish возвращается, когда событие не удалось отправить в брокер
	ErrPublish = errors.New("events: failed to publish event")

	// ErrInvalidConfig возвращается при некорректных параметрах продюсера
	ErrInvalidConfig = errors.New("events: invalid producer config")
)
