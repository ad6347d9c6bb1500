package catalog

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = fmt.Errorf("catalog: client %w", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("catalog: service %w", domain.ErrNotFound)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("catalog: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
