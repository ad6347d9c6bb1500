package appointments

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("appointments: appointment %w", domain.ErrNotFound)

	// ErrInvalidStatus возвращается при попытке установить неизвестный статус
	ErrInvalidStatus = fmt.Errorf("appointments: invalid status: %w", domain.ErrInvalidInput)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("appointments: %w", domain.ErrInvalidInput)

	// ErrSlotConflict возвращается, когда восстановленная запись пересекается с другой
	ErrSlotConflict = fmt.Errorf("appointments: slot %w", domain.ErrConflict)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("appointments: internal error")
)
