package update_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("update_appointment: appointment %w", domain.ErrNotFound)

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = fmt.Errorf("update_appointment: client %w", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда ни одна из услуг не найдена
	ErrServiceNotFound = fmt.Errorf("update_appointment: service %w", domain.ErrNotFound)

	// ErrSlotConflict возвращается, когда новый интервал пересекается с другой записью мастера
	ErrSlotConflict = fmt.Errorf("update_appointment: slot %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("update_appointment: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
