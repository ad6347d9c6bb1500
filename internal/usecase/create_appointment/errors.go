package create_appointment

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

var (
	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = fmt.Errorf("create_appointment: client %w", domain.ErrNotFound)

	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = fmt.Errorf("create_appointment: staff %w", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда ни одна из услуг не найдена
	ErrServiceNotFound = fmt.Errorf("create_appointment: service %w", domain.ErrNotFound)

	// ErrStaffNotSchedulable возвращается, когда к сотруднику нельзя записать клиента
	ErrStaffNotSchedulable = fmt.Errorf("create_appointment: staff is not schedulable: %w", domain.ErrInvalidInput)

	// ErrSlotConflict возвращается, когда интервал пересекается с другой записью мастера
	ErrSlotConflict = fmt.Errorf("create_appointment: slot %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_appointment: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
