package find_available_slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

var (
	// ErrStaffNotFound возвращается, когда мастер не найден
	ErrStaffNotFound = fmt.Errorf("find_available_slots: staff %w", domain.ErrNotFound)

	// ErrStaffNotSchedulable возвращается, когда к сотруднику нельзя записать клиента
	ErrStaffNotSchedulable = fmt.Errorf("find_available_slots: staff is not schedulable: %w", domain.ErrInvalidInput)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("find_available_slots: %w", domain.ErrInvalidInput)

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("find_available_slots: internal error")
)
