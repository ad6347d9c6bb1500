package storage

import (
	"fmt"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Ошибки, общие для всех реализаций хранилища
var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("storage: appointment %w", domain.ErrNotFound)

	// ErrClientNotFound возвращается, когда клиент не найден
	ErrClientNotFound = fmt.Errorf("storage: client %w", domain.ErrNotFound)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("storage: service %w", domain.ErrNotFound)

	// ErrStaffNotFound возвращается, когда сотрудник не найден
	ErrStaffNotFound = fmt.Errorf("storage: staff %w", domain.ErrNotFound)
)
