package find_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс справочников салона
type CatalogRepository interface {
	GetStaff(ctx context.Context, id string) (*domain.Staff, error)
	GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
}

// Metrics интерфейс метрик поиска слотов
type Metrics interface {
	ObserveSlotSearch(outcome string, slots int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
