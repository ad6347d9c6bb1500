package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/events"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// CatalogRepository интерфейс справочников салона
type CatalogRepository interface {
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	GetStaff(ctx context.Context, id string) (*domain.Staff, error)
	GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher интерфейс публикации событий записи
type EventPublisher interface {
	Publish(ctx context.Context, eventType events.Type, a *domain.Appointment) error
}

// Metrics интерфейс метрик операций с записями
type Metrics interface {
	ObserveAppointmentOperation(operation, outcome string)
}

// IDGenerator генератор идентификаторов записей
type IDGenerator func() string

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
