package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	"github.com/m04kA/SMC-SalonScheduler/internal/integrations/assistant"
)

// CatalogRepository интерфейс справочников салона
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListStaff(ctx context.Context) ([]*domain.Staff, error)
	ListClients(ctx context.Context) ([]*domain.Client, error)
	GetClient(ctx context.Context, id string) (*domain.Client, error)
	GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Assistant интерфейс генерации текстов для администратора
type Assistant interface {
	SummarizeClient(ctx context.Context, client *domain.Client, history []*domain.Appointment) string
	ReminderText(ctx context.Context, client *domain.Client, serviceName string, lang assistant.Language) string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
