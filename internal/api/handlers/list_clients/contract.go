package list_clients

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

type CatalogService interface {
	ListClients(ctx context.Context) (*models.ClientListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
