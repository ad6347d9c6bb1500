package get_client_history

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

type CatalogService interface {
	GetClientHistory(ctx context.Context, clientID string) (*models.HistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
