package get_client_summary

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

type CatalogService interface {
	GetClientSummary(ctx context.Context, clientID string) (*models.TextResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
