package get_reminder_text

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/catalog/models"
)

type CatalogService interface {
	GetReminderText(ctx context.Context, clientID, serviceID, lang string) (*models.TextResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
