package update_appointment_status

import (
	"context"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments/models"
)

type AppointmentService interface {
	UpdateStatus(ctx context.Context, id string, status string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
