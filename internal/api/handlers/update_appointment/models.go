package update_appointment

import (
	"time"

	updateAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model.
// Время начала и мастер не меняются.
type UpdateAppointmentRequest struct {
	ClientID   string   `json:"clientId" validate:"required"`
	ServiceIDs []string `json:"serviceIds" validate:"required,min=1,max=20,dive,required"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              string   `json:"id"`
	ClientID        string   `json:"clientId"`
	ClientName      string   `json:"clientName"`
	ServiceIDs      []string `json:"serviceIds"`
	ServiceNames    []string `json:"serviceNames"`
	StaffID         string   `json:"staffId"`
	StaffName       string   `json:"staffName"`
	StartAt         string   `json:"startAt"`
	EndAt           string   `json:"endAt"`
	DurationMinutes int      `json:"durationMinutes"`
	BufferMinutes   int      `json:"bufferMinutes"`
	Status          string   `json:"status"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID string) *updateAppointment.Request {
	return &updateAppointment.Request{
		AppointmentID: appointmentID,
		ClientID:      r.ClientID,
		ServiceIDs:    r.ServiceIDs,
	}
}

func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              resp.ID,
		ClientID:        resp.ClientID,
		ClientName:      resp.ClientName,
		ServiceIDs:      resp.ServiceIDs,
		ServiceNames:    resp.ServiceNames,
		StaffID:         resp.StaffID,
		StaffName:       resp.StaffName,
		StartAt:         resp.StartAt.Format(time.RFC3339),
		EndAt:           resp.EndAt.Format(time.RFC3339),
		DurationMinutes: resp.DurationMinutes,
		BufferMinutes:   resp.BufferMinutes,
		Status:          resp.Status,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
