package create_appointment

import (
	"time"

	createAppointment "github.com/m04kA/SMC-SalonScheduler/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID   string   `json:"clientId" validate:"required"`
	ServiceIDs []string `json:"serviceIds" validate:"required,min=1,max=20,dive,required"`
	StaffID    string   `json:"staffId" validate:"required"`
	StartAt    string   `json:"startAt" validate:"required,rfc3339"` // "2025-10-15T10:00:00+03:00"
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

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// StartAt уже проверен валидатором.
func (r *CreateAppointmentRequest) ToUseCaseRequest() (*createAppointment.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		ClientID:   r.ClientID,
		ServiceIDs: r.ServiceIDs,
		StaffID:    r.StaffID,
		StartAt:    startAt,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
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
