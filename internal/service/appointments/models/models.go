package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	StaffID         *string    // Фильтр по мастеру (опционально)
	ClientID        *string    // Фильтр по клиенту (опционально)
	From            *time.Time // Начало периода (опционально)
	To              *time.Time // Конец периода, не включительно (опционально)
	Status          *string    // Фильтр по статусу (опционально)
	IncludeCanceled bool       // Включать отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		StaffID:         r.StaffID,
		ClientID:        r.ClientID,
		From:            r.From,
		To:              r.To,
		IncludeCanceled: r.IncludeCanceled,
	}

	if r.Status != nil {
		status, err := ToDomainStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
		// Явный запрос отменённых не должен отфильтровываться
		if status == domain.StatusCanceled {
			filter.IncludeCanceled = true
		}
	}

	return filter, nil
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID              string   `json:"id"`
	ClientID        string   `json:"clientId"`
	ClientName      string   `json:"clientName"`
	ServiceIDs      []string `json:"serviceIds"`
	ServiceNames    []string `json:"serviceNames"`
	StaffID         string   `json:"staffId"`
	StaffName       string   `json:"staffName"`
	StartAt         string   `json:"startAt"` // RFC 3339
	EndAt           string   `json:"endAt"`   // RFC 3339
	DurationMinutes int      `json:"durationMinutes"`
	Status          string   `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		ClientName:      a.ClientName,
		ServiceIDs:      nonNil(a.ServiceIDs),
		ServiceNames:    nonNil(a.ServiceNames),
		StaffID:         a.StaffID,
		StaffName:       a.StaffName,
		StartAt:         a.StartAt.Format(time.RFC3339),
		EndAt:           a.EndAt.Format(time.RFC3339),
		DurationMinutes: a.DurationMinutes(),
		Status:          string(a.Status),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(list)),
	}
	for _, a := range list {
		if r := FromDomainAppointment(a); r != nil {
			resp.Appointments = append(resp.Appointments, *r)
		}
	}
	return resp
}

// ToDomainStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
