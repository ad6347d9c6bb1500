package events

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Type тип события жизненного цикла записи
type Type string

const (
	AppointmentCreated Type = "appointment.created"
	AppointmentUpdated Type = "appointment.updated"
	AppointmentDeleted Type = "appointment.deleted"
)

// HeaderEventType заголовок сообщения с типом события
const HeaderEventType = "event-type"

// Event сообщение, публикуемое в топик
type Event struct {
	ID          string      `json:"id"`
	Type        Type        `json:"type"`
	OccurredAt  time.Time   `json:"occurredAt"`
	Appointment Appointment `json:"appointment"`
}

// Appointment снимок записи на момент события
type Appointment struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	ClientName   string    `json:"clientName"`
	ServiceIDs   []string  `json:"serviceIds"`
	ServiceNames []string  `json:"serviceNames"`
	StaffID      string    `json:"staffId"`
	StaffName    string    `json:"staffName"`
	StartAt      time.Time `json:"startAt"`
	EndAt        time.Time `json:"endAt"`
	Status       string    `json:"status"`
}

func snapshot(a *domain.Appointment) Appointment {
	return Appointment{
		ID:           a.ID,
		ClientID:     a.ClientID,
		ClientName:   a.ClientName,
		ServiceIDs:   append([]string(nil), a.ServiceIDs...),
		ServiceNames: append([]string(nil), a.ServiceNames...),
		StaffID:      a.StaffID,
		StaffName:    a.StaffName,
		StartAt:      a.StartAt,
		EndAt:        a.EndAt,
		Status:       string(a.Status),
	}
}
