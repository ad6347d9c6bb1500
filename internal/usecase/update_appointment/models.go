package update_appointment

import "time"

// Request модель запроса на изменение записи.
// Время начала, мастер и статус не меняются.
type Request struct {
	AppointmentID string
	ClientID      string
	ServiceIDs    []string
}

// Response модель ответа с обновленной записью
type Response struct {
	ID         string
	ClientID   string
	ServiceIDs []string
	StaffID    string
	StartAt    time.Time
	EndAt      time.Time
	Status     string

	ClientName   string
	ServiceNames []string
	StaffName    string

	DurationMinutes int
	BufferMinutes   int

	CreatedAt time.Time
	UpdatedAt time.Time
}
