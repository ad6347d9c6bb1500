package domain

import "time"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPlanned     AppointmentStatus = "planned"
	StatusRescheduled AppointmentStatus = "rescheduled"
	StatusCanceled    AppointmentStatus = "canceled"
	StatusDone        AppointmentStatus = "done"
)

// IsValid returns true if the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPlanned, StatusRescheduled, StatusCanceled, StatusDone:
		return true
	default:
		return false
	}
}

// Appointment represents a client visit booked with a staff member.
// EndAt is derived from StartAt and the service list, never set independently.
type Appointment struct {
	ID         string
	ClientID   string
	ServiceIDs []string
	StaffID    string
	StartAt    time.Time
	EndAt      time.Time
	Status     AppointmentStatus

	// Denormalized data for display, refreshed on every mutation
	ClientName   string
	ServiceNames []string
	StaffName    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment occupies the staff timeline
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCanceled
}

// Interval returns the half-open [StartAt, EndAt) interval of the appointment
func (a *Appointment) Interval() Interval {
	return Interval{Start: a.StartAt, End: a.EndAt}
}

// DurationMinutes returns the occupied length of the appointment in minutes
func (a *Appointment) DurationMinutes() int {
	return int(a.EndAt.Sub(a.StartAt) / time.Minute)
}

// Clone returns a deep copy, so stores never hand out their internal slices
func (a *Appointment) Clone() *Appointment {
	c := *a
	c.ServiceIDs = append([]string(nil), a.ServiceIDs...)
	c.ServiceNames = append([]string(nil), a.ServiceNames...)
	return &c
}

// Interval is a half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// AppointmentsFilter фильтр для выборки записей
type AppointmentsFilter struct {
	StaffID         *string            // Фильтр по мастеру (опционально)
	ClientID        *string            // Фильтр по клиенту (опционально)
	From            *time.Time         // Начало периода, сравнивается с EndAt (опционально)
	To              *time.Time         // Конец периода, сравнивается с StartAt (опционально)
	Status          *AppointmentStatus // Фильтр по статусу (опционально)
	IncludeCanceled bool               // Включать ли отменённые записи
}

// Matches reports whether the appointment passes the filter.
// The period bounds select appointments whose interval intersects [From, To).
func (f AppointmentsFilter) Matches(a *Appointment) bool {
	if f.StaffID != nil && a.StaffID != *f.StaffID {
		return false
	}
	if f.ClientID != nil && a.ClientID != *f.ClientID {
		return false
	}
	if f.From != nil && !a.EndAt.After(*f.From) {
		return false
	}
	if f.To != nil && !a.StartAt.Before(*f.To) {
		return false
	}
	if f.Status != nil && a.Status != *f.Status {
		return false
	}
	if !f.IncludeCanceled && !a.IsActive() {
		return false
	}
	return true
}
