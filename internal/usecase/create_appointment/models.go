package create_appointment

import (
	"time"
)

// Request модель запроса на создание записи
type Request struct {
	ClientID   string    // ID клиента
	ServiceIDs []string  // Услуги визита, порядок сохраняется
	StaffID    string    // ID мастера
	StartAt    time.Time // Начало визита
}

// Response модель ответа с созданной записью
type Response struct {
	ID         string
	ClientID   string
	ServiceIDs []string
	StaffID    string
	StartAt    time.Time
	EndAt      time.Time
	Status     string

	// Денормализованные данные
	ClientName   string
	ServiceNames []string
	StaffName    string

	DurationMinutes int // Σ(длительность + буфер)
	BufferMinutes   int // Σ буферов

	CreatedAt time.Time
	UpdatedAt time.Time
}
