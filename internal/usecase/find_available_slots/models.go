package find_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
)

// Request модель запроса свободного времени мастера
type Request struct {
	StaffID    string      // ID мастера
	ServiceIDs []string    // Услуги визита
	Dates      []time.Time // Дни поиска; учитывается только календарная дата. Пусто = ближайшие дни
}

// Response модель ответа со свободными слотами
type Response struct {
	StaffID         string
	DurationMinutes int              // Σ(длительность + буфер)
	BufferMinutes   int              // Σ буферов
	Days            []domain.DaySlots // Только дни, где есть хотя бы один слот, по возрастанию
}

// DurationQuote длительность набора услуг
type DurationQuote struct {
	TotalMinutes  int
	BufferMinutes int
}
