package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/domain"
	findSlots "github.com/m04kA/SMC-SalonScheduler/internal/usecase/find_available_slots"
)

// DayResponse свободные начала визита в один день
type DayResponse struct {
	Date  string   `json:"date"`  // YYYY-MM-DD
	Slots []string `json:"slots"` // RFC 3339
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	StaffID         string        `json:"staffId"`
	DurationMinutes int           `json:"durationMinutes"`
	BufferMinutes   int           `json:"bufferMinutes"`
	Days            []DayResponse `json:"days"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func ToUseCaseRequest(staffID string, serviceIDs, dates []string) (*findSlots.Request, error) {
	req := &findSlots.Request{
		StaffID:    staffID,
		ServiceIDs: serviceIDs,
	}

	for _, d := range dates {
		date, err := time.Parse(domain.DateFormat, d)
		if err != nil {
			return nil, err
		}
		req.Dates = append(req.Dates, date)
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findSlots.Response) *SlotsResponse {
	out := &SlotsResponse{
		StaffID:         resp.StaffID,
		DurationMinutes: resp.DurationMinutes,
		BufferMinutes:   resp.BufferMinutes,
		Days:            make([]DayResponse, 0, len(resp.Days)),
	}

	for _, day := range resp.Days {
		d := DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: make([]string, 0, len(day.Slots)),
		}
		for _, s := range day.Slots {
			d.Slots = append(d.Slots, s.Format(time.RFC3339))
		}
		out.Days = append(out.Days, d)
	}
	return out
}
