package list_appointments

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-SalonScheduler/internal/service/appointments/models"
)

// ParseQuery собирает фильтр списка записей из query параметров:
// staffId, clientId, from, to (RFC 3339), status, includeCanceled
func ParseQuery(q url.Values) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		StaffID:  optional(q.Get("staffId")),
		ClientID: optional(q.Get("clientId")),
		Status:   optional(q.Get("status")),
	}

	var err error
	if req.From, err = optionalTime(q.Get("from")); err != nil {
		return nil, err
	}
	if req.To, err = optionalTime(q.Get("to")); err != nil {
		return nil, err
	}

	if v := strings.TrimSpace(q.Get("includeCanceled")); v != "" {
		if req.IncludeCanceled, err = strconv.ParseBool(v); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optionalTime(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
